// Package pricing derives the billable line items and the total price of a
// plate customization from the live option catalog. It is the only place
// prices are computed; client-submitted totals are checked against it and
// never stored as-is.
package pricing

import (
	"plateforge/internal/model"

	"github.com/shopspring/decimal"
)

// Catalog is a read-only snapshot of the priced option collections. The two
// color kinds are absent: badge and border colors are cosmetic and never
// contribute to the price.
type Catalog struct {
	PlateSelections []model.PlateSelection
	PlateTypes      []model.PlateType
	Badges          []model.Badge
	TextStyles      []model.TextStyle
	PlateSurrounds  []model.PlateSurround
}

type Quote struct {
	Items []model.OrderItem
	Total float64
}

// Compute resolves each selected discriminator against the catalog and builds
// the ordered order-item list and total. A selection that matches nothing
// contributes zero and yields no item; it is not an error, the admin may have
// renamed an option mid-session. Summation runs in decimal so reals like
// 19.99 + 4.99 come out as exactly 24.98.
func Compute(c model.PlateCustomization, cat Catalog) Quote {
	selection := findPlateSelection(cat.PlateSelections, c.PlateSelection)
	plateType := findPlateType(cat.PlateTypes, c.PlateType)
	badge := findBadge(cat.Badges, c.Badge)
	textStyle := findTextStyle(cat.TextStyles, c.TextStyle)
	surround := findPlateSurround(cat.PlateSurrounds, c.PlateSurround)

	total := decimal.Zero
	var items []model.OrderItem

	if selection != nil {
		total = total.Add(decimal.NewFromFloat(selection.Price))
		items = append(items, model.OrderItem{Name: selection.Name, Price: selection.Price})
	}

	if plateType != nil {
		total = total.Add(decimal.NewFromFloat(plateType.Price))
		if plateType.Price > 0 {
			items = append(items, model.OrderItem{Name: plateType.Name, Price: plateType.Price})
		}
	}

	if badge != nil && badge.Code != model.BadgeCodeNone {
		total = total.Add(decimal.NewFromFloat(badge.Price))
		if badge.Price > 0 {
			items = append(items, model.OrderItem{Name: badge.Name + " Badge", Price: badge.Price})
		}
	}

	if textStyle != nil {
		total = total.Add(decimal.NewFromFloat(textStyle.Price))
		if textStyle.Price > 0 {
			items = append(items, model.OrderItem{Name: textStyle.Name + " Text Style", Price: textStyle.Price})
		}
	}

	if surround != nil {
		total = total.Add(decimal.NewFromFloat(surround.Price))
		if surround.Price > 0 {
			items = append(items, model.OrderItem{Name: surround.Name + " Surround", Price: surround.Price})
		}
	}

	for i := range items {
		items[i].ID = i + 1
	}

	return Quote{
		Items: items,
		Total: total.InexactFloat64(),
	}
}

func findPlateSelection(recs []model.PlateSelection, value string) *model.PlateSelection {
	for i := range recs {
		if recs[i].Value == value {
			return &recs[i]
		}
	}
	return nil
}

func findPlateType(recs []model.PlateType, style string) *model.PlateType {
	for i := range recs {
		if recs[i].Style == style {
			return &recs[i]
		}
	}
	return nil
}

func findBadge(recs []model.Badge, code string) *model.Badge {
	for i := range recs {
		if recs[i].Code == code {
			return &recs[i]
		}
	}
	return nil
}

func findTextStyle(recs []model.TextStyle, style string) *model.TextStyle {
	for i := range recs {
		if recs[i].Style == style {
			return &recs[i]
		}
	}
	return nil
}

func findPlateSurround(recs []model.PlateSurround, style string) *model.PlateSurround {
	for i := range recs {
		if recs[i].Style == style {
			return &recs[i]
		}
	}
	return nil
}
