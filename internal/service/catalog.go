package service

import (
	"context"
	"regexp"
	"strings"

	"plateforge/internal/dto"
	"plateforge/internal/model"
	"plateforge/internal/pricing"
	"plateforge/internal/repository"
)

// CatalogService manages the seven option collections. Reads are open; writes
// sit behind the admin API. Unlike the storefront's original behavior it does
// not store admin input as-is: discriminators must be present and unique, hex
// codes well-formed, prices non-negative.
type CatalogService interface {
	ListPlateSelections(ctx context.Context) ([]model.PlateSelection, error)
	CreatePlateSelection(ctx context.Context, req dto.CreatePlateSelectionRequest) (*model.PlateSelection, error)
	UpdatePlateSelection(ctx context.Context, id uint, req dto.UpdatePlateSelectionRequest) (*model.PlateSelection, error)

	ListPlateTypes(ctx context.Context) ([]model.PlateType, error)
	CreatePlateType(ctx context.Context, req dto.CreatePlateTypeRequest) (*model.PlateType, error)
	UpdatePlateType(ctx context.Context, id uint, req dto.UpdatePlateTypeRequest) (*model.PlateType, error)

	ListBadges(ctx context.Context) ([]model.Badge, error)
	CreateBadge(ctx context.Context, req dto.CreateBadgeRequest) (*model.Badge, error)
	UpdateBadge(ctx context.Context, id uint, req dto.UpdateBadgeRequest) (*model.Badge, error)

	ListBadgeColors(ctx context.Context) ([]model.BadgeColor, error)
	CreateBadgeColor(ctx context.Context, req dto.CreateBadgeColorRequest) (*model.BadgeColor, error)
	UpdateBadgeColor(ctx context.Context, id uint, req dto.UpdateBadgeColorRequest) (*model.BadgeColor, error)

	ListTextStyles(ctx context.Context) ([]model.TextStyle, error)
	CreateTextStyle(ctx context.Context, req dto.CreateTextStyleRequest) (*model.TextStyle, error)
	UpdateTextStyle(ctx context.Context, id uint, req dto.UpdateTextStyleRequest) (*model.TextStyle, error)

	ListBorderColors(ctx context.Context) ([]model.BorderColor, error)
	CreateBorderColor(ctx context.Context, req dto.CreateBorderColorRequest) (*model.BorderColor, error)
	UpdateBorderColor(ctx context.Context, id uint, req dto.UpdateBorderColorRequest) (*model.BorderColor, error)

	ListPlateSurrounds(ctx context.Context) ([]model.PlateSurround, error)
	CreatePlateSurround(ctx context.Context, req dto.CreatePlateSurroundRequest) (*model.PlateSurround, error)
	UpdatePlateSurround(ctx context.Context, id uint, req dto.UpdatePlateSurroundRequest) (*model.PlateSurround, error)

	// Snapshot loads the priced collections for quote computation.
	Snapshot(ctx context.Context) (pricing.Catalog, error)
}

type catalogServiceImpl struct {
	plateSelections repository.OptionRepository[model.PlateSelection]
	plateTypes      repository.OptionRepository[model.PlateType]
	badges          repository.OptionRepository[model.Badge]
	badgeColors     repository.OptionRepository[model.BadgeColor]
	textStyles      repository.OptionRepository[model.TextStyle]
	borderColors    repository.OptionRepository[model.BorderColor]
	plateSurrounds  repository.OptionRepository[model.PlateSurround]
}

func NewCatalogService(
	plateSelections repository.OptionRepository[model.PlateSelection],
	plateTypes repository.OptionRepository[model.PlateType],
	badges repository.OptionRepository[model.Badge],
	badgeColors repository.OptionRepository[model.BadgeColor],
	textStyles repository.OptionRepository[model.TextStyle],
	borderColors repository.OptionRepository[model.BorderColor],
	plateSurrounds repository.OptionRepository[model.PlateSurround],
) CatalogService {
	return &catalogServiceImpl{
		plateSelections: plateSelections,
		plateTypes:      plateTypes,
		badges:          badges,
		badgeColors:     badgeColors,
		textStyles:      textStyles,
		borderColors:    borderColors,
		plateSurrounds:  plateSurrounds,
	}
}

var hexCodeRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

var plateSelectionValues = map[string]bool{
	"front": true,
	"rear":  true,
	"both":  true,
}

func priceOrZero(p *float64) (float64, error) {
	if p == nil {
		return 0, nil
	}
	if *p < 0 {
		return 0, invalid("price must not be negative")
	}
	return *p, nil
}

// ---------- plate selections ----------

func (s *catalogServiceImpl) ListPlateSelections(ctx context.Context) ([]model.PlateSelection, error) {
	return s.plateSelections.List(ctx)
}

func (s *catalogServiceImpl) CreatePlateSelection(ctx context.Context, req dto.CreatePlateSelectionRequest) (*model.PlateSelection, error) {
	name := strings.TrimSpace(req.Name)
	value := strings.TrimSpace(req.Value)
	if name == "" {
		return nil, invalid("name is required")
	}
	if !plateSelectionValues[value] {
		return nil, invalid("value must be one of front, rear, both")
	}
	price, err := priceOrZero(req.Price)
	if err != nil {
		return nil, err
	}

	taken, err := s.plateSelections.ExistsWhere(ctx, "value = ?", value)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, invalid("plate selection %q already exists", value)
	}

	rec := &model.PlateSelection{Value: value, Name: name, Price: price}
	if err := s.plateSelections.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *catalogServiceImpl) UpdatePlateSelection(ctx context.Context, id uint, req dto.UpdatePlateSelectionRequest) (*model.PlateSelection, error) {
	rec, err := s.plateSelections.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Value != nil {
		value := strings.TrimSpace(*req.Value)
		if !plateSelectionValues[value] {
			return nil, invalid("value must be one of front, rear, both")
		}
		taken, err := s.plateSelections.ExistsWhere(ctx, "value = ? AND id <> ?", value, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, invalid("plate selection %q already exists", value)
		}
		rec.Value = value
	}
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, invalid("name must not be empty")
		}
		rec.Name = *req.Name
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, invalid("price must not be negative")
		}
		rec.Price = *req.Price
	}

	if err := s.plateSelections.Save(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// ---------- plate types ----------

func (s *catalogServiceImpl) ListPlateTypes(ctx context.Context) ([]model.PlateType, error) {
	return s.plateTypes.List(ctx)
}

func (s *catalogServiceImpl) CreatePlateType(ctx context.Context, req dto.CreatePlateTypeRequest) (*model.PlateType, error) {
	name := strings.TrimSpace(req.Name)
	style := strings.TrimSpace(req.Style)
	if name == "" {
		return nil, invalid("name is required")
	}
	if style == "" {
		return nil, invalid("style is required")
	}
	price, err := priceOrZero(req.Price)
	if err != nil {
		return nil, err
	}

	taken, err := s.plateTypes.ExistsWhere(ctx, "style = ?", style)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, invalid("plate type style %q already exists", style)
	}

	rec := &model.PlateType{Name: name, Style: style, Price: price}
	if err := s.plateTypes.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *catalogServiceImpl) UpdatePlateType(ctx context.Context, id uint, req dto.UpdatePlateTypeRequest) (*model.PlateType, error) {
	rec, err := s.plateTypes.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Style != nil {
		style := strings.TrimSpace(*req.Style)
		if style == "" {
			return nil, invalid("style must not be empty")
		}
		taken, err := s.plateTypes.ExistsWhere(ctx, "style = ? AND id <> ?", style, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, invalid("plate type style %q already exists", style)
		}
		rec.Style = style
	}
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, invalid("name must not be empty")
		}
		rec.Name = *req.Name
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, invalid("price must not be negative")
		}
		rec.Price = *req.Price
	}

	if err := s.plateTypes.Save(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// ---------- badges ----------

func (s *catalogServiceImpl) ListBadges(ctx context.Context) ([]model.Badge, error) {
	return s.badges.List(ctx)
}

func (s *catalogServiceImpl) CreateBadge(ctx context.Context, req dto.CreateBadgeRequest) (*model.Badge, error) {
	name := strings.TrimSpace(req.Name)
	code := strings.TrimSpace(req.Code)
	if name == "" {
		return nil, invalid("name is required")
	}
	if code == "" {
		return nil, invalid("code is required")
	}
	price, err := priceOrZero(req.Price)
	if err != nil {
		return nil, err
	}

	taken, err := s.badges.ExistsWhere(ctx, "code = ?", code)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, invalid("badge code %q already exists", code)
	}

	rec := &model.Badge{Name: name, Code: code, Price: price, ImageURL: req.ImageURL}
	if err := s.badges.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *catalogServiceImpl) UpdateBadge(ctx context.Context, id uint, req dto.UpdateBadgeRequest) (*model.Badge, error) {
	rec, err := s.badges.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Code != nil {
		code := strings.TrimSpace(*req.Code)
		if code == "" {
			return nil, invalid("code must not be empty")
		}
		taken, err := s.badges.ExistsWhere(ctx, "code = ? AND id <> ?", code, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, invalid("badge code %q already exists", code)
		}
		rec.Code = code
	}
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, invalid("name must not be empty")
		}
		rec.Name = *req.Name
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, invalid("price must not be negative")
		}
		rec.Price = *req.Price
	}
	if req.ImageURL != nil {
		rec.ImageURL = *req.ImageURL
	}

	if err := s.badges.Save(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// ---------- badge colors ----------

func (s *catalogServiceImpl) ListBadgeColors(ctx context.Context) ([]model.BadgeColor, error) {
	return s.badgeColors.List(ctx)
}

func (s *catalogServiceImpl) CreateBadgeColor(ctx context.Context, req dto.CreateBadgeColorRequest) (*model.BadgeColor, error) {
	name := strings.TrimSpace(req.Name)
	hexCode := strings.TrimSpace(req.HexCode)
	if name == "" {
		return nil, invalid("name is required")
	}
	if !hexCodeRe.MatchString(hexCode) {
		return nil, invalid("hexCode must be in #RRGGBB form")
	}

	taken, err := s.badgeColors.ExistsWhere(ctx, "hex_code = ?", hexCode)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, invalid("badge color %q already exists", hexCode)
	}

	rec := &model.BadgeColor{Name: name, HexCode: hexCode}
	if err := s.badgeColors.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *catalogServiceImpl) UpdateBadgeColor(ctx context.Context, id uint, req dto.UpdateBadgeColorRequest) (*model.BadgeColor, error) {
	rec, err := s.badgeColors.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.HexCode != nil {
		hexCode := strings.TrimSpace(*req.HexCode)
		if !hexCodeRe.MatchString(hexCode) {
			return nil, invalid("hexCode must be in #RRGGBB form")
		}
		taken, err := s.badgeColors.ExistsWhere(ctx, "hex_code = ? AND id <> ?", hexCode, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, invalid("badge color %q already exists", hexCode)
		}
		rec.HexCode = hexCode
	}
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, invalid("name must not be empty")
		}
		rec.Name = *req.Name
	}

	if err := s.badgeColors.Save(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// ---------- text styles ----------

func (s *catalogServiceImpl) ListTextStyles(ctx context.Context) ([]model.TextStyle, error) {
	return s.textStyles.List(ctx)
}

func (s *catalogServiceImpl) CreateTextStyle(ctx context.Context, req dto.CreateTextStyleRequest) (*model.TextStyle, error) {
	name := strings.TrimSpace(req.Name)
	style := strings.TrimSpace(req.Style)
	if name == "" {
		return nil, invalid("name is required")
	}
	if style == "" {
		return nil, invalid("style is required")
	}
	price, err := priceOrZero(req.Price)
	if err != nil {
		return nil, err
	}

	taken, err := s.textStyles.ExistsWhere(ctx, "style = ?", style)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, invalid("text style %q already exists", style)
	}

	rec := &model.TextStyle{Name: name, Style: style, Price: price}
	if err := s.textStyles.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *catalogServiceImpl) UpdateTextStyle(ctx context.Context, id uint, req dto.UpdateTextStyleRequest) (*model.TextStyle, error) {
	rec, err := s.textStyles.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Style != nil {
		style := strings.TrimSpace(*req.Style)
		if style == "" {
			return nil, invalid("style must not be empty")
		}
		taken, err := s.textStyles.ExistsWhere(ctx, "style = ? AND id <> ?", style, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, invalid("text style %q already exists", style)
		}
		rec.Style = style
	}
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, invalid("name must not be empty")
		}
		rec.Name = *req.Name
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, invalid("price must not be negative")
		}
		rec.Price = *req.Price
	}

	if err := s.textStyles.Save(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// ---------- border colors ----------

func (s *catalogServiceImpl) ListBorderColors(ctx context.Context) ([]model.BorderColor, error) {
	return s.borderColors.List(ctx)
}

func (s *catalogServiceImpl) CreateBorderColor(ctx context.Context, req dto.CreateBorderColorRequest) (*model.BorderColor, error) {
	name := strings.TrimSpace(req.Name)
	hexCode := strings.TrimSpace(req.HexCode)
	if name == "" {
		return nil, invalid("name is required")
	}
	if !hexCodeRe.MatchString(hexCode) {
		return nil, invalid("hexCode must be in #RRGGBB form")
	}

	taken, err := s.borderColors.ExistsWhere(ctx, "hex_code = ?", hexCode)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, invalid("border color %q already exists", hexCode)
	}

	rec := &model.BorderColor{Name: name, HexCode: hexCode}
	if err := s.borderColors.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *catalogServiceImpl) UpdateBorderColor(ctx context.Context, id uint, req dto.UpdateBorderColorRequest) (*model.BorderColor, error) {
	rec, err := s.borderColors.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.HexCode != nil {
		hexCode := strings.TrimSpace(*req.HexCode)
		if !hexCodeRe.MatchString(hexCode) {
			return nil, invalid("hexCode must be in #RRGGBB form")
		}
		taken, err := s.borderColors.ExistsWhere(ctx, "hex_code = ? AND id <> ?", hexCode, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, invalid("border color %q already exists", hexCode)
		}
		rec.HexCode = hexCode
	}
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, invalid("name must not be empty")
		}
		rec.Name = *req.Name
	}

	if err := s.borderColors.Save(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// ---------- plate surrounds ----------

func (s *catalogServiceImpl) ListPlateSurrounds(ctx context.Context) ([]model.PlateSurround, error) {
	return s.plateSurrounds.List(ctx)
}

func (s *catalogServiceImpl) CreatePlateSurround(ctx context.Context, req dto.CreatePlateSurroundRequest) (*model.PlateSurround, error) {
	name := strings.TrimSpace(req.Name)
	style := strings.TrimSpace(req.Style)
	if name == "" {
		return nil, invalid("name is required")
	}
	if style == "" {
		return nil, invalid("style is required")
	}
	price, err := priceOrZero(req.Price)
	if err != nil {
		return nil, err
	}

	taken, err := s.plateSurrounds.ExistsWhere(ctx, "style = ?", style)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, invalid("plate surround style %q already exists", style)
	}

	rec := &model.PlateSurround{Name: name, Style: style, Price: price}
	if err := s.plateSurrounds.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *catalogServiceImpl) UpdatePlateSurround(ctx context.Context, id uint, req dto.UpdatePlateSurroundRequest) (*model.PlateSurround, error) {
	rec, err := s.plateSurrounds.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Style != nil {
		style := strings.TrimSpace(*req.Style)
		if style == "" {
			return nil, invalid("style must not be empty")
		}
		taken, err := s.plateSurrounds.ExistsWhere(ctx, "style = ? AND id <> ?", style, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, invalid("plate surround style %q already exists", style)
		}
		rec.Style = style
	}
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, invalid("name must not be empty")
		}
		rec.Name = *req.Name
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, invalid("price must not be negative")
		}
		rec.Price = *req.Price
	}

	if err := s.plateSurrounds.Save(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// ---------- pricing snapshot ----------

func (s *catalogServiceImpl) Snapshot(ctx context.Context) (pricing.Catalog, error) {
	var cat pricing.Catalog
	var err error

	if cat.PlateSelections, err = s.plateSelections.List(ctx); err != nil {
		return pricing.Catalog{}, err
	}
	if cat.PlateTypes, err = s.plateTypes.List(ctx); err != nil {
		return pricing.Catalog{}, err
	}
	if cat.Badges, err = s.badges.List(ctx); err != nil {
		return pricing.Catalog{}, err
	}
	if cat.TextStyles, err = s.textStyles.List(ctx); err != nil {
		return pricing.Catalog{}, err
	}
	if cat.PlateSurrounds, err = s.plateSurrounds.List(ctx); err != nil {
		return pricing.Catalog{}, err
	}

	return cat, nil
}
