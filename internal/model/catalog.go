package model

// The seven customization option kinds. Every kind shares the id/name/price
// shape plus a discriminator field (value, code or style) that customer
// selections reference instead of the numeric id.

type PlateSelection struct {
	ID    uint    `gorm:"primaryKey" json:"id"`
	Value string  `gorm:"size:16;uniqueIndex;not null" json:"value"` // front, rear, both
	Name  string  `gorm:"size:64;not null" json:"name"`
	Price float64 `gorm:"not null;default:0" json:"price"`
}

type PlateType struct {
	ID    uint    `gorm:"primaryKey" json:"id"`
	Name  string  `gorm:"size:64;not null" json:"name"`
	Style string  `gorm:"size:32;uniqueIndex;not null" json:"style"`
	Price float64 `gorm:"not null;default:0" json:"price"`
}

type Badge struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Name     string  `gorm:"size:64;not null" json:"name"`
	Code     string  `gorm:"size:32;uniqueIndex;not null" json:"code"`
	Price    float64 `gorm:"not null;default:0" json:"price"`
	ImageURL string  `gorm:"size:255" json:"imageUrl"`
}

// BadgeColor is cosmetic only and carries no price.
type BadgeColor struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:64;not null" json:"name"`
	HexCode string `gorm:"size:7;uniqueIndex;not null" json:"hexCode"` // #RRGGBB
}

type TextStyle struct {
	ID    uint    `gorm:"primaryKey" json:"id"`
	Name  string  `gorm:"size:64;not null" json:"name"`
	Style string  `gorm:"size:32;uniqueIndex;not null" json:"style"`
	Price float64 `gorm:"not null;default:0" json:"price"`
}

// BorderColor is cosmetic only and carries no price.
type BorderColor struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:64;not null" json:"name"`
	HexCode string `gorm:"size:7;uniqueIndex;not null" json:"hexCode"`
}

type PlateSurround struct {
	ID    uint    `gorm:"primaryKey" json:"id"`
	Name  string  `gorm:"size:64;not null" json:"name"`
	Style string  `gorm:"size:32;uniqueIndex;not null" json:"style"`
	Price float64 `gorm:"not null;default:0" json:"price"`
}

// BadgeCodeNone is the zero-price sentinel badge code; selecting it means
// "no badge" and never produces an order item.
const BadgeCodeNone = "none"
