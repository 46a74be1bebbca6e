package repository

import (
	"plateforge/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedCatalog inserts the default option catalog. Conflicting rows are left
// alone so reseeding an already-populated database is a no-op.
func SeedCatalog(db *gorm.DB) error {
	plateSelections := []model.PlateSelection{
		{Value: "front", Name: "Front Only", Price: 19.99},
		{Value: "rear", Name: "Rear Only", Price: 19.99},
		{Value: "both", Name: "Both Plates", Price: 34.99},
	}

	// Badge names are stored without a "Badge" suffix; pricing appends it when
	// it builds the order line.
	badges := []model.Badge{
		{Name: "GB", Code: "gb", Price: 4.99, ImageURL: "/img/badges/gb_flag.svg"},
		{Name: "EU", Code: "eu", Price: 4.99, ImageURL: "/img/badges/eu_flag.svg"},
		{Name: "UK", Code: "uk", Price: 4.99, ImageURL: "/img/badges/uk_flag.svg"},
		{Name: "None", Code: "none", Price: 0, ImageURL: ""},
	}

	badgeColors := []model.BadgeColor{
		{Name: "Gold", HexCode: "#FFD700"},
		{Name: "Blue", HexCode: "#0055AA"},
		{Name: "Red", HexCode: "#E63946"},
		{Name: "Black", HexCode: "#212529"},
		{Name: "Green", HexCode: "#28A745"},
	}

	textStyles := []model.TextStyle{
		{Name: "Standard", Style: "standard", Price: 0},
		{Name: "3D Effect", Style: "3d", Price: 7.99},
		{Name: "Carbon", Style: "carbon", Price: 9.99},
	}

	borderColors := []model.BorderColor{
		{Name: "Yellow", HexCode: "#FFD700"},
		{Name: "Blue", HexCode: "#0055AA"},
		{Name: "Black", HexCode: "#212529"},
		{Name: "Chrome", HexCode: "#CED4DA"},
	}

	plateSurrounds := []model.PlateSurround{
		{Name: "None", Style: "none", Price: 0},
		{Name: "Standard", Style: "standard", Price: 5.99},
		{Name: "Premium", Style: "premium", Price: 7.99},
	}

	plateTypes := []model.PlateType{
		{Name: "Standard Plate", Style: "standard", Price: 0},
		{Name: "Electric Car Plate", Style: "electric", Price: 4.99},
		{Name: "Show Plate", Style: "show", Price: 7.99},
	}

	insert := func(batch any) error {
		return db.Clauses(clause.OnConflict{DoNothing: true}).Create(batch).Error
	}

	if err := insert(&plateSelections); err != nil {
		return err
	}
	if err := insert(&badges); err != nil {
		return err
	}
	if err := insert(&badgeColors); err != nil {
		return err
	}
	if err := insert(&textStyles); err != nil {
		return err
	}
	if err := insert(&borderColors); err != nil {
		return err
	}
	if err := insert(&plateSurrounds); err != nil {
		return err
	}
	return insert(&plateTypes)
}
