package model

// VehicleCategory tags a vehicle with the class used for speed profiles,
// capacity lookups and driving-time regulation.
type VehicleCategory string

const (
	CategoryVoiture         VehicleCategory = "VOITURE"
	CategoryUtilitaireLeger VehicleCategory = "UTILITAIRE_LEGER"
	CategoryUtilitaire      VehicleCategory = "UTILITAIRE"
	CategoryPorteur         VehicleCategory = "PORTEUR"
	CategoryTracteur        VehicleCategory = "TRACTEUR"
	CategorySemiRemorque    VehicleCategory = "SEMI_REMORQUE"
	CategoryFrigorifique    VehicleCategory = "FRIGORIFIQUE"
	CategoryCiterne         VehicleCategory = "CITERNE"
	CategoryBenne           VehicleCategory = "BENNE"
)

// AllCategories returns every known category in display order.
func AllCategories() []VehicleCategory {
	return []VehicleCategory{
		CategoryVoiture,
		CategoryUtilitaireLeger,
		CategoryUtilitaire,
		CategoryPorteur,
		CategoryTracteur,
		CategorySemiRemorque,
		CategoryFrigorifique,
		CategoryCiterne,
		CategoryBenne,
	}
}

// IsHeavy reports whether the category falls under the EU driving-time
// regulation (gross weight above 3.5t).
func (c VehicleCategory) IsHeavy() bool {
	switch c {
	case CategoryPorteur, CategoryTracteur, CategorySemiRemorque,
		CategoryFrigorifique, CategoryCiterne, CategoryBenne:
		return true
	}
	return false
}

// IsValid checks if the category is one of the known tags.
func (c VehicleCategory) IsValid() bool {
	for _, k := range AllCategories() {
		if k == c {
			return true
		}
	}
	return false
}

func (c VehicleCategory) String() string { return string(c) }
