package models

// AgricultureProduction is a crop planted across one or more farms.
// Farms is filled from the junction table by the repository and never persisted through gorm.
type AgricultureProduction struct {
	BaseModel
	QtyHectaresPlanted float64 `json:"qty_hectares_planted" gorm:"not null"`
	PlantingYear       int     `json:"planting_year" gorm:"not null"`
	PlantingCrop       string  `json:"planting_crop" gorm:"size:255;not null"`

	Farms []Farm `json:"farms,omitempty" gorm:"-"`
}

// TableName returns the table name for AgricultureProduction
func (AgricultureProduction) TableName() string {
	return "agriculture_productions"
}

// LivestockProduction is a herd raised across one or more farms
type LivestockProduction struct {
	BaseModel
	QtyAnimals     int    `json:"qty_animals" gorm:"not null"`
	ProductionYear int    `json:"production_year" gorm:"not null"`
	AnimalsSpecies string `json:"animals_species" gorm:"size:255;not null"`

	Farms []Farm `json:"farms,omitempty" gorm:"-"`
}

// TableName returns the table name for LivestockProduction
func (LivestockProduction) TableName() string {
	return "livestock_productions"
}
