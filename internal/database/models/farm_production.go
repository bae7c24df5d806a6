package models

// FarmAgricultureProduction links an agriculture production to a farm.
// Removing the production removes the link; removing the farm only clears FarmID.
type FarmAgricultureProduction struct {
	BaseModel
	AgricultureProductionID uint  `json:"agriculture_production_id" gorm:"not null;index"`
	FarmID                  *uint `json:"farm_id" gorm:"index"`

	// Relationships
	AgricultureProduction *AgricultureProduction `json:"-" gorm:"foreignKey:AgricultureProductionID;constraint:OnDelete:CASCADE"`
	Farm                  *Farm                  `json:"-" gorm:"foreignKey:FarmID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for FarmAgricultureProduction
func (FarmAgricultureProduction) TableName() string {
	return "farms_agriculture_productions"
}

// FarmLivestockProduction links a livestock production to a farm
type FarmLivestockProduction struct {
	BaseModel
	LivestockProductionID uint  `json:"livestock_production_id" gorm:"not null;index"`
	FarmID                *uint `json:"farm_id" gorm:"index"`

	// Relationships
	LivestockProduction *LivestockProduction `json:"-" gorm:"foreignKey:LivestockProductionID;constraint:OnDelete:CASCADE"`
	Farm                *Farm                `json:"-" gorm:"foreignKey:FarmID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for FarmLivestockProduction
func (FarmLivestockProduction) TableName() string {
	return "farms_livestock_productions"
}
