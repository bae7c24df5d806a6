package models

// Farm is a parcel of land owned by a user
type Farm struct {
	BaseModel
	UserID          uint    `json:"user_id" gorm:"not null;index"`
	Name            string  `json:"name" gorm:"size:255;not null"`
	City            string  `json:"city" gorm:"size:255;not null"`
	State           string  `json:"state" gorm:"size:255;not null"`
	QtyHectaresLand float64 `json:"qty_hectares_land" gorm:"not null"`
	Active          bool    `json:"active" gorm:"not null"`

	// Relationships
	User *User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Farm
func (Farm) TableName() string {
	return "farms"
}
