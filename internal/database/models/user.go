package models

// User is an account that owns farms. CPF is stored in its digits-only form.
type User struct {
	BaseModel
	Name         string `json:"name" gorm:"size:255;not null"`
	Email        string `json:"email" gorm:"size:255;not null;uniqueIndex:idx_users_email"`
	CPF          string `json:"cpf" gorm:"column:cpf;size:11;not null;uniqueIndex:idx_users_cpf"`
	PasswordHash string `json:"-" gorm:"column:password_hash;not null"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
