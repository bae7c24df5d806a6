package service

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// PasswordHasher defines the credential operations the user service depends on
type PasswordHasher interface {
	HashPassword(password string) (string, error)
	CheckPassword(hash, password string) bool
}

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	Register(req *RegisterUserRequest) (*UserResponse, error)
	Update(userID uint, req *UpdateUserRequest) (*UserResponse, error)
}

// FarmServiceInterface defines the interface for farm service
type FarmServiceInterface interface {
	List(userID uint, query *FarmListQuery) (*FarmListResponse, error)
	GetByID(userID, id uint) (*FarmResponse, error)
	Create(userID uint, req *FarmRequest) (*FarmResponse, error)
	Update(userID, id uint, req *FarmRequest) (*FarmResponse, error)
}

// AgricultureProductionServiceInterface defines the interface for agriculture production service
type AgricultureProductionServiceInterface interface {
	List(userID uint, query *AgricultureProductionListQuery) (*AgricultureProductionListResponse, error)
	GetByID(id uint) (*AgricultureProductionResponse, error)
	Create(req *CreateAgricultureProductionRequest) (*AgricultureProductionResponse, error)
	Update(id uint, req *UpdateAgricultureProductionRequest) (*AgricultureProductionResponse, error)
	Delete(id uint) error
}

// LivestockProductionServiceInterface defines the interface for livestock production service
type LivestockProductionServiceInterface interface {
	List(userID uint, query *LivestockProductionListQuery) (*LivestockProductionListResponse, error)
	GetByID(id uint) (*LivestockProductionResponse, error)
	Create(req *CreateLivestockProductionRequest) (*LivestockProductionResponse, error)
	Update(id uint, req *UpdateLivestockProductionRequest) (*LivestockProductionResponse, error)
	Delete(id uint) error
}
