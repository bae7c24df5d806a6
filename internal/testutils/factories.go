package testutils

import (
	"fmt"
	"sync"
	"sync/atomic"

	"farm-assets-backend/internal/database/models"
	"farm-assets-backend/internal/taxid"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultPassword is the clear-text password of every factory user
const DefaultPassword = "123456"

var (
	factorySeq   atomic.Uint64
	passwordOnce sync.Once
	passwordHash string
)

func defaultPasswordHash() string {
	passwordOnce.Do(func() {
		hash, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.MinCost)
		if err != nil {
			panic(err)
		}
		passwordHash = string(hash)
	})
	return passwordHash
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with a unique email and a valid, unique CPF
func (f *UserFactory) Create() *models.User {
	n := factorySeq.Add(1)
	return &models.User{
		Name:         "Test User",
		Email:        fmt.Sprintf("user%d@test.com", n),
		CPF:          taxid.Complete(fmt.Sprintf("%09d", 100000000+n)),
		PasswordHash: defaultPasswordHash(),
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// FarmFactory provides methods to create test Farm data
type FarmFactory struct{}

// NewFarmFactory creates a new FarmFactory
func NewFarmFactory() *FarmFactory {
	return &FarmFactory{}
}

// Create creates a test Farm with default values
func (f *FarmFactory) Create() *models.Farm {
	return &models.Farm{
		Name:            "Test Farm",
		City:            "Ribeirão Preto",
		State:           "SP",
		QtyHectaresLand: 10,
		Active:          true,
	}
}

// WithOwner creates a farm owned by userID with the given land area
func (f *FarmFactory) WithOwner(userID uint, hectares float64) *models.Farm {
	farm := f.Create()
	farm.UserID = userID
	farm.QtyHectaresLand = hectares
	return farm
}

// AgricultureProductionFactory provides methods to create test AgricultureProduction data
type AgricultureProductionFactory struct{}

// NewAgricultureProductionFactory creates a new AgricultureProductionFactory
func NewAgricultureProductionFactory() *AgricultureProductionFactory {
	return &AgricultureProductionFactory{}
}

// Create creates a test AgricultureProduction with default values
func (f *AgricultureProductionFactory) Create() *models.AgricultureProduction {
	return &models.AgricultureProduction{
		QtyHectaresPlanted: 5,
		PlantingYear:       2024,
		PlantingCrop:       "Soybean",
	}
}

// LivestockProductionFactory provides methods to create test LivestockProduction data
type LivestockProductionFactory struct{}

// NewLivestockProductionFactory creates a new LivestockProductionFactory
func NewLivestockProductionFactory() *LivestockProductionFactory {
	return &LivestockProductionFactory{}
}

// Create creates a test LivestockProduction with default values
func (f *LivestockProductionFactory) Create() *models.LivestockProduction {
	return &models.LivestockProduction{
		QtyAnimals:     120,
		ProductionYear: 2024,
		AnimalsSpecies: "Cattle",
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	User                  *UserFactory
	Farm                  *FarmFactory
	AgricultureProduction *AgricultureProductionFactory
	LivestockProduction   *LivestockProductionFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:                  NewUserFactory(),
		Farm:                  NewFarmFactory(),
		AgricultureProduction: NewAgricultureProductionFactory(),
		LivestockProduction:   NewLivestockProductionFactory(),
	}
}

// CreateOwnerWithFarms persists a user and one farm per entry of hectares, returning their ids
func (fs *FactorySet) CreateOwnerWithFarms(db *gorm.DB, hectares ...float64) (*models.User, []uint, error) {
	user := fs.User.Create()
	if err := db.Create(user).Error; err != nil {
		return nil, nil, err
	}

	ids := make([]uint, 0, len(hectares))
	for i, h := range hectares {
		farm := fs.Farm.WithOwner(user.ID, h)
		farm.Name = fmt.Sprintf("Farm %d", i+1)
		if err := db.Create(farm).Error; err != nil {
			return nil, nil, err
		}
		ids = append(ids, farm.ID)
	}
	return user, ids, nil
}
