package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"farm-assets-backend/internal/auth"
	"farm-assets-backend/internal/config"
	"farm-assets-backend/internal/database"
	"farm-assets-backend/internal/database/models"
	"farm-assets-backend/internal/repository"
	"farm-assets-backend/internal/service"
	"farm-assets-backend/internal/validation"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Seed file structures, keyed by natural names so the files stay readable
type UserData struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	CPF      string `yaml:"cpf"`
	Password string `yaml:"password"`
}

type FarmData struct {
	Owner           string  `yaml:"owner"`
	Name            string  `yaml:"name"`
	City            string  `yaml:"city"`
	State           string  `yaml:"state"`
	QtyHectaresLand float64 `yaml:"qty_hectares_land"`
	Active          *bool   `yaml:"active,omitempty"`
}

type AgricultureData struct {
	Owner              string   `yaml:"owner"`
	QtyHectaresPlanted float64  `yaml:"qty_hectares_planted"`
	PlantingYear       int      `yaml:"planting_year"`
	PlantingCrop       string   `yaml:"planting_crop"`
	Farms              []string `yaml:"farms"`
}

type LivestockData struct {
	Owner          string   `yaml:"owner"`
	QtyAnimals     int      `yaml:"qty_animals"`
	ProductionYear int      `yaml:"production_year"`
	AnimalsSpecies string   `yaml:"animals_species"`
	Farms          []string `yaml:"farms"`
}

type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type FarmsFile struct {
	Farms []FarmData `yaml:"farms"`
}

type ProductionsFile struct {
	Agriculture []AgricultureData `yaml:"agriculture"`
	Livestock   []LivestockData   `yaml:"livestock"`
}

type seeder struct {
	db          *gorm.DB
	users       *service.UserService
	farms       *service.FarmService
	agriculture *service.AgricultureProductionService
	livestock   *service.LivestockProductionService

	userRepo        *repository.UserRepository
	agricultureRepo *repository.AgricultureProductionRepository
	livestockRepo   *repository.LivestockProductionRepository

	userIDs map[string]uint
	farmIDs map[string]uint
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	s, err := newSeeder(db, cfg)
	if err != nil {
		log.Fatalf("Failed to prepare seeder: %v", err)
	}

	if err := s.load("scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(cfg *config.Config, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		Driver:   cfg.DatabaseDriver,
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(cfg.DatabaseURL, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func newSeeder(db *gorm.DB, cfg *config.Config) (*seeder, error) {
	validator := validation.New()
	userRepo := repository.NewUserRepository(db)
	farmRepo := repository.NewFarmRepository(db)
	agricultureRepo := repository.NewAgricultureProductionRepository(db)
	livestockRepo := repository.NewLivestockProductionRepository(db)

	authService, err := auth.NewAuthService(&auth.AuthConfig{
		JWTSecret:  cfg.JWTSecret,
		TokenTTL:   cfg.JWTExpiresIn,
		BcryptCost: cfg.BcryptCost,
	}, userRepo, validator)
	if err != nil {
		return nil, err
	}

	return &seeder{
		db:              db,
		users:           service.NewUserService(userRepo, authService, validator),
		farms:           service.NewFarmService(farmRepo, validator),
		agriculture:     service.NewAgricultureProductionService(agricultureRepo, farmRepo, validator),
		livestock:       service.NewLivestockProductionService(livestockRepo, validator),
		userRepo:        userRepo,
		agricultureRepo: agricultureRepo,
		livestockRepo:   livestockRepo,
		userIDs:         make(map[string]uint),
		farmIDs:         make(map[string]uint),
	}, nil
}

func readYAML(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, out)
}

func (s *seeder) load(dataDir string) error {
	var users UsersFile
	if err := readYAML(filepath.Join(dataDir, "users.yaml"), &users); err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}
	var farms FarmsFile
	if err := readYAML(filepath.Join(dataDir, "farms.yaml"), &farms); err != nil {
		return fmt.Errorf("failed to load farms: %w", err)
	}
	var productions ProductionsFile
	if err := readYAML(filepath.Join(dataDir, "productions.yaml"), &productions); err != nil {
		return fmt.Errorf("failed to load productions: %w", err)
	}

	created := 0
	for _, u := range users.Users {
		ok, err := s.createUser(u)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", u.Email, err)
		}
		if ok {
			created++
		}
	}
	log.Printf("📋 Users: %d created, %d total", created, len(users.Users))

	created = 0
	for _, f := range farms.Farms {
		ok, err := s.createFarm(f)
		if err != nil {
			return fmt.Errorf("failed to create farm %s: %w", f.Name, err)
		}
		if ok {
			created++
		}
	}
	log.Printf("📋 Farms: %d created, %d total", created, len(farms.Farms))

	created = 0
	for _, p := range productions.Agriculture {
		ok, err := s.createAgriculture(p)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create %s %d: %v", p.PlantingCrop, p.PlantingYear, err)
			continue
		}
		if ok {
			created++
		}
	}
	log.Printf("📋 Agriculture productions: %d created, %d total", created, len(productions.Agriculture))

	created = 0
	for _, p := range productions.Livestock {
		ok, err := s.createLivestock(p)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create %s %d: %v", p.AnimalsSpecies, p.ProductionYear, err)
			continue
		}
		if ok {
			created++
		}
	}
	log.Printf("📋 Livestock productions: %d created, %d total", created, len(productions.Livestock))

	return nil
}

func (s *seeder) createUser(data UserData) (bool, error) {
	existing, err := s.userRepo.GetByEmail(data.Email)
	if err == nil {
		s.userIDs[data.Email] = existing.ID
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	user, err := s.users.Register(&service.RegisterUserRequest{
		Name:     data.Name,
		Email:    data.Email,
		CPF:      data.CPF,
		Password: data.Password,
	})
	if err != nil {
		return false, err
	}
	s.userIDs[data.Email] = user.ID
	return true, nil
}

func (s *seeder) owner(email string) (uint, error) {
	id, ok := s.userIDs[email]
	if !ok {
		return 0, fmt.Errorf("unknown owner %s", email)
	}
	return id, nil
}

func (s *seeder) createFarm(data FarmData) (bool, error) {
	userID, err := s.owner(data.Owner)
	if err != nil {
		return false, err
	}

	var existing models.Farm
	err = s.db.Where("user_id = ? AND name = ?", userID, data.Name).First(&existing).Error
	if err == nil {
		s.farmIDs[data.Name] = existing.ID
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	hectares := data.QtyHectaresLand
	farm, err := s.farms.Create(userID, &service.FarmRequest{
		Name:            data.Name,
		City:            data.City,
		State:           data.State,
		QtyHectaresLand: &hectares,
		Active:          data.Active,
	})
	if err != nil {
		return false, err
	}
	s.farmIDs[data.Name] = farm.ID
	return true, nil
}

func (s *seeder) resolveFarms(names []string) ([]uint, error) {
	ids := make([]uint, 0, len(names))
	for _, name := range names {
		id, ok := s.farmIDs[name]
		if !ok {
			return nil, fmt.Errorf("unknown farm %s", name)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *seeder) createAgriculture(data AgricultureData) (bool, error) {
	userID, err := s.owner(data.Owner)
	if err != nil {
		return false, err
	}

	year := data.PlantingYear
	_, total, err := s.agricultureRepo.GetByOwner(userID, repository.AgricultureFilter{
		PlantingYear: &year,
		PlantingCrop: data.PlantingCrop,
	}, 1, 0)
	if err != nil {
		return false, err
	}
	if total > 0 {
		return false, nil
	}

	farmIDs, err := s.resolveFarms(data.Farms)
	if err != nil {
		return false, err
	}

	planted := data.QtyHectaresPlanted
	_, err = s.agriculture.Create(&service.CreateAgricultureProductionRequest{
		QtyHectaresPlanted: &planted,
		PlantingYear:       &year,
		PlantingCrop:       data.PlantingCrop,
		Farms:              farmIDs,
	})
	return err == nil, err
}

func (s *seeder) createLivestock(data LivestockData) (bool, error) {
	userID, err := s.owner(data.Owner)
	if err != nil {
		return false, err
	}

	year := data.ProductionYear
	_, total, err := s.livestockRepo.GetByOwner(userID, repository.LivestockFilter{
		ProductionYear: &year,
		AnimalsSpecies: data.AnimalsSpecies,
	}, 1, 0)
	if err != nil {
		return false, err
	}
	if total > 0 {
		return false, nil
	}

	farmIDs, err := s.resolveFarms(data.Farms)
	if err != nil {
		return false, err
	}

	animals := data.QtyAnimals
	_, err = s.livestock.Create(&service.CreateLivestockProductionRequest{
		QtyAnimals:     &animals,
		ProductionYear: &year,
		AnimalsSpecies: data.AnimalsSpecies,
		Farms:          farmIDs,
	})
	return err == nil, err
}
