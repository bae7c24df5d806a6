package auth

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const defaultIssuer = "farm-assets-backend"

// AuthConfig holds all authentication configuration for the application
type AuthConfig struct {
	JWTSecret  string        `yaml:"jwt_secret" json:"jwt_secret"`
	TokenTTL   time.Duration `yaml:"token_ttl" json:"token_ttl"`
	BcryptCost int           `yaml:"bcrypt_cost" json:"bcrypt_cost"`
	Issuer     string        `yaml:"issuer" json:"issuer"`
}

// ValidateConfig validates the authentication configuration and fills optional defaults
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	if c.TokenTTL <= 0 {
		return fmt.Errorf("token TTL must be positive")
	}

	if c.BcryptCost == 0 {
		c.BcryptCost = bcrypt.DefaultCost
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("bcrypt cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}

	if c.Issuer == "" {
		c.Issuer = defaultIssuer
	}

	return nil
}
