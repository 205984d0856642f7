package database

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"intranet-api/internal/config"
	"intranet-api/internal/domain"
)

// EnsureAdmin makes sure the bootstrap "Admin" company and its admin account
// exist. Runs once at startup inside a transaction.
func EnsureAdmin(db *gorm.DB, cfg *config.Config) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var company domain.Company
		err := tx.First(&company, "name = ?", domain.AdminCompanyName).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			company = domain.Company{
				Name:   domain.AdminCompanyName,
				Email:  cfg.Auth.AdminEmail,
				Status: domain.CompanyStatusActive,
			}
			if err := tx.Create(&company).Error; err != nil {
				return fmt.Errorf("failed to create admin company: %w", err)
			}
		} else if err != nil {
			return fmt.Errorf("failed to look up admin company: %w", err)
		}

		var admin domain.User
		err = tx.First(&admin, "LOWER(email) = LOWER(?)", cfg.Auth.AdminEmail).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to look up admin user: %w", err)
		}

		if cfg.Auth.AdminPassword == "" {
			return fmt.Errorf("ADMIN_PASSWORD is required to bootstrap the admin account")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Auth.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}

		admin = domain.User{
			Email:        cfg.Auth.AdminEmail,
			PasswordHash: string(hash),
			Role:         domain.RoleAdmin,
			CompanyID:    &company.ID,
			Name:         "Administrator",
		}
		if err := tx.Create(&admin).Error; err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}
		return nil
	})
}
