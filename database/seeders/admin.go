package seeders

import (
	"context"

	"gorm.io/gorm"

	"github.com/vivekmishra161/AKC-autoparts-1/app/models"
	"github.com/vivekmishra161/AKC-autoparts-1/app/store/sqlstore"
	"github.com/vivekmishra161/AKC-autoparts-1/config"
	"github.com/vivekmishra161/AKC-autoparts-1/pkg/auth"
)

func init() {
	Register("admin", SeedAdmin)
}

// SeedAdmin ensures the configured back-office account exists. An
// existing account keeps its current password.
func SeedAdmin(db *gorm.DB) error {
	hash, err := auth.Bcrypt{}.Hash(config.AdminPassword())
	if err != nil {
		return err
	}
	admins := sqlstore.NewAdminStore(db)
	return admins.FirstOrCreate(context.Background(), &models.Admin{
		Name:     "Administrator",
		Email:    config.AdminEmail(),
		Password: hash,
	})
}
