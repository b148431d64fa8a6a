// Package profiles reads the per-user role records the guard consults for
// admin-only routes.
package profiles

import (
	"context"
	"errors"
	"fmt"
	"time"

	pkgerrors "github.com/angelmondragon/storefront-gate/pkg/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const RoleAdmin = "admin"

// Profile is one row of the profiles table. Roles are written by the account
// service's admin tooling; this gateway only reads them.
type Profile struct {
	UserID    uuid.UUID `gorm:"column:user_id;primaryKey"`
	Role      string    `gorm:"column:role;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Profile) TableName() string {
	return "profiles"
}

// Repository loads role records through the shared GORM connection.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) (*Repository, error) {
	if db == nil {
		return nil, fmt.Errorf("db handle required")
	}
	return &Repository{db: db}, nil
}

// RoleByUser returns the role string recorded for the user. A missing profile
// yields a NOT_FOUND coded error; any other failure yields DEPENDENCY_ERROR,
// so callers can tell "no role" apart from "lookup failed".
func (r *Repository) RoleByUser(ctx context.Context, userID uuid.UUID) (string, error) {
	if userID == uuid.Nil {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}

	var profile Profile
	err := r.db.WithContext(ctx).First(&profile, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", pkgerrors.New(pkgerrors.CodeNotFound, "profile not found")
	}
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load profile")
	}
	return profile.Role, nil
}
