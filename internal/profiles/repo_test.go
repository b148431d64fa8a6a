package profiles

import (
	"context"
	"testing"

	pkgerrors "github.com/angelmondragon/storefront-gate/pkg/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupProfilesTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.Exec(`
CREATE TABLE IF NOT EXISTS profiles (
  user_id TEXT PRIMARY KEY,
  role TEXT NOT NULL,
  created_at DATETIME,
  updated_at DATETIME
);`).Error)

	return db
}

func TestRoleByUser(t *testing.T) {
	db := setupProfilesTestDB(t)
	repo, err := NewRepository(db)
	require.NoError(t, err)

	admin := uuid.New()
	editor := uuid.New()
	require.NoError(t, db.Create(&Profile{UserID: admin, Role: RoleAdmin}).Error)
	require.NoError(t, db.Create(&Profile{UserID: editor, Role: "editor"}).Error)

	role, err := repo.RoleByUser(context.Background(), admin)
	require.NoError(t, err)
	require.Equal(t, RoleAdmin, role)

	role, err = repo.RoleByUser(context.Background(), editor)
	require.NoError(t, err)
	require.Equal(t, "editor", role)
}

func TestRoleByUserMissingProfile(t *testing.T) {
	repo, err := NewRepository(setupProfilesTestDB(t))
	require.NoError(t, err)

	_, err = repo.RoleByUser(context.Background(), uuid.New())
	require.Error(t, err)
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound), "expected NOT_FOUND, got %v", err)
}

func TestRoleByUserRequiresID(t *testing.T) {
	repo, err := NewRepository(setupProfilesTestDB(t))
	require.NoError(t, err)

	_, err = repo.RoleByUser(context.Background(), uuid.Nil)
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
}
