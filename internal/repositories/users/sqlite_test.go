package users

import (
	"context"
	"database/sql"
	"testing"

	"github.com/dmitrijs2005/complaintdesk/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE users (
  email TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  password TEXT NOT NULL,
  role TEXT NOT NULL
);
`)
	require.NoError(t, err)

	return db
}

func TestAppend_And_GetAll_PreservesOrder(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	u1 := &models.User{Email: "a@x.com", Name: "A", Password: "p1", Role: models.RoleUser}
	u2 := &models.User{Email: "b@x.com", Name: "B", Password: "p2", Role: models.RoleAdmin}
	require.NoError(t, r.Append(ctx, u1))
	require.NoError(t, r.Append(ctx, u2))

	got, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, *u1, got[0])
	assert.Equal(t, *u2, got[1])
}

func TestAppend_DuplicateEmailFails(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	u := &models.User{Email: "a@x.com", Name: "A", Password: "p", Role: models.RoleUser}
	require.NoError(t, r.Append(ctx, u))
	require.Error(t, r.Append(ctx, u), "email is the primary key")
}

func TestReplaceAll_OverwritesCollection(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Append(ctx, &models.User{Email: "old@x.com", Name: "Old", Password: "p", Role: models.RoleUser}))

	replacement := []models.User{
		{Email: "n1@x.com", Name: "N1", Password: "p1", Role: models.RoleUser},
		{Email: "n2@x.com", Name: "N2", Password: "p2", Role: models.RoleUser},
	}
	require.NoError(t, r.ReplaceAll(ctx, replacement))

	got, err := r.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, replacement, got)
}

func TestGetAll_EmptyDB(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	got, err := r.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}
