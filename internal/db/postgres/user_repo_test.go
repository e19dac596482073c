package postgres

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Snapfeed/internal/core/users"
)

func TestUserRepo_FindByID(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	repo := NewUserRepository(db)
	seeded := createTestUser(t, db)

	user, err := repo.FindByID(context.Background(), seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, seeded.Name, user.Name)
	assert.Equal(t, "I am new!", user.Status, "status defaults at creation")
	assert.Empty(t, user.PostIDs)
}

func TestUserRepo_FindByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	repo := NewUserRepository(db)

	_, err := repo.FindByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, users.ErrUserNotFound)
}

func TestUserRepo_SavePostIndexRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	repo := NewUserRepository(db)
	seeded := createTestUser(t, db)

	user, err := repo.FindByID(context.Background(), seeded.ID)
	require.NoError(t, err)

	user.Status = "posting away"
	user.AddPostID("post-a")
	user.AddPostID("post-b")
	require.NoError(t, repo.Save(context.Background(), user))

	found, err := repo.FindByID(context.Background(), seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, "posting away", found.Status)
	assert.Equal(t, []string{"post-a", "post-b"}, found.PostIDs)

	found.RemovePostID("post-a")
	require.NoError(t, repo.Save(context.Background(), found))

	found, err = repo.FindByID(context.Background(), seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"post-b"}, found.PostIDs)
}
