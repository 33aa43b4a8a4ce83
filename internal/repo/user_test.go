package repo_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramoniswack/rent-tent-server/internal/domain"
	"github.com/ramoniswack/rent-tent-server/internal/repo"
)

func TestUserRepo_Create(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewUserRepo(tx)

	got, err := r.Create(context.Background(), domain.User{
		Username:  "maya",
		Name:      "Maya Gurung",
		AvatarURL: "https://example.com/maya.png",
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.Equal(t, "maya", got.Username)
	assert.Equal(t, "Maya Gurung", got.Name)
	assert.Equal(t, "https://example.com/maya.png", got.AvatarURL)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestUserRepo_GetByID(t *testing.T) {
	tx := newTestTx(t)
	ctx := context.Background()
	created := createUser(t, tx, "maya")
	r := repo.NewUserRepo(tx)

	got, err := r.GetByID(ctx, created.ID)

	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.Username, got.Username)
}

func TestUserRepo_GetByID_NotFound(t *testing.T) {
	tx := newTestTx(t)

	_, err := repo.NewUserRepo(tx).GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserRepo_GetByUsername(t *testing.T) {
	tx := newTestTx(t)
	ctx := context.Background()
	created := createUser(t, tx, "maya")
	r := repo.NewUserRepo(tx)

	got, err := r.GetByUsername(ctx, "maya")

	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = r.GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
