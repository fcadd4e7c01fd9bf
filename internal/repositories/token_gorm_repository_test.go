package repositories_test

import (
	"testing"

	"lavka/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenGetOrCreate_ReusesActiveToken(t *testing.T) {
	db := setupDB(t)
	user := seedUser(t, db, "token@example.com")
	tokenRepo := repositories.NewGORMTokenRepository(db)

	first, err := tokenRepo.GetOrCreate(user.ID)
	require.NoError(t, err)
	require.NotEmpty(t, first.Key)

	second, err := tokenRepo.GetOrCreate(user.ID)
	require.NoError(t, err)
	assert.Equal(t, first.Key, second.Key)
}

func TestTokenDeleteByUser_Revokes(t *testing.T) {
	db := setupDB(t)
	user := seedUser(t, db, "revoke@example.com")
	tokenRepo := repositories.NewGORMTokenRepository(db)

	token, err := tokenRepo.GetOrCreate(user.ID)
	require.NoError(t, err)

	require.NoError(t, tokenRepo.DeleteByUser(user.ID))

	_, err = tokenRepo.GetByKey(token.Key)
	assert.ErrorIs(t, err, repositories.ErrTokenNotFound)

	// A fresh login after logout issues a different key.
	reissued, err := tokenRepo.GetOrCreate(user.ID)
	require.NoError(t, err)
	assert.NotEqual(t, token.Key, reissued.Key)
}
