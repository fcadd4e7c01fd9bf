package repositories

import (
	"errors"
	"fmt"

	"lavka/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMTokenRepository is a GORM implementation of TokenRepository.
type GORMTokenRepository struct {
	db *gorm.DB
}

// NewGORMTokenRepository creates a new instance of GORMTokenRepository.
func NewGORMTokenRepository(db *gorm.DB) *GORMTokenRepository {
	return &GORMTokenRepository{
		db: db,
	}
}

// Create issues a token, generating the opaque key if one is not set.
func (r *GORMTokenRepository) Create(token *models.Token) error {
	if token.Key == "" {
		token.Key = uuid.New().String()
	}
	if err := r.db.Create(token).Error; err != nil {
		return fmt.Errorf("failed to create token: %w", err)
	}
	return nil
}

// GetOrCreate returns the user's active token, creating one if absent so
// repeated logins hand back the same credential.
func (r *GORMTokenRepository) GetOrCreate(userID string) (*models.Token, error) {
	var token models.Token
	err := r.db.First(&token, "user_id = ?", userID).Error
	if err == nil {
		return &token, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get token for user %s: %w", userID, err)
	}

	token = models.Token{Key: uuid.New().String(), UserID: userID}
	if err := r.db.Create(&token).Error; err != nil {
		return nil, fmt.Errorf("failed to create token for user %s: %w", userID, err)
	}
	return &token, nil
}

// GetByKey resolves an opaque bearer key to its token row.
func (r *GORMTokenRepository) GetByKey(key string) (*models.Token, error) {
	var token models.Token
	if err := r.db.First(&token, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTokenNotFound
		}
		return nil, fmt.Errorf("failed to get token: %w", err)
	}
	return &token, nil
}

// DeleteByUser revokes the user's active token. Deleting when no token
// exists is a no-op.
func (r *GORMTokenRepository) DeleteByUser(userID string) error {
	if err := r.db.Delete(&models.Token{}, "user_id = ?", userID).Error; err != nil {
		return fmt.Errorf("failed to delete token for user %s: %w", userID, err)
	}
	return nil
}
