package repositories

import "lavka/internal/models"

// TokenRepository defines data access for bearer tokens.
type TokenRepository interface {
	Create(token *models.Token) error
	// GetOrCreate returns the user's active token, issuing one if absent.
	GetOrCreate(userID string) (*models.Token, error)
	GetByKey(key string) (*models.Token, error)
	DeleteByUser(userID string) error
}
