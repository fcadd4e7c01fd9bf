package repositories

import "lavka/internal/models"

// UserRepository defines data access for user accounts.
type UserRepository interface {
	Create(user *models.User) error
	GetByEmail(email string) (*models.User, error)
	GetByID(id string) (*models.User, error)
}
