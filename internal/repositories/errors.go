package repositories

import "errors"

// Sentinel errors returned by all repository implementations. Callers
// branch with errors.Is so only a genuine record-not-found maps to a 404;
// infrastructure failures keep their own identity.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrProductNotFound = errors.New("product not found")
	ErrCartNotFound    = errors.New("cart not found")
	ErrTokenNotFound   = errors.New("token not found")
)
