package ports

import (
	"context"

	"github.com/medrecords/patient-system/internal/core/domain"
)

// LoginInput carries everything the auth service needs to authenticate a
// login attempt. RemoteIP feeds the attempt limiter only.
type LoginInput struct {
	Username string
	Password string
	RemoteIP string
}

type AuthService interface {
	// Login verifies credentials and returns a signed session token plus
	// the public view of the account.
	Login(ctx context.Context, in LoginInput) (string, *domain.PublicUser, error)
	// CurrentUser resolves the account behind an authenticated request.
	CurrentUser(ctx context.Context, userID int) (*domain.PublicUser, error)
}
