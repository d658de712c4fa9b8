package ports

import (
	"context"

	"github.com/medrecords/patient-system/internal/core/domain"
)

// UserRepository defines credential persistence. FindByUsername is the only
// lookup that exposes the password hash; FindByID returns the public
// projection so callers past the login check never see it.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id int) (*domain.PublicUser, error)
	Create(ctx context.Context, username, password, role string) (*domain.PublicUser, error)
	SetDisabled(ctx context.Context, id int, disabled bool) error
}
