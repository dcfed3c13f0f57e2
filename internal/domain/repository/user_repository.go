package repository

import (
	"context"

	"github.com/orugalabs/gaming-server/internal/domain/entity"
)

// UserRepository defines user persistence. Create returns ErrDuplicate when
// the email is already registered.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, u *entity.User) error
	SetPresence(ctx context.Context, id int64, online bool) error
	SetBan(ctx context.Context, id int64, banned bool, reason string) error
	List(ctx context.Context) ([]entity.User, error)
}
