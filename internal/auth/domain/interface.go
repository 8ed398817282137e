package domain

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/JeongHyeonYang123/RealAssetPJT/internal/auth/domain UserRepository

import "context"

type UserRepository interface {
	// GetByEmail returns (nil, nil) when no user exists for the email.
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, user *User) (int, error)
	// UpdateRefreshToken unconditionally overwrites the refresh slot. Used on
	// login, where a second session is meant to evict the first.
	UpdateRefreshToken(ctx context.Context, mno int, token *string) error
	// SwapRefreshToken replaces the slot only if it still holds current and
	// reports whether the swap happened. A false return means the presented
	// token was already rotated out.
	SwapRefreshToken(ctx context.Context, mno int, current string, next *string) (bool, error)
	List(ctx context.Context) ([]User, error)
	UpdateRole(ctx context.Context, mno int, role string) error
}
