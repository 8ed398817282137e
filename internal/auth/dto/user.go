package dto

import (
	"time"

	"github.com/JeongHyeonYang123/RealAssetPJT/internal/auth/domain"
)

type UserOutput struct {
	Mno       int       `json:"mno"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewUserOutput(u *domain.User) UserOutput {
	return UserOutput{
		Mno:       u.Mno,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Verified:  u.Verified,
		CreatedAt: u.CreatedAt,
	}
}

type UpdateRoleInput struct {
	Role string `json:"role"`
}
