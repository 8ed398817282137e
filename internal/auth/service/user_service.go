package service

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/JeongHyeonYang123/RealAssetPJT/internal/auth/domain"
	"github.com/JeongHyeonYang123/RealAssetPJT/internal/auth/dto"
	autherror "github.com/JeongHyeonYang123/RealAssetPJT/internal/errors"
	"github.com/JeongHyeonYang123/RealAssetPJT/pkg/constant"
)

type UserService struct {
	repo   domain.UserRepository
	tokens TokenGenerator
	log    *zap.SugaredLogger
}

func NewUserService(repo domain.UserRepository, tokens TokenGenerator, log *zap.SugaredLogger) *UserService {
	return &UserService{
		repo:   repo,
		tokens: tokens,
		log:    log,
	}
}

func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (*domain.User, error) {
	existing, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, autherror.ErrEmailAlreadyInUse
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &domain.User{
		Email:        input.Email,
		PasswordHash: string(hashed),
		Name:         input.Name,
		Role:         constant.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	mno, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	user.Mno = mno

	return user, nil
}

// Login verifies credentials and issues a token pair. An unknown email and a
// wrong password produce the identical failure, so the response never leaks
// whether the account exists. Storing the refresh token overwrites any prior
// slot value, which evicts a previous session on another device.
func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.LoginResponse, error) {
	if input.Email == "" || input.Password == "" {
		return nil, autherror.ErrInvalidCredentials
	}

	user, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}

	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return nil, autherror.ErrInvalidCredentials
	}

	pair, err := s.tokens.Generate(user)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateRefreshToken(ctx, user.Mno, &pair.RefreshToken); err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		Mno:          user.Mno,
		Email:        user.Email,
		Name:         user.Name,
		Role:         user.Role,
	}, nil
}

// Refresh rotates a presented refresh token for a fresh pair. The stored
// slot is replaced with a compare-and-swap, so a token can be rotated at
// most once: a replay, or the loser of two concurrent rotations, sees the
// swap fail and gets a terminal failure.
func (s *UserService) Refresh(ctx context.Context, presented string) (*TokenPair, error) {
	claims, err := s.tokens.Verify(presented, constant.SubjectRefresh)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.GetByEmail(ctx, claims.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrInvalidToken
	}

	pair, err := s.tokens.Generate(user)
	if err != nil {
		return nil, err
	}

	swapped, err := s.repo.SwapRefreshToken(ctx, user.Mno, presented, &pair.RefreshToken)
	if err != nil {
		return nil, err
	}
	if !swapped {
		s.log.Warnw("refresh token replay or lost rotation race", "email", user.Email)
		return nil, autherror.ErrTokenMismatch
	}

	return pair, nil
}

// Logout clears the refresh slot through the same verify-and-match path as
// Refresh, making the presented token permanently unusable.
func (s *UserService) Logout(ctx context.Context, presented string) error {
	claims, err := s.tokens.Verify(presented, constant.SubjectRefresh)
	if err != nil {
		return err
	}

	user, err := s.repo.GetByEmail(ctx, claims.Email)
	if err != nil {
		return err
	}
	if user == nil {
		return autherror.ErrInvalidToken
	}

	swapped, err := s.repo.SwapRefreshToken(ctx, user.Mno, presented, nil)
	if err != nil {
		return err
	}
	if !swapped {
		s.log.Warnw("logout with rotated-out refresh token", "email", user.Email)
		return autherror.ErrTokenMismatch
	}

	return nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

// UpdateUserRole takes effect on the target's next request because the
// verification gate re-fetches the identity instead of trusting token
// claims.
func (s *UserService) UpdateUserRole(ctx context.Context, mno int, role string) error {
	if role != constant.RoleUser && role != constant.RoleAdmin {
		return autherror.ErrInvalidRole
	}

	return s.repo.UpdateRole(ctx, mno, role)
}
