package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/JeongHyeonYang123/RealAssetPJT/internal/auth/service TokenGenerator

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/JeongHyeonYang123/RealAssetPJT/internal/auth/domain"
	autherror "github.com/JeongHyeonYang123/RealAssetPJT/internal/errors"
	"github.com/JeongHyeonYang123/RealAssetPJT/pkg/constant"
)

type TokenGenerator interface {
	Generate(user *domain.User) (*TokenPair, error)
	Verify(tokenString, subject string) (*JWTCustomClaims, error)
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type JWTCustomClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Mno   int    `json:"mno"`
}

// TokenService signs and verifies both token kinds with a single symmetric
// key. It performs no I/O; validity is purely a signature and clock check.
type TokenService struct {
	secret             []byte
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
}

func NewTokenService(secret string, accessMinutes, refreshMinutes int) (*TokenService, error) {
	if len(secret) < constant.MinSigningKeyBytes {
		return nil, fmt.Errorf("signing key must be at least %d bytes, got %d",
			constant.MinSigningKeyBytes, len(secret))
	}

	return &TokenService{
		secret:             []byte(secret),
		AccessTokenExpiry:  time.Duration(accessMinutes) * time.Minute,
		RefreshTokenExpiry: time.Duration(refreshMinutes) * time.Minute,
	}, nil
}

// Generate issues an access/refresh pair for the user. Both tokens carry the
// same claim shape; they differ in subject tag and validity window.
func (ts *TokenService) Generate(user *domain.User) (*TokenPair, error) {
	now := time.Now()

	accessToken, err := ts.sign(user, constant.SubjectAccess, now, ts.AccessTokenExpiry)
	if err != nil {
		return nil, err
	}

	refreshToken, err := ts.sign(user, constant.SubjectRefresh, now, ts.RefreshTokenExpiry)
	if err != nil {
		return nil, err
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (ts *TokenService) sign(user *domain.User, subject string, now time.Time, validity time.Duration) (string, error) {
	claims := JWTCustomClaims{
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
		Mno:   user.Mno,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validity)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ts.secret)
}

// Verify checks signature and expiry and that the token carries the expected
// subject tag, so an access token cannot be replayed against the refresh
// endpoint or vice versa.
func (ts *TokenService) Verify(tokenString, subject string) (*JWTCustomClaims, error) {
	claims := &JWTCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return ts.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", autherror.ErrInvalidToken, err)
	}

	if !token.Valid || claims.Subject != subject {
		return nil, autherror.ErrInvalidToken
	}

	return claims, nil
}
