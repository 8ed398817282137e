package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/JeongHyeonYang123/RealAssetPJT/internal/auth/domain"
	"github.com/JeongHyeonYang123/RealAssetPJT/internal/auth/dto"
	"github.com/JeongHyeonYang123/RealAssetPJT/internal/auth/handler"
	"github.com/JeongHyeonYang123/RealAssetPJT/internal/auth/service"
	autherror "github.com/JeongHyeonYang123/RealAssetPJT/internal/errors"
	"github.com/JeongHyeonYang123/RealAssetPJT/internal/metrics"
	"github.com/JeongHyeonYang123/RealAssetPJT/internal/middleware"
	"github.com/JeongHyeonYang123/RealAssetPJT/internal/mocks"
	"github.com/JeongHyeonYang123/RealAssetPJT/pkg/constant"
)

type handlerFixture struct {
	repo   *mocks.MockUserRepository
	tokens *mocks.MockTokenGenerator
	app    *fiber.App
}

func newFixture(t *testing.T) *handlerFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockUserRepository(ctrl)
	mockTokens := mocks.NewMockTokenGenerator(ctrl)

	userService := service.NewUserService(mockRepo, mockTokens, zap.NewNop().Sugar())
	collector := metrics.NewCollector(prometheus.NewRegistry())
	authHandler := handler.NewAuthHandler(userService, collector)
	userHandler := handler.NewUserHandler(userService)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.NewErrorHandler(zap.NewNop().Sugar()),
	})
	handler.RegisterRoutes(app, authHandler, userHandler)

	return &handlerFixture{repo: mockRepo, tokens: mockTokens, app: app}
}

func jsonRequest(method, target string, payload any) *http.Request {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestLogin(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &domain.User{
		Mno:          7,
		Email:        "a@x.com",
		PasswordHash: string(hashed),
		Name:         "A",
		Role:         constant.RoleUser,
	}

	t.Run("success returns tokens and profile", func(t *testing.T) {
		f := newFixture(t)
		pair := &service.TokenPair{AccessToken: "access", RefreshToken: "refresh"}

		f.repo.EXPECT().GetByEmail(gomock.Any(), "a@x.com").Return(user, nil)
		f.tokens.EXPECT().Generate(user).Return(pair, nil)
		f.repo.EXPECT().UpdateRefreshToken(gomock.Any(), 7, gomock.Any()).Return(nil)

		resp, err := f.app.Test(jsonRequest(http.MethodPost, "/api/auth/login",
			dto.LoginInput{Email: "a@x.com", Password: "secret1"}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var out dto.LoginResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		assert.Equal(t, "access", out.AccessToken)
		assert.Equal(t, "refresh", out.RefreshToken)
		assert.Equal(t, 7, out.Mno)
		assert.Equal(t, constant.RoleUser, out.Role)
	})

	t.Run("wrong password yields 401", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetByEmail(gomock.Any(), "a@x.com").Return(user, nil)

		resp, err := f.app.Test(jsonRequest(http.MethodPost, "/api/auth/login",
			dto.LoginInput{Email: "a@x.com", Password: "wrong"}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("unknown email yields the same 401", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetByEmail(gomock.Any(), "ghost@x.com").Return(nil, nil)

		resp, err := f.app.Test(jsonRequest(http.MethodPost, "/api/auth/login",
			dto.LoginInput{Email: "ghost@x.com", Password: "whatever"}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		var env middleware.ErrorEnvelope
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
		// The message never says which field was wrong.
		assert.Equal(t, autherror.ErrInvalidCredentials.Error(), env.Message)
	})

	t.Run("malformed body yields 401 without store access", func(t *testing.T) {
		f := newFixture(t)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader([]byte("{broken")))
		req.Header.Set("Content-Type", "application/json")

		resp, err := f.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestRefresh(t *testing.T) {
	t.Run("missing header yields 400", func(t *testing.T) {
		f := newFixture(t)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh", nil)
		resp, err := f.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("rotation returns a fresh pair", func(t *testing.T) {
		f := newFixture(t)

		user := &domain.User{Mno: 7, Email: "a@x.com", Role: constant.RoleUser}
		claims := &service.JWTCustomClaims{Email: "a@x.com", Mno: 7}
		pair := &service.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}

		f.tokens.EXPECT().Verify("old-refresh", constant.SubjectRefresh).Return(claims, nil)
		f.repo.EXPECT().GetByEmail(gomock.Any(), "a@x.com").Return(user, nil)
		f.tokens.EXPECT().Generate(user).Return(pair, nil)
		f.repo.EXPECT().SwapRefreshToken(gomock.Any(), 7, "old-refresh", gomock.Any()).Return(true, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh", nil)
		req.Header.Set(constant.RefreshTokenHeader, "old-refresh")

		resp, err := f.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var out dto.TokenResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		assert.Equal(t, "new-access", out.AccessToken)
		assert.Equal(t, "new-refresh", out.RefreshToken)
	})

	t.Run("rotated-out token yields 401", func(t *testing.T) {
		f := newFixture(t)

		user := &domain.User{Mno: 7, Email: "a@x.com"}
		claims := &service.JWTCustomClaims{Email: "a@x.com", Mno: 7}

		f.tokens.EXPECT().Verify("stale", constant.SubjectRefresh).Return(claims, nil)
		f.repo.EXPECT().GetByEmail(gomock.Any(), "a@x.com").Return(user, nil)
		f.tokens.EXPECT().Generate(user).Return(&service.TokenPair{RefreshToken: "next"}, nil)
		f.repo.EXPECT().SwapRefreshToken(gomock.Any(), 7, "stale", gomock.Any()).Return(false, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh", nil)
		req.Header.Set(constant.RefreshTokenHeader, "stale")

		resp, err := f.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		var env middleware.ErrorEnvelope
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
		// Indistinguishable from a structurally invalid token.
		assert.Equal(t, autherror.ErrInvalidToken.Error(), env.Message)
	})
}

func TestLogout(t *testing.T) {
	t.Run("missing header yields 400", func(t *testing.T) {
		f := newFixture(t)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
		resp, err := f.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("returns an empty pair", func(t *testing.T) {
		f := newFixture(t)

		user := &domain.User{Mno: 7, Email: "a@x.com"}
		claims := &service.JWTCustomClaims{Email: "a@x.com", Mno: 7}

		f.tokens.EXPECT().Verify("current", constant.SubjectRefresh).Return(claims, nil)
		f.repo.EXPECT().GetByEmail(gomock.Any(), "a@x.com").Return(user, nil)
		f.repo.EXPECT().SwapRefreshToken(gomock.Any(), 7, "current", nil).Return(true, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
		req.Header.Set(constant.RefreshTokenHeader, "current")

		resp, err := f.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var out dto.TokenResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		assert.Empty(t, out.AccessToken)
		assert.Empty(t, out.RefreshToken)
	})
}
