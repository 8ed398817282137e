package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/JeongHyeonYang123/RealAssetPJT/internal/auth/domain"
)

// Querier is the subset of pgxpool.Pool the repository needs; pgxmock
// satisfies it in tests.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepository struct {
	db Querier
}

func NewPostgresRepository(db Querier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT mno, email, password_hash, name, role, refresh_token, verified, created_at, updated_at
		FROM users
		WHERE email = $1
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, email)

	var user domain.User
	err := row.Scan(&user.Mno, &user.Email, &user.PasswordHash, &user.Name, &user.Role,
		&user.RefreshToken, &user.Verified, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &user, nil
}

func (r *PostgresRepository) Create(ctx context.Context, user *domain.User) (int, error) {
	query := `
		INSERT INTO users (email, password_hash, name, role, verified, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING mno;
	`
	var mno int
	err := r.db.QueryRow(ctx, query,
		user.Email, user.PasswordHash, user.Name, user.Role, user.Verified,
		user.CreatedAt, user.UpdatedAt).Scan(&mno)
	if err != nil {
		return 0, fmt.Errorf("failed to create user: %w", err)
	}

	return mno, nil
}

func (r *PostgresRepository) UpdateRefreshToken(ctx context.Context, mno int, token *string) error {
	query := `UPDATE users SET refresh_token = $1, updated_at = now() WHERE mno = $2;`

	_, err := r.db.Exec(ctx, query, token, mno)
	if err != nil {
		return fmt.Errorf("failed to update refresh token: %w", err)
	}

	return nil
}

// SwapRefreshToken is the compare-and-swap behind rotation: the slot changes
// only if it still holds current, so a rotated-out token can never be swapped
// again.
func (r *PostgresRepository) SwapRefreshToken(ctx context.Context, mno int, current string, next *string) (bool, error) {
	query := `UPDATE users SET refresh_token = $1, updated_at = now() WHERE mno = $2 AND refresh_token = $3;`

	tag, err := r.db.Exec(ctx, query, next, mno, current)
	if err != nil {
		return false, fmt.Errorf("failed to swap refresh token: %w", err)
	}

	return tag.RowsAffected() == 1, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]domain.User, error) {
	query := `
		SELECT mno, email, password_hash, name, role, refresh_token, verified, created_at, updated_at
		FROM users
		ORDER BY mno;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		err := rows.Scan(&user.Mno, &user.Email, &user.PasswordHash, &user.Name, &user.Role,
			&user.RefreshToken, &user.Verified, &user.CreatedAt, &user.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

func (r *PostgresRepository) UpdateRole(ctx context.Context, mno int, role string) error {
	query := `UPDATE users SET role = $1, updated_at = now() WHERE mno = $2;`

	tag, err := r.db.Exec(ctx, query, role, mno)
	if err != nil {
		return fmt.Errorf("failed to update role: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %d not found", mno)
	}

	return nil
}
