package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"ads-manager/internal/core/domain"
)

// UserRepository implements port.UserRepository.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func scanUser(row pgx.CollectableRow) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.CreatedAt)
	return u, err
}

func (r *UserRepository) Create(ctx context.Context, email, name, passwordHash string) (*domain.User, error) {
	u, err := queryOne(ctx, r.pool, scanUser,
		`INSERT INTO users (id, email, password_hash, name) VALUES ($1, $2, $3, $4)
RETURNING id, email, name, created_at`,
		uuid.NewString(), email, passwordHash, name)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation {
		return nil, domain.ErrEmailTaken
	}
	return u, err
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, string, error) {
	var (
		u    domain.User
		hash string
	)
	err := r.pool.QueryRow(ctx,
		`SELECT id, email, name, created_at, password_hash FROM users WHERE email = $1`, email).
		Scan(&u.ID, &u.Email, &u.Name, &u.CreatedAt, &hash)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", err
	}
	return &u, hash, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return queryOne(ctx, r.pool, scanUser, `SELECT id, email, name, created_at FROM users WHERE id = $1`, id)
}
