package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ads-manager/internal/core/domain"
)

const adColumns = `id, name, adset_id, creative_id, status, created_at`

// AdRepository implements port.AdRepository.
type AdRepository struct {
	pool *pgxpool.Pool
}

func NewAdRepository(pool *pgxpool.Pool) *AdRepository {
	return &AdRepository{pool: pool}
}

func scanAd(row pgx.CollectableRow) (domain.Ad, error) {
	var a domain.Ad
	err := row.Scan(&a.ID, &a.Name, &a.AdSetID, &a.CreativeID, &a.Status, &a.CreatedAt)
	return a, err
}

func (r *AdRepository) GetAll(ctx context.Context) ([]domain.Ad, error) {
	return queryAll(ctx, r.pool, scanAd, `SELECT `+adColumns+` FROM ads ORDER BY created_at DESC`)
}

func (r *AdRepository) GetByAdSetID(ctx context.Context, adSetID string) ([]domain.Ad, error) {
	return queryAll(ctx, r.pool, scanAd,
		`SELECT `+adColumns+` FROM ads WHERE adset_id = $1 ORDER BY created_at DESC`, adSetID)
}

func (r *AdRepository) GetByID(ctx context.Context, id string) (*domain.Ad, error) {
	return queryOne(ctx, r.pool, scanAd, `SELECT `+adColumns+` FROM ads WHERE id = $1`, id)
}

// Create stores the ad, ACTIVE unless a status was given.
func (r *AdRepository) Create(ctx context.Context, a domain.NewAd) (*domain.Ad, error) {
	created, err := queryOne(ctx, r.pool, scanAd,
		`INSERT INTO ads (id, name, adset_id, creative_id, status)
VALUES ($1, $2, $3, $4, $5) RETURNING `+adColumns,
		uuid.NewString(), a.Name, a.AdSetID, a.CreativeID, string(a.StatusOrDefault()))
	if err != nil {
		return nil, translate(err, "ad set")
	}
	return created, nil
}

func (r *AdRepository) Update(ctx context.Context, id string, patch domain.AdPatch) (*domain.Ad, error) {
	set := newAssignments(id)
	if patch.Name != nil {
		set.set("name", *patch.Name)
	}
	if patch.CreativeID != nil {
		set.set("creative_id", *patch.CreativeID)
	}
	if patch.Status != nil {
		set.set("status", string(*patch.Status))
	}
	if set.empty() {
		return r.GetByID(ctx, id)
	}
	updated, err := queryOne(ctx, r.pool, scanAd,
		`UPDATE ads SET `+set.clause()+` WHERE id = $1 RETURNING `+adColumns, set.args...)
	if err != nil {
		return nil, translate(err, "ad")
	}
	return updated, nil
}

func (r *AdRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.pool, "ads", id)
}
