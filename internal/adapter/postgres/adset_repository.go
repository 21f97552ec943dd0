package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ads-manager/internal/core/domain"
)

const adSetColumns = `id, name, campaign_id, daily_budget, created_at`

// AdSetRepository implements port.AdSetRepository.
type AdSetRepository struct {
	pool *pgxpool.Pool
}

func NewAdSetRepository(pool *pgxpool.Pool) *AdSetRepository {
	return &AdSetRepository{pool: pool}
}

func scanAdSet(row pgx.CollectableRow) (domain.AdSet, error) {
	var s domain.AdSet
	err := row.Scan(&s.ID, &s.Name, &s.CampaignID, &s.DailyBudget, &s.CreatedAt)
	return s, err
}

func (r *AdSetRepository) GetAll(ctx context.Context) ([]domain.AdSet, error) {
	return queryAll(ctx, r.pool, scanAdSet, `SELECT `+adSetColumns+` FROM adsets ORDER BY created_at DESC`)
}

func (r *AdSetRepository) GetByCampaignID(ctx context.Context, campaignID string) ([]domain.AdSet, error) {
	return queryAll(ctx, r.pool, scanAdSet,
		`SELECT `+adSetColumns+` FROM adsets WHERE campaign_id = $1 ORDER BY created_at DESC`, campaignID)
}

func (r *AdSetRepository) GetByID(ctx context.Context, id string) (*domain.AdSet, error) {
	return queryOne(ctx, r.pool, scanAdSet, `SELECT `+adSetColumns+` FROM adsets WHERE id = $1`, id)
}

func (r *AdSetRepository) Create(ctx context.Context, s domain.NewAdSet) (*domain.AdSet, error) {
	created, err := queryOne(ctx, r.pool, scanAdSet,
		`INSERT INTO adsets (id, name, campaign_id, daily_budget)
VALUES ($1, $2, $3, $4) RETURNING `+adSetColumns,
		uuid.NewString(), s.Name, s.CampaignID, s.DailyBudget)
	if err != nil {
		return nil, translate(err, "campaign")
	}
	return created, nil
}

func (r *AdSetRepository) Update(ctx context.Context, id string, patch domain.AdSetPatch) (*domain.AdSet, error) {
	set := newAssignments(id)
	if patch.Name != nil {
		set.set("name", *patch.Name)
	}
	if patch.DailyBudget != nil {
		set.set("daily_budget", *patch.DailyBudget)
	}
	if set.empty() {
		return r.GetByID(ctx, id)
	}
	updated, err := queryOne(ctx, r.pool, scanAdSet,
		`UPDATE adsets SET `+set.clause()+` WHERE id = $1 RETURNING `+adSetColumns, set.args...)
	if err != nil {
		return nil, translate(err, "ad set")
	}
	return updated, nil
}

func (r *AdSetRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.pool, "adsets", id)
}
