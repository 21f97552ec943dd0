package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ads-manager/internal/core/domain"
)

const campaignColumns = `id, name, objective, status, stop_time, COALESCE(user_id, ''), created_at`

// CampaignRepository implements port.CampaignRepository.
type CampaignRepository struct {
	pool *pgxpool.Pool
	now  func() time.Time
}

func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool, now: time.Now}
}

func scanCampaign(row pgx.CollectableRow) (domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(&c.ID, &c.Name, &c.Objective, &c.Status, &c.StopTime, &c.UserID, &c.CreatedAt)
	return c, err
}

func (r *CampaignRepository) GetAll(ctx context.Context, ownerID string) ([]domain.Campaign, error) {
	if ownerID == "" {
		return queryAll(ctx, r.pool, scanCampaign,
			`SELECT `+campaignColumns+` FROM campaigns ORDER BY created_at DESC`)
	}
	return queryAll(ctx, r.pool, scanCampaign,
		`SELECT `+campaignColumns+` FROM campaigns WHERE user_id = $1 ORDER BY created_at DESC`, ownerID)
}

func (r *CampaignRepository) GetByID(ctx context.Context, id string) (*domain.Campaign, error) {
	return queryOne(ctx, r.pool, scanCampaign,
		`SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id)
}

func (r *CampaignRepository) Create(ctx context.Context, c domain.NewCampaign) (*domain.Campaign, error) {
	var owner *string
	if c.UserID != "" {
		owner = &c.UserID
	}
	created, err := queryOne(ctx, r.pool, scanCampaign,
		`INSERT INTO campaigns (id, name, objective, status, stop_time, user_id)
VALUES ($1, $2, $3, $4, $5, $6) RETURNING `+campaignColumns,
		uuid.NewString(), c.Name, string(c.Objective), string(domain.StatusActive), c.StopTimeOr(r.now()), owner)
	if err != nil {
		return nil, translate(err, "user")
	}
	return created, nil
}

// Update applies the non-nil fields of patch. An empty patch returns the
// current row.
func (r *CampaignRepository) Update(ctx context.Context, id string, patch domain.CampaignPatch) (*domain.Campaign, error) {
	set := newAssignments(id)
	if patch.Name != nil {
		set.set("name", *patch.Name)
	}
	if patch.Objective != nil {
		set.set("objective", string(*patch.Objective))
	}
	if patch.Status != nil {
		set.set("status", string(*patch.Status))
	}
	if patch.StopTime != nil {
		set.set("stop_time", *patch.StopTime)
	}
	if set.empty() {
		return r.GetByID(ctx, id)
	}
	updated, err := queryOne(ctx, r.pool, scanCampaign,
		`UPDATE campaigns SET `+set.clause()+` WHERE id = $1 RETURNING `+campaignColumns, set.args...)
	if err != nil {
		return nil, translate(err, "campaign")
	}
	return updated, nil
}

// Delete cascades to the campaign's ad sets and ads.
func (r *CampaignRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.pool, "campaigns", id)
}
