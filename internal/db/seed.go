package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"ads-manager/internal/core/domain"
)

// Demo account created by Seed.
const (
	DemoEmail    = "demo@example.com"
	DemoPassword = "demo1234"
)

type seedCampaign struct {
	name      string
	objective domain.Objective
	adSets    []seedAdSet
}

type seedAdSet struct {
	name   string
	budget int64
	ads    []string
}

var demoCampaigns = []seedCampaign{
	{
		name:      "Summer Sale",
		objective: domain.ObjectiveTraffic,
		adSets: []seedAdSet{
			{name: "Evenings", budget: 5000, ads: []string{"Beach banner", "Sunglasses carousel"}},
			{name: "Weekends", budget: 12000, ads: []string{"Flash deal video"}},
		},
	},
	{
		name:      "Brand Launch",
		objective: domain.ObjectiveAwareness,
		adSets: []seedAdSet{
			{name: "Broad reach", budget: 25000, ads: []string{"Logo reveal"}},
		},
	},
	{
		name:      "Newsletter Signups",
		objective: domain.ObjectiveLeads,
	},
}

// Seed inserts a demo user owning a small campaign hierarchy. It runs in a
// single transaction and does nothing when the demo user already exists.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		userID := uuid.NewString()
		tag, err := tx.Exec(ctx, `INSERT INTO users (id, email, password_hash, name)
VALUES ($1, $2, $3, $4) ON CONFLICT (email) DO NOTHING`, userID, DemoEmail, string(hash), "Demo User")
		if err != nil {
			return fmt.Errorf("seed user: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return nil
		}

		stop := time.Now().Add(domain.DefaultCampaignDuration).Unix()
		for _, c := range demoCampaigns {
			campaignID := uuid.NewString()
			if _, err = tx.Exec(ctx, `INSERT INTO campaigns (id, name, objective, status, stop_time, user_id)
VALUES ($1, $2, $3, $4, $5, $6)`, campaignID, c.name, string(c.objective), string(domain.StatusActive), stop, userID); err != nil {
				return fmt.Errorf("seed campaign %q: %w", c.name, err)
			}
			for _, s := range c.adSets {
				adSetID := uuid.NewString()
				if _, err = tx.Exec(ctx, `INSERT INTO adsets (id, name, campaign_id, daily_budget)
VALUES ($1, $2, $3, $4)`, adSetID, s.name, campaignID, s.budget); err != nil {
					return fmt.Errorf("seed ad set %q: %w", s.name, err)
				}
				for i, name := range s.ads {
					if _, err = tx.Exec(ctx, `INSERT INTO ads (id, name, adset_id, creative_id, status)
VALUES ($1, $2, $3, $4, $5)`, uuid.NewString(), name, adSetID, fmt.Sprintf("creative-%03d", i+1), string(domain.StatusActive)); err != nil {
						return fmt.Errorf("seed ad %q: %w", name, err)
					}
				}
			}
		}
		return nil
	})
}
