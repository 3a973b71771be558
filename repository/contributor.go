package repository

import (
	"context"
	"github.com/QuangTung97/crowdfund/model"
)

// Contributor ...
type Contributor interface {
	UpsertContributors(ctx context.Context, contributors []model.Contributor) error
	FindContributors(ctx context.Context, campaign model.Address) ([]model.Contributor, error)
	FindAllContributors(ctx context.Context) ([]model.Contributor, error)
}

type contributorImpl struct {
}

// NewContributor ...
func NewContributor() Contributor {
	return &contributorImpl{}
}

// UpsertContributors ...
func (c *contributorImpl) UpsertContributors(ctx context.Context, contributors []model.Contributor) error {
	query := `
INSERT INTO contributor (
	campaign_address, address, amount, badge_count, created_at, updated_at
) VALUES (
	:campaign_address, :address, :amount, :badge_count, :created_at, :updated_at
) AS NEW
ON DUPLICATE KEY UPDATE
	amount = NEW.amount,
	badge_count = NEW.badge_count,
	updated_at = NEW.updated_at
`
	for _, item := range contributors {
		if _, err := GetTx(ctx).NamedExecContext(ctx, query, item); err != nil {
			return err
		}
	}
	return nil
}

// FindContributors ...
func (c *contributorImpl) FindContributors(ctx context.Context, campaign model.Address) ([]model.Contributor, error) {
	query := `
SELECT campaign_address, address, amount, badge_count, created_at, updated_at
FROM contributor WHERE campaign_address = ?
ORDER BY address
`
	var result []model.Contributor
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, campaign)
	return result, err
}

// FindAllContributors ...
func (c *contributorImpl) FindAllContributors(ctx context.Context) ([]model.Contributor, error) {
	query := `
SELECT campaign_address, address, amount, badge_count, created_at, updated_at
FROM contributor
ORDER BY campaign_address, address
`
	var result []model.Contributor
	err := GetReadonly(ctx).SelectContext(ctx, &result, query)
	return result, err
}
