package repository

import (
	"context"
	"github.com/QuangTung97/crowdfund/model"
)

// Campaign ...
type Campaign interface {
	LockCampaign(ctx context.Context, addr model.Address) (version int64, err error)
	UpsertCampaign(ctx context.Context, campaign model.Campaign) error
	GetCampaign(ctx context.Context, addr model.Address) (model.Campaign, error)
	FindAllCampaigns(ctx context.Context) ([]model.Campaign, error)
}

type campaignImpl struct {
}

// NewCampaign ...
func NewCampaign() Campaign {
	return &campaignImpl{}
}

// LockCampaign returns the stored version, sql.ErrNoRows if the campaign does not exist yet
func (c *campaignImpl) LockCampaign(ctx context.Context, addr model.Address) (int64, error) {
	query := `SELECT version FROM campaign WHERE address = ? FOR UPDATE`
	var version int64
	err := GetTx(ctx).GetContext(ctx, &version, query, addr)
	return version, err
}

// UpsertCampaign ...
func (c *campaignImpl) UpsertCampaign(ctx context.Context, campaign model.Campaign) error {
	query := `
INSERT INTO campaign (
	address, name, symbol, creator, goal, deadline,
	raised_amount, total_contributed, cancelled, next_token_id,
	version, created_at, updated_at
) VALUES (
	:address, :name, :symbol, :creator, :goal, :deadline,
	:raised_amount, :total_contributed, :cancelled, :next_token_id,
	:version, :created_at, :updated_at
) AS NEW
ON DUPLICATE KEY UPDATE
	raised_amount = NEW.raised_amount,
	total_contributed = NEW.total_contributed,
	cancelled = NEW.cancelled,
	next_token_id = NEW.next_token_id,
	version = NEW.version,
	updated_at = NEW.updated_at
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, campaign)
	return err
}

const selectCampaignColumns = `
SELECT address, name, symbol, creator, goal, deadline,
	raised_amount, total_contributed, cancelled, next_token_id,
	version, created_at, updated_at
FROM campaign
`

// GetCampaign ...
func (c *campaignImpl) GetCampaign(ctx context.Context, addr model.Address) (model.Campaign, error) {
	query := selectCampaignColumns + `WHERE address = ?`
	var result model.Campaign
	err := GetReadonly(ctx).GetContext(ctx, &result, query, addr)
	return result, err
}

// FindAllCampaigns ...
func (c *campaignImpl) FindAllCampaigns(ctx context.Context) ([]model.Campaign, error) {
	query := selectCampaignColumns + `ORDER BY created_at, address`
	var result []model.Campaign
	err := GetReadonly(ctx).SelectContext(ctx, &result, query)
	return result, err
}
