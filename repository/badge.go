package repository

import (
	"context"
	"github.com/QuangTung97/crowdfund/model"
)

// Badge ...
type Badge interface {
	UpsertBadges(ctx context.Context, badges []model.Badge) error
	UpsertOperators(ctx context.Context, operators []model.BadgeOperator) error

	FindAllBadges(ctx context.Context) ([]model.Badge, error)
	FindAllOperators(ctx context.Context) ([]model.BadgeOperator, error)
}

type badgeImpl struct {
}

// NewBadge ...
func NewBadge() Badge {
	return &badgeImpl{}
}

// UpsertBadges ...
func (b *badgeImpl) UpsertBadges(ctx context.Context, badges []model.Badge) error {
	query := `
INSERT INTO badge (
	campaign_address, token_id, owner, approved, created_at, updated_at
) VALUES (
	:campaign_address, :token_id, :owner, :approved, :created_at, :updated_at
) AS NEW
ON DUPLICATE KEY UPDATE
	owner = NEW.owner,
	approved = NEW.approved,
	updated_at = NEW.updated_at
`
	for _, item := range badges {
		if _, err := GetTx(ctx).NamedExecContext(ctx, query, item); err != nil {
			return err
		}
	}
	return nil
}

// UpsertOperators ...
func (b *badgeImpl) UpsertOperators(ctx context.Context, operators []model.BadgeOperator) error {
	query := `
INSERT INTO badge_operator (
	campaign_address, owner, operator, approved, created_at, updated_at
) VALUES (
	:campaign_address, :owner, :operator, :approved, :created_at, :updated_at
) AS NEW
ON DUPLICATE KEY UPDATE
	approved = NEW.approved,
	updated_at = NEW.updated_at
`
	for _, item := range operators {
		if _, err := GetTx(ctx).NamedExecContext(ctx, query, item); err != nil {
			return err
		}
	}
	return nil
}

// FindAllBadges ...
func (b *badgeImpl) FindAllBadges(ctx context.Context) ([]model.Badge, error) {
	query := `
SELECT campaign_address, token_id, owner, approved, created_at, updated_at
FROM badge
ORDER BY campaign_address, token_id
`
	var result []model.Badge
	err := GetReadonly(ctx).SelectContext(ctx, &result, query)
	return result, err
}

// FindAllOperators ...
func (b *badgeImpl) FindAllOperators(ctx context.Context) ([]model.BadgeOperator, error) {
	query := `
SELECT campaign_address, owner, operator, approved, created_at, updated_at
FROM badge_operator
ORDER BY campaign_address, owner, operator
`
	var result []model.BadgeOperator
	err := GetReadonly(ctx).SelectContext(ctx, &result, query)
	return result, err
}
