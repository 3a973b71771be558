package model

import "time"

// Badge is a non-fungible proof-of-support token issued by a campaign
type Badge struct {
	CampaignAddress Address `db:"campaign_address"`
	TokenID         int64   `db:"token_id"`
	Owner           Address `db:"owner"`
	Approved        Address `db:"approved"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// BadgeOperator ...
type BadgeOperator struct {
	CampaignAddress Address `db:"campaign_address"`
	Owner           Address `db:"owner"`
	Operator        Address `db:"operator"`
	Approved        bool    `db:"approved"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
