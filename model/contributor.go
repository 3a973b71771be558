package model

import (
	"github.com/shopspring/decimal"
	"time"
)

// Contributor ...
type Contributor struct {
	CampaignAddress Address `db:"campaign_address"`
	Address         Address `db:"address"`

	// Amount is the cumulative contribution, zeroed only by a refund
	Amount     decimal.Decimal `db:"amount"`
	BadgeCount int64           `db:"badge_count"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
