package escrow

import (
	"github.com/QuangTung97/crowdfund/model"
	"github.com/shopspring/decimal"
	"time"
)

// CampaignDuration is the time between creation and deadline
const CampaignDuration = 30 * 24 * time.Hour

// MinContribution is the smallest accepted contribution (0.01 unit)
var MinContribution = decimal.New(1, -2)

// MaxAmountScale is the number of fractional digits kept by the journal
const MaxAmountScale int32 = 18

// BadgeUnit is the cumulative contribution earning one badge
var BadgeUnit = decimal.New(1, 0)

// ComputeStatus derives the status of a campaign at the given time.
// Success is evaluated on the gross contributed amount so that withdrawals never
// bring a successful campaign back to active.
func ComputeStatus(c model.Campaign, now time.Time) model.CampaignStatus {
	if c.Cancelled {
		return model.CampaignStatusCancelled
	}
	if c.TotalContributed.GreaterThanOrEqual(c.Goal) {
		return model.CampaignStatusSuccessful
	}
	if !now.Before(c.Deadline) {
		return model.CampaignStatusFailed
	}
	return model.CampaignStatusActive
}

// withinScale reports whether amount is stored without rounding
func withinScale(amount decimal.Decimal) bool {
	return amount.Equal(amount.Truncate(MaxAmountScale))
}

// badgesFor returns floor(amount / BadgeUnit)
func badgesFor(amount decimal.Decimal) int64 {
	return amount.Div(BadgeUnit).Floor().IntPart()
}
