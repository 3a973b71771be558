package escrow

import (
	"encoding/json"
	"github.com/QuangTung97/crowdfund/model"
	"github.com/shopspring/decimal"
	"time"
)

// CampaignCreatedEvent ...
type CampaignCreatedEvent struct {
	Campaign model.Address   `json:"campaign"`
	Name     string          `json:"name"`
	Symbol   string          `json:"symbol"`
	Goal     decimal.Decimal `json:"goal"`
	Creator  model.Address   `json:"creator"`
	Deadline time.Time       `json:"deadline"`
}

// ContributionRecordedEvent ...
type ContributionRecordedEvent struct {
	Contributor model.Address   `json:"contributor"`
	Amount      decimal.Decimal `json:"amount"`
	BadgesAdded int64           `json:"badges_added"`
	TokenIDs    []int64         `json:"token_ids,omitempty"`
}

// CreatorWithdrawalEvent ...
type CreatorWithdrawalEvent struct {
	Creator   model.Address   `json:"creator"`
	Amount    decimal.Decimal `json:"amount"`
	Remaining decimal.Decimal `json:"remaining"`
}

// ContributorRefundedEvent ...
type ContributorRefundedEvent struct {
	Contributor model.Address   `json:"contributor"`
	Amount      decimal.Decimal `json:"amount"`
	Remaining   decimal.Decimal `json:"remaining"`
}

// CampaignCancelledEvent ...
type CampaignCancelledEvent struct {
	Creator model.Address `json:"creator"`
}

// BadgeTransferredEvent ...
type BadgeTransferredEvent struct {
	From    model.Address `json:"from"`
	To      model.Address `json:"to"`
	TokenID int64         `json:"token_id"`
}

// BadgeApprovedEvent ...
type BadgeApprovedEvent struct {
	Owner    model.Address `json:"owner"`
	Approved model.Address `json:"approved"`
	TokenID  int64         `json:"token_id"`
}

// OperatorApprovedEvent ...
type OperatorApprovedEvent struct {
	Owner    model.Address `json:"owner"`
	Operator model.Address `json:"operator"`
	Approved bool          `json:"approved"`
}

// NewEvent marshals the payload into an event of the given aggregate
func NewEvent(
	aggType model.AggregateType, aggID model.Address, seq uint64,
	eventType model.EventType, payload interface{}, now time.Time,
) model.Event {
	data, err := json.Marshal(payload)
	if err != nil {
		panic(err)
	}
	return model.Event{
		Seq:           seq,
		Type:          eventType,
		Data:          data,
		AggregateType: aggType,
		AggregateID:   aggID,
		CreatedAt:     now,
	}
}
