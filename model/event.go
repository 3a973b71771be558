package model

import "time"

// Event ...
type Event struct {
	ID   uint64    `db:"id"`
	Seq  uint64    `db:"seq"`
	Type EventType `db:"type"`
	Data []byte    `db:"data"`

	AggregateType AggregateType `db:"aggregate_type"`
	AggregateID   Address       `db:"aggregate_id"`

	CreatedAt time.Time `db:"created_at"`
}

// AggregateType ...
type AggregateType int

const (
	// AggregateTypeRegistry ...
	AggregateTypeRegistry AggregateType = 1

	// AggregateTypeCampaign ...
	AggregateTypeCampaign AggregateType = 2
)

// EventType ...
type EventType int

const (
	// EventTypeCampaignCreated ...
	EventTypeCampaignCreated EventType = 1

	// EventTypeContributionRecorded ...
	EventTypeContributionRecorded EventType = 2

	// EventTypeCreatorWithdrawal ...
	EventTypeCreatorWithdrawal EventType = 3

	// EventTypeContributorRefunded ...
	EventTypeContributorRefunded EventType = 4

	// EventTypeCampaignCancelled ...
	EventTypeCampaignCancelled EventType = 5

	// EventTypeBadgeTransferred ...
	EventTypeBadgeTransferred EventType = 6

	// EventTypeBadgeApproved ...
	EventTypeBadgeApproved EventType = 7

	// EventTypeOperatorApproved ...
	EventTypeOperatorApproved EventType = 8
)

var eventTypeNames = map[EventType]string{
	EventTypeCampaignCreated:      "campaign_created",
	EventTypeContributionRecorded: "contribution_recorded",
	EventTypeCreatorWithdrawal:    "creator_withdrawal",
	EventTypeContributorRefunded:  "contributor_refunded",
	EventTypeCampaignCancelled:    "campaign_cancelled",
	EventTypeBadgeTransferred:     "badge_transferred",
	EventTypeBadgeApproved:        "badge_approved",
	EventTypeOperatorApproved:     "operator_approved",
}

// String ...
func (t EventType) String() string {
	name, ok := eventTypeNames[t]
	if !ok {
		return "unknown"
	}
	return name
}
