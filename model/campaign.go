package model

import (
	"github.com/shopspring/decimal"
	"time"
)

// Address identifies an account (creator, contributor, badge owner) or a campaign
type Address string

// Campaign ...
type Campaign struct {
	Address Address `db:"address"`
	Name    string  `db:"name"`
	Symbol  string  `db:"symbol"`
	Creator Address `db:"creator"`

	Goal     decimal.Decimal `db:"goal"`
	Deadline time.Time       `db:"deadline"`

	// RaisedAmount is the escrowed balance: contributions minus withdrawals and refunds
	RaisedAmount decimal.Decimal `db:"raised_amount"`
	// TotalContributed is the gross sum of contributions, never decremented
	TotalContributed decimal.Decimal `db:"total_contributed"`

	Cancelled   bool  `db:"cancelled"`
	NextTokenID int64 `db:"next_token_id"`
	Version     int64 `db:"version"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// CampaignStatus is derived from a campaign and the current time, never stored
type CampaignStatus int

const (
	// CampaignStatusActive ...
	CampaignStatusActive CampaignStatus = 1

	// CampaignStatusSuccessful ...
	CampaignStatusSuccessful CampaignStatus = 2

	// CampaignStatusFailed ...
	CampaignStatusFailed CampaignStatus = 3

	// CampaignStatusCancelled ...
	CampaignStatusCancelled CampaignStatus = 4
)

// String ...
func (s CampaignStatus) String() string {
	switch s {
	case CampaignStatusActive:
		return "active"
	case CampaignStatusSuccessful:
		return "successful"
	case CampaignStatusFailed:
		return "failed"
	case CampaignStatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// IsTerminal returns true for every status except active
func (s CampaignStatus) IsTerminal() bool {
	return s != CampaignStatusActive
}
