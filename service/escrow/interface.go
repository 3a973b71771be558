package escrow

import (
	"context"
	"github.com/QuangTung97/crowdfund/model"
	"github.com/shopspring/decimal"
)

//go:generate moq -out escrow_mocks_test.go . Transferer Journal Notifier

// PayoutKind ...
type PayoutKind int

const (
	// PayoutKindWithdrawal pays the creator of a successful campaign
	PayoutKindWithdrawal PayoutKind = 1

	// PayoutKindRefund pays back a contributor of a failed or cancelled campaign
	PayoutKindRefund PayoutKind = 2
)

// String ...
func (k PayoutKind) String() string {
	switch k {
	case PayoutKindWithdrawal:
		return "withdrawal"
	case PayoutKindRefund:
		return "refund"
	default:
		return "unknown"
	}
}

// Payout is a value transfer out of escrow
type Payout struct {
	Campaign model.Address
	To       model.Address
	Amount   decimal.Decimal
	Kind     PayoutKind
}

// Transferer moves value out of escrow. It is called only after the ledger
// has been updated and the campaign lock released, so it may call back into the campaign.
type Transferer interface {
	Transfer(ctx context.Context, payout Payout) error
}

// Record is one committed change of a campaign
type Record struct {
	Campaign     model.Campaign
	Contributors []model.Contributor
	Badges       []model.Badge
	Operators    []model.BadgeOperator
	Events       []model.Event
}

// Journal persists records, a failed Record aborts the operation
type Journal interface {
	Record(ctx context.Context, rec Record) error
}

// Notifier delivers committed events to external observers, failures are only logged
type Notifier interface {
	Notify(ctx context.Context, events []model.Event) error
}

// State is the complete state of a campaign, used for restoring
type State struct {
	Campaign     model.Campaign
	Contributors []model.Contributor
	Badges       []model.Badge
	Operators    []model.BadgeOperator
	Events       []model.Event
}

type nopJournal struct {
}

func (nopJournal) Record(context.Context, Record) error {
	return nil
}

type nopNotifier struct {
}

func (nopNotifier) Notify(context.Context, []model.Event) error {
	return nil
}
