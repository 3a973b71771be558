package escrow

import (
	"context"
	"fmt"
	"github.com/QuangTung97/crowdfund/model"
	"github.com/QuangTung97/crowdfund/pkg/otellib"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"sync"
	"time"
)

// Escrow serializes every operation on one campaign. Ledger updates and their
// journal record happen under the lock, value transfers happen after it is released.
type Escrow struct {
	mu       sync.Mutex
	campaign *Campaign

	// resync is set when a compensation could not be journaled, the next
	// record then carries every ledger row
	resync bool

	opts escrowOptions
}

// New creates an escrow for a freshly created campaign
func New(info model.Campaign, options ...Option) *Escrow {
	return &Escrow{
		campaign: NewCampaign(info),
		opts:     newEscrowOptions(options...),
	}
}

// Restore rebuilds an escrow from persisted state
func Restore(state State, options ...Option) *Escrow {
	return &Escrow{
		campaign: restoreCampaign(state),
		opts:     newEscrowOptions(options...),
	}
}

type mutation struct {
	change
	eventType model.EventType
	payload   interface{}
}

// commit runs fn under the lock and journals its result, the change is reverted if journaling fails
func (e *Escrow) commit(ctx context.Context, fn func(now time.Time) (mutation, error)) error {
	e.mu.Lock()

	now := e.opts.now()
	m, err := fn(now)
	if err != nil {
		e.mu.Unlock()
		return err
	}

	var events []model.Event
	if m.payload != nil {
		events = append(events, e.campaign.newEvent(m.eventType, m.payload, now))
	}

	prevUpdated := e.campaign.info.UpdatedAt
	e.campaign.info.Version++
	e.campaign.info.UpdatedAt = now

	rec := Record{
		Campaign:     e.campaign.Model(),
		Contributors: m.contributors,
		Badges:       m.badges,
		Operators:    m.operators,
		Events:       events,
	}
	if e.resync {
		rec.Contributors = e.campaign.ledger.Contributors()
		rec.Badges = e.campaign.badges.Badges()
		rec.Operators = e.campaign.badges.Operators()
	}
	if err := e.opts.journal.Record(ctx, rec); err != nil {
		if m.undo != nil {
			m.undo()
		}
		e.campaign.info.Version--
		e.campaign.info.UpdatedAt = prevUpdated
		e.mu.Unlock()

		otellib.Extract(ctx).Error("escrow: record journal",
			zap.String("campaign", string(e.campaign.info.Address)), zap.Error(err))
		return fmt.Errorf("escrow: record journal: %w", err)
	}
	e.campaign.events = append(e.campaign.events, events...)
	e.resync = false
	e.mu.Unlock()

	e.notify(ctx, events)
	return nil
}

// compensate re-credits the ledger after a failed transfer. The in-memory state
// is authoritative, a failed journal write is repaired by the next commit.
func (e *Escrow) compensate(ctx context.Context, fn func(now time.Time) change) {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.opts.now()
	ch := fn(now)

	e.campaign.info.Version++
	e.campaign.info.UpdatedAt = now

	rec := Record{
		Campaign:     e.campaign.Model(),
		Contributors: ch.contributors,
	}
	if err := e.opts.journal.Record(ctx, rec); err != nil {
		e.resync = true
		otellib.Extract(ctx).Error("escrow: record compensation",
			zap.String("campaign", string(e.campaign.info.Address)), zap.Error(err))
	}
}

func (e *Escrow) notify(ctx context.Context, events []model.Event) {
	if len(events) == 0 {
		return
	}
	if err := e.opts.notifier.Notify(ctx, events); err != nil {
		otellib.Extract(ctx).Warn("escrow: notify events",
			zap.String("campaign", string(e.campaign.info.Address)), zap.Error(err))
	}
}

// emit records an event for an already applied fund movement
func (e *Escrow) emit(ctx context.Context, eventType model.EventType, payload interface{}) {
	err := e.commit(ctx, func(now time.Time) (mutation, error) {
		return mutation{eventType: eventType, payload: payload}, nil
	})
	if err != nil {
		otellib.Extract(ctx).Error("escrow: event lost after transfer",
			zap.Stringer("type", eventType), zap.Error(err))
	}
}

//------------------------------------------------------------
// Operations
//------------------------------------------------------------

// Contribute adds amount to the escrow and mints badges for every newly completed unit
func (e *Escrow) Contribute(ctx context.Context, caller model.Address, amount decimal.Decimal) (ContributeOutput, error) {
	var out ContributeOutput
	err := e.commit(ctx, func(now time.Time) (mutation, error) {
		result, ch, err := e.campaign.contribute(caller, amount, now)
		if err != nil {
			return mutation{}, err
		}
		out = result
		return mutation{
			change:    ch,
			eventType: model.EventTypeContributionRecorded,
			payload: ContributionRecordedEvent{
				Contributor: caller,
				Amount:      amount,
				BadgesAdded: result.BadgesAdded,
				TokenIDs:    result.TokenIDs,
			},
		}, nil
	})
	if err != nil {
		return ContributeOutput{}, err
	}
	return out, nil
}

// WithdrawCreatorFunds pays amount from escrow to the creator of a successful campaign
func (e *Escrow) WithdrawCreatorFunds(ctx context.Context, caller model.Address, amount decimal.Decimal) error {
	var remaining decimal.Decimal
	err := e.commit(ctx, func(now time.Time) (mutation, error) {
		ch, err := e.campaign.withdraw(caller, amount, now)
		if err != nil {
			return mutation{}, err
		}
		remaining = e.campaign.ledger.Raised()
		return mutation{change: ch}, nil
	})
	if err != nil {
		return err
	}

	payout := Payout{
		Campaign: e.Address(),
		To:       caller,
		Amount:   amount,
		Kind:     PayoutKindWithdrawal,
	}
	if err := e.opts.transferer.Transfer(ctx, payout); err != nil {
		e.compensate(ctx, func(now time.Time) change {
			e.campaign.ledger.restoreWithdrawal(amount)
			return change{}
		})
		return fmt.Errorf("escrow: transfer withdrawal: %w", err)
	}

	e.emit(ctx, model.EventTypeCreatorWithdrawal, CreatorWithdrawalEvent{
		Creator:   caller,
		Amount:    amount,
		Remaining: remaining,
	})
	return nil
}

// GetRefund returns the whole recorded contribution of caller, for failed or cancelled campaigns
func (e *Escrow) GetRefund(ctx context.Context, caller model.Address) (decimal.Decimal, error) {
	var amount decimal.Decimal
	var remaining decimal.Decimal
	err := e.commit(ctx, func(now time.Time) (mutation, error) {
		refunded, ch, err := e.campaign.refund(caller, now)
		if err != nil {
			return mutation{}, err
		}
		amount = refunded
		remaining = e.campaign.ledger.Raised()
		return mutation{change: ch}, nil
	})
	if err != nil {
		return decimal.Zero, err
	}

	payout := Payout{
		Campaign: e.Address(),
		To:       caller,
		Amount:   amount,
		Kind:     PayoutKindRefund,
	}
	if err := e.opts.transferer.Transfer(ctx, payout); err != nil {
		e.compensate(ctx, func(now time.Time) change {
			e.campaign.ledger.restoreRefund(caller, amount, now)
			return change{
				contributors: []model.Contributor{e.campaign.ledger.Contributor(caller)},
			}
		})
		return decimal.Zero, fmt.Errorf("escrow: transfer refund: %w", err)
	}

	e.emit(ctx, model.EventTypeContributorRefunded, ContributorRefundedEvent{
		Contributor: caller,
		Amount:      amount,
		Remaining:   remaining,
	})
	return amount, nil
}

// CancelCampaign lets the creator abort an active campaign, enabling refunds
func (e *Escrow) CancelCampaign(ctx context.Context, caller model.Address) error {
	return e.commit(ctx, func(now time.Time) (mutation, error) {
		ch, err := e.campaign.cancel(caller, now)
		if err != nil {
			return mutation{}, err
		}
		return mutation{
			change:    ch,
			eventType: model.EventTypeCampaignCancelled,
			payload:   CampaignCancelledEvent{Creator: caller},
		}, nil
	})
}

// TransferBadge moves badge tokenID from one owner to another
func (e *Escrow) TransferBadge(
	ctx context.Context, caller model.Address, from model.Address, to model.Address, tokenID int64,
) error {
	return e.commit(ctx, func(now time.Time) (mutation, error) {
		ch, err := e.campaign.transferBadge(caller, from, to, tokenID, now)
		if err != nil {
			return mutation{}, err
		}
		return mutation{
			change:    ch,
			eventType: model.EventTypeBadgeTransferred,
			payload: BadgeTransferredEvent{
				From:    from,
				To:      to,
				TokenID: tokenID,
			},
		}, nil
	})
}

// Approve allows `to` to transfer a single badge, an empty address clears the approval
func (e *Escrow) Approve(ctx context.Context, caller model.Address, to model.Address, tokenID int64) error {
	return e.commit(ctx, func(now time.Time) (mutation, error) {
		ch, err := e.campaign.approve(caller, to, tokenID, now)
		if err != nil {
			return mutation{}, err
		}
		return mutation{
			change:    ch,
			eventType: model.EventTypeBadgeApproved,
			payload: BadgeApprovedEvent{
				Owner:    ch.badges[0].Owner,
				Approved: to,
				TokenID:  tokenID,
			},
		}, nil
	})
}

// SetApprovalForAll grants or revokes operator rights over all badges of caller
func (e *Escrow) SetApprovalForAll(
	ctx context.Context, caller model.Address, operator model.Address, approved bool,
) error {
	return e.commit(ctx, func(now time.Time) (mutation, error) {
		ch, err := e.campaign.setApprovalForAll(caller, operator, approved, now)
		if err != nil {
			return mutation{}, err
		}
		return mutation{
			change:    ch,
			eventType: model.EventTypeOperatorApproved,
			payload: OperatorApprovedEvent{
				Owner:    caller,
				Operator: operator,
				Approved: approved,
			},
		}, nil
	})
}

//------------------------------------------------------------
// Queries
//------------------------------------------------------------

// Address ...
func (e *Escrow) Address() model.Address {
	return e.campaign.info.Address
}

// Name ...
func (e *Escrow) Name() string {
	return e.campaign.info.Name
}

// Symbol ...
func (e *Escrow) Symbol() string {
	return e.campaign.info.Symbol
}

// Creator ...
func (e *Escrow) Creator() model.Address {
	return e.campaign.info.Creator
}

// Goal ...
func (e *Escrow) Goal() decimal.Decimal {
	return e.campaign.info.Goal
}

// Deadline ...
func (e *Escrow) Deadline() time.Time {
	return e.campaign.info.Deadline
}

// RaisedAmount is the value currently held in escrow
func (e *Escrow) RaisedAmount() decimal.Decimal {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.campaign.ledger.Raised()
}

// Status ...
func (e *Escrow) Status() model.CampaignStatus {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.campaign.Status(e.opts.now())
}

// Contributor returns the record of addr, zero valued if it never contributed
func (e *Escrow) Contributor(addr model.Address) model.Contributor {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.campaign.ledger.Contributor(addr)
}

// Contributors ...
func (e *Escrow) Contributors() []model.Contributor {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.campaign.ledger.Contributors()
}

// OwnerOf ...
func (e *Escrow) OwnerOf(tokenID int64) (model.Address, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.campaign.badges.OwnerOf(tokenID)
}

// Badge ...
func (e *Escrow) Badge(tokenID int64) (model.Badge, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.campaign.badges.Badge(tokenID)
}

// TokenCount is the number of badges minted so far
func (e *Escrow) TokenCount() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.campaign.badges.Count()
}

// BalanceOf ...
func (e *Escrow) BalanceOf(owner model.Address) int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.campaign.badges.BalanceOf(owner)
}

// GetApproved ...
func (e *Escrow) GetApproved(tokenID int64) (model.Address, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.campaign.badges.GetApproved(tokenID)
}

// IsApprovedForAll ...
func (e *Escrow) IsApprovedForAll(owner model.Address, operator model.Address) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.campaign.badges.IsApprovedForAll(owner, operator)
}

// Events returns the committed events of the campaign in sequence order
func (e *Escrow) Events() []model.Event {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.campaign.Events()
}

// Snapshot returns the campaign row
func (e *Escrow) Snapshot() model.Campaign {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.campaign.Model()
}

// State returns a deep copy of the whole campaign state
func (e *Escrow) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return State{
		Campaign:     e.campaign.Model(),
		Contributors: e.campaign.ledger.Contributors(),
		Badges:       e.campaign.badges.Badges(),
		Operators:    e.campaign.badges.Operators(),
		Events:       e.campaign.Events(),
	}
}
