package escrow

import (
	"github.com/QuangTung97/crowdfund/model"
	"github.com/shopspring/decimal"
	"time"
)

// Campaign is the state machine of one fundraising campaign together with its
// contribution and badge ledgers. It is not safe for concurrent use, see Escrow.
type Campaign struct {
	info   model.Campaign
	ledger *ContributionLedger
	badges *BadgeLedger
	events []model.Event
}

// NewCampaign ...
func NewCampaign(info model.Campaign) *Campaign {
	return restoreCampaign(State{Campaign: info})
}

func restoreCampaign(state State) *Campaign {
	info := state.Campaign
	c := &Campaign{
		info:   info,
		ledger: NewContributionLedger(info.Address),
		badges: NewBadgeLedger(info.Address),
	}
	c.ledger.load(info.RaisedAmount, info.TotalContributed, state.Contributors)
	c.badges.load(info.NextTokenID, state.Badges, state.Operators)
	c.events = append(c.events, state.Events...)
	return c
}

// Model returns the campaign row with the ledger totals filled in
func (c *Campaign) Model() model.Campaign {
	m := c.info
	m.RaisedAmount = c.ledger.Raised()
	m.TotalContributed = c.ledger.Total()
	m.NextTokenID = c.badges.Count()
	return m
}

// Status ...
func (c *Campaign) Status(now time.Time) model.CampaignStatus {
	return ComputeStatus(c.Model(), now)
}

// Events ...
func (c *Campaign) Events() []model.Event {
	result := make([]model.Event, len(c.events))
	copy(result, c.events)
	return result
}

// newEvent builds the next event of the campaign without appending it
func (c *Campaign) newEvent(eventType model.EventType, payload interface{}, now time.Time) model.Event {
	seq := uint64(len(c.events)) + 1
	return NewEvent(model.AggregateTypeCampaign, c.info.Address, seq, eventType, payload, now)
}

// change lists the rows touched by an operation and how to revert it
type change struct {
	contributors []model.Contributor
	badges       []model.Badge
	operators    []model.BadgeOperator
	undo         func()
}

// ContributeOutput ...
type ContributeOutput struct {
	Contributor model.Contributor
	BadgesAdded int64
	TokenIDs    []int64
	Status      model.CampaignStatus
}

func (c *Campaign) contribute(
	caller model.Address, amount decimal.Decimal, now time.Time,
) (ContributeOutput, change, error) {
	if caller == "" {
		return ContributeOutput{}, change{}, ErrEmptyCaller
	}
	if amount.LessThan(MinContribution) {
		return ContributeOutput{}, change{}, ErrBelowMinimum
	}
	if !withinScale(amount) {
		return ContributeOutput{}, change{}, ErrAmountPrecision
	}

	switch c.Status(now) {
	case model.CampaignStatusCancelled:
		return ContributeOutput{}, change{}, ErrCampaignCancelled
	case model.CampaignStatusSuccessful:
		return ContributeOutput{}, change{}, ErrGoalAlreadyMet
	case model.CampaignStatusFailed:
		return ContributeOutput{}, change{}, ErrDeadlinePassed
	default:
	}

	res, undoAdd := c.ledger.add(caller, amount, now)
	ids := c.badges.Mint(caller, res.badgesAdded, now)

	badges := make([]model.Badge, 0, len(ids))
	for _, id := range ids {
		b, _ := c.badges.Badge(id)
		badges = append(badges, b)
	}

	out := ContributeOutput{
		Contributor: res.contributor,
		BadgesAdded: res.badgesAdded,
		TokenIDs:    ids,
		Status:      c.Status(now),
	}
	return out, change{
		contributors: []model.Contributor{res.contributor},
		badges:       badges,
		undo: func() {
			c.badges.unmint(caller, ids)
			undoAdd()
		},
	}, nil
}

func (c *Campaign) withdraw(caller model.Address, amount decimal.Decimal, now time.Time) (change, error) {
	if caller == "" {
		return change{}, ErrEmptyCaller
	}
	if caller != c.info.Creator {
		return change{}, ErrNotCreator
	}
	if !amount.IsPositive() {
		return change{}, ErrInvalidAmount
	}
	if !withinScale(amount) {
		return change{}, ErrAmountPrecision
	}
	if c.Status(now) != model.CampaignStatusSuccessful {
		return change{}, ErrNotSuccessful
	}
	if err := c.ledger.withdraw(amount); err != nil {
		return change{}, err
	}
	return change{
		undo: func() {
			c.ledger.restoreWithdrawal(amount)
		},
	}, nil
}

func (c *Campaign) refund(caller model.Address, now time.Time) (decimal.Decimal, change, error) {
	status := c.Status(now)
	if status != model.CampaignStatusCancelled && status != model.CampaignStatusFailed {
		return decimal.Zero, change{}, ErrNotRefundable
	}

	amount, err := c.ledger.refund(caller, now)
	if err != nil {
		return decimal.Zero, change{}, err
	}
	return amount, change{
		contributors: []model.Contributor{c.ledger.Contributor(caller)},
		undo: func() {
			c.ledger.restoreRefund(caller, amount, now)
		},
	}, nil
}

func (c *Campaign) cancel(caller model.Address, now time.Time) (change, error) {
	if caller == "" {
		return change{}, ErrEmptyCaller
	}
	if caller != c.info.Creator {
		return change{}, ErrNotCreator
	}

	switch c.Status(now) {
	case model.CampaignStatusCancelled:
		return change{}, ErrAlreadyCancelled
	case model.CampaignStatusSuccessful:
		return change{}, ErrAlreadySuccessful
	case model.CampaignStatusFailed:
		return change{}, ErrPastDeadline
	default:
	}

	c.info.Cancelled = true
	return change{
		undo: func() {
			c.info.Cancelled = false
		},
	}, nil
}

func (c *Campaign) transferBadge(
	caller model.Address, from model.Address, to model.Address, tokenID int64, now time.Time,
) (change, error) {
	undo, err := c.badges.Transfer(caller, from, to, tokenID, now)
	if err != nil {
		return change{}, err
	}
	b, _ := c.badges.Badge(tokenID)
	return change{
		badges: []model.Badge{b},
		undo:   undo,
	}, nil
}

func (c *Campaign) approve(caller model.Address, to model.Address, tokenID int64, now time.Time) (change, error) {
	undo, err := c.badges.Approve(caller, to, tokenID, now)
	if err != nil {
		return change{}, err
	}
	b, _ := c.badges.Badge(tokenID)
	return change{
		badges: []model.Badge{b},
		undo:   undo,
	}, nil
}

func (c *Campaign) setApprovalForAll(
	caller model.Address, operator model.Address, approved bool, now time.Time,
) (change, error) {
	if caller == "" {
		return change{}, ErrEmptyCaller
	}
	undo, err := c.badges.SetApprovalForAll(caller, operator, approved, now)
	if err != nil {
		return change{}, err
	}
	return change{
		operators: []model.BadgeOperator{c.badges.Operator(caller, operator)},
		undo:      undo,
	}, nil
}
