package escrow

import (
	"github.com/QuangTung97/crowdfund/model"
	"github.com/shopspring/decimal"
	"sort"
	"time"
)

// ContributionLedger keeps the per-contributor amounts of one campaign
// and the escrowed balance derived from them.
type ContributionLedger struct {
	campaign model.Address

	contributors map[model.Address]*model.Contributor

	raised decimal.Decimal
	total  decimal.Decimal
}

// NewContributionLedger ...
func NewContributionLedger(campaign model.Address) *ContributionLedger {
	return &ContributionLedger{
		campaign:     campaign,
		contributors: map[model.Address]*model.Contributor{},
		raised:       decimal.Zero,
		total:        decimal.Zero,
	}
}

func (l *ContributionLedger) load(raised decimal.Decimal, total decimal.Decimal, contributors []model.Contributor) {
	l.raised = raised
	l.total = total
	for _, c := range contributors {
		c := c
		l.contributors[c.Address] = &c
	}
}

// Raised returns the escrowed balance
func (l *ContributionLedger) Raised() decimal.Decimal {
	return l.raised
}

// Total returns the gross amount ever contributed
func (l *ContributionLedger) Total() decimal.Decimal {
	return l.total
}

// Contributor returns a zero record for addresses that never contributed
func (l *ContributionLedger) Contributor(addr model.Address) model.Contributor {
	c, ok := l.contributors[addr]
	if !ok {
		return model.Contributor{
			CampaignAddress: l.campaign,
			Address:         addr,
			Amount:          decimal.Zero,
		}
	}
	return *c
}

type addResult struct {
	contributor model.Contributor
	badgesAdded int64
}

// add records a contribution and returns the number of badges to mint
func (l *ContributionLedger) add(addr model.Address, amount decimal.Decimal, now time.Time) (addResult, func()) {
	c, existed := l.contributors[addr]
	if !existed {
		c = &model.Contributor{
			CampaignAddress: l.campaign,
			Address:         addr,
			Amount:          decimal.Zero,
			CreatedAt:       now,
		}
		l.contributors[addr] = c
	}
	prev := *c
	prevRaised := l.raised
	prevTotal := l.total

	c.Amount = c.Amount.Add(amount)
	c.UpdatedAt = now
	l.raised = l.raised.Add(amount)
	l.total = l.total.Add(amount)

	var added int64
	if n := badgesFor(c.Amount); n > c.BadgeCount {
		added = n - c.BadgeCount
		c.BadgeCount = n
	}

	undo := func() {
		l.raised = prevRaised
		l.total = prevTotal
		if !existed {
			delete(l.contributors, addr)
			return
		}
		*c = prev
	}
	return addResult{contributor: *c, badgesAdded: added}, undo
}

// withdraw decrements the escrowed balance
func (l *ContributionLedger) withdraw(amount decimal.Decimal) error {
	if amount.GreaterThan(l.raised) {
		return ErrInsufficientEscrow
	}
	l.raised = l.raised.Sub(amount)
	return nil
}

// restoreWithdrawal is additive so it stays correct when other operations ran in between
func (l *ContributionLedger) restoreWithdrawal(amount decimal.Decimal) {
	l.raised = l.raised.Add(amount)
}

// refund zeroes the contributor balance, badges are kept
func (l *ContributionLedger) refund(addr model.Address, now time.Time) (decimal.Decimal, error) {
	c, ok := l.contributors[addr]
	if !ok || !c.Amount.IsPositive() {
		return decimal.Zero, ErrNoBalance
	}
	amount := c.Amount
	c.Amount = decimal.Zero
	c.UpdatedAt = now
	l.raised = l.raised.Sub(amount)
	return amount, nil
}

// restoreRefund gives back a refunded balance after a failed transfer
func (l *ContributionLedger) restoreRefund(addr model.Address, amount decimal.Decimal, now time.Time) {
	c := l.contributors[addr]
	c.Amount = c.Amount.Add(amount)
	c.UpdatedAt = now
	l.raised = l.raised.Add(amount)
}

// Contributors returns all records ordered by address
func (l *ContributionLedger) Contributors() []model.Contributor {
	result := make([]model.Contributor, 0, len(l.contributors))
	for _, c := range l.contributors {
		result = append(result, *c)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Address < result[j].Address
	})
	return result
}
