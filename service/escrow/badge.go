package escrow

import (
	"github.com/QuangTung97/crowdfund/model"
	"sort"
	"time"
)

type operatorKey struct {
	owner    model.Address
	operator model.Address
}

// BadgeLedger tracks ownership of the badges issued by one campaign.
// Token ids are sequential starting from zero. It holds no funds.
type BadgeLedger struct {
	campaign model.Address

	badges    map[int64]*model.Badge
	operators map[operatorKey]*model.BadgeOperator
	balances  map[model.Address]int64
	nextID    int64
}

// NewBadgeLedger ...
func NewBadgeLedger(campaign model.Address) *BadgeLedger {
	return &BadgeLedger{
		campaign:  campaign,
		badges:    map[int64]*model.Badge{},
		operators: map[operatorKey]*model.BadgeOperator{},
		balances:  map[model.Address]int64{},
	}
}

func (l *BadgeLedger) load(nextID int64, badges []model.Badge, operators []model.BadgeOperator) {
	l.nextID = nextID
	for _, b := range badges {
		b := b
		l.badges[b.TokenID] = &b
		l.balances[b.Owner]++
	}
	for _, op := range operators {
		op := op
		l.operators[operatorKey{owner: op.Owner, operator: op.Operator}] = &op
	}
}

// Count returns the number of badges ever minted
func (l *BadgeLedger) Count() int64 {
	return l.nextID
}

// Mint issues n badges to the owner and returns their token ids
func (l *BadgeLedger) Mint(to model.Address, n int64, now time.Time) []int64 {
	if n <= 0 {
		return nil
	}
	ids := make([]int64, 0, n)
	for i := int64(0); i < n; i++ {
		id := l.nextID
		l.nextID++

		l.badges[id] = &model.Badge{
			CampaignAddress: l.campaign,
			TokenID:         id,
			Owner:           to,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		ids = append(ids, id)
	}
	l.balances[to] += n
	return ids
}

// unmint removes the badges returned by the latest Mint
func (l *BadgeLedger) unmint(to model.Address, ids []int64) {
	for _, id := range ids {
		delete(l.badges, id)
	}
	l.nextID -= int64(len(ids))
	l.balances[to] -= int64(len(ids))
}

func (l *BadgeLedger) get(tokenID int64) (*model.Badge, error) {
	b, ok := l.badges[tokenID]
	if !ok {
		return nil, ErrUnknownToken
	}
	return b, nil
}

// OwnerOf ...
func (l *BadgeLedger) OwnerOf(tokenID int64) (model.Address, error) {
	b, err := l.get(tokenID)
	if err != nil {
		return "", err
	}
	return b.Owner, nil
}

// Badge ...
func (l *BadgeLedger) Badge(tokenID int64) (model.Badge, error) {
	b, err := l.get(tokenID)
	if err != nil {
		return model.Badge{}, err
	}
	return *b, nil
}

// BalanceOf returns the number of badges currently owned
func (l *BadgeLedger) BalanceOf(owner model.Address) int64 {
	return l.balances[owner]
}

// GetApproved ...
func (l *BadgeLedger) GetApproved(tokenID int64) (model.Address, error) {
	b, err := l.get(tokenID)
	if err != nil {
		return "", err
	}
	return b.Approved, nil
}

// IsApprovedForAll ...
func (l *BadgeLedger) IsApprovedForAll(owner model.Address, operator model.Address) bool {
	op, ok := l.operators[operatorKey{owner: owner, operator: operator}]
	return ok && op.Approved
}

func (l *BadgeLedger) isApprovedOrOwner(caller model.Address, b *model.Badge) bool {
	if caller == b.Owner {
		return true
	}
	if b.Approved != "" && caller == b.Approved {
		return true
	}
	return l.IsApprovedForAll(b.Owner, caller)
}

// Transfer moves a badge, the caller must be owner, approved or operator.
// It returns a function that reverts the transfer.
func (l *BadgeLedger) Transfer(
	caller model.Address, from model.Address, to model.Address, tokenID int64, now time.Time,
) (func(), error) {
	b, err := l.get(tokenID)
	if err != nil {
		return nil, err
	}
	if !l.isApprovedOrOwner(caller, b) {
		return nil, ErrNotTokenOwner
	}
	if b.Owner != from {
		return nil, ErrWrongFrom
	}
	if to == "" {
		return nil, ErrInvalidRecipient
	}

	prev := *b

	b.Owner = to
	b.Approved = ""
	b.UpdatedAt = now
	l.balances[from]--
	l.balances[to]++

	return func() {
		*b = prev
		l.balances[to]--
		l.balances[from]++
	}, nil
}

// Approve sets the single-token approval, an empty address clears it
func (l *BadgeLedger) Approve(caller model.Address, to model.Address, tokenID int64, now time.Time) (func(), error) {
	b, err := l.get(tokenID)
	if err != nil {
		return nil, err
	}
	if to == b.Owner {
		return nil, ErrApproveToOwner
	}
	if caller != b.Owner && !l.IsApprovedForAll(b.Owner, caller) {
		return nil, ErrNotTokenOwner
	}

	prev := *b
	b.Approved = to
	b.UpdatedAt = now

	return func() {
		*b = prev
	}, nil
}

// SetApprovalForAll grants or revokes an operator for every badge of the owner
func (l *BadgeLedger) SetApprovalForAll(
	owner model.Address, operator model.Address, approved bool, now time.Time,
) (func(), error) {
	if operator == "" {
		return nil, ErrInvalidRecipient
	}
	if operator == owner {
		return nil, ErrApproveToOwner
	}

	key := operatorKey{owner: owner, operator: operator}
	op, existed := l.operators[key]
	if !existed {
		op = &model.BadgeOperator{
			CampaignAddress: l.campaign,
			Owner:           owner,
			Operator:        operator,
			CreatedAt:       now,
		}
		l.operators[key] = op
	}
	prev := *op

	op.Approved = approved
	op.UpdatedAt = now

	return func() {
		if !existed {
			delete(l.operators, key)
			return
		}
		*op = prev
	}, nil
}

// Operator ...
func (l *BadgeLedger) Operator(owner model.Address, operator model.Address) model.BadgeOperator {
	op, ok := l.operators[operatorKey{owner: owner, operator: operator}]
	if !ok {
		return model.BadgeOperator{CampaignAddress: l.campaign, Owner: owner, Operator: operator}
	}
	return *op
}

// Badges returns all badges ordered by token id
func (l *BadgeLedger) Badges() []model.Badge {
	result := make([]model.Badge, 0, len(l.badges))
	for _, b := range l.badges {
		result = append(result, *b)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].TokenID < result[j].TokenID
	})
	return result
}

// Operators ...
func (l *BadgeLedger) Operators() []model.BadgeOperator {
	result := make([]model.BadgeOperator, 0, len(l.operators))
	for _, op := range l.operators {
		result = append(result, *op)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Owner != result[j].Owner {
			return result[i].Owner < result[j].Owner
		}
		return result[i].Operator < result[j].Operator
	})
	return result
}
