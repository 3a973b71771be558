package escrow

import (
	"context"
	"github.com/QuangTung97/crowdfund/model"
	"github.com/shopspring/decimal"
	"sync"
)

// Vault is an in-process Transferer crediting recipients' balances
type Vault struct {
	mu      sync.Mutex
	paid    map[model.Address]decimal.Decimal
	payouts []Payout
}

var _ Transferer = &Vault{}

// NewVault ...
func NewVault() *Vault {
	return &Vault{
		paid: map[model.Address]decimal.Decimal{},
	}
}

// Transfer ...
func (v *Vault) Transfer(_ context.Context, payout Payout) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.paid[payout.To] = v.paidOf(payout.To).Add(payout.Amount)
	v.payouts = append(v.payouts, payout)
	return nil
}

// Paid returns the total transferred to an address
func (v *Vault) Paid(addr model.Address) decimal.Decimal {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.paidOf(addr)
}

func (v *Vault) paidOf(addr model.Address) decimal.Decimal {
	amount, ok := v.paid[addr]
	if !ok {
		return decimal.Zero
	}
	return amount
}

// Payouts ...
func (v *Vault) Payouts() []Payout {
	v.mu.Lock()
	defer v.mu.Unlock()

	result := make([]Payout, len(v.payouts))
	copy(result, v.payouts)
	return result
}

// Total returns the sum of all payouts
func (v *Vault) Total() decimal.Decimal {
	v.mu.Lock()
	defer v.mu.Unlock()

	total := decimal.Zero
	for _, p := range v.payouts {
		total = total.Add(p.Amount)
	}
	return total
}
