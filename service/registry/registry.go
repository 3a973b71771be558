package registry

import (
	"context"
	"fmt"
	"github.com/QuangTung97/crowdfund/model"
	"github.com/QuangTung97/crowdfund/pkg/otellib"
	"github.com/QuangTung97/crowdfund/pkg/util"
	"github.com/QuangTung97/crowdfund/service/escrow"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"sort"
	"sync"
)

//go:generate moq -out registry_mocks_test.go . Loader

// ErrInvalidGoal ...
var ErrInvalidGoal = escrow.NewError(escrow.KindAmount, "goal must be positive")

// ErrCampaignNotFound ...
var ErrCampaignNotFound = escrow.NewError(escrow.KindReference, "campaign not found")

// Snapshot is the persisted state of every campaign plus the registry event log
type Snapshot struct {
	Campaigns []escrow.State
	Events    []model.Event
}

// Loader reads the persisted state at startup
type Loader interface {
	LoadAll(ctx context.Context) (Snapshot, error)
}

// CreateInput ...
type CreateInput struct {
	Name   string
	Symbol string
	Goal   decimal.Decimal
}

// Registry creates campaigns and indexes them by creator
type Registry struct {
	mu sync.RWMutex

	campaigns map[model.Address]*escrow.Escrow
	ordered   []*escrow.Escrow
	byCreator map[model.Address][]model.Address
	events    []model.Event

	opts registryOptions
}

// New ...
func New(options ...Option) *Registry {
	return &Registry{
		campaigns: map[model.Address]*escrow.Escrow{},
		byCreator: map[model.Address][]model.Address{},
		opts:      newRegistryOptions(options...),
	}
}

func (r *Registry) nextAddress(creator model.Address) model.Address {
	nonce := uint64(len(r.byCreator[creator]))
	for {
		addr := model.Address(util.DeriveAddress(string(creator), nonce))
		if _, existed := r.campaigns[addr]; !existed {
			return addr
		}
		nonce++
	}
}

func (r *Registry) add(esc *escrow.Escrow) {
	r.campaigns[esc.Address()] = esc
	r.ordered = append(r.ordered, esc)
	r.byCreator[esc.Creator()] = append(r.byCreator[esc.Creator()], esc.Address())
}

// Create starts a new campaign with the caller as creator, the deadline is fixed at creation
func (r *Registry) Create(ctx context.Context, caller model.Address, input CreateInput) (*escrow.Escrow, error) {
	if caller == "" {
		return nil, escrow.ErrEmptyCaller
	}
	if !input.Goal.IsPositive() {
		return nil, ErrInvalidGoal
	}
	if !input.Goal.Equal(input.Goal.Truncate(escrow.MaxAmountScale)) {
		return nil, escrow.ErrAmountPrecision
	}

	r.mu.Lock()

	now := r.opts.now()
	addr := r.nextAddress(caller)

	info := model.Campaign{
		Address:          addr,
		Name:             input.Name,
		Symbol:           input.Symbol,
		Creator:          caller,
		Goal:             input.Goal,
		Deadline:         now.Add(escrow.CampaignDuration),
		RaisedAmount:     decimal.Zero,
		TotalContributed: decimal.Zero,
		Version:          1,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	event := escrow.NewEvent(
		model.AggregateTypeRegistry, addr, uint64(len(r.events))+1,
		model.EventTypeCampaignCreated, escrow.CampaignCreatedEvent{
			Campaign: addr,
			Name:     info.Name,
			Symbol:   info.Symbol,
			Goal:     info.Goal,
			Creator:  caller,
			Deadline: info.Deadline,
		}, now,
	)

	err := r.opts.journal.Record(ctx, escrow.Record{
		Campaign: info,
		Events:   []model.Event{event},
	})
	if err != nil {
		r.mu.Unlock()
		return nil, fmt.Errorf("registry: record campaign: %w", err)
	}

	esc := escrow.New(info, r.opts.escrowOptions()...)
	r.add(esc)
	r.events = append(r.events, event)

	r.mu.Unlock()

	otellib.Extract(ctx).Info("campaign created",
		zap.String("campaign", string(addr)),
		zap.String("creator", string(caller)),
		zap.String("goal", input.Goal.String()),
	)

	if err := r.opts.notifier.Notify(ctx, []model.Event{event}); err != nil {
		otellib.Extract(ctx).Warn("registry: notify events", zap.Error(err))
	}
	return esc, nil
}

// Get ...
func (r *Registry) Get(addr model.Address) (*escrow.Escrow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	esc, ok := r.campaigns[addr]
	if !ok {
		return nil, ErrCampaignNotFound
	}
	return esc, nil
}

// CampaignsOf returns the campaigns of a creator in creation order
func (r *Registry) CampaignsOf(creator model.Address) []model.Address {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := r.byCreator[creator]
	result := make([]model.Address, len(list))
	copy(result, list)
	return result
}

// CreatorCampaign returns the index-th campaign of a creator
func (r *Registry) CreatorCampaign(creator model.Address, index int) (model.Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := r.byCreator[creator]
	if index < 0 || index >= len(list) {
		return "", ErrCampaignNotFound
	}
	return list[index], nil
}

// All returns every campaign in creation order
func (r *Registry) All() []*escrow.Escrow {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*escrow.Escrow, len(r.ordered))
	copy(result, r.ordered)
	return result
}

// Events returns the creation events
func (r *Registry) Events() []model.Event {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]model.Event, len(r.events))
	copy(result, r.events)
	return result
}

// Restore replaces the content of the registry with the persisted state
func (r *Registry) Restore(ctx context.Context, loader Loader) error {
	snapshot, err := loader.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("registry: load campaigns: %w", err)
	}

	states := snapshot.Campaigns
	sort.SliceStable(states, func(i, j int) bool {
		return states[i].Campaign.CreatedAt.Before(states[j].Campaign.CreatedAt)
	})

	r.mu.Lock()
	defer r.mu.Unlock()

	r.campaigns = map[model.Address]*escrow.Escrow{}
	r.ordered = nil
	r.byCreator = map[model.Address][]model.Address{}
	for _, state := range states {
		r.add(escrow.Restore(state, r.opts.escrowOptions()...))
	}
	r.events = append([]model.Event(nil), snapshot.Events...)

	otellib.Extract(ctx).Info("registry restored", zap.Int("campaigns", len(states)))
	return nil
}

// Summary ...
type Summary struct {
	Address      model.Address
	Creator      model.Address
	Status       model.CampaignStatus
	RaisedAmount decimal.Decimal
	Goal         decimal.Decimal
}

// Stats aggregates the campaigns by status
type Stats struct {
	Campaigns []Summary
	Counts    map[model.CampaignStatus]int
	Escrowed  decimal.Decimal
}

// Stats ...
func (r *Registry) Stats() Stats {
	stats := Stats{
		Counts:   map[model.CampaignStatus]int{},
		Escrowed: decimal.Zero,
	}
	for _, esc := range r.All() {
		snapshot := esc.Snapshot()
		s := Summary{
			Address:      snapshot.Address,
			Creator:      snapshot.Creator,
			Status:       esc.Status(),
			RaisedAmount: snapshot.RaisedAmount,
			Goal:         snapshot.Goal,
		}
		stats.Campaigns = append(stats.Campaigns, s)
		stats.Counts[s.Status]++
		stats.Escrowed = stats.Escrowed.Add(s.RaisedAmount)
	}
	return stats
}
