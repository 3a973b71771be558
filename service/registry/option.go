package registry

import (
	"context"
	"github.com/QuangTung97/crowdfund/model"
	"github.com/QuangTung97/crowdfund/service/escrow"
	"time"
)

type registryOptions struct {
	now        func() time.Time
	journal    escrow.Journal
	notifier   escrow.Notifier
	transferer escrow.Transferer
}

type nopJournal struct {
}

func (nopJournal) Record(context.Context, escrow.Record) error {
	return nil
}

type nopNotifier struct {
}

func (nopNotifier) Notify(context.Context, []model.Event) error {
	return nil
}

func defaultRegistryOptions() registryOptions {
	return registryOptions{
		now:      time.Now,
		journal:  nopJournal{},
		notifier: nopNotifier{},
	}
}

func newRegistryOptions(options ...Option) registryOptions {
	opts := defaultRegistryOptions()
	for _, fn := range options {
		fn(&opts)
	}
	if opts.transferer == nil {
		opts.transferer = escrow.NewVault()
	}
	return opts
}

func (o registryOptions) escrowOptions() []escrow.Option {
	return []escrow.Option{
		escrow.WithNowFunc(o.now),
		escrow.WithJournal(o.journal),
		escrow.WithNotifier(o.notifier),
		escrow.WithTransferer(o.transferer),
	}
}

// Option ...
type Option func(opts *registryOptions)

// WithNowFunc ...
func WithNowFunc(now func() time.Time) Option {
	return func(opts *registryOptions) {
		opts.now = now
	}
}

// WithJournal is used by the registry and every campaign
func WithJournal(j escrow.Journal) Option {
	return func(opts *registryOptions) {
		opts.journal = j
	}
}

// WithNotifier ...
func WithNotifier(n escrow.Notifier) Option {
	return func(opts *registryOptions) {
		opts.notifier = n
	}
}

// WithTransferer ...
func WithTransferer(t escrow.Transferer) Option {
	return func(opts *registryOptions) {
		opts.transferer = t
	}
}
