package escrow

import "time"

type escrowOptions struct {
	now        func() time.Time
	transferer Transferer
	journal    Journal
	notifier   Notifier
}

func defaultEscrowOptions() escrowOptions {
	return escrowOptions{
		now:      time.Now,
		journal:  nopJournal{},
		notifier: nopNotifier{},
	}
}

func newEscrowOptions(options ...Option) escrowOptions {
	opts := defaultEscrowOptions()
	for _, fn := range options {
		fn(&opts)
	}
	if opts.transferer == nil {
		opts.transferer = NewVault()
	}
	return opts
}

// Option ...
type Option func(opts *escrowOptions)

// WithNowFunc replaces the clock used for deadline evaluation
func WithNowFunc(now func() time.Time) Option {
	return func(opts *escrowOptions) {
		opts.now = now
	}
}

// WithTransferer ...
func WithTransferer(t Transferer) Option {
	return func(opts *escrowOptions) {
		opts.transferer = t
	}
}

// WithJournal ...
func WithJournal(j Journal) Option {
	return func(opts *escrowOptions) {
		opts.journal = j
	}
}

// WithNotifier ...
func WithNotifier(n Notifier) Option {
	return func(opts *escrowOptions) {
		opts.notifier = n
	}
}
