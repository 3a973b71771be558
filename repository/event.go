package repository

import (
	"context"
	"github.com/QuangTung97/crowdfund/model"
)

// Event ...
type Event interface {
	InsertEvents(ctx context.Context, events []model.Event) error
	FindAllEvents(ctx context.Context) ([]model.Event, error)
}

type eventImpl struct {
}

// NewEvent ...
func NewEvent() Event {
	return &eventImpl{}
}

// InsertEvents ...
func (e *eventImpl) InsertEvents(ctx context.Context, events []model.Event) error {
	query := `
INSERT INTO event (seq, type, data, aggregate_type, aggregate_id, created_at)
VALUES (:seq, :type, :data, :aggregate_type, :aggregate_id, :created_at)
`
	for _, item := range events {
		if _, err := GetTx(ctx).NamedExecContext(ctx, query, item); err != nil {
			return err
		}
	}
	return nil
}

// FindAllEvents ...
func (e *eventImpl) FindAllEvents(ctx context.Context) ([]model.Event, error) {
	query := `
SELECT id, seq, type, data, aggregate_type, aggregate_id, created_at
FROM event ORDER BY id
`
	var result []model.Event
	err := GetReadonly(ctx).SelectContext(ctx, &result, query)
	return result, err
}
