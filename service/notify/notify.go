package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/QuangTung97/crowdfund/model"
	"github.com/QuangTung97/crowdfund/pkg/otellib"
	"github.com/QuangTung97/crowdfund/service/escrow"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"time"
)

//go:generate moq -out notify_mocks_test.go . Publisher

// Publisher ...
type Publisher interface {
	Publish(ctx context.Context, exchange string, routingKey string, body interface{}) error
}

// EventMessage is the body published for every committed event
type EventMessage struct {
	Seq       uint64          `json:"seq"`
	Type      string          `json:"type"`
	Aggregate string          `json:"aggregate"`
	Campaign  model.Address   `json:"campaign"`
	Data      json.RawMessage `json:"data"`
	CreatedAt time.Time       `json:"created_at"`
}

// EventPublisher fans committed events out to a topic exchange
type EventPublisher struct {
	pub      Publisher
	exchange string
}

var _ escrow.Notifier = &EventPublisher{}

// NewEventPublisher ...
func NewEventPublisher(pub Publisher, exchange string) *EventPublisher {
	return &EventPublisher{
		pub:      pub,
		exchange: exchange,
	}
}

// RoutingKey ...
func RoutingKey(t model.EventType) string {
	return "campaign." + t.String()
}

func aggregateName(t model.AggregateType) string {
	if t == model.AggregateTypeRegistry {
		return "registry"
	}
	return "campaign"
}

// Notify publishes the events in order and stops at the first failure
func (p *EventPublisher) Notify(ctx context.Context, events []model.Event) error {
	for _, e := range events {
		msg := EventMessage{
			Seq:       e.Seq,
			Type:      e.Type.String(),
			Aggregate: aggregateName(e.AggregateType),
			Campaign:  e.AggregateID,
			Data:      e.Data,
			CreatedAt: e.CreatedAt,
		}
		err := p.pub.Publish(ctx, p.exchange, RoutingKey(e.Type), msg)
		if err != nil {
			return fmt.Errorf("notify: publish event %s seq %d: %w", e.Type, e.Seq, err)
		}
	}
	return nil
}

// PayoutMessage is the payout instruction consumed by the payment system
type PayoutMessage struct {
	Reference string          `json:"reference"`
	Campaign  model.Address   `json:"campaign"`
	Recipient model.Address   `json:"recipient"`
	Amount    decimal.Decimal `json:"amount"`
	Kind      string          `json:"kind"`
	CreatedAt time.Time       `json:"created_at"`
}

// PayoutPublisher transfers value out of escrow by publishing payout instructions
type PayoutPublisher struct {
	pub      Publisher
	exchange string

	now          func() time.Time
	newReference func() string
}

var _ escrow.Transferer = &PayoutPublisher{}

// NewPayoutPublisher ...
func NewPayoutPublisher(pub Publisher, exchange string) *PayoutPublisher {
	return &PayoutPublisher{
		pub:          pub,
		exchange:     exchange,
		now:          time.Now,
		newReference: uuid.NewString,
	}
}

// Transfer fails when the instruction cannot be published, the escrow then restores the ledger
func (p *PayoutPublisher) Transfer(ctx context.Context, payout escrow.Payout) error {
	msg := PayoutMessage{
		Reference: p.newReference(),
		Campaign:  payout.Campaign,
		Recipient: payout.To,
		Amount:    payout.Amount,
		Kind:      payout.Kind.String(),
		CreatedAt: p.now(),
	}

	err := p.pub.Publish(ctx, p.exchange, "payout."+msg.Kind, msg)
	if err != nil {
		return fmt.Errorf("notify: publish payout: %w", err)
	}

	otellib.Extract(ctx).Info("payout published",
		zap.String("reference", msg.Reference),
		zap.String("campaign", string(msg.Campaign)),
		zap.String("recipient", string(msg.Recipient)),
		zap.String("amount", msg.Amount.String()),
		zap.String("kind", msg.Kind),
	)
	return nil
}
