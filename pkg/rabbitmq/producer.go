package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
	"net/url"
	"strings"
	"sync"
	"time"
)

// Publisher publishes JSON messages to topic exchanges
type Publisher interface {
	Publish(ctx context.Context, exchange string, routingKey string, body interface{}) error
	Close()
}

// Fallback is the no-op publisher used when the broker is unavailable at startup
type Fallback struct {
	logger *zap.Logger
}

var _ Publisher = &Fallback{}

// NewFallback ...
func NewFallback(logger *zap.Logger) *Fallback {
	return &Fallback{logger: logger}
}

// Publish ...
func (p *Fallback) Publish(_ context.Context, exchange string, routingKey string, _ interface{}) error {
	p.logger.Warn("rabbitmq: publish skipped",
		zap.String("exchange", exchange),
		zap.String("routing_key", routingKey),
	)
	return nil
}

// Close ...
func (p *Fallback) Close() {
}

// ErrUnavailable is returned for publishes that must not be dropped while no broker is connected
var ErrUnavailable = errors.New("rabbitmq: broker unavailable")

// Unavailable rejects every publish with ErrUnavailable
type Unavailable struct {
}

var _ Publisher = Unavailable{}

// Publish ...
func (Unavailable) Publish(context.Context, string, string, interface{}) error {
	return ErrUnavailable
}

// Close ...
func (Unavailable) Close() {
}

// Required returns p for messages that must reach the broker, the fallback
// is replaced by a publisher that fails instead of skipping
func Required(p Publisher) Publisher {
	if _, ok := p.(*Fallback); ok {
		return Unavailable{}
	}
	return p
}

// Producer holds the connection and the channel used for publishing
type Producer struct {
	logger *zap.Logger

	mu       sync.Mutex
	conn     *amqp091.Connection
	channel  *amqp091.Channel
	declared map[string]struct{}
}

var _ Publisher = &Producer{}

func sanitizeURL(raw string) (string, error) {
	clean := strings.Trim(strings.TrimSpace(raw), "\"'")
	u, err := url.Parse(clean)
	if err != nil {
		return "", err
	}
	if u.Scheme != "amqp" && u.Scheme != "amqps" {
		return "", errors.New("rabbitmq: scheme must be amqp or amqps")
	}
	return clean, nil
}

// NewProducer dials the broker with a bounded timeout
func NewProducer(rawURL string, dialTimeout time.Duration, logger *zap.Logger) (*Producer, error) {
	cleanURL, err := sanitizeURL(rawURL)
	if err != nil {
		return nil, err
	}

	conn, err := amqp091.DialConfig(cleanURL, amqp091.Config{Dial: amqp091.DefaultDial(dialTimeout)})
	if err != nil {
		return nil, fmt.Errorf("rabbitmq: dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq: open channel: %w", err)
	}

	return &Producer{
		logger:   logger,
		conn:     conn,
		channel:  ch,
		declared: map[string]struct{}{},
	}, nil
}

func (p *Producer) declare(exchange string) error {
	if _, ok := p.declared[exchange]; ok {
		return nil
	}
	err := p.channel.ExchangeDeclare(
		exchange,
		amqp091.ExchangeTopic,
		true,  // durable
		false, // autoDelete
		false, // internal
		false, // noWait
		nil,
	)
	if err != nil {
		return err
	}
	p.declared[exchange] = struct{}{}
	return nil
}

func (p *Producer) reopen() error {
	ch, err := p.conn.Channel()
	if err != nil {
		return err
	}
	p.channel = ch
	p.declared = map[string]struct{}{}
	return nil
}

func (p *Producer) publish(ctx context.Context, exchange string, routingKey string, body []byte) error {
	if err := p.declare(exchange); err != nil {
		return err
	}
	return p.channel.PublishWithContext(ctx, exchange, routingKey, false, false, amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		Timestamp:    time.Now(),
		Body:         body,
	})
}

// Publish marshals the body and publishes it, the channel is reopened once on failure
func (p *Producer) Publish(ctx context.Context, exchange string, routingKey string, body interface{}) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("rabbitmq: marshal: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.publish(ctx, exchange, routingKey, data)
	if err == nil {
		return nil
	}

	p.logger.Warn("rabbitmq: publish failed, reopening channel",
		zap.String("exchange", exchange),
		zap.String("routing_key", routingKey),
		zap.Error(err),
	)

	if err := p.reopen(); err != nil {
		return fmt.Errorf("rabbitmq: reopen channel: %w", err)
	}
	if err := p.publish(ctx, exchange, routingKey, data); err != nil {
		return fmt.Errorf("rabbitmq: publish: %w", err)
	}
	return nil
}

// Close ...
func (p *Producer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}

// Connect returns a producer or the fallback when the broker cannot be reached
func Connect(enabled bool, rawURL string, dialTimeout time.Duration, logger *zap.Logger) Publisher {
	if !enabled {
		return NewFallback(logger)
	}
	producer, err := NewProducer(rawURL, dialTimeout, logger)
	if err != nil {
		logger.Warn("rabbitmq: broker unavailable, using fallback", zap.Error(err))
		return NewFallback(logger)
	}
	return producer
}
