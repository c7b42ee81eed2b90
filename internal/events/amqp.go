package events

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

const publishTimeout = 5 * time.Second

var ErrPublisherClosed = errors.New("the AMQP publisher is closed")

// AMQP publishes events to a topic exchange. The event type is the routing key.
//
// When the broker closes the connection or the channel, the next Publish
// dials again.
type AMQP struct {
	mu       sync.Mutex
	url      string
	exchange string
	conn     *amqp091.Connection
	channel  *amqp091.Channel
	closed   bool
}

// Dial connects to the broker and declares the exchange.
func Dial(url, exchange string) (*AMQP, error) {
	a := &AMQP{
		url:      url,
		exchange: exchange,
	}

	err := a.connect()
	if err != nil {
		return nil, err
	}

	log.Info().Str("exchange", exchange).Msg("connected to AMQP broker")
	return a, nil
}

// connect opens connection and channel and declares the exchange.
// a.mu must be held unless a is not shared yet.
func (a *AMQP) connect() error {
	conn, err := amqp091.Dial(a.url)
	if err != nil {
		return fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return fmt.Errorf("open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		a.exchange, // name
		"topic",    // type
		true,       // durable
		false,      // auto-deleted
		false,      // internal
		false,      // no-wait
		nil,        // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return fmt.Errorf("declare exchange: %w", err)
	}

	a.conn = conn
	a.channel = channel
	return nil
}

func (a *AMQP) connected() bool {
	return a.conn != nil && !a.conn.IsClosed() && a.channel != nil && !a.channel.IsClosed()
}

// disconnect releases connection and channel. a.mu must be held.
func (a *AMQP) disconnect() error {
	if a.channel != nil {
		a.channel.Close()
		a.channel = nil
	}

	var err error
	if a.conn != nil && !a.conn.IsClosed() {
		err = a.conn.Close()
	}
	a.conn = nil

	return err
}

func (a *AMQP) Publish(ctx context.Context, e Event) error {
	body, err := e.JSON()
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return ErrPublisherClosed
	}

	if !a.connected() {
		_ = a.disconnect()

		err = a.connect()
		if err != nil {
			return fmt.Errorf("reconnect to AMQP broker: %w", err)
		}
		log.Info().Str("exchange", a.exchange).Msg("reconnected to AMQP broker")
	}

	err = a.channel.PublishWithContext(
		ctx,
		a.exchange,     // exchange
		string(e.Type), // routing key
		false,          // mandatory
		false,          // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    e.Timestamp,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish event: %w", err)
	}

	return nil
}

func (a *AMQP) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.closed = true
	return a.disconnect()
}
