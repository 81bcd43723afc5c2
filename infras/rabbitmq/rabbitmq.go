package rabbitmq

//go:generate go run go.uber.org/mock/mockgen -source=./rabbitmq.go -destination=./mocks/rabbitmq_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"sync"
	"time"

	"linka/config"
	"linka/shared/constant"
	"linka/shared/timezone"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

const (
	retryInterval   = 3 * time.Second
	maxBackoff      = 30 * time.Second
	backoffMultiple = 1.5
	exchangeKind    = "topic"
)

var ErrNotConnected = errors.New("rabbitmq is not connected")

type Publisher interface {
	Publish(ctx context.Context, routingKey string, body []byte) error
	Close() error
}

// Connection keeps a publishing channel open and re-dials when the broker
// closes the connection.
type Connection struct {
	dsn         string
	exchange    string
	conn        *amqp.Connection
	channel     *amqp.Channel
	mu          sync.RWMutex
	connected   bool
	notifyClose chan *amqp.Error
	done        chan struct{}
}

func New(cfg *config.Config) (*Connection, error) {
	dsn := fmt.Sprintf("amqp://%s:%s@%s/",
		cfg.RabbitMQ.User,
		cfg.RabbitMQ.Password,
		net.JoinHostPort(cfg.RabbitMQ.Host, strconv.Itoa(cfg.RabbitMQ.Port)),
	)

	c := &Connection{
		dsn:      dsn,
		exchange: cfg.RabbitMQ.Exchange,
		done:     make(chan struct{}),
	}

	var err error

	for attempt := range max(cfg.RabbitMQ.MaxRetry, 1) {
		if err = c.connect(); err == nil {
			log.Info().Str("host", cfg.RabbitMQ.Host).Str("exchange", c.exchange).Msg("Connected to RabbitMQ")

			go c.reconnectLoop()

			return c, nil
		}

		log.Error().Err(err).Int("attempt", attempt+1).Msg("Failed connecting to RabbitMQ, retrying")
		time.Sleep(retryInterval)
	}

	return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
}

func (c *Connection) connect() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	conn, err := amqp.Dial(c.dsn)
	if err != nil {
		return fmt.Errorf("failed to dial: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()

		return fmt.Errorf("failed to open channel: %w", err)
	}

	if err = channel.ExchangeDeclare(c.exchange, exchangeKind, true, false, false, false, nil); err != nil {
		_ = conn.Close()

		return fmt.Errorf("failed to declare exchange %s: %w", c.exchange, err)
	}

	c.conn = conn
	c.channel = channel
	c.connected = true
	c.notifyClose = make(chan *amqp.Error, 1)
	c.conn.NotifyClose(c.notifyClose)

	return nil
}

func (c *Connection) reconnectLoop() {
	for {
		select {
		case <-c.done:
			return
		case amqpErr := <-c.notifyClose:
			if amqpErr == nil {
				return
			}

			log.Error().Err(amqpErr).Msg("RabbitMQ connection lost")

			c.mu.Lock()
			c.connected = false
			c.mu.Unlock()

			backoff := time.Second

			for {
				select {
				case <-c.done:
					return
				case <-time.After(backoff):
				}

				if err := c.connect(); err != nil {
					log.Error().Err(err).Dur("backoff", backoff).Msg("Failed to reconnect to RabbitMQ")

					backoff = min(time.Duration(float64(backoff)*backoffMultiple), maxBackoff)

					continue
				}

				log.Info().Msg("RabbitMQ connection re-established")

				break
			}
		}
	}
}

// Publish sends a persistent JSON message to the configured exchange.
func (c *Connection) Publish(ctx context.Context, routingKey string, body []byte) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.connected {
		return ErrNotConnected
	}

	err := c.channel.PublishWithContext(ctx, c.exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  constant.ContentTypeJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    timezone.Now(),
	})
	if err != nil {
		return fmt.Errorf("failed to publish to %s: %w", c.exchange, err)
	}

	return nil
}

func (c *Connection) Close() error {
	close(c.done)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.connected = false

	if c.conn == nil {
		return nil
	}

	if err := c.conn.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
		return fmt.Errorf("failed to close RabbitMQ connection: %w", err)
	}

	return nil
}
