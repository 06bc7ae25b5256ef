package hermes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// Client publishes and receives shortlist events.
type Client interface {
	Publish(subject string, data interface{}) error
	Subscribe(subject string, handler func(subject string, data []byte)) error
	Close()
}

// PublishCollectionSaved announces that evt.Collection was replaced.
func PublishCollectionSaved(c Client, evt CollectionSavedEvent) error {
	if evt.Collection == "" {
		return errors.New("collection saved event without a collection name")
	}
	return c.Publish(SubjectCollectionSaved(evt.Collection), evt)
}

// OnCollectionSaved calls fn for every save announced on the bus, from this
// process or any other sharing the stream. Undecodable payloads are logged
// and dropped.
func OnCollectionSaved(c Client, logger *slog.Logger, fn func(CollectionSavedEvent)) error {
	return c.Subscribe(SubjectAllCollectionsSaved(), func(subject string, data []byte) {
		var evt CollectionSavedEvent
		if err := json.Unmarshal(data, &evt); err != nil {
			logger.Warn("dropping undecodable save event", "subject", subject, "error", err)
			return
		}
		fn(evt)
	})
}

// NATSClient is the Client backed by a NATS connection. Save events are
// retained in a JetStream stream so late readers can replay them.
type NATSClient struct {
	conn   *nats.Conn
	js     jetstream.JetStream
	logger *slog.Logger

	mu   sync.Mutex
	subs []*nats.Subscription
}

func NewNATSClient(ctx context.Context, url string, logger *slog.Logger) (*NATSClient, error) {
	nc, err := nats.Connect(url,
		nats.Name("shortlist"),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(30),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("hermes disconnected, save events are not delivered", "error", err)
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logger.Info("hermes reconnected", "url", c.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("jetstream: %w", err)
	}

	c := &NATSClient{conn: nc, js: js, logger: logger}
	if err := c.ensureStream(ctx); err != nil {
		logger.Warn("failed to ensure stream", "stream", StreamName, "error", err)
	}
	return c, nil
}

func (c *NATSClient) ensureStream(ctx context.Context) error {
	maxAge, err := time.ParseDuration(StreamMaxAge)
	if err != nil {
		return err
	}
	_, err = c.js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:        StreamName,
		Description: "shortlist collection save notifications",
		Subjects:    []string{subjectRoot + ".>"},
		MaxAge:      maxAge,
		Discard:     jetstream.DiscardOld,
	})
	return err
}

// Publish sends data as a JSON message on subject.
func (c *NATSClient) Publish(subject string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode %s: %w", subject, err)
	}
	msg := nats.NewMsg(subject)
	msg.Header.Set("Content-Type", "application/json")
	msg.Data = payload
	return c.conn.PublishMsg(msg)
}

func (c *NATSClient) Subscribe(subject string, handler func(string, []byte)) error {
	sub, err := c.conn.Subscribe(subject, func(msg *nats.Msg) {
		handler(msg.Subject, msg.Data)
	})
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", subject, err)
	}
	c.mu.Lock()
	c.subs = append(c.subs, sub)
	c.mu.Unlock()
	return nil
}

// Close drains subscriptions and pending publishes before disconnecting.
func (c *NATSClient) Close() {
	if err := c.conn.Drain(); err != nil {
		c.logger.Warn("hermes drain failed, closing", "error", err)
		c.conn.Close()
	}
}
