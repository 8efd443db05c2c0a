package events

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/keepinventory/asset-inventory/internal/pkg/infrastructure/logging"
	"github.com/keepinventory/asset-inventory/pkg/types"
	"golang.org/x/sys/unix"
	yaml "gopkg.in/yaml.v2"
)

const ActivityEventType string = "keepinventory.activity"

type EventSender interface {
	Send(ctx context.Context, item types.ActivityItem) error
}

type eventSender struct {
	subscribers []SubscriberConfig
}

func New(cfg *Config) EventSender {
	e := &eventSender{}

	if cfg != nil {
		for _, n := range cfg.Notifications {
			if n.Type == ActivityEventType {
				e.subscribers = append(e.subscribers, n.Subscribers...)
			}
		}
	}

	return e
}

func (e *eventSender) Send(ctx context.Context, item types.ActivityItem) error {
	targets := []string{}
	for _, s := range e.subscribers {
		if s.Accepts(item.Category) {
			targets = append(targets, s.Endpoint)
		}
	}

	if len(targets) == 0 {
		return nil
	}

	var err error

	c, err := cloudevents.NewClientHTTP()
	if err != nil {
		return err
	}

	timestamp := time.Now().UTC()
	if item.Timestamp != nil {
		timestamp = *item.Timestamp
	}

	event := cloudevents.NewEvent()
	event.SetID(item.ID)
	event.SetTime(timestamp)
	event.SetSource("github.com/keepinventory/asset-inventory")
	event.SetType(ActivityEventType)

	eventData := struct {
		ID        string `json:"id"`
		Acao      string `json:"acao"`
		Category  string `json:"category"`
		Timestamp string `json:"timestamp"`
	}{
		ID:        item.ID,
		Acao:      item.Acao,
		Category:  item.Category,
		Timestamp: timestamp.Format(time.RFC3339Nano),
	}

	err = event.SetData(cloudevents.ApplicationJSON, eventData)
	if err != nil {
		return err
	}

	logger := logging.GetLoggerFromContext(ctx)

	for _, endpoint := range targets {
		ctxWithTarget := cloudevents.ContextWithTarget(ctx, endpoint)

		result := c.Send(ctxWithTarget, event)
		if cloudevents.IsUndelivered(result) || errors.Is(result, unix.ECONNREFUSED) {
			logger.Error().Err(result).Msgf("failed to send event to %s", endpoint)
			err = fmt.Errorf("%w", result)
		}
	}

	return err
}

type SubscriberConfig struct {
	Endpoint string `yaml:"endpoint"`
	// Categories limits the activity categories (created, deleted, ...) sent to
	// the subscriber. An empty list means every category.
	Categories []string `yaml:"categories"`
}

func (s SubscriberConfig) Accepts(category string) bool {
	if len(s.Categories) == 0 {
		return true
	}
	for _, c := range s.Categories {
		if c == category {
			return true
		}
	}
	return false
}

type Notification struct {
	ID          string             `yaml:"id"`
	Name        string             `yaml:"name"`
	Type        string             `yaml:"type"`
	Subscribers []SubscriberConfig `yaml:"subscribers"`
}

type Config struct {
	Notifications []Notification `yaml:"notifications"`
}

func LoadConfiguration(data io.Reader) (*Config, error) {
	buf, err := io.ReadAll(data)
	if err != nil {
		return nil, err
	}

	cfg := Config{}
	if err := yaml.Unmarshal(buf, &cfg); err == nil {
		return &cfg, nil
	} else {
		return nil, err
	}
}
