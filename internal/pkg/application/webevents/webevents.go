package webevents

import (
	"encoding/json"
	"log"
	"net/http"

	gosse "github.com/alexandrevicenzi/go-sse"
	"github.com/keepinventory/asset-inventory/pkg/types"
	"github.com/rs/zerolog"
)

// EventCollectionChanged is the SSE event name used for collection change notifications.
const EventCollectionChanged string = "collectionChanged"

type WebEvents interface {
	http.Handler
	Shutdown()
	Publish(event string, data any) error
	CollectionChanged(collection, action, id string) error
}

type webEvents struct {
	s *gosse.Server
}

func New(logger zerolog.Logger) WebEvents {
	sublogger := logger.With().Str("component", "webevents").Logger()

	return &webEvents{
		s: gosse.NewServer(&gosse.Options{
			Logger: log.New(sublogger, "", 0),
			// all subscribers share one channel regardless of the path they connected on
			ChannelNameFunc: func(*http.Request) string { return "inventory" },
		}),
	}
}

func (we *webEvents) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	we.s.ServeHTTP(w, r)
}

func (we *webEvents) Shutdown() {
	we.s.Shutdown()
}

func (we *webEvents) Publish(event string, data any) error {
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}

	message := gosse.NewMessage("", string(b), event)
	we.s.SendMessage("", message)

	return nil
}

func (we *webEvents) CollectionChanged(collection, action, id string) error {
	return we.Publish(EventCollectionChanged, types.CollectionChanged{
		Collection: collection,
		Action:     action,
		ID:         id,
	})
}
