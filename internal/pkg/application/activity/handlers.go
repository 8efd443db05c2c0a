package activity

import (
	"context"
	"encoding/json"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/keepinventory/asset-inventory/internal/pkg/infrastructure/logging"
	"github.com/keepinventory/asset-inventory/pkg/types"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

// NewLogActivityHandler appends log entries received from other services.
func NewLogActivityHandler(svc Service) messaging.TopicMessageHandler {
	return func(ctx context.Context, msg amqp.Delivery, logger zerolog.Logger) {
		message := types.LogActivity{}

		err := json.Unmarshal(msg.Body, &message)
		if err != nil {
			logger.Error().Err(err).Msgf("failed to unmarshal message from %s", msg.RoutingKey)
			return
		}

		ctx = logging.NewContextWithLogger(ctx, logger)

		entry, err := svc.Append(ctx, message.Acao, message.Timestamp)
		if err != nil {
			logger.Error().Err(err).Msg("could not add received activity to the log")
			return
		}

		logger.Debug().Str("entryID", entry.ID).Msg("activity received from message bus")
	}
}
