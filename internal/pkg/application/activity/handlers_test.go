package activity

import (
	"context"
	"testing"
	"time"

	"github.com/keepinventory/asset-inventory/pkg/types"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

func TestLogActivityHandlerAppendsReceivedEntry(t *testing.T) {
	is, ctx := setupTest(t)

	svc := &ServiceMock{
		AppendFunc: func(ctx context.Context, acao string, timestamp *time.Time) (types.LogEntry, error) {
			return types.LogEntry{ID: "1", Acao: acao, Timestamp: timestamp}, nil
		},
	}

	handler := NewLogActivityHandler(svc)
	handler(ctx, amqp.Delivery{
		RoutingKey: "inventory.activity.log",
		Body:       []byte(`{"acao":"Inventário anual concluído","timestamp":"2024-02-01T10:00:00Z"}`),
	}, zerolog.Nop())

	is.Equal(len(svc.AppendCalls()), 1)
	is.Equal(svc.AppendCalls()[0].Acao, "Inventário anual concluído")
	is.Equal(svc.AppendCalls()[0].Timestamp.Year(), 2024)
}

func TestLogActivityHandlerIgnoresBadMessage(t *testing.T) {
	is, ctx := setupTest(t)

	svc := &ServiceMock{}

	handler := NewLogActivityHandler(svc)
	handler(ctx, amqp.Delivery{Body: []byte(`{not json`)}, zerolog.Nop())

	is.Equal(len(svc.AppendCalls()), 0)
}
