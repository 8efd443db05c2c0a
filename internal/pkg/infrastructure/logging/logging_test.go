package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"
)

func TestThatLoggerCanBeStoredAndRetrieved(t *testing.T) {
	is := is.New(t)
	buf := &bytes.Buffer{}

	ctx := NewContextWithLogger(context.Background(), zerolog.New(buf))
	logger := GetLoggerFromContext(ctx)
	logger.Info().Msg("hello")

	is.True(bytes.Contains(buf.Bytes(), []byte(`"message":"hello"`)))
}

func TestThatSpanWithoutTraceIDLeavesLoggerUntouched(t *testing.T) {
	is := is.New(t)
	buf := &bytes.Buffer{}

	span := trace.SpanFromContext(context.Background())
	traceID, ctx, logger := AddTraceIDToLoggerAndStoreInContext(span, zerolog.New(buf), context.Background())
	logger.Info().Msg("no trace")

	is.Equal(traceID, "")
	is.True(!bytes.Contains(buf.Bytes(), []byte("traceID")))

	fromCtx := GetLoggerFromContext(ctx)
	fromCtx.Info().Msg("from context")
	is.True(bytes.Contains(buf.Bytes(), []byte("from context")))
}
