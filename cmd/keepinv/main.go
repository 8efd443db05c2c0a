package main

import (
	"context"
	"os"

	"github.com/keepinventory/asset-inventory/internal/pkg/infrastructure/logging"
	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.WarnLevel).With().Timestamp().Logger()
	ctx := logging.NewContextWithLogger(context.Background(), logger)

	err := newRootCmd().ExecuteContext(ctx)
	if err != nil {
		os.Exit(1)
	}
}
