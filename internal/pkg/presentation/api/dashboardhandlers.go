package api

import (
	"bytes"
	"net/http"
	"time"

	"github.com/keepinventory/asset-inventory/internal/pkg/application/activity"
	"github.com/keepinventory/asset-inventory/internal/pkg/application/dashboard"
	"github.com/keepinventory/asset-inventory/internal/pkg/application/inventory"
	"github.com/keepinventory/asset-inventory/internal/pkg/application/statistics"
	"github.com/keepinventory/asset-inventory/internal/pkg/infrastructure/logging"
	"github.com/keepinventory/asset-inventory/internal/pkg/infrastructure/tracing"
	"github.com/keepinventory/asset-inventory/internal/pkg/presentation/api/auth"
	"github.com/keepinventory/asset-inventory/internal/pkg/presentation/charts"
	"github.com/keepinventory/asset-inventory/pkg/types"
	"github.com/rs/zerolog"
)

func dashboardHandler(log zerolog.Logger, inv inventory.InventoryService, act activity.Service, location *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "get-dashboard")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := logging.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		snapshot, err := inv.Snapshot(ctx)
		if err != nil {
			writeSnapshotError(w, requestLogger, err)
			return
		}

		recent, err := act.Recent(ctx)
		if err != nil {
			// the counters are still worth showing without the feed
			requestLogger.Error().Err(err).Msg("failed to load recent activity")
			recent = []types.ActivityItem{}
			err = nil
		}

		session, _ := auth.GetSessionFromContext(ctx)

		writeJSON(w, requestLogger, http.StatusOK,
			dashboard.Build(statistics.Compute(snapshot), recent, session.Email, time.Now().In(location)))
	}
}

func statusChartHandler(log zerolog.Logger, inv inventory.InventoryService) http.HandlerFunc {
	return chartHandler(log, "render-status-chart", inv, func(buf *bytes.Buffer, stats statistics.Stats) error {
		return charts.StatusPie(buf, "Patrimônios por status", stats.StatusBreakdown)
	})
}

func sectorChartHandler(log zerolog.Logger, inv inventory.InventoryService) http.HandlerFunc {
	return chartHandler(log, "render-sector-chart", inv, func(buf *bytes.Buffer, stats statistics.Stats) error {
		return charts.SectorBar(buf, "Patrimônios por setor", stats.SectorBreakdown)
	})
}

func chartHandler(log zerolog.Logger, operation string, inv inventory.InventoryService, render func(*bytes.Buffer, statistics.Stats) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), operation)
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := logging.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		snapshot, err := inv.Snapshot(ctx)
		if err != nil {
			writeSnapshotError(w, requestLogger, err)
			return
		}

		buf := &bytes.Buffer{}
		err = render(buf, statistics.Compute(snapshot))
		if err != nil {
			requestLogger.Error().Err(err).Msg("failed to render chart")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Add("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(buf.Bytes())
	}
}
