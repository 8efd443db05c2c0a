package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/keepinventory/asset-inventory/internal/pkg/application/activity"
	"github.com/keepinventory/asset-inventory/internal/pkg/application/inventory"
	"github.com/keepinventory/asset-inventory/internal/pkg/application/reports"
	"github.com/keepinventory/asset-inventory/internal/pkg/infrastructure/logging"
	"github.com/keepinventory/asset-inventory/internal/pkg/infrastructure/tracing"
	"github.com/keepinventory/asset-inventory/pkg/types"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

func listActivityHandler(log zerolog.Logger, act activity.Service, location *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "list-activity")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := logging.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		limit := 0
		if l := r.URL.Query().Get("limit"); l != "" {
			limit, err = strconv.Atoi(l)
			if err != nil || limit < 0 {
				err = fmt.Errorf("invalid limit %q", l)
				writeNotice(w, requestLogger, http.StatusBadRequest, "Erro", "Limite inválido.", nil)
				return
			}
		}

		entries, err := act.Entries(ctx, limit)
		if err != nil {
			requestLogger.Error().Err(err).Msg("failed to read activity log")
			writeNotice(w, requestLogger, http.StatusServiceUnavailable, "Erro", "Os dados ainda não foram carregados.", nil)
			return
		}

		writeJSON(w, requestLogger, http.StatusOK, lo.Map(entries, func(e types.LogEntry, _ int) types.ActivityItem {
			return activity.ToItem(e, location)
		}))
	}
}

func clearActivityHandler(log zerolog.Logger, act activity.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "clear-activity")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := logging.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		result, err := act.ClearLog(ctx, r.Header.Get(ConfirmationHeader))
		if err != nil {
			if errors.Is(err, activity.ErrConfirmationMismatch) {
				writeNotice(w, requestLogger, http.StatusBadRequest, "Confirmação inválida",
					fmt.Sprintf("Digite %q para confirmar.", activity.ConfirmationPhrase), nil)
				return
			}

			requestLogger.Error().Err(err).Msg("failed to clear activity log")
			writeNotice(w, requestLogger, http.StatusInternalServerError, "Erro ao Limpar", "Não foi possível limpar o log de atividades.", nil)
			return
		}

		writeJSON(w, requestLogger, http.StatusOK, result)
	}
}

func inventoryReportHandler(log zerolog.Logger, inv inventory.InventoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "export-inventory")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := logging.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		snapshot, err := inv.Snapshot(ctx)
		if err != nil {
			writeSnapshotError(w, requestLogger, err)
			return
		}

		err = writeReport(w, r, requestLogger, reports.Inventory(snapshot), reports.InventoryFilename(time.Now()))
	}
}

func activityReportHandler(log zerolog.Logger, act activity.Service, location *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "export-activity")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := logging.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		entries, err := act.Entries(ctx, 0)
		if err != nil {
			requestLogger.Error().Err(err).Msg("failed to read activity log")
			writeNotice(w, requestLogger, http.StatusServiceUnavailable, "Erro", "Os dados ainda não foram carregados.", nil)
			return
		}

		err = writeReport(w, r, requestLogger, reports.Activity(entries, location), reports.ActivityFilename(time.Now()))
	}
}

func writeReport(w http.ResponseWriter, r *http.Request, logger zerolog.Logger, content, filename string) error {
	body, contentType, err := reports.Encode(content, r.URL.Query().Get("encoding"))
	if err != nil {
		if errors.Is(err, reports.ErrUnsupportedEncoding) {
			writeNotice(w, logger, http.StatusBadRequest, "Erro ao Exportar", "Codificação não suportada.", nil)
		} else {
			logger.Error().Err(err).Msg("failed to encode report")
			writeNotice(w, logger, http.StatusUnprocessableEntity, "Erro ao Exportar", "O relatório contém caracteres que não podem ser convertidos.", nil)
		}
		return err
	}

	w.Header().Add("Content-Type", contentType)
	w.Header().Add("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(body)

	return nil
}
