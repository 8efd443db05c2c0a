package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/keepinventory/asset-inventory/internal/pkg/application/assignment"
	"github.com/keepinventory/asset-inventory/internal/pkg/application/hierarchy"
	"github.com/keepinventory/asset-inventory/internal/pkg/application/inventory"
	"github.com/keepinventory/asset-inventory/internal/pkg/infrastructure/logging"
	"github.com/keepinventory/asset-inventory/internal/pkg/infrastructure/tracing"
	"github.com/keepinventory/asset-inventory/pkg/types"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

type nameRequest struct {
	Name string `json:"name"`
}

type sectorRequest struct {
	Name    string `json:"name"`
	BlockID string `json:"blockId"`
}

type roomRequest struct {
	Name     string `json:"name"`
	SectorID string `json:"sectorId"`
}

type assetView struct {
	types.Asset
	Location hierarchy.Ancestry `json:"location"`
}

// formView is the state of the asset form together with the options that
// can be picked at each level.
type formView struct {
	Values     assignment.Values `json:"values"`
	State      string            `json:"state"`
	Unresolved bool              `json:"unresolved"`
	Blocks     []types.Block     `json:"blocks"`
	Sectors    []types.Sector    `json:"sectors"`
	Rooms      []types.Room      `json:"rooms"`
	Statuses   []string          `json:"statuses"`
	Errors     map[string]string `json:"errors,omitempty"`
}

func newFormView(snapshot hierarchy.Snapshot, f *assignment.Form) formView {
	return formView{
		Values:     f.Values(),
		State:      f.State().String(),
		Unresolved: f.Unresolved(),
		Blocks:     nonNil(snapshot.Blocks),
		Sectors:    f.AvailableSectors(),
		Rooms:      f.AvailableRooms(),
		Statuses:   types.AssetStatuses,
	}
}

func listBlocksHandler(log zerolog.Logger, svc inventory.InventoryService) http.HandlerFunc {
	return snapshotHandler(log, "list-blocks", svc, func(r *http.Request, s hierarchy.Snapshot) any {
		return nonNil(s.Blocks)
	})
}

func listSectorsHandler(log zerolog.Logger, svc inventory.InventoryService) http.HandlerFunc {
	return snapshotHandler(log, "list-sectors", svc, func(r *http.Request, s hierarchy.Snapshot) any {
		if blockID := r.URL.Query().Get("blockId"); blockID != "" {
			return s.SectorsOfBlock(blockID)
		}
		return nonNil(s.Sectors)
	})
}

func listRoomsHandler(log zerolog.Logger, svc inventory.InventoryService) http.HandlerFunc {
	return snapshotHandler(log, "list-rooms", svc, func(r *http.Request, s hierarchy.Snapshot) any {
		if sectorID := r.URL.Query().Get("sectorId"); sectorID != "" {
			return s.RoomsOfSector(sectorID)
		}
		return nonNil(s.Rooms)
	})
}

func listAssetsHandler(log zerolog.Logger, svc inventory.InventoryService) http.HandlerFunc {
	return snapshotHandler(log, "list-assets", svc, func(r *http.Request, s hierarchy.Snapshot) any {
		assets := s.Assets
		if roomID := r.URL.Query().Get("roomId"); roomID != "" {
			assets = s.AssetsOfRoom(roomID)
		}
		if status := r.URL.Query().Get("status"); status != "" {
			assets = lo.Filter(assets, func(a types.Asset, _ int) bool { return a.Status == status })
		}

		return lo.Map(assets, func(a types.Asset, _ int) assetView {
			return assetView{Asset: a, Location: s.AncestryOf(a)}
		})
	})
}

func hierarchyHandler(log zerolog.Logger, svc inventory.InventoryService) http.HandlerFunc {
	return snapshotHandler(log, "get-hierarchy", svc, func(r *http.Request, s hierarchy.Snapshot) any {
		return s.Tree()
	})
}

// snapshotHandler loads a snapshot of the inventory and responds with what
// view picks out of it.
func snapshotHandler(log zerolog.Logger, operation string, svc inventory.InventoryService, view func(*http.Request, hierarchy.Snapshot) any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), operation)
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := logging.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		snapshot, err := svc.Snapshot(ctx)
		if err != nil {
			writeSnapshotError(w, requestLogger, err)
			return
		}

		writeJSON(w, requestLogger, http.StatusOK, view(r, snapshot))
	}
}

func createBlockHandler(log zerolog.Logger, svc inventory.InventoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "create-block")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := logging.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		req := nameRequest{}
		if err = decodeBody(r, &req); err != nil {
			writeBadRequest(w, requestLogger, err)
			return
		}

		block, err := svc.CreateBlock(ctx, req.Name)
		if err != nil {
			writeInventoryError(w, requestLogger, err)
			return
		}

		writeJSON(w, requestLogger, http.StatusCreated, block)
	}
}

func updateBlockHandler(log zerolog.Logger, svc inventory.InventoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "update-block")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := logging.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		req := nameRequest{}
		if err = decodeBody(r, &req); err != nil {
			writeBadRequest(w, requestLogger, err)
			return
		}

		block, err := svc.UpdateBlock(ctx, chi.URLParam(r, "id"), req.Name)
		if err != nil {
			writeInventoryError(w, requestLogger, err)
			return
		}

		writeJSON(w, requestLogger, http.StatusOK, block)
	}
}

func createSectorHandler(log zerolog.Logger, svc inventory.InventoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "create-sector")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := logging.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		req := sectorRequest{}
		if err = decodeBody(r, &req); err != nil {
			writeBadRequest(w, requestLogger, err)
			return
		}

		sector, err := svc.CreateSector(ctx, req.Name, req.BlockID)
		if err != nil {
			writeInventoryError(w, requestLogger, err)
			return
		}

		writeJSON(w, requestLogger, http.StatusCreated, sector)
	}
}

func updateSectorHandler(log zerolog.Logger, svc inventory.InventoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "update-sector")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := logging.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		req := sectorRequest{}
		if err = decodeBody(r, &req); err != nil {
			writeBadRequest(w, requestLogger, err)
			return
		}

		sector, err := svc.UpdateSector(ctx, chi.URLParam(r, "id"), req.Name, req.BlockID)
		if err != nil {
			writeInventoryError(w, requestLogger, err)
			return
		}

		writeJSON(w, requestLogger, http.StatusOK, sector)
	}
}

func createRoomHandler(log zerolog.Logger, svc inventory.InventoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "create-room")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := logging.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		req := roomRequest{}
		if err = decodeBody(r, &req); err != nil {
			writeBadRequest(w, requestLogger, err)
			return
		}

		room, err := svc.CreateRoom(ctx, req.Name, req.SectorID)
		if err != nil {
			writeInventoryError(w, requestLogger, err)
			return
		}

		writeJSON(w, requestLogger, http.StatusCreated, room)
	}
}

func updateRoomHandler(log zerolog.Logger, svc inventory.InventoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "update-room")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := logging.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		req := roomRequest{}
		if err = decodeBody(r, &req); err != nil {
			writeBadRequest(w, requestLogger, err)
			return
		}

		room, err := svc.UpdateRoom(ctx, chi.URLParam(r, "id"), req.Name, req.SectorID)
		if err != nil {
			writeInventoryError(w, requestLogger, err)
			return
		}

		writeJSON(w, requestLogger, http.StatusOK, room)
	}
}

func deleteHandler(log zerolog.Logger, operation string, remove func(ctx context.Context, id string) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), operation)
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := logging.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		err = remove(ctx, chi.URLParam(r, "id"))
		if err != nil {
			writeInventoryError(w, requestLogger, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func getAssetHandler(log zerolog.Logger, svc inventory.InventoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "get-asset")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := logging.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		snapshot, err := svc.Snapshot(ctx)
		if err != nil {
			writeSnapshotError(w, requestLogger, err)
			return
		}

		asset, ok := snapshot.Asset(chi.URLParam(r, "id"))
		if !ok {
			err = inventory.ErrNotFound
			writeInventoryError(w, requestLogger, err)
			return
		}

		writeJSON(w, requestLogger, http.StatusOK, assetView{Asset: asset, Location: snapshot.AncestryOf(asset)})
	}
}

func assetFormHandler(log zerolog.Logger, svc inventory.InventoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "get-asset-form")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := logging.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		snapshot, err := svc.Snapshot(ctx)
		if err != nil {
			writeSnapshotError(w, requestLogger, err)
			return
		}

		asset, ok := snapshot.Asset(chi.URLParam(r, "id"))
		if !ok {
			err = inventory.ErrNotFound
			writeInventoryError(w, requestLogger, err)
			return
		}

		writeJSON(w, requestLogger, http.StatusOK, newFormView(snapshot, assignment.ForAsset(snapshot, asset)))
	}
}

// evaluateFormHandler replays the posted values on a fresh form and returns
// the resulting state. A selection that is not available stops the replay,
// leaving it and every level below it empty.
func evaluateFormHandler(log zerolog.Logger, svc inventory.InventoryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "evaluate-asset-form")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := logging.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		values := assignment.Values{}
		if err = decodeBody(r, &values); err != nil {
			writeBadRequest(w, requestLogger, err)
			return
		}

		snapshot, err := svc.Snapshot(ctx)
		if err != nil {
			writeSnapshotError(w, requestLogger, err)
			return
		}

		form, replayErr := assignment.FromValues(snapshot, values)
		view := newFormView(snapshot, form)

		if r.URL.Query().Get("validate") == "true" {
			if errs := form.Validate(); errs != nil {
				view.Errors = errs
			}
		}
		if replayErr != nil {
			requestLogger.Debug().Err(replayErr).Msg("selection dropped from asset form")
		}

		writeJSON(w, requestLogger, http.StatusOK, view)
	}
}

func createAssetHandler(log zerolog.Logger, svc inventory.InventoryService) http.HandlerFunc {
	return submitAssetHandler(log, "create-asset", svc, func(ctx context.Context, _ *http.Request, s assignment.Submission) (types.Asset, int, error) {
		a, err := svc.CreateAsset(ctx, s)
		return a, http.StatusCreated, err
	})
}

func updateAssetHandler(log zerolog.Logger, svc inventory.InventoryService) http.HandlerFunc {
	return submitAssetHandler(log, "update-asset", svc, func(ctx context.Context, r *http.Request, s assignment.Submission) (types.Asset, int, error) {
		a, err := svc.UpdateAsset(ctx, chi.URLParam(r, "id"), s)
		return a, http.StatusOK, err
	})
}

func submitAssetHandler(log zerolog.Logger, operation string, svc inventory.InventoryService, store func(context.Context, *http.Request, assignment.Submission) (types.Asset, int, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), operation)
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := logging.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		values := assignment.Values{}
		if err = decodeBody(r, &values); err != nil {
			writeBadRequest(w, requestLogger, err)
			return
		}

		snapshot, err := svc.Snapshot(ctx)
		if err != nil {
			writeSnapshotError(w, requestLogger, err)
			return
		}

		// an unavailable option is left empty and reported per field by Submit
		form, err := assignment.FromValues(snapshot, values)
		if err != nil && !errors.Is(err, assignment.ErrOptionUnavailable) {
			writeInventoryError(w, requestLogger, err)
			return
		}

		submission, err := form.Submit()
		if err != nil {
			writeInventoryError(w, requestLogger, err)
			return
		}

		asset, status, err := store(ctx, r, submission)
		if err != nil {
			writeInventoryError(w, requestLogger, err)
			return
		}

		writeJSON(w, requestLogger, status, assetView{Asset: asset, Location: snapshot.AncestryOf(asset)})
	}
}

func writeBadRequest(w http.ResponseWriter, logger zerolog.Logger, err error) {
	logger.Error().Err(err).Msg("unable to read request body")
	writeNotice(w, logger, http.StatusBadRequest, "Erro", "Requisição inválida.", nil)
}

func writeSnapshotError(w http.ResponseWriter, logger zerolog.Logger, err error) {
	logger.Error().Err(err).Msg("failed to load inventory")
	writeNotice(w, logger, http.StatusServiceUnavailable, "Erro", "Os dados ainda não foram carregados.", nil)
}

func writeInventoryError(w http.ResponseWriter, logger zerolog.Logger, err error) {
	var fieldErrors assignment.FieldErrors

	switch {
	case errors.As(err, &fieldErrors):
		writeNotice(w, logger, http.StatusBadRequest, "Erro de Validação", "Verifique os campos destacados.", fieldErrors)
	case errors.Is(err, inventory.ErrNotFound):
		writeNotice(w, logger, http.StatusNotFound, "Não encontrado", "O registro solicitado não existe.", nil)
	case errors.Is(err, inventory.ErrInvalidName):
		writeNotice(w, logger, http.StatusBadRequest, "Erro de Validação", "O nome não pode ficar em branco.", map[string]string{assignment.FieldName: err.Error()})
	case errors.Is(err, inventory.ErrInvalidStatus):
		writeNotice(w, logger, http.StatusBadRequest, "Erro de Validação", "Selecione um status.", map[string]string{assignment.FieldStatus: err.Error()})
	case errors.Is(err, inventory.ErrParentNotFound), errors.Is(err, assignment.ErrOptionUnavailable):
		writeNotice(w, logger, http.StatusBadRequest, "Erro de Validação", "A localização selecionada não existe.", nil)
	default:
		logger.Error().Err(err).Msg("inventory operation failed")
		writeNotice(w, logger, http.StatusInternalServerError, "Erro", "Não foi possível concluir a operação.", nil)
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
