package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/keepinventory/asset-inventory/internal/pkg/application/activity"
	"github.com/keepinventory/asset-inventory/internal/pkg/application/identity"
	"github.com/keepinventory/asset-inventory/internal/pkg/application/inventory"
	"github.com/keepinventory/asset-inventory/internal/pkg/infrastructure/logging"
	"github.com/keepinventory/asset-inventory/internal/pkg/presentation/api/auth"
	"github.com/keepinventory/asset-inventory/pkg/types"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("asset-inventory/api")

const (
	// ConfirmationHeader carries the phrase required to clear the activity log.
	ConfirmationHeader string = "X-Confirmation"
	sessionCookie      string = "jwt"
)

// Pinger reports whether the backing store can be reached.
type Pinger interface {
	Ping(ctx context.Context) error
}

func RegisterHandlers(ctx context.Context, router *chi.Mux, policies io.Reader, store Pinger, identitySvc identity.IdentityService, inventorySvc inventory.InventoryService, activitySvc activity.Service, events http.Handler, location *time.Location) (*chi.Mux, error) {

	router.Get("/health", healthHandler(store))

	log := logging.GetLoggerFromContext(ctx)

	authenticator, err := auth.NewAuthenticator(ctx, policies, identitySvc)
	if err != nil {
		return nil, fmt.Errorf("failed to create api authenticator: %w", err)
	}

	read := authenticator.RequireAccess(auth.ScopeInventoryRead)
	write := authenticator.RequireAccess(auth.ScopeInventoryWrite)
	clearLog := authenticator.RequireAccess(auth.ScopeActivityClear)

	router.Route("/api/v0", func(r chi.Router) {
		r.Post("/auth/signin", signInHandler(log, identitySvc))
		r.Post("/auth/signup", signUpHandler(log, identitySvc))

		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(identitySvc.TokenAuth()))

			r.With(read).Post("/auth/signout", signOutHandler(log, identitySvc))
			r.With(read).Get("/auth/me", meHandler(log))

			r.Route("/blocks", func(r chi.Router) {
				r.With(read).Get("/", listBlocksHandler(log, inventorySvc))
				r.With(write).Post("/", createBlockHandler(log, inventorySvc))
				r.With(write).Patch("/{id}", updateBlockHandler(log, inventorySvc))
				r.With(write).Delete("/{id}", deleteHandler(log, "delete-block", inventorySvc.DeleteBlock))
			})

			r.Route("/sectors", func(r chi.Router) {
				r.With(read).Get("/", listSectorsHandler(log, inventorySvc))
				r.With(write).Post("/", createSectorHandler(log, inventorySvc))
				r.With(write).Patch("/{id}", updateSectorHandler(log, inventorySvc))
				r.With(write).Delete("/{id}", deleteHandler(log, "delete-sector", inventorySvc.DeleteSector))
			})

			r.Route("/rooms", func(r chi.Router) {
				r.With(read).Get("/", listRoomsHandler(log, inventorySvc))
				r.With(write).Post("/", createRoomHandler(log, inventorySvc))
				r.With(write).Patch("/{id}", updateRoomHandler(log, inventorySvc))
				r.With(write).Delete("/{id}", deleteHandler(log, "delete-room", inventorySvc.DeleteRoom))
			})

			r.Route("/assets", func(r chi.Router) {
				r.With(read).Get("/", listAssetsHandler(log, inventorySvc))
				r.With(write).Post("/", createAssetHandler(log, inventorySvc))
				r.With(read).Get("/{id}", getAssetHandler(log, inventorySvc))
				r.With(read).Get("/{id}/form", assetFormHandler(log, inventorySvc))
				r.With(write).Put("/{id}", updateAssetHandler(log, inventorySvc))
				r.With(write).Delete("/{id}", deleteHandler(log, "delete-asset", inventorySvc.DeleteAsset))
			})

			r.With(read).Post("/forms/asset", evaluateFormHandler(log, inventorySvc))
			r.With(read).Get("/hierarchy", hierarchyHandler(log, inventorySvc))

			r.With(read).Get("/dashboard", dashboardHandler(log, inventorySvc, activitySvc, location))
			r.With(read).Get("/dashboard/charts/status", statusChartHandler(log, inventorySvc))
			r.With(read).Get("/dashboard/charts/sectors", sectorChartHandler(log, inventorySvc))

			r.With(read).Get("/activity", listActivityHandler(log, activitySvc, location))
			r.With(clearLog).Delete("/activity", clearActivityHandler(log, activitySvc))

			r.With(read).Get("/reports/inventory", inventoryReportHandler(log, inventorySvc))
			r.With(read).Get("/reports/activity", activityReportHandler(log, activitySvc, location))

			r.With(read).Handle("/events", events)
		})
	})

	return router, nil
}

func healthHandler(store Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store != nil {
			if err := store.Ping(r.Context()); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeJSON(w http.ResponseWriter, logger zerolog.Logger, status int, body any) {
	b, err := json.Marshal(body)
	if err != nil {
		logger.Error().Err(err).Msg("unable to marshal response body")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(b)
}

func writeNotice(w http.ResponseWriter, logger zerolog.Logger, status int, title, description string, fields map[string]string) {
	notice := types.Notice{
		Title:       title,
		Description: description,
		Fields:      fields,
	}
	if status >= http.StatusBadRequest {
		notice.Variant = "destructive"
	}

	writeJSON(w, logger, status, notice)
}

func decodeBody(r *http.Request, v any) error {
	defer r.Body.Close()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}

	return json.Unmarshal(body, v)
}
