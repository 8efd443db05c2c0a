package identity

import (
	"context"
	"errors"
	"math"
	"time"

	db "github.com/keepinventory/asset-inventory/internal/pkg/infrastructure/repositories/database"
	"github.com/rs/zerolog"
)

// DefaultTimespan is the longest the watchdog sleeps between two sweeps, in seconds.
const DefaultTimespan = 3600

type sessionStore interface {
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
	NextSessionExpiry(ctx context.Context) (time.Time, error)
}

// Watchdog removes expired sessions from the store in the background.
type Watchdog interface {
	Start()
	Stop()
}

type watchdogImpl struct {
	done  chan bool
	log   zerolog.Logger
	store sessionStore
}

func NewWatchdog(store db.UserRepository, log zerolog.Logger) Watchdog {
	return &watchdogImpl{
		log:   log.With().Str("component", "watchdog").Logger(),
		store: store,
		done:  make(chan bool),
	}
}

func (w *watchdogImpl) Start() {
	go backgroundWorker(w, w.done)
}

func (w *watchdogImpl) Stop() {
	w.done <- true
}

func backgroundWorker(w *watchdogImpl, done <-chan bool) {
	for {
		sleepForSeconds := w.sweep(context.Background(), time.Now().UTC())
		w.log.Debug().Msgf("will sleep for %d seconds", sleepForSeconds)

		select {
		case <-done:
			return
		case <-time.After(time.Duration(sleepForSeconds) * time.Second):
		}
	}
}

// sweep deletes the sessions that have expired at now and returns the number
// of seconds until the next one expires.
func (w *watchdogImpl) sweep(ctx context.Context, now time.Time) int {
	deleted, err := w.store.DeleteExpiredSessions(ctx, now)
	if err != nil {
		w.log.Error().Err(err).Msg("could not delete expired sessions")
		return DefaultTimespan
	}

	if deleted > 0 {
		w.log.Info().Msgf("deleted %d expired sessions", deleted)
	}

	next, err := w.store.NextSessionExpiry(ctx)
	if err != nil {
		if !errors.Is(err, db.ErrNotFound) {
			w.log.Error().Err(err).Msg("could not read next session expiry")
		}
		return DefaultTimespan
	}

	return timeToNextTime(next, now)
}

func timeToNextTime(next, now time.Time) int {
	n := int(math.Ceil(next.Sub(now).Seconds()))

	if n <= 0 {
		return 1
	}
	if n > DefaultTimespan {
		return DefaultTimespan
	}

	return n
}
