package activity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/google/uuid"
	"github.com/keepinventory/asset-inventory/internal/pkg/infrastructure/logging"
	"github.com/keepinventory/asset-inventory/pkg/types"
	"golang.org/x/text/cases"
)

// RecentLimit is the number of entries in the recent activity feed.
const RecentLimit int = 10

// ConfirmationPhrase must be supplied verbatim to clear the activity log.
const ConfirmationPhrase string = "LIMPAR LOG GERAL"

const (
	CategoryCreated  string = "created"
	CategoryDeleted  string = "deleted"
	CategoryModified string = "modified"
	CategoryMoved    string = "moved"
	CategoryHistory  string = "history"
)

const (
	timestampLayout  string = "02/01/2006 15:04:05"
	feedLayout       string = "02/01/2006 às 15:04:05"
	UnknownTimestamp string = "Data desconhecida"
)

var (
	ErrConfirmationMismatch = fmt.Errorf("confirmation phrase does not match")
	ErrClearFailed          = fmt.Errorf("failed to clear activity log")
	ErrEmptyAction          = fmt.Errorf("activity text must not be empty")
)

var categoryKeywords = []struct {
	keyword  string
	category string
}{
	{"criado", CategoryCreated},
	{"removido", CategoryDeleted},
	{"alterado", CategoryModified},
	{"movido", CategoryMoved},
}

// Classify picks the feed category of a log text. The first keyword found,
// ignoring case, decides the category.
func Classify(acao string) string {
	text := cases.Fold().String(acao)

	for _, k := range categoryKeywords {
		if strings.Contains(text, k.keyword) {
			return k.category
		}
	}

	return CategoryHistory
}

// FormatTimestamp renders ts as dd/mm/yyyy HH:mm:ss in loc, or "Data desconhecida" for nil.
func FormatTimestamp(ts *time.Time, loc *time.Location) string {
	return format(ts, loc, timestampLayout)
}

func format(ts *time.Time, loc *time.Location, layout string) string {
	if ts == nil {
		return UnknownTimestamp
	}
	if loc == nil {
		loc = time.UTC
	}
	return ts.In(loc).Format(layout)
}

func ToItem(e types.LogEntry, loc *time.Location) types.ActivityItem {
	return types.ActivityItem{
		ID:        e.ID,
		Acao:      e.Acao,
		Category:  Classify(e.Acao),
		When:      format(e.Timestamp, loc, feedLayout),
		Timestamp: e.Timestamp,
	}
}

//go:generate moq -rm -out logstorage_mock.go . LogStorage

type LogStorage interface {
	AddLogEntry(ctx context.Context, e types.LogEntry) error
	GetLogEntries(ctx context.Context, limit int) ([]types.LogEntry, error)
	GetLogEntryIDs(ctx context.Context) ([]string, error)
	DeleteLogEntries(ctx context.Context, ids []string) error
}

//go:generate moq -rm -out publisher_mock.go . Publisher

type Publisher interface {
	PublishOnTopic(ctx context.Context, message messaging.TopicMessage) error
}

type ChangeNotifier interface {
	CollectionChanged(collection, action, id string) error
}

type EventSender interface {
	Send(ctx context.Context, item types.ActivityItem) error
}

//go:generate moq -rm -out activity_mock.go . Service

type Service interface {
	Recent(ctx context.Context) ([]types.ActivityItem, error)
	Entries(ctx context.Context, limit int) ([]types.LogEntry, error)
	Append(ctx context.Context, acao string, timestamp *time.Time) (types.LogEntry, error)
	ClearLog(ctx context.Context, confirmation string) (types.ClearResult, error)
}

type service struct {
	storage   LogStorage
	notifier  ChangeNotifier
	sender    EventSender
	publisher Publisher
	location  *time.Location
}

func New(storage LogStorage, notifier ChangeNotifier, sender EventSender, publisher Publisher, location *time.Location) Service {
	if location == nil {
		location = time.UTC
	}

	return &service{
		storage:   storage,
		notifier:  notifier,
		sender:    sender,
		publisher: publisher,
		location:  location,
	}
}

// Recent returns the latest entries in the order the store hands them out.
func (s *service) Recent(ctx context.Context) ([]types.ActivityItem, error) {
	entries, err := s.storage.GetLogEntries(ctx, RecentLimit)
	if err != nil {
		return nil, err
	}

	items := make([]types.ActivityItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, ToItem(e, s.location))
	}

	return items, nil
}

func (s *service) Entries(ctx context.Context, limit int) ([]types.LogEntry, error) {
	return s.storage.GetLogEntries(ctx, limit)
}

// Append adds an entry to the log. A nil timestamp means now.
func (s *service) Append(ctx context.Context, acao string, timestamp *time.Time) (types.LogEntry, error) {
	acao = strings.TrimSpace(acao)
	if acao == "" {
		return types.LogEntry{}, ErrEmptyAction
	}

	if timestamp == nil {
		now := time.Now().UTC()
		timestamp = &now
	}

	entry := types.LogEntry{
		ID:        uuid.NewString(),
		Acao:      acao,
		Timestamp: timestamp,
	}

	err := s.storage.AddLogEntry(ctx, entry)
	if err != nil {
		return types.LogEntry{}, fmt.Errorf("failed to add log entry: %w", err)
	}

	logger := logging.GetLoggerFromContext(ctx)

	if s.notifier != nil {
		if err := s.notifier.CollectionChanged(types.CollectionLog, types.ActionCreated, entry.ID); err != nil {
			logger.Error().Err(err).Msg("failed to notify subscribers about new log entry")
		}
	}

	if s.sender != nil {
		if err := s.sender.Send(ctx, ToItem(entry, s.location)); err != nil {
			logger.Error().Err(err).Msg("failed to send activity event")
		}
	}

	return entry, nil
}

// ClearLog deletes every log entry in one batch, provided the confirmation
// phrase matches. Clearing an empty log succeeds without touching the store.
func (s *service) ClearLog(ctx context.Context, confirmation string) (types.ClearResult, error) {
	if confirmation != ConfirmationPhrase {
		return types.ClearResult{}, ErrConfirmationMismatch
	}

	logger := logging.GetLoggerFromContext(ctx)

	ids, err := s.storage.GetLogEntryIDs(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to read activity log")
		return types.ClearResult{}, errors.Join(ErrClearFailed, err)
	}

	if len(ids) == 0 {
		return types.ClearResult{
			Cleared:     0,
			Title:       "Tudo limpo!",
			Description: "Não havia logs para serem removidos.",
		}, nil
	}

	err = s.storage.DeleteLogEntries(ctx, ids)
	if err != nil {
		logger.Error().Err(err).Msg("failed to clear activity log")
		return types.ClearResult{}, errors.Join(ErrClearFailed, err)
	}

	logger.Info().Msgf("cleared %d entries from the activity log", len(ids))

	if s.notifier != nil {
		if err := s.notifier.CollectionChanged(types.CollectionLog, types.ActionDeleted, ""); err != nil {
			logger.Error().Err(err).Msg("failed to notify subscribers about cleared log")
		}
	}

	if s.publisher != nil {
		err = s.publisher.PublishOnTopic(ctx, &types.ActivityLogCleared{Count: len(ids), Timestamp: time.Now().UTC()})
		if err != nil {
			logger.Error().Err(err).Msg("failed to publish log cleared message")
		}
	}

	return types.ClearResult{
		Cleared:     len(ids),
		Title:       "Sucesso!",
		Description: "O log de atividades foi limpo completamente.",
	}, nil
}
