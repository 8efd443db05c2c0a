package activity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/keepinventory/asset-inventory/pkg/types"
	"github.com/matryer/is"
)

func TestClassify(t *testing.T) {
	is := is.New(t)

	is.Equal(Classify(`Bloco "A" criado`), CategoryCreated)
	is.Equal(Classify(`Patrimônio "Notebook" REMOVIDO`), CategoryDeleted)
	is.Equal(Classify(`Setor "TI" alterado`), CategoryModified)
	is.Equal(Classify(`Patrimônio "X" movido de "101" para "102"`), CategoryMoved)
	is.Equal(Classify(`Inventário conferido`), CategoryHistory)
	// first keyword wins
	is.Equal(Classify(`Registro criado e depois removido`), CategoryCreated)
}

func TestFormatTimestamp(t *testing.T) {
	is := is.New(t)

	loc := time.FixedZone("BRT", -3*60*60)
	ts := time.Date(2024, 1, 5, 13, 4, 5, 0, time.UTC)

	is.Equal(FormatTimestamp(&ts, loc), "05/01/2024 10:04:05")
	is.Equal(FormatTimestamp(nil, loc), UnknownTimestamp)
}

func TestRecentKeepsStoreOrderAndClassifies(t *testing.T) {
	is, ctx := setupTest(t)

	t1 := time.Date(2024, 1, 5, 13, 0, 0, 0, time.UTC)
	t2 := t1.Add(-time.Hour)

	storage := &LogStorageMock{
		GetLogEntriesFunc: func(ctx context.Context, limit int) ([]types.LogEntry, error) {
			is.Equal(limit, RecentLimit)
			return []types.LogEntry{
				{ID: "2", Acao: `Sala "101" removida`, Timestamp: &t1},
				{ID: "1", Acao: `Bloco "A" criado`, Timestamp: &t2},
				{ID: "0", Acao: `Importação inicial`},
			}, nil
		},
	}

	svc := New(storage, nil, nil, nil, time.UTC)

	items, err := svc.Recent(ctx)
	is.NoErr(err)
	is.Equal(len(items), 3)
	is.Equal(items[0].ID, "2")
	is.Equal(items[0].Category, CategoryHistory) // "removida" is not the keyword "removido"
	is.Equal(items[0].When, "05/01/2024 às 13:00:00")
	is.Equal(items[1].Category, CategoryCreated)
	is.Equal(items[2].When, UnknownTimestamp)
}

func TestAppendStoresNotifiesAndSends(t *testing.T) {
	is, ctx := setupTest(t)

	storage := &LogStorageMock{
		AddLogEntryFunc: func(ctx context.Context, e types.LogEntry) error { return nil },
	}
	notifier := &notifierStub{}
	sender := &senderStub{}

	svc := New(storage, notifier, sender, nil, time.UTC)

	entry, err := svc.Append(ctx, `  Bloco "A" criado `, nil)
	is.NoErr(err)
	is.True(entry.ID != "")
	is.True(entry.Timestamp != nil)
	is.Equal(entry.Acao, `Bloco "A" criado`)

	is.Equal(len(storage.AddLogEntryCalls()), 1)
	is.Equal(notifier.collections, []string{types.CollectionLog})
	is.Equal(len(sender.items), 1)
	is.Equal(sender.items[0].Category, CategoryCreated)
}

func TestAppendRejectsEmptyText(t *testing.T) {
	is, ctx := setupTest(t)

	svc := New(&LogStorageMock{}, nil, nil, nil, time.UTC)

	_, err := svc.Append(ctx, "   ", nil)
	is.True(errors.Is(err, ErrEmptyAction))
}

func TestClearLogRequiresConfirmation(t *testing.T) {
	is, ctx := setupTest(t)

	storage := &LogStorageMock{}
	svc := New(storage, nil, nil, nil, time.UTC)

	_, err := svc.ClearLog(ctx, "limpar log geral")
	is.True(errors.Is(err, ErrConfirmationMismatch))
	is.Equal(len(storage.GetLogEntryIDsCalls()), 0)
}

func TestClearEmptyLogSucceedsWithoutDeleting(t *testing.T) {
	is, ctx := setupTest(t)

	storage := &LogStorageMock{
		GetLogEntryIDsFunc: func(ctx context.Context) ([]string, error) {
			return []string{}, nil
		},
	}
	publisher := &PublisherMock{}

	svc := New(storage, nil, nil, publisher, time.UTC)

	result, err := svc.ClearLog(ctx, ConfirmationPhrase)
	is.NoErr(err)
	is.Equal(result.Cleared, 0)
	is.Equal(result.Description, "Não havia logs para serem removidos.")
	is.Equal(len(storage.DeleteLogEntriesCalls()), 0)
	is.Equal(len(publisher.PublishOnTopicCalls()), 0)
}

func TestClearLogDeletesEverythingInOneBatch(t *testing.T) {
	is, ctx := setupTest(t)

	storage := &LogStorageMock{
		GetLogEntryIDsFunc: func(ctx context.Context) ([]string, error) {
			return []string{"a", "b", "c"}, nil
		},
		DeleteLogEntriesFunc: func(ctx context.Context, ids []string) error {
			return nil
		},
	}
	publisher := &PublisherMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			return nil
		},
	}
	notifier := &notifierStub{}

	svc := New(storage, notifier, nil, publisher, time.UTC)

	result, err := svc.ClearLog(ctx, ConfirmationPhrase)
	is.NoErr(err)
	is.Equal(result.Cleared, 3)
	is.Equal(result.Description, "O log de atividades foi limpo completamente.")

	is.Equal(len(storage.DeleteLogEntriesCalls()), 1)
	is.Equal(storage.DeleteLogEntriesCalls()[0].Ids, []string{"a", "b", "c"})

	is.Equal(len(publisher.PublishOnTopicCalls()), 1)
	is.Equal(publisher.PublishOnTopicCalls()[0].Message.TopicName(), "inventory.activity.cleared")
	is.Equal(notifier.actions, []string{types.ActionDeleted})
}

func TestClearLogReportsStoreFailure(t *testing.T) {
	is, ctx := setupTest(t)

	storage := &LogStorageMock{
		GetLogEntryIDsFunc: func(ctx context.Context) ([]string, error) {
			return []string{"a"}, nil
		},
		DeleteLogEntriesFunc: func(ctx context.Context, ids []string) error {
			return errors.New("transaction aborted")
		},
	}

	svc := New(storage, nil, nil, nil, time.UTC)

	_, err := svc.ClearLog(ctx, ConfirmationPhrase)
	is.True(errors.Is(err, ErrClearFailed))
}

type notifierStub struct {
	collections []string
	actions     []string
}

func (n *notifierStub) CollectionChanged(collection, action, id string) error {
	n.collections = append(n.collections, collection)
	n.actions = append(n.actions, action)
	return nil
}

type senderStub struct {
	items []types.ActivityItem
}

func (s *senderStub) Send(ctx context.Context, item types.ActivityItem) error {
	s.items = append(s.items, item)
	return nil
}

func setupTest(t *testing.T) (*is.I, context.Context) {
	is := is.New(t)
	return is, context.Background()
}
