package inventory

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/keepinventory/asset-inventory/internal/pkg/application/activity"
	"github.com/keepinventory/asset-inventory/internal/pkg/application/assignment"
	"github.com/keepinventory/asset-inventory/internal/pkg/infrastructure/logging"
	db "github.com/keepinventory/asset-inventory/internal/pkg/infrastructure/repositories/database"
	"github.com/keepinventory/asset-inventory/pkg/types"
	"github.com/matryer/is"
	"github.com/rs/zerolog"
)

func TestCreateBlockLogsAndPublishes(t *testing.T) {
	is, ctx, svc, log, pub := testSetup(t)

	b, err := svc.CreateBlock(ctx, "  Bloco A ")
	is.NoErr(err)
	is.Equal(b.Name, "Bloco A")

	is.Equal(len(log.AppendCalls()), 1)
	is.Equal(log.AppendCalls()[0].Acao, `Bloco "Bloco A" criado`)

	is.Equal(len(pub.PublishOnTopicCalls()), 1)
	is.Equal(pub.PublishOnTopicCalls()[0].Message.TopicName(), "inventory.block.created")
}

func TestCreateBlockWithEmptyNameFails(t *testing.T) {
	is, ctx, svc, _, _ := testSetup(t)

	_, err := svc.CreateBlock(ctx, "   ")
	is.True(errors.Is(err, ErrInvalidName))
}

func TestCreateSectorInUnknownBlockFails(t *testing.T) {
	is, ctx, svc, _, _ := testSetup(t)

	_, err := svc.CreateSector(ctx, "TI", "nope")
	is.True(errors.Is(err, ErrParentNotFound))
}

func TestMovingSectorLogsMove(t *testing.T) {
	is, ctx, svc, log, _ := testSetup(t)

	a, _ := svc.CreateBlock(ctx, "A")
	b, _ := svc.CreateBlock(ctx, "B")
	s, err := svc.CreateSector(ctx, "TI", a.ID)
	is.NoErr(err)

	s, err = svc.UpdateSector(ctx, s.ID, "TI", b.ID)
	is.NoErr(err)
	is.Equal(s.BlockID, b.ID)

	calls := log.AppendCalls()
	is.Equal(calls[len(calls)-1].Acao, `Setor "TI" movido de "A" para "B"`)
}

func TestRenamingRoomKeepsSector(t *testing.T) {
	is, ctx, svc, log, _ := testSetup(t)

	room := createRoom(t, ctx, svc)

	updated, err := svc.UpdateRoom(ctx, room.ID, "102", "")
	is.NoErr(err)
	is.Equal(updated.SectorID, room.SectorID)

	calls := log.AppendCalls()
	is.Equal(calls[len(calls)-1].Acao, `Cadastro da sala "101" alterado para "102"`)
	is.Equal(activity.Classify(calls[len(calls)-1].Acao), activity.CategoryModified)
}

func TestAssetLifecycle(t *testing.T) {
	is, ctx, svc, log, pub := testSetup(t)

	r1 := createRoom(t, ctx, svc)
	r2, err := svc.CreateRoom(ctx, "102", r1.SectorID)
	is.NoErr(err)

	a, err := svc.CreateAsset(ctx, assignment.Submission{Name: "Notebook", Status: types.StatusInUse, RoomID: r1.ID})
	is.NoErr(err)

	a, err = svc.UpdateAsset(ctx, a.ID, assignment.Submission{Name: "Notebook", Status: types.StatusStored, RoomID: r2.ID})
	is.NoErr(err)
	is.Equal(a.Status, types.StatusStored)

	calls := log.AppendCalls()
	is.Equal(calls[len(calls)-1].Acao, `Patrimônio "Notebook" movido de "101" para "102"`)

	is.NoErr(svc.DeleteAsset(ctx, a.ID))

	calls = log.AppendCalls()
	is.Equal(calls[len(calls)-1].Acao, `Patrimônio "Notebook" removido`)

	msgs := pub.PublishOnTopicCalls()
	is.Equal(msgs[len(msgs)-1].Message.TopicName(), "inventory.asset.deleted")

	_, err = svc.GetAsset(ctx, a.ID)
	is.True(errors.Is(err, ErrNotFound))
}

func TestCreateAssetWithInvalidStatusFails(t *testing.T) {
	is, ctx, svc, _, _ := testSetup(t)

	r := createRoom(t, ctx, svc)

	_, err := svc.CreateAsset(ctx, assignment.Submission{Name: "Cadeira", Status: "Quebrado", RoomID: r.ID})
	is.True(errors.Is(err, ErrInvalidStatus))
}

func TestDeleteUnknownBlockFails(t *testing.T) {
	is, ctx, svc, _, _ := testSetup(t)

	is.True(errors.Is(svc.DeleteBlock(ctx, "nope"), ErrNotFound))
}

func TestSeed(t *testing.T) {
	is, ctx, svc, log, _ := testSetup(t)

	n, err := svc.Seed(ctx, []db.SeedRecord{
		{Block: "A", Sector: "TI", Room: "101", Asset: "Notebook", Status: types.StatusInUse},
		{Block: "A", Sector: "TI", Room: "101", Asset: "Monitor", Status: types.StatusInUse},
		{Block: "A", Sector: "RH", Room: "101", Asset: "Cadeira", Status: types.StatusLost},
		{Block: "B", Sector: "TI", Room: "201", Asset: "Mesa", Status: types.StatusStored},
	})
	is.NoErr(err)
	is.Equal(n, 4)

	s, err := svc.Snapshot(ctx)
	is.NoErr(err)
	is.Equal(len(s.Blocks), 2)
	is.Equal(len(s.Sectors), 3) // TI exists in both blocks
	is.Equal(len(s.Rooms), 3)
	is.Equal(len(s.Assets), 4)
	is.Equal(len(log.AppendCalls()), 1)

	n, err = svc.Seed(ctx, []db.SeedRecord{{Block: "C", Sector: "X", Room: "1", Asset: "Y", Status: types.StatusInUse}})
	is.NoErr(err)
	is.Equal(n, 0) // store is no longer empty
}

func TestSeedLogsFailedNotification(t *testing.T) {
	is := is.New(t)
	buf := &bytes.Buffer{}
	ctx := logging.NewContextWithLogger(context.Background(), zerolog.New(buf))

	repo, err := db.NewInventoryRepository(db.NewSQLiteConnector(zerolog.Nop()))
	is.NoErr(err)

	notifier := &failingNotifier{}
	svc := New(repo, nil, notifier, nil)

	n, err := svc.Seed(ctx, []db.SeedRecord{{Block: "A", Sector: "TI", Room: "101", Asset: "Notebook", Status: types.StatusInUse}})
	is.NoErr(err)
	is.Equal(n, 1)
	is.Equal(notifier.calls, 4)
	is.True(strings.Contains(buf.String(), "failed to notify collection change"))
}

type failingNotifier struct {
	calls int
}

func (f *failingNotifier) CollectionChanged(collection, action, id string) error {
	f.calls++
	return errors.New("no subscribers")
}

func createRoom(t *testing.T, ctx context.Context, svc InventoryService) types.Room {
	is := is.New(t)

	b, err := svc.CreateBlock(ctx, "A")
	is.NoErr(err)
	s, err := svc.CreateSector(ctx, "TI", b.ID)
	is.NoErr(err)
	r, err := svc.CreateRoom(ctx, "101", s.ID)
	is.NoErr(err)

	return r
}

func testSetup(t *testing.T) (*is.I, context.Context, InventoryService, *activity.ServiceMock, *activity.PublisherMock) {
	is := is.New(t)
	ctx := context.Background()

	repo, err := db.NewInventoryRepository(db.NewSQLiteConnector(zerolog.Nop()))
	is.NoErr(err)

	log := &activity.ServiceMock{
		AppendFunc: func(ctx context.Context, acao string, timestamp *time.Time) (types.LogEntry, error) {
			return types.LogEntry{ID: "x", Acao: acao}, nil
		},
	}

	pub := &activity.PublisherMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			return nil
		},
	}

	return is, ctx, New(repo, log, nil, pub), log, pub
}
