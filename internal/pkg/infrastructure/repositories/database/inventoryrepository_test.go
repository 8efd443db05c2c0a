package database

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/keepinventory/asset-inventory/pkg/types"
	"github.com/matryer/is"
	"github.com/rs/zerolog"
)

func TestSaveAndGetBlock(t *testing.T) {
	is, ctx, r := testSetupInventoryRepository(t)

	err := r.SaveBlock(ctx, types.Block{ID: "b1", Name: "Bloco A"})
	is.NoErr(err)

	b, err := r.GetBlock(ctx, "b1")
	is.NoErr(err)
	is.Equal(b.Name, "Bloco A")
}

func TestSaveExistingRoomUpdatesNameAndParent(t *testing.T) {
	is, ctx, r := testSetupInventoryRepository(t)

	is.NoErr(r.SaveRoom(ctx, types.Room{ID: "r1", Name: "101", SectorID: "s1"}))
	is.NoErr(r.SaveRoom(ctx, types.Room{ID: "r1", Name: "102", SectorID: "s2"}))

	rooms, err := r.GetRooms(ctx)
	is.NoErr(err)
	is.Equal(len(rooms), 1)
	is.Equal(rooms[0], types.Room{ID: "r1", Name: "102", SectorID: "s2"})
}

func TestGetUnknownAssetReturnsErrNotFound(t *testing.T) {
	is, ctx, r := testSetupInventoryRepository(t)

	_, err := r.GetAsset(ctx, "nope")
	is.Equal(err, ErrNotFound)
}

func TestDeleteSector(t *testing.T) {
	is, ctx, r := testSetupInventoryRepository(t)

	is.NoErr(r.SaveSector(ctx, types.Sector{ID: "s1", Name: "TI", BlockID: "b1"}))
	is.NoErr(r.DeleteSector(ctx, "s1"))

	sectors, err := r.GetSectors(ctx)
	is.NoErr(err)
	is.Equal(len(sectors), 0)

	is.Equal(r.DeleteSector(ctx, "s1"), ErrNotFound)
}

func TestAssetsAreListedInCreationOrder(t *testing.T) {
	is, ctx, r := testSetupInventoryRepository(t)

	for i := 0; i < 3; i++ {
		is.NoErr(r.SaveAsset(ctx, types.Asset{ID: fmt.Sprintf("a%d", i), Name: "Cadeira", Status: types.StatusInUse, RoomID: "r1"}))
		time.Sleep(2 * time.Millisecond)
	}

	assets, err := r.GetAssets(ctx)
	is.NoErr(err)
	is.Equal(len(assets), 3)
	is.Equal(assets[0].ID, "a0")
	is.Equal(assets[2].ID, "a2")
}

func TestLogEntriesAreReturnedNewestFirst(t *testing.T) {
	is, ctx, r := testSetupInventoryRepository(t)

	now := time.Now()
	for i := 0; i < 12; i++ {
		ts := now.Add(time.Duration(i) * time.Minute)
		is.NoErr(r.AddLogEntry(ctx, types.LogEntry{ID: fmt.Sprintf("e%02d", i), Acao: "Bloco criado", Timestamp: &ts}))
	}
	is.NoErr(r.AddLogEntry(ctx, types.LogEntry{ID: "undated", Acao: "Sala removida"}))

	entries, err := r.GetLogEntries(ctx, 10)
	is.NoErr(err)
	is.Equal(len(entries), 10)
	is.Equal(entries[0].ID, "e11")
	is.Equal(entries[9].ID, "e02")

	all, err := r.GetLogEntries(ctx, 0)
	is.NoErr(err)
	is.Equal(len(all), 13)
	is.Equal(all[12].ID, "undated")
	is.True(all[12].Timestamp == nil)
}

func TestDeleteLogEntries(t *testing.T) {
	is, ctx, r := testSetupInventoryRepository(t)

	for i := 0; i < deleteBatchSize+5; i++ {
		ts := time.Now()
		is.NoErr(r.AddLogEntry(ctx, types.LogEntry{ID: fmt.Sprintf("e%04d", i), Acao: "Patrimônio alterado", Timestamp: &ts}))
	}

	ids, err := r.GetLogEntryIDs(ctx)
	is.NoErr(err)
	is.Equal(len(ids), deleteBatchSize+5)

	is.NoErr(r.DeleteLogEntries(ctx, ids))

	ids, err = r.GetLogEntryIDs(ctx)
	is.NoErr(err)
	is.Equal(len(ids), 0)
}

func TestPing(t *testing.T) {
	is, ctx, r := testSetupInventoryRepository(t)
	is.NoErr(r.Ping(ctx))
}

func testSetupInventoryRepository(t *testing.T) (*is.I, context.Context, InventoryRepository) {
	is := is.New(t)
	ctx := context.Background()

	r, err := NewInventoryRepository(NewSQLiteConnector(zerolog.Nop()))
	is.NoErr(err)

	return is, ctx, r
}
