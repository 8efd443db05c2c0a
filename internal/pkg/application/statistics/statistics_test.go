package statistics

import (
	"testing"

	"github.com/keepinventory/asset-inventory/internal/pkg/application/hierarchy"
	"github.com/keepinventory/asset-inventory/pkg/types"
	"github.com/matryer/is"
)

func TestCountAll(t *testing.T) {
	is := is.New(t)

	c := CountAll(testSnapshot())
	is.Equal(c, types.Counts{Assets: 5, Rooms: 3, Sectors: 2, Blocks: 1, InUse: 2, Lost: 1, Locations: 6})
}

func TestUnknownStatusIsCountedInTotalButNotInAnyBucket(t *testing.T) {
	is := is.New(t)
	s := testSnapshot()

	breakdown := ByStatus(s.Assets)
	is.Equal(breakdown, []types.ChartEntry{
		{Name: types.StatusInUse, Value: 2},
		{Name: types.StatusLost, Value: 1},
		{Name: types.StatusUnknown, Value: 1},
	})

	sum := 0
	for _, e := range breakdown {
		sum += e.Value
	}
	is.Equal(sum, CountAll(s).Assets-1) // the asset with status "Quebrado"
}

func TestByStatusOfNoAssetsIsEmpty(t *testing.T) {
	is := is.New(t)

	breakdown := ByStatus(nil)
	is.True(breakdown != nil)
	is.Equal(len(breakdown), 0)
}

func TestBySectorSkipsUnresolvableAssetsAndEmptySectors(t *testing.T) {
	is := is.New(t)
	s := testSnapshot()
	s.Sectors = append(s.Sectors, types.Sector{ID: "s9", Name: "Vazio", BlockID: "b1"})

	breakdown := BySector(s.Assets, s.Rooms, s.Sectors)
	is.Equal(breakdown, []types.ChartEntry{
		{Name: "TI", Value: 3},
		{Name: "RH", Value: 1},
	})
}

func TestBySectorWithoutRoomsIsEmpty(t *testing.T) {
	is := is.New(t)
	s := testSnapshot()

	is.Equal(len(BySector(s.Assets, nil, s.Sectors)), 0)
	is.Equal(len(BySector(s.Assets, s.Rooms, nil)), 0)
}

func TestCompute(t *testing.T) {
	is := is.New(t)

	stats := Compute(testSnapshot())
	is.Equal(stats.Counts.Assets, 5)
	is.Equal(len(stats.StatusBreakdown), 3)
	is.Equal(len(stats.SectorBreakdown), 2)
}

func testSnapshot() hierarchy.Snapshot {
	return hierarchy.Snapshot{
		Blocks: []types.Block{{ID: "b1", Name: "Bloco A"}},
		Sectors: []types.Sector{
			{ID: "s1", Name: "TI", BlockID: "b1"},
			{ID: "s2", Name: "RH", BlockID: "b1"},
		},
		Rooms: []types.Room{
			{ID: "r1", Name: "101", SectorID: "s1"},
			{ID: "r2", Name: "102", SectorID: "s1"},
			{ID: "r3", Name: "201", SectorID: "s2"},
		},
		Assets: []types.Asset{
			{ID: "a1", Name: "Notebook", Status: types.StatusInUse, RoomID: "r1"},
			{ID: "a2", Name: "Monitor", Status: types.StatusInUse, RoomID: "r2"},
			{ID: "a3", Name: "Projetor", Status: "Quebrado", RoomID: "r2"},
			{ID: "a4", Name: "Cadeira", Status: types.StatusLost, RoomID: "r3"},
			{ID: "a5", Name: "Mesa", Status: types.StatusUnknown, RoomID: "gone"},
		},
	}
}
