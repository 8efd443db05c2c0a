package statistics

import (
	"github.com/keepinventory/asset-inventory/internal/pkg/application/hierarchy"
	"github.com/keepinventory/asset-inventory/pkg/types"
	"github.com/samber/lo"
)

// InsufficientData is shown in place of a chart whose breakdown is empty.
const InsufficientData = "Dados insuficientes para exibir o gráfico."

type Stats struct {
	Counts          types.Counts
	StatusBreakdown []types.ChartEntry
	SectorBreakdown []types.ChartEntry
}

// Compute derives every dashboard figure from a snapshot. It keeps no state
// and is called again whenever any of the collections change.
func Compute(s hierarchy.Snapshot) Stats {
	return Stats{
		Counts:          CountAll(s),
		StatusBreakdown: ByStatus(s.Assets),
		SectorBreakdown: BySector(s.Assets, s.Rooms, s.Sectors),
	}
}

func CountAll(s hierarchy.Snapshot) types.Counts {
	byStatus := lo.GroupBy(s.Assets, func(a types.Asset) string { return a.Status })

	return types.Counts{
		Assets:    len(s.Assets),
		Rooms:     len(s.Rooms),
		Sectors:   len(s.Sectors),
		Blocks:    len(s.Blocks),
		InUse:     len(byStatus[types.StatusInUse]),
		Lost:      len(byStatus[types.StatusLost]),
		Locations: len(s.Blocks) + len(s.Sectors) + len(s.Rooms),
	}
}

// ByStatus counts assets per status in enumeration order. Statuses without
// assets are omitted, as are assets with a status outside the enumeration.
func ByStatus(assets []types.Asset) []types.ChartEntry {
	result := []types.ChartEntry{}

	if len(assets) == 0 {
		return result
	}

	byStatus := lo.GroupBy(assets, func(a types.Asset) string { return a.Status })

	for _, status := range types.AssetStatuses {
		if n := len(byStatus[status]); n > 0 {
			result = append(result, types.ChartEntry{Name: status, Value: n})
		}
	}

	return result
}

// BySector counts assets per sector, following asset -> room -> sector.
// Assets whose room or sector cannot be found are not counted. Sectors without
// assets are omitted. The order is that of the sector collection.
func BySector(assets []types.Asset, rooms []types.Room, sectors []types.Sector) []types.ChartEntry {
	result := []types.ChartEntry{}

	if len(assets) == 0 || len(rooms) == 0 || len(sectors) == 0 {
		return result
	}

	sectorOfRoom := lo.SliceToMap(rooms, func(r types.Room) (string, string) {
		return r.ID, r.SectorID
	})

	perSector := lo.GroupBy(assets, func(a types.Asset) string {
		return sectorOfRoom[a.RoomID]
	})

	for _, sector := range sectors {
		if n := len(perSector[sector.ID]); n > 0 {
			result = append(result, types.ChartEntry{Name: sector.Name, Value: n})
		}
	}

	return result
}
