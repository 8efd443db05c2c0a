package hierarchy

import (
	"github.com/keepinventory/asset-inventory/pkg/types"
	"github.com/samber/lo"
)

type BlockNode struct {
	types.Block
	Sectors []SectorNode `json:"sectors"`
}

type SectorNode struct {
	types.Sector
	Rooms []RoomNode `json:"rooms"`
}

type RoomNode struct {
	types.Room
	Assets []types.Asset `json:"assets"`
}

// Tree nests the snapshot as Block -> Sector -> Room -> Asset. Children whose
// parent does not exist are left out. Every node has a non nil child slice.
func (s Snapshot) Tree() []BlockNode {
	return lo.Map(s.Blocks, func(b types.Block, _ int) BlockNode {
		return BlockNode{
			Block: b,
			Sectors: lo.Map(s.SectorsOfBlock(b.ID), func(sector types.Sector, _ int) SectorNode {
				return SectorNode{
					Sector: sector,
					Rooms: lo.Map(s.RoomsOfSector(sector.ID), func(r types.Room, _ int) RoomNode {
						return RoomNode{Room: r, Assets: s.AssetsOfRoom(r.ID)}
					}),
				}
			}),
		}
	})
}
