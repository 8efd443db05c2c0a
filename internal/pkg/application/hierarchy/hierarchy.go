package hierarchy

import (
	"context"
	"fmt"

	"github.com/keepinventory/asset-inventory/pkg/types"
	"github.com/samber/lo"
)

// Source is the part of the inventory store a Snapshot is loaded from.
type Source interface {
	GetBlocks(ctx context.Context) ([]types.Block, error)
	GetSectors(ctx context.Context) ([]types.Sector, error)
	GetRooms(ctx context.Context) ([]types.Room, error)
	GetAssets(ctx context.Context) ([]types.Asset, error)
}

// Snapshot is an in-memory copy of the four entity collections. Every lookup
// scans the collections from scratch, so a Snapshot is never stale with
// respect to its own contents and needs no invalidation.
type Snapshot struct {
	Blocks  []types.Block
	Sectors []types.Sector
	Rooms   []types.Room
	Assets  []types.Asset
}

func Load(ctx context.Context, src Source) (Snapshot, error) {
	var err error
	s := Snapshot{}

	if s.Blocks, err = src.GetBlocks(ctx); err != nil {
		return Snapshot{}, fmt.Errorf("failed to load blocks: %w", err)
	}
	if s.Sectors, err = src.GetSectors(ctx); err != nil {
		return Snapshot{}, fmt.Errorf("failed to load sectors: %w", err)
	}
	if s.Rooms, err = src.GetRooms(ctx); err != nil {
		return Snapshot{}, fmt.Errorf("failed to load rooms: %w", err)
	}
	if s.Assets, err = src.GetAssets(ctx); err != nil {
		return Snapshot{}, fmt.Errorf("failed to load assets: %w", err)
	}

	return s, nil
}

func (s Snapshot) SectorsOfBlock(blockID string) []types.Sector {
	return lo.Filter(s.Sectors, func(sector types.Sector, _ int) bool {
		return sector.BlockID == blockID
	})
}

func (s Snapshot) RoomsOfSector(sectorID string) []types.Room {
	return lo.Filter(s.Rooms, func(room types.Room, _ int) bool {
		return room.SectorID == sectorID
	})
}

func (s Snapshot) AssetsOfRoom(roomID string) []types.Asset {
	return lo.Filter(s.Assets, func(asset types.Asset, _ int) bool {
		return asset.RoomID == roomID
	})
}

func (s Snapshot) Block(id string) (types.Block, bool) {
	return lo.Find(s.Blocks, func(b types.Block) bool { return b.ID == id })
}

func (s Snapshot) Sector(id string) (types.Sector, bool) {
	return lo.Find(s.Sectors, func(sector types.Sector) bool { return sector.ID == id })
}

func (s Snapshot) Room(id string) (types.Room, bool) {
	return lo.Find(s.Rooms, func(r types.Room) bool { return r.ID == id })
}

func (s Snapshot) Asset(id string) (types.Asset, bool) {
	return lo.Find(s.Assets, func(a types.Asset) bool { return a.ID == id })
}

// Ancestry is the location chain of an asset. A link that cannot be resolved is
// nil, as is everything above it.
type Ancestry struct {
	Room   *types.Room   `json:"room,omitempty"`
	Sector *types.Sector `json:"sector,omitempty"`
	Block  *types.Block  `json:"block,omitempty"`
}

// Complete reports whether room, sector and block were all found.
func (a Ancestry) Complete() bool {
	return a.Room != nil && a.Sector != nil && a.Block != nil
}

func (a Ancestry) RoomName() string {
	if a.Room == nil {
		return ""
	}
	return a.Room.Name
}

func (a Ancestry) SectorName() string {
	if a.Sector == nil {
		return ""
	}
	return a.Sector.Name
}

func (a Ancestry) BlockName() string {
	if a.Block == nil {
		return ""
	}
	return a.Block.Name
}

func (s Snapshot) AncestryOf(asset types.Asset) Ancestry {
	a := Ancestry{}

	room, ok := s.Room(asset.RoomID)
	if !ok {
		return a
	}
	a.Room = &room

	sector, ok := s.Sector(room.SectorID)
	if !ok {
		return a
	}
	a.Sector = &sector

	block, ok := s.Block(sector.BlockID)
	if ok {
		a.Block = &block
	}

	return a
}
