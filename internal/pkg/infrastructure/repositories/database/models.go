package database

import (
	"time"

	"github.com/keepinventory/asset-inventory/pkg/types"
)

type Block struct {
	ID        string `gorm:"primaryKey"`
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Block) TableName() string { return types.CollectionBlocks }

type Sector struct {
	ID        string `gorm:"primaryKey"`
	Name      string
	BlockID   string `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Sector) TableName() string { return types.CollectionSectors }

type Room struct {
	ID        string `gorm:"primaryKey"`
	Name      string
	SectorID  string `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Room) TableName() string { return types.CollectionRooms }

type Asset struct {
	ID        string `gorm:"primaryKey"`
	Name      string
	Status    string `gorm:"index"`
	RoomID    string `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Asset) TableName() string { return types.CollectionAssets }

type LogEntry struct {
	ID        string `gorm:"primaryKey"`
	Acao      string
	Timestamp *time.Time `gorm:"index"`
}

func (LogEntry) TableName() string { return types.CollectionLog }

type User struct {
	ID           string `gorm:"primaryKey"`
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

type Session struct {
	ID        string `gorm:"primaryKey"`
	UserID    string `gorm:"index"`
	Email     string
	ExpiresAt time.Time
	CreatedAt time.Time
}

func blockToType(b Block) types.Block {
	return types.Block{ID: b.ID, Name: b.Name}
}

func sectorToType(s Sector) types.Sector {
	return types.Sector{ID: s.ID, Name: s.Name, BlockID: s.BlockID}
}

func roomToType(r Room) types.Room {
	return types.Room{ID: r.ID, Name: r.Name, SectorID: r.SectorID}
}

func assetToType(a Asset) types.Asset {
	return types.Asset{ID: a.ID, Name: a.Name, Status: a.Status, RoomID: a.RoomID}
}

func logEntryToType(l LogEntry) types.LogEntry {
	return types.LogEntry{ID: l.ID, Acao: l.Acao, Timestamp: l.Timestamp}
}
