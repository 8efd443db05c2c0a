package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/keepinventory/asset-inventory/pkg/types"
	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrNotFound = fmt.Errorf("not found")

// maximum number of ids per DELETE statement when clearing the log
const deleteBatchSize = 500

type InventoryRepository interface {
	GetBlocks(ctx context.Context) ([]types.Block, error)
	GetBlock(ctx context.Context, id string) (types.Block, error)
	SaveBlock(ctx context.Context, b types.Block) error
	DeleteBlock(ctx context.Context, id string) error

	GetSectors(ctx context.Context) ([]types.Sector, error)
	GetSector(ctx context.Context, id string) (types.Sector, error)
	SaveSector(ctx context.Context, s types.Sector) error
	DeleteSector(ctx context.Context, id string) error

	GetRooms(ctx context.Context) ([]types.Room, error)
	GetRoom(ctx context.Context, id string) (types.Room, error)
	SaveRoom(ctx context.Context, r types.Room) error
	DeleteRoom(ctx context.Context, id string) error

	GetAssets(ctx context.Context) ([]types.Asset, error)
	GetAsset(ctx context.Context, id string) (types.Asset, error)
	SaveAsset(ctx context.Context, a types.Asset) error
	DeleteAsset(ctx context.Context, id string) error

	AddLogEntry(ctx context.Context, e types.LogEntry) error
	GetLogEntries(ctx context.Context, limit int) ([]types.LogEntry, error)
	GetLogEntryIDs(ctx context.Context) ([]string, error)
	DeleteLogEntries(ctx context.Context, ids []string) error

	Ping(ctx context.Context) error
}

type inventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(connect ConnectorFunc) (InventoryRepository, error) {
	impl, _, err := connect()
	if err != nil {
		return nil, err
	}

	err = impl.AutoMigrate(&Block{}, &Sector{}, &Room{}, &Asset{}, &LogEntry{})
	if err != nil {
		return nil, err
	}

	return &inventoryRepository{
		db: impl,
	}, nil
}

func list[T any](ctx context.Context, db *gorm.DB) ([]T, error) {
	items := []T{}
	err := db.WithContext(ctx).Order("created_at, id").Find(&items).Error
	return items, err
}

func get[T any](ctx context.Context, db *gorm.DB, id string) (T, error) {
	var item T

	err := db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return item, ErrNotFound
	}

	return item, err
}

// save inserts item or, if a row with the same id exists, overwrites the given columns
func save[T any](ctx context.Context, db *gorm.DB, item *T, columns ...string) error {
	return db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns(append(columns, "updated_at")),
	}).Create(item).Error
}

func remove[T any](ctx context.Context, db *gorm.DB, id string) error {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *inventoryRepository) GetBlocks(ctx context.Context) ([]types.Block, error) {
	blocks, err := list[Block](ctx, r.db)
	if err != nil {
		return nil, err
	}
	return lo.Map(blocks, func(b Block, _ int) types.Block { return blockToType(b) }), nil
}

func (r *inventoryRepository) GetBlock(ctx context.Context, id string) (types.Block, error) {
	b, err := get[Block](ctx, r.db, id)
	return blockToType(b), err
}

func (r *inventoryRepository) SaveBlock(ctx context.Context, b types.Block) error {
	return save(ctx, r.db, &Block{ID: b.ID, Name: b.Name}, "name")
}

func (r *inventoryRepository) DeleteBlock(ctx context.Context, id string) error {
	return remove[Block](ctx, r.db, id)
}

func (r *inventoryRepository) GetSectors(ctx context.Context) ([]types.Sector, error) {
	sectors, err := list[Sector](ctx, r.db)
	if err != nil {
		return nil, err
	}
	return lo.Map(sectors, func(s Sector, _ int) types.Sector { return sectorToType(s) }), nil
}

func (r *inventoryRepository) GetSector(ctx context.Context, id string) (types.Sector, error) {
	s, err := get[Sector](ctx, r.db, id)
	return sectorToType(s), err
}

func (r *inventoryRepository) SaveSector(ctx context.Context, s types.Sector) error {
	return save(ctx, r.db, &Sector{ID: s.ID, Name: s.Name, BlockID: s.BlockID}, "name", "block_id")
}

func (r *inventoryRepository) DeleteSector(ctx context.Context, id string) error {
	return remove[Sector](ctx, r.db, id)
}

func (r *inventoryRepository) GetRooms(ctx context.Context) ([]types.Room, error) {
	rooms, err := list[Room](ctx, r.db)
	if err != nil {
		return nil, err
	}
	return lo.Map(rooms, func(rm Room, _ int) types.Room { return roomToType(rm) }), nil
}

func (r *inventoryRepository) GetRoom(ctx context.Context, id string) (types.Room, error) {
	rm, err := get[Room](ctx, r.db, id)
	return roomToType(rm), err
}

func (r *inventoryRepository) SaveRoom(ctx context.Context, rm types.Room) error {
	return save(ctx, r.db, &Room{ID: rm.ID, Name: rm.Name, SectorID: rm.SectorID}, "name", "sector_id")
}

func (r *inventoryRepository) DeleteRoom(ctx context.Context, id string) error {
	return remove[Room](ctx, r.db, id)
}

func (r *inventoryRepository) GetAssets(ctx context.Context) ([]types.Asset, error) {
	assets, err := list[Asset](ctx, r.db)
	if err != nil {
		return nil, err
	}
	return lo.Map(assets, func(a Asset, _ int) types.Asset { return assetToType(a) }), nil
}

func (r *inventoryRepository) GetAsset(ctx context.Context, id string) (types.Asset, error) {
	a, err := get[Asset](ctx, r.db, id)
	return assetToType(a), err
}

func (r *inventoryRepository) SaveAsset(ctx context.Context, a types.Asset) error {
	return save(ctx, r.db, &Asset{ID: a.ID, Name: a.Name, Status: a.Status, RoomID: a.RoomID}, "name", "status", "room_id")
}

func (r *inventoryRepository) DeleteAsset(ctx context.Context, id string) error {
	return remove[Asset](ctx, r.db, id)
}

func (r *inventoryRepository) AddLogEntry(ctx context.Context, e types.LogEntry) error {
	entry := LogEntry{ID: e.ID, Acao: e.Acao}
	if e.Timestamp != nil {
		// stored as UTC so that timestamps sort the same way in every driver
		ts := e.Timestamp.UTC()
		entry.Timestamp = &ts
	}
	return r.db.WithContext(ctx).Create(&entry).Error
}

// GetLogEntries returns the newest entries first, entries without a timestamp last.
// A limit <= 0 returns the whole log.
func (r *inventoryRepository) GetLogEntries(ctx context.Context, limit int) ([]types.LogEntry, error) {
	entries := []LogEntry{}

	query := r.db.WithContext(ctx).
		Order(`"timestamp" IS NULL`).
		Order(`"timestamp" DESC`).
		Order("id")

	if limit > 0 {
		query = query.Limit(limit)
	}

	err := query.Find(&entries).Error
	if err != nil {
		return nil, err
	}

	return lo.Map(entries, func(e LogEntry, _ int) types.LogEntry { return logEntryToType(e) }), nil
}

func (r *inventoryRepository) GetLogEntryIDs(ctx context.Context) ([]string, error) {
	ids := []string{}
	err := r.db.WithContext(ctx).Model(&LogEntry{}).Pluck("id", &ids).Error
	return ids, err
}

// DeleteLogEntries removes all the given entries or none of them.
func (r *inventoryRepository) DeleteLogEntries(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, batch := range lo.Chunk(ids, deleteBatchSize) {
			if err := tx.Where("id IN ?", batch).Delete(&LogEntry{}).Error; err != nil {
				return fmt.Errorf("failed to delete log entries: %w", err)
			}
		}
		return nil
	})
}

func (r *inventoryRepository) Ping(ctx context.Context) error {
	sqldb, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqldb.PingContext(ctx)
}
