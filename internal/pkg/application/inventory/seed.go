package inventory

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/keepinventory/asset-inventory/internal/pkg/infrastructure/logging"
	db "github.com/keepinventory/asset-inventory/internal/pkg/infrastructure/repositories/database"
	"github.com/keepinventory/asset-inventory/pkg/types"
)

// Seed loads an initial inventory into an empty store. Blocks, sectors and
// rooms are matched by name within their parent and created when missing.
// Nothing is written if the store already holds assets.
func (s *service) Seed(ctx context.Context, records []db.SeedRecord) (int, error) {
	logger := logging.GetLoggerFromContext(ctx)

	snapshot, err := s.Snapshot(ctx)
	if err != nil {
		return 0, err
	}

	if len(snapshot.Assets) > 0 {
		logger.Info().Msg("inventory already contains assets, skipping seed")
		return 0, nil
	}

	blocks := map[string]string{}
	for _, b := range snapshot.Blocks {
		blocks[b.Name] = b.ID
	}

	sectors := map[[2]string]string{}
	for _, sector := range snapshot.Sectors {
		sectors[[2]string{sector.BlockID, sector.Name}] = sector.ID
	}

	rooms := map[[2]string]string{}
	for _, r := range snapshot.Rooms {
		rooms[[2]string{r.SectorID, r.Name}] = r.ID
	}

	for _, rec := range records {
		blockID, ok := blocks[rec.Block]
		if !ok {
			blockID = uuid.NewString()
			if err := s.repo.SaveBlock(ctx, types.Block{ID: blockID, Name: rec.Block}); err != nil {
				return 0, fmt.Errorf("failed to seed block %s: %w", rec.Block, err)
			}
			blocks[rec.Block] = blockID
		}

		sectorKey := [2]string{blockID, rec.Sector}
		sectorID, ok := sectors[sectorKey]
		if !ok {
			sectorID = uuid.NewString()
			if err := s.repo.SaveSector(ctx, types.Sector{ID: sectorID, Name: rec.Sector, BlockID: blockID}); err != nil {
				return 0, fmt.Errorf("failed to seed sector %s: %w", rec.Sector, err)
			}
			sectors[sectorKey] = sectorID
		}

		roomKey := [2]string{sectorID, rec.Room}
		roomID, ok := rooms[roomKey]
		if !ok {
			roomID = uuid.NewString()
			if err := s.repo.SaveRoom(ctx, types.Room{ID: roomID, Name: rec.Room, SectorID: sectorID}); err != nil {
				return 0, fmt.Errorf("failed to seed room %s: %w", rec.Room, err)
			}
			rooms[roomKey] = roomID
		}

		asset := types.Asset{ID: uuid.NewString(), Name: rec.Asset, Status: rec.Status, RoomID: roomID}
		if err := s.repo.SaveAsset(ctx, asset); err != nil {
			return 0, fmt.Errorf("failed to seed asset %s: %w", rec.Asset, err)
		}
	}

	if len(records) > 0 {
		for _, collection := range []string{types.CollectionBlocks, types.CollectionSectors, types.CollectionRooms, types.CollectionAssets} {
			if s.notifier != nil {
				if err := s.notifier.CollectionChanged(collection, types.ActionCreated, ""); err != nil {
					logger.Error().Err(err).Str("collection", collection).Msg("failed to notify collection change")
				}
			}
		}

		if s.activity != nil {
			acao := fmt.Sprintf("Inventário inicial importado: %d patrimônios criados", len(records))
			if _, err := s.activity.Append(ctx, acao, nil); err != nil {
				logger.Error().Err(err).Msg("failed to add seed entry to activity log")
			}
		}
	}

	logger.Info().Msgf("seeded inventory with %d assets", len(records))

	return len(records), nil
}
