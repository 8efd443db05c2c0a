package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/keepinventory/asset-inventory/internal/pkg/application/activity"
	"github.com/keepinventory/asset-inventory/internal/pkg/application/assignment"
	"github.com/keepinventory/asset-inventory/internal/pkg/application/hierarchy"
	"github.com/keepinventory/asset-inventory/internal/pkg/infrastructure/logging"
	db "github.com/keepinventory/asset-inventory/internal/pkg/infrastructure/repositories/database"
	"github.com/keepinventory/asset-inventory/pkg/types"
)

var (
	ErrNotFound       = fmt.Errorf("not found")
	ErrInvalidName    = fmt.Errorf("name must not be empty")
	ErrInvalidStatus  = fmt.Errorf("invalid asset status")
	ErrParentNotFound = fmt.Errorf("parent not found")
)

const (
	KindBlock  string = "block"
	KindSector string = "sector"
	KindRoom   string = "room"
	KindAsset  string = "asset"
)

//go:generate moq -rm -out inventory_mock.go . InventoryService

type InventoryService interface {
	Snapshot(ctx context.Context) (hierarchy.Snapshot, error)

	CreateBlock(ctx context.Context, name string) (types.Block, error)
	UpdateBlock(ctx context.Context, id, name string) (types.Block, error)
	DeleteBlock(ctx context.Context, id string) error

	CreateSector(ctx context.Context, name, blockID string) (types.Sector, error)
	UpdateSector(ctx context.Context, id, name, blockID string) (types.Sector, error)
	DeleteSector(ctx context.Context, id string) error

	CreateRoom(ctx context.Context, name, sectorID string) (types.Room, error)
	UpdateRoom(ctx context.Context, id, name, sectorID string) (types.Room, error)
	DeleteRoom(ctx context.Context, id string) error

	GetAsset(ctx context.Context, id string) (types.Asset, error)
	CreateAsset(ctx context.Context, s assignment.Submission) (types.Asset, error)
	UpdateAsset(ctx context.Context, id string, s assignment.Submission) (types.Asset, error)
	DeleteAsset(ctx context.Context, id string) error

	Seed(ctx context.Context, records []db.SeedRecord) (int, error)
}

type service struct {
	repo      db.InventoryRepository
	activity  activity.Service
	notifier  activity.ChangeNotifier
	publisher activity.Publisher
}

func New(repo db.InventoryRepository, a activity.Service, notifier activity.ChangeNotifier, publisher activity.Publisher) InventoryService {
	return &service{
		repo:      repo,
		activity:  a,
		notifier:  notifier,
		publisher: publisher,
	}
}

func (s *service) Snapshot(ctx context.Context) (hierarchy.Snapshot, error) {
	return hierarchy.Load(ctx, s.repo)
}

func (s *service) CreateBlock(ctx context.Context, name string) (types.Block, error) {
	b := types.Block{ID: uuid.NewString(), Name: strings.TrimSpace(name)}
	if b.Name == "" {
		return types.Block{}, ErrInvalidName
	}

	if err := s.repo.SaveBlock(ctx, b); err != nil {
		return types.Block{}, fmt.Errorf("failed to save block: %w", err)
	}

	s.changed(ctx, KindBlock, types.CollectionBlocks, types.ActionCreated, b.ID, b.Name,
		fmt.Sprintf("Bloco %q criado", b.Name))

	return b, nil
}

func (s *service) UpdateBlock(ctx context.Context, id, name string) (types.Block, error) {
	current, err := s.repo.GetBlock(ctx, id)
	if err != nil {
		return types.Block{}, mapError(err)
	}

	b := types.Block{ID: id, Name: strings.TrimSpace(name)}
	if b.Name == "" {
		return types.Block{}, ErrInvalidName
	}

	if err := s.repo.SaveBlock(ctx, b); err != nil {
		return types.Block{}, fmt.Errorf("failed to save block: %w", err)
	}

	s.changed(ctx, KindBlock, types.CollectionBlocks, types.ActionUpdated, b.ID, b.Name,
		renamed("Bloco", current.Name, b.Name))

	return b, nil
}

func (s *service) DeleteBlock(ctx context.Context, id string) error {
	b, err := s.repo.GetBlock(ctx, id)
	if err != nil {
		return mapError(err)
	}

	if err := s.repo.DeleteBlock(ctx, id); err != nil {
		return mapError(err)
	}

	s.changed(ctx, KindBlock, types.CollectionBlocks, types.ActionDeleted, b.ID, b.Name,
		fmt.Sprintf("Bloco %q removido", b.Name))

	return nil
}

func (s *service) CreateSector(ctx context.Context, name, blockID string) (types.Sector, error) {
	sector := types.Sector{ID: uuid.NewString(), Name: strings.TrimSpace(name), BlockID: blockID}
	if sector.Name == "" {
		return types.Sector{}, ErrInvalidName
	}

	if _, err := s.repo.GetBlock(ctx, blockID); err != nil {
		return types.Sector{}, parentError(err, "block", blockID)
	}

	if err := s.repo.SaveSector(ctx, sector); err != nil {
		return types.Sector{}, fmt.Errorf("failed to save sector: %w", err)
	}

	s.changed(ctx, KindSector, types.CollectionSectors, types.ActionCreated, sector.ID, sector.Name,
		fmt.Sprintf("Setor %q criado", sector.Name))

	return sector, nil
}

// UpdateSector renames a sector and, if blockID is not empty, moves it to that block.
func (s *service) UpdateSector(ctx context.Context, id, name, blockID string) (types.Sector, error) {
	current, err := s.repo.GetSector(ctx, id)
	if err != nil {
		return types.Sector{}, mapError(err)
	}

	sector := types.Sector{ID: id, Name: strings.TrimSpace(name), BlockID: current.BlockID}
	if sector.Name == "" {
		return types.Sector{}, ErrInvalidName
	}

	acao := renamed("Setor", current.Name, sector.Name)

	if blockID != "" && blockID != current.BlockID {
		to, err := s.repo.GetBlock(ctx, blockID)
		if err != nil {
			return types.Sector{}, parentError(err, "block", blockID)
		}
		from, _ := s.repo.GetBlock(ctx, current.BlockID)

		sector.BlockID = blockID
		acao = moved("Setor", sector.Name, from.Name, to.Name)
	}

	if err := s.repo.SaveSector(ctx, sector); err != nil {
		return types.Sector{}, fmt.Errorf("failed to save sector: %w", err)
	}

	s.changed(ctx, KindSector, types.CollectionSectors, types.ActionUpdated, sector.ID, sector.Name, acao)

	return sector, nil
}

func (s *service) DeleteSector(ctx context.Context, id string) error {
	sector, err := s.repo.GetSector(ctx, id)
	if err != nil {
		return mapError(err)
	}

	if err := s.repo.DeleteSector(ctx, id); err != nil {
		return mapError(err)
	}

	s.changed(ctx, KindSector, types.CollectionSectors, types.ActionDeleted, sector.ID, sector.Name,
		fmt.Sprintf("Setor %q removido", sector.Name))

	return nil
}

func (s *service) CreateRoom(ctx context.Context, name, sectorID string) (types.Room, error) {
	room := types.Room{ID: uuid.NewString(), Name: strings.TrimSpace(name), SectorID: sectorID}
	if room.Name == "" {
		return types.Room{}, ErrInvalidName
	}

	if _, err := s.repo.GetSector(ctx, sectorID); err != nil {
		return types.Room{}, parentError(err, "sector", sectorID)
	}

	if err := s.repo.SaveRoom(ctx, room); err != nil {
		return types.Room{}, fmt.Errorf("failed to save room: %w", err)
	}

	s.changed(ctx, KindRoom, types.CollectionRooms, types.ActionCreated, room.ID, room.Name,
		fmt.Sprintf("Cadastro da sala %q criado", room.Name))

	return room, nil
}

// UpdateRoom renames a room and, if sectorID is not empty, moves it to that sector.
func (s *service) UpdateRoom(ctx context.Context, id, name, sectorID string) (types.Room, error) {
	current, err := s.repo.GetRoom(ctx, id)
	if err != nil {
		return types.Room{}, mapError(err)
	}

	room := types.Room{ID: id, Name: strings.TrimSpace(name), SectorID: current.SectorID}
	if room.Name == "" {
		return types.Room{}, ErrInvalidName
	}

	acao := renamed("Cadastro da sala", current.Name, room.Name)

	if sectorID != "" && sectorID != current.SectorID {
		to, err := s.repo.GetSector(ctx, sectorID)
		if err != nil {
			return types.Room{}, parentError(err, "sector", sectorID)
		}
		from, _ := s.repo.GetSector(ctx, current.SectorID)

		room.SectorID = sectorID
		acao = moved("Cadastro da sala", room.Name, from.Name, to.Name)
	}

	if err := s.repo.SaveRoom(ctx, room); err != nil {
		return types.Room{}, fmt.Errorf("failed to save room: %w", err)
	}

	s.changed(ctx, KindRoom, types.CollectionRooms, types.ActionUpdated, room.ID, room.Name, acao)

	return room, nil
}

func (s *service) DeleteRoom(ctx context.Context, id string) error {
	room, err := s.repo.GetRoom(ctx, id)
	if err != nil {
		return mapError(err)
	}

	if err := s.repo.DeleteRoom(ctx, id); err != nil {
		return mapError(err)
	}

	s.changed(ctx, KindRoom, types.CollectionRooms, types.ActionDeleted, room.ID, room.Name,
		fmt.Sprintf("Cadastro da sala %q removido", room.Name))

	return nil
}

func (s *service) GetAsset(ctx context.Context, id string) (types.Asset, error) {
	a, err := s.repo.GetAsset(ctx, id)
	if err != nil {
		return types.Asset{}, mapError(err)
	}
	return a, nil
}

func (s *service) CreateAsset(ctx context.Context, sub assignment.Submission) (types.Asset, error) {
	a := types.Asset{ID: uuid.NewString(), Name: strings.TrimSpace(sub.Name), Status: sub.Status, RoomID: sub.RoomID}
	if err := validateAsset(a); err != nil {
		return types.Asset{}, err
	}

	if _, err := s.repo.GetRoom(ctx, a.RoomID); err != nil {
		return types.Asset{}, parentError(err, "room", a.RoomID)
	}

	if err := s.repo.SaveAsset(ctx, a); err != nil {
		return types.Asset{}, fmt.Errorf("failed to save asset: %w", err)
	}

	s.changed(ctx, KindAsset, types.CollectionAssets, types.ActionCreated, a.ID, a.Name,
		fmt.Sprintf("Patrimônio %q criado", a.Name))

	return a, nil
}

func (s *service) UpdateAsset(ctx context.Context, id string, sub assignment.Submission) (types.Asset, error) {
	current, err := s.repo.GetAsset(ctx, id)
	if err != nil {
		return types.Asset{}, mapError(err)
	}

	a := types.Asset{ID: id, Name: strings.TrimSpace(sub.Name), Status: sub.Status, RoomID: sub.RoomID}
	if err := validateAsset(a); err != nil {
		return types.Asset{}, err
	}

	to, err := s.repo.GetRoom(ctx, a.RoomID)
	if err != nil {
		return types.Asset{}, parentError(err, "room", a.RoomID)
	}

	if err := s.repo.SaveAsset(ctx, a); err != nil {
		return types.Asset{}, fmt.Errorf("failed to save asset: %w", err)
	}

	acao := fmt.Sprintf("Patrimônio %q alterado", a.Name)
	if current.RoomID != a.RoomID {
		from, _ := s.repo.GetRoom(ctx, current.RoomID)
		acao = moved("Patrimônio", a.Name, from.Name, to.Name)
	}

	s.changed(ctx, KindAsset, types.CollectionAssets, types.ActionUpdated, a.ID, a.Name, acao)

	return a, nil
}

func (s *service) DeleteAsset(ctx context.Context, id string) error {
	a, err := s.repo.GetAsset(ctx, id)
	if err != nil {
		return mapError(err)
	}

	if err := s.repo.DeleteAsset(ctx, id); err != nil {
		return mapError(err)
	}

	s.changed(ctx, KindAsset, types.CollectionAssets, types.ActionDeleted, a.ID, a.Name,
		fmt.Sprintf("Patrimônio %q removido", a.Name))

	return nil
}

// changed fans a completed write out to the activity log, live subscribers and
// the message bus. Failures are logged since the write itself has succeeded.
func (s *service) changed(ctx context.Context, kind, collection, action, id, name, acao string) {
	logger := logging.GetLoggerFromContext(ctx)

	if s.activity != nil {
		if _, err := s.activity.Append(ctx, acao, nil); err != nil {
			logger.Error().Err(err).Msg("failed to add entry to activity log")
		}
	}

	if s.notifier != nil {
		if err := s.notifier.CollectionChanged(collection, action, id); err != nil {
			logger.Error().Err(err).Msgf("failed to notify subscribers about %s", collection)
		}
	}

	if s.publisher != nil {
		err := s.publisher.PublishOnTopic(ctx, &types.EntityChanged{
			Kind:      kind,
			Action:    action,
			ID:        id,
			Name:      name,
			Timestamp: time.Now().UTC(),
		})
		if err != nil {
			logger.Error().Err(err).Msgf("failed to publish %s %s message", kind, action)
		}
	}
}

func validateAsset(a types.Asset) error {
	if a.Name == "" {
		return ErrInvalidName
	}
	if !types.IsValidStatus(a.Status) {
		return ErrInvalidStatus
	}
	return nil
}

func renamed(label, from, to string) string {
	if from == to {
		return fmt.Sprintf("%s %q alterado", label, to)
	}
	return fmt.Sprintf("%s %q alterado para %q", label, from, to)
}

func moved(label, name, from, to string) string {
	return fmt.Sprintf("%s %q movido de %q para %q", label, name, from, to)
}

func mapError(err error) error {
	if errors.Is(err, db.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

func parentError(err error, kind, id string) error {
	if errors.Is(err, db.ErrNotFound) {
		return fmt.Errorf("%s %s: %w", kind, id, ErrParentNotFound)
	}
	return err
}
