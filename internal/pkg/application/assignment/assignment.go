package assignment

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/keepinventory/asset-inventory/internal/pkg/application/hierarchy"
	"github.com/keepinventory/asset-inventory/pkg/types"
	"github.com/samber/lo"
)

type State int

const (
	NoBlockSelected State = iota
	BlockSelected
	SectorSelected
	FullySelected
)

func (s State) String() string {
	switch s {
	case BlockSelected:
		return "BlockSelected"
	case SectorSelected:
		return "SectorSelected"
	case FullySelected:
		return "FullySelected"
	default:
		return "NoBlockSelected"
	}
}

var ErrOptionUnavailable = fmt.Errorf("option is not available")

const (
	FieldName   string = "name"
	FieldStatus string = "status"
	FieldBlock  string = "blockId"
	FieldSector string = "sectorId"
	FieldRoom   string = "roomId"
)

// minimum length of an asset name, counted in characters after trimming
const minNameLength int = 2

// Values are the raw fields of the asset form.
type Values struct {
	Name     string `json:"name"`
	Status   string `json:"status"`
	BlockID  string `json:"blockId"`
	SectorID string `json:"sectorId"`
	RoomID   string `json:"roomId"`
}

// Submission is what a valid form produces. Block and sector only exist to
// narrow down the room and are not part of it.
type Submission struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	RoomID string `json:"roomId"`
}

// FieldErrors maps a form field to the message describing why it is invalid.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	msgs := make([]string, 0, len(fields))
	for _, f := range fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", f, fe[f]))
	}

	return "invalid form: " + strings.Join(msgs, "; ")
}

// Form is the cascading Block -> Sector -> Room selection of an asset form.
// Picking a level clears every level below it, and only options that belong
// to the level above can be picked.
type Form struct {
	snapshot   hierarchy.Snapshot
	values     Values
	unresolved bool
}

// New returns an empty form for creating an asset.
func New(snapshot hierarchy.Snapshot) *Form {
	return &Form{
		snapshot: snapshot,
		values:   Values{Status: types.StatusInUse},
	}
}

// ForAsset returns a form seeded for editing asset. The location is seeded
// only when the whole Room -> Sector -> Block chain resolves. Otherwise the
// form starts with no location selected and is marked unresolved.
func ForAsset(snapshot hierarchy.Snapshot, asset types.Asset) *Form {
	f := New(snapshot)
	f.values.Name = asset.Name
	if asset.Status != "" {
		f.values.Status = asset.Status
	}

	ancestry := snapshot.AncestryOf(asset)
	if !ancestry.Complete() {
		f.unresolved = true
		return f
	}

	f.values.BlockID = ancestry.Block.ID
	f.values.SectorID = ancestry.Sector.ID
	f.values.RoomID = ancestry.Room.ID

	return f
}

// FromValues replays the given values on a new form, picking block, sector and
// room in that order. It fails if any of them is not available.
func FromValues(snapshot hierarchy.Snapshot, v Values) (*Form, error) {
	f := New(snapshot)
	f.SetName(v.Name)
	f.SetStatus(v.Status)

	if v.BlockID == "" {
		return f, nil
	}
	if err := f.SelectBlock(v.BlockID); err != nil {
		return f, err
	}

	if v.SectorID == "" {
		return f, nil
	}
	if err := f.SelectSector(v.SectorID); err != nil {
		return f, err
	}

	if v.RoomID == "" {
		return f, nil
	}

	return f, f.SelectRoom(v.RoomID)
}

func (f *Form) Values() Values {
	return f.values
}

// Unresolved reports whether the form was seeded from an asset whose location
// could not be resolved.
func (f *Form) Unresolved() bool {
	return f.unresolved
}

func (f *Form) State() State {
	switch {
	case f.values.BlockID == "":
		return NoBlockSelected
	case f.values.SectorID == "":
		return BlockSelected
	case f.values.RoomID == "":
		return SectorSelected
	default:
		return FullySelected
	}
}

func (f *Form) SetName(name string) {
	f.values.Name = name
}

func (f *Form) SetStatus(status string) {
	f.values.Status = status
}

// SelectBlock picks a block and clears sector and room. An empty id clears the block.
func (f *Form) SelectBlock(blockID string) error {
	if blockID != "" {
		if _, ok := f.snapshot.Block(blockID); !ok {
			return fmt.Errorf("block %s: %w", blockID, ErrOptionUnavailable)
		}
	}

	f.values.BlockID = blockID
	f.values.SectorID = ""
	f.values.RoomID = ""

	return nil
}

// SelectSector picks a sector of the selected block and clears the room.
func (f *Form) SelectSector(sectorID string) error {
	if sectorID != "" && !containsSector(f.AvailableSectors(), sectorID) {
		return fmt.Errorf("sector %s: %w", sectorID, ErrOptionUnavailable)
	}

	f.values.SectorID = sectorID
	f.values.RoomID = ""

	return nil
}

// SelectRoom picks a room of the selected sector.
func (f *Form) SelectRoom(roomID string) error {
	if roomID != "" && !containsRoom(f.AvailableRooms(), roomID) {
		return fmt.Errorf("room %s: %w", roomID, ErrOptionUnavailable)
	}

	f.values.RoomID = roomID

	return nil
}

// AvailableSectors lists the sectors of the selected block, none if no block is selected.
func (f *Form) AvailableSectors() []types.Sector {
	if f.values.BlockID == "" {
		return []types.Sector{}
	}
	return f.snapshot.SectorsOfBlock(f.values.BlockID)
}

// AvailableRooms lists the rooms of the selected sector, none if no sector is selected.
func (f *Form) AvailableRooms() []types.Room {
	if f.values.SectorID == "" {
		return []types.Room{}
	}
	return f.snapshot.RoomsOfSector(f.values.SectorID)
}

// Validate returns the invalid fields of the form, or nil if there are none.
func (f *Form) Validate() FieldErrors {
	errs := FieldErrors{}

	if utf8.RuneCountInString(strings.TrimSpace(f.values.Name)) < minNameLength {
		errs[FieldName] = "O nome deve ter pelo menos 2 caracteres."
	}
	if !types.IsValidStatus(f.values.Status) {
		errs[FieldStatus] = "Selecione um status."
	}
	if f.values.BlockID == "" {
		errs[FieldBlock] = "Selecione um bloco."
	}
	if f.values.SectorID == "" {
		errs[FieldSector] = "Selecione um setor."
	}
	if f.values.RoomID == "" {
		errs[FieldRoom] = "Selecione uma sala."
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Submit validates the form and returns the values to store. The selection is
// checked against the snapshot once more so that the chain is consistent even
// if the form was filled in by hand.
func (f *Form) Submit() (Submission, error) {
	if errs := f.Validate(); errs != nil {
		return Submission{}, errs
	}

	if !containsSector(f.snapshot.SectorsOfBlock(f.values.BlockID), f.values.SectorID) {
		return Submission{}, FieldErrors{FieldSector: "Selecione um setor."}
	}
	if !containsRoom(f.snapshot.RoomsOfSector(f.values.SectorID), f.values.RoomID) {
		return Submission{}, FieldErrors{FieldRoom: "Selecione uma sala."}
	}

	return Submission{
		Name:   strings.TrimSpace(f.values.Name),
		Status: f.values.Status,
		RoomID: f.values.RoomID,
	}, nil
}

func containsSector(sectors []types.Sector, id string) bool {
	return lo.ContainsBy(sectors, func(s types.Sector) bool { return s.ID == id })
}

func containsRoom(rooms []types.Room, id string) bool {
	return lo.ContainsBy(rooms, func(r types.Room) bool { return r.ID == id })
}
