package database

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/keepinventory/asset-inventory/pkg/types"
	"github.com/rs/zerolog"
)

// SeedRecord is one line of an inventory seed file: the asset and the names of
// the room, sector and block it is located in.
type SeedRecord struct {
	Block  string
	Sector string
	Room   string
	Asset  string
	Status string
}

const seedColumns = 5

func LoadSeedFile(log zerolog.Logger, filePath string) ([]SeedRecord, error) {
	seedFile, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open the inventory seed file %s: %w", filePath, err)
	}

	defer seedFile.Close()

	return ReadSeed(log, seedFile)
}

// ReadSeed parses a semicolon separated bloco;setor;sala;patrimonio;status file.
// The first line is a header and is skipped. An empty status defaults to "Em Uso".
func ReadSeed(log zerolog.Logger, seed io.Reader) ([]SeedRecord, error) {
	r := csv.NewReader(seed)
	r.Comma = ';'
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	lines, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv data from file: %s", err.Error())
	}

	records := make([]SeedRecord, 0, len(lines))

	for idx, l := range lines {
		if idx == 0 {
			// Skip the CSV header
			continue
		}

		if len(l) != seedColumns {
			return nil, fmt.Errorf("expected %d fields on line %d in seed file, found %d", seedColumns, (idx + 1), len(l))
		}

		rec := SeedRecord{
			Block:  strings.TrimSpace(l[0]),
			Sector: strings.TrimSpace(l[1]),
			Room:   strings.TrimSpace(l[2]),
			Asset:  strings.TrimSpace(l[3]),
			Status: strings.TrimSpace(l[4]),
		}

		if rec.Block == "" || rec.Sector == "" || rec.Room == "" || rec.Asset == "" {
			return nil, fmt.Errorf("empty location or asset name on line %d in seed file", (idx + 1))
		}

		if rec.Status == "" {
			rec.Status = types.StatusInUse
		}

		if !types.IsValidStatus(rec.Status) {
			return nil, fmt.Errorf("bad status specified for asset %s on line %d in seed file (\"%s\" not in %v)", rec.Asset, (idx + 1), rec.Status, types.AssetStatuses)
		}

		records = append(records, rec)
	}

	log.Info().Msgf("loaded %d assets from seed file", len(records))

	return records, nil
}
