package reports

import (
	"fmt"
	"strings"
	"time"

	"github.com/keepinventory/asset-inventory/internal/pkg/application/activity"
	"github.com/keepinventory/asset-inventory/internal/pkg/application/hierarchy"
	"github.com/keepinventory/asset-inventory/pkg/types"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

const (
	EncodingUTF8   string = "utf-8"
	EncodingLatin1 string = "latin1"
)

var ErrUnsupportedEncoding = fmt.Errorf("unsupported encoding")

var (
	inventoryHeader = []string{"ID", "Nome", "Status", "Sala", "Setor", "Bloco"}
	activityHeader  = []string{"Data", "Ação"}
)

// Quote wraps a field in double quotes, doubling any quotes inside it.
func Quote(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

func row(fields ...string) string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = Quote(f)
	}
	return strings.Join(quoted, ",")
}

// Inventory renders one line per asset together with the names of its room,
// sector and block. Links that cannot be resolved are rendered as "".
func Inventory(s hierarchy.Snapshot) string {
	lines := make([]string, 0, len(s.Assets)+1)
	lines = append(lines, strings.Join(inventoryHeader, ","))

	for _, a := range s.Assets {
		ancestry := s.AncestryOf(a)
		lines = append(lines, row(a.ID, a.Name, a.Status, ancestry.RoomName(), ancestry.SectorName(), ancestry.BlockName()))
	}

	return strings.Join(lines, "\n")
}

// Activity renders the given log entries in the order they are given, with
// timestamps formatted in loc.
func Activity(entries []types.LogEntry, loc *time.Location) string {
	lines := make([]string, 0, len(entries)+1)
	lines = append(lines, strings.Join(activityHeader, ","))

	for _, e := range entries {
		lines = append(lines, row(activity.FormatTimestamp(e.Timestamp, loc), e.Acao))
	}

	return strings.Join(lines, "\n")
}

func InventoryFilename(now time.Time) string {
	return fmt.Sprintf("inventario_completo_%s.csv", now.UTC().Format("2006-01-02"))
}

func ActivityFilename(now time.Time) string {
	return fmt.Sprintf("log_atividades_%s.csv", now.UTC().Format("2006-01-02"))
}

// Encode converts content to the named encoding. Characters that do not exist
// in Windows-1252 make the latin1 conversion fail.
func Encode(content, encoding string) ([]byte, string, error) {
	switch strings.ToLower(encoding) {
	case "", EncodingUTF8, "utf8":
		return []byte(content), "text/csv; charset=utf-8", nil
	case EncodingLatin1, "iso-8859-1", "windows-1252", "cp1252":
		b, _, err := transform.Bytes(charmap.Windows1252.NewEncoder(), []byte(content))
		if err != nil {
			return nil, "", fmt.Errorf("failed to encode report as %s: %w", encoding, err)
		}
		return b, "text/csv; charset=windows-1252", nil
	default:
		return nil, "", fmt.Errorf("%s: %w", encoding, ErrUnsupportedEncoding)
	}
}
