package reports

import (
	"errors"
	"strings"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/keepinventory/asset-inventory/internal/pkg/application/hierarchy"
	"github.com/keepinventory/asset-inventory/pkg/types"
	"github.com/matryer/is"
)

func TestQuote(t *testing.T) {
	is := is.New(t)

	is.Equal(Quote(`He said, "hi"`), `"He said, ""hi"""`)
	is.Equal(Quote(""), `""`)
	is.Equal(Quote("Sala 101"), `"Sala 101"`)
}

func TestInventory(t *testing.T) {
	is := is.New(t)

	s := hierarchy.Snapshot{
		Blocks:  []types.Block{{ID: "b1", Name: "Bloco A"}},
		Sectors: []types.Sector{{ID: "s1", Name: "TI", BlockID: "b1"}},
		Rooms:   []types.Room{{ID: "r1", Name: "101", SectorID: "s1"}},
		Assets: []types.Asset{
			{ID: "a1", Name: `Monitor 24"`, Status: types.StatusInUse, RoomID: "r1"},
			{ID: "a2", Name: "Cadeira", Status: types.StatusLost, RoomID: "gone"},
		},
	}

	expected := strings.Join([]string{
		"ID,Nome,Status,Sala,Setor,Bloco",
		`"a1","Monitor 24""","Em Uso","101","TI","Bloco A"`,
		`"a2","Cadeira","Perdido","","",""`,
	}, "\n")

	is.Equal(Inventory(s), expected)
}

func TestActivity(t *testing.T) {
	is := is.New(t)

	loc, err := time.LoadLocation("America/Sao_Paulo")
	is.NoErr(err)

	ts := time.Date(2024, 7, 10, 15, 30, 0, 0, time.UTC)
	entries := []types.LogEntry{
		{ID: "2", Acao: `Bloco "A" criado`, Timestamp: &ts},
		{ID: "1", Acao: "Importação"},
	}

	expected := strings.Join([]string{
		"Data,Ação",
		`"10/07/2024 12:30:00","Bloco ""A"" criado"`,
		`"Data desconhecida","Importação"`,
	}, "\n")

	is.Equal(Activity(entries, loc), expected)
}

func TestFilenames(t *testing.T) {
	is := is.New(t)

	now := time.Date(2024, 12, 31, 23, 30, 0, 0, time.FixedZone("X", 3*60*60))
	is.Equal(InventoryFilename(now), "inventario_completo_2024-12-31.csv")
	is.Equal(ActivityFilename(now), "log_atividades_2024-12-31.csv")
}

func TestEncodeLatin1(t *testing.T) {
	is := is.New(t)

	b, contentType, err := Encode("Ação", EncodingLatin1)
	is.NoErr(err)
	is.Equal(contentType, "text/csv; charset=windows-1252")
	is.Equal(b, []byte{'A', 0xe7, 0xe3, 'o'})

	b, _, err = Encode("Ação", "")
	is.NoErr(err)
	is.Equal(string(b), "Ação")

	_, _, err = Encode("x", "ebcdic")
	is.True(errors.Is(err, ErrUnsupportedEncoding))
}
