package charts

import (
	"bytes"
	"html"
	"strings"
	"testing"

	"github.com/keepinventory/asset-inventory/internal/pkg/application/statistics"
	"github.com/keepinventory/asset-inventory/pkg/types"
	"github.com/matryer/is"
)

func TestStatusPieRendersPlaceholderWhenEmpty(t *testing.T) {
	is := is.New(t)
	buf := &bytes.Buffer{}

	err := StatusPie(buf, "Status", []types.ChartEntry{})
	is.NoErr(err)

	is.True(strings.Contains(html.UnescapeString(buf.String()), statistics.InsufficientData))
	is.True(!strings.Contains(buf.String(), "echarts"))
}

func TestSectorBarRendersPlaceholderWhenEmpty(t *testing.T) {
	is := is.New(t)
	buf := &bytes.Buffer{}

	err := SectorBar(buf, "Setores", nil)
	is.NoErr(err)

	is.True(strings.Contains(html.UnescapeString(buf.String()), statistics.InsufficientData))
}

func TestStatusPieUsesStatusColors(t *testing.T) {
	is := is.New(t)
	buf := &bytes.Buffer{}

	err := StatusPie(buf, "Status", []types.ChartEntry{
		{Name: types.StatusInUse, Value: 3},
		{Name: types.StatusLost, Value: 1},
	})
	is.NoErr(err)

	out := buf.String()
	is.True(strings.Contains(out, "echarts"))
	is.True(strings.Contains(out, "#22c55e"))
	is.True(strings.Contains(out, "#ef4444"))
	is.True(!strings.Contains(out, statistics.InsufficientData))
}

func TestSectorBarRendersEverySector(t *testing.T) {
	is := is.New(t)
	buf := &bytes.Buffer{}

	err := SectorBar(buf, "Setores", []types.ChartEntry{
		{Name: "Administracao", Value: 2},
		{Name: "Laboratorio", Value: 5},
	})
	is.NoErr(err)

	out := buf.String()
	is.True(strings.Contains(out, "Laboratorio"))
	is.True(strings.Contains(out, "Administracao"))
}

func TestStatusColorFallsBackForUnknownStatus(t *testing.T) {
	is := is.New(t)
	is.Equal(StatusColor("Emprestado"), defaultColor)
	is.Equal(StatusColor(types.StatusStored), "#f59e0b")
}
