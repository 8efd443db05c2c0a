package dashboard

import (
	"testing"
	"time"

	"github.com/keepinventory/asset-inventory/internal/pkg/application/statistics"
	"github.com/keepinventory/asset-inventory/pkg/types"
	"github.com/matryer/is"
)

func TestGreeting(t *testing.T) {
	is := is.New(t)

	at := func(h int) time.Time { return time.Date(2024, 1, 1, h, 30, 0, 0, time.UTC) }

	is.Equal(Greeting(at(4)), "Boa noite")
	is.Equal(Greeting(at(5)), "Bom dia")
	is.Equal(Greeting(at(11)), "Bom dia")
	is.Equal(Greeting(at(12)), "Boa tarde")
	is.Equal(Greeting(at(17)), "Boa tarde")
	is.Equal(Greeting(at(18)), "Boa noite")
}

func TestFirstName(t *testing.T) {
	is := is.New(t)

	is.Equal(FirstName("maria.silva@example.com"), "Maria.silva")
	is.Equal(FirstName("élis@example.com"), "Élis")
	is.Equal(FirstName(""), "")
}

func TestBuild(t *testing.T) {
	is := is.New(t)

	stats := statistics.Stats{
		Counts:          types.Counts{Assets: 2},
		StatusBreakdown: []types.ChartEntry{{Name: types.StatusInUse, Value: 2}},
		SectorBreakdown: []types.ChartEntry{},
	}

	d := Build(stats, nil, "joao@example.com", time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC))
	is.Equal(d.Greeting, "Bom dia")
	is.Equal(d.FirstName, "Joao")
	is.Equal(d.Counts.Assets, 2)
	is.True(d.RecentActivity != nil)
}
