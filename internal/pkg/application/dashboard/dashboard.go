package dashboard

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/keepinventory/asset-inventory/internal/pkg/application/statistics"
	"github.com/keepinventory/asset-inventory/pkg/types"
)

// Greeting picks the salutation for the hour of t, in t's location.
func Greeting(t time.Time) string {
	switch h := t.Hour(); {
	case h >= 5 && h < 12:
		return "Bom dia"
	case h >= 12 && h < 18:
		return "Boa tarde"
	default:
		return "Boa noite"
	}
}

// FirstName derives a display name from the part of email before the @,
// with its first letter upper cased.
func FirstName(email string) string {
	prefix, _, _ := strings.Cut(email, "@")
	if prefix == "" {
		return ""
	}

	r, size := utf8.DecodeRuneInString(prefix)
	return string(unicode.ToUpper(r)) + prefix[size:]
}

func Build(stats statistics.Stats, recent []types.ActivityItem, email string, now time.Time) types.Dashboard {
	if recent == nil {
		recent = []types.ActivityItem{}
	}

	return types.Dashboard{
		Greeting:        Greeting(now),
		FirstName:       FirstName(email),
		Counts:          stats.Counts,
		StatusBreakdown: stats.StatusBreakdown,
		SectorBreakdown: stats.SectorBreakdown,
		RecentActivity:  recent,
	}
}
