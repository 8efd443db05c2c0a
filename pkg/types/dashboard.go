package types

import "time"

type Counts struct {
	Assets    int `json:"assetCount"`
	Rooms     int `json:"roomCount"`
	Sectors   int `json:"sectorCount"`
	Blocks    int `json:"blockCount"`
	InUse     int `json:"activeAssetCount"`
	Lost      int `json:"lostAssetCount"`
	Locations int `json:"locationCount"`
}

type ChartEntry struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type ActivityItem struct {
	ID        string     `json:"id"`
	Acao      string     `json:"acao"`
	Category  string     `json:"category"`
	When      string     `json:"when"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

type Dashboard struct {
	Greeting        string         `json:"greeting"`
	FirstName       string         `json:"firstName"`
	Counts          Counts         `json:"counts"`
	StatusBreakdown []ChartEntry   `json:"statusBreakdown"`
	SectorBreakdown []ChartEntry   `json:"sectorBreakdown"`
	RecentActivity  []ActivityItem `json:"recentActivity"`
}

type ClearResult struct {
	Cleared     int    `json:"cleared"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Notice is the body returned for failed operations, shaped for a toast style
// notification in a client.
type Notice struct {
	Variant     string            `json:"variant,omitempty"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Fields      map[string]string `json:"fields,omitempty"`
}

type Session struct {
	Token     string    `json:"token"`
	UserID    string    `json:"userId"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
