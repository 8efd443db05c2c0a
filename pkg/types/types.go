package types

import (
	"time"
)

type Block struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Sector struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	BlockID string `json:"blockId"`
}

type Room struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	SectorID string `json:"sectorId"`
}

type Asset struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
	RoomID string `json:"roomId"`
}

// LogEntry is one record of the activity log. Entries written before timestamps
// were recorded have a nil Timestamp.
type LogEntry struct {
	ID        string     `json:"id"`
	Acao      string     `json:"acao"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

const (
	StatusInUse   string = "Em Uso"
	StatusStored  string = "Guardado"
	StatusLost    string = "Perdido"
	StatusUnknown string = "Desconhecido"
)

// AssetStatuses holds the fixed status enumeration in display order.
var AssetStatuses = []string{StatusInUse, StatusStored, StatusLost, StatusUnknown}

func IsValidStatus(status string) bool {
	for _, s := range AssetStatuses {
		if s == status {
			return true
		}
	}
	return false
}
