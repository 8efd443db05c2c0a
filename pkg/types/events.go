package types

import (
	"fmt"
	"time"
)

const (
	ActionCreated string = "created"
	ActionUpdated string = "updated"
	ActionDeleted string = "deleted"
)

// EntityChanged is published on the message bus whenever a block, sector, room
// or asset is written.
type EntityChanged struct {
	Kind      string    `json:"kind"`
	Action    string    `json:"action"`
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *EntityChanged) ContentType() string {
	return "application/json"
}
func (e *EntityChanged) TopicName() string {
	return fmt.Sprintf("inventory.%s.%s", e.Kind, e.Action)
}

type ActivityLogCleared struct {
	Count     int       `json:"count"`
	Timestamp time.Time `json:"timestamp"`
}

func (a *ActivityLogCleared) ContentType() string {
	return "application/json"
}
func (a *ActivityLogCleared) TopicName() string {
	return "inventory.activity.cleared"
}

// LogActivity is consumed from the message bus so that other services can add
// entries to the activity log.
type LogActivity struct {
	Acao      string     `json:"acao"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

func (l *LogActivity) ContentType() string {
	return "application/json"
}
func (l *LogActivity) TopicName() string {
	return "inventory.activity.log"
}

// CollectionChanged is pushed to live subscribers so they can re-read the
// named collection.
type CollectionChanged struct {
	Collection string `json:"collection"`
	Action     string `json:"action"`
	ID         string `json:"id,omitempty"`
}

const (
	CollectionBlocks  string = "blocos"
	CollectionSectors string = "setores"
	CollectionRooms   string = "salas"
	CollectionAssets  string = "patrimonios"
	CollectionLog     string = "log_geral"
)
