package entities

import "time"

// Event is an immutable record of one relocation. Events are created by the
// movement engine, appended to the event log, and never mutated or deleted.
// The room-side and person-side histories are indexes over the same
// canonical record, keyed by FromRoomID/ToRoomID and PersonID.
type Event struct {
	ID         string    `json:"eventId"`
	PersonID   int       `json:"personId"`
	FromRoomID int       `json:"fromRoomId"`
	ToRoomID   int       `json:"toRoomId"`
	Timestamp  time.Time `json:"time"`
}

// TimestampLayout is the unambiguous local date-time form events are
// exchanged in at the import/export and query boundaries (ISO 8601 without
// timezone).
const TimestampLayout = "2006-01-02T15:04:05"
