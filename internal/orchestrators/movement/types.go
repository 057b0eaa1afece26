package movement

import (
	"time"

	"github.com/facilitydesk/facility-api/internal/entities"
)

// MoveInput defines the request for a single relocation. The source room is
// derived from the person's current location.
type MoveInput struct {
	PersonID int
	ToRoomID int
	// At is the event timestamp; zero means "now"
	At time.Time
}

// MoveOutput defines the response for an accepted relocation
type MoveOutput struct {
	Event *entities.Event
	From  *entities.Room
	To    *entities.Room
}

// ReplayRecord is one recorded movement to re-apply. Unlike live moves the
// source room is explicit, taken from the recorded data.
type ReplayRecord struct {
	PersonID   int
	FromRoomID int
	ToRoomID   int
	At         time.Time
}

// ReplayInput defines the request for bulk event replay
type ReplayInput struct {
	Records []ReplayRecord
	// Strict surfaces the same rejections as live moves; otherwise records
	// referencing unknown ids are skipped
	Strict bool
}

// ReplayOutput defines the response for bulk event replay
type ReplayOutput struct {
	Applied int
	Skipped int
}
