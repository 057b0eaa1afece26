// Package loader reads and writes the facility's JSON boundary files:
// rooms, edges, people, and events. Imports are all-or-nothing per file: a
// file is fully parsed and validated before anything is applied, so a
// malformed file never leaves the in-memory model partially populated.
package loader

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/facilitydesk/facility-api/internal/entities"
	"github.com/facilitydesk/facility-api/internal/errors"
	"github.com/facilitydesk/facility-api/internal/graph"
	"github.com/facilitydesk/facility-api/internal/orchestrators/movement"
	"github.com/facilitydesk/facility-api/internal/repositories/events"
)

// Boundary record shapes. Field names match the persisted files.

type roomRecord struct {
	ID                int      `json:"id"`
	Name              string   `json:"name"`
	Type              string   `json:"type"`
	Capacity          int      `json:"capacity"`
	CurrentOccupation int      `json:"currentOccupation"`
	Occupied          bool     `json:"occupied"`
	Access            []string `json:"access"`
}

type edgeRecord struct {
	Room1  int     `json:"room1"`
	Room2  int     `json:"room2"`
	Weight float64 `json:"weight"`
}

type personRecord struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Function string `json:"function"`
}

type eventRecord struct {
	PersonID   int    `json:"personId"`
	FromRoomID int    `json:"fromRoomId"`
	ToRoomID   int    `json:"toRoomId"`
	Time       string `json:"time"`
}

// LoadRooms reads a rooms file and returns the rooms in file order
func LoadRooms(path string) ([]*entities.Room, error) {
	var records []roomRecord
	if err := readJSON(path, &records); err != nil {
		return nil, err
	}

	rooms := make([]*entities.Room, 0, len(records))
	seen := make(map[int]bool, len(records))
	for i, record := range records {
		if seen[record.ID] {
			return nil, importFailuref("%s: duplicate room id %d at record %d", path, record.ID, i)
		}
		seen[record.ID] = true

		roomType, err := entities.ParseRoomType(record.Type)
		if err != nil {
			return nil, importFailure(err, path)
		}
		if record.Capacity <= 0 {
			return nil, importFailuref("%s: room %d has non-positive capacity %d", path, record.ID, record.Capacity)
		}
		if record.CurrentOccupation < 0 || record.CurrentOccupation > record.Capacity {
			return nil, importFailuref("%s: room %d occupation %d out of range [0, %d]",
				path, record.ID, record.CurrentOccupation, record.Capacity)
		}

		accessList := make([]entities.Role, 0, len(record.Access))
		for _, roleName := range record.Access {
			role, err := entities.ParseRole(roleName)
			if err != nil {
				return nil, importFailure(err, path)
			}
			accessList = append(accessList, role)
		}

		room := entities.NewRoom(record.ID, record.Name, roomType, record.Capacity, accessList)
		room.CurrentOccupation = record.CurrentOccupation
		room.Occupied = record.Occupied
		rooms = append(rooms, room)
	}
	return rooms, nil
}

// LoadGraph reads a rooms file and an edges file and builds the facility
// graph. Each undirected edge record is inserted in both directions.
func LoadGraph(roomsPath, edgesPath string) (*graph.Graph, error) {
	rooms, err := LoadRooms(roomsPath)
	if err != nil {
		return nil, err
	}

	var edgeRecords []edgeRecord
	if err := readJSON(edgesPath, &edgeRecords); err != nil {
		return nil, err
	}

	g := graph.New()
	for _, room := range rooms {
		if err := g.AddVertex(room); err != nil {
			return nil, importFailure(err, roomsPath)
		}
	}
	for i, record := range edgeRecords {
		if err := g.AddEdge(record.Room1, record.Room2, record.Weight); err != nil {
			return nil, importFailuref("%s: edge record %d: %v", edgesPath, i, err)
		}
		if err := g.AddEdge(record.Room2, record.Room1, record.Weight); err != nil {
			return nil, importFailuref("%s: edge record %d: %v", edgesPath, i, err)
		}
	}
	return g, nil
}

// LoadPeople reads a people file and returns the people in file order
func LoadPeople(path string) ([]*entities.Person, error) {
	var records []personRecord
	if err := readJSON(path, &records); err != nil {
		return nil, err
	}

	people := make([]*entities.Person, 0, len(records))
	seen := make(map[int]bool, len(records))
	for i, record := range records {
		if seen[record.ID] {
			return nil, importFailuref("%s: duplicate person id %d at record %d", path, record.ID, i)
		}
		seen[record.ID] = true

		role, err := entities.ParseRole(record.Function)
		if err != nil {
			return nil, importFailure(err, path)
		}
		people = append(people, entities.NewPerson(record.ID, record.Name, record.Age, role))
	}
	return people, nil
}

// ReplayEvents reads an events file and applies the records in file order
// through the movement engine. The whole file is parsed before the first
// record is applied.
func ReplayEvents(ctx context.Context, path string, engine movement.Service, strict bool) (*movement.ReplayOutput, error) {
	var records []eventRecord
	if err := readJSON(path, &records); err != nil {
		return nil, err
	}

	replay := make([]movement.ReplayRecord, 0, len(records))
	for i, record := range records {
		at, err := time.Parse(entities.TimestampLayout, record.Time)
		if err != nil {
			return nil, importFailuref("%s: event record %d: bad timestamp %q", path, i, record.Time)
		}
		replay = append(replay, movement.ReplayRecord{
			PersonID:   record.PersonID,
			FromRoomID: record.FromRoomID,
			ToRoomID:   record.ToRoomID,
			At:         at,
		})
	}

	return engine.Replay(ctx, &movement.ReplayInput{Records: replay, Strict: strict})
}

// ExportPeople writes people to a JSON file in the boundary record shape
func ExportPeople(path string, people []*entities.Person) error {
	records := make([]personRecord, 0, len(people))
	for _, p := range people {
		records = append(records, personRecord{
			ID:       p.ID,
			Name:     p.Name,
			Age:      p.Age,
			Function: string(p.Role),
		})
	}
	return writeJSON(path, records)
}

// ExportEvents writes the full event log to a JSON file in the boundary
// record shape
func ExportEvents(ctx context.Context, path string, repo events.Repository) error {
	log, err := repo.List(ctx, &events.ListInput{})
	if err != nil {
		return errors.Wrap(err, "failed to read event log")
	}

	records := make([]eventRecord, 0, len(log.Events))
	for _, event := range log.Events {
		records = append(records, eventRecord{
			PersonID:   event.PersonID,
			FromRoomID: event.FromRoomID,
			ToRoomID:   event.ToRoomID,
			Time:       event.Timestamp.Format(entities.TimestampLayout),
		})
	}
	return writeJSON(path, records)
}

func readJSON(path string, v interface{}) error {
	payload, err := os.ReadFile(path) // #nosec G304 -- paths come from operator flags
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read "+path)
	}
	if err := json.Unmarshal(payload, v); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse "+path)
	}
	return nil
}

func writeJSON(path string, v interface{}) error {
	payload, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to serialize "+path)
	}
	if err := os.WriteFile(path, payload, 0o600); err != nil {
		return errors.Wrap(err, "failed to write "+path)
	}
	return nil
}

func importFailure(err error, path string) error {
	return errors.WrapWithCode(err, errors.CodeInvalidArgument, "import failed for "+path)
}

func importFailuref(format string, args ...interface{}) error {
	return errors.InvalidArgumentf(format, args...)
}
