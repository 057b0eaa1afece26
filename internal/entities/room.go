// Package entities provides core data structures for facility-api.
package entities

// Room represents a capacity-bounded location in the facility.
//
// Occupancy counters perform no bounds clamping of their own: the movement
// engine is the only caller and enforces the capacity check before
// IncreaseOccupation and the greater-than-zero guard before
// DecreaseOccupation. Callers that mutate counters directly can drive them
// out of range.
type Room struct {
	ID                int      `json:"id"`
	Name              string   `json:"name"`
	Type              RoomType `json:"type"`
	Capacity          int      `json:"capacity"`
	CurrentOccupation int      `json:"currentOccupation"`
	// Occupied caches CurrentOccupation == Capacity. The movement engine
	// refreshes it in the same transition that mutates the counter.
	Occupied bool `json:"occupied"`

	access    []Role
	occupants []*Person
}

// NewRoom creates a room with the given attributes and an empty occupant set
func NewRoom(id int, name string, roomType RoomType, capacity int, access []Role) *Room {
	r := &Room{
		ID:       id,
		Name:     name,
		Type:     roomType,
		Capacity: capacity,
	}
	for _, role := range access {
		r.AddAccess(role)
	}
	return r
}

// IncreaseOccupation adjusts the occupancy counter up by one
func (r *Room) IncreaseOccupation() {
	r.CurrentOccupation++
}

// DecreaseOccupation adjusts the occupancy counter down by one
func (r *Room) DecreaseOccupation() {
	r.CurrentOccupation--
}

// RefreshOccupied recomputes the cached occupied flag from the counter
func (r *Room) RefreshOccupied() {
	r.Occupied = r.CurrentOccupation == r.Capacity
}

// IsExit reports whether the room is a designated exit
func (r *Room) IsExit() bool {
	return r.Type == RoomTypeExit
}

// AddAccess grants a role entry to the room. Granting a role that already
// has access is a no-op.
func (r *Room) AddAccess(role Role) {
	if r.HasAccess(role) {
		return
	}
	r.access = append(r.access, role)
}

// RemoveAccess revokes a role's entry. Revoking a role that is not present
// is a no-op.
func (r *Room) RemoveAccess(role Role) {
	for i, existing := range r.access {
		if existing == role {
			r.access = append(r.access[:i], r.access[i+1:]...)
			return
		}
	}
}

// HasAccess reports whether the role is in the room's access list
func (r *Room) HasAccess(role Role) bool {
	for _, existing := range r.access {
		if existing == role {
			return true
		}
	}
	return false
}

// Access returns the permitted roles in grant order
func (r *Room) Access() []Role {
	out := make([]Role, len(r.access))
	copy(out, r.access)
	return out
}

// AddOccupant records a person as currently inside the room
func (r *Room) AddOccupant(p *Person) {
	for _, existing := range r.occupants {
		if existing.ID == p.ID {
			return
		}
	}
	r.occupants = append(r.occupants, p)
}

// RemoveOccupant removes a person from the occupant set; absent persons are
// a no-op
func (r *Room) RemoveOccupant(p *Person) {
	for i, existing := range r.occupants {
		if existing.ID == p.ID {
			r.occupants = append(r.occupants[:i], r.occupants[i+1:]...)
			return
		}
	}
}

// Occupants returns the current occupants in arrival order
func (r *Room) Occupants() []*Person {
	out := make([]*Person, len(r.occupants))
	copy(out, r.occupants)
	return out
}
