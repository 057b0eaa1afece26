package entities

// Person represents a tracked occupant of the facility.
//
// A person's current location is not stored here: it is derived from the
// most recent event in their activity log, falling back to the facility's
// origin room when the log is empty.
type Person struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Age  int    `json:"age"`
	Role Role   `json:"function"`
}

// NewPerson creates a person with externally assigned identity
func NewPerson(id int, name string, age int, role Role) *Person {
	return &Person{
		ID:   id,
		Name: name,
		Age:  age,
		Role: role,
	}
}
