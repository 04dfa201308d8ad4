package roster

// Tag is the binary attribute value used by the clustering policies.
type Tag string

// Canonical tags produced by NormalizeTag.
const (
	TagMale    Tag = "male"
	TagFemale  Tag = "female"
	TagUnknown Tag = "unknown"
)

// Entity is one occupant of the seating chart.
type Entity struct {
	ID   int    // 1-based, unique within a roster
	Name string // display name
	Tag  Tag    // attribute value
}

// Roster is an immutable, ID-ordered set of entities.
// entities is sorted by ID; byID maps an ID to its slice position;
// tags lists distinct tags in order of first appearance.
type Roster struct {
	entities []Entity
	byID     map[int]int
	tags     []Tag
}
