package roster

import (
	"fmt"
	"sort"
	"strings"
)

// maxTags is the number of distinct attribute values a roster may carry.
const maxTags = 2

// New builds a Roster from the given entities. The input slice is copied
// and sorted by ID, so later changes by the caller are not observed.
// Returns ErrDuplicateID, ErrEmptyName or ErrAttributeNotBinary on
// invalid input.
// Complexity: O(n log n).
func New(entities []Entity) (*Roster, error) {
	list := make([]Entity, len(entities))
	copy(list, entities)
	sort.SliceStable(list, func(i, j int) bool { return list[i].ID < list[j].ID })

	r := &Roster{
		entities: list,
		byID:     make(map[int]int, len(list)),
	}
	seen := make(map[Tag]bool, maxTags)
	for i, e := range list {
		if _, dup := r.byID[e.ID]; dup {
			return nil, fmt.Errorf("New: id %d: %w", e.ID, ErrDuplicateID)
		}
		if strings.TrimSpace(e.Name) == "" {
			return nil, fmt.Errorf("New: id %d: %w", e.ID, ErrEmptyName)
		}
		r.byID[e.ID] = i
		if !seen[e.Tag] {
			seen[e.Tag] = true
			r.tags = append(r.tags, e.Tag)
		}
	}
	if len(r.tags) > maxTags {
		return nil, fmt.Errorf("New: tags %v: %w", r.tags, ErrAttributeNotBinary)
	}

	return r, nil
}

// Sequential builds a Roster assigning IDs 1..n in slice order.
// names and tags must have equal length.
func Sequential(names []string, tags []Tag) (*Roster, error) {
	if len(names) != len(tags) {
		return nil, fmt.Errorf("Sequential: %d names, %d tags: %w", len(names), len(tags), ErrMalformedRow)
	}
	list := make([]Entity, len(names))
	for i := range names {
		list[i] = Entity{ID: i + 1, Name: names[i], Tag: tags[i]}
	}

	return New(list)
}

// Len returns the number of entities.
func (r *Roster) Len() int { return len(r.entities) }

// Entities returns a copy of the entities in ID order.
func (r *Roster) Entities() []Entity {
	out := make([]Entity, len(r.entities))
	copy(out, r.entities)
	return out
}

// IDs returns all entity IDs in ascending order.
func (r *Roster) IDs() []int {
	ids := make([]int, len(r.entities))
	for i, e := range r.entities {
		ids[i] = e.ID
	}
	return ids
}

// Lookup returns the entity with the given ID.
func (r *Roster) Lookup(id int) (Entity, bool) {
	i, ok := r.byID[id]
	if !ok {
		return Entity{}, false
	}
	return r.entities[i], true
}

// Name returns the display name for id, or "" when unknown.
func (r *Roster) Name(id int) string {
	e, _ := r.Lookup(id)
	return e.Name
}

// TagOf returns the tag for id, or "" when unknown.
func (r *Roster) TagOf(id int) Tag {
	e, _ := r.Lookup(id)
	return e.Tag
}

// Tags returns the distinct tags in order of first appearance (by ID).
func (r *Roster) Tags() []Tag {
	out := make([]Tag, len(r.tags))
	copy(out, r.tags)
	return out
}

// Count returns how many entities carry tag.
func (r *Roster) Count(tag Tag) int {
	n := 0
	for _, e := range r.entities {
		if e.Tag == tag {
			n++
		}
	}
	return n
}
