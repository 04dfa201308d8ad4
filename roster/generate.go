package roster

import (
	"encoding/csv"
	"fmt"
	"io"
	"math/rand"
	"strconv"
)

// generatedNameFmt is the display-name scheme of Generate: "Student 001".
const generatedNameFmt = "Student %03d"

// Generate returns a synthetic roster of n entities with random male/female
// tags drawn from rng. Useful for demos and capacity experiments.
// Panics if rng is nil; n < 0 is treated as 0.
func Generate(n int, rng *rand.Rand) *Roster {
	if rng == nil {
		panic("roster: Generate(rng=nil)")
	}
	if n < 0 {
		n = 0
	}
	list := make([]Entity, n)
	for i := range list {
		tag := TagMale
		if rng.Intn(2) == 1 {
			tag = TagFemale
		}
		list[i] = Entity{ID: i + 1, Name: fmt.Sprintf(generatedNameFmt, i+1), Tag: tag}
	}
	// Generated names and tags are always valid.
	r, _ := New(list)
	return r
}

// WriteCSV writes r as "name,gender,number" rows with a header, the layout
// Read expects for .csv input.
func WriteCSV(w io.Writer, r *Roster) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"name", "gender", "number"}); err != nil {
		return fmt.Errorf("WriteCSV: header: %w", err)
	}
	for _, e := range r.entities {
		if err := cw.Write([]string{e.Name, string(e.Tag), strconv.Itoa(e.ID)}); err != nil {
			return fmt.Errorf("WriteCSV: id %d: %w", e.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
