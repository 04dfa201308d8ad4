package render

import (
	"fmt"

	"github.com/katalvlaran/seatplan/arrange"
	"github.com/katalvlaran/seatplan/roster"
)

// Sheet is the printable form of one arrangement: Names and Tags share the
// same shape and cell positions.
type Sheet struct {
	Names *Table
	Tags  *Table
	// PodiumRow reports whether row 0 of both tables is the podium row.
	PodiumRow bool
}

// Build renders res against r.
//
// Stage 1 (Validate): non-nil inputs.
// Stage 2 (Podium): when a slot was requested, row 0 holds the marker at
// cols/2 with the left and right occupants beside it.
// Stage 3 (Grid): each result cell maps to a name/tag, the corridor label
// or the empty label.
// Returns ErrUnknownEntity if res places an ID that r lacks.
// Complexity: O(rows*cols).
func Build(res *arrange.Result, r *roster.Roster, opts ...Option) (*Sheet, error) {
	if res == nil || r == nil {
		return nil, fmt.Errorf("Build: %w", ErrNilInput)
	}
	labels := DefaultLabels()
	for _, opt := range opts {
		opt(&labels)
	}

	wantLeft, wantRight := res.PodiumRequested()
	podium := wantLeft || wantRight
	offset := 0
	if podium {
		offset = 1
	}
	rows, cols := res.Rows()+offset, res.Cols()
	names, err := NewTable(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	names.Fill(labels.Empty)
	tags := names.Clone()
	sheet := &Sheet{Names: names, Tags: tags, PodiumRow: podium}

	// put writes one entity into both tables.
	put := func(row, col, id int) error {
		e, ok := r.Lookup(id)
		if !ok {
			return fmt.Errorf("Build: id %d at (%d,%d): %w", id, row, col, ErrUnknownEntity)
		}
		names.data[row*cols+col] = e.Name
		tags.data[row*cols+col] = string(e.Tag)
		return nil
	}

	if podium {
		middle := cols / 2
		names.data[middle] = labels.Podium
		tags.data[middle] = labels.Podium
		if id, ok := res.Left(); ok && middle > 0 {
			if err = put(0, middle-1, id); err != nil {
				return nil, err
			}
		}
		if id, ok := res.Right(); ok && middle < cols-1 {
			if err = put(0, middle+1, id); err != nil {
				return nil, err
			}
		}
	}

	res.Do(func(row, col int, c arrange.Cell) bool {
		switch c.Kind {
		case arrange.KindCorridor:
			names.data[(row+offset)*cols+col] = labels.Corridor
			tags.data[(row+offset)*cols+col] = labels.Corridor
		case arrange.KindOccupant:
			err = put(row+offset, col, c.ID)
		}
		return err == nil
	})
	if err != nil {
		return nil, err
	}

	return sheet, nil
}
