// Package render turns an arrange.Result into printable tables.
//
// Build produces a Sheet holding two row-major string tables of identical
// shape: Names (entity names) and Tags (entity tag values). When the grid
// requested a podium slot, both tables gain a leading podium row:
//
//	middle := cols / 2
//	row 0:  [..., left@middle-1, Podium@middle, right@middle+1, ...]
//
// The left occupant is written only when middle > 0 and the right one only
// when middle < cols-1, so a one- or two-column room still renders.
// Corridor cells carry the corridor label, unfilled seats the empty label.
//
// WriteText prints a Table as an aligned terminal preview and Summarize
// tallies an arrangement for reporting.
package render
