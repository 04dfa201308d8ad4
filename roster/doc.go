// Package roster provides the entities a seating run places and the
// readers that load them from tabular sources.
//
// What:
//
//   - Entity: a stable 1-based ID, a display name and a binary attribute Tag.
//   - Roster: an immutable, ID-ordered collection of entities with at most
//     two distinct tags.
//   - Read: loads a roster from .csv, .txt, .xlsx/.xlsm or SQLite files.
//   - Generate / WriteCSV: synthetic name lists for demos and fixtures.
//
// Input layout:
//
//   - The first row is a header and is skipped (see WithHeader).
//   - Column 1 is the display name, column 2 the attribute tag; any further
//     columns are ignored.
//   - Row order defines IDs: the first data row is ID 1.
//
// Errors:
//
//   - ErrInputNotFound: the path does not exist.
//   - ErrUnsupportedInput: the extension is not recognized.
//   - ErrMalformedRow: a data row has fewer than two columns.
//   - ErrDuplicateID, ErrEmptyName, ErrAttributeNotBinary: roster validation.
package roster
