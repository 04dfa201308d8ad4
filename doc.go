// Package seatplan assigns a roster of people to the seats of a rectangular
// room and exports the result for printing.
//
// What is seatplan?
//
//	A small, dependency-light toolkit that brings together:
//		• Rosters: read names and a binary tag (gender) from csv, txt,
//		  xlsx or SQLite files, or generate synthetic ones
//		• Seat grids: rows × columns with whole corridor columns and up to
//		  two podium seats beside the lectern
//		• Placement policies: uniform shuffle, tag-clustered runs and
//		  corridor-alternating groups, all driven by one injectable RNG
//		• Rendering: names and tags sheets with a podium row, terminal preview
//		• Export: Excel, UTF-8 csv and PNG, written concurrently
//
// Packages:
//
//	roster/     Entity, Roster, file readers, NormalizeTag, Generate
//	seatgrid/   Grid geometry and the capacity check
//	arrange/    Policy, Assign and the immutable Result matrix
//	render/     Table, Build, WriteText, Summarize
//	export/     Export to excel/csv/png
//	config/     YAML run configuration
//	cmd/seatplan  the command-line tool
//
// Quick start:
//
//	r, _ := roster.Read(ctx, "name_list.xlsx", roster.WithNormalizeTags())
//	g, _ := seatgrid.New(7, 11, seatgrid.WithCorridors(4, 8), seatgrid.WithPodium(false, true))
//	res, err := arrange.Assign(r, g, arrange.GenderClustered(3), arrange.WithSeed(42))
//	if errors.Is(err, arrange.ErrCapacity) { ... }
//	sheet, _ := render.Build(res, r)
//	_, _ = export.Export(ctx, sheet.Names, export.ParseFormats("excel,csv,png"), "arrangement_result")
package seatplan
