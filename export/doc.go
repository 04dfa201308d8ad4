// Package export writes rendered tables to files.
//
// Supported formats and their extensions:
//
//	excel → .xlsx  first sheet, no header row
//	csv   → .csv   UTF-8 with BOM, no header row
//	png   → .png   centred text grid
//
// Export writes every requested format for one table concurrently, each
// writer owning its own file. Files that already exist are removed before
// writing. Unsupported format names are logged and skipped.
package export
