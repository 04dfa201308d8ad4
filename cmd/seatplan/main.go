// Command seatplan assigns a roster to classroom seats and exports the
// arrangement as spreadsheet, csv and image files.
//
// Usage:
//
//	seatplan arrange --config seatplan.yaml
//	seatplan arrange --input names.csv --policy corridor --seed 7 --preview
//	seatplan roster generate --count 64 --out name_list.csv
//	seatplan config > seatplan.yaml
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
