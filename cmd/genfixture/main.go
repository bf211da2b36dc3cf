// Command genfixture writes a sample monitoring-site summary workbook for
// manual runs of cmd/extract. The sheet mixes complete sites with rows
// missing a name or a coordinate so the null filter has something to do.
//
// Usage:
//
//	go run ./cmd/genfixture -out data/mock/MonitoringSites_Summary.xlsx
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/couchcryptid/site-coordinates-etl/internal/adapter/xlsx"
	"github.com/couchcryptid/site-coordinates-etl/internal/domain"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("genfixture", flag.ContinueOnError)
	out := fs.String("out", "", "output path for the sample workbook")
	siteColumn := fs.String("site-column", domain.DefaultSiteColumn, "header used for the site name column")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *out == "" {
		fs.Usage()
		return fmt.Errorf("missing required flag: -out")
	}

	if err := os.MkdirAll(filepath.Dir(*out), 0o755); err != nil {
		return err
	}

	rows := sampleRows(*siteColumn)
	if err := xlsx.WriteSheet(*out, "Sites", rows); err != nil {
		return err
	}

	log.Printf("wrote %d sites to %s", len(rows)-1, *out)
	return nil
}

// sampleRows returns a header and site rows. Two rows are incomplete.
func sampleRows(siteColumn string) [][]any {
	return [][]any{
		{"SiteID", siteColumn, "Waterbody", "Latitude", "Longitude", "Active"},
		{"PR01", "Port River", "Port River", -34.8, 138.5, "Y"},
		{"BI01", "Barker Inlet", "Barker Inlet", nil, 138.6, "Y"},
		{"OH01", "Outer Harbor", "Gulf St Vincent", -34.77, 138.48, "Y"},
		{"GI01", nil, "Port River", -34.81, 138.53, "N"},
		{"HB01", "Henley Beach", "Gulf St Vincent", -34.92, 138.49, "Y"},
		{"GL01", "Glenelg", "Gulf St Vincent", -34.98, 138.51, "Y"},
	}
}
