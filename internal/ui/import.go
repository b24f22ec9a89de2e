package ui

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/haneul/sugang/internal/course"
)

func (a *App) importCmd() *cobra.Command {
	var tsv bool

	cmd := &cobra.Command{
		Use:   "import [catalog_file]",
		Short: "Import a course catalog from a CSV file",
		Long: `Import course offerings into the catalog from a CSV file.

The file must have the columns:
  code,section,title,instructor,credits,category,schedule

category is one of major, general, elective. schedule is a Korean
schedule string such as "월1 수2 수3". Existing offerings with the
same code and section are updated.

Example:
  sugang import catalog.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening catalog file: %w", err)
			}
			defer func() { _ = f.Close() }()

			delimiter := ','
			if tsv {
				delimiter = '\t'
			}

			entries, skipped, err := readCatalog(f, delimiter)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				return fmt.Errorf("no valid courses in %s", args[0])
			}

			if err := a.repo.ImportCourses(context.Background(), entries); err != nil {
				return fmt.Errorf("importing courses: %w", err)
			}

			fmt.Printf("Imported %d courses from %s\n", len(entries), args[0])
			if skipped > 0 {
				fmt.Println(formatMuted(fmt.Sprintf("Skipped %d invalid row(s)", skipped)))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&tsv, "tsv", false, "Read tab-separated input")
	return cmd
}

// readCatalog parses catalog rows. Invalid rows are counted and skipped so a
// single bad line does not abort a large import.
func readCatalog(r io.Reader, delimiter rune) ([]course.Entry, int, error) {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1

	var entries []course.Entry
	skipped := 0
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("reading catalog: %w", err)
		}
		line++

		// Header row
		if line == 1 && strings.EqualFold(strings.TrimSpace(record[0]), "code") {
			continue
		}

		e, ok := parseCatalogRow(record)
		if !ok {
			skipped++
			continue
		}
		entries = append(entries, *e)
	}

	return entries, skipped, nil
}

func parseCatalogRow(record []string) (*course.Entry, bool) {
	if len(record) < 7 {
		return nil, false
	}

	credits, err := strconv.Atoi(strings.TrimSpace(record[4]))
	if err != nil {
		return nil, false
	}

	category := course.Category(strings.ToLower(strings.TrimSpace(record[5])))
	e, err := course.New(
		record[0],
		record[1],
		record[2],
		record[3],
		credits,
		category,
		strings.TrimSpace(record[6]),
	)
	if err != nil {
		return nil, false
	}
	return e, true
}
