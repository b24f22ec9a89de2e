package ui

import (
	"strings"
	"testing"
)

func TestReadCatalog(t *testing.T) {
	input := `code,section,title,instructor,credits,category,schedule
CS101,001,Data Structures,Kim,3,major,월1 월2
GE110,001,World History,Park,2,general,수3
`
	entries, skipped, err := readCatalog(strings.NewReader(input), ',')
	if err != nil {
		t.Fatalf("readCatalog failed: %v", err)
	}
	if skipped != 0 {
		t.Errorf("skipped = %d, want 0", skipped)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Key() != "CS101-001" || entries[0].Schedule != "월1 월2" {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}
}

func TestReadCatalog_SkipsInvalidRows(t *testing.T) {
	input := `CS101,001,Data Structures,Kim,3,major,월1
BAD,001,No Credits,Kim,abc,major,월1
XX200,,Missing Section,Kim,2,general,화1
EL200,001,Creative Writing,Choi,1,elective,금4
`
	entries, skipped, err := readCatalog(strings.NewReader(input), ',')
	if err != nil {
		t.Fatalf("readCatalog failed: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("got %d entries, want 2", len(entries))
	}
	if skipped != 2 {
		t.Errorf("skipped = %d, want 2", skipped)
	}
}

func TestReadCatalog_TSV(t *testing.T) {
	input := "CS101\t001\tData Structures\tKim\t3\tmajor\t월1 월2\n"

	entries, _, err := readCatalog(strings.NewReader(input), '\t')
	if err != nil {
		t.Fatalf("readCatalog failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Title != "Data Structures" {
		t.Errorf("unexpected entries: %+v", entries)
	}
}

func TestReadCatalog_Empty(t *testing.T) {
	entries, skipped, err := readCatalog(strings.NewReader(""), ',')
	if err != nil {
		t.Fatalf("readCatalog failed: %v", err)
	}
	if len(entries) != 0 || skipped != 0 {
		t.Errorf("got %d entries, %d skipped for empty input", len(entries), skipped)
	}
}
