package importer

import (
	"testing"

	"jobscout/internal/repository"

	"github.com/google/uuid"
)

func TestParseLocation(t *testing.T) {
	tests := []struct {
		in        string
		wantCity  string
		wantState string
		wantOK    bool
	}{
		{"Frederick, MD, US", "Frederick", "MD", true},
		{"New York, NY, US", "New York", "NY", true},
		{"Remote", "", "", false},
		{"Frederick, MD", "", "", false},
		{"Paris, IDF, FR, EU", "", "", false},
		{"Frederick, MD, USA", "", "", false},
		{"", "", "", false},
	}
	for _, tt := range tests {
		city, state, ok := parseLocation(tt.in)
		if ok != tt.wantOK || city != tt.wantCity || state != tt.wantState {
			t.Errorf("parseLocation(%q) = (%q, %q, %v), want (%q, %q, %v)",
				tt.in, city, state, ok, tt.wantCity, tt.wantState, tt.wantOK)
		}
	}
}

func TestParseSalaries(t *testing.T) {
	minSal, maxSal := parseSalaries("50000", "70000", "yearly")
	if minSal == nil || *minSal != 50000 || maxSal == nil || *maxSal != 70000 {
		t.Fatalf("yearly salaries mangled: %v %v", minSal, maxSal)
	}

	minSal, maxSal = parseSalaries("20", "30", "hourly")
	if minSal == nil || *minSal != 20*40*52 {
		t.Fatalf("expected hourly min converted to %d, got %v", 20*40*52, minSal)
	}
	if maxSal == nil || *maxSal != 30*40*52 {
		t.Fatalf("expected hourly max converted to %d, got %v", 30*40*52, maxSal)
	}

	if minSal, maxSal = parseSalaries("50000", "", "yearly"); minSal != nil || maxSal != nil {
		t.Fatalf("expected nil bounds when one side is missing")
	}
	if minSal, maxSal = parseSalaries("abc", "70000", "yearly"); minSal != nil || maxSal != nil {
		t.Fatalf("expected nil bounds on unparseable input")
	}
}

func TestCityIndexPopulationTieBreak(t *testing.T) {
	small := repository.CityRow{ID: uuid.New(), Name: "Springfield", StateCode: "IL", Population: 1000}
	big := repository.CityRow{ID: uuid.New(), Name: "Springfield", StateCode: "IL", Population: 100000}
	other := repository.CityRow{ID: uuid.New(), Name: "Springfield", StateCode: "MO", Population: 500000}

	idx := buildCityIndex([]repository.CityRow{small, big, other})

	got := idx.resolveCity("Springfield", "IL")
	if got == nil || *got != big.ID {
		t.Fatalf("expected the larger Springfield, IL")
	}
	if idx.resolveCity("Springfield", "KS") != nil {
		t.Fatalf("expected no match for an unknown state")
	}
}

func TestParseJobRow(t *testing.T) {
	cityID := uuid.New()
	idx := buildCityIndex([]repository.CityRow{
		{ID: cityID, Name: "Frederick", StateCode: "MD", Population: 70000},
	})

	row := make([]string, jobRowMinColumns)
	row[jobColID] = "ext-1"
	row[jobColURL] = "https://example.com/jobs/1"
	row[jobColTitle] = "Backend Engineer"
	row[jobColCompany] = "Acme"
	row[jobColLocation] = "Frederick, MD, US"
	row[jobColPostedAt] = "2024-05-01"
	row[jobColType] = "fulltime"
	row[jobColInterval] = "hourly"
	row[jobColMinSalary] = "25"
	row[jobColMaxSalary] = "35"
	row[jobColRemote] = "True"
	row[jobColDesc] = `Benefits include \"healthcare\".`

	in, ok := parseJobRow(row, idx)
	if !ok {
		t.Fatalf("expected row to parse")
	}
	if in.CityID == nil || *in.CityID != cityID {
		t.Fatalf("city not resolved")
	}
	if in.MinSalary == nil || *in.MinSalary != 25*40*52 {
		t.Fatalf("hourly salary not converted: %v", in.MinSalary)
	}
	if !in.IsRemote {
		t.Fatalf("remote flag not parsed")
	}
	if in.PostedAt == nil || in.PostedAt.Format("2006-01-02") != "2024-05-01" {
		t.Fatalf("posted date mangled: %v", in.PostedAt)
	}
	if in.Description != `Benefits include "healthcare".` {
		t.Fatalf("escape characters not stripped: %q", in.Description)
	}

	if _, ok := parseJobRow(row[:5], idx); ok {
		t.Fatalf("expected short rows rejected")
	}

	row[jobColPostedAt] = "05/01/2024"
	if _, ok := parseJobRow(row, idx); ok {
		t.Fatalf("expected bad dates rejected")
	}
}
