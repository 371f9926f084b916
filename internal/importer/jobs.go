package importer

import (
	"context"
	"log"
	"strconv"
	"strings"
	"time"

	"jobscout/internal/repository"
	"jobscout/internal/usecase"
	"jobscout/internal/ws"

	"github.com/google/uuid"
)

// Scraper-export CSV column offsets.
const (
	jobColID        = 0
	jobColURL       = 3
	jobColTitle     = 4
	jobColCompany   = 5
	jobColLocation  = 6
	jobColPostedAt  = 7
	jobColType      = 8
	jobColInterval  = 10
	jobColMinSalary = 11
	jobColMaxSalary = 12
	jobColRemote    = 14
	jobColDesc      = 19

	jobRowMinColumns = 20

	// URLs beyond this are tracking-parameter noise; drop them.
	maxURLLength = 600
)

type JobImporter struct {
	geo    repository.GeoRepository
	ingest usecase.JobIngestUsecase
	log    *log.Logger
}

func NewJobImporter(geo repository.GeoRepository, ingest usecase.JobIngestUsecase, logger *log.Logger) *JobImporter {
	if logger == nil {
		logger = log.Default()
	}
	return &JobImporter{geo: geo, ingest: ingest, log: logger}
}

type ImportStats struct {
	Imported int
	Skipped  int
}

// Run imports a scraper-export CSV. Each row passes through the ingest
// path, so extraction runs on import exactly as it does for scraped jobs.
func (i *JobImporter) Run(ctx context.Context, path string, sourceID uuid.UUID) (ImportStats, error) {
	rows, err := readCSVRows(path)
	if err != nil {
		return ImportStats{}, err
	}

	cities, err := i.geo.AllCities(ctx)
	if err != nil {
		return ImportStats{}, err
	}
	index := buildCityIndex(cities)

	var stats ImportStats
	for n, row := range rows {
		in, ok := parseJobRow(row, index)
		if !ok {
			stats.Skipped++
			i.log.Printf("importer=jobs status=skip line=%d reason=malformed_row", n+2)
			continue
		}
		in.SourceID = sourceID

		if _, _, err := i.ingest.IngestJob(ctx, in); err != nil {
			stats.Skipped++
			i.log.Printf("importer=jobs status=skip line=%d err=%v", n+2, err)
			continue
		}
		stats.Imported++
	}

	ws.NotifyJobsUpdated("import", stats.Imported)
	i.log.Printf("importer=jobs status=done imported=%d skipped=%d", stats.Imported, stats.Skipped)
	return stats, nil
}

type cityIndex map[string][]repository.CityRow

func buildCityIndex(cities []repository.CityRow) cityIndex {
	idx := make(cityIndex, len(cities))
	for _, c := range cities {
		key := cityKey(c.Name, c.StateCode)
		idx[key] = append(idx[key], c)
	}
	return idx
}

func cityKey(name, state string) string {
	return name + "|" + state
}

// resolveCity looks a "City, ST" pair up in the index. Duplicate names in
// one state are broken by population.
func (idx cityIndex) resolveCity(name, state string) *uuid.UUID {
	candidates := idx[cityKey(name, state)]
	if len(candidates) == 0 {
		return nil
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Population > best.Population {
			best = c
		}
	}
	id := best.ID
	return &id
}

func parseJobRow(row []string, idx cityIndex) (usecase.JobIngestInput, bool) {
	if len(row) < jobRowMinColumns {
		return usecase.JobIngestInput{}, false
	}

	url := row[jobColURL]
	if len(url) > maxURLLength {
		url = ""
	}

	minSal, maxSal := parseSalaries(row[jobColMinSalary], row[jobColMaxSalary], row[jobColInterval])

	var cityID *uuid.UUID
	location := row[jobColLocation]
	if name, state, ok := parseLocation(location); ok {
		cityID = idx.resolveCity(name, state)
	}

	postedAt, ok := parsePostedAt(row[jobColPostedAt])
	if !ok {
		return usecase.JobIngestInput{}, false
	}

	return usecase.JobIngestInput{
		ExternalJobID:  row[jobColID],
		Title:          row[jobColTitle],
		Company:        row[jobColCompany],
		CityID:         cityID,
		Location:       location,
		EmploymentType: row[jobColType],
		Description:    strings.ReplaceAll(row[jobColDesc], "\\", ""),
		URL:            url,
		MinSalary:      minSal,
		MaxSalary:      maxSal,
		IsRemote:       strings.EqualFold(strings.TrimSpace(row[jobColRemote]), "true"),
		PostedAt:       postedAt,
	}, true
}

// parseLocation splits "Frederick, MD, US" into city and state. Anything
// not in that exact shape reports no location.
func parseLocation(s string) (city, state string, ok bool) {
	if strings.Count(s, ",") != 2 {
		return "", "", false
	}
	last := strings.LastIndex(s, ",")
	if last != len(s)-4 {
		return "", "", false
	}
	s = s[:last]
	if len(s) < 4 {
		return "", "", false
	}
	return s[:len(s)-4], s[len(s)-2:], true
}

// parseSalaries returns both bounds or neither. Hourly wages convert to
// yearly at 40 hours a week, 52 weeks a year.
func parseSalaries(minStr, maxStr, interval string) (*float64, *float64) {
	if minStr == "" || maxStr == "" {
		return nil, nil
	}
	minSal, err := strconv.ParseFloat(minStr, 64)
	if err != nil {
		return nil, nil
	}
	maxSal, err := strconv.ParseFloat(maxStr, 64)
	if err != nil {
		return nil, nil
	}
	if interval == "hourly" {
		minSal *= 40 * 52
		maxSal *= 40 * 52
	}
	return &minSal, &maxSal
}

func parsePostedAt(s string) (*time.Time, bool) {
	if strings.TrimSpace(s) == "" {
		return nil, true
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, false
	}
	return &t, true
}
