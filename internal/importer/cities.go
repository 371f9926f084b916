package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"jobscout/internal/repository"

	"github.com/google/uuid"
)

var ErrGeographyExists = errors.New("location tables already have data; use --force to re-import")

// Census CSV column offsets (uscities.csv).
const (
	cityColName       = 1
	cityColStateCode  = 2
	cityColFIPS       = 4
	cityColCounty     = 5
	cityColPopulation = 8
)

// Counties with no cities are absent from the census CSV and have to be
// added by hand so county-level references resolve.
var citylessCounties = []struct {
	name  string
	state string
	fips  string
}{
	{"Greensville", "VA", "51081"},
	{"James City", "VA", "51095"},
	{"Kalawao", "HI", "15005"},
	{"Lincoln", "ME", "23015"},
	{"Bristol", "RI", "44001"},
	{"Echols", "GA", "13101"},
	{"Quitman", "GA", "13239"},
	{"Webster", "GA", "13307"},
	{"Las Marías", "PR", "72083"},
}

type CityImporter struct {
	geo repository.GeoRepository
	log *log.Logger
}

func NewCityImporter(geo repository.GeoRepository, logger *log.Logger) *CityImporter {
	if logger == nil {
		logger = log.Default()
	}
	return &CityImporter{geo: geo, log: logger}
}

// Run loads states, counties and cities from the census CSVs. Existing
// geography blocks the import unless force is set, in which case it is
// dropped and rebuilt.
func (i *CityImporter) Run(ctx context.Context, statesPath, citiesPath string, force bool) error {
	populated, err := i.geo.HasAnyGeography(ctx)
	if err != nil {
		return err
	}
	if populated {
		if !force {
			return ErrGeographyExists
		}
		if err := i.geo.DeleteAllGeography(ctx); err != nil {
			return err
		}
	}

	stateIDs, err := i.importStates(ctx, statesPath)
	if err != nil {
		return err
	}

	rows, err := readCSVRows(citiesPath)
	if err != nil {
		return err
	}

	// First pass creates counties; a fips is remembered only when it was
	// newly created, so cities in unknown counties get skipped below.
	countyIDs := make(map[string]uuid.UUID)
	for _, row := range rows {
		if len(row) <= cityColPopulation {
			continue
		}
		stateID, ok := stateIDs[row[cityColStateCode]]
		if !ok {
			continue
		}
		fips := row[cityColFIPS]
		id, created, err := i.geo.CreateCounty(ctx, row[cityColCounty], stateID, fips)
		if err != nil {
			return err
		}
		if created {
			countyIDs[fips] = id
		}
	}

	created := 0
	for _, row := range rows {
		if len(row) <= cityColPopulation {
			continue
		}
		countyID, ok := countyIDs[row[cityColFIPS]]
		if !ok {
			continue
		}
		population, _ := strconv.Atoi(row[cityColPopulation])
		if err := i.geo.CreateCity(ctx, row[cityColName], countyID, population); err != nil {
			return err
		}
		created++
	}

	for _, c := range citylessCounties {
		stateID, ok := stateIDs[c.state]
		if !ok {
			continue
		}
		if _, _, err := i.geo.CreateCounty(ctx, c.name, stateID, c.fips); err != nil {
			return err
		}
	}

	i.log.Printf("importer=cities status=done states=%d counties=%d cities=%d", len(stateIDs), len(countyIDs), created)
	return nil
}

func (i *CityImporter) importStates(ctx context.Context, path string) (map[string]uuid.UUID, error) {
	rows, err := readCSVRows(path)
	if err != nil {
		return nil, err
	}

	stateIDs := make(map[string]uuid.UUID, len(rows))
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		name, code := row[0], row[1]
		id, err := i.geo.CreateState(ctx, name, code)
		if err != nil {
			return nil, err
		}
		stateIDs[code] = id
	}
	return stateIDs, nil
}

// readCSVRows reads every data row of the file, skipping the header.
func readCSVRows(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	if _, err := r.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("read header of %s: %w", path, err)
	}

	var rows [][]string
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
