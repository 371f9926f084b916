package scraper

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"jobscout/internal/database"
	"jobscout/internal/extract"
	"jobscout/internal/usecase"

	"github.com/google/uuid"
)

type fakeRow struct {
	vals []any
	err  error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != len(r.vals) {
		return fmt.Errorf("scan dest mismatch")
	}
	for i := range dest {
		d, ok := dest[i].(*uuid.UUID)
		if !ok {
			return fmt.Errorf("unsupported scan type")
		}
		v, ok := r.vals[i].(uuid.UUID)
		if !ok {
			return fmt.Errorf("scan type mismatch uuid")
		}
		*d = v
	}
	return nil
}

type fakeDB struct {
	mu sync.Mutex

	sourcesByName map[string]uuid.UUID
	runStatus     map[uuid.UUID]string
	logs          []string
}

func newFakeDB() *fakeDB {
	return &fakeDB{
		sourcesByName: map[string]uuid.UUID{},
		runStatus:     map[uuid.UUID]string{},
	}
}

func (db *fakeDB) Ping(ctx context.Context) error { return nil }
func (db *fakeDB) Close() error                   { return nil }
func (db *fakeDB) SQLDB() *sql.DB                 { return nil }

func (db *fakeDB) Begin(ctx context.Context) (database.Tx, error) {
	return nil, fmt.Errorf("not implemented")
}

func (db *fakeDB) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	q := strings.ToLower(strings.TrimSpace(query))
	switch {
	case strings.HasPrefix(q, "insert into job_sources"):
		name := args[0].(string)
		if _, ok := db.sourcesByName[name]; !ok {
			db.sourcesByName[name] = uuid.New()
			return 1, nil
		}
		return 0, nil
	case strings.HasPrefix(q, "insert into scrape_runs"):
		db.runStatus[args[0].(uuid.UUID)] = "running"
		return 1, nil
	case strings.HasPrefix(q, "update scrape_runs"):
		db.runStatus[args[0].(uuid.UUID)] = args[2].(string)
		return 1, nil
	case strings.HasPrefix(q, "insert into scrape_logs"):
		db.logs = append(db.logs, args[3].(string))
		return 1, nil
	default:
		return 0, nil
	}
}

func (db *fakeDB) Query(ctx context.Context, query string, args ...any) (database.Rows, error) {
	return nil, fmt.Errorf("not implemented")
}

func (db *fakeDB) QueryRow(ctx context.Context, query string, args ...any) database.Row {
	db.mu.Lock()
	defer db.mu.Unlock()

	q := strings.ToLower(strings.TrimSpace(query))
	if strings.HasPrefix(q, "select id from job_sources") {
		id, ok := db.sourcesByName[args[0].(string)]
		if !ok {
			return fakeRow{err: fmt.Errorf("no rows")}
		}
		return fakeRow{vals: []any{id}}
	}
	return fakeRow{err: fmt.Errorf("unsupported queryrow")}
}

type fakeIngest struct {
	mu     sync.Mutex
	inputs []usecase.JobIngestInput
}

func (f *fakeIngest) IngestJob(_ context.Context, in usecase.JobIngestInput) (uuid.UUID, extract.Facts, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inputs = append(f.inputs, in)
	return uuid.New(), extract.Facts{}, nil
}

func TestBoardScraper_IngestsEveryListing(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/careers", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body>
			<a class="job" href="/careers/backend">Backend Engineer</a>
			<a class="job" href="/careers/frontend">Frontend Engineer</a>
		</body></html>`))
	})
	mux.HandleFunc("/careers/backend", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><head><title>Backend Engineer</title></head><body><div class="desc">3 years of experience with Go.</div></body></html>`))
	})
	mux.HandleFunc("/careers/frontend", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><head><title>Frontend Engineer</title></head><body><div class="desc">React and CSS.</div></body></html>`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	db := newFakeDB()
	ingest := &fakeIngest{}
	s := NewBoardScraper(db, ingest)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	err := s.Scrape(ctx, []BoardTarget{{
		SourceName:         "Acme Careers",
		BaseURL:            server.URL,
		ListURL:            server.URL + "/careers",
		LinkSelector:       "a.job",
		TitleSelector:      "title",
		DetailBodySelector: ".desc",
	}}, 1, 2)
	if err != nil {
		t.Fatalf("scrape error: %v", err)
	}

	ingest.mu.Lock()
	defer ingest.mu.Unlock()
	if len(ingest.inputs) != 2 {
		t.Fatalf("expected 2 jobs ingested, got %d", len(ingest.inputs))
	}
	for _, in := range ingest.inputs {
		if in.ExternalJobID == "" {
			t.Fatalf("expected a synthesized external id")
		}
		if !strings.Contains(in.URL, "/careers/") {
			t.Fatalf("unexpected url %q", in.URL)
		}
		if in.Description == "" {
			t.Fatalf("expected detail body captured")
		}
	}

	db.mu.Lock()
	defer db.mu.Unlock()
	for _, status := range db.runStatus {
		if status != "finished" {
			t.Fatalf("expected the run marked finished, got %q", status)
		}
	}
}

func TestStableExternalIDFromURL(t *testing.T) {
	a := stableExternalIDFromURL("https://example.com/jobs/1")
	b := stableExternalIDFromURL("https://example.com/jobs/1")
	c := stableExternalIDFromURL("https://example.com/jobs/2")
	if a != b {
		t.Fatalf("expected stable ids for the same url")
	}
	if a == c {
		t.Fatalf("expected different ids for different urls")
	}
	if stableExternalIDFromURL("  ") != "" {
		t.Fatalf("expected empty id for blank url")
	}
}
