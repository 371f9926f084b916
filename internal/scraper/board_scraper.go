package scraper

import (
	"context"
	"fmt"
	"strings"
	"time"

	"jobscout/internal/database"
	"jobscout/internal/pipeline"
	"jobscout/internal/usecase"
	"jobscout/internal/ws"

	"github.com/gocolly/colly/v2"
	"github.com/google/uuid"
)

// BoardTarget describes one careers board: where the listing page lives
// and the selectors that pull links and detail fields out of it.
type BoardTarget struct {
	SourceName         string
	BaseURL            string
	ListURL            string
	LinkSelector       string
	TitleSelector      string
	LocationSelector   string
	DetailBodySelector string
	// Headless renders the listing page in a browser before selecting
	// links, for boards that build their DOM with JavaScript.
	Headless bool
}

type boardListItem struct {
	Link     string
	Title    string
	Location string
}

type boardDetail struct {
	Title       string
	Location    string
	Description string
	URL         string
}

// BoardScraper crawls configured careers boards and feeds every posting
// through the ingest path, so extraction runs at scrape time.
type BoardScraper struct {
	db     database.DB
	ingest usecase.JobIngestUsecase
}

func NewBoardScraper(db database.DB, ingest usecase.JobIngestUsecase) *BoardScraper {
	return &BoardScraper{db: db, ingest: ingest}
}

func (s *BoardScraper) Scrape(ctx context.Context, targets []BoardTarget, pages int, workers int) error {
	if s == nil || s.db == nil || s.ingest == nil {
		return fmt.Errorf("nil scraper/db")
	}
	if len(targets) == 0 {
		return nil
	}
	if workers <= 0 {
		workers = 4
	}

	for _, t := range targets {
		t := t
		if strings.TrimSpace(t.SourceName) == "" || strings.TrimSpace(t.ListURL) == "" {
			continue
		}
		if strings.TrimSpace(t.BaseURL) == "" {
			t.BaseURL = t.ListURL
		}
		if strings.TrimSpace(t.LinkSelector) == "" {
			t.LinkSelector = "a"
		}
		if strings.TrimSpace(t.TitleSelector) == "" {
			t.TitleSelector = "title"
		}
		if strings.TrimSpace(t.DetailBodySelector) == "" {
			t.DetailBodySelector = "body"
		}

		sourceID, err := EnsureJobSource(ctx, s.db, t.SourceName, t.BaseURL)
		if err != nil {
			continue
		}

		runID, _ := createScrapeRun(ctx, s.db, sourceID)

		count := s.scrapeTarget(ctx, t, sourceID, runID, pages, workers)

		if runID != uuid.Nil {
			_ = finishScrapeRun(context.Background(), s.db, runID, "finished")
		}
		ws.NotifyJobsUpdated(t.SourceName, count)
	}

	return nil
}

func (s *BoardScraper) scrapeTarget(ctx context.Context, t BoardTarget, sourceID, runID uuid.UUID, pages, workers int) int {
	pool := pipeline.NewWorkerPool(workers, workers*2)
	pool.SetRateLimit(3)
	results := pool.Run(ctx)

	for page := 1; page <= maxInt(1, pages); page++ {
		listURL := t.ListURL
		if strings.Contains(listURL, "%d") {
			listURL = fmt.Sprintf(listURL, page)
		}

		var (
			items []boardListItem
			err   error
		)
		if t.Headless {
			items, err = s.renderListingPage(ctx, t, listURL)
		} else {
			items, err = s.scrapeListingPage(ctx, t, listURL)
		}
		if err != nil {
			_ = logScrape(ctx, s.db, runID, "error", fmt.Sprintf("%s list page %d: %v", t.SourceName, page, err))
			continue
		}

		for _, it := range items {
			it := it
			if strings.TrimSpace(it.Link) == "" {
				continue
			}
			pool.Submit(func(ctx context.Context) error {
				d, err := s.scrapeDetailPage(ctx, t, it.Link)
				if err != nil {
					return err
				}
				scrapedAt := time.Now().UTC()
				_, _, err = s.ingest.IngestJob(ctx, usecase.JobIngestInput{
					SourceID:       sourceID,
					ExternalJobID:  stableExternalIDFromURL(d.URL),
					Title:          pickNonEmpty(d.Title, it.Title),
					Company:        t.SourceName,
					Location:       pickNonEmpty(d.Location, it.Location),
					Description:    d.Description,
					URL:            normalizeURL(d.URL),
					ScrapedAt:      &scrapedAt,
				})
				if err != nil {
					return err
				}
				_ = logScrape(ctx, s.db, runID, "info", fmt.Sprintf("job ingested url=%s", d.URL))
				return nil
			})
		}
	}

	pool.Close()

	count := 0
	for res := range results {
		if res.Err != nil {
			_ = logScrape(ctx, s.db, runID, "error", fmt.Sprintf("%s item: %v", t.SourceName, res.Err))
			continue
		}
		count++
	}
	return count
}

func (s *BoardScraper) scrapeListingPage(ctx context.Context, t BoardTarget, listURL string) ([]boardListItem, error) {
	c := newCollector(listURL)

	items := make([]boardListItem, 0)
	dedup := map[string]struct{}{}

	c.OnRequest(func(r *colly.Request) {
		for k, v := range httpHeaders() {
			r.Headers.Set(k, v)
		}
	})

	c.OnHTML(t.LinkSelector, func(e *colly.HTMLElement) {
		href := strings.TrimSpace(e.Attr("href"))
		if href == "" {
			return
		}
		abs := normalizeURL(e.Request.AbsoluteURL(href))
		if abs == "" {
			return
		}
		if _, ok := dedup[abs]; ok {
			return
		}
		dedup[abs] = struct{}{}

		title := ""
		if strings.TrimSpace(t.TitleSelector) != "" {
			title = strings.TrimSpace(e.DOM.Find(t.TitleSelector).Text())
		}
		location := ""
		if strings.TrimSpace(t.LocationSelector) != "" {
			location = strings.TrimSpace(e.DOM.Find(t.LocationSelector).Text())
		}

		items = append(items, boardListItem{Link: abs, Title: title, Location: location})
	})

	var reqErr error
	c.OnError(func(_ *colly.Response, err error) {
		reqErr = err
	})

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if err := c.Visit(listURL); err != nil {
		return nil, err
	}
	c.Wait()
	if reqErr != nil {
		return nil, reqErr
	}
	return items, nil
}

func (s *BoardScraper) scrapeDetailPage(ctx context.Context, t BoardTarget, jobURL string) (boardDetail, error) {
	c := newCollector(jobURL)

	var out boardDetail
	out.URL = jobURL
	var reqErr error

	c.OnRequest(func(r *colly.Request) {
		for k, v := range httpHeaders() {
			r.Headers.Set(k, v)
		}
	})

	c.OnHTML(t.TitleSelector, func(e *colly.HTMLElement) {
		if strings.TrimSpace(out.Title) == "" {
			out.Title = strings.TrimSpace(e.Text)
		}
	})

	if strings.TrimSpace(t.LocationSelector) != "" {
		c.OnHTML(t.LocationSelector, func(e *colly.HTMLElement) {
			if strings.TrimSpace(out.Location) == "" {
				out.Location = strings.TrimSpace(e.Text)
			}
		})
	}

	c.OnHTML(t.DetailBodySelector, func(e *colly.HTMLElement) {
		out.Description = strings.TrimSpace(e.Text)
	})

	c.OnError(func(_ *colly.Response, err error) {
		reqErr = err
	})

	if ctx.Err() != nil {
		return boardDetail{}, ctx.Err()
	}
	if err := c.Visit(jobURL); err != nil {
		return boardDetail{}, err
	}
	c.Wait()
	if reqErr != nil {
		return boardDetail{}, reqErr
	}
	return out, nil
}

func newCollector(target string) *colly.Collector {
	allowed := hostFromURL(target)
	var c *colly.Collector
	if strings.TrimSpace(allowed) == "" {
		c = colly.NewCollector()
	} else {
		c = colly.NewCollector(colly.AllowedDomains(allowed))
	}
	_ = c.Limit(&colly.LimitRule{DomainGlob: "*", Parallelism: 2, RandomDelay: 850 * time.Millisecond, Delay: 450 * time.Millisecond})
	return c
}
