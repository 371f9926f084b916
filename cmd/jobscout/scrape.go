package main

import (
	"jobscout/internal/catalog"
	"jobscout/internal/extract"
	"jobscout/internal/repository"
	"jobscout/internal/scraper"
	"jobscout/internal/usecase"

	"github.com/spf13/cobra"
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Scrape a careers board and ingest every posting",
	Long:  "Scrape a careers board listing and ingest every posting found. The list URL may contain %d as a page-number placeholder; selectors default to permissive values when omitted.",
	RunE:  runScrape,
}

var (
	scrapeSource       string
	scrapeBaseURL      string
	scrapeListURL      string
	scrapeLinkSel      string
	scrapeTitleSel     string
	scrapeLocationSel  string
	scrapeBodySel      string
	scrapeHeadless     bool
	scrapePages        int
	scrapeWorkersCount int
)

func init() {
	scrapeCmd.Flags().StringVar(&scrapeSource, "name", "", "Job source name (required)")
	scrapeCmd.Flags().StringVar(&scrapeBaseURL, "base-url", "", "Base URL for resolving relative links")
	scrapeCmd.Flags().StringVar(&scrapeListURL, "list-url", "", "Listing page URL, %d substitutes the page number (required)")
	scrapeCmd.Flags().StringVar(&scrapeLinkSel, "link-selector", "", "CSS selector for posting links on the listing page")
	scrapeCmd.Flags().StringVar(&scrapeTitleSel, "title-selector", "", "CSS selector for the title on the detail page")
	scrapeCmd.Flags().StringVar(&scrapeLocationSel, "location-selector", "", "CSS selector for the location on the detail page")
	scrapeCmd.Flags().StringVar(&scrapeBodySel, "body-selector", "", "CSS selector for the description on the detail page")
	scrapeCmd.Flags().BoolVar(&scrapeHeadless, "headless", false, "Render the listing page in a headless browser first")
	scrapeCmd.Flags().IntVar(&scrapePages, "pages", 1, "Listing pages to walk")
	scrapeCmd.Flags().IntVar(&scrapeWorkersCount, "workers", 4, "Concurrent detail-page fetchers")

	scrapeCmd.MarkFlagRequired("name")
	scrapeCmd.MarkFlagRequired("list-url")

	rootCmd.AddCommand(scrapeCmd)
}

func runScrape(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	db, err := connectDB(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	jobRepo := repository.NewPostgresJobRepository(db)
	jobSkillRepo := repository.NewPostgresJobSkillRepository(db)
	skillRepo := repository.NewPostgresSkillRepository(db)

	extractor := extract.New(catalog.NewMemo(skillRepo))
	ingest := usecase.NewJobIngestUsecase(jobRepo, jobSkillRepo, extractor)

	target := scraper.BoardTarget{
		SourceName:         scrapeSource,
		BaseURL:            scrapeBaseURL,
		ListURL:            scrapeListURL,
		LinkSelector:       scrapeLinkSel,
		TitleSelector:      scrapeTitleSel,
		LocationSelector:   scrapeLocationSel,
		DetailBodySelector: scrapeBodySel,
		Headless:           scrapeHeadless,
	}

	return scraper.NewBoardScraper(db, ingest).Scrape(ctx, []scraper.BoardTarget{target}, scrapePages, scrapeWorkersCount)
}
