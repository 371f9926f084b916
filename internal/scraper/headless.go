package scraper

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// renderListingPage drives a headless browser for boards whose listing
// markup only exists after JavaScript runs, then applies the target's
// link selector to the rendered DOM.
func (s *BoardScraper) renderListingPage(ctx context.Context, t BoardTarget, listURL string) ([]boardListItem, error) {
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
			chromedp.UserAgent(httpHeaders()["User-Agent"]),
		)...,
	)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	reqCtx, reqCancel := context.WithTimeout(browserCtx, 25*time.Second)
	defer reqCancel()

	selector := strings.TrimSpace(t.LinkSelector)
	if selector == "" {
		selector = "a[href]"
	}

	script := fmt.Sprintf(`Array.from(document.querySelectorAll(%q))
		.map(a => a.getAttribute('href'))
		.filter(h => h)`, selector)

	var hrefs []string
	err := chromedp.Run(reqCtx,
		chromedp.Navigate(listURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(1500*time.Millisecond),
		chromedp.EvaluateAsDevTools(script, &hrefs),
	)
	if err != nil {
		return nil, err
	}

	base := strings.TrimRight(t.BaseURL, "/")
	seen := map[string]struct{}{}
	out := make([]boardListItem, 0, len(hrefs))

	for _, h := range hrefs {
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}
		if strings.HasPrefix(h, "/") {
			h = base + h
		} else if !strings.HasPrefix(h, "http://") && !strings.HasPrefix(h, "https://") {
			continue
		}
		if _, ok := seen[h]; ok {
			continue
		}
		seen[h] = struct{}{}
		out = append(out, boardListItem{Link: h})
	}
	return out, nil
}
