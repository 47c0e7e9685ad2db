package gis

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"landscout-backoffice/pkg/logger"
	"landscout-backoffice/pkg/metrics"

	"github.com/PuerkitoBio/goquery"
)

// SearchByAcreage walks the county parcel search for parcels whose acreage
// falls within [minAcreage, maxAcreage]. The county search matches loosely,
// so rows are re-filtered against the requested range and de-duplicated by
// parcel id across pages. The walk stops at the first empty page or at the
// page cap.
func (c *Client) SearchByAcreage(ctx context.Context, minAcreage, maxAcreage float64) ([]Parcel, error) {
	start := time.Now()
	defer func() {
		metrics.ScrapeDuration.Observe(time.Since(start).Seconds())
	}()

	var parcels []Parcel
	seen := make(map[string]bool)

	for page := 1; page <= c.maxPages; page++ {
		rows, err := c.fetchPage(ctx, minAcreage, maxAcreage, page)
		if err != nil {
			return nil, err
		}
		metrics.ScrapePagesTotal.Inc()
		if len(rows) == 0 {
			break
		}

		for _, p := range rows {
			if p.Acreage < minAcreage || p.Acreage > maxAcreage {
				continue
			}
			if seen[p.ParcelID] {
				continue
			}
			seen[p.ParcelID] = true
			parcels = append(parcels, p)
		}
	}

	metrics.ScrapedParcelsTotal.Add(float64(len(parcels)))
	logger.GlobalLogger.Printf("GIS search finished: min=%.2f, max=%.2f, parcels=%d", minAcreage, maxAcreage, len(parcels))
	return parcels, nil
}

func (c *Client) fetchPage(ctx context.Context, minAcreage, maxAcreage float64, page int) ([]Parcel, error) {
	q := url.Values{}
	q.Set("min_acreage", strconv.FormatFloat(minAcreage, 'f', -1, 64))
	q.Set("max_acreage", strconv.FormatFloat(maxAcreage, 'f', -1, 64))
	q.Set("page", strconv.Itoa(page))
	searchURL := c.baseURL + "/parcels/search?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("GIS source request build failed: %v", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.GlobalLogger.Errorf("GIS page fetch failed: url=%s, error=%v", searchURL, err)
		return nil, fmt.Errorf("GIS source unreachable: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.GlobalLogger.Errorf("GIS page fetch failed: url=%s, status=%s", searchURL, resp.Status)
		return nil, fmt.Errorf("GIS source returned status %d", resp.StatusCode)
	}

	return parsePage(resp.Body)
}

// parsePage extracts parcel rows from one county search results page. Rows
// without a parcel id are skipped; the county renders placeholder rows for
// redacted owners.
func parsePage(r io.Reader) ([]Parcel, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("GIS source returned unparseable page: %v", err)
	}

	var parcels []Parcel
	doc.Find("table.parcel-results tbody tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 8 {
			return
		}

		parcelID := text(cells.Eq(0))
		if parcelID == "" {
			return
		}

		parcels = append(parcels, Parcel{
			ParcelID:      parcelID,
			OwnerName:     text(cells.Eq(1)),
			Address:       text(cells.Eq(2)),
			City:          text(cells.Eq(3)),
			ZipCode:       text(cells.Eq(4)),
			Acreage:       parseNumber(text(cells.Eq(5))),
			AssessedValue: parseNumber(text(cells.Eq(6))),
			PropertyType:  text(cells.Eq(7)),
		})
	})

	return parcels, nil
}

func text(s *goquery.Selection) string {
	return strings.TrimSpace(s.Text())
}

// parseNumber handles the county's "$1,234.50" and "12.5 ac" cell formats.
func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if i := strings.IndexByte(s, ' '); i >= 0 {
		s = s[:i]
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
