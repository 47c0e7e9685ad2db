package gis

import (
	"net/http"
	"time"
)

// Client talks to the Lawrence County GIS parcel search. The county site is
// a plain HTML application, so results are scraped from its paginated search
// result tables.
type Client struct {
	baseURL    string
	userAgent  string
	maxPages   int
	httpClient *http.Client
}

// NewClient creates a GIS client. maxPages caps the pagination walk so a
// misbehaving result set cannot keep the scrape running forever.
func NewClient(baseURL, userAgent string, timeout time.Duration, maxPages int) *Client {
	if maxPages <= 0 {
		maxPages = 20
	}
	return &Client{
		baseURL:   baseURL,
		userAgent: userAgent,
		maxPages:  maxPages,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Parcel is one row of the county search results.
type Parcel struct {
	OwnerName     string
	Address       string
	City          string
	ZipCode       string
	Acreage       float64
	AssessedValue float64
	PropertyType  string
	ParcelID      string
}
