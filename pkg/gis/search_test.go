package gis

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"landscout-backoffice/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.InitLogger()
	os.Exit(m.Run())
}

const resultsPage = `
<html><body>
<table class="parcel-results">
<thead><tr><th>Parcel</th><th>Owner</th><th>Address</th><th>City</th><th>Zip</th><th>Acreage</th><th>Assessed</th><th>Type</th></tr></thead>
<tbody>
<tr><td>12-034-056</td><td>SMITH JOHN</td><td>142 COUNTY RD 7</td><td>BEDFORD</td><td>47421</td><td>12.5 ac</td><td>$84,200</td><td>Agricultural</td></tr>
<tr><td>12-034-099</td><td>DOE FAMILY TRUST</td><td>88 STATE RD 58</td><td>MITCHELL</td><td>47446</td><td>3.25 ac</td><td>$151,700.50</td><td>Residential</td></tr>
<tr><td></td><td>REDACTED</td><td></td><td></td><td></td><td></td><td></td><td></td></tr>
<tr><td>12-040-001</td><td>ACME LAND LLC</td><td>NO SITUS</td><td>BEDFORD</td><td>47421</td><td>47 ac</td><td>$12,000</td><td>Vacant</td></tr>
</tbody>
</table>
</body></html>`

func TestParsePage(t *testing.T) {
	parcels, err := parsePage(strings.NewReader(resultsPage))
	require.NoError(t, err)
	require.Len(t, parcels, 3, "placeholder row without a parcel id is skipped")

	first := parcels[0]
	assert.Equal(t, "12-034-056", first.ParcelID)
	assert.Equal(t, "SMITH JOHN", first.OwnerName)
	assert.Equal(t, "142 COUNTY RD 7", first.Address)
	assert.Equal(t, "BEDFORD", first.City)
	assert.Equal(t, "47421", first.ZipCode)
	assert.Equal(t, 12.5, first.Acreage)
	assert.Equal(t, 84200.0, first.AssessedValue)
	assert.Equal(t, "Agricultural", first.PropertyType)

	assert.Equal(t, 151700.50, parcels[1].AssessedValue)
}

func TestParsePage_NoTable(t *testing.T) {
	parcels, err := parsePage(strings.NewReader("<html><body><p>No results.</p></body></html>"))
	require.NoError(t, err)
	assert.Empty(t, parcels)
}

func TestParseNumber(t *testing.T) {
	assert.Equal(t, 84200.0, parseNumber("$84,200"))
	assert.Equal(t, 12.5, parseNumber("12.5 ac"))
	assert.Equal(t, 0.0, parseNumber("n/a"))
	assert.Equal(t, 3.25, parseNumber(" 3.25 "))
}

func TestSearchByAcreage_FiltersAndDeduplicates(t *testing.T) {
	// Page 1 repeats a parcel that also shows up on page 2, and includes one
	// row outside the requested range. Page 3 is empty, ending the walk.
	pages := map[string]string{
		"1": resultsPage,
		"2": `<table class="parcel-results"><tbody>
			<tr><td>12-034-056</td><td>SMITH JOHN</td><td>142 COUNTY RD 7</td><td>BEDFORD</td><td>47421</td><td>12.5 ac</td><td>$84,200</td><td>Agricultural</td></tr>
			<tr><td>12-050-002</td><td>HILLSIDE FARMS</td><td>1 ORCHARD LN</td><td>OOLITIC</td><td>47451</td><td>30 ac</td><td>$220,000</td><td>Agricultural</td></tr>
			</tbody></table>`,
		"3": `<table class="parcel-results"><tbody></tbody></table>`,
	}

	var requested []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")
		requested = append(requested, page)
		fmt.Fprint(w, pages[page])
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-agent", 5*time.Second, 10)
	parcels, err := c.SearchByAcreage(context.Background(), 10, 50)
	require.NoError(t, err)

	ids := make([]string, 0, len(parcels))
	for _, p := range parcels {
		ids = append(ids, p.ParcelID)
	}
	// 12-034-099 (3.25 ac) filtered out, 12-034-056 deduplicated.
	assert.Equal(t, []string{"12-034-056", "12-040-001", "12-050-002"}, ids)
	assert.Equal(t, []string{"1", "2", "3"}, requested)
}

func TestSearchByAcreage_SourceFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-agent", 5*time.Second, 10)
	_, err := c.SearchByAcreage(context.Background(), 1, 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GIS source")
}
