package listingcsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/junianwoo/fyd-sub001/schema"
	"github.com/junianwoo/fyd-sub001/store"
)

// expected header:
// kind,name,address,phone,lat,lng,accepting_status,languages,accessibility_features
// languages and accessibility_features are semicolon-separated lists.
var expectedColumns = []string{
	"kind", "name", "address", "phone", "lat", "lng",
	"accepting_status", "languages", "accessibility_features",
}

// ParseListings reads listing records from a CSV stream. Rows with a
// malformed coordinate fail the whole parse; an empty accepting status
// defaults to unknown at insert time.
func ParseListings(r io.Reader) ([]schema.Listing, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, err
	}
	if len(header) != len(expectedColumns) {
		return nil, fmt.Errorf("unexpected csv header: %v", header)
	}
	for i, col := range expectedColumns {
		if strings.TrimSpace(header[i]) != col {
			return nil, fmt.Errorf("unexpected csv column %d: %q", i, header[i])
		}
	}

	listings := make([]schema.Listing, 0)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		lat, err := strconv.ParseFloat(record[4], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid latitude %q", len(listings)+2, record[4])
		}
		lng, err := strconv.ParseFloat(record[5], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid longitude %q", len(listings)+2, record[5])
		}

		status := schema.AcceptingStatus(record[6])
		if record[6] != "" && !status.Valid() {
			return nil, fmt.Errorf("row %d: unknown accepting status %q", len(listings)+2, record[6])
		}

		listings = append(listings, schema.Listing{
			Kind:                  schema.ListingKind(record[0]),
			Name:                  record[1],
			Address:               record[2],
			Phone:                 record[3],
			Location:              schema.NewPoint(lng, lat),
			AcceptingStatus:       status,
			Languages:             splitList(record[7]),
			AccessibilityFeatures: splitList(record[8]),
		})
	}

	return listings, nil
}

// Import loads a listing CSV file into the listings collection
func Import(client *mongo.Client, dbName, csvFile string) (int, error) {
	file, err := os.Open(csvFile)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	listings, err := ParseListings(file)
	if err != nil {
		return 0, err
	}
	if len(listings) == 0 {
		return 0, nil
	}

	return store.NewMongoStore(client, dbName).CreateListings(listings)
}

func splitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
