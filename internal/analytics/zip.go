// Package analytics holds the order aggregations behind the reporting
// endpoints. Every function here is pure: callers fetch the rows from the
// store and pass them in.
package analytics

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// SortDirection orders aggregated counts.
type SortDirection string

const (
	Asc  SortDirection = "asc"
	Desc SortDirection = "desc"
)

// ErrInvalidSortDirection is returned by ParseSortDirection for anything but asc/desc.
var ErrInvalidSortDirection = errors.New("invalid sort direction")

// ParseSortDirection maps a query value to a direction. Empty means Desc.
func ParseSortDirection(s string) (SortDirection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return Desc, nil
	case "asc":
		return Asc, nil
	case "desc":
		return Desc, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSortDirection, s)
}

// ZipCount is the number of records sharing a zip code.
type ZipCount struct {
	ZipCode    string `json:"zip_code"`
	OrderCount int64  `json:"order_count"`
}

// GroupByZip counts occurrences of each zip code, matching exactly.
// Results are ordered by count in dir, then by zip code ascending.
func GroupByZip(zips []string, dir SortDirection) []ZipCount {
	counts := make(map[string]int64, len(zips))
	for _, z := range zips {
		counts[z]++
	}
	out := make([]ZipCount, 0, len(counts))
	for z, n := range counts {
		out = append(out, ZipCount{ZipCode: z, OrderCount: n})
	}
	SortZipCounts(out, dir)
	return out
}

// SortZipCounts sorts in place using the same ordering as GroupByZip.
func SortZipCounts(zc []ZipCount, dir SortDirection) {
	sort.Slice(zc, func(i, j int) bool {
		if zc[i].OrderCount != zc[j].OrderCount {
			if dir == Asc {
				return zc[i].OrderCount < zc[j].OrderCount
			}
			return zc[i].OrderCount > zc[j].OrderCount
		}
		return zc[i].ZipCode < zc[j].ZipCode
	})
}

// Total sums the counts.
func Total(zc []ZipCount) int64 {
	var n int64
	for _, z := range zc {
		n += z.OrderCount
	}
	return n
}
