// Package report derives descriptive statistics from a batch of fixture
// records.
package report

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"slices"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"pkg.jsn.cam/partsfixture/pkg/fixture"
)

// DefaultTop is the number of categories listed in the ranking.
const DefaultTop = 5

var ErrInvalidPrice = errors.New("invalid price")

// Bucket counts prices below Max. Buckets are kept in ascending order and a
// price lands in the first one whose Max exceeds it; a zero Max is unbounded.
type Bucket struct {
	Label string
	Max   decimal.Decimal
	Count int
}

func (b Bucket) contains(price decimal.Decimal) bool {
	return b.Max.IsZero() || price.LessThan(b.Max)
}

func priceBuckets() []Bucket {
	return []Bucket{
		{Label: "<100", Max: decimal.NewFromInt(100)},
		{Label: "100-499.99", Max: decimal.NewFromInt(500)},
		{Label: "500-1499.99", Max: decimal.NewFromInt(1500)},
		{Label: ">=1500"},
	}
}

// Share is a named count, used for frequency tables.
type Share struct {
	Name  string
	Count int
}

// Stats summarizes a batch. The zero value describes an empty batch.
type Stats struct {
	Total        int
	Categories   map[string]int
	Brands       map[string]int
	PriceBuckets []Bucket

	DescMin  int
	DescMax  int
	DescMean float64
}

// Compute walks records once. Prices must be decimal strings.
func Compute(records []fixture.Product) (*Stats, error) {
	s := &Stats{
		Total:        len(records),
		Categories:   make(map[string]int),
		Brands:       make(map[string]int),
		PriceBuckets: priceBuckets(),
	}
	if len(records) == 0 {
		return s, nil
	}

	s.DescMin = utf8.RuneCountInString(records[0].Description)
	descTotal := 0

	for i, r := range records {
		s.Categories[r.Category]++
		s.Brands[r.Brand]++

		price, err := decimal.NewFromString(r.Price)
		if err != nil {
			return nil, fmt.Errorf("%w at row %d: %q", ErrInvalidPrice, i+1, r.Price)
		}
		for j := range s.PriceBuckets {
			if s.PriceBuckets[j].contains(price) {
				s.PriceBuckets[j].Count++
				break
			}
		}

		n := utf8.RuneCountInString(r.Description)
		s.DescMin = min(s.DescMin, n)
		s.DescMax = max(s.DescMax, n)
		descTotal += n
	}

	s.DescMean = float64(descTotal) / float64(s.Total)

	return s, nil
}

// Percent returns count as a percentage of Total, or 0 for an empty batch.
func (s *Stats) Percent(count int) float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(count) / float64(s.Total) * 100
}

// CategoryShares lists every category by descending count, ties by name.
func (s *Stats) CategoryShares() []Share {
	return ranked(s.Categories)
}

// BrandShares lists every brand by descending count, ties by name.
func (s *Stats) BrandShares() []Share {
	return ranked(s.Brands)
}

// TopCategories returns at most n entries of CategoryShares.
func (s *Stats) TopCategories(n int) []Share {
	shares := s.CategoryShares()
	if n < len(shares) {
		shares = shares[:n]
	}
	return shares
}

func ranked(counts map[string]int) []Share {
	shares := make([]Share, 0, len(counts))
	for name, count := range counts {
		shares = append(shares, Share{Name: name, Count: count})
	}
	slices.SortFunc(shares, func(a, b Share) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return shares
}

// Print writes the human-readable report. top limits the category ranking.
func (s *Stats) Print(w io.Writer, top int) {
	fmt.Fprintln(w, "=== Fixture Data Report ===")
	fmt.Fprintf(w, "Total records:        %s\n", humanize.Comma(int64(s.Total)))

	if s.Total == 0 {
		fmt.Fprintln(w, "no data")
		return
	}

	fmt.Fprintf(w, "Distinct categories:  %d\n", len(s.Categories))
	fmt.Fprintf(w, "Distinct brands:      %d\n", len(s.Brands))
	fmt.Fprintf(w, "Description length:   %d - %d chars\n", s.DescMin, s.DescMax)
	fmt.Fprintf(w, "Average description:  %.1f chars\n", s.DescMean)

	fmt.Fprintln(w, "\nPrice distribution:")
	for _, b := range s.PriceBuckets {
		fmt.Fprintf(w, "  %-12s %8d (%.1f%%)\n", b.Label, b.Count, s.Percent(b.Count))
	}

	fmt.Fprintln(w, "\nCategories:")
	for _, c := range s.CategoryShares() {
		fmt.Fprintf(w, "  %-20s %8d (%.1f%%)\n", c.Name, c.Count, s.Percent(c.Count))
	}

	fmt.Fprintf(w, "\nTop %d categories:\n", top)
	for _, c := range s.TopCategories(top) {
		fmt.Fprintf(w, "  %-20s %8d (%.1f%%)\n", c.Name, c.Count, s.Percent(c.Count))
	}

	fmt.Fprintln(w, "\nBrands:")
	for _, b := range s.BrandShares() {
		fmt.Fprintf(w, "  %-20s %8d (%.1f%%)\n", b.Name, b.Count, s.Percent(b.Count))
	}
}

// Print computes the statistics for records and writes the report to w.
func Print(w io.Writer, records []fixture.Product, top int) error {
	s, err := Compute(records)
	if err != nil {
		return err
	}

	s.Print(w, top)

	return nil
}
