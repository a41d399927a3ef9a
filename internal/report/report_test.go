package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pkg.jsn.cam/partsfixture/pkg/fixture"
)

func product(price, description, category, brand string) fixture.Product {
	return fixture.Product{
		Weight:      "1kg",
		Price:       price,
		Description: description,
		Category:    category,
		Brand:       brand,
		PartNumber:  "BP-001",
	}
}

func TestCompute(t *testing.T) {
	t.Parallel()

	records := []fixture.Product{
		product("99.99", "A", "engineSystem", "Bosch"),
		product("100.00", "ABCDE", "engineSystem", "Bosch"),
		product("499.99", "Lemförder", "brakeSystem", "ZF"),
		product("500.00", "AB", "tireSystem", "ZF"),
		product("1499.99", "ABC", "brakeSystem", "Mann"),
		product("1500.00", "ABCD", "engineSystem", "Mann"),
		product("9999.99", "ABCDEFGHIJ", "durability", "Mann"),
	}

	s, err := Compute(records)
	require.NoError(t, err)

	assert.Equal(t, 7, s.Total)
	assert.Equal(t, map[string]int{"engineSystem": 3, "brakeSystem": 2, "tireSystem": 1, "durability": 1}, s.Categories)
	assert.Equal(t, map[string]int{"Bosch": 2, "ZF": 2, "Mann": 3}, s.Brands)

	counts := make([]int, len(s.PriceBuckets))
	for i, b := range s.PriceBuckets {
		counts[i] = b.Count
	}
	assert.Equal(t, []int{1, 2, 2, 2}, counts)

	assert.Equal(t, 1, s.DescMin)
	assert.Equal(t, 10, s.DescMax)
	assert.InDelta(t, 34.0/7.0, s.DescMean, 1e-9)

	assert.Equal(t, []Share{
		{Name: "engineSystem", Count: 3},
		{Name: "brakeSystem", Count: 2},
		{Name: "durability", Count: 1},
	}, s.TopCategories(3))
	assert.Len(t, s.TopCategories(DefaultTop), 4)
}

func TestCompute_DescriptionLengthCountsCharacters(t *testing.T) {
	t.Parallel()

	s, err := Compute([]fixture.Product{product("1.00", "Lemförder", "durability", "A")})
	require.NoError(t, err)
	assert.Equal(t, 9, s.DescMin)
	assert.Equal(t, 9, s.DescMax)
}

func TestCompute_CategoryPercentagesSumTo100(t *testing.T) {
	t.Parallel()

	records := fixture.NewGenerator(fixture.NewSynthesizer(11), nil).Generate(3333)
	s, err := Compute(records)
	require.NoError(t, err)

	var total float64
	for _, c := range s.CategoryShares() {
		total += s.Percent(c.Count)
	}
	assert.InDelta(t, 100.0, total, 1e-6)

	var bucketTotal int
	for _, b := range s.PriceBuckets {
		bucketTotal += b.Count
	}
	assert.Equal(t, len(records), bucketTotal)
}

func TestCompute_Empty(t *testing.T) {
	t.Parallel()

	for _, records := range [][]fixture.Product{nil, {}} {
		s, err := Compute(records)
		require.NoError(t, err)
		assert.Zero(t, s.Total)
		assert.Zero(t, s.Percent(0))
		assert.Empty(t, s.TopCategories(DefaultTop))

		var buf bytes.Buffer
		s.Print(&buf, DefaultTop)
		assert.Contains(t, buf.String(), "no data")
		assert.NotContains(t, buf.String(), "%")
	}

	var zero Stats
	assert.NotPanics(t, func() { zero.Print(&bytes.Buffer{}, DefaultTop) })
}

func TestCompute_InvalidPrice(t *testing.T) {
	t.Parallel()

	_, err := Compute([]fixture.Product{
		product("1.00", "A", "durability", "A"),
		product("12,50", "A", "durability", "A"),
	})
	assert.ErrorIs(t, err, ErrInvalidPrice)
	assert.Contains(t, err.Error(), "row 2")
}

func TestPrint(t *testing.T) {
	t.Parallel()

	records := []fixture.Product{
		product("10.00", "A", "engineSystem", "Bosch"),
		product("2000.00", "ABC", "brakeSystem", "Bosch"),
	}

	var buf bytes.Buffer
	require.NoError(t, Print(&buf, records, 1))
	out := buf.String()

	assert.Contains(t, out, "Total records:        2")
	assert.Contains(t, out, "Description length:   1 - 3 chars")
	assert.Contains(t, out, "Average description:  2.0 chars")
	assert.Contains(t, out, "<100")
	assert.Contains(t, out, "(50.0%)")
	assert.Contains(t, out, "Categories:")
	assert.Contains(t, out, "Top 1 categories:")

	// every category is in the frequency table; ties rank by name, so only
	// brakeSystem is repeated in the top-1 ranking
	assert.Equal(t, 2, strings.Count(out, "brakeSystem"))
	assert.Equal(t, 1, strings.Count(out, "engineSystem"))
	assert.Less(t, strings.Index(out, "Categories:"), strings.Index(out, "engineSystem"))

	err := Print(&buf, []fixture.Product{product("n/a", "A", "x", "y")}, 1)
	assert.ErrorIs(t, err, ErrInvalidPrice)
}
