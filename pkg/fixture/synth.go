package fixture

import (
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const weightUnit = "kg"

// Rand is the subset of *rand.Rand the synthesizer draws from.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// Synthesizer builds independent product records from the package pools.
// It owns its random source, so one Synthesizer must not be shared between
// goroutines.
type Synthesizer struct {
	rand Rand
}

// NewSynthesizer returns a Synthesizer seeded with seed. The same seed
// always yields the same sequence of records.
func NewSynthesizer(seed uint64) *Synthesizer {
	return NewSynthesizerFromRand(rand.New(rand.NewPCG(seed, seed)))
}

// NewSynthesizerFromRand uses r as the random source.
func NewSynthesizerFromRand(r Rand) *Synthesizer {
	return &Synthesizer{rand: r}
}

// Synthesize builds the record for the 1-based index. Fields are drawn in
// column order; the part number is derived from index.
func (s *Synthesizer) Synthesize(index int) Product {
	return Product{
		Weight:      s.weight(),
		Price:       s.price(),
		Description: s.description(),
		Category:    Pick(s.rand, Categories),
		Brand:       Pick(s.rand, Brands),
		PartNumber:  RandomScheme(s.rand).Format(s.rand, index),
	}
}

// weight renders like "1.5kg" or "2.0kg": two decimals at most, one
// fractional digit kept on whole numbers.
func (s *Synthesizer) weight() string {
	return FormatWeight(Pick(s.rand, WeightRanges).Sample(s.rand))
}

// price always carries exactly two decimals.
func (s *Synthesizer) price() string {
	return FormatPrice(Pick(s.rand, PriceRanges).Sample(s.rand))
}

// roundCents rounds the binary value of v to two decimals, so 2.675
// (stored as 2.67499...) becomes 2.67.
func roundCents(v float64) decimal.Decimal {
	return decimal.RequireFromString(strconv.FormatFloat(v, 'f', 2, 64))
}

// FormatWeight renders a weight in kilograms with the unit suffix.
func FormatWeight(v float64) string {
	d := roundCents(v)
	if d.IsInteger() {
		return d.StringFixed(1) + weightUnit
	}
	return d.String() + weightUnit
}

// FormatPrice renders a price with exactly two decimals.
func FormatPrice(v float64) string {
	return roundCents(v).StringFixed(2)
}

func (s *Synthesizer) description() string {
	tmpl := Pick(s.rand, DescriptionTemplates)
	if !strings.Contains(tmpl, "{") {
		return tmpl
	}

	adjective := Pick(s.rand, Adjectives)
	productType := Pick(s.rand, ProductTypes)
	benefit := Pick(s.rand, Benefits)

	return strings.NewReplacer(
		"{adjective}", adjective,
		"{product_type}", productType,
		"{benefit}", benefit,
	).Replace(tmpl)
}
