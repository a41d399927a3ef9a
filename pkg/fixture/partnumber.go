package fixture

import "fmt"

// PartNumberScheme selects one of the part number layouts. Several layouts
// only depend on the record index, so numbers are not unique across a batch.
type PartNumberScheme int

const (
	SchemeStandard     PartNumberScheme = iota // BP-001
	SchemeLetter                               // A0001
	SchemeDoubleLetter                         // XX-00001
	SchemePrefixed                             // P000001
	SchemeNumeric                              // 00000001
	SchemeComposite                            // PART-001-A

	schemeCount
)

var (
	letterTokens       = []string{"A", "B", "C"}
	doubleLetterTokens = []string{"XX", "YY", "ZZ"}
)

func (s PartNumberScheme) String() string {
	switch s {
	case SchemeStandard:
		return "standard"
	case SchemeLetter:
		return "letter"
	case SchemeDoubleLetter:
		return "double-letter"
	case SchemePrefixed:
		return "prefixed"
	case SchemeNumeric:
		return "numeric"
	case SchemeComposite:
		return "composite"
	default:
		return fmt.Sprintf("scheme(%d)", int(s))
	}
}

// RandomScheme picks a scheme uniformly.
func RandomScheme(rng Rand) PartNumberScheme {
	return PartNumberScheme(rng.IntN(int(schemeCount)))
}

// Format renders the part number for index. Schemes with a letter token draw
// it from rng; the others leave rng untouched.
func (s PartNumberScheme) Format(rng Rand, index int) string {
	switch s {
	case SchemeLetter:
		return fmt.Sprintf("%s%04d", Pick(rng, letterTokens), index)
	case SchemeDoubleLetter:
		return fmt.Sprintf("%s-%05d", Pick(rng, doubleLetterTokens), index)
	case SchemePrefixed:
		return fmt.Sprintf("P%06d", index)
	case SchemeNumeric:
		return fmt.Sprintf("%08d", index)
	case SchemeComposite:
		return fmt.Sprintf("PART-%03d-%s", index, Pick(rng, letterTokens))
	default:
		return fmt.Sprintf("BP-%03d", index)
	}
}
