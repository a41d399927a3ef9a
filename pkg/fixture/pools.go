package fixture

// Categories are the automotive part categories used by the web catalog.
var Categories = []string{
	"engineSystem",
	"brakeSystem",
	"coolingSystem",
	"electricalSystem",
	"exhaustSystem",
	"transmissionSystem",
	"exteriorAccessories",
	"tireSystem",
	"durability",
	"otherAccessories",
}

// Brands mixes real manufacturers with synthetic names of increasing length
// so the client has to render labels of every size.
var Brands = []string{
	"Brembo", "Mann", "K&N", "NGK", "Bilstein", "Michelin", "Osram", "Bosch",
	"Continental", "Denso", "Delphi", "Valeo", "Mahle", "Pierburg", "Sachs",
	"ZF", "TRW", "Febi", "Lemförder", "Corteco", "Elring", "Victor Reinz",
	"INA", "FAG", "SKF", "Timken", "Gates", "Dayco", "ContiTech", "Hutchinson",
	"A", "AB", "ABC", "ABCD", "ABCDE", "ABCDEF", "ABCDEFG", "ABCDEFGH",
}

// DescriptionTemplates may contain {adjective}, {product_type} and {benefit}.
// Templates without any placeholder are emitted verbatim.
var DescriptionTemplates = []string{
	"Premium {adjective} {product_type} for enhanced {benefit}",
	"High-quality {product_type} for {benefit}",
	"Advanced {adjective} {product_type} improved {benefit}",
	"Professional grade {product_type} with {adjective} technology",
	"Ultra-premium {adjective} {product_type} designed for maximum {benefit}",
	"State {product_type} cutting-edge {adjective}  {benefit}",
	"A", "AB", "ABC", "ABCD", "ABCDE",
	"This is an the product experience.",
}

var Adjectives = []string{
	"ceramic", "synthetic", "high-performance", "premium", "professional",
	"advanced", "ultra-premium", "heavy-duty", "lightweight", "durable",
	"efficient", "reliable", "innovative", "precision",
}

var ProductTypes = []string{
	"brake pads", "oil filter", "air filter", "spark plugs", "shock absorber",
	"tire", "headlight", "wiper blades", "battery", "alternator", "starter",
	"radiator", "thermostat", "fuel pump", "exhaust pipe", "muffler",
}

var Benefits = []string{
	"stopping power", "engine protection", "fuel economy", "ride comfort",
	"visibility", "performance", "durability", "efficiency", "reliability",
	"safety", "comfort", "handling", "acceleration", "braking",
}

// Range is a numeric sub-range sampled uniformly in [Min, Max).
type Range struct {
	Min, Max float64
}

// Sample returns a uniform value within the range.
func (r Range) Sample(rng Rand) float64 {
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// WeightRanges in kilograms, from feather-light clips to heavy assemblies.
var WeightRanges = []Range{
	{0.1, 1.0},
	{1.0, 5.0},
	{5.0, 15.0},
	{15.0, 50.0},
	{0.01, 0.1},
	{50.0, 100.0},
}

// PriceRanges cover budget consumables up to luxury components.
var PriceRanges = []Range{
	{10, 100},
	{100, 500},
	{500, 1500},
	{1500, 5000},
	{1, 10},
	{5000, 10000},
}

// Pick returns a uniformly chosen element of pool. pool must not be empty.
func Pick[T any](rng Rand, pool []T) T {
	return pool[rng.IntN(len(pool))]
}
