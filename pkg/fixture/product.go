package fixture

import "fmt"

// Product is one synthesized catalog entry. All fields are pre-formatted
// strings, exactly as they appear in the CSV file.
type Product struct {
	Weight      string `json:"weight"`
	Price       string `json:"price"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Brand       string `json:"brand"`
	PartNumber  string `json:"partNumber"`
}

var header = []string{"weight", "price", "description", "category", "brand", "partNumber"}

// Header returns the CSV column names in file order.
func Header() []string {
	out := make([]string, len(header))
	copy(out, header)
	return out
}

// Fields returns the record values in Header order.
func (p Product) Fields() []string {
	return []string{p.Weight, p.Price, p.Description, p.Category, p.Brand, p.PartNumber}
}

// FromFields builds a Product from a row in Header order.
func FromFields(fields []string) (Product, error) {
	if len(fields) != len(header) {
		return Product{}, fmt.Errorf("%w: got %d, want %d", ErrColumnCount, len(fields), len(header))
	}

	return Product{
		Weight:      fields[0],
		Price:       fields[1],
		Description: fields[2],
		Category:    fields[3],
		Brand:       fields[4],
		PartNumber:  fields[5],
	}, nil
}
