package fixture

// DefaultProgressEvery is how many records are produced between progress
// notifications.
const DefaultProgressEvery = 5000

// Progress receives notifications while a batch is generated.
type Progress interface {
	// Generated is called after every Generator.Every records.
	Generated(done, total int)
	// Done is called once after the last record.
	Done(total int)
}

// Generator produces ordered batches of records.
type Generator struct {
	Synth    *Synthesizer
	Every    int      // progress interval, DefaultProgressEvery when <= 0
	Progress Progress // may be nil
}

// NewGenerator returns a Generator over synth with the default interval.
func NewGenerator(synth *Synthesizer, progress Progress) *Generator {
	return &Generator{
		Synth:    synth,
		Every:    DefaultProgressEvery,
		Progress: progress,
	}
}

// Generate returns exactly count records; record i (1-based) is
// Synthesize(i). A non-positive count yields an empty slice.
func (g *Generator) Generate(count int) []Product {
	if count < 0 {
		count = 0
	}

	every := g.Every
	if every <= 0 {
		every = DefaultProgressEvery
	}

	products := make([]Product, 0, count)
	for i := 1; i <= count; i++ {
		products = append(products, g.Synth.Synthesize(i))

		if g.Progress != nil && i%every == 0 {
			g.Progress.Generated(i, count)
		}
	}

	if g.Progress != nil {
		g.Progress.Done(len(products))
	}

	return products
}
