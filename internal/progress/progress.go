// Package progress reports batch generation progress to a terminal.
package progress

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"

	"pkg.jsn.cam/partsfixture/pkg/fixture"
)

var (
	_ fixture.Progress = (*Log)(nil)
	_ fixture.Progress = (*Bar)(nil)
)

// Log writes one log event per notification.
type Log struct {
	logger zerolog.Logger
}

func NewLog(logger zerolog.Logger) *Log {
	return &Log{logger: logger}
}

func (p *Log) Generated(done, total int) {
	p.logger.Info().Int("done", done).Int("total", total).Msgf("generated %d records", done)
}

func (p *Log) Done(total int) {
	p.logger.Info().Int("total", total).Msg("generation complete")
}

// Bar draws a progress bar that advances on every notification.
type Bar struct {
	bar *progressbar.ProgressBar
}

// NewBar renders to w, usually os.Stderr.
func NewBar(w io.Writer, total int) *Bar {
	return &Bar{
		bar: progressbar.NewOptions(total,
			progressbar.OptionSetWriter(w),
			progressbar.OptionSetDescription("generating"),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWidth(40),
			progressbar.OptionClearOnFinish(),
		),
	}
}

func (p *Bar) Generated(done, _ int) {
	_ = p.bar.Set(done)
}

func (p *Bar) Done(total int) {
	_ = p.bar.Set(total)
	_ = p.bar.Finish()
}
