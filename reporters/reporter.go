package reporters

import (
	"fmt"
	"io"
	"strings"
	"time"

	"bikeshare/dataset"

	log "github.com/sirupsen/logrus"
)

const noDataMessage = "No data available for the selected filters."

// Reporter computes and prints one category of statistics of a Dataset. Implementations never
// receive an empty Dataset.
type Reporter interface {
	GetType() string
	GetBanner() string
	Report(d *dataset.Dataset, out io.Writer)
}

// separatorWidther is implemented by reporters whose block ends with a separator of their own
// width instead of the Runner one
type separatorWidther interface {
	GetSeparatorWidth() int
}

// Defaults returns the reporters in the order they are shown to the user
func Defaults() []Reporter {
	return []Reporter{
		NewTimeReporter(),
		NewStationReporter(),
		NewDurationReporter(),
		NewUserReporter(),
	}
}

// Runner prints each report preceded by its banner and followed by the time it took and a
// separator
type Runner struct {
	out            io.Writer
	separatorWidth int
	reporters      []Reporter
}

func NewRunner(out io.Writer, separatorWidth int, reporters ...Reporter) *Runner {
	return &Runner{
		out:            out,
		separatorWidth: separatorWidth,
		reporters:      reporters,
	}
}

func (r *Runner) Run(d *dataset.Dataset) {
	for _, reporter := range r.reporters {
		r.run(reporter, d)
	}
}

func (r *Runner) run(reporter Reporter, d *dataset.Dataset) {
	_, _ = fmt.Fprintf(r.out, "\n%s\n\n", bannerStyle.Render(reporter.GetBanner()))
	startTime := time.Now()

	if d.IsEmpty() {
		_, _ = fmt.Fprintln(r.out, warningStyle.Render(noDataMessage))
	} else {
		reporter.Report(d, r.out)
	}

	elapsed := time.Since(startTime)
	log.Debugf("[reporter: %s][city: %s][status: OK] report of %v trips done in %s", reporter.GetType(), d.GetSchema().GetCity(), d.Len(), elapsed)

	separatorWidth := r.separatorWidth
	if sw, ok := reporter.(separatorWidther); ok {
		separatorWidth = sw.GetSeparatorWidth()
	}

	_, _ = fmt.Fprintf(r.out, "\n%s\n", dimStyle.Render(fmt.Sprintf("This took %v seconds.", elapsed.Seconds())))
	_, _ = fmt.Fprintln(r.out, strings.Repeat("-", separatorWidth))
}

func printLine(out io.Writer, label string, value any) {
	_, _ = fmt.Fprintf(out, "%s %v\n", labelStyle.Render(label), value)
}
