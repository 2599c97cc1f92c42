package bench

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
)

// Write prints a summary of the run. The first line keeps the format of the
// original harness.
func (r *Result) Write(w io.Writer) {
	var total time.Duration
	for _, round := range r.Rounds {
		total += round.Insert
	}
	fmt.Fprintf(w, "Execution time: %d seconds\n", int64(total/time.Second))

	bold := color.New(color.Bold)
	for i, round := range r.Rounds {
		var rate float64
		if round.Insert > 0 {
			rate = float64(r.Len) / round.Insert.Seconds()
		}
		fmt.Fprintf(w, "round %d: insert %s (%s keys/s), traverse %s\n",
			i+1,
			round.Insert.Round(time.Millisecond),
			humanize.Comma(int64(rate)),
			round.Traverse.Round(time.Millisecond))
	}
	bold.Fprintf(w, "%s keys, height %d\n", humanize.Comma(int64(r.Len)), r.Height)
}
