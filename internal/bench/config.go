package bench

import "github.com/pkg/errors"

// Config describes one benchmark run: Count random keys drawn uniformly from
// [MinKey, MaxKey) are inserted into a tree of the given degree, then the
// tree is traversed and checked. The defaults follow the original harness.
type Config struct {
	Degree      int
	Count       int
	Rounds      int
	Seed        int64
	MinKey      int
	MaxKey      int
	ReportEvery int
	Verify      bool
	MetricsAddr string
}

func DefaultConfig() Config {
	return Config{
		Degree:      15,
		Count:       1_000_000,
		Rounds:      1,
		Seed:        1,
		MinKey:      10_000_000,
		MaxKey:      100_000_000,
		ReportEvery: 1_000_000,
	}
}

func (c *Config) Validate() error {
	switch {
	case c.Degree < 2:
		return errors.Errorf("degree must be at least 2, got %d", c.Degree)
	case c.Count < 0:
		return errors.Errorf("count must not be negative, got %d", c.Count)
	case c.Rounds < 1:
		return errors.Errorf("rounds must be at least 1, got %d", c.Rounds)
	case c.MaxKey <= c.MinKey, c.MaxKey-c.MinKey <= 0:
		// The second case is a span that overflows int.
		return errors.Errorf("key range [%d, %d) is empty or wider than an int", c.MinKey, c.MaxKey)
	case c.ReportEvery < 1:
		return errors.Errorf("report interval must be positive, got %d", c.ReportEvery)
	}
	return nil
}
