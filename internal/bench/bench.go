package bench

import (
	"context"
	"math/rand"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"
	btree "github.com/lMiaul/Hola-Jesus"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var (
	ErrUnsorted      = errors.New("traversal is not in ascending order")
	ErrCountMismatch = errors.New("traversal length differs from inserted count")
)

// Round holds the timings of one fill of the tree.
type Round struct {
	Insert   time.Duration
	Traverse time.Duration
}

type Result struct {
	Len    int
	Height int
	Rounds []Round
}

// Run inserts cfg.Count random keys into a fresh tree, traverses it and
// checks the output, cfg.Rounds times. Later rounds reuse the nodes of the
// previous one through Reset. A nil m gets a private Metrics.
func Run(ctx context.Context, cfg Config, log logrus.FieldLogger, m *Metrics) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid benchmark config")
	}
	if m == nil {
		m = NewMetrics()
	}
	tree, err := btree.New[int](cfg.Degree, btree.WithUpdater[int](m), btree.WithLogger[int](log))
	if err != nil {
		return nil, errors.Wrap(err, "building tree")
	}
	rng := rand.New(rand.NewSource(cfg.Seed))
	res := &Result{}
	for i := 0; i < cfg.Rounds; i++ {
		if i > 0 {
			tree.Reset()
		}
		r, err := runRound(ctx, cfg, log.WithField("round", i+1), tree, rng, m)
		if err != nil {
			return nil, errors.Wrapf(err, "round %d", i+1)
		}
		res.Rounds = append(res.Rounds, r)
	}
	res.Len = tree.Len()
	res.Height = tree.Height()
	return res, nil
}

func runRound(
	ctx context.Context,
	cfg Config,
	log logrus.FieldLogger,
	tree *btree.BTree[int],
	rng *rand.Rand,
	m *Metrics,
) (Round, error) {
	var r Round
	span := cfg.MaxKey - cfg.MinKey
	log.WithFields(logrus.Fields{
		"degree": cfg.Degree,
		"count":  humanize.Comma(int64(cfg.Count)),
	}).Info("inserting keys")

	start := time.Now()
	since := start
	for n := 0; n < cfg.Count; n++ {
		tree.Insert(rng.Intn(span) + cfg.MinKey)
		if (n+1)%cfg.ReportEvery == 0 {
			if err := ctx.Err(); err != nil {
				return r, errors.Wrapf(err, "interrupted after %d keys", n+1)
			}
			m.Observe(tree)
			log.Infof("inserted %s keys in %s; %s keys/s",
				humanize.Comma(int64(n+1)),
				time.Since(start).Round(time.Millisecond),
				humanize.Comma(int64(float64(cfg.ReportEvery)/time.Since(since).Seconds())))
			since = time.Now()
		}
	}
	r.Insert = time.Since(start)
	m.Observe(tree)

	start = time.Now()
	count, prev := 0, 0
	for k := range tree.All() {
		if count > 0 && k < prev {
			return r, errors.Wrapf(ErrUnsorted, "key %d follows %d at position %d", k, prev, count)
		}
		prev = k
		count++
	}
	r.Traverse = time.Since(start)
	if count != cfg.Count {
		return r, errors.Wrapf(ErrCountMismatch, "traversed %d keys, inserted %d", count, cfg.Count)
	}

	if cfg.Verify {
		if err := tree.Verify(); err != nil {
			return r, err
		}
		log.Debug("tree invariants hold")
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	log.WithFields(logrus.Fields{
		"insert":     r.Insert,
		"traverse":   r.Traverse,
		"height":     tree.Height(),
		"mem_alloc":  humanize.Bytes(mem.Alloc),
		"mem_sys":    humanize.Bytes(mem.Sys),
		"mem_num_gc": humanize.Comma(int64(mem.NumGC)),
	}).Info("round complete")
	return r, nil
}
