package bench

import (
	"context"
	"net/http"

	btree "github.com/lMiaul/Hola-Jesus"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// Metrics counts tree events in a private registry. It is installed on the
// tree as its Updater.
type Metrics struct {
	Registry *prometheus.Registry

	Inserts    prometheus.Counter
	Splits     *prometheus.CounterVec
	RootSplits prometheus.Counter
	Height     prometheus.Gauge
	Size       prometheus.Gauge

	leafSplits, internalSplits prometheus.Counter
}

func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		Inserts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "btree_inserts_total",
			Help: "Keys placed into a leaf.",
		}),
		Splits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "btree_splits_total",
			Help: "Node splits by kind of node split.",
		}, []string{"kind"}),
		RootSplits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "btree_root_splits_total",
			Help: "Root splits, each adding one level to the tree.",
		}),
		Height: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "btree_height",
			Help: "Height of the tree.",
		}),
		Size: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "btree_size",
			Help: "Number of keys in the tree.",
		}),
	}
	m.leafSplits = m.Splits.WithLabelValues("leaf")
	m.internalSplits = m.Splits.WithLabelValues("internal")
	m.Registry.MustRegister(m.Inserts, m.Splits, m.RootSplits, m.Height, m.Size)
	return m
}

func (m *Metrics) Update(n btree.Node[int], md btree.UpdateMeta[int]) {
	switch md.Action {
	case btree.Insertion:
		m.Inserts.Inc()
	case btree.Split:
		if n.IsLeaf() {
			m.leafSplits.Inc()
		} else {
			m.internalSplits.Inc()
		}
	case btree.Grow:
		m.RootSplits.Inc()
	}
}

// Observe records the current shape of the tree.
func (m *Metrics) Observe(t *btree.BTree[int]) {
	m.Height.Set(float64(t.Height()))
	m.Size.Set(float64(t.Len()))
}

// Handler serves the registry in the Prometheus exposition format under
// /metrics.
func (m *Metrics) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{}))
	return mux
}

// Serve exposes Handler on addr until the returned shutdown function is
// called.
func (m *Metrics) Serve(addr string, log logrus.FieldLogger) func(context.Context) error {
	srv := &http.Server{Addr: addr, Handler: m.Handler()}
	go func() {
		log.WithField("addr", addr).Info("serving metrics")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("metrics server stopped")
		}
	}()
	return srv.Shutdown
}
