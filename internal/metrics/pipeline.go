package metrics

import "github.com/prometheus/client_golang/prometheus"

// Pipeline Prometheus metrics for the classify/retrieve/generate path.
var (
	IntentClassificationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ecomassist",
			Name:      "intent_classifications_total",
			Help:      "Total queries classified, by intent kind",
		},
		[]string{"intent"},
	)

	GuardRejectionsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "ecomassist",
			Name:      "guard_rejections_total",
			Help:      "Queries short-circuited for a missing order identifier",
		},
	)

	RetrievalResultsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ecomassist",
			Name:      "retrieval_results_total",
			Help:      "Retrieval outcomes, by result (grounded/empty)",
		},
		[]string{"result"},
	)

	EmbeddingRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ecomassist",
			Name:      "embedding_requests_total",
			Help:      "Total number of embedding requests",
		},
		[]string{"provider", "model", "status"},
	)

	EmbeddingRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "ecomassist",
			Name:      "embedding_request_duration_seconds",
			Help:      "Embedding request duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"provider", "model"},
	)

	EmbeddingCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ecomassist",
			Name:      "embedding_cache_total",
			Help:      "Embedding cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)

	GenerationRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ecomassist",
			Name:      "generation_requests_total",
			Help:      "Total number of generation requests",
		},
		[]string{"provider", "model", "status"},
	)

	GenerationRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "ecomassist",
			Name:      "generation_request_duration_seconds",
			Help:      "Generation request duration in seconds",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"provider", "model"},
	)

	LedgerDuplicatesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ecomassist",
			Name:      "ledger_duplicates_total",
			Help:      "Mutating actions skipped because the order was already processed",
		},
		[]string{"action"},
	)

	CorpusEntriesIndexed = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "ecomassist",
			Name:      "corpus_entries_indexed",
			Help:      "Entries in the currently published FAQ index snapshot",
		},
	)
)

var pipelineMetricsRegistered bool

// RegisterPipelineMetrics registers pipeline metrics. Must be called once from main.
func RegisterPipelineMetrics() {
	if pipelineMetricsRegistered {
		return
	}
	prometheus.MustRegister(IntentClassificationsTotal)
	prometheus.MustRegister(GuardRejectionsTotal)
	prometheus.MustRegister(RetrievalResultsTotal)
	prometheus.MustRegister(EmbeddingRequestsTotal)
	prometheus.MustRegister(EmbeddingRequestDuration)
	prometheus.MustRegister(EmbeddingCacheTotal)
	prometheus.MustRegister(GenerationRequestsTotal)
	prometheus.MustRegister(GenerationRequestDuration)
	prometheus.MustRegister(LedgerDuplicatesTotal)
	prometheus.MustRegister(CorpusEntriesIndexed)
	pipelineMetricsRegistered = true
}
