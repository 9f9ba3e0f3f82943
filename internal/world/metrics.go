package world

import "github.com/prometheus/client_golang/prometheus"

var (
	generationDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "terrain",
		Subsystem: "world",
		Name:      "generation_duration_seconds",
		Help:      "Длительность генерации карты.",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
	})
	generatedColumns = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "terrain",
		Subsystem: "world",
		Name:      "generated_columns_total",
		Help:      "Общее число сгенерированных колонок.",
	})
	publishedColumns = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "terrain",
		Subsystem: "world",
		Name:      "published_columns",
		Help:      "Колонки опубликованных карт по типу поверхности.",
	}, []string{"world", "surface"})
)

func init() {
	prometheus.MustRegister(generationDuration, generatedColumns, publishedColumns)
}
