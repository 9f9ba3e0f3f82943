package sampler

import (
	"context"
	"time"

	"github.com/annel0/terrain-map/internal/logging"
	"github.com/annel0/terrain-map/internal/vec"
	"github.com/annel0/terrain-map/internal/world"
	"github.com/annel0/terrain-map/internal/world/block"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

// Sampler обходит чанки так же, как это делает хост при построении мешей:
// каждый воркер берёт свой VoxelSource у фабрики и классифицирует все позиции чанка.
type Sampler struct {
	factory   world.VoxelSourceFactory
	chunkSize int
	workers   int
}

// ChunkSummary содержит итог классификации одного чанка
type ChunkSummary struct {
	Coord     vec.Vec3       `json:"coord"`
	Unset     int            `json:"unset"`
	Air       int            `json:"air"`
	Solid     int            `json:"solid"`
	Materials map[string]int `json:"materials,omitempty"`
}

var (
	sampledChunks = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "terrain",
		Subsystem: "sampler",
		Name:      "chunks_total",
		Help:      "Число обработанных чанков.",
	})
	sampledVoxels = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "terrain",
		Subsystem: "sampler",
		Name:      "voxels_total",
		Help:      "Число классифицированных позиций по виду вокселя.",
	}, []string{"kind"})
)

func init() {
	prometheus.MustRegister(sampledChunks, sampledVoxels)
}

var tracer = otel.Tracer("github.com/annel0/terrain-map/internal/sampler")

// New создаёт сэмплер; chunkSize и workers меньше 1 заменяются на 1
func New(factory world.VoxelSourceFactory, chunkSize, workers int) *Sampler {
	if chunkSize < 1 {
		chunkSize = 1
	}
	if workers < 1 {
		workers = 1
	}
	return &Sampler{factory: factory, chunkSize: chunkSize, workers: workers}
}

// ChunkSize возвращает длину ребра чанка в вокселях
func (s *Sampler) ChunkSize() int {
	return s.chunkSize
}

// SampleChunk классифицирует все позиции одного чанка
func (s *Sampler) SampleChunk(coord vec.Vec3) ChunkSummary {
	src := s.factory.VoxelLookup(coord)
	origin := coord.Scale(s.chunkSize)
	perMaterial := make([]int, len(block.Materials()))

	summary := ChunkSummary{Coord: coord}
	for x := 0; x < s.chunkSize; x++ {
		for y := 0; y < s.chunkSize; y++ {
			for z := 0; z < s.chunkSize; z++ {
				v := src.Voxel(origin.Add(vec.Vec3{X: x, Y: y, Z: z}))
				switch v.Kind {
				case world.VoxelUnset:
					summary.Unset++
				case world.VoxelAir:
					summary.Air++
				case world.VoxelSolid:
					summary.Solid++
					if v.Material.IsValid() {
						perMaterial[v.Material]++
					}
				}
			}
		}
	}

	for m, n := range perMaterial {
		if n == 0 {
			continue
		}
		if summary.Materials == nil {
			summary.Materials = make(map[string]int)
		}
		summary.Materials[block.Material(m).String()] = n
	}

	sampledChunks.Inc()
	sampledVoxels.WithLabelValues("unset").Add(float64(summary.Unset))
	sampledVoxels.WithLabelValues("air").Add(float64(summary.Air))
	sampledVoxels.WithLabelValues("solid").Add(float64(summary.Solid))
	return summary
}

// SampleChunks обрабатывает чанки параллельно, не более workers одновременно.
// Результаты идут в порядке coords. Отмена контекста прекращает выдачу новых чанков.
func (s *Sampler) SampleChunks(ctx context.Context, coords []vec.Vec3) ([]ChunkSummary, error) {
	ctx, span := tracer.Start(ctx, "sampler.SampleChunks")
	defer span.End()
	span.SetAttributes(attribute.Int("sampler.chunks", len(coords)), attribute.Int("sampler.workers", s.workers))

	start := time.Now()
	results := make([]ChunkSummary, len(coords))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, coord := range coords {
		i, coord := i, coord
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = s.SampleChunk(coord)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return nil, err
	}

	logging.GetSamplerLogger().Debug("Обработано %d чанков (%d воркеров) за %s", len(coords), s.workers, time.Since(start))
	return results, nil
}

// ChunksAround перечисляет координаты чанков в кубе с ребром 2*radius+1 вокруг center
func ChunksAround(center vec.Vec3, radius int) []vec.Vec3 {
	if radius < 0 {
		return nil
	}
	side := 2*radius + 1
	coords := make([]vec.Vec3, 0, side*side*side)
	for dx := -radius; dx <= radius; dx++ {
		for dy := -radius; dy <= radius; dy++ {
			for dz := -radius; dz <= radius; dz++ {
				coords = append(coords, center.Add(vec.Vec3{X: dx, Y: dy, Z: dz}))
			}
		}
	}
	return coords
}

// Totals складывает сводки нескольких чанков
func Totals(summaries []ChunkSummary) ChunkSummary {
	var total ChunkSummary
	for _, s := range summaries {
		total.Unset += s.Unset
		total.Air += s.Air
		total.Solid += s.Solid
		for name, n := range s.Materials {
			if total.Materials == nil {
				total.Materials = make(map[string]int)
			}
			total.Materials[name] += n
		}
	}
	return total
}
