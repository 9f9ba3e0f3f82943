package world

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/annel0/terrain-map/internal/logging"
	"github.com/annel0/terrain-map/internal/util"
	"github.com/annel0/terrain-map/internal/vec"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

// Константы эталонной генерации
const (
	DefaultScale     = 1000.0 // Делитель координат перед выборкой шума
	DefaultAmplitude = 50.0   // Множитель значения шума
)

var tracer = otel.Tracer("github.com/annel0/terrain-map/internal/world")

// NoiseSource задаёт детерминированное скалярное поле на плоскости
type NoiseSource interface {
	Noise2D(x, z float64) float64
}

// NewNoiseSource создаёт источник шума по имени алгоритма; по умолчанию Перлин
func NewNoiseSource(algorithm string, params util.NoiseParams) (NoiseSource, error) {
	switch algorithm {
	case "", util.AlgorithmPerlin:
		return util.NewPerlinSource(params), nil
	case util.AlgorithmSimplex:
		return util.NewSimplexSource(params), nil
	default:
		return nil, fmt.Errorf("noise: неизвестный алгоритм %q", algorithm)
	}
}

// Generator строит карту высот из когерентного шума
type Generator struct {
	Noise     NoiseSource
	Scale     float64  // Масштаб координат (K)
	Amplitude float64  // Амплитуда высоты
	WaterSeed vec.Vec2 // Колонка, которая после генерации становится водой
}

// NewGenerator создаёт генератор с шумом Перлина и эталонными константами
func NewGenerator(params util.NoiseParams) *Generator {
	return &Generator{
		Noise:     util.NewPerlinSource(params),
		Scale:     DefaultScale,
		Amplitude: DefaultAmplitude,
	}
}

// Generate строит карту с параметрами шума по умолчанию для остальных констант
func Generate(size Size, params util.NoiseParams) *TerrainMap {
	return NewGenerator(params).Generate(size)
}

// HeightAt вычисляет высоту колонки: floor(noise(x/K, z/K) * amplitude).
// Значения за пределами int8 насыщаются до -128 и 127.
func (g *Generator) HeightAt(x, z int) int8 {
	n := g.Noise.Noise2D(float64(x)/g.Scale, float64(z)/g.Scale)
	return clampHeight(math.Floor(n * g.Amplitude))
}

func clampHeight(h float64) int8 {
	switch {
	case math.IsNaN(h):
		return 0
	case h <= math.MinInt8:
		return math.MinInt8
	case h >= math.MaxInt8:
		return math.MaxInt8
	default:
		return int8(h)
	}
}

// Generate заполняет карту и ставит воду в WaterSeed
func (g *Generator) Generate(size Size) *TerrainMap {
	return g.GenerateContext(context.Background(), size)
}

// GenerateContext работает как Generate, но с трассировкой в переданном контексте
func (g *Generator) GenerateContext(ctx context.Context, size Size) *TerrainMap {
	_, span := tracer.Start(ctx, "world.Generate")
	defer span.End()

	start := time.Now()
	m := NewTerrainMap(size)
	b := m.bounds

	for x := b.MinX; x < b.MaxX; x++ {
		for z := b.MinZ; z < b.MaxZ; z++ {
			h := g.HeightAt(x, z)
			ix, iz := b.Index(vec.Vec3{X: x, Z: z})
			m.columns[ix][iz] = Column{Surface: ClassifyHeight(h), Height: h}
		}
	}

	m.SetSurface(g.WaterSeed.WithY(0), Water)

	elapsed := time.Since(start)
	generationDuration.Observe(elapsed.Seconds())
	generatedColumns.Add(float64(size.Width) * float64(size.Height))

	fingerprint := m.Fingerprint()
	span.SetAttributes(
		attribute.Int("world.width", int(size.Width)),
		attribute.Int("world.height", int(size.Height)),
		attribute.String("world.fingerprint", fmt.Sprintf("%016x", fingerprint)),
	)

	log := logging.GetWorldLogger()
	log.Info("Карта %dx%d сгенерирована за %s, fingerprint=%016x", size.Width, size.Height, elapsed, fingerprint)
	log.Debug("Поверхности: %v", m.SurfaceHistogram())

	return m
}
