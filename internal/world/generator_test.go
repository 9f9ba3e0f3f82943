package world

import (
	"context"
	"math"
	"testing"

	"github.com/annel0/terrain-map/internal/util"
	"github.com/annel0/terrain-map/internal/vec"
	"github.com/annel0/terrain-map/internal/world/block"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rampNoise даёт линейный рельеф, покрывающий все пороги классификации
type rampNoise struct{}

func (rampNoise) Noise2D(x, z float64) float64 {
	return x*6 + z*0.5
}

func TestGenerate_Size20x20(t *testing.T) {
	m := Generate(NewSize(20, 20), util.DefaultNoiseParams())

	assert.Equal(t, NewSize(20, 20), m.Size())
	_, ok := m.Get(vec.New3(0, 0, 0))
	assert.True(t, ok, "Колонка (0,0) должна существовать")
}

func TestGenerate_WaterSeedAtOrigin(t *testing.T) {
	m := Generate(NewSize(20, 20), util.DefaultNoiseParams())

	col, ok := m.Get(vec.New3(0, 0, 0))
	require.True(t, ok)
	assert.Equal(t, Water, col.Surface)
	assert.Equal(t, Solid(block.WaterBrick), m.Classify(vec.New3(0, int(col.Height), 0)))
	assert.Equal(t, 1, m.SurfaceHistogram()[Water], "Вода ставится ровно в одну колонку")
}

func TestGenerate_Deterministic(t *testing.T) {
	params := util.DefaultNoiseParams()
	params.Seed = 20240601

	a := Generate(NewSize(33, 17), params)
	b := Generate(NewSize(33, 17), params)

	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	a.ForEach(func(pos vec.Vec2, col Column) {
		other, ok := b.Get(pos.WithY(0))
		require.True(t, ok)
		assert.Equal(t, col, other, "Колонка %v должна совпадать", pos)
	})
}

func TestGenerate_HeightsMatchNoise(t *testing.T) {
	params := util.DefaultNoiseParams()
	params.Seed = 7
	g := NewGenerator(params)
	src := util.NewPerlinSource(params)

	m := g.Generate(NewSize(12, 12))
	m.ForEach(func(pos vec.Vec2, col Column) {
		want := int8(int(math.Floor(src.Noise2D(float64(pos.X)/1000, float64(pos.Z)/1000) * 50)))
		assert.Equal(t, want, col.Height, "Высота в %v", pos)
		if pos != (vec.Vec2{}) {
			assert.Equal(t, ClassifyHeight(col.Height), col.Surface)
		}
	})
}

func TestGenerate_RockAndSnowNeverGenerated(t *testing.T) {
	g := &Generator{Noise: rampNoise{}, Scale: 1, Amplitude: 1, WaterSeed: vec.Vec2{X: 9, Z: 9}}
	m := g.GenerateContext(context.Background(), NewSize(20, 20))

	hist := m.SurfaceHistogram()
	assert.Zero(t, hist[Rock], "Rock недостижим при текущем порядке правил")
	assert.Zero(t, hist[Snow], "Snow недостижим при текущем порядке правил")
	assert.Positive(t, hist[Gravel])
	assert.Positive(t, hist[Sand])
	assert.Positive(t, hist[Grass])
	assert.Positive(t, hist[Stone])

	tallest := int8(-128)
	m.ForEach(func(_ vec.Vec2, col Column) {
		if col.Height > tallest {
			tallest = col.Height
		}
	})
	assert.Greater(t, tallest, int8(35), "Рельеф должен заходить выше порогов Rock и Snow")
}

func TestGenerate_RealNoiseSeeds(t *testing.T) {
	for _, seed := range []int64{0, 1, 42, 1337, -99} {
		params := util.DefaultNoiseParams()
		params.Seed = seed

		hist := Generate(NewSize(40, 40), params).SurfaceHistogram()
		assert.Zero(t, hist[Rock], "seed=%d", seed)
		assert.Zero(t, hist[Snow], "seed=%d", seed)
		assert.Equal(t, 1, hist[Water], "seed=%d", seed)
	}
}

func TestGenerate_WaterSeedOutsideIsNoop(t *testing.T) {
	g := &Generator{Noise: rampNoise{}, Scale: 1, Amplitude: 1, WaterSeed: vec.Vec2{X: 100, Z: 100}}
	m := g.Generate(NewSize(4, 4))

	assert.Zero(t, m.SurfaceHistogram()[Water])
}

// constNoise возвращает одно и то же значение во всех точках
type constNoise float64

func (c constNoise) Noise2D(_, _ float64) float64 {
	return float64(c)
}

func TestHeightAt_SaturatesOutsideInt8(t *testing.T) {
	tests := []struct {
		name      string
		noise     float64
		amplitude float64
		want      int8
	}{
		{"в диапазоне", 0.5, 50, 25},
		{"отрицательная в диапазоне", -0.5, 50, -25},
		{"выше 127", 0.9, 200, 127},
		{"ниже -128", -0.9, 200, -128},
		{"граница 127", 1, 127, 127},
		{"граница -128", -1, 128, -128},
		{"NaN", math.NaN(), 50, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &Generator{Noise: constNoise(tt.noise), Scale: 1, Amplitude: tt.amplitude}
			assert.Equal(t, tt.want, g.HeightAt(3, -4))
		})
	}
}

func TestGenerate_LargeAmplitudeKeepsPeaksHigh(t *testing.T) {
	g := &Generator{Noise: constNoise(0.9), Scale: 1, Amplitude: 200, WaterSeed: vec.Vec2{X: 50, Z: 50}}
	m := g.Generate(NewSize(3, 3))

	assert.Equal(t, map[SurfaceType]int{Stone: 9}, m.SurfaceHistogram(),
		"Высокие пики не должны превращаться в отрицательный Gravel")
}

func TestNewNoiseSource(t *testing.T) {
	params := util.DefaultNoiseParams()

	src, err := NewNoiseSource("", params)
	require.NoError(t, err)
	assert.IsType(t, &util.PerlinSource{}, src)

	src, err = NewNoiseSource(util.AlgorithmPerlin, params)
	require.NoError(t, err)
	assert.IsType(t, &util.PerlinSource{}, src)

	src, err = NewNoiseSource(util.AlgorithmSimplex, params)
	require.NoError(t, err)
	assert.IsType(t, &util.SimplexSource{}, src)

	_, err = NewNoiseSource("value", params)
	assert.Error(t, err)
}
