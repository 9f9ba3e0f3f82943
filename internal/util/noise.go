package util

import (
	"github.com/aquilax/go-perlin"
)

// NoiseParams описывает когерентный шум, из которого строится рельеф.
type NoiseParams struct {
	Seed        int64   // Сид генератора
	Octaves     int32   // Количество октав
	Frequency   float64 // Множитель координат перед выборкой
	Lacunarity  float64 // Рост частоты от октавы к октаве
	Persistence float64 // Затухание амплитуды от октавы к октаве
}

// DefaultNoiseParams возвращает параметры эталонного мира
func DefaultNoiseParams() NoiseParams {
	return NoiseParams{
		Seed:        0,
		Octaves:     6,
		Frequency:   1.0,
		Lacunarity:  2.0,
		Persistence: 0.5,
	}
}

// PerlinSource представляет детерминированный 2D шум Перлина с фиксированными параметрами.
// После создания только читает свои таблицы, поэтому безопасен для конкурентного вызова.
type PerlinSource struct {
	params NoiseParams
	perlin *perlin.Perlin
}

// NewPerlinSource создаёт источник шума.
// go-perlin делит вклад каждой октавы на alpha и умножает координаты на beta,
// поэтому alpha = 1/persistence, beta = lacunarity.
func NewPerlinSource(params NoiseParams) *PerlinSource {
	alpha := 1.0 / params.Persistence
	return &PerlinSource{
		params: params,
		perlin: perlin.NewPerlin(alpha, params.Lacunarity, params.Octaves, params.Seed),
	}
}

// Noise2D возвращает значение шума для координат (x, z), примерно в диапазоне [-1, 1]
func (s *PerlinSource) Noise2D(x, z float64) float64 {
	f := s.params.Frequency
	return s.perlin.Noise2D(x*f, z*f)
}

// Params возвращает параметры, с которыми был создан источник
func (s *PerlinSource) Params() NoiseParams {
	return s.params
}
