package util

import "github.com/ojrac/opensimplex-go"

// Алгоритмы шума
const (
	AlgorithmPerlin  = "perlin"
	AlgorithmSimplex = "simplex"
)

// SimplexSource реализует фрактальный OpenSimplex: октавы складываются с весом persistence^i,
// частота каждой следующей октавы умножается на lacunarity.
type SimplexSource struct {
	params NoiseParams
	noise  opensimplex.Noise
	norm   float64
}

// NewSimplexSource создаёт источник OpenSimplex-шума
func NewSimplexSource(params NoiseParams) *SimplexSource {
	var norm, amp float64 = 0, 1
	for i := int32(0); i < params.Octaves; i++ {
		norm += amp
		amp *= params.Persistence
	}
	if norm == 0 {
		norm = 1
	}
	return &SimplexSource{
		params: params,
		noise:  opensimplex.New(params.Seed),
		norm:   norm,
	}
}

// Noise2D возвращает значение в диапазоне [-1, 1]
func (s *SimplexSource) Noise2D(x, z float64) float64 {
	freq, amp := s.params.Frequency, 1.0
	var sum float64
	for i := int32(0); i < s.params.Octaves; i++ {
		sum += s.noise.Eval2(x*freq, z*freq) * amp
		freq *= s.params.Lacunarity
		amp *= s.params.Persistence
	}
	return sum / s.norm
}

// Params возвращает параметры, с которыми был создан источник
func (s *SimplexSource) Params() NoiseParams {
	return s.params
}
