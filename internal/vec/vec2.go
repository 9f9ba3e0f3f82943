package vec

import "math"

// Vec2 представляет координаты колонки на горизонтальной плоскости (X, Z)
type Vec2 struct {
	X, Z int
}

// WithY поднимает колонку до трёхмерной позиции на высоте y
func (v Vec2) WithY(y int) Vec3 {
	return Vec3{X: v.X, Y: y, Z: v.Z}
}

// DistanceTo вычисляет расстояние до другой колонки
func (v Vec2) DistanceTo(other Vec2) float64 {
	dx := float64(v.X - other.X)
	dz := float64(v.Z - other.Z)
	return math.Sqrt(dx*dx + dz*dz)
}
