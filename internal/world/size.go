package world

import (
	"fmt"

	"github.com/annel0/terrain-map/internal/vec"
)

// Предельные размеры карты
const (
	MaxSide    = 1 << 16 // колонок по одной оси
	MaxColumns = 1 << 24 // колонок всего
)

// Size задаёт горизонтальный размер карты в колонках.
// Вертикальную ось не ограничивает.
type Size struct {
	Width  uint32 `json:"width"`
	Height uint32 `json:"height"`
}

// NewSize создаёт размер карты
func NewSize(width, height uint32) Size {
	return Size{Width: width, Height: height}
}

// Validate проверяет, что карту такого размера можно разместить в памяти
func (s Size) Validate() error {
	if s.Width > MaxSide || s.Height > MaxSide {
		return fmt.Errorf("размер %dx%d: сторона больше %d", s.Width, s.Height, MaxSide)
	}
	if uint64(s.Width)*uint64(s.Height) > MaxColumns {
		return fmt.Errorf("размер %dx%d: больше %d колонок", s.Width, s.Height, MaxColumns)
	}
	return nil
}

// Bounds хранит полуоткрытые границы карты [Min, Max) по X и Z, отцентрированные около начала координат.
type Bounds struct {
	MinX int `json:"min_x"`
	MaxX int `json:"max_x"`
	MinZ int `json:"min_z"`
	MaxZ int `json:"max_z"`
}

// NewBounds вычисляет границы: min = -floor(dim/2), max = min + dim.
func NewBounds(size Size) Bounds {
	minX := 0 - int(size.Width/2)
	minZ := 0 - int(size.Height/2)
	return Bounds{
		MinX: minX,
		MaxX: minX + int(size.Width),
		MinZ: minZ,
		MaxZ: minZ + int(size.Height),
	}
}

// Contains проверяет, лежит ли позиция внутри карты. Y не ограничен.
func (b Bounds) Contains(pos vec.Vec3) bool {
	return pos.X >= b.MinX && pos.X < b.MaxX && pos.Z >= b.MinZ && pos.Z < b.MaxZ
}

// Index переводит позицию в индексы массива колонок: coord + |min|.
// Результат имеет смысл только если Contains(pos).
func (b Bounds) Index(pos vec.Vec3) (ix, iz int) {
	return pos.X + abs(b.MinX), pos.Z + abs(b.MinZ)
}

// Position обращает Index: мировая колонка для индексов массива
func (b Bounds) Position(ix, iz int) vec.Vec2 {
	return vec.Vec2{X: ix - abs(b.MinX), Z: iz - abs(b.MinZ)}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
