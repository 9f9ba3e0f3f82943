package world

import (
	"testing"

	"github.com/annel0/terrain-map/internal/vec"
	"github.com/stretchr/testify/assert"
)

func TestNewBounds(t *testing.T) {
	tests := []struct {
		size Size
		want Bounds
	}{
		{NewSize(11, 10), Bounds{MinX: -5, MaxX: 6, MinZ: -5, MaxZ: 5}},
		{NewSize(20, 20), Bounds{MinX: -10, MaxX: 10, MinZ: -10, MaxZ: 10}},
		{NewSize(1, 1), Bounds{MinX: 0, MaxX: 1, MinZ: 0, MaxZ: 1}},
		{NewSize(3, 2), Bounds{MinX: -1, MaxX: 2, MinZ: -1, MaxZ: 1}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NewBounds(tt.size), "Границы для %+v", tt.size)
	}
}

func TestBounds_Contains(t *testing.T) {
	b := NewBounds(NewSize(11, 10))

	tests := []struct {
		name string
		pos  vec.Vec3
		want bool
	}{
		{"угол -5,-5", vec.New3(-5, -5, -5), true},
		{"за левым краем", vec.New3(-6, -5, -5), false},
		{"за ближним краем", vec.New3(-5, -5, -6), false},
		{"Y не ограничен снизу", vec.New3(-5, -6, -5), true},
		{"дальний угол 5,4", vec.New3(5, -5, 4), true},
		{"за правым краем", vec.New3(6, -5, 4), false},
		{"за дальним краем", vec.New3(5, -5, 6), false},
		{"max_z не входит", vec.New3(0, 0, 5), false},
		{"Y не ограничен сверху", vec.New3(0, 1_000_000, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.Contains(tt.pos))
		})
	}
}

func TestBounds_IndexCoversRange(t *testing.T) {
	for _, size := range []Size{NewSize(11, 10), NewSize(20, 20), NewSize(7, 3), NewSize(1, 4)} {
		b := NewBounds(size)
		seen := make(map[[2]int]bool)

		for x := b.MinX; x < b.MaxX; x++ {
			for z := b.MinZ; z < b.MaxZ; z++ {
				ix, iz := b.Index(vec.New3(x, 0, z))
				assert.GreaterOrEqual(t, ix, 0)
				assert.Less(t, ix, int(size.Width))
				assert.GreaterOrEqual(t, iz, 0)
				assert.Less(t, iz, int(size.Height))
				seen[[2]int{ix, iz}] = true

				assert.Equal(t, vec.Vec2{X: x, Z: z}, b.Position(ix, iz), "Position должна обращать Index")
			}
		}
		assert.Len(t, seen, int(size.Width*size.Height), "Каждая колонка %+v должна получить свой индекс", size)
	}
}

func TestSize_Validate(t *testing.T) {
	assert.NoError(t, NewSize(200, 200).Validate())
	assert.NoError(t, NewSize(MaxSide, MaxColumns/MaxSide).Validate())
	assert.NoError(t, NewSize(0, 0).Validate())

	assert.Error(t, NewSize(MaxSide+1, 1).Validate())
	assert.Error(t, NewSize(1, MaxSide+1).Validate())
	assert.Error(t, NewSize(MaxSide, MaxSide).Validate(), "Произведение больше MaxColumns")
	assert.Error(t, NewSize(0xFFFFFFFF, 0xFFFFFFFF).Validate())
}
