package world

import (
	"sync"
	"testing"

	"github.com/annel0/terrain-map/internal/util"
	"github.com/annel0/terrain-map/internal/vec"
	"github.com/annel0/terrain-map/internal/world/block"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVoxelState_ZeroIsUnset(t *testing.T) {
	var v VoxelState
	assert.True(t, v.IsUnset())
	assert.False(t, v.IsSolid())
	assert.Equal(t, "unset", v.String())
	assert.Equal(t, "air", Air().String())
	assert.Equal(t, "solid(water_brick)", Solid(block.WaterBrick).String())
}

func TestHostContract(t *testing.T) {
	m := newFixtureMap(t)
	host := NewHostContract(m)

	path, tiles := host.Texture()
	assert.Equal(t, "voxel_textures_all.png", path)
	assert.Equal(t, uint32(85), tiles)

	assert.Equal(t, [3]uint32{49, 49, 49}, host.TextureIndices(block.SnowyBrick))
	assert.Equal(t, [3]uint32{9, 9, 9}, host.TextureIndices(block.FullBrick))

	// координата чанка не влияет на результат
	a := host.VoxelLookup(vec.New3(0, 0, 0))
	b := host.VoxelLookup(vec.New3(-3, 7, 12))
	for _, pos := range []vec.Vec3{vec.New3(-5, 8, -5), vec.New3(0, 2, 0), vec.New3(6, 0, 0)} {
		assert.Equal(t, m.Classify(pos), a.Voxel(pos))
		assert.Equal(t, a.Voxel(pos), b.Voxel(pos))
	}
}

func TestClassify_ConcurrentReaders(t *testing.T) {
	params := util.DefaultNoiseParams()
	params.Seed = 3
	m := Generate(NewSize(24, 24), params)
	m.Freeze()
	host := NewHostContract(m)
	b := m.Bounds()

	expected := make(map[vec.Vec3]VoxelState)
	for x := b.MinX - 1; x <= b.MaxX; x++ {
		for z := b.MinZ - 1; z <= b.MaxZ; z++ {
			for y := -4; y <= 4; y++ {
				pos := vec.New3(x, y, z)
				expected[pos] = m.Classify(pos)
			}
		}
	}

	const workers = 16
	var wg sync.WaitGroup
	mismatches := make([]int, workers)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			src := host.VoxelLookup(vec.New3(w, 0, 0))
			for pos, want := range expected {
				if src.Voxel(pos) != want {
					mismatches[w]++
				}
			}
		}(w)
	}
	wg.Wait()

	for w, n := range mismatches {
		assert.Zero(t, n, "Воркер %d получил расхождения", w)
	}
}

func TestClassify_NoAllocations(t *testing.T) {
	m := newFixtureMap(t)
	src := NewHostContract(m).VoxelLookup(vec.Vec3{})
	positions := []vec.Vec3{vec.New3(-5, 3, -5), vec.New3(-5, 8, -5), vec.New3(0, 20, 0), vec.New3(40, 0, 0)}

	allocs := testing.AllocsPerRun(200, func() {
		for _, pos := range positions {
			_ = src.Voxel(pos)
		}
	})
	require.Zero(t, allocs, "Классификация не должна выделять память")
}

func BenchmarkClassify(b *testing.B) {
	m := Generate(NewSize(200, 200), util.DefaultNoiseParams())
	m.Freeze()
	src := NewHostContract(m).VoxelLookup(vec.Vec3{})

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = src.Voxel(vec.New3(i%200-100, i%16-8, (i/200)%200-100))
	}
}

func BenchmarkGenerate200(b *testing.B) {
	params := util.DefaultNoiseParams()
	for i := 0; i < b.N; i++ {
		_ = Generate(NewSize(200, 200), params)
	}
}
