package world

import (
	"encoding/binary"
	"fmt"

	"github.com/annel0/terrain-map/internal/logging"
	"github.com/annel0/terrain-map/internal/vec"
	"github.com/annel0/terrain-map/internal/world/block"
	"github.com/cespare/xxhash/v2"
)

// Column хранит данные одной колонки (x, z): тип поверхности и высота верхнего вокселя
type Column struct {
	Surface SurfaceType `json:"surface"`
	Height  int8        `json:"height"`
}

// NewColumn создаёт колонку
func NewColumn(surface SurfaceType, height int8) Column {
	return Column{Surface: surface, Height: height}
}

// TerrainMap представляет конечную сетку колонок.
//
// Карта заполняется один раз, затем допускает несколько вызовов SetSurface
// и замораживается через Freeze. После заморозки она только читается, поэтому
// Get и Classify можно вызывать из любого числа горутин без блокировок.
type TerrainMap struct {
	size    Size
	columns [][]Column // columns[ix][iz], len == Width, len(columns[i]) == Height
	bounds  Bounds
	frozen  bool
}

// NewTerrainMap создаёт карту заданного размера, заполненную нулевыми колонками
func NewTerrainMap(size Size) *TerrainMap {
	columns := make([][]Column, size.Width)
	backing := make([]Column, int(size.Width)*int(size.Height))
	for ix := range columns {
		columns[ix] = backing[ix*int(size.Height) : (ix+1)*int(size.Height) : (ix+1)*int(size.Height)]
	}
	return &TerrainMap{
		size:    size,
		columns: columns,
		bounds:  NewBounds(size),
	}
}

// NewTerrainMapFromColumns строит карту из готовой сетки columns[x][z].
// Сетка копируется; все строки должны быть одной длины.
func NewTerrainMapFromColumns(columns [][]Column) (*TerrainMap, error) {
	if len(columns) == 0 || len(columns[0]) == 0 {
		return nil, fmt.Errorf("terrain: пустая сетка колонок")
	}
	height := len(columns[0])
	for ix, row := range columns {
		if len(row) != height {
			return nil, fmt.Errorf("terrain: строка %d имеет длину %d, ожидалось %d", ix, len(row), height)
		}
	}

	m := NewTerrainMap(NewSize(uint32(len(columns)), uint32(height)))
	for ix, row := range columns {
		copy(m.columns[ix], row)
	}
	return m, nil
}

// Size возвращает размер карты
func (m *TerrainMap) Size() Size {
	return m.size
}

// Bounds возвращает границы карты
func (m *TerrainMap) Bounds() Bounds {
	return m.bounds
}

// InBounds проверяет, есть ли у карты данные для позиции
func (m *TerrainMap) InBounds(pos vec.Vec3) bool {
	return m.bounds.Contains(pos)
}

// Get возвращает копию колонки для позиции; false, если данных нет
func (m *TerrainMap) Get(pos vec.Vec3) (Column, bool) {
	if !m.bounds.Contains(pos) {
		return Column{}, false
	}
	ix, iz := m.bounds.Index(pos)
	return m.columns[ix][iz], true
}

// SetSurface меняет тип поверхности колонки, не трогая высоту.
// Позиция вне карты и замороженная карта молча игнорируются.
func (m *TerrainMap) SetSurface(pos vec.Vec3, surface SurfaceType) {
	if !m.bounds.Contains(pos) {
		return
	}
	if m.frozen {
		logging.GetWorldLogger().Warn("SetSurface(%s, %s) на замороженной карте проигнорирован", pos, surface)
		return
	}
	ix, iz := m.bounds.Index(pos)
	m.columns[ix][iz].Surface = surface
}

// Classify определяет состояние вокселя:
// вне карты Unset, ниже поверхности FullBrick,
// на поверхности материал колонки, выше Air.
func (m *TerrainMap) Classify(pos vec.Vec3) VoxelState {
	if !m.bounds.Contains(pos) {
		return VoxelState{}
	}
	ix, iz := m.bounds.Index(pos)
	col := m.columns[ix][iz]
	h := int(col.Height)

	switch {
	case pos.Y < h:
		return Solid(block.FullBrick)
	case pos.Y == h:
		return Solid(col.Surface.Material())
	default:
		return Air()
	}
}

// Voxel реализует VoxelSource
func (m *TerrainMap) Voxel(pos vec.Vec3) VoxelState {
	return m.Classify(pos)
}

// Freeze запрещает дальнейшие изменения карты
func (m *TerrainMap) Freeze() {
	m.frozen = true
}

// Frozen сообщает, заморожена ли карта
func (m *TerrainMap) Frozen() bool {
	return m.frozen
}

// ForEach обходит все колонки в порядке x, затем z
func (m *TerrainMap) ForEach(fn func(pos vec.Vec2, col Column)) {
	for ix, row := range m.columns {
		for iz, col := range row {
			fn(m.bounds.Position(ix, iz), col)
		}
	}
}

// SurfaceHistogram считает колонки по типам поверхности
func (m *TerrainMap) SurfaceHistogram() map[SurfaceType]int {
	hist := make(map[SurfaceType]int)
	for _, row := range m.columns {
		for _, col := range row {
			hist[col.Surface]++
		}
	}
	return hist
}

// Fingerprint возвращает xxhash64 от размера и всех колонок.
// Две карты с одинаковым отпечатком совпадают поячеечно (с точностью до коллизий).
func (m *TerrainMap) Fingerprint() uint64 {
	d := xxhash.New()

	var header [8]byte
	binary.LittleEndian.PutUint32(header[0:4], m.size.Width)
	binary.LittleEndian.PutUint32(header[4:8], m.size.Height)
	_, _ = d.Write(header[:])

	row := make([]byte, 0, 2*int(m.size.Height))
	for _, cols := range m.columns {
		row = row[:0]
		for _, col := range cols {
			row = append(row, byte(col.Surface), byte(col.Height))
		}
		_, _ = d.Write(row)
	}
	return d.Sum64()
}
