package world

import (
	"github.com/annel0/terrain-map/internal/vec"
	"github.com/annel0/terrain-map/internal/world/block"
)

// VoxelKind определяет вид вокселя для хоста
type VoxelKind uint8

const (
	VoxelUnset VoxelKind = iota // данных нет: позиция за пределами карты
	VoxelAir
	VoxelSolid
)

// String возвращает имя вида вокселя
func (k VoxelKind) String() string {
	switch k {
	case VoxelUnset:
		return "unset"
	case VoxelAir:
		return "air"
	case VoxelSolid:
		return "solid"
	default:
		return "unknown"
	}
}

// VoxelState хранит результат классификации позиции.
// Material имеет смысл только для VoxelSolid. Нулевое значение означает Unset.
type VoxelState struct {
	Kind     VoxelKind
	Material block.Material
}

// Air возвращает пустой воксель
func Air() VoxelState {
	return VoxelState{Kind: VoxelAir}
}

// Solid возвращает твёрдый воксель из материала m
func Solid(m block.Material) VoxelState {
	return VoxelState{Kind: VoxelSolid, Material: m}
}

// IsSolid сообщает, твёрдый ли воксель
func (v VoxelState) IsSolid() bool {
	return v.Kind == VoxelSolid
}

// IsUnset сообщает, что для позиции нет данных
func (v VoxelState) IsUnset() bool {
	return v.Kind == VoxelUnset
}

func (v VoxelState) String() string {
	if v.Kind == VoxelSolid {
		return "solid(" + v.Material.String() + ")"
	}
	return v.Kind.String()
}

// VoxelSource классифицирует позиции; хост вызывает его на каждый воксель чанка.
// Реализации должны быть безопасны для одновременного вызова.
type VoxelSource interface {
	Voxel(pos vec.Vec3) VoxelState
}

// VoxelSourceFactory выдаёт источник вокселей для чанка
type VoxelSourceFactory interface {
	VoxelLookup(chunk vec.Vec3) VoxelSource
}

// HostContract собирает всё, что хост-рендерер получает от карты при настройке мира:
// отображение материалов в атлас, фабрику источников вокселей и дескриптор атласа.
type HostContract struct {
	terrain *TerrainMap
}

// NewHostContract связывает контракт с опубликованной картой
func NewHostContract(terrain *TerrainMap) HostContract {
	return HostContract{terrain: terrain}
}

// TextureIndices отображает материал в три индекса тайлов атласа
func (h HostContract) TextureIndices(m block.Material) [3]uint32 {
	return m.TextureIndices()
}

// VoxelLookup возвращает источник вокселей. Координата чанка не используется:
// карта глобальная, и все чанки читают одну и ту же сетку.
func (h HostContract) VoxelLookup(_ vec.Vec3) VoxelSource {
	return h.terrain
}

// Texture возвращает путь к атласу и число тайлов в нём
func (h HostContract) Texture() (string, uint32) {
	atlas := block.Atlas()
	return atlas.Path, atlas.TileCount
}
