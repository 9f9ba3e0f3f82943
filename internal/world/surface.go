package world

import "github.com/annel0/terrain-map/internal/world/block"

// SurfaceType определяет тип поверхности колонки (биом верхнего блока)
type SurfaceType uint8

const (
	Grass SurfaceType = iota // значение по умолчанию
	Snow
	Dirt
	Sand
	Gravel
	Stone
	Rock
	Water

	surfaceCount
)

var surfaceNames = [surfaceCount]string{
	Grass:  "grass",
	Snow:   "snow",
	Dirt:   "dirt",
	Sand:   "sand",
	Gravel: "gravel",
	Stone:  "stone",
	Rock:   "rock",
	Water:  "water",
}

var surfaceMaterials = [surfaceCount]block.Material{
	Grass:  block.GrassBrick,
	Snow:   block.SnowyBrick,
	Dirt:   block.DirtBrick,
	Sand:   block.SandBrick,
	Gravel: block.GravelBrick,
	Stone:  block.StoneBrick,
	Rock:   block.RockBrick,
	Water:  block.WaterBrick,
}

// String возвращает имя типа поверхности
func (s SurfaceType) String() string {
	if s >= surfaceCount {
		return "unknown"
	}
	return surfaceNames[s]
}

// Material возвращает материал верхнего вокселя колонки
func (s SurfaceType) Material() block.Material {
	if s >= surfaceCount {
		return block.FullBrick
	}
	return surfaceMaterials[s]
}

// SurfaceTypes возвращает все типы поверхности в порядке объявления
func SurfaceTypes() []SurfaceType {
	out := make([]SurfaceType, 0, surfaceCount)
	for s := SurfaceType(0); s < surfaceCount; s++ {
		out = append(out, s)
	}
	return out
}

// ParseSurfaceType ищет тип поверхности по имени
func ParseSurfaceType(name string) (SurfaceType, bool) {
	for s, n := range surfaceNames {
		if n == name {
			return SurfaceType(s), true
		}
	}
	return 0, false
}

// surfaceRule описывает одно правило классификации высоты
type surfaceRule struct {
	name    string
	matches func(h int8) bool
	surface SurfaceType
}

// surfaceRules проверяются сверху вниз, побеждает первое совпадение.
// Правило "h > 15" перекрывает "h > 30" и "h > 35", поэтому Rock и Snow
// при генерации не появляются никогда. Порядок сохранён как есть.
var surfaceRules = []surfaceRule{
	{"below sea level", func(h int8) bool { return h < 0 }, Gravel},
	{"sea level", func(h int8) bool { return h == 0 }, Sand},
	{"above 15", func(h int8) bool { return h > 15 }, Stone},
	{"above 30", func(h int8) bool { return h > 30 }, Rock},
	{"above 35", func(h int8) bool { return h > 35 }, Snow},
	{"otherwise", func(int8) bool { return true }, Grass},
}

// ClassifyHeight определяет тип поверхности по высоте колонки
func ClassifyHeight(h int8) SurfaceType {
	for _, rule := range surfaceRules {
		if rule.matches(h) {
			return rule.surface
		}
	}
	return Grass
}
