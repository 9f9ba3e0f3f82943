package block

// Material обозначает материал твёрдого вокселя, который понимает хост-рендерер.
type Material uint8

// Константы материалов
const (
	GrassBrick Material = iota // 0, значение по умолчанию
	SnowyBrick                 // 1
	DirtBrick                  // 2
	SandBrick                  // 3
	GravelBrick                // 4
	StoneBrick                 // 5
	RockBrick                  // 6
	WaterBrick                 // 7
	FullBrick                  // 8 - заливка под поверхностью, не зависит от биома

	materialCount // всегда последний: количество материалов
)

// registry хранит индексы тайлов атласа для каждого материала (верх, бок, низ).
// Таблица покрывает все материалы, поэтому поиск не может промахнуться.
var registry = [materialCount][3]uint32{
	GrassBrick:  {23, 23, 23}, // grass_top.png
	SnowyBrick:  {49, 49, 49}, // snow.png
	DirtBrick:   {9, 9, 9},    // dirt.png
	SandBrick:   {48, 48, 48}, // sand.png
	GravelBrick: {24, 24, 24}, // gravel_dirt.png
	StoneBrick:  {50, 50, 50}, // stone.png
	RockBrick:   {46, 46, 46}, // rock.png
	WaterBrick:  {78, 78, 78}, // water.png
	FullBrick:   {9, 9, 9},    // dirt.png
}

var materialNames = [materialCount]string{
	GrassBrick:  "grass_brick",
	SnowyBrick:  "snowy_brick",
	DirtBrick:   "dirt_brick",
	SandBrick:   "sand_brick",
	GravelBrick: "gravel_brick",
	StoneBrick:  "stone_brick",
	RockBrick:   "rock_brick",
	WaterBrick:  "water_brick",
	FullBrick:   "full_brick",
}

// TextureIndices возвращает три индекса тайлов атласа для материала.
// Значения вне перечисления отображаются как FullBrick.
func (m Material) TextureIndices() [3]uint32 {
	if m >= materialCount {
		return registry[FullBrick]
	}
	return registry[m]
}

// String возвращает имя материала
func (m Material) String() string {
	if m >= materialCount {
		return "unknown"
	}
	return materialNames[m]
}

// IsValid проверяет, входит ли значение в перечисление материалов
func (m Material) IsValid() bool {
	return m < materialCount
}

// Materials возвращает все материалы в порядке объявления
func Materials() []Material {
	out := make([]Material, 0, materialCount)
	for m := Material(0); m < materialCount; m++ {
		out = append(out, m)
	}
	return out
}

// ParseMaterial ищет материал по имени
func ParseMaterial(name string) (Material, bool) {
	for m, n := range materialNames {
		if n == name {
			return Material(m), true
		}
	}
	return 0, false
}
