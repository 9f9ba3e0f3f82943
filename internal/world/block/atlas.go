package block

// AtlasDescriptor описывает текстурный атлас, который хост загружает сам.
type AtlasDescriptor struct {
	Path      string `json:"path"`
	TileCount uint32 `json:"tile_count"`
}

// atlasTiles: тайлы voxel_textures_all.png в порядке индексов
var atlasTiles = [...]string{
	"brick_grey.png",                // 00
	"brick_red.png",                 // 01
	"cactus_inside.png",             // 02
	"cactus_side.png",               // 03
	"cactus_top.png",                // 04
	"cotton_blue.png",               // 05
	"cotton_green.png",              // 06
	"cotton_red.png",                // 07
	"cotton_tan.png",                // 08
	"dirt.png",                      // 09
	"dirt_grass.png",                // 10
	"dirt_sand.png",                 // 11
	"dirt_snow.png",                 // 12
	"fence_stone.png",               // 13
	"fence_wood.png",                // 14
	"glass.png",                     // 15
	"glass_frame.png",               // 16
	"grass1.png",                    // 17
	"grass2.png",                    // 18
	"grass3.png",                    // 19
	"grass4.png",                    // 20
	"grass_brown.png",               // 21
	"grass_tan.png",                 // 22
	"grass_top.png",                 // 23
	"gravel_dirt.png",               // 24
	"gravel_stone.png",              // 25
	"greysand.png",                  // 26
	"greystone.png",                 // 27
	"greystone_ruby.png",            // 28
	"greystone_ruby_alt.png",        // 29
	"greystone_sand.png",            // 30
	"ice.png",                       // 31
	"lava.png",                      // 32
	"leaves.png",                    // 33
	"leaves_orange.png",             // 34
	"leaves_orange_transparent.png", // 35
	"leaves_transparent.png",        // 36
	"mushroom_brown.png",            // 37
	"mushroom_red.png",              // 38
	"mushroom_tan.png",              // 39
	"oven.png",                      // 40
	"redsand.png",                   // 41
	"redstone.png",                  // 42
	"redstone_emerald.png",          // 43
	"redstone_emerald_alt.png",      // 44
	"redstone_sand.png",             // 45
	"rock.png",                      // 46
	"rock_moss.png",                 // 47
	"sand.png",                      // 48
	"snow.png",                      // 49
	"stone.png",                     // 50
	"stone_browniron.png",           // 51
	"stone_browniron_alt.png",       // 52
	"stone_coal.png",                // 53
	"stone_coal_alt.png",            // 54
	"stone_diamond.png",             // 55
	"stone_diamond_alt.png",         // 56
	"stone_dirt.png",                // 57
	"stone_gold.png",                // 58
	"stone_gold_alt.png",            // 59
	"stone_grass.png",               // 60
	"stone_iron.png",                // 61
	"stone_iron_alt.png",            // 62
	"stone_sand.png",                // 63
	"stone_silver.png",              // 64
	"stone_silver_alt.png",          // 65
	"stone_snow.png",                // 66
	"table.png",                     // 67
	"track_corner.png",              // 68
	"track_corner_alt.png",          // 69
	"track_straight.png",            // 70
	"track_straight_alt.png",        // 71
	"trunk_bottom.png",              // 72
	"trunk_mid.png",                 // 73
	"trunk_side.png",                // 74
	"trunk_top.png",                 // 75
	"trunk_white_side.png",          // 76
	"trunk_white_top.png",           // 77
	"water.png",                     // 78
	"wheat_stage1.png",              // 79
	"wheat_stage2.png",              // 80
	"wheat_stage3.png",              // 81
	"wheat_stage4.png",              // 82
	"wood.png",                      // 83
	"wood_red.png",                  // 84
}

// AtlasPath содержит имя файла атласа
const AtlasPath = "voxel_textures_all.png"

// Atlas возвращает дескриптор атласа
func Atlas() AtlasDescriptor {
	return AtlasDescriptor{Path: AtlasPath, TileCount: uint32(len(atlasTiles))}
}

// TileName возвращает имя тайла по индексу
func TileName(index uint32) (string, bool) {
	if index >= uint32(len(atlasTiles)) {
		return "", false
	}
	return atlasTiles[index], true
}
