package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/annel0/terrain-map/internal/config"
	"github.com/annel0/terrain-map/internal/vec"
	"github.com/annel0/terrain-map/internal/world"
	"github.com/annel0/terrain-map/internal/world/block"
)

func main() {
	var (
		command    = flag.String("cmd", "info", "Command: gen, info, voxel, column")
		configPath = flag.String("config", "", "YAML config (or TERRAIN_CONFIG)")
		in         = flag.String("in", "", "Read map from dump instead of generating")
		out        = flag.String("out", "terrain.tmap.zst", "Output file for gen")
		x          = flag.Int("x", 0, "X coordinate")
		y          = flag.Int("y", 0, "Y coordinate")
		z          = flag.Int("z", 0, "Z coordinate")
	)
	flag.Parse()

	terrain, err := loadTerrain(*configPath, *in)
	if err != nil {
		log.Fatalf("❌ Failed to load map: %v", err)
	}

	switch *command {
	case "gen":
		if err := writeDump(terrain, *out); err != nil {
			log.Fatalf("❌ Gen failed: %v", err)
		}
		fmt.Printf("💾 Map written to %s (fingerprint %016x)\n", *out, terrain.Fingerprint())

	case "info":
		printInfo(terrain)

	case "voxel":
		printVoxel(terrain, vec.New3(*x, *y, *z))

	case "column":
		col, ok := terrain.Get(vec.New3(*x, 0, *z))
		if !ok {
			fmt.Printf("⬜ (%d,%d) is outside the map\n", *x, *z)
			os.Exit(1)
		}
		fmt.Printf("🧱 (%d,%d): surface=%s height=%d\n", *x, *z, col.Surface, col.Height)

	default:
		fmt.Printf("❌ Unknown command: %s\n", *command)
		fmt.Println("Available commands: gen, info, voxel, column")
		os.Exit(1)
	}
}

// loadTerrain читает карту из дампа или генерирует её по конфигурации
func loadTerrain(configPath, dumpPath string) (*world.TerrainMap, error) {
	if dumpPath != "" {
		f, err := os.Open(dumpPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return world.DecodeColumns(f)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	gen, err := cfg.NewGenerator()
	if err != nil {
		return nil, err
	}
	return gen.Generate(world.NewSize(cfg.World.Width, cfg.World.Height)), nil
}

func writeDump(terrain *world.TerrainMap, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := world.EncodeColumns(f, terrain); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// printInfo выводит размер, границы и распределение поверхностей
func printInfo(terrain *world.TerrainMap) {
	size := terrain.Size()
	b := terrain.Bounds()
	fmt.Printf("🌍 Map %dx%d, X=[%d,%d) Z=[%d,%d)\n", size.Width, size.Height, b.MinX, b.MaxX, b.MinZ, b.MaxZ)
	fmt.Printf("🔑 Fingerprint: %016x\n", terrain.Fingerprint())

	hist := terrain.SurfaceHistogram()
	surfaces := make([]world.SurfaceType, 0, len(hist))
	for s := range hist {
		surfaces = append(surfaces, s)
	}
	sort.Slice(surfaces, func(i, j int) bool { return hist[surfaces[i]] > hist[surfaces[j]] })

	fmt.Println("📊 Surfaces:")
	for _, s := range surfaces {
		fmt.Printf("  %-8s %6d\n", s, hist[s])
	}
}

func printVoxel(terrain *world.TerrainMap, pos vec.Vec3) {
	v := world.NewHostContract(terrain).VoxelLookup(vec.Vec3{}).Voxel(pos)
	if !v.IsSolid() {
		fmt.Printf("%s: %s\n", pos, v.Kind)
		return
	}
	idx := v.Material.TextureIndices()
	tile, _ := block.TileName(idx[0])
	fmt.Printf("%s: %s textures=%v (%s)\n", pos, v, idx, tile)
}
