package api

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/annel0/terrain-map/internal/sampler"
	"github.com/annel0/terrain-map/internal/vec"
	"github.com/annel0/terrain-map/internal/world"
	"github.com/annel0/terrain-map/internal/world/block"
	"github.com/gin-gonic/gin"
)

// WorldInfo содержит описание опубликованного мира
type WorldInfo struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Size        world.Size     `json:"size"`
	Bounds      world.Bounds   `json:"bounds"`
	Fingerprint string         `json:"fingerprint"`
	Surfaces    map[string]int `json:"surfaces"`
	PublishedAt time.Time      `json:"published_at"`
}

// ColumnResponse описывает колонку карты
type ColumnResponse struct {
	X       int    `json:"x"`
	Z       int    `json:"z"`
	Surface string `json:"surface"`
	Height  int8   `json:"height"`
}

// VoxelResponse содержит результат классификации позиции
type VoxelResponse struct {
	X              int        `json:"x"`
	Y              int        `json:"y"`
	Z              int        `json:"z"`
	Kind           string     `json:"kind"`
	Material       string     `json:"material,omitempty"`
	TextureIndices *[3]uint32 `json:"texture_indices,omitempty"`
}

// MaterialInfo описывает материал и его тайлы в атласе
type MaterialInfo struct {
	Name           string    `json:"name"`
	TextureIndices [3]uint32 `json:"texture_indices"`
	Tiles          [3]string `json:"tiles"`
}

func (rs *RestServer) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"time":    time.Now().Unix(),
		"worlds":  len(rs.registry.Names()),
		"process": rs.metrics.Snapshot(),
	})
}

// handleAtlas возвращает дескриптор атласа и отображение материалов
func (rs *RestServer) handleAtlas(c *gin.Context) {
	materials := make([]MaterialInfo, 0)
	for _, m := range block.Materials() {
		info := MaterialInfo{Name: m.String(), TextureIndices: m.TextureIndices()}
		for i, idx := range info.TextureIndices {
			info.Tiles[i], _ = block.TileName(idx)
		}
		materials = append(materials, info)
	}

	c.JSON(http.StatusOK, GenericResponse{
		Success: true,
		Data: gin.H{
			"atlas":     block.Atlas(),
			"materials": materials,
		},
	})
}

func (rs *RestServer) handleListWorlds(c *gin.Context) {
	c.JSON(http.StatusOK, GenericResponse{Success: true, Data: rs.registry.Names()})
}

func (rs *RestServer) handleWorldInfo(c *gin.Context) {
	inst, ok := rs.lookupWorld(c)
	if !ok {
		return
	}

	surfaces := make(map[string]int)
	for s, n := range inst.Terrain.SurfaceHistogram() {
		surfaces[s.String()] = n
	}

	c.JSON(http.StatusOK, GenericResponse{
		Success: true,
		Data: WorldInfo{
			ID:          inst.ID.String(),
			Name:        inst.Name,
			Size:        inst.Terrain.Size(),
			Bounds:      inst.Terrain.Bounds(),
			Fingerprint: fmt.Sprintf("%016x", inst.Terrain.Fingerprint()),
			Surfaces:    surfaces,
			PublishedAt: inst.PublishedAt,
		},
	})
}

func (rs *RestServer) handleColumn(c *gin.Context) {
	inst, ok := rs.lookupWorld(c)
	if !ok {
		return
	}
	x, okX := queryInt(c, "x")
	z, okZ := queryInt(c, "z")
	if !okX || !okZ {
		return
	}

	col, found := inst.Terrain.Get(vec.New3(x, 0, z))
	if !found {
		c.JSON(http.StatusNotFound, GenericResponse{Success: false, Message: "Колонка вне карты"})
		return
	}
	c.JSON(http.StatusOK, GenericResponse{
		Success: true,
		Data:    ColumnResponse{X: x, Z: z, Surface: col.Surface.String(), Height: col.Height},
	})
}

func (rs *RestServer) handleVoxel(c *gin.Context) {
	inst, ok := rs.lookupWorld(c)
	if !ok {
		return
	}
	x, okX := queryInt(c, "x")
	y, okY := queryInt(c, "y")
	z, okZ := queryInt(c, "z")
	if !okX || !okY || !okZ {
		return
	}

	v := inst.Contract().VoxelLookup(vec.Vec3{}).Voxel(vec.New3(x, y, z))
	resp := VoxelResponse{X: x, Y: y, Z: z, Kind: v.Kind.String()}
	if v.IsSolid() {
		indices := v.Material.TextureIndices()
		resp.Material = v.Material.String()
		resp.TextureIndices = &indices
	}
	c.JSON(http.StatusOK, GenericResponse{Success: true, Data: resp})
}

func (rs *RestServer) handleChunk(c *gin.Context) {
	inst, ok := rs.lookupWorld(c)
	if !ok {
		return
	}
	coord, ok := paramVec3(c, "cx", "cy", "cz")
	if !ok {
		return
	}

	summary := sampler.New(inst.Contract(), rs.chunkSize, 1).SampleChunk(coord)
	c.JSON(http.StatusOK, GenericResponse{Success: true, Data: summary})
}

// handleColumnsDump отдаёт все колонки в сжатом zstd формате
func (rs *RestServer) handleColumnsDump(c *gin.Context) {
	inst, ok := rs.lookupWorld(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := world.EncodeColumns(&buf, inst.Terrain); err != nil {
		rs.log.Error("Ошибка кодирования колонок мира %s: %v", inst.Name, err)
		c.JSON(http.StatusInternalServerError, GenericResponse{Success: false, Message: "Ошибка кодирования"})
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", inst.Name+".tmap.zst"))
	c.Data(http.StatusOK, "application/zstd", buf.Bytes())
}

func (rs *RestServer) lookupWorld(c *gin.Context) (*world.WorldInstance, bool) {
	name := c.Param("name")
	inst, ok := rs.registry.Get(name)
	if !ok {
		c.JSON(http.StatusNotFound, GenericResponse{Success: false, Message: fmt.Sprintf("Мир %q не найден", name)})
		return nil, false
	}
	return inst, true
}

func queryInt(c *gin.Context, key string) (int, bool) {
	raw, present := c.GetQuery(key)
	if !present {
		c.JSON(http.StatusBadRequest, GenericResponse{Success: false, Message: "Не задан параметр " + key})
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, GenericResponse{Success: false, Message: fmt.Sprintf("Параметр %s: %v", key, err)})
		return 0, false
	}
	return v, true
}

func paramVec3(c *gin.Context, kx, ky, kz string) (vec.Vec3, bool) {
	var out [3]int
	for i, key := range []string{kx, ky, kz} {
		v, err := strconv.Atoi(c.Param(key))
		if err != nil {
			c.JSON(http.StatusBadRequest, GenericResponse{Success: false, Message: fmt.Sprintf("Параметр %s: %v", key, err)})
			return vec.Vec3{}, false
		}
		out[i] = v
	}
	return vec.New3(out[0], out[1], out[2]), true
}
