package world

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/annel0/terrain-map/internal/logging"
	"github.com/google/uuid"
)

// WorldInstance описывает опубликованную карту. Живёт до конца процесса.
type WorldInstance struct {
	ID          uuid.UUID
	Name        string
	Terrain     *TerrainMap
	PublishedAt time.Time
}

// Contract возвращает контракт хоста для этой карты
func (w *WorldInstance) Contract() HostContract {
	return NewHostContract(w.Terrain)
}

// Registry владеет опубликованными картами.
// Публикация замораживает карту; всё, что получено из реестра, только читается.
type Registry struct {
	mu     sync.RWMutex
	worlds map[string]*WorldInstance
}

// NewRegistry создаёт пустой реестр
func NewRegistry() *Registry {
	return &Registry{worlds: make(map[string]*WorldInstance)}
}

var defaultRegistry = NewRegistry()

// DefaultRegistry возвращает реестр процесса
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Publish замораживает карту и регистрирует её под именем
func (r *Registry) Publish(name string, terrain *TerrainMap) (*WorldInstance, error) {
	if terrain == nil {
		return nil, fmt.Errorf("registry: карта %q равна nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.worlds[name]; exists {
		return nil, fmt.Errorf("registry: мир %q уже опубликован", name)
	}

	terrain.Freeze()
	inst := &WorldInstance{
		ID:          uuid.New(),
		Name:        name,
		Terrain:     terrain,
		PublishedAt: time.Now(),
	}
	r.worlds[name] = inst

	for surface, count := range terrain.SurfaceHistogram() {
		publishedColumns.WithLabelValues(name, surface.String()).Set(float64(count))
	}
	logging.GetWorldLogger().Info("Мир %q опубликован (id=%s, размер %dx%d)",
		name, inst.ID, terrain.Size().Width, terrain.Size().Height)

	return inst, nil
}

// Get возвращает опубликованный мир по имени
func (r *Registry) Get(name string) (*WorldInstance, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	inst, ok := r.worlds[name]
	return inst, ok
}

// Names возвращает имена опубликованных миров по алфавиту
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.worlds))
	for name := range r.worlds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
