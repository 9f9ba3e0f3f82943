package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/annel0/terrain-map/internal/util"
	"github.com/annel0/terrain-map/internal/vec"
	"github.com/annel0/terrain-map/internal/world"
	"gopkg.in/yaml.v3"
)

// Config корневая структура конфигурации приложения.
type Config struct {
	World     WorldConfig     `yaml:"world"`
	Noise     NoiseConfig     `yaml:"noise"`
	Server    ServerConfig    `yaml:"server"`
	Sampler   SamplerConfig   `yaml:"sampler"`
	Logging   LoggingConfig   `yaml:"logging"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

type WorldConfig struct {
	Name       string  `yaml:"name"`
	Width      uint32  `yaml:"width"`
	Height     uint32  `yaml:"height"`
	Scale      float64 `yaml:"scale"`
	Amplitude  float64 `yaml:"amplitude"`
	WaterSeedX int     `yaml:"water_seed_x"`
	WaterSeedZ int     `yaml:"water_seed_z"`
}

type NoiseConfig struct {
	Algorithm   string  `yaml:"algorithm"` // perlin | simplex
	Seed        int64   `yaml:"seed"`
	Octaves     int32   `yaml:"octaves"`
	Frequency   float64 `yaml:"frequency"`
	Lacunarity  float64 `yaml:"lacunarity"`
	Persistence float64 `yaml:"persistence"`
}

type ServerConfig struct {
	RESTPort int `yaml:"rest_port"`
}

type SamplerConfig struct {
	Workers      int `yaml:"workers"`
	ChunkSize    int `yaml:"chunk_size"`
	WarmupRadius int `yaml:"warmup_radius"`
}

type LoggingConfig struct {
	Dir   string `yaml:"dir"`
	Level string `yaml:"level"`
}

type TelemetryConfig struct {
	Enabled     bool   `yaml:"enabled"`
	ServiceName string `yaml:"service_name"`
}

// Default возвращает конфигурацию эталонного мира 200x200
func Default() *Config {
	noise := util.DefaultNoiseParams()
	return &Config{
		World: WorldConfig{
			Name:      "main",
			Width:     200,
			Height:    200,
			Scale:     1000,
			Amplitude: 50,
		},
		Noise: NoiseConfig{
			Algorithm:   util.AlgorithmPerlin,
			Seed:        noise.Seed,
			Octaves:     noise.Octaves,
			Frequency:   noise.Frequency,
			Lacunarity:  noise.Lacunarity,
			Persistence: noise.Persistence,
		},
		Sampler: SamplerConfig{
			Workers:      4,
			ChunkSize:    32,
			WarmupRadius: 2,
		},
		Logging: LoggingConfig{
			Dir:   "logs",
			Level: "info",
		},
		Telemetry: TelemetryConfig{
			Enabled:     false,
			ServiceName: "terrain-map",
		},
	}
}

// NoiseParams переводит секцию noise в параметры генератора шума
func (n NoiseConfig) NoiseParams() util.NoiseParams {
	return util.NoiseParams{
		Seed:        n.Seed,
		Octaves:     n.Octaves,
		Frequency:   n.Frequency,
		Lacunarity:  n.Lacunarity,
		Persistence: n.Persistence,
	}
}

// NewGenerator собирает генератор мира из секций world и noise
func (c *Config) NewGenerator() (*world.Generator, error) {
	src, err := world.NewNoiseSource(c.Noise.Algorithm, c.Noise.NoiseParams())
	if err != nil {
		return nil, err
	}
	return &world.Generator{
		Noise:     src,
		Scale:     c.World.Scale,
		Amplitude: c.World.Amplitude,
		WaterSeed: vec.Vec2{X: c.World.WaterSeedX, Z: c.World.WaterSeedZ},
	}, nil
}

// GetRESTPort возвращает порт REST API с поддержкой fallback значений
func (s *ServerConfig) GetRESTPort() int {
	return getPortWithEnvFallback(s.RESTPort, "TERRAIN_REST_PORT", 8090)
}

// getPortWithEnvFallback возвращает порт с приоритетом: config -> env -> default
func getPortWithEnvFallback(configPort int, envVar string, defaultPort int) int {
	if configPort > 0 {
		return configPort
	}

	if envVal := os.Getenv(envVar); envVal != "" {
		if port, err := strconv.Atoi(envVal); err == nil && port > 0 {
			return port
		}
	}

	return defaultPort
}

// Validate проверяет значения, без которых мир построить нельзя.
// Параметры шума не проверяются.
func (c *Config) Validate() error {
	if c.World.Width == 0 || c.World.Height == 0 {
		return fmt.Errorf("world: размер карты должен быть ненулевым, получено %dx%d", c.World.Width, c.World.Height)
	}
	if err := world.NewSize(c.World.Width, c.World.Height).Validate(); err != nil {
		return fmt.Errorf("world: %w", err)
	}
	if c.World.Scale == 0 {
		return fmt.Errorf("world: scale не может быть нулём")
	}
	if _, err := world.NewNoiseSource(c.Noise.Algorithm, c.Noise.NoiseParams()); err != nil {
		return err
	}
	if c.Sampler.Workers <= 0 {
		return fmt.Errorf("sampler: workers должен быть > 0, получено %d", c.Sampler.Workers)
	}
	if c.Sampler.ChunkSize <= 0 {
		return fmt.Errorf("sampler: chunk_size должен быть > 0, получено %d", c.Sampler.ChunkSize)
	}
	return nil
}

// Load читает YAML файл конфигурации поверх значений по умолчанию.
// Если path == "", пытается прочитать из ENV TERRAIN_CONFIG, иначе возвращает Default().
// TERRAIN_SEED, если задан, переопределяет сид шума.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("TERRAIN_CONFIG")
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("чтение конфигурации %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("разбор конфигурации %s: %w", path, err)
		}
	}

	if envSeed := os.Getenv("TERRAIN_SEED"); envSeed != "" {
		seed, err := strconv.ParseInt(envSeed, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("TERRAIN_SEED: %w", err)
		}
		cfg.Noise.Seed = seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
