package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/annel0/terrain-map/internal/api"
	"github.com/annel0/terrain-map/internal/config"
	"github.com/annel0/terrain-map/internal/logging"
	"github.com/annel0/terrain-map/internal/observability"
	"github.com/annel0/terrain-map/internal/sampler"
	"github.com/annel0/terrain-map/internal/vec"
	"github.com/annel0/terrain-map/internal/world"
)

func main() {
	configPath := flag.String("config", "", "Путь к YAML-конфигурации (или TERRAIN_CONFIG)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ Ошибка загрузки конфигурации: %v", err)
	}

	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	if err := logging.InitDefaultLogger("terrain-server", cfg.Logging.Dir, level); err != nil {
		log.Fatalf("❌ Ошибка инициализации логирования: %v", err)
	}
	defer logging.CloseDefaultLogger()

	ctx := context.Background()
	shutdownTelemetry, err := observability.InitTelemetry(ctx, cfg.Telemetry.ServiceName, cfg.Telemetry.Enabled)
	if err != nil {
		logging.Error("❌ Ошибка инициализации трассировки: %v", err)
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			logging.Warn("Ошибка остановки трассировки: %v", err)
		}
	}()

	logging.Info("🌍 Генерация мира %q %dx%d (seed=%d)",
		cfg.World.Name, cfg.World.Width, cfg.World.Height, cfg.Noise.Seed)

	gen, err := cfg.NewGenerator()
	if err != nil {
		logging.Error("❌ Ошибка создания генератора: %v", err)
		os.Exit(1)
	}

	terrain := gen.GenerateContext(ctx, world.NewSize(cfg.World.Width, cfg.World.Height))
	registry := world.DefaultRegistry()
	inst, err := registry.Publish(cfg.World.Name, terrain)
	if err != nil {
		logging.Error("❌ Ошибка публикации мира: %v", err)
		os.Exit(1)
	}

	if err := warmup(ctx, inst, cfg.Sampler); err != nil {
		logging.Warn("Прогрев чанков прерван: %v", err)
	}

	restServer := api.NewRestServer(api.Config{
		Port:      fmt.Sprintf(":%d", cfg.Server.GetRESTPort()),
		Registry:  registry,
		ChunkSize: cfg.Sampler.ChunkSize,
	})
	go func() {
		if err := restServer.Start(); err != nil {
			logging.Error("❌ REST API остановлен с ошибкой: %v", err)
		}
	}()

	logging.Info("✅ Мир %q опубликован, REST API на порту %d", inst.Name, cfg.Server.GetRESTPort())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logging.Info("📡 Получен сигнал %v, завершение работы...", sig)

	stopCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := restServer.Stop(stopCtx); err != nil {
		logging.Error("❌ Ошибка остановки REST API: %v", err)
	}

	logging.Info("👋 Сервер остановлен")
}

// warmup проходит чанки вокруг центра карты так же, как хост при первом построении мешей
func warmup(ctx context.Context, inst *world.WorldInstance, cfg config.SamplerConfig) error {
	if cfg.WarmupRadius <= 0 {
		return nil
	}

	s := sampler.New(inst.Contract(), cfg.ChunkSize, cfg.Workers)
	start := time.Now()
	summaries, err := s.SampleChunks(ctx, sampler.ChunksAround(vec.Vec3{}, cfg.WarmupRadius))
	if err != nil {
		return err
	}

	total := sampler.Totals(summaries)
	logging.Info("🧱 Прогрев: %d чанков за %v (solid=%d, air=%d, unset=%d)",
		len(summaries), time.Since(start), total.Solid, total.Air, total.Unset)
	return nil
}
