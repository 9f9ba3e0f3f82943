package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/annel0/terrain-map/internal/logging"
	"github.com/annel0/terrain-map/internal/middleware"
	"github.com/annel0/terrain-map/internal/world"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// RestServer представляет HTTP API для просмотра опубликованных карт
type RestServer struct {
	router     *gin.Engine
	registry   *world.Registry
	port       string
	metrics    *ServerMetrics
	chunkSize  int
	log        *logging.Logger
	httpServer *http.Server
}

// Config содержит конфигурацию для REST сервера
type Config struct {
	Port       string                // адрес для запуска, например ":8090"
	Registry   *world.Registry       // реестр опубликованных миров
	ChunkSize  int                   // ребро чанка для /chunk
	Registerer prometheus.Registerer // куда регистрировать HTTP-метрики
	Gatherer   prometheus.Gatherer   // откуда /metrics берёт метрики
}

// GenericResponse представляет общий ответ API
type GenericResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// NewRestServer создает новый REST API сервер
func NewRestServer(config Config) *RestServer {
	if config.Port == "" {
		config.Port = ":8090"
	}
	if config.Registry == nil {
		config.Registry = world.DefaultRegistry()
	}
	if config.ChunkSize <= 0 {
		config.ChunkSize = 32
	}
	if config.Registerer == nil {
		config.Registerer = prometheus.DefaultRegisterer
	}
	if config.Gatherer == nil {
		config.Gatherer = prometheus.DefaultGatherer
	}

	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())

	log := logging.GetAPILogger()
	router.Use(otelgin.Middleware("terrain_api"))
	router.Use(middleware.NewRequestLogger(log).Handler())

	promMw := middleware.NewPrometheusMiddleware("terrain_api", config.Registerer)
	router.Use(promMw.Handler())
	promMw.RegisterMetricsEndpoint(router, config.Gatherer)

	server := &RestServer{
		router:    router,
		registry:  config.Registry,
		port:      config.Port,
		metrics:   NewServerMetrics(),
		chunkSize: config.ChunkSize,
		log:       log,
	}
	server.httpServer = &http.Server{Addr: config.Port, Handler: router}
	server.setupRoutes()
	return server
}

// setupRoutes настраивает маршруты REST API
func (rs *RestServer) setupRoutes() {
	rs.router.GET("/health", rs.handleHealth)

	api := rs.router.Group("/api")
	api.GET("/atlas", rs.handleAtlas)
	api.GET("/worlds", rs.handleListWorlds)

	worlds := api.Group("/worlds/:name")
	{
		worlds.GET("", rs.handleWorldInfo)
		worlds.GET("/column", rs.handleColumn)
		worlds.GET("/voxel", rs.handleVoxel)
		worlds.GET("/chunk/:cx/:cy/:cz", rs.handleChunk)
		worlds.GET("/columns", rs.handleColumnsDump)
	}
}

// Handler возвращает http.Handler сервера (для тестов и встраивания)
func (rs *RestServer) Handler() http.Handler {
	return rs.router
}

// Start запускает REST сервер и блокируется до Stop
func (rs *RestServer) Start() error {
	rs.log.Info("REST API слушает %s", rs.port)
	if err := rs.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop плавно останавливает REST сервер
func (rs *RestServer) Stop(ctx context.Context) error {
	return rs.httpServer.Shutdown(ctx)
}
