package api

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v3/process"
)

// ServerMetrics содержит метрики процесса для /health
type ServerMetrics struct {
	StartTime time.Time
}

// NewServerMetrics создает новый экземпляр метрик
func NewServerMetrics() *ServerMetrics {
	return &ServerMetrics{
		StartTime: time.Now(),
	}
}

// GetUptime возвращает время работы сервера
func (sm *ServerMetrics) GetUptime() string {
	uptime := time.Since(sm.StartTime)

	hours := int(uptime.Hours())
	minutes := int(uptime.Minutes()) % 60
	seconds := int(uptime.Seconds()) % 60

	if hours > 0 {
		return fmt.Sprintf("%dч %dм %dс", hours, minutes, seconds)
	} else if minutes > 0 {
		return fmt.Sprintf("%dм %dс", minutes, seconds)
	}
	return fmt.Sprintf("%dс", seconds)
}

// GetHeapUsage возвращает размер кучи Go в MB
func (sm *ServerMetrics) GetHeapUsage() float64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return float64(m.HeapAlloc) / 1024 / 1024
}

// GetProcessStats возвращает RSS процесса в MB и загрузку CPU в процентах
func (sm *ServerMetrics) GetProcessStats() (rssMB float64, cpuPercent float64, err error) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return 0, 0, err
	}

	mem, err := proc.MemoryInfo()
	if err != nil {
		return 0, 0, err
	}
	cpuPercent, err = proc.CPUPercent()
	if err != nil {
		return 0, 0, err
	}
	return float64(mem.RSS) / 1024 / 1024, cpuPercent, nil
}

// Snapshot собирает метрики в карту для JSON-ответа
func (sm *ServerMetrics) Snapshot() map[string]interface{} {
	out := map[string]interface{}{
		"uptime":     sm.GetUptime(),
		"heap_mb":    sm.GetHeapUsage(),
		"goroutines": runtime.NumGoroutine(),
	}
	if rss, cpu, err := sm.GetProcessStats(); err == nil {
		out["rss_mb"] = rss
		out["cpu_percent"] = cpu
	}
	return out
}
