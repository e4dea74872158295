package metrics

import (
	"runtime"
	"time"

	"go.uber.org/zap"
)

const systemCollectInterval = 10 * time.Second

// StartSystemMetricsCollector starts a goroutine that periodically collects
// goroutine and memory statistics
func StartSystemMetricsCollector(logger *zap.Logger) {
	if logger == nil {
		return
	}

	go func() {
		ticker := time.NewTicker(systemCollectInterval)
		defer ticker.Stop()

		for range ticker.C {
			collectSystemMetrics()
		}
	}()

	logger.Info("System metrics collector started")
}

func collectSystemMetrics() {
	m := Get()
	if m == nil {
		return
	}

	m.ProcessGoroutines.Set(float64(runtime.NumGoroutine()))

	var mStats runtime.MemStats
	runtime.ReadMemStats(&mStats)

	m.ProcessMemoryBytes.WithLabelValues("heap").Set(float64(mStats.HeapAlloc))
	m.ProcessMemoryBytes.WithLabelValues("stack").Set(float64(mStats.StackInuse))
	m.ProcessMemoryBytes.WithLabelValues("sys").Set(float64(mStats.Sys))
}
