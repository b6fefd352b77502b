package monitor

import (
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
)

var startedAt = time.Now()

// RegisterMonitorPage exposes a small status endpoint for the ops box.
func RegisterMonitorPage(router *gin.Engine) {
	router.GET("/monitor", func(c *gin.Context) {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		c.JSON(200, gin.H{
			"status":        "ok",
			"uptime":        time.Since(startedAt).Round(time.Second).String(),
			"goroutines":    runtime.NumGoroutine(),
			"heap_alloc_mb": float64(m.HeapAlloc) / (1024 * 1024),
			"num_gc":        m.NumGC,
			"go_version":    runtime.Version(),
		})
	})
}
