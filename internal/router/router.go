package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"huffpack/internal/handler"
)

type Dependencies struct {
	CodecHandler *handler.CodecHandler

	// MaxUploadBytes caps request bodies on the upload routes; 0 disables
	// the cap.
	MaxUploadBytes int64
}

func Register(r *gin.Engine, d Dependencies) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	v1 := r.Group("/api/v1")
	if d.MaxUploadBytes > 0 {
		v1.Use(func(c *gin.Context) {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, d.MaxUploadBytes)
			c.Next()
		})
	}
	{
		v1.POST("/compress", d.CodecHandler.Compress)
		v1.POST("/decompress", d.CodecHandler.Decompress)
	}
}
