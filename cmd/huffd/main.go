package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"huffpack/internal/config"
	"huffpack/internal/handler"
	"huffpack/internal/router"
	"huffpack/internal/service"
	"huffpack/pkg/logger"
)

func main() {
	cfg := config.Load()
	logg := logger.New()

	svc := service.NewCodecService(logg)
	h := handler.NewCodecHandler(svc)

	r := gin.Default()
	router.Register(r, router.Dependencies{
		CodecHandler:   h,
		MaxUploadBytes: cfg.MaxUploadBytes,
	})

	logg.Infof("listening on %s", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
