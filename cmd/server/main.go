package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/youruser/imagegen/internal/api"
	"github.com/youruser/imagegen/internal/config"
	imagepkg "github.com/youruser/imagegen/internal/image"
	"github.com/youruser/imagegen/internal/logos"
	"github.com/youruser/imagegen/internal/textlayout"
)

func main() {
	configPath := flag.String("config", "", "optional YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	gin.SetMode(cfg.GinMode)

	fonts, err := textlayout.NewFontManager(cfg.FontPath)
	if err != nil {
		log.Fatal(err)
	}

	// Logos are rasterized before the first request is served.
	cache := logos.NewCache(textlayout.Bold(), imagepkg.LogoSizes()...)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	err = cache.Load(ctx)
	cancel()
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("rasterized %d logos at sizes %v", len(logos.Names()), cache.Sizes())

	r := gin.Default()
	r.MaxMultipartMemory = cfg.MaxUploadBytes()
	api.RegisterRoutes(r, api.NewHandler(imagepkg.NewCompositor(cache, fonts), cache, cfg))

	log.Println("starting server on http://localhost:" + cfg.Port + " (text font: " + fonts.Name() + ")")
	if err := r.Run(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
