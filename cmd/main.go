package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"led-tracker/config"
	"led-tracker/internal/container"
	"led-tracker/internal/infrastructure/osc"
	"led-tracker/internal/infrastructure/vision"
	applog "led-tracker/internal/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	applog.Init(cfg.LogLevel, cfg.LogJSON)

	// Открываем камеру (требует сборки с тегом gocv)
	camera, err := vision.OpenCamera(cfg.DeviceIndex, cfg.FrameRate, cfg.Resolution())
	if err != nil {
		log.Fatalf("Failed to open camera: %v", err)
	}

	// Создаём OSC-отправителя с портом на каждый канал
	sender, err := osc.NewSender(cfg.ServerAddress, cfg.Ports())
	if err != nil {
		camera.Close()
		log.Fatalf("Failed to create sender: %v", err)
	}

	// Собираем сессию трекинга
	c, err := container.New(camera, sender, cfg.Thresholds(), cfg.ROI, cfg.PixelCoords)
	if err != nil {
		camera.Close()
		log.Fatalf("Failed to configure session: %v", err)
	}

	// Ctrl+C останавливает цикл кадров
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	trajectories, err := c.Session.Run(ctx)
	if err != nil && ctx.Err() == nil {
		log.Fatalf("Session error: %v", err)
	}

	for ch, track := range trajectories {
		applog.Info("trajectory collected", "channel", string(ch), "positions", len(track))
	}
}
