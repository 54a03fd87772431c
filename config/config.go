package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"led-tracker/internal/domain/entity"
)

// Config — неизменяемая конфигурация сессии трекинга.
// Собирается один раз при старте, дальше только читается.
type Config struct {
	ServerAddress string // адрес сервера, принимающего позиции
	PixelCoords   bool   // слать пиксельные координаты вместо [0,1]

	RPort int // порт для позиций красного LED
	GPort int // порт для позиций зелёного LED
	BPort int // порт для позиций синего LED

	RThreshold int // порог детекции красного канала (0-255)
	GThreshold int // порог детекции зелёного канала (0-255)
	BThreshold int // порог детекции синего канала (0-255)

	DeviceIndex int // индекс видеоустройства
	FrameRate   int // частота кадров камеры
	FrameWidth  int // запрошенная ширина кадра, 0 — как у камеры
	FrameHeight int // запрошенная высота кадра, 0 — как у камеры

	ROI *entity.ROI // прямоугольник кропа, nil — без кропа

	LogLevel string
	LogJSON  bool // писать логи в JSON вместо текста
}

// Load читает конфигурацию из окружения (и .env файла, если он есть)
// и валидирует её.
func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		ServerAddress: getString("SERVER_ADDRESS", "localhost"),
		LogLevel:      getString("LOG_LEVEL", "info"),
	}

	var err error
	if cfg.PixelCoords, err = getBool("PIXEL_COORDS", false); err != nil {
		return nil, err
	}
	if cfg.LogJSON, err = getBool("LOG_JSON", false); err != nil {
		return nil, err
	}
	if cfg.RPort, err = getInt("R_PORT", 1); err != nil {
		return nil, err
	}
	if cfg.GPort, err = getInt("G_PORT", 2); err != nil {
		return nil, err
	}
	if cfg.BPort, err = getInt("B_PORT", 3); err != nil {
		return nil, err
	}
	if cfg.RThreshold, err = getInt("R_THR", 228); err != nil {
		return nil, err
	}
	if cfg.GThreshold, err = getInt("G_THR", 228); err != nil {
		return nil, err
	}
	if cfg.BThreshold, err = getInt("B_THR", 228); err != nil {
		return nil, err
	}
	if cfg.DeviceIndex, err = getInt("DEVICE_INDEX", 0); err != nil {
		return nil, err
	}
	if cfg.FrameRate, err = getInt("FRAME_RATE", 60); err != nil {
		return nil, err
	}
	if cfg.FrameWidth, cfg.FrameHeight, err = getResolution("RESOLUTION"); err != nil {
		return nil, err
	}
	if cfg.ROI, err = getROI("ROI"); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет пороги, порты и ROI. Любая ошибка здесь фатальна
// для старта сессии — ни один кадр не должен быть обработан.
func (c *Config) Validate() error {
	for ch, t := range c.Thresholds() {
		if t < 0 || t > 255 {
			return fmt.Errorf("threshold %d for channel %q is outside [0, 255]", t, ch)
		}
	}

	seen := make(map[int]entity.Channel)
	for _, ch := range entity.Channels {
		p := c.Ports()[ch]
		if p <= 0 || p > 65535 {
			return fmt.Errorf("port %d for channel %q is invalid", p, ch)
		}
		if other, dup := seen[p]; dup {
			return fmt.Errorf("channels %q and %q are bound to the same port %d", other, ch, p)
		}
		seen[p] = ch
	}

	if c.FrameRate <= 0 {
		return fmt.Errorf("frame rate %d is invalid", c.FrameRate)
	}
	if (c.FrameWidth == 0) != (c.FrameHeight == 0) {
		return fmt.Errorf("resolution must set both width and height")
	}

	if c.ROI != nil {
		if c.ROI.Top < 0 || c.ROI.Left < 0 || c.ROI.Top >= c.ROI.Bottom || c.ROI.Left >= c.ROI.Right {
			return fmt.Errorf("roi (%d,%d,%d,%d) is malformed",
				c.ROI.Top, c.ROI.Left, c.ROI.Bottom, c.ROI.Right)
		}
	}

	return nil
}

// Thresholds возвращает пороги по каналам в виде, который ждёт сессия.
func (c *Config) Thresholds() map[entity.Channel]int {
	return map[entity.Channel]int{
		entity.ChannelRed:   c.RThreshold,
		entity.ChannelGreen: c.GThreshold,
		entity.ChannelBlue:  c.BThreshold,
	}
}

// Ports возвращает порты endpoint'ов по каналам.
func (c *Config) Ports() map[entity.Channel]int {
	return map[entity.Channel]int{
		entity.ChannelRed:   c.RPort,
		entity.ChannelGreen: c.GPort,
		entity.ChannelBlue:  c.BPort,
	}
}

// Resolution возвращает запрошенное разрешение камеры, nil — не задано.
func (c *Config) Resolution() *entity.FrameSize {
	if c.FrameWidth == 0 && c.FrameHeight == 0 {
		return nil
	}
	return &entity.FrameSize{Width: c.FrameWidth, Height: c.FrameHeight}
}

func getString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func getBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

// getResolution разбирает значение вида "640x480".
func getResolution(key string) (width, height int, err error) {
	v := os.Getenv(key)
	if v == "" {
		return 0, 0, nil
	}

	parts := strings.Split(v, "x")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%s: expected WIDTHxHEIGHT, got %q", key, v)
	}
	if width, err = strconv.Atoi(parts[0]); err != nil {
		return 0, 0, fmt.Errorf("%s: %w", key, err)
	}
	if height, err = strconv.Atoi(parts[1]); err != nil {
		return 0, 0, fmt.Errorf("%s: %w", key, err)
	}
	return width, height, nil
}

// getROI разбирает значение вида "top,left,bottom,right".
func getROI(key string) (*entity.ROI, error) {
	v := os.Getenv(key)
	if v == "" {
		return nil, nil
	}

	parts := strings.Split(v, ",")
	if len(parts) != 4 {
		return nil, fmt.Errorf("%s: expected top,left,bottom,right, got %q", key, v)
	}

	nums := make([]int, 4)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		nums[i] = n
	}

	return &entity.ROI{Top: nums[0], Left: nums[1], Bottom: nums[2], Right: nums[3]}, nil
}
