package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"led-tracker/internal/domain/entity"
	"led-tracker/internal/domain/port"
	"led-tracker/internal/log"
)

// SessionState — состояние сессии трекинга.
type SessionState string

const (
	StateIdle    SessionState = "idle"    // цикл кадров ещё не запущен
	StateRunning SessionState = "running" // кадры обрабатываются
	StateStopped SessionState = "stopped" // источник исчерпан, терминальное
)

// TrackingSession обрабатывает кадры источника по конвейеру
// кроп → разбор на каналы → детекция → накопление → нормализация → отправка.
// Набор каналов, пороги и ROI фиксируются при создании.
type TrackingSession struct {
	id           uuid.UUID
	source       port.FrameSource
	detector     port.Detector
	sender       port.PositionSender
	trajectories port.TrajectoryRepository

	thresholds  map[entity.Channel]int
	roi         *entity.ROI
	pixelCoords bool
	frameSize   entity.FrameSize

	state  SessionState
	frames int
}

// NewTrackingSession валидирует конфигурацию сессии и готовит её к запуску.
// Невалидные пороги или ROI фатальны до чтения первого кадра.
func NewTrackingSession(
	source port.FrameSource,
	detector port.Detector,
	sender port.PositionSender,
	trajectories port.TrajectoryRepository,
	thresholds map[entity.Channel]int,
	roi *entity.ROI,
	pixelCoords bool,
) (*TrackingSession, error) {
	if len(thresholds) == 0 {
		return nil, fmt.Errorf("no channels configured for tracking")
	}
	for ch, t := range thresholds {
		if _, err := entity.ParseChannel(string(ch)); err != nil {
			return nil, fmt.Errorf("configure session: %w", err)
		}
		if t < 0 || t > 255 {
			return nil, fmt.Errorf("threshold %d for channel %q is outside [0, 255]", t, ch)
		}
	}

	frameSize := source.Size()
	if roi != nil {
		if err := roi.Validate(frameSize); err != nil {
			return nil, fmt.Errorf("configure session: %w", err)
		}
		frameSize = roi.Size()
	}

	return &TrackingSession{
		id:           uuid.New(),
		source:       source,
		detector:     detector,
		sender:       sender,
		trajectories: trajectories,
		thresholds:   thresholds,
		roi:          roi,
		pixelCoords:  pixelCoords,
		frameSize:    frameSize,
		state:        StateIdle,
	}, nil
}

// ID возвращает идентификатор сессии.
func (s *TrackingSession) ID() uuid.UUID {
	return s.id
}

// State возвращает текущее состояние сессии.
func (s *TrackingSession) State() SessionState {
	return s.state
}

// FramesProcessed возвращает число обработанных кадров.
func (s *TrackingSession) FramesProcessed() int {
	return s.frames
}

// FrameSize возвращает размер кадра, каким его видит детектор (после кропа).
func (s *TrackingSession) FrameSize() entity.FrameSize {
	return s.frameSize
}

// Run крутит цикл кадров до исчерпания источника или отмены контекста
// и возвращает накопленные траектории. Источник освобождается на любом
// пути выхода. Ошибки отправки логируются и не прерывают сессию.
func (s *TrackingSession) Run(ctx context.Context) (map[entity.Channel][]entity.Position, error) {
	defer s.source.Close()

	s.state = StateRunning
	defer func() { s.state = StateStopped }()

	log.Info("tracking session started",
		"session", s.id.String(),
		"frame_size", fmt.Sprintf("%dx%d", s.frameSize.Width, s.frameSize.Height),
		"pixel_coords", s.pixelCoords,
	)

	for {
		select {
		case <-ctx.Done():
			log.Info("tracking session cancelled", "session", s.id.String(), "frames", s.frames)
			return s.trajectories.Snapshot(), ctx.Err()
		default:
		}

		frame, ok := s.source.ReadFrame()
		if !ok {
			break
		}

		s.processFrame(frame)
		s.frames++
	}

	log.Info("tracking session finished", "session", s.id.String(), "frames", s.frames)
	return s.trajectories.Snapshot(), nil
}

// processFrame прогоняет один кадр через конвейер в фиксированном
// порядке каналов.
func (s *TrackingSession) processFrame(frame *entity.Frame) {
	cropped := frame.Crop(s.roi)
	planes := cropped.Split()

	for _, ch := range entity.Channels {
		threshold, tracked := s.thresholds[ch]
		if !tracked {
			continue
		}

		pos := s.detector.Detect(planes[ch], threshold)
		s.trajectories.Append(ch, pos)

		norm := entity.Normalize(pos, s.frameSize, s.pixelCoords)
		if err := s.sender.Send(ch, norm, s.frameSize); err != nil {
			log.Warn("failed to send position", "session", s.id.String(), "channel", string(ch), "error", err)
		}

		log.Debug("position", "channel", string(ch), "x", norm.X, "y", norm.Y)
	}
}
