package container

import (
	app "led-tracker/internal/application"
	"led-tracker/internal/domain/entity"
	"led-tracker/internal/domain/port"
	"led-tracker/internal/infrastructure/storage"
	"led-tracker/internal/infrastructure/vision"
)

type Container struct {
	Trajectories port.TrajectoryRepository
	Detector     port.Detector
	Session      *app.TrackingSession
}

// New собирает сессию трекинга из источника кадров, отправителя
// и настроек каналов.
func New(
	source port.FrameSource,
	sender port.PositionSender,
	thresholds map[entity.Channel]int,
	roi *entity.ROI,
	pixelCoords bool,
) (*Container, error) {
	trajectories := storage.NewMemoryTrajectoryRepository()
	detector := vision.NewBlobDetector()

	session, err := app.NewTrackingSession(source, detector, sender, trajectories, thresholds, roi, pixelCoords)
	if err != nil {
		return nil, err
	}

	return &Container{
		Trajectories: trajectories,
		Detector:     detector,
		Session:      session,
	}, nil
}
