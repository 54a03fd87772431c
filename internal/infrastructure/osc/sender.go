package osc

import (
	"fmt"

	goosc "github.com/hypebeast/go-osc/osc"

	"led-tracker/internal/domain/entity"
	"led-tracker/internal/domain/port"
)

// Sender отправляет позиции LED по OSC/UDP,
// на каждый канал — свой UDP-клиент со своим портом.
type Sender struct {
	clients map[entity.Channel]*goosc.Client
}

// NewSender создаёт отправителя для заданного хоста и портов по каналам.
func NewSender(host string, ports map[entity.Channel]int) (*Sender, error) {
	if len(ports) == 0 {
		return nil, fmt.Errorf("no channel ports configured")
	}

	clients := make(map[entity.Channel]*goosc.Client, len(ports))
	for ch, p := range ports {
		if _, err := entity.ParseChannel(string(ch)); err != nil {
			return nil, fmt.Errorf("configure sender: %w", err)
		}
		clients[ch] = goosc.NewClient(host, p)
	}

	return &Sender{clients: clients}, nil
}

// Send отправляет позицию канала на его endpoint. Отказ доставки —
// забота получателя UDP, здесь возвращается только ошибка записи сокета.
func (s *Sender) Send(ch entity.Channel, pos entity.NormalizedPosition, size entity.FrameSize) error {
	client, ok := s.clients[ch]
	if !ok {
		return fmt.Errorf("no endpoint for channel %q", ch)
	}

	if err := client.Send(buildMessage(ch, pos, size)); err != nil {
		return fmt.Errorf("send channel %q: %w", ch, err)
	}
	return nil
}

// buildMessage готовит OSC-сообщение: адрес "/<канал>",
// аргументы — координаты и размер кадра в float32.
func buildMessage(ch entity.Channel, pos entity.NormalizedPosition, size entity.FrameSize) *goosc.Message {
	msg := goosc.NewMessage("/" + string(ch))
	msg.Append(float32(pos.X))
	msg.Append(float32(pos.Y))
	msg.Append(float32(size.Width))
	msg.Append(float32(size.Height))
	return msg
}

var _ port.PositionSender = (*Sender)(nil)
