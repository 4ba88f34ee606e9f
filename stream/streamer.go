package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/matt-g-everett/logocube/scene"
	"go.uber.org/zap"
)

// PointerMessage is the payload of the pointer topic, in normalised
// viewport coordinates.
type PointerMessage struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ParsePointer decodes a pointer payload and checks its range.
func ParsePointer(payload []byte) (scene.PointerEvent, error) {
	var msg PointerMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		return scene.PointerEvent{}, fmt.Errorf("pointer payload: %w", err)
	}
	if msg.X < 0 || msg.X > 1 || msg.Y < 0 || msg.Y > 1 {
		return scene.PointerEvent{}, fmt.Errorf("pointer (%v, %v) outside [0, 1]", msg.X, msg.Y)
	}
	return scene.PointerEvent{X: msg.X, Y: msg.Y, Normalized: true}, nil
}

// Streamer bridges the director and an MQTT broker: it publishes state
// frames and queues remote pointer presses.
type Streamer struct {
	config scene.MqttConfig
	client mqtt.Client
	source scene.StateSource
	inbox  chan<- scene.PointerEvent
	log    *zap.Logger
}

// NewStreamer creates an instance of a Streamer.
func NewStreamer(config scene.MqttConfig, client mqtt.Client, source scene.StateSource,
	inbox chan<- scene.PointerEvent, logger *zap.Logger) *Streamer {

	s := new(Streamer)
	s.config = config
	s.client = client
	s.source = source
	s.inbox = inbox
	s.log = logger
	return s
}

func (s *Streamer) handlePointer(client mqtt.Client, msg mqtt.Message) {
	ev, err := ParsePointer(msg.Payload())
	if err != nil {
		s.log.Warn("Ignoring pointer message", zap.String("topic", msg.Topic()), zap.Error(err))
		return
	}
	ev.Source = "mqtt"
	if !scene.Offer(s.inbox, ev) {
		s.log.Warn("Pointer inbox full, dropping event", zap.String("topic", msg.Topic()))
	}
}

// Subscribe listens for pointer presses. It is called from the connect
// handler so that it runs again after a reconnect.
func (s *Streamer) Subscribe() error {
	topic := s.config.Topics.Pointer
	if token := s.client.Subscribe(topic, 0, s.handlePointer); token.Wait() && token.Error() != nil {
		return fmt.Errorf("subscribe %s: %w", topic, token.Error())
	}
	s.log.Info("Subscribed", zap.String("topic", topic))
	return nil
}

// SendFrame publishes the latest state as a binary frame.
func (s *Streamer) SendFrame() error {
	f := NewStateFrame(s.source.Snapshot())
	b, err := f.MarshalBinary()
	if err != nil {
		return err
	}
	token := s.client.Publish(s.config.Topics.State, 0, false, b)
	token.Wait()
	return token.Error()
}

// Run publishes frames every PublishInterval until ctx is done.
func (s *Streamer) Run(ctx context.Context) error {
	publishTimer := time.NewTicker(s.config.PublishInterval)
	defer publishTimer.Stop()

	var last uint64
	sent := false
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-publishTimer.C:
			if !s.client.IsConnectionOpen() {
				continue
			}
			frame := s.source.Snapshot().Frame
			if sent && frame == last {
				continue
			}
			if err := s.SendFrame(); err != nil {
				s.log.Warn("Publish failed", zap.String("topic", s.config.Topics.State), zap.Error(err))
				continue
			}
			last, sent = frame, true
		}
	}
}
