package mocks

import (
	"context"
	"sync"
	"trekdesk/infras/realtime"
)

type Notification struct {
	Topic   string
	Event   string
	Payload any
}

// Recorder is a Notifier that keeps every notification in memory.
type Recorder struct {
	mu            sync.Mutex
	notifications []Notification
}

var _ realtime.Notifier = (*Recorder)(nil)

func NewRecorder() *Recorder {
	return &Recorder{}
}

// Notify implements realtime.Notifier.
func (r *Recorder) Notify(_ context.Context, topic, event string, payload any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.notifications = append(r.notifications, Notification{Topic: topic, Event: event, Payload: payload})
}

func (r *Recorder) Notifications() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Notification(nil), r.notifications...)
}

func (r *Recorder) Events(event string) []Notification {
	matched := []Notification{}

	for _, notification := range r.Notifications() {
		if notification.Event == event {
			matched = append(matched, notification)
		}
	}

	return matched
}
