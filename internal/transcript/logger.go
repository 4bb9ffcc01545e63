// Package transcript provides async NDJSON logging of game and chat turns.
package transcript

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Event is one logged exchange.
type Event struct {
	Timestamp time.Time `json:"ts"`
	SessionID string    `json:"session_id"`
	Channel   string    `json:"channel"`    // "game" or "chat"
	EventType string    `json:"event_type"` // question, answer, guess, hint, reset, chat_user, chat_reply
	Content   string    `json:"content,omitempty"`
	GameOver  bool      `json:"game_over,omitempty"`
}

// Channel values.
const (
	ChannelGame = "game"
	ChannelChat = "chat"
)

// Logger records events without blocking request handling.
type Logger interface {
	Log(event Event)
	Close() error
}

// Config controls the logger. Disabled yields a no-op logger.
type Config struct {
	Enabled       bool
	Dir           string
	GlobalEnabled bool
	GlobalPath    string
	QueueSize     int
}

type noopLogger struct{}

func (noopLogger) Log(Event)    {}
func (noopLogger) Close() error { return nil }

// NewLogger creates a transcript logger. Events are queued and written by a
// single background goroutine; when the queue is full events are dropped
// with a warning rather than stalling the request path.
func NewLogger(cfg Config) (Logger, error) {
	if !cfg.Enabled && !cfg.GlobalEnabled {
		return noopLogger{}, nil
	}

	if cfg.Enabled {
		if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
			return nil, fmt.Errorf("create transcript log dir: %w", err)
		}
	}
	if cfg.GlobalEnabled {
		if err := os.MkdirAll(filepath.Dir(cfg.GlobalPath), 0755); err != nil {
			return nil, fmt.Errorf("create global transcript log dir: %w", err)
		}
	}

	queueSize := cfg.QueueSize
	if queueSize <= 0 {
		queueSize = 1000
	}

	l := &fileLogger{
		cfg:   cfg,
		queue: make(chan Event, queueSize),
		done:  make(chan struct{}),
	}
	go l.run()
	return l, nil
}

type fileLogger struct {
	cfg   Config
	queue chan Event
	done  chan struct{}

	closeOnce sync.Once
}

func (l *fileLogger) Log(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	select {
	case l.queue <- event:
	default:
		slog.Warn("Transcript log queue full, dropping event",
			"session_id", event.SessionID, "event_type", event.EventType)
	}
}

// Close drains the queue and stops the writer goroutine.
func (l *fileLogger) Close() error {
	l.closeOnce.Do(func() {
		close(l.queue)
		<-l.done
	})
	return nil
}

func (l *fileLogger) run() {
	defer close(l.done)
	for event := range l.queue {
		line, err := json.Marshal(event)
		if err != nil {
			slog.Error("Failed to marshal transcript event", "error", err)
			continue
		}
		line = append(line, '\n')

		if l.cfg.Enabled {
			path := filepath.Join(l.cfg.Dir, event.SessionID+".ndjson")
			if err := appendFile(path, line); err != nil {
				slog.Error("Failed to write transcript log", "error", err, "path", path)
			}
		}
		if l.cfg.GlobalEnabled {
			if err := appendFile(l.cfg.GlobalPath, line); err != nil {
				slog.Error("Failed to write global transcript log", "error", err, "path", l.cfg.GlobalPath)
			}
		}
	}
}

func appendFile(path string, line []byte) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.Write(line)
	return err
}
