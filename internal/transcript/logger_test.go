package transcript

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoggerWritesPerSessionNDJSON(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	logger, err := NewLogger(Config{
		Enabled:   true,
		Dir:       dir,
		QueueSize: 16,
	})
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}

	logger.Log(Event{
		SessionID: "sess-1",
		Channel:   ChannelGame,
		EventType: "question",
		Content:   "can it fly",
	})
	logger.Log(Event{
		SessionID: "sess-1",
		Channel:   ChannelGame,
		EventType: "answer",
		Content:   "No, this object cannot fly.",
		GameOver:  false,
	})

	// Close drains the queue.
	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "sess-1.ndjson"))
	if err != nil {
		t.Fatalf("reading transcript file: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}

	var got Event
	if err := json.Unmarshal([]byte(lines[0]), &got); err != nil {
		t.Fatalf("unmarshal line: %v", err)
	}
	if got.Content != "can it fly" || got.Channel != ChannelGame {
		t.Errorf("unexpected event: %+v", got)
	}
	if got.Timestamp.IsZero() {
		t.Error("timestamp should be stamped on enqueue")
	}
}

func TestLoggerGlobalStream(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "all.ndjson")
	logger, err := NewLogger(Config{
		GlobalEnabled: true,
		GlobalPath:    path,
		QueueSize:     4,
	})
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}

	logger.Log(Event{SessionID: "a", Channel: ChannelChat, EventType: "chat_user", Content: "hi"})
	logger.Log(Event{SessionID: "b", Channel: ChannelChat, EventType: "chat_user", Content: "yo"})
	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading global file: %v", err)
	}
	if got := len(strings.Split(strings.TrimSpace(string(data)), "\n")); got != 2 {
		t.Errorf("expected 2 global lines, got %d", got)
	}
}

func TestLoggerDisabledIsNoop(t *testing.T) {
	t.Parallel()

	logger, err := NewLogger(Config{})
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}
	logger.Log(Event{SessionID: "x"})
	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
}
