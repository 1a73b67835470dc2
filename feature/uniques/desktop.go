package uniques

import (
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
)

// Window reports whether the game window has focus.
type Window interface {
	IsForegroundTarget() bool
}

// Clipboard reads the copied item text.
type Clipboard interface {
	ReadClipboard() (string, error)
}

// Chat shows a notice in the game's chat log.
type Chat interface {
	AppendToTargetLog(msg string)
}

// AlwaysFocused is a Window for headless use.
type AlwaysFocused struct{}

func (AlwaysFocused) IsForegroundTarget() bool { return true }

// ReaderClipboard reads item text from a file, or from Reader when Path is empty.
type ReaderClipboard struct {
	Path   string
	Reader io.Reader
}

func (c ReaderClipboard) ReadClipboard() (string, error) {
	if c.Path != "" {
		raw, err := os.ReadFile(c.Path)
		return string(raw), err
	}
	if c.Reader == nil {
		return "", nil
	}
	raw, err := io.ReadAll(c.Reader)
	return string(raw), err
}

// StaticClipboard returns fixed text.
type StaticClipboard string

func (c StaticClipboard) ReadClipboard() (string, error) { return string(c), nil }

// LogChat writes chat notices to a logger.
type LogChat struct {
	Logger *zap.Logger
}

func (c LogChat) AppendToTargetLog(msg string) {
	c.Logger.Info(strings.TrimSpace(msg), zap.String("sink", "chat"))
}
