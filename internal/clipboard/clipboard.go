// Package clipboard writes text to the system clipboard.
package clipboard

import (
	"sync"

	"golang.design/x/clipboard"

	perrors "github.com/zhubert/formplay/internal/errors"
	"github.com/zhubert/formplay/internal/logger"
)

// Writer puts text on a clipboard.
type Writer interface {
	WriteText(text string) error
}

// System is the Writer backed by the OS clipboard.
var System Writer = systemClipboard{}

var (
	initOnce sync.Once
	initErr  error
)

// Init initializes the clipboard. It is safe to call more than once; the
// first result is remembered.
func Init() error {
	initOnce.Do(func() {
		if err := clipboard.Init(); err != nil {
			logger.WithComponent("clipboard").Warn("failed to initialize", "error", err)
			initErr = perrors.ClipboardUnavailable(err)
			return
		}
		logger.WithComponent("clipboard").Debug("initialized")
	})
	return initErr
}

// WriteText writes text to the system clipboard.
func WriteText(text string) error {
	if err := Init(); err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	logger.WithComponent("clipboard").Debug("wrote text", "bytes", len(text))
	return nil
}

type systemClipboard struct{}

func (systemClipboard) WriteText(text string) error { return WriteText(text) }

// Memory is an in-process Writer. It records the last text written.
type Memory struct {
	mu   sync.Mutex
	text string
	err  error
}

// NewMemory creates a Memory clipboard. A non-nil err makes every write fail.
func NewMemory(err error) *Memory {
	return &Memory{err: err}
}

// WriteText records text unless the clipboard was created failing.
func (m *Memory) WriteText(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.text = text
	return nil
}

// Text returns the last text written
func (m *Memory) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}
