// Package clipboard abstracts the single-slot text clipboard. Commands take a
// Clipboard as an injected collaborator so the core stays testable without
// real OS clipboard access.
package clipboard

import (
	"fmt"

	atotto "github.com/atotto/clipboard"
)

// Clipboard reads and writes a single text slot.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(text string) error
}

// System is the OS clipboard.
type System struct{}

func NewSystem() System { return System{} }

func (System) ReadText() (string, error) {
	s, err := atotto.ReadAll()
	if err != nil {
		return "", fmt.Errorf("read clipboard: %w", err)
	}
	return s, nil
}

func (System) WriteText(text string) error {
	if err := atotto.WriteAll(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}

// Available reports whether the OS clipboard can be used in this environment
// (headless sessions typically lack one).
func Available() bool { return !atotto.Unsupported }

// Memory is an in-process clipboard used by tests and as a headless fallback.
type Memory struct {
	text string
	set  bool
}

func NewMemory() *Memory { return &Memory{} }

func (m *Memory) ReadText() (string, error) {
	if !m.set {
		return "", fmt.Errorf("clipboard is empty")
	}
	return m.text, nil
}

func (m *Memory) WriteText(text string) error {
	m.text = text
	m.set = true
	return nil
}
