// Package session persists lightweight editor state between runs: recently
// opened files and the last caret position per file, kept as JSON under
// ~/.quillpad/state.json.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

const maxRecent = 10

// State is the on-disk session document.
type State struct {
	Recent    []string       `json:"recent,omitempty"` // most recent first
	Carets    map[string]int `json:"carets,omitempty"` // absolute path -> rune index
	UpdatedAt string         `json:"updated_at"`
}

// Path returns the state file location under the user's home directory.
func Path() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".quillpad", "state.json")
}

// Load reads the session state; a missing or unreadable file yields an empty
// state rather than an error, the editor must start regardless.
func Load(path string) *State {
	st := &State{Carets: map[string]int{}}
	data, err := os.ReadFile(path)
	if err != nil {
		return st
	}
	_ = json.Unmarshal(data, st)
	if st.Carets == nil {
		st.Carets = map[string]int{}
	}
	return st
}

// Touch records file as the most recent entry and stores its caret position.
func (st *State) Touch(file string, caret int) {
	if file == "" {
		return
	}
	out := make([]string, 0, len(st.Recent)+1)
	out = append(out, file)
	for _, f := range st.Recent {
		if f != file {
			out = append(out, f)
		}
	}
	if len(out) > maxRecent {
		out = out[:maxRecent]
	}
	st.Recent = out
	st.Carets[file] = caret
}

// Caret returns the stored caret for file, 0 when unknown.
func (st *State) Caret(file string) int { return st.Carets[file] }

// Save writes the state as indented JSON, creating the parent directory.
func Save(path string, st *State) error {
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	st.UpdatedAt = time.Now().Format(time.RFC3339)
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
