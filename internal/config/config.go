package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Options is the user-editable editor configuration, stored as JSON at
// ~/.quillpad/config.json. Zero values fall back to defaults at load time.
type Options struct {
	Wrap      bool   `json:"wrap,omitempty"`      // soft-wrap long lines in the editor view
	TabWidth  int    `json:"tab_width,omitempty"` // columns per tab (default 4)
	Watch     *bool  `json:"watch,omitempty"`     // watch the open file for external changes (default true)
	Clipboard string `json:"clipboard,omitempty"` // "system" (default) or "memory"
}

// Defaults returns the built-in option values.
func Defaults() Options {
	w := true
	return Options{
		Wrap:      false,
		TabWidth:  4,
		Watch:     &w,
		Clipboard: "system",
	}
}

// WatchEnabled returns the watch flag, defaulting to true when unset.
func (o Options) WatchEnabled() bool { return o.Watch == nil || *o.Watch }

// Path returns the config file location under the user's home directory.
func Path() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".quillpad", "config.json")
}

// Load reads options from path, filling unset fields from Defaults. A missing
// file is not an error: defaults are returned.
func Load(path string) (Options, error) {
	opts := Defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return opts, nil
		}
		return opts, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, &opts); err != nil {
		return Defaults(), fmt.Errorf("parse config JSON: %w", err)
	}
	if opts.TabWidth <= 0 {
		opts.TabWidth = 4
	}
	if opts.Clipboard == "" {
		opts.Clipboard = "system"
	}
	if opts.Clipboard != "system" && opts.Clipboard != "memory" {
		return Defaults(), fmt.Errorf("config: clipboard must be \"system\" or \"memory\", got %q", opts.Clipboard)
	}
	return opts, nil
}

// Save writes options as indented JSON, creating the parent directory.
func Save(path string, opts Options) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := json.MarshalIndent(opts, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
