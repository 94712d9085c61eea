// Package config loads the dragdemo configuration file. The format is
// line-based: "optionName remaining line is the value", with # comments and
// [column <id>] sections describing the demo board.
package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Config represents the demo application configuration.
type Config struct {
	// Options holds top-level options (attribute names, appearance).
	Options map[string]string
	// Columns describes the board, in file order.
	Columns []Column
	// Warnings contains non-fatal issues found during loading.
	Warnings []string
}

// Column is one dropzone column on the demo board.
type Column struct {
	ID    string
	Title string
	Cards []string
}

// Known top-level option names. Unknown options are kept but flagged with a
// warning so typos surface.
var knownOptions = map[string]bool{
	"draggable-attribute": true,
	"dropzone-attribute":  true,
	"status-line":         true,
}

// NewConfig creates a configuration pre-populated with the default board.
func NewConfig() *Config {
	return &Config{
		Options: map[string]string{
			"draggable-attribute": "data-drag",
			"dropzone-attribute":  "data-drop",
		},
		Columns: []Column{
			{ID: "todo", Title: "To Do", Cards: []string{"design review", "fix flaky test", "update docs"}},
			{ID: "doing", Title: "Doing", Cards: []string{"drag me"}},
			{ID: "done", Title: "Done"},
		},
	}
}

// Load loads configuration from path. A missing file yields the default
// configuration, not an error.
//
// SECURITY: symlinks are rejected to prevent reading unintended files through
// symlink substitution.
func Load(path string) (*Config, error) {
	fi, err := os.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewConfig(), nil
		}
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if fi.Mode()&os.ModeSymlink != 0 {
		return nil, fmt.Errorf("symlink not allowed in config path: %s", path)
	}

	file, err := os.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	return LoadFromReader(file)
}

// LoadFromReader loads configuration from an io.Reader. A file that defines
// no columns gets the default board.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := &Config{Options: make(map[string]string)}
	defaults := NewConfig()

	scanner := bufio.NewScanner(r)
	var current *Column

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			section := strings.TrimSpace(strings.Trim(line, "[]"))
			name, id, _ := strings.Cut(section, " ")
			if name != "column" || id == "" {
				cfg.addWarning("unknown section %q", section)
				current = nil
				continue
			}
			cfg.Columns = append(cfg.Columns, Column{ID: id, Title: id})
			current = &cfg.Columns[len(cfg.Columns)-1]
			continue
		}

		option, value, _ := strings.Cut(line, " ")
		value = strings.TrimSpace(value)

		if current != nil {
			switch option {
			case "title":
				current.Title = value
			case "card":
				current.Cards = append(current.Cards, value)
			default:
				cfg.addWarning("unknown column option %q", option)
			}
			continue
		}

		if !knownOptions[option] {
			cfg.addWarning("unknown option %q", option)
		}
		cfg.Options[option] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading config: %w", err)
	}

	for name, value := range defaults.Options {
		if _, ok := cfg.Options[name]; !ok {
			cfg.Options[name] = value
		}
	}
	if len(cfg.Columns) == 0 {
		cfg.Columns = defaults.Columns
	}
	return cfg, nil
}

// GetOption returns a top-level option value and whether it is set.
func (c *Config) GetOption(name string) (string, bool) {
	v, ok := c.Options[name]
	return v, ok
}

func (c *Config) addWarning(format string, args ...any) {
	c.Warnings = append(c.Warnings, fmt.Sprintf(format, args...))
}
