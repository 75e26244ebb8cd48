package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// History persists input lines to a file across sessions. It is an
// explicitly scoped resource: open it at session start, append as the user
// types, close it at session end. No global state.
type History struct {
	path    string
	maxSize int
	lines   []string
	file    *os.File
}

// OpenHistory loads existing history (if any) and opens the file for
// appending. At most maxSize entries are retained on load.
func OpenHistory(path string, maxSize int) (*History, error) {
	h := &History{path: path, maxSize: maxSize}

	if data, err := os.ReadFile(path); err == nil {
		scanner := bufio.NewScanner(strings.NewReader(string(data)))
		for scanner.Scan() {
			if line := scanner.Text(); line != "" {
				h.lines = append(h.lines, line)
			}
		}
		if len(h.lines) > maxSize {
			h.lines = h.lines[len(h.lines)-maxSize:]
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read history file: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open history file: %w", err)
	}
	h.file = file

	return h, nil
}

// Append records an input line and writes it through immediately so history
// survives abnormal exits.
func (h *History) Append(line string) {
	if line == "" {
		return
	}
	h.lines = append(h.lines, line)
	if h.file != nil {
		fmt.Fprintln(h.file, line)
	}
}

// Lines returns the recorded history, oldest first.
func (h *History) Lines() []string {
	out := make([]string, len(h.lines))
	copy(out, h.lines)
	return out
}

// Close trims the on-disk history to maxSize entries and releases the file.
func (h *History) Close() error {
	if h.file != nil {
		if err := h.file.Close(); err != nil {
			return err
		}
		h.file = nil
	}

	if len(h.lines) > h.maxSize {
		h.lines = h.lines[len(h.lines)-h.maxSize:]
	}

	tmp := h.path + ".tmp"
	file, err := os.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("rewrite history file: %w", err)
	}
	for _, line := range h.lines {
		fmt.Fprintln(file, line)
	}
	if err := file.Close(); err != nil {
		return err
	}

	return os.Rename(tmp, h.path)
}
