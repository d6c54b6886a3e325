package history

import (
	"bufio"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// History is the line-oriented history file written by the console's
// readline module.
type History struct {
	items    []string
	file     string
	maxItems int
	mu       sync.Mutex
}

func Open(file string, maxItems int) (*History, error) {
	if maxItems <= 0 {
		maxItems = 1000
	}
	h := &History{
		file:     file,
		maxItems: maxItems,
	}
	if err := h.load(); err != nil {
		return nil, err
	}
	return h, nil
}

func (h *History) Path() string {
	return h.file
}

func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.items)
}

// libeditHeader is the first line of history files written by libedit.
const libeditHeader = "_HiStOrY_V2_"

// Compact keeps the newest maxItems entries and rewrites the file when it
// grew past that. A libedit header line is kept and not counted. The
// directory is created so the console can write the file on exit.
func (h *History) Compact() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(h.file), 0o755); err != nil {
		return err
	}
	var header []string
	entries := h.items
	if len(entries) > 0 && entries[0] == libeditHeader {
		header, entries = entries[:1], entries[1:]
	}
	if len(entries) <= h.maxItems {
		return nil
	}
	h.items = append(append([]string{}, header...), entries[len(entries)-h.maxItems:]...)
	return h.save()
}

func (h *History) load() error {
	file, err := os.Open(h.file)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		h.items = append(h.items, scanner.Text())
	}
	return scanner.Err()
}

func (h *History) save() error {
	file, err := os.Create(h.file)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	for _, item := range h.items {
		if _, err := writer.WriteString(item + "\n"); err != nil {
			return err
		}
	}
	return writer.Flush()
}
