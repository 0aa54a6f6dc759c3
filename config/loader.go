package config

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

const (
	defaultStep       = 0.08
	defaultIntervalMs = 50
	defaultWidth      = 1000
	defaultHeight     = 700
	defaultEvery      = 1
	defaultLevel      = "info"
	defaultFormat     = "text"
)

// Parse decodes a YAML graph document and applies defaults.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	ApplyDefaults(&doc)

	return &doc, nil
}

// ApplyDefaults fills every zero tunable with its default.
func ApplyDefaults(doc *Document) {
	if doc.Animation.Step == 0 {
		doc.Animation.Step = defaultStep
	}
	if doc.Animation.IntervalMs == 0 {
		doc.Animation.IntervalMs = defaultIntervalMs
	}
	if doc.Layout.Width == 0 {
		doc.Layout.Width = defaultWidth
	}
	if doc.Layout.Height == 0 {
		doc.Layout.Height = defaultHeight
	}
	if doc.Render.Every == 0 {
		doc.Render.Every = defaultEvery
	}
	if doc.Logging.Level == "" {
		doc.Logging.Level = defaultLevel
	}
	if doc.Logging.Format == "" {
		doc.Logging.Format = defaultFormat
	}
}

// Loader reads a YAML graph document and watches it for changes.
type Loader struct {
	path     string
	log      *slog.Logger
	mu       sync.RWMutex
	current  *Document
	onChange []func(*Document)
}

// NewLoader creates a Loader and performs the initial load. The document is
// validated; an invalid file is an error here but only a warning on reload.
func NewLoader(path string, log *slog.Logger) (*Loader, error) {
	if log == nil {
		log = slog.Default()
	}
	l := &Loader{path: path, log: log}
	doc, err := l.load()
	if err != nil {
		return nil, err
	}
	l.current = doc

	return l, nil
}

// SetLogger replaces the logger used for watch warnings. A nil log is
// ignored.
func (l *Loader) SetLogger(log *slog.Logger) {
	if log == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.log = log
}

func (l *Loader) logger() *slog.Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.log
}

// Path returns the watched file.
func (l *Loader) Path() string { return l.path }

// Document returns the latest valid document.
func (l *Loader) Document() *Document {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.current
}

// OnChange registers a callback invoked whenever the document reloads.
func (l *Loader) OnChange(fn func(*Document)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onChange = append(l.onChange, fn)
}

// Watch starts a background goroutine that hot-reloads the document on file
// changes. Call the returned stop function to clean up.
func (l *Loader) Watch() (stop func(), err error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config watcher: %w", err)
	}
	if err := w.Add(l.path); err != nil {
		w.Close()
		return nil, fmt.Errorf("config watcher add %s: %w", l.path, err)
	}

	done := make(chan struct{})
	go func() {
		defer w.Close()
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
					if _, err := l.Reload(); err != nil {
						l.logger().Warn("graph reload skipped", "path", l.path, "err", err)
					}
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				l.logger().Warn("graph watcher error", "path", l.path, "err", err)
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() { once.Do(func() { close(done) }) }, nil
}

// Reload forces an immediate re-read of the file. On error the previous
// document stays current and no callback runs.
func (l *Loader) Reload() (*Document, error) {
	doc, err := l.load()
	if err != nil {
		return nil, err
	}
	l.mu.Lock()
	l.current = doc
	callbacks := make([]func(*Document), len(l.onChange))
	copy(callbacks, l.onChange)
	l.mu.Unlock()
	for _, fn := range callbacks {
		fn(doc)
	}

	return doc, nil
}

func (l *Loader) load() (*Document, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("read graph %s: %w", l.path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse graph %s: %w", l.path, err)
	}
	if err := Validate(doc); err != nil {
		return nil, fmt.Errorf("graph %s: %w", l.path, err)
	}

	return doc, nil
}
