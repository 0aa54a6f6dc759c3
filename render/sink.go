package render

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/pathscope/session"
)

// Sink writes every Nth frame it receives to a directory as
// frame_00000.png, frame_00001.png, ... The final frame of a completed
// reveal is always written.
type Sink struct {
	r       *Renderer
	dir     string
	every   int
	seen    int
	written int
}

// NewSink creates dir if needed. every < 1 is treated as 1.
func NewSink(r *Renderer, dir string, every int) (*Sink, error) {
	if every < 1 {
		every = 1
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("render: frames dir: %w", err)
	}

	return &Sink{r: r, dir: dir, every: every}, nil
}

// Write renders f when it is due. It matches player.FrameFunc.
func (s *Sink) Write(f session.Frame) error {
	due := s.seen%s.every == 0 || f.Completed()
	s.seen++
	if !due {
		return nil
	}

	path := filepath.Join(s.dir, fmt.Sprintf("frame_%05d.png", s.written))
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err = s.r.PNG(out, f); err != nil {
		out.Close()
		return fmt.Errorf("render %s: %w", path, err)
	}
	if err = out.Close(); err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	s.written++

	return nil
}

// Written is the number of files written so far.
func (s *Sink) Written() int { return s.written }
