package config

// Document is the top-level YAML structure of a graph file.
type Document struct {
	Graph     GraphConf     `yaml:"graph"`
	Query     QueryConf     `yaml:"query"`
	Animation AnimationConf `yaml:"animation"`
	Layout    LayoutConf    `yaml:"layout"`
	Render    RenderConf    `yaml:"render"`
	Logging   LoggingConf   `yaml:"logging"`
	Metrics   MetricsConf   `yaml:"metrics"`
}

// GraphConf holds the adjacency matrix and node names.
type GraphConf struct {
	Labels []string  `yaml:"labels"` // short labels drawn on the nodes
	Names  []string  `yaml:"names"`  // full names for route summaries; optional
	Matrix [][]int64 `yaml:"matrix"` // matrix[i][j] = weight of i→j, 0 = no edge
}

// QueryConf selects the initial search. Start and End accept a label or a
// decimal node index.
//
// ClosedAt treats every edge of weight ≥ ClosedAt as impassable and
// MaxDistance gives up on nodes farther than it; zero disables either.
type QueryConf struct {
	Start       string `yaml:"start"`
	End         string `yaml:"end"`
	ClosedAt    int64  `yaml:"closed_at"`
	MaxDistance int64  `yaml:"max_distance"`
}

// AnimationConf tunes the path reveal.
type AnimationConf struct {
	Step       float64 `yaml:"step"`
	IntervalMs int     `yaml:"interval_ms"`
}

// LayoutConf sizes the canvas and the circular layout.
type LayoutConf struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Jitter     float64 `yaml:"jitter"`
	JitterSeed int64   `yaml:"jitter_seed"`
}

// RenderConf controls PNG frame output.
type RenderConf struct {
	FramesDir string `yaml:"frames_dir"` // empty = no frames
	Every     int    `yaml:"every"`      // keep every Nth frame
}

// LoggingConf controls structured logging.
type LoggingConf struct {
	Level  string `yaml:"level"`  // debug|info|warn|error
	Format string `yaml:"format"` // text|json
	Source bool   `yaml:"source"` // include caller
}

// MetricsConf controls the Prometheus endpoint.
type MetricsConf struct {
	Addr string `yaml:"addr"` // empty = disabled
}
