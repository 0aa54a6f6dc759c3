// Command pathscope finds the shortest route through a weighted graph and
// replays its discovery, optionally as PNG frames.
//
//	pathscope                                # built-in city graph, MKS → BTM
//	pathscope -config graph.yaml -start A -end D -frames out/
//	pathscope -config graph.yaml -watch -metrics-addr :9100
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/pathscope/config"
	"github.com/katalvlaran/pathscope/logging"
	"github.com/katalvlaran/pathscope/player"
	"github.com/katalvlaran/pathscope/render"
	"github.com/katalvlaran/pathscope/session"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, "pathscope:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("pathscope", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgPath := fs.String("config", "", "Path to graph YAML (default: built-in city graph)")
	start := fs.String("start", "", "Start node label or index (overrides query.start)")
	end := fs.String("end", "", "End node label or index (overrides query.end)")
	frames := fs.String("frames", "", "Directory for PNG frames (overrides render.frames_dir)")
	metricsAddr := fs.String("metrics-addr", "", "Serve Prometheus metrics on this address (overrides metrics.addr)")
	watch := fs.Bool("watch", false, "Keep running and replay when the graph file changes")
	fast := fs.Bool("fast", false, "Skip the tick interval")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *watch && *cfgPath == "" {
		return errors.New("-watch needs -config")
	}

	// ── Load document ─────────────────────────────────────────────────────────
	var (
		loader *config.Loader
		doc    *config.Document
		err    error
	)
	if *cfgPath == "" {
		doc = config.CityGraph()
	} else {
		loader, err = config.NewLoader(*cfgPath, nil)
		if err != nil {
			return err
		}
		doc = loader.Document()
	}
	if *start != "" {
		doc.Query.Start = *start
	}
	if *end != "" {
		doc.Query.End = *end
	}
	if *frames != "" {
		doc.Render.FramesDir = *frames
	}
	if *metricsAddr != "" {
		doc.Metrics.Addr = *metricsAddr
	}

	logger := logging.New(stderr, doc.Logging)
	slog.SetDefault(logger)
	if loader != nil {
		loader.SetLogger(logger)
	}

	// ── Session ───────────────────────────────────────────────────────────────
	s, err := session.New(doc, logger)
	if err != nil {
		return err
	}
	logger.Info("graph loaded", "nodes", len(doc.Graph.Matrix))

	// ── Metrics endpoint ──────────────────────────────────────────────────────
	if doc.Metrics.Addr != "" {
		srv := metricsServer(doc.Metrics.Addr, logger)
		defer func() {
			shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutCtx)
		}()
	}

	// ── Frame output ──────────────────────────────────────────────────────────
	var onFrame player.FrameFunc
	if doc.Render.FramesDir != "" {
		r, err := render.New(render.DefaultOptions())
		if err != nil {
			return err
		}
		sink, err := render.NewSink(r, doc.Render.FramesDir, doc.Render.Every)
		if err != nil {
			return err
		}
		onFrame = sink.Write
		defer func() { logger.Info("frames written", "dir", doc.Render.FramesDir, "count", sink.Written()) }()
	}

	interval := s.Interval()
	if *fast {
		interval = time.Nanosecond
	}

	// ── Initial query ─────────────────────────────────────────────────────────
	if doc.Query.Start != "" && doc.Query.End != "" {
		res, err := s.SearchRefs(doc.Query.Start, doc.Query.End)
		if err != nil {
			return err
		}
		report(stdout, res)
		if err = player.Play(ctx, s, interval, onFrame); err != nil {
			return err
		}
	}

	if !*watch {
		return nil
	}

	// ── Hot reload ────────────────────────────────────────────────────────────
	replay := make(chan struct{}, 1)
	loader.OnChange(func(next *config.Document) {
		res, err := s.Reload(next)
		if err != nil || res == nil {
			return
		}
		report(stdout, *res)
		select {
		case replay <- struct{}{}:
		default:
		}
	})
	stopWatch, err := loader.Watch()
	if err != nil {
		return err
	}
	defer stopWatch()
	logger.Info("watching", "path", loader.Path())

	for {
		select {
		case <-ctx.Done():
			logger.Info("shutting down")
			return nil
		case <-replay:
			if err := player.Play(ctx, s, interval, onFrame); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
		}
	}
}

func report(w io.Writer, res session.Result) {
	fmt.Fprintln(w, res.Endpoints())
	fmt.Fprintln(w, res.Route())
}

func metricsServer(addr string, log *slog.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		log.Info("metrics listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server", "err", err)
		}
	}()

	return srv
}
