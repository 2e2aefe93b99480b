package render

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	mderror "github.com/msto63/ecmarkdown/foundation/core/error"
	mdlog "github.com/msto63/ecmarkdown/foundation/core/log"
	"github.com/msto63/ecmarkdown/foundation/markup/emitter"
	"github.com/msto63/ecmarkdown/foundation/markup/parser"
	"github.com/msto63/ecmarkdown/pkg/core/cache"
)

// Request is one source to render
type Request struct {
	ID     string // correlation ID; generated if empty
	Name   string // file name or other label for logs
	Source string
	Mode   Mode // overrides the service mode if set
}

// Result is the outcome of rendering one request
type Result struct {
	ID       string
	Name     string
	HTML     string
	Cached   bool
	Duration time.Duration
	Err      error
}

// Service renders ecmarkdown sources with caching
type Service struct {
	config Config
	cache  *cache.Cache
	logger *mdlog.Logger
}

// NewService creates a new render service
func NewService(cfg Config, logger *mdlog.Logger) *Service {
	d := DefaultConfig()
	if cfg.Mode == "" {
		cfg.Mode = d.Mode
	}
	if cfg.Workers <= 0 {
		cfg.Workers = d.Workers
	}
	if logger == nil {
		logger = mdlog.GetDefault()
	}

	return &Service{
		config: cfg,
		cache:  cache.New(cache.Config{MaxItems: cfg.CacheSize, TTL: cfg.CacheTTL}),
		logger: logger.WithField("component", "renderer"),
	}
}

// Config returns the service configuration
func (s *Service) Config() Config {
	return s.config
}

// Render renders a single request. Syntax errors are returned as
// CodeSyntax errors carrying the position.
func (s *Service) Render(ctx context.Context, req Request) (*Result, error) {
	if req.ID == "" {
		req.ID = uuid.New().String()
	}
	mode := req.Mode
	if mode == "" {
		mode = s.config.Mode
	}

	if err := ctx.Err(); err != nil {
		return nil, canceled(err, req)
	}

	logger := s.logger.WithCorrelationID(req.ID).WithField("source", req.Name)
	timer := logger.StartTimer("render").WithField("mode", string(mode))

	key := cache.Key(string(mode),
		strconv.FormatBool(s.config.TrackPositions),
		strconv.FormatBool(s.config.Reindent),
		req.Source)

	html, cached, err := s.cache.GetOrSet(key, func() (string, error) {
		return s.render(mode, req.Source, logger)
	})
	if err != nil {
		timer.StopWithError(err)
		return nil, wrapError(err, req)
	}
	elapsed := timer.WithField("cached", cached).Stop()

	return &Result{
		ID:       req.ID,
		Name:     req.Name,
		HTML:     html,
		Cached:   cached,
		Duration: elapsed,
	}, nil
}

func (s *Service) render(mode Mode, src string, logger *mdlog.Logger) (string, error) {
	opts := parser.Options{TrackPositions: s.config.TrackPositions, Logger: logger}
	e := emitter.New(emitter.Options{Reindent: s.config.Reindent})

	switch mode {
	case ModeFragment:
		frag, err := parser.ParseFragment(src, opts)
		if err != nil {
			return "", err
		}
		return e.EmitFragment(frag), nil
	case ModeAlgorithm:
		alg, err := parser.ParseAlgorithm(src, opts)
		if err != nil {
			return "", err
		}
		return e.Emit(alg), nil
	}
	_, err := ParseMode(string(mode))
	return "", err
}

// RenderBatch renders requests on a bounded worker pool. Results are in
// request order. Once ctx is done no further requests are started; those
// results carry a CodeCanceled error.
func (s *Service) RenderBatch(ctx context.Context, reqs []Request) []Result {
	results := make([]Result, len(reqs))
	workers := s.config.Workers
	if workers > len(reqs) {
		workers = len(reqs)
	}

	s.logger.Debug("Starting batch", mdlog.Fields{"requests": len(reqs), "workers": workers})

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = s.result(ctx, reqs[i])
			}
		}()
	}

	dispatched := 0
dispatch:
	for i := range reqs {
		select {
		case <-ctx.Done():
			break dispatch
		case jobs <- i:
			dispatched++
		}
	}
	close(jobs)
	wg.Wait()

	for i := dispatched; i < len(reqs); i++ {
		results[i] = Result{ID: reqs[i].ID, Name: reqs[i].Name, Err: canceled(ctx.Err(), reqs[i])}
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	s.logger.Info("Batch completed", mdlog.Fields{
		"requests":   len(reqs),
		"dispatched": dispatched,
		"failed":     failed,
	})
	return results
}

func (s *Service) result(ctx context.Context, req Request) Result {
	res, err := s.Render(ctx, req)
	if err != nil {
		return Result{ID: req.ID, Name: req.Name, Err: err}
	}
	return *res
}

// Stats returns cache statistics
func (s *Service) Stats() cache.Stats {
	return s.cache.Stats()
}

func wrapError(err error, req Request) error {
	var syntaxErr *parser.SyntaxError
	if errors.As(err, &syntaxErr) {
		return mderror.Wrap(err, "render failed").
			WithCode(mderror.CodeSyntax).
			WithSeverity(mderror.SeverityLow).
			WithOperation("render.Render").
			WithDetail("source", req.Name).
			WithDetail("offset", syntaxErr.Offset).
			WithDetail("line", syntaxErr.Line).
			WithDetail("column", syntaxErr.Column)
	}
	if mderror.HasCode(err, mderror.CodeInvalidInput) {
		return err
	}
	return mderror.Wrap(err, "render failed").
		WithCode(mderror.CodeRenderFailed).
		WithOperation("render.Render").
		WithDetail("source", req.Name)
}

func canceled(err error, req Request) error {
	return mderror.Wrap(err, "render canceled").
		WithCode(mderror.CodeCanceled).
		WithOperation("render.Render").
		WithDetail("source", req.Name)
}
