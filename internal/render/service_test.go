package render

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msto63/ecmarkdown/foundation/core/config"
	mderror "github.com/msto63/ecmarkdown/foundation/core/error"
	mdlog "github.com/msto63/ecmarkdown/foundation/core/log"
)

func newTestService(t *testing.T, cfg Config) (*Service, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := mdlog.NewWithConfig(mdlog.Config{
		Level:  mdlog.LevelInfo,
		Format: mdlog.FormatJSON,
		Output: &buf,
	})
	return NewService(cfg, logger), &buf
}

// loadConfig writes content to a file named name and loads it
func loadConfig(t *testing.T, name, content string) *config.Config {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	c, err := config.Load(path)
	require.NoError(t, err)
	return c
}

func TestService_RenderAlgorithm(t *testing.T) {
	svc, _ := newTestService(t, DefaultConfig())

	res, err := svc.Render(context.Background(), Request{
		Name:   "steps.emd",
		Source: "1. Let _x_ be |Foo|.\n1. Return *x*.",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.ID)
	assert.False(t, res.Cached)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(res.HTML))
	require.NoError(t, err)
	assert.Equal(t, 2, doc.Find("emu-alg > ol > li").Length())
	assert.Equal(t, "x", doc.Find("var").First().Text())
	assert.Equal(t, "Foo", doc.Find("emu-nt").Text())
	assert.Equal(t, "x", doc.Find("emu-val").Text())
}

func TestService_RenderFragment(t *testing.T) {
	svc, _ := newTestService(t, DefaultConfig())

	res, err := svc.Render(context.Background(), Request{Source: "`a` and ~b~", Mode: ModeFragment})
	require.NoError(t, err)
	assert.Equal(t, "<code>a</code> and <emu-const>b</emu-const>", res.HTML)
}

func TestService_Cache(t *testing.T) {
	svc, _ := newTestService(t, DefaultConfig())
	req := Request{Source: "1. a"}

	first, err := svc.Render(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.Render(context.Background(), req)
	require.NoError(t, err)

	assert.False(t, first.Cached)
	assert.True(t, second.Cached)
	assert.Equal(t, first.HTML, second.HTML)

	// a different mode is a different entry
	_, err = svc.Render(context.Background(), Request{Source: "1. a", Mode: ModeFragment})
	require.NoError(t, err)

	stats := svc.Stats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(2), stats.Misses)
	assert.Equal(t, 2, stats.Size)
}

func TestService_SyntaxError(t *testing.T) {
	svc, _ := newTestService(t, DefaultConfig())

	_, err := svc.Render(context.Background(), Request{Name: "bad.emd", Source: "1. a\n\n1. b"})
	require.Error(t, err)
	assert.True(t, mderror.HasCode(err, mderror.CodeSyntax))
	assert.Equal(t, mderror.SeverityLow, mderror.GetSeverity(err))

	mdErr, ok := err.(*mderror.Error)
	require.True(t, ok)
	line, _ := mdErr.Detail("line")
	column, _ := mdErr.Detail("column")
	assert.Equal(t, 1, line)
	assert.Equal(t, 5, column)
	assert.Contains(t, err.Error(), "Unexpected token parabreak; expected EOF")

	// errors are not cached
	assert.Equal(t, 0, svc.Stats().Size)
}

func TestService_InvalidMode(t *testing.T) {
	svc, _ := newTestService(t, DefaultConfig())
	_, err := svc.Render(context.Background(), Request{Source: "a", Mode: "table"})
	require.Error(t, err)
	assert.True(t, mderror.HasCode(err, mderror.CodeInvalidInput))
}

func TestService_CanceledContext(t *testing.T) {
	svc, _ := newTestService(t, DefaultConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Render(ctx, Request{Source: "1. a"})
	require.Error(t, err)
	assert.True(t, mderror.HasCode(err, mderror.CodeCanceled))
}

func TestService_RenderBatch(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Workers = 3
	svc, logs := newTestService(t, cfg)

	var reqs []Request
	for i := 0; i < 20; i++ {
		reqs = append(reqs, Request{
			Name:   fmt.Sprintf("step-%d", i),
			Source: fmt.Sprintf("%d. Step _n%d_", i+1, i),
		})
	}
	reqs[7].Source = "not a list"

	results := svc.RenderBatch(context.Background(), reqs)
	require.Len(t, results, len(reqs))

	for i, res := range results {
		assert.Equal(t, reqs[i].Name, res.Name)
		if i == 7 {
			assert.True(t, mderror.HasCode(res.Err, mderror.CodeSyntax))
			continue
		}
		require.NoError(t, res.Err)
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(res.HTML))
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("n%d", i), doc.Find("var").Text())
		if i > 0 {
			start, _ := doc.Find("ol").Attr("start")
			assert.Equal(t, fmt.Sprint(i+1), start)
		}
	}

	assert.Contains(t, logs.String(), "Batch completed")
	assert.Contains(t, logs.String(), `"failed":1`)
}

func TestService_RenderBatchCanceled(t *testing.T) {
	svc, _ := newTestService(t, DefaultConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reqs := []Request{{Name: "a", Source: "1. a"}, {Name: "b", Source: "1. b"}}
	results := svc.RenderBatch(ctx, reqs)
	require.Len(t, results, 2)
	for _, res := range results {
		require.Error(t, res.Err)
		assert.True(t, mderror.HasCode(res.Err, mderror.CodeCanceled))
	}
}

func TestService_RenderBatchEmpty(t *testing.T) {
	svc, _ := newTestService(t, DefaultConfig())
	assert.Empty(t, svc.RenderBatch(context.Background(), nil))
}

func TestConfigFrom(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg, err := ConfigFrom(config.Empty("", Defaults()))
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("From TOML", func(t *testing.T) {
		c := loadConfig(t, "ecmarkdown.toml", `
[parser]
track_positions = true

[emitter]
reindent = true

[render]
mode = "fragment"
workers = 8
cache_ttl = "1m"
`)

		cfg, err := ConfigFrom(c)
		require.NoError(t, err)
		assert.Equal(t, ModeFragment, cfg.Mode)
		assert.True(t, cfg.TrackPositions)
		assert.True(t, cfg.Reindent)
		assert.Equal(t, 8, cfg.Workers)
		assert.Equal(t, time.Minute, cfg.CacheTTL)
		assert.Equal(t, DefaultConfig().CacheSize, cfg.CacheSize)
	})

	t.Run("Invalid values", func(t *testing.T) {
		c := loadConfig(t, "ecmarkdown.yaml", "render:\n  mode: table\n  workers: 0\n")

		_, err := ConfigFrom(c)
		require.Error(t, err)
		assert.True(t, mderror.HasCode(err, mderror.CodeInvalidConfig))
		assert.Contains(t, err.Error(), "render.mode")
		assert.Contains(t, err.Error(), "render.workers")
	})
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode(" Algorithm ")
	require.NoError(t, err)
	assert.Equal(t, ModeAlgorithm, m)

	_, err = ParseMode("nope")
	assert.True(t, mderror.HasCode(err, mderror.CodeInvalidInput))
}
