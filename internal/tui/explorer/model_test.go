package explorer

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mderror "github.com/msto63/ecmarkdown/foundation/core/error"
	mdlog "github.com/msto63/ecmarkdown/foundation/core/log"
	"github.com/msto63/ecmarkdown/internal/render"
)

func newService(mode render.Mode) *render.Service {
	cfg := render.DefaultConfig()
	cfg.Mode = mode
	return render.NewService(cfg, mdlog.Discard())
}

// loaded returns a sized model that has processed its initial load
func loaded(t *testing.T, cfg Config) Model {
	t.Helper()
	m := New(cfg)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)

	msg := m.load()
	require.IsType(t, loadedMsg{}, msg)
	next, _ = m.Update(msg)
	return next.(Model)
}

func press(t *testing.T, m Model, key string) Model {
	t.Helper()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
	return next.(Model)
}

func TestAnalyze_Algorithm(t *testing.T) {
	doc, err := Analyze(context.Background(), newService(render.ModeAlgorithm),
		"steps.emd", "1. Let _x_ be |Foo|.\n1. Return |Bar|.")
	require.NoError(t, err)

	assert.Nil(t, doc.Err)
	assert.Contains(t, doc.HTML, "<emu-alg>")
	assert.Contains(t, doc.Tree, "name: algorithm")
	assert.Equal(t, []string{"Foo", "Bar"}, doc.NonTerminals)
	assert.Equal(t, "1:1", doc.Positions[0])
	assert.Len(t, doc.Positions, len(doc.Tokens))
}

func TestAnalyze_Fragment(t *testing.T) {
	doc, err := Analyze(context.Background(), newService(render.ModeFragment),
		"frag", "|A| or |B| or |A|")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, doc.NonTerminals)
	assert.Equal(t, "<emu-nt>A</emu-nt> or <emu-nt>B</emu-nt> or <emu-nt>A</emu-nt>", doc.HTML)
}

func TestAnalyze_SyntaxError(t *testing.T) {
	doc, err := Analyze(context.Background(), newService(render.ModeAlgorithm), "bad", "1. a\n* b")
	require.NoError(t, err)
	require.NotNil(t, doc.Err)
	assert.Equal(t, 2, doc.Err.Line)
	assert.Empty(t, doc.HTML)
	assert.NotEmpty(t, doc.Tokens)
}

func TestModel_Views(t *testing.T) {
	m := loaded(t, Config{
		Source:  "1. Let _x_ be |Foo|.",
		Service: newService(render.ModeAlgorithm),
	})
	assert.False(t, m.loading)
	assert.Equal(t, ViewHTML, m.view)
	assert.Contains(t, m.View(), "<emu-alg>")
	assert.Contains(t, m.View(), "<stdin>")

	m = press(t, m, "2")
	assert.Equal(t, ViewTree, m.view)
	assert.Contains(t, m.View(), "name: algorithm")

	m = press(t, m, "3")
	assert.Equal(t, ViewTokens, m.view)
	assert.Contains(t, m.View(), "underscore")

	m = press(t, m, "4")
	assert.Equal(t, ViewNonTerminals, m.view)
	assert.Contains(t, m.content(), "Foo")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, ViewHTML, next.(Model).view)

	next, _ = next.(Model).Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, ViewNonTerminals, next.(Model).view)
}

func TestModel_SyntaxError(t *testing.T) {
	m := loaded(t, Config{
		Name:    "bad.emd",
		Source:  "1. a\n* b",
		Service: newService(render.ModeAlgorithm),
	})
	assert.Contains(t, m.content(), "Unexpected token ul; expected EOF")
	assert.Contains(t, m.content(), "bad.emd:2:1")
	assert.Contains(t, m.View(), "syntax error")

	// tokens stay browsable
	m = press(t, m, "3")
	assert.Contains(t, m.content(), "ul")
	assert.NotContains(t, m.content(), "Unexpected token")
}

func TestModel_MissingFile(t *testing.T) {
	m := loaded(t, Config{
		Path:    filepath.Join(t.TempDir(), "missing.emd"),
		Service: newService(render.ModeAlgorithm),
	})
	require.Error(t, m.err)
	assert.True(t, mderror.HasCode(m.err, mderror.CodeNotFound))
	assert.Contains(t, m.View(), "read failed")
}

func TestModel_Quit(t *testing.T) {
	m := loaded(t, Config{Source: "1. a", Service: newService(render.ModeAlgorithm)})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_Reload(t *testing.T) {
	m := loaded(t, Config{Source: "1. a", Service: newService(render.ModeAlgorithm)})

	m = press(t, m, "r")
	assert.True(t, m.loading)

	next, _ := m.Update(m.load())
	m = next.(Model)
	assert.False(t, m.loading)
	assert.True(t, m.doc.Cached)
	assert.Contains(t, m.View(), "ok (cached)")
}

func TestModel_Watch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "steps.emd")
	require.NoError(t, os.WriteFile(path, []byte("1. a"), 0o600))

	m := loaded(t, Config{
		Path:          path,
		Service:       newService(render.ModeAlgorithm),
		WatchInterval: time.Second,
	})
	t.Cleanup(m.Close)
	assert.True(t, m.watching)
	assert.Equal(t, path, m.cfg.Name)

	unchanged := m.checkChanged().(changedMsg)
	assert.False(t, unchanged.changed)

	require.NoError(t, os.WriteFile(path, []byte("1. b"), 0o600))
	later := m.modTime.Add(time.Minute)
	require.NoError(t, os.Chtimes(path, later, later))

	changed := m.checkChanged().(changedMsg)
	assert.True(t, changed.changed)

	next, cmd := m.Update(changed)
	m = next.(Model)
	assert.True(t, m.loading)
	assert.NotNil(t, cmd)

	next, _ = m.Update(m.load())
	m = next.(Model)
	assert.Contains(t, m.doc.HTML, "<li>b</li>")
	assert.True(t, m.modTime.Equal(later))

	m = press(t, m, "w")
	assert.False(t, m.watching)
}

func TestModel_WatchDisabledForSource(t *testing.T) {
	m := New(Config{Source: "1. a", WatchInterval: time.Second})
	assert.False(t, m.watching)
	assert.Nil(t, m.tick())

	m = press(t, m, "w")
	assert.False(t, m.watching)
}

// nextMsg runs cmd in the background and waits for its message
func nextMsg(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)

	out := make(chan tea.Msg, 1)
	go func() { out <- cmd() }()

	select {
	case msg := <-out:
		return msg
	case <-time.After(5 * time.Second):
		t.Fatal("no message within 5s")
		return nil
	}
}

func TestModel_WatchEvents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "steps.emd")
	require.NoError(t, os.WriteFile(path, []byte("1. a"), 0o600))

	m := loaded(t, Config{
		Path:          path,
		Service:       newService(render.ModeAlgorithm),
		WatchInterval: time.Hour,
	})
	t.Cleanup(m.Close)
	require.NotNil(t, m.watcher)
	assert.Nil(t, m.tick(), "no polling while events are delivered")

	require.NoError(t, os.WriteFile(path, []byte("1. b"), 0o600))
	msg := nextMsg(t, m.waitForChange())
	require.IsType(t, fileEventMsg{}, msg)
	assert.NoError(t, msg.(fileEventMsg).err)

	_, cmd := m.Update(msg)
	assert.NotNil(t, cmd)

	// other files in the directory are ignored
	other := filepath.Join(filepath.Dir(path), "other.emd")
	require.NoError(t, os.WriteFile(other, []byte("x"), 0o600))

	m.Close()
	assert.IsType(t, watchClosedMsg{}, nextMsg(t, m.waitForChange()))
}

func TestModel_QuitClosesWatcher(t *testing.T) {
	path := filepath.Join(t.TempDir(), "steps.emd")
	require.NoError(t, os.WriteFile(path, []byte("1. a"), 0o600))

	m := loaded(t, Config{
		Path:          path,
		Service:       newService(render.ModeAlgorithm),
		WatchInterval: time.Hour,
	})
	require.NotNil(t, m.watcher)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.IsType(t, watchClosedMsg{}, nextMsg(t, next.(Model).waitForChange()))
}

func TestModel_PollingGenerations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "steps.emd")
	require.NoError(t, os.WriteFile(path, []byte("1. a"), 0o600))

	m := loaded(t, Config{
		Path:          path,
		Service:       newService(render.ModeAlgorithm),
		WatchInterval: time.Hour,
	})
	m.Close()
	m.watcher = nil
	require.NotNil(t, m.tick())

	// off and on again within one interval
	m = press(t, m, "w")
	m = press(t, m, "w")
	assert.True(t, m.watching)
	assert.Equal(t, 2, m.watchGen)

	_, cmd := m.Update(tickMsg{gen: 0, at: time.Now()})
	assert.Nil(t, cmd, "stale tick must not continue its chain")

	_, cmd = m.Update(tickMsg{gen: m.watchGen, at: time.Now()})
	assert.NotNil(t, cmd)
}
