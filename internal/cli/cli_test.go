package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/subnotes/internal/model"
	"github.com/rcliao/subnotes/internal/store"
)

type harness struct {
	t  *testing.T
	db string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	dir := t.TempDir()
	// Keep a real ~/.subnotes/config.yaml out of the run.
	t.Setenv("HOME", dir)
	return &harness{t: t, db: filepath.Join(dir, "notes.db")}
}

func (h *harness) run(stdin string, format string, args ...string) string {
	h.t.Helper()
	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(io.Discard)
	RootCmd.SetIn(strings.NewReader(stdin))
	RootCmd.SetArgs(append([]string{"--db", h.db, "--backend", "bolt", "--format", format}, args...))
	require.NoError(h.t, RootCmd.Execute())
	return out.String()
}

func (h *harness) json(args ...string) string {
	h.t.Helper()
	return h.run("", formatJSON, args...)
}

func (h *harness) add(parent, text string) addResult {
	h.t.Helper()
	var res addResult
	require.NoError(h.t, json.Unmarshal([]byte(h.json("add", "--parent="+parent, text)), &res))
	return res
}

func (h *harness) forest() model.Forest {
	h.t.Helper()
	var f model.Forest
	require.NoError(h.t, json.Unmarshal([]byte(h.json("export")), &f))
	return f
}

func TestAddAndShow(t *testing.T) {
	h := newHarness(t)

	res := h.add("", "groceries")
	assert.True(t, res.Created)
	assert.Equal(t, model.ID("1"), res.ID)

	res = h.add("1", "buy milk")
	assert.Equal(t, model.ID("2"), res.ID)
	assert.Equal(t, model.ID("1"), res.Parent)

	f := h.forest()
	require.Len(t, f, 1)
	require.Len(t, f[0].ChildNotes, 1)
	assert.Equal(t, "buy milk", f[0].ChildNotes[0].Text)

	var note model.Note
	require.NoError(t, json.Unmarshal([]byte(h.json("show", "2")), &note))
	assert.Equal(t, "buy milk", note.Text)
}

func TestAddRejectsBadLength(t *testing.T) {
	h := newHarness(t)

	res := h.add("", "abc")
	assert.False(t, res.Created)
	assert.Empty(t, h.forest())

	res = h.add("", "abcd")
	assert.Equal(t, model.ID("1"), res.ID, "rejected text must not consume an id")
}

func TestSearchIsExact(t *testing.T) {
	h := newHarness(t)
	h.add("", "alpha")
	h.add("1", "beta")
	h.add("", "beta")

	var hits []model.SearchHit
	require.NoError(t, json.Unmarshal([]byte(h.json("search", "beta")), &hits))
	assert.Equal(t, []model.SearchHit{{ID: "2", Text: "beta"}, {ID: "3", Text: "beta"}}, hits)

	assert.Equal(t, "[]\n", h.json("search", "bet"))
}

func TestRmRemovesSubtree(t *testing.T) {
	h := newHarness(t)
	h.add("", "alpha")
	h.add("1", "beta")
	h.add("2", "gamma")
	h.add("", "delta")

	assert.JSONEq(t, `{"ok":true,"id":"2","removed":true}`, h.json("rm", "2"))
	f := h.forest()
	require.Len(t, f, 2)
	assert.Empty(t, f[0].ChildNotes)

	assert.JSONEq(t, `{"ok":true,"id":"9","removed":false}`, h.json("rm", "9"))
}

func TestEdit(t *testing.T) {
	h := newHarness(t)
	h.add("", "alpha")

	assert.JSONEq(t, `{"ok":true,"id":"1","edited":true}`, h.json("edit", "1", "a"))
	assert.Equal(t, "a", h.forest()[0].Text, "edits are not length-checked")
}

func TestImportAdvancesCounter(t *testing.T) {
	h := newHarness(t)
	out := h.run(`[{"id":7,"text":"seven","childNotes":[{"id":"9","text":"nine"}]}]`, formatJSON, "import")
	assert.JSONEq(t, `{"ok":true,"imported":2}`, out)

	res := h.add("7", "ten!")
	assert.Equal(t, model.ID("10"), res.ID)
	assert.Len(t, h.forest()[0].ChildNotes, 2)
}

func TestStats(t *testing.T) {
	h := newHarness(t)
	h.add("", "alpha")
	h.add("1", "beta")

	var stats store.Stats
	require.NoError(t, json.Unmarshal([]byte(h.json("stats")), &stats))
	assert.Equal(t, 2, stats.TotalNotes)
	assert.Equal(t, 1, stats.TopLevel)
	assert.Equal(t, 2, stats.MaxDepth)
	assert.Equal(t, model.ID("3"), stats.NextID)
	assert.Equal(t, "bolt", stats.Backend)
	assert.NotEmpty(t, stats.Revision)
}

func TestDepthFromStdin(t *testing.T) {
	h := newHarness(t)
	page := `<html><body><ul><li>a<ol><li>b</li></ol></li></ul></body></html>`
	assert.JSONEq(t, `{"depth":2}`, h.run(page, formatJSON, "depth"))
	assert.Equal(t, "2\n", h.run(page, formatText, "depth"))
}

func TestTextFormatRendersOutline(t *testing.T) {
	h := newHarness(t)
	h.add("", "alpha")
	h.add("1", "beta")

	out := h.run("", formatText, "show")
	assert.Contains(t, out, "alpha")
	assert.Contains(t, out, "  - beta")

	out = h.run("", formatText, "search", "beta")
	assert.Contains(t, out, `search "beta": 1 match(es)`)
}
