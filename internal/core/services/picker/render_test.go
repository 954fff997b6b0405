package picker

import (
	"bytes"
	"testing"

	"github.com/AntonioJCosta/pathpick/internal/core/domain/alias"
	"github.com/AntonioJCosta/pathpick/internal/core/domain/session"
	"github.com/AntonioJCosta/pathpick/internal/core/testutil"
	"github.com/AntonioJCosta/pathpick/internal/handlers/ui"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func withColors(t *testing.T) {
	t.Helper()
	previous := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = previous })
}

func TestPrintAliases_HighlightsAliasNames(t *testing.T) {
	withColors(t)
	store := testutil.NewMockAliasStore()
	store.Set("home_dir", alias.String(t.TempDir()))
	out := &bytes.Buffer{}

	PrintAliases(out, store, true)

	assert.Contains(t, out.String(), ui.AliasColor("home_dir"))
	assert.Contains(t, out.String(), "[DIR]")
}

func TestBrowser_SaveAndGotoHighlightAliasNames(t *testing.T) {
	withColors(t)
	root := makeTree(t, []string{"sub"}, nil)
	b, _, output := newTestBrowser(t, session.ModeDirectory, root)

	b.handle("save Work")
	b.handle("goto Work")

	assert.Contains(t, output(), ui.AliasColor("Work")+"'.")
	assert.Contains(t, output(), ui.AliasColor("Work")+"': "+root)
}
