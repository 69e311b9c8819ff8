package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const demoManifest = `
	app: {
		name: "demo"
		pages: [
			{ title: "Home", default: true },
			{ title: "Settings", icon: "gear" },
			{ title: "About", key: "about-v2" },
		]
	}
`

func TestCompileStringBasic(t *testing.T) {
	app, err := CompileString(demoManifest)
	require.NoError(t, err)

	assert.Equal(t, "demo", app.Name)
	require.Len(t, app.Pages, 3)
	assert.True(t, app.Pages[0].Default)
	assert.Equal(t, "gear", app.Pages[1].Icon)
	assert.Equal(t, "about-v2", app.Pages[2].Key)
}

func TestCompileMissingName(t *testing.T) {
	_, err := CompileString(`
		app: {
			pages: [{ title: "Home" }]
		}
	`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name")
	assert.Contains(t, err.Error(), "required")
}

func TestCompileMissingPages(t *testing.T) {
	_, err := CompileString(`
		app: {
			name: "demo"
		}
	`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one page")
}

func TestCompileMissingPageTitle(t *testing.T) {
	_, err := CompileString(`
		app: {
			name: "demo"
			pages: [{ icon: "gear" }]
		}
	`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pages[0].title")
}

func TestCompileDuplicatePageReference(t *testing.T) {
	_, err := CompileString(`
		app: {
			name: "demo"
			pages: [
				{ title: "Home" },
				{ title: "Home" },
			]
		}
	`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "share the reference")
}

func TestCompileErrorIncludesPosition(t *testing.T) {
	_, err := CompileString(`
		app: name: "demo"
		app: name: "other"
		app: pages: [{ title: "Home" }]
	`)
	require.Error(t, err)

	var ce *CompileError
	require.ErrorAs(t, err, &ce)
	assert.True(t, ce.Pos.IsValid(), "CUE conflicts carry source positions")
}

func TestCompileFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.cue")
	require.NoError(t, os.WriteFile(path, []byte(demoManifest), 0o644))

	app, err := CompileFile(path)
	require.NoError(t, err)
	assert.Equal(t, "demo", app.Name)
}

func TestCompileFileMissing(t *testing.T) {
	_, err := CompileFile(filepath.Join(t.TempDir(), "nope.cue"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read")
}
