package report

import (
	"os"
	"path/filepath"
	"testing"

	"repocat/pkg/ignore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathFilterExcluded(t *testing.T) {
	gi := ignore.NewGitIgnore(nil)
	gi.CompileIgnoreLines("*.log", "dist/", "!keep.log")
	pf := NewPathFilter(DefaultConfig().effectiveDenylist(), gi, nil)

	testCases := []struct {
		path     string
		excluded bool
	}{
		{"main.go", false},
		{".env", false},
		{".git/HEAD", true},
		{".github/workflows/ci.yml", true},
		{".gitattributes", true},
		{"package.json", true},
		{"my-package.json-backup", true},
		{"web/node_modules/react/index.js", true},
		{"docs/LICENSE.md", true},
		{"assets/logo.svg", true},
		{"tsconfig.base.json", true},
		{"vite.config.ts", true},
		{"repocat.md", true},
		{"z.log", true},
		{"logs/z.log", true},
		{"keep.log", false},
		{"dist/app.js", true},
		{"src/dist.go", false},
		{"a/b/y.png", false},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.excluded, pf.Excluded(testCase.path, false), testCase.path)
	}
}

func TestPathFilterKeepsDiscoveryOrder(t *testing.T) {
	pf := NewPathFilter([]string{"secret"}, nil, nil)
	eligible := pf.Filter([]string{"z.go", "secret.txt", "a.go", "nested/secret/x.go", "m.go"})
	assert.Equal(t, []string{"z.go", "a.go", "m.go"}, eligible)
}

func TestPathFilterIgnoresEmptyDenylistEntries(t *testing.T) {
	pf := NewPathFilter([]string{""}, nil, nil)
	assert.False(t, pf.Excluded("main.go", false))
}

func TestCollectFiles(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		".env":                "KEY=1",
		".git/config":         "[core]",
		"a/x.txt":             "hello",
		"a/b/y.png":           "\x89PNG",
		"node_modules/m/i.js": "module.exports = 1",
		"build/out.txt":       "built",
		"build.txt":           "not a dir",
		"z.log":               "log line",
		"src/app/main.go":     "package main",
	})

	gi := ignore.NewGitIgnore(nil)
	gi.CompileIgnoreLines("*.log", "build/")
	pf := NewPathFilter(DefaultConfig().effectiveDenylist(), gi, nil)

	files, err := CollectFiles(root, pf, zapNop())
	require.NoError(t, err)
	assert.Equal(t, []string{".env", "a/b/y.png", "a/x.txt", "build.txt", "src/app/main.go"}, files)
}

func TestCollectFilesSkipsSymlinkedDirectories(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{"real/x.txt": "hello"})
	require.NoError(t, os.Symlink(filepath.Join(root, "real"), filepath.Join(root, "link")))
	require.NoError(t, os.Symlink(filepath.Join(root, "real", "x.txt"), filepath.Join(root, "alias.txt")))
	require.NoError(t, os.Symlink(filepath.Join(root, "missing"), filepath.Join(root, "dangling")))

	files, err := CollectFiles(root, NewPathFilter(nil, nil, nil), zapNop())
	require.NoError(t, err)
	assert.Equal(t, []string{"alias.txt", "real/x.txt"}, files)

	result := Assemble(root, files, NewBinaryClassifier(zapNop()), zapNop())
	assert.NotContains(t, result.Document, "📄 link")
	assert.Empty(t, result.Binary)
	assert.Equal(t, []string{"alias.txt", "real/x.txt"}, result.Included)
}

func TestCollectFilesMissingRoot(t *testing.T) {
	pf := NewPathFilter(nil, nil, nil)
	_, err := CollectFiles(t.TempDir()+"/missing", pf, zapNop())
	require.Error(t, err)
}
