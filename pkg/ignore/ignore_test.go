package ignore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGitIgnoreMatches(t *testing.T) {
	testCases := []struct {
		name     string
		patterns []string
		path     string
		isDir    bool
		expected bool
	}{
		{"extension wildcard at root", []string{"*.log"}, "z.log", false, true},
		{"extension wildcard nested", []string{"*.log"}, "a/b/z.log", false, true},
		{"extension wildcard no match", []string{"*.log"}, "a/z.txt", false, false},
		{"star stays in segment", []string{"a/*.txt"}, "a/b/x.txt", false, false},
		{"anchored with leading slash", []string{"/build"}, "build", true, true},
		{"anchored does not match nested", []string{"/build"}, "src/build", true, false},
		{"middle slash anchors", []string{"doc/frotz"}, "a/doc/frotz", false, false},
		{"bare name matches any level", []string{"build"}, "src/build", true, true},
		{"dir only skips files", []string{"cache/"}, "cache", false, false},
		{"dir only matches dirs", []string{"cache/"}, "cache", true, true},
		{"dir only excludes children", []string{"cache/"}, "a/cache/item.txt", false, true},
		{"negation re-includes", []string{"*.log", "!keep.log"}, "keep.log", false, false},
		{"later pattern wins", []string{"!keep.log", "*.log"}, "keep.log", false, true},
		{"negation cannot escape parent", []string{"out/", "!out/keep.txt"}, "out/keep.txt", false, true},
		{"leading double star", []string{"**/logs"}, "a/b/logs", true, true},
		{"leading double star at root", []string{"**/logs"}, "logs", true, true},
		{"trailing double star", []string{"vendor/**"}, "vendor/x/y.go", false, true},
		{"trailing double star nested dir", []string{"vendor/**"}, "vendor/x", true, true},
		{"leading space is part of the pattern", []string{" notes.txt"}, "notes.txt", false, false},
		{"leading space matches spaced name", []string{" notes.txt"}, " notes.txt", false, true},
		{"trailing tab is kept", []string{"tab.txt\t"}, "tab.txt", false, false},
		{"trailing spaces are trimmed", []string{"space.txt  "}, "space.txt", false, true},
		{"escaped trailing space is kept", []string{"space.txt\\ "}, "space.txt", false, false},
		{"carriage return stripped", []string{"z.log\r"}, "z.log", false, true},
		{"escaped negation is literal", []string{`\!important`}, "!important", false, true},
		{"middle double star", []string{"a/**/b"}, "a/x/y/b", false, true},
		{"middle double star zero dirs", []string{"a/**/b"}, "a/b", false, true},
		{"question mark", []string{"file?.txt"}, "file1.txt", false, true},
		{"question mark no slash", []string{"a?b"}, "a/b", false, false},
		{"character class", []string{"*.[oa]"}, "lib.a", false, true},
		{"negated character class", []string{"*.[!oa]"}, "lib.a", false, false},
		{"dots are literal", []string{"a.c"}, "abc", false, false},
		{"comment ignored", []string{"# z.log"}, "# z.log", false, false},
		{"escaped hash", []string{`\#notes`}, "#notes", false, true},
		{"windows separators normalized", []string{"a/b.txt"}, `a\b.txt`, false, true},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			gi := NewGitIgnore(nil)
			gi.CompileIgnoreLines(testCase.patterns...)
			assert.Equal(t, testCase.expected, gi.Matches(testCase.path, testCase.isDir))
		})
	}
}

func TestMatchesWithPatternReportsDecidingLine(t *testing.T) {
	gi := NewGitIgnore(nil)
	gi.CompileIgnoreLines("*.log", "", "!keep.log")

	matched, pattern := gi.MatchesWithPattern("keep.log", false)
	require.NotNil(t, pattern)
	assert.False(t, matched)
	assert.Equal(t, "!keep.log", pattern.Line)
	assert.Equal(t, 3, pattern.LineNo)

	matched, pattern = gi.MatchesWithPattern("main.go", false)
	assert.False(t, matched)
	assert.Nil(t, pattern)
}

func TestCompileIgnoreFile(t *testing.T) {
	dir := t.TempDir()
	fpath := filepath.Join(dir, ".gitignore")
	require.NoError(t, os.WriteFile(fpath, []byte("# comment\r\n*.log\r\n\r\ndist/\r\n"), 0o644))

	gi := NewGitIgnore(nil)
	require.NoError(t, gi.CompileIgnoreFile(fpath))
	assert.Len(t, gi.Patterns, 2)
	assert.True(t, gi.Matches("z.log", false))
	assert.True(t, gi.Matches("dist/app.js", false))
}

func TestCompileIgnoreFileMissing(t *testing.T) {
	gi := NewGitIgnore(nil)
	err := gi.CompileIgnoreFile(filepath.Join(t.TempDir(), ".gitignore"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}
