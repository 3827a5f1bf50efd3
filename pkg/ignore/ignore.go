// Package ignore implements .gitignore pattern matching for slash-separated
// paths relative to the directory holding the ignore file.
package ignore

import (
	"os"
	"path"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
	"go.uber.org/zap"
)

// IgnorePattern is a single parsed line of an ignore file.
type IgnorePattern struct {
	Pattern gitignore.Pattern // Parsed pattern, evaluated per path segment.
	Negate  bool              // Pattern started with '!'.
	DirOnly bool              // Pattern ended with '/' and only matches directories.
	Line    string            // Original pattern line.
	LineNo  int               // Line number in the source (1-based).
}

// GitIgnore is an ordered collection of ignore patterns. Later patterns take
// precedence over earlier ones, as in git.
type GitIgnore struct {
	Patterns []*IgnorePattern
	logger   *zap.Logger
}

// NewGitIgnore returns an empty GitIgnore. A nil logger disables logging.
func NewGitIgnore(logger *zap.Logger) *GitIgnore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GitIgnore{
		Patterns: []*IgnorePattern{},
		logger:   logger,
	}
}

// CompileIgnoreLines parses pattern lines and appends them to the set.
// Blank lines and comments are skipped; line numbers count every line.
func (gi *GitIgnore) CompileIgnoreLines(lines ...string) {
	for i, line := range lines {
		ip := parsePatternLine(line)
		if ip == nil {
			continue
		}
		ip.LineNo = i + 1
		gi.Patterns = append(gi.Patterns, ip)
		gi.logger.Debug("Compiled ignore pattern",
			zap.Int("lineNo", ip.LineNo),
			zap.String("pattern", ip.Line),
			zap.Bool("negate", ip.Negate),
			zap.Bool("dirOnly", ip.DirOnly))
	}
}

// CompileIgnoreFile reads an ignore file and compiles its lines. A missing
// file is reported as an error satisfying os.IsNotExist.
func (gi *GitIgnore) CompileIgnoreFile(fpath string) error {
	content, err := os.ReadFile(fpath)
	if err != nil {
		return err
	}

	lines := strings.Split(string(content), "\n")
	gi.CompileIgnoreLines(lines...)
	gi.logger.Debug("Compiled ignore file",
		zap.String("filePath", fpath),
		zap.Int("lineCount", len(lines)),
		zap.Int("patternCount", len(gi.Patterns)))
	return nil
}

// Matches reports whether the relative path is ignored. isDir tells whether
// the path itself names a directory. A path below an ignored directory is
// always ignored, since git cannot re-include a file whose parent is excluded.
func (gi *GitIgnore) Matches(relPath string, isDir bool) bool {
	matches, _ := gi.MatchesWithPattern(relPath, isDir)
	return matches
}

// MatchesWithPattern is like Matches and also returns the deciding pattern,
// which is nil when no pattern applied.
func (gi *GitIgnore) MatchesWithPattern(relPath string, isDir bool) (bool, *IgnorePattern) {
	normalized := normalizePath(relPath)
	if normalized == "" {
		return false, nil
	}

	// Check every ancestor directory first; an excluded parent wins over any
	// negation aimed at the child.
	segments := strings.Split(normalized, "/")
	for i := 1; i < len(segments); i++ {
		if matched, pattern := gi.matchSegments(segments[:i], true); matched {
			return true, pattern
		}
	}
	return gi.matchSegments(segments, isDir)
}

// matchSegments applies the patterns last to first; the first one that
// matches decides.
func (gi *GitIgnore) matchSegments(segments []string, isDir bool) (bool, *IgnorePattern) {
	for i := len(gi.Patterns) - 1; i >= 0; i-- {
		pattern := gi.Patterns[i]
		switch pattern.Pattern.Match(segments, isDir) {
		case gitignore.Exclude:
			return true, pattern
		case gitignore.Include:
			return false, pattern
		}
	}
	return false, nil
}

// normalizePath converts a relative path to the slash-separated, cleaned form
// the patterns are matched against.
func normalizePath(p string) string {
	p = strings.ReplaceAll(p, "\\", "/")
	p = path.Clean("/" + p)
	return strings.TrimPrefix(p, "/")
}

// parsePatternLine parses one ignore-file line. It returns nil for blank
// lines and comments. Leading whitespace belongs to the pattern and only
// trailing spaces are dropped, as git does.
func parsePatternLine(line string) *IgnorePattern {
	line = strings.TrimSuffix(line, "\r")
	if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
		return nil
	}

	// filepath.Match spells a negated class "[^...]"; gitignore also accepts "[!...]".
	normalized := strings.ReplaceAll(line, "[!", "[^")

	body := strings.TrimPrefix(normalized, "!")
	if !strings.HasSuffix(body, "\\ ") {
		body = strings.TrimRight(body, " ")
	}
	return &IgnorePattern{
		Pattern: gitignore.ParsePattern(normalized, nil),
		Negate:  strings.HasPrefix(normalized, "!"),
		DirOnly: strings.HasSuffix(body, "/"),
		Line:    line,
	}
}
