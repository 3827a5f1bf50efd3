// File: pkg/report/filter.go
package report

import (
	"strings"

	"repocat/pkg/ignore"

	"go.uber.org/zap"
)

// PathFilter decides which discovered paths are eligible for the report.
type PathFilter struct {
	denylist  []string
	gitignore *ignore.GitIgnore
	logger    *zap.Logger
}

// NewPathFilter builds a filter from a denylist and compiled gitignore rules.
// A nil gitignore applies no gitignore rules.
func NewPathFilter(denylist []string, gitignore *ignore.GitIgnore, logger *zap.Logger) *PathFilter {
	if logger == nil {
		logger = zap.NewNop()
	}
	if gitignore == nil {
		gitignore = ignore.NewGitIgnore(logger)
	}
	return &PathFilter{
		denylist:  denylist,
		gitignore: gitignore,
		logger:    logger,
	}
}

// Excluded reports whether relPath, a slash-separated path relative to the
// root, is removed by the VCS rule, the denylist or the gitignore rules.
func (pf *PathFilter) Excluded(relPath string, isDir bool) bool {
	if strings.HasPrefix(relPath, VCSPrefix) {
		pf.logger.Debug("Path excluded by VCS rule", zap.String("path", relPath))
		return true
	}

	if entry, ok := pf.deniedBy(relPath); ok {
		pf.logger.Debug("Path excluded by denylist", zap.String("path", relPath), zap.String("entry", entry))
		return true
	}

	if matched, pattern := pf.gitignore.MatchesWithPattern(relPath, isDir); matched {
		pf.logger.Debug("Path excluded by gitignore",
			zap.String("path", relPath),
			zap.String("pattern", pattern.Line),
			zap.Int("lineNo", pattern.LineNo))
		return true
	}
	return false
}

// Filter returns the eligible paths in their original order.
func (pf *PathFilter) Filter(relPaths []string) []string {
	eligible := make([]string, 0, len(relPaths))
	for _, relPath := range relPaths {
		if !pf.Excluded(relPath, false) {
			eligible = append(eligible, relPath)
		}
	}
	return eligible
}

// deniedBy returns the first denylist entry contained anywhere in relPath.
func (pf *PathFilter) deniedBy(relPath string) (string, bool) {
	for _, entry := range pf.denylist {
		if entry != "" && strings.Contains(relPath, entry) {
			return entry, true
		}
	}
	return "", false
}
