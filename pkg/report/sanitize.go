package report

import (
	"path"
	"strings"
)

const (
	fence        = "```"
	escapedFence = "\\`\\`\\`\n"
)

// sanitizeContent breaks up every literal fence so file contents cannot close
// the surrounding code block.
func sanitizeContent(content string) string {
	return strings.ReplaceAll(content, fence, escapedFence)
}

// fenceLanguage returns the code block tag for relPath: the extension without
// its dot, or the base name for files without one (Makefile, Dockerfile).
func fenceLanguage(relPath string) string {
	base := path.Base(relPath)
	if ext := path.Ext(base); ext != "" {
		return strings.TrimPrefix(ext, ".")
	}
	return base
}
