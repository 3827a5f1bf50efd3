// Package report builds a markdown snapshot of a project: a rendered file tree
// followed by the contents of every eligible text file.
package report

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"repocat/pkg/clipboard"
	"repocat/pkg/ignore"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
)

// ErrMissingGitignore is returned when the root has no .gitignore and the
// configuration requires one.
var ErrMissingGitignore = errors.New("missing " + GitIgnoreFileName)

// ErrEmptyOutputName is returned when no report file name is configured.
var ErrEmptyOutputName = errors.New("output file name must not be empty")

const (
	structureHeading = "# file structure\n\n"
	contentsHeading  = "# file contents\n\n"
)

// Result summarizes a finished run.
type Result struct {
	OutputPath string   // Where the report was written.
	Document   string   // The full report text.
	Files      []string // Eligible paths, in discovery order.
	Included   []string // Paths whose contents were emitted.
	Binary     []string // Paths skipped by the binary classifier.
	Failed     []string // Paths whose contents could not be read.
}

// Generate runs the full snapshot for cfg and writes the report. copier is
// only used when cfg.CopyToClipboard is set and may otherwise be nil.
func Generate(cfg Config, copier clipboard.Copier, logger *zap.Logger) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	startTime := time.Now()

	if strings.TrimSpace(cfg.OutputName) == "" {
		return nil, ErrEmptyOutputName
	}

	// Resolve the project root so logged and returned paths are absolute
	root, err := filepath.Abs(cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}
	logger.Info("Starting report", zap.String("root", root), zap.String("output", cfg.OutputName))

	// The ignore file is the only startup dependency that can abort the run
	gi, err := loadGitIgnore(root, cfg.RequireGitignore, logger)
	if err != nil {
		return nil, err
	}

	// Discover eligible files in walk order
	pf := NewPathFilter(cfg.effectiveDenylist(), gi, logger)
	files, err := CollectFiles(root, pf, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to collect files: %w", err)
	}

	// Render the tree and the file blocks, then write everything at once
	result := Assemble(root, files, NewBinaryClassifier(logger), logger)
	result.OutputPath = filepath.Join(root, cfg.OutputName)

	if err := os.WriteFile(result.OutputPath, []byte(result.Document), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write report %s: %w", result.OutputPath, err)
	}

	logger.Info("Report written",
		zap.String("output", result.OutputPath),
		zap.Int("files", len(result.Files)),
		zap.Int("included", len(result.Included)),
		zap.Int("binary", len(result.Binary)),
		zap.Int("failed", len(result.Failed)),
		zap.String("size", humanize.Bytes(uint64(len(result.Document)))),
		zap.Duration("elapsed", time.Since(startTime)))

	if cfg.CopyToClipboard {
		if copier == nil {
			copier = clipboard.NewService()
		}
		if err := copier.Copy(result.Document); err != nil {
			logger.Error("Failed to copy report to clipboard", zap.Error(err))
		} else {
			logger.Info("Copied report to clipboard")
		}
	}

	return result, nil
}

// loadGitIgnore compiles <root>/.gitignore. A missing file is fatal when
// required and an empty rule set otherwise.
func loadGitIgnore(root string, required bool, logger *zap.Logger) (*ignore.GitIgnore, error) {
	gi := ignore.NewGitIgnore(logger)
	ignorePath := filepath.Join(root, GitIgnoreFileName)
	err := gi.CompileIgnoreFile(ignorePath)
	switch {
	case err == nil:
		return gi, nil
	case os.IsNotExist(err) && !required:
		logger.Warn("No ignore file found, continuing without gitignore rules", zap.String("path", ignorePath))
		return gi, nil
	case os.IsNotExist(err):
		return nil, fmt.Errorf("%w in %s", ErrMissingGitignore, root)
	default:
		return nil, fmt.Errorf("failed to load ignore patterns: %w", err)
	}
}

// Assemble renders the report for the eligible files under root. Files that
// cannot be read are logged and left out; the run carries on.
func Assemble(root string, files []string, classifier *BinaryClassifier, logger *zap.Logger) *Result {
	result := &Result{Files: files}

	var b strings.Builder
	b.WriteString(structureHeading)
	b.WriteString(BuildFileTree(files).Render())
	b.WriteString("\n")
	b.WriteString(contentsHeading)

	for _, relPath := range files {
		// Binary files stay in the tree but get no content block
		fullPath := filepath.Join(root, filepath.FromSlash(relPath))
		if classifier.IsBinary(fullPath) {
			result.Binary = append(result.Binary, relPath)
			continue
		}

		content, err := os.ReadFile(fullPath)
		if err != nil {
			logger.Error("Error reading file", zap.String("file", relPath), zap.Error(err))
			result.Failed = append(result.Failed, relPath)
			continue
		}

		b.WriteString(formatFileBlock(relPath, string(content)))
		result.Included = append(result.Included, relPath)
	}

	result.Document = b.String()
	return result
}

// formatFileBlock renders one file as a header line and a fenced block.
func formatFileBlock(relPath, content string) string {
	text := strings.ToValidUTF8(content, "\uFFFD")
	return fmt.Sprintf("file: %s\n%s%s\n%s\n%s\n\n", relPath, fence, fenceLanguage(relPath), sanitizeContent(text), fence)
}
