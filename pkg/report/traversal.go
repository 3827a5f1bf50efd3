// File: pkg/report/traversal.go
package report

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// CollectFiles walks root and returns the slash-separated relative paths of
// every non-directory entry that survives the filter, in walk order.
// Directories the filter excludes are not descended into.
func CollectFiles(root string, pf *PathFilter, logger *zap.Logger) ([]string, error) {
	var files []string
	logger.Debug("Starting file collection", zap.String("root", root))

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			logger.Warn("Error accessing path during traversal", zap.String("path", path), zap.Error(err))
			return nil
		}

		relPath, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return fmt.Errorf("relative path for %s: %w", path, relErr)
		}
		if relPath == "." {
			return nil
		}
		relPath = filepath.ToSlash(relPath)

		if d.IsDir() {
			if pf.Excluded(relPath, true) {
				return filepath.SkipDir
			}
			return nil
		}

		// WalkDir does not follow links; resolve them so a link to a
		// directory is dropped like the directory entry itself.
		if d.Type()&fs.ModeSymlink != 0 {
			info, statErr := os.Stat(path)
			if statErr != nil {
				logger.Warn("Skipping unresolvable symlink", zap.String("path", relPath), zap.Error(statErr))
				return nil
			}
			if info.IsDir() {
				logger.Debug("Skipping symlink to directory", zap.String("path", relPath))
				return nil
			}
		}

		if !pf.Excluded(relPath, false) {
			files = append(files, relPath)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	logger.Debug("Completed file collection", zap.Int("files", len(files)))
	return files, nil
}
