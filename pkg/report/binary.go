// File: pkg/report/binary.go
package report

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// sniffLength is how many leading bytes are inspected for a NUL byte.
const sniffLength = 1024

// BinaryExtensions are classified as binary without reading the file.
var BinaryExtensions = map[string]bool{
	".pdf": true, ".doc": true, ".docx": true, ".xls": true, ".xlsx": true, ".ppt": true, ".pptx": true,
	".zip": true, ".rar": true, ".7z": true, ".tar": true, ".gz": true, ".bz2": true,
	".exe": true, ".dll": true, ".so": true, ".dylib": true,
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".bmp": true, ".tiff": true,
	".mp3": true, ".mp4": true, ".avi": true, ".mov": true, ".wmv": true,
	".sqlite": true, ".db": true,
}

// BinaryClassifier decides whether a file is left out of the contents section.
type BinaryClassifier struct {
	logger *zap.Logger
}

// NewBinaryClassifier returns a classifier that reports sniff failures to logger.
func NewBinaryClassifier(logger *zap.Logger) *BinaryClassifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BinaryClassifier{logger: logger}
}

// IsBinary reports whether filePath should be treated as binary. Files with a
// known binary extension are never opened. Anything that cannot be read is
// treated as binary.
func (bc *BinaryClassifier) IsBinary(filePath string) bool {
	if isCommonBinaryExtension(filePath) {
		return true
	}

	binary, err := hasNullPrefix(filePath)
	if err != nil {
		bc.logger.Error("Error reading file", zap.String("file", filePath), zap.Error(err))
		return true
	}
	return binary
}

// hasNullPrefix reports whether a NUL byte occurs within the first sniffLength
// bytes of the file.
func hasNullPrefix(filePath string) (bool, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return false, err
	}
	defer file.Close()

	buffer := make([]byte, sniffLength)
	n, err := io.ReadFull(file, buffer)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return false, err
	}
	return bytes.IndexByte(buffer[:n], 0) >= 0, nil
}

// isCommonBinaryExtension checks if the file has a known binary extension.
func isCommonBinaryExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return BinaryExtensions[ext]
}
