package extrato

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Suffixes appended to the input name for derived files.
const (
	SuffixUnmerged  = "_unmerged"
	SuffixProcessed = "_processed"
)

// OutputPath derives a sibling file name: report.xlsx -> report_processed.xlsx.
func OutputPath(input, suffix, ext string) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return base + suffix + ext
}

// ReadFile reads a workbook from disk.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, NewIOError(StageRead, fmt.Errorf("%w: %s", ErrFileNotFound, path))
		}
		return nil, NewIOError(StageRead, err)
	}
	return data, nil
}

// WriteFile saves an output file.
func WriteFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return NewIOError(StageWrite, err)
	}
	return nil
}
