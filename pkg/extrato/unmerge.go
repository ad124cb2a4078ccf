package extrato

import (
	"github.com/ukaji3/extrato-go/pkg/extrato/parser"
)

// Unmerge splits every merged range of every sheet and returns the flattened
// workbook. The input slice is not modified.
func Unmerge(data []byte, opts Options) ([]byte, error) {
	log := opts.logger()

	f, err := openWorkbook(data, opts, StageUnmerge)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	total := 0
	for _, sheetName := range f.GetSheetList() {
		ranges, err := parser.UnmergeSheet(f, sheetName)
		if err != nil {
			return nil, NewFormatError(StageUnmerge, sheetName, err)
		}
		if len(ranges) > 0 {
			log.Debug().
				Str("sheet", sheetName).
				Int("merged_ranges", len(ranges)).
				Msg("sheet unmerged")
		}
		total += len(ranges)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, NewIOError(StageUnmerge, err)
	}

	log.Info().Int("merged_ranges", total).Msg("workbook unmerged")
	return buf.Bytes(), nil
}

// UnmergeFile flattens the workbook at path and saves the result next to it
// as <name>_unmerged.xlsx. It returns the path written.
func UnmergeFile(path string, opts Options) (string, error) {
	data, err := ReadFile(path)
	if err != nil {
		return "", err
	}

	flat, err := Unmerge(data, opts)
	if err != nil {
		return "", err
	}

	dst := OutputPath(path, SuffixUnmerged, ".xlsx")
	if err := WriteFile(dst, flat); err != nil {
		return "", err
	}
	return dst, nil
}
