package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/extrato-go/pkg/extrato/models"
	"github.com/xuri/excelize/v2"
)

// MergedRanges lists the merged regions declared on a sheet.
func MergedRanges(f *excelize.File, sheetName string) ([]models.MergedRange, error) {
	mergeCells, err := f.GetMergeCells(sheetName)
	if err != nil {
		return nil, err
	}

	ranges := make([]models.MergedRange, 0, len(mergeCells))
	for _, mc := range mergeCells {
		ref := mc.GetStartAxis() + ":" + mc.GetEndAxis()
		area := parseRangeToArea(ref)
		if area == nil {
			return nil, fmt.Errorf("invalid merged range %q", ref)
		}
		ranges = append(ranges, *area)
	}

	return ranges, nil
}

// UnmergeSheet splits every merged range on a sheet into independent cells.
// The anchor keeps its value; every other cell of the range is left empty.
// It returns the ranges that were split.
func UnmergeSheet(f *excelize.File, sheetName string) ([]models.MergedRange, error) {
	ranges, err := MergedRanges(f, sheetName)
	if err != nil {
		return nil, err
	}

	for _, mr := range ranges {
		end, err := excelize.CoordinatesToCellName(mr.C2, mr.R2)
		if err != nil {
			return nil, err
		}
		if err := f.UnmergeCell(sheetName, mr.Anchor, end); err != nil {
			return nil, fmt.Errorf("unmerging %s: %w", mr.Ref, err)
		}
		if err := clearCovered(f, sheetName, mr); err != nil {
			return nil, fmt.Errorf("clearing %s: %w", mr.Ref, err)
		}
	}

	return ranges, nil
}

// clearCovered empties the non-anchor cells of a former merged range that
// still store a value.
func clearCovered(f *excelize.File, sheetName string, mr models.MergedRange) error {
	for row := mr.R1; row <= mr.R2; row++ {
		for col := mr.C1; col <= mr.C2; col++ {
			if mr.IsAnchor(col, row) {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(col, row)
			if err != nil {
				return err
			}
			v, err := f.GetCellValue(sheetName, cellName, excelize.Options{RawCellValue: true})
			if err != nil {
				return err
			}
			if v == "" {
				continue
			}
			if err := f.SetCellValue(sheetName, cellName, nil); err != nil {
				return err
			}
		}
	}
	return nil
}

// parseRangeToArea parses a range string like $A$1:$D$10 to a MergedRange.
// A single cell reference yields a one-cell range.
func parseRangeToArea(rangeStr string) *models.MergedRange {
	// Remove $ signs
	rangeStr = strings.ReplaceAll(strings.TrimSpace(rangeStr), "$", "")

	parts := strings.Split(rangeStr, ":")
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	if len(parts) != 2 {
		return nil
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return nil
	}

	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return nil
	}

	if endCol < startCol {
		startCol, endCol = endCol, startCol
	}
	if endRow < startRow {
		startRow, endRow = endRow, startRow
	}

	anchor, err := excelize.CoordinatesToCellName(startCol, startRow)
	if err != nil {
		return nil
	}

	return &models.MergedRange{
		Ref:    rangeStr,
		Anchor: anchor,
		R1:     startRow,
		C1:     startCol,
		R2:     endRow,
		C2:     endCol,
	}
}
