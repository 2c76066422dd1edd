package csvparse

import (
	"strings"

	"botforge/internal/entity"
)

const delimiter = ","

// Parse turns raw comma-delimited text into an ordered dataset. The first
// line defines the column headers; cells are trimmed and stripped of double
// quotes. Rows shorter than the header row are padded with empty strings,
// extra trailing cells are discarded, and blank lines are skipped.
//
// Delimiters embedded inside quoted values are not handled. Parse never
// fails: empty or header-only input yields a dataset with zero records.
func Parse(raw string) entity.Dataset {
	lines := strings.Split(raw, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
		return entity.Dataset{}
	}

	headers := splitCells(lines[0])

	dataset := entity.Dataset{Headers: headers}
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}

		values := splitCells(line)
		record := make(entity.Record, len(headers))
		for i, header := range headers {
			if i < len(values) {
				record[header] = values[i]
			} else {
				record[header] = ""
			}
		}
		dataset.Records = append(dataset.Records, record)
	}

	return dataset
}

func splitCells(line string) []string {
	cells := strings.Split(line, delimiter)
	for i, cell := range cells {
		cells[i] = strings.ReplaceAll(strings.TrimSpace(cell), `"`, "")
	}
	return cells
}
