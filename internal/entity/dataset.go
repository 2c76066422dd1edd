package entity

// Record maps a column header to its cell value. All values are strings;
// the parser performs no type inference.
type Record map[string]string

// Dataset is one uploaded CSV file. Headers keep the column order of the
// source file so renderers emit columns deterministically.
type Dataset struct {
	Headers []string `json:"headers"`
	Records []Record `json:"records"`
}

func (d Dataset) Len() int { return len(d.Records) }
