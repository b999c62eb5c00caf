package export

import "strings"

// CSV quotes every header and field, doubles embedded quotes and joins rows
// with "\n". Empty input gives an empty document.
func CSV(records []Record) []byte {
	header := Header(records)
	if header == nil {
		return nil
	}

	lines := make([]string, 0, len(records)+1)
	lines = append(lines, csvLine(header))
	for _, rec := range records {
		cells := make([]string, len(header))
		for i, key := range header {
			v, _ := rec.Get(key)
			cells[i] = Cell(v)
		}
		lines = append(lines, csvLine(cells))
	}
	return []byte(strings.Join(lines, "\n"))
}

func csvLine(cells []string) string {
	quoted := make([]string, len(cells))
	for i, c := range cells {
		quoted[i] = `"` + strings.ReplaceAll(c, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",")
}
