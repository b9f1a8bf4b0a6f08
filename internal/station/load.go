package station

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Load reads a whole data file into memory. See Parse for the accepted formats.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	ds, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	ds.Source = path
	return ds, nil
}

// Parse decodes either a JSON array of objects or CSV with a header row.
// The format is sniffed from content, not the file name: station exports named
// data.json are usually CSV.
func Parse(r io.Reader) (*Dataset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	trimmed := bytes.TrimLeft(data, " \t\r\n\uFEFF")
	if len(trimmed) == 0 {
		return nil, errors.New("empty input")
	}
	var recs []Record
	if trimmed[0] == '[' {
		recs, err = parseJSON(trimmed)
	} else {
		recs, err = parseCSV(trimmed)
	}
	if err != nil {
		return nil, err
	}
	return NewDataset(recs), nil
}

func parseCSV(data []byte) ([]Record, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, errors.New("csv: no header")
	}
	idx := map[string]int{}
	for i, h := range rows[0] {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if err := requireColumns(func(k string) bool { _, ok := idx[k]; return ok }); err != nil {
		return nil, fmt.Errorf("csv: %w", err)
	}
	recs := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		recs = append(recs, buildRecord(func(k string) string {
			i, ok := idx[k]
			if !ok || i >= len(row) {
				return ""
			}
			return row[i]
		}))
	}
	return recs, nil
}

func parseJSON(data []byte) ([]Record, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var rows []map[string]any
	if err := dec.Decode(&rows); err != nil {
		return nil, fmt.Errorf("json: %w", err)
	}
	recs := make([]Record, 0, len(rows))
	for i, raw := range rows {
		row := make(map[string]string, len(raw))
		for k, v := range raw {
			row[strings.ToLower(k)] = jsonString(v)
		}
		if i == 0 {
			if err := requireColumns(func(k string) bool { _, ok := row[k]; return ok }); err != nil {
				return nil, fmt.Errorf("json: %w", err)
			}
		}
		recs = append(recs, buildRecord(func(k string) string { return row[k] }))
	}
	return recs, nil
}

func jsonString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}

func requireColumns(has func(string) bool) error {
	var missing []string
	for _, c := range []string{"station", "state", "date"} {
		if !has(c) {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing columns: %s", strings.Join(missing, ", "))
	}
	return nil
}

func buildRecord(get func(string) string) Record {
	rec := Record{
		Station: strings.TrimSpace(get("station")),
		State:   strings.ToUpper(strings.TrimSpace(get("state"))),
		Date:    strings.ReplaceAll(strings.TrimSpace(get("date")), "-", ""),
	}
	for _, v := range columns {
		rec.set(v, parseNumber(get(strings.ToLower(string(v)))))
	}
	return rec
}

// parseNumber keeps missing or malformed cells as NaN so they drop out of
// extents and plotting instead of landing on zero.
func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}
