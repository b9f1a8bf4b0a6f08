package station

import (
	"math"
	"sort"
)

// Dataset is every record of a data file, loaded once and filtered many times.
type Dataset struct {
	Source  string
	records []Record
}

func NewDataset(recs []Record) *Dataset {
	return &Dataset{records: recs}
}

func (d *Dataset) Len() int { return len(d.records) }

// Records returns the backing slice; callers must not modify it.
func (d *Dataset) Records() []Record { return d.records }

// Select returns the state's readings for md. When the state has no reading
// on that day it falls back to all of the state's readings and exact is false.
func (d *Dataset) Select(state string, md MonthDay) (recs []Record, exact bool) {
	key := md.Key()
	for _, r := range d.records {
		if r.State == state && r.MonthDayKey() == key {
			recs = append(recs, r)
		}
	}
	if len(recs) > 0 {
		return recs, true
	}
	for _, r := range d.records {
		if r.State == state {
			recs = append(recs, r)
		}
	}
	return recs, false
}

// Extent is the min and max of v across all records, skipping NaN.
func (d *Dataset) Extent(v Variable) (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, r := range d.records {
		x := r.Value(v)
		if math.IsNaN(x) {
			continue
		}
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
		ok = true
	}
	if !ok {
		return 0, 0, false
	}
	return lo, hi, true
}

// Stations lists distinct station names in order of first appearance.
func Stations(recs []Record) []string {
	seen := map[string]bool{}
	var out []string
	for _, r := range recs {
		if !seen[r.Station] {
			seen[r.Station] = true
			out = append(out, r.Station)
		}
	}
	return out
}

type Summary struct {
	Records   int
	Stations  int
	States    []string
	FirstDate string
	LastDate  string
}

func (d *Dataset) Summary() Summary {
	s := Summary{Records: len(d.records)}
	stations := map[string]bool{}
	states := map[string]bool{}
	for _, r := range d.records {
		stations[r.Station] = true
		states[r.State] = true
		if r.Date != "" && (s.FirstDate == "" || r.Date < s.FirstDate) {
			s.FirstDate = r.Date
		}
		if r.Date > s.LastDate {
			s.LastDate = r.Date
		}
	}
	s.Stations = len(stations)
	for st := range states {
		s.States = append(s.States, st)
	}
	sort.Strings(s.States)
	return s
}
