package station

import "math"

// Record is one station's reading for a single day.
type Record struct {
	Station string
	State   string
	Date    string // YYYYMMDD

	Latitude  float64
	Longitude float64
	Elevation float64

	TMin float64
	TMax float64
	TAvg float64

	AvgWind   float64
	Precip    float64
	Snow      float64
	SnowDepth float64
	Gust      float64
	GustDir   float64
}

// Value returns the field backing v, or NaN for an unknown variable.
func (r Record) Value(v Variable) float64 {
	switch v {
	case Latitude:
		return r.Latitude
	case Longitude:
		return r.Longitude
	case Elevation:
		return r.Elevation
	case TMin:
		return r.TMin
	case TMax:
		return r.TMax
	case TAvg:
		return r.TAvg
	case AvgWind:
		return r.AvgWind
	case Precip:
		return r.Precip
	case Snow:
		return r.Snow
	case SnowDepth:
		return r.SnowDepth
	case Gust:
		return r.Gust
	case GustDir:
		return r.GustDir
	}
	return math.NaN()
}

func (r *Record) set(v Variable, f float64) {
	switch v {
	case Latitude:
		r.Latitude = f
	case Longitude:
		r.Longitude = f
	case Elevation:
		r.Elevation = f
	case TMin:
		r.TMin = f
	case TMax:
		r.TMax = f
	case TAvg:
		r.TAvg = f
	case AvgWind:
		r.AvgWind = f
	case Precip:
		r.Precip = f
	case Snow:
		r.Snow = f
	case SnowDepth:
		r.SnowDepth = f
	case Gust:
		r.Gust = f
	case GustDir:
		r.GustDir = f
	}
}

// MonthDayKey is the MMDD suffix of the record's date, "" when the date is too short.
func (r Record) MonthDayKey() string {
	if len(r.Date) < 8 {
		return ""
	}
	return r.Date[4:8]
}
