package station

import (
	"fmt"
	"strings"
)

// Variable names a numeric column of a Record.
type Variable string

const (
	Latitude  Variable = "latitude"
	Longitude Variable = "longitude"
	Elevation Variable = "elevation"
	TMin      Variable = "TMIN"
	TMax      Variable = "TMAX"
	TAvg      Variable = "TAVG"
	AvgWind   Variable = "AWND"
	Precip    Variable = "PRCP"
	Snow      Variable = "SNOW"
	SnowDepth Variable = "SNWD"
	Gust      Variable = "WSF5"
	GustDir   Variable = "WDF5"
)

// options is the selector order for the plot axes.
var options = []Variable{Latitude, Longitude, Elevation, TMin, TMax, TAvg, Precip, AvgWind, Gust}

// columns is every numeric column in file order.
var columns = []Variable{Latitude, Longitude, Elevation, TMin, TMax, TAvg, AvgWind, Precip, Snow, SnowDepth, Gust, GustDir}

type labels struct {
	short string
	axis  string
}

var variableLabels = map[Variable]labels{
	TMin:      {"Minimum Temp", "Minimum Temperature (°C)"},
	TMax:      {"Maximum Temp", "Maximum Temperature (°C)"},
	TAvg:      {"Avg Temp", "Average Temperature (°C)"},
	AvgWind:   {"Avg Wind Speed", "Average Wind Speed (m/s)"},
	Gust:      {"Fastest Wind Speed", "Fastest Wind Speed (m/s)"},
	Precip:    {"Precipitation", "Precipitation (mm)"},
	Elevation: {"Elevation", "Elevation (m)"},
	Latitude:  {"Latitude", "Latitude (°)"},
	Longitude: {"Longitude", "Longitude (°)"},
	Snow:      {"Snowfall", "Snowfall (mm)"},
	SnowDepth: {"Snow Depth", "Snow Depth (mm)"},
	GustDir:   {"Fastest Wind Dir", "Fastest Wind Direction (°)"},
}

// Options returns the variables that can be put on an axis, in selector order.
func Options() []Variable {
	out := make([]Variable, len(options))
	copy(out, options)
	return out
}

// Columns returns every numeric column.
func Columns() []Variable {
	out := make([]Variable, len(columns))
	copy(out, columns)
	return out
}

// Label is the short name shown in selectors.
func (v Variable) Label() string {
	if l, ok := variableLabels[v]; ok {
		return l.short
	}
	return string(v)
}

// AxisLabel is the axis title including units.
func (v Variable) AxisLabel() string {
	if l, ok := variableLabels[v]; ok {
		return l.axis
	}
	return string(v)
}

// Selectable reports whether v may be used as a plot axis.
func (v Variable) Selectable() bool {
	for _, o := range options {
		if o == v {
			return true
		}
	}
	return false
}

// ParseVariable matches s against the selectable variables, ignoring case.
func ParseVariable(s string) (Variable, error) {
	s = strings.TrimSpace(s)
	for _, o := range options {
		if strings.EqualFold(string(o), s) {
			return o, nil
		}
	}
	return "", fmt.Errorf("unknown variable %q", s)
}
