package station

import (
	"fmt"
	"strings"
)

var states = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "FL", "GA",
	"HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME", "MD",
	"MA", "MI", "MN", "MS", "MO", "MT", "NE", "NV", "NH", "NJ",
	"NM", "NY", "NC", "ND", "OH", "OK", "OR", "PA", "RI", "SC",
	"SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI", "WY", "PR",
}

// States returns the selectable state codes; the first one is the default.
func States() []string {
	out := make([]string, len(states))
	copy(out, states)
	return out
}

// ParseState upper-cases s and checks it against States.
func ParseState(s string) (string, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for _, st := range states {
		if st == s {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown state %q", s)
}
