package commands

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// printJSON writes an indented JSON rendering of v to stdout.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// formatDegree renders an absolute ecliptic longitude as degrees, minutes
// and seconds within its sign, e.g. 23°42'18".
func formatDegree(degInSign float64) string {
	d := int(degInSign)
	mf := (degInSign - float64(d)) * 60
	m := int(mf)
	s := int(math.Round((mf - float64(m)) * 60))
	if s == 60 {
		s = 0
		m++
	}
	if m == 60 {
		m = 0
		d++
	}
	return fmt.Sprintf("%2d°%02d'%02d\"", d, m, s)
}

// retroMark renders the conventional retrograde flag.
func retroMark(retro bool) string {
	if retro {
		return " (R)"
	}
	return ""
}
