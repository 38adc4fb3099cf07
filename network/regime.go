package network

import (
	"fmt"
	"strings"
)

// Regime selects one of the four parallel weight channels of an edge.
type Regime uint8

// The four weather regimes, in tensor order.
const (
	Normal Regime = iota
	Rain
	Snow
	Storm
)

// NumRegimes is the fixed number of weight channels per edge.
const NumRegimes = 4

var regimeNames = [NumRegimes]string{"normal", "rain", "snow", "storm"}

// regimeAliases maps every accepted spelling to its regime. The Spanish
// names and the 1-based menu digits keep older data and scripts working.
var regimeAliases = map[string]Regime{
	"normal": Normal, "rain": Rain, "snow": Snow, "storm": Storm,
	"lluvia": Rain, "nieve": Snow, "tormenta": Storm,
	"1": Normal, "2": Rain, "3": Snow, "4": Storm,
}

// Regimes returns the four regimes in tensor order.
func Regimes() []Regime { return []Regime{Normal, Rain, Snow, Storm} }

// Valid reports whether r is one of the four regimes.
func (r Regime) Valid() bool { return r < NumRegimes }

// String returns the lower-case English name, or "regime(N)" when invalid.
func (r Regime) String() string {
	if !r.Valid() {
		return fmt.Sprintf("regime(%d)", uint8(r))
	}

	return regimeNames[r]
}

// ParseRegime resolves a case-insensitive regime name.
func ParseRegime(s string) (Regime, error) {
	r, ok := regimeAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidRegime)
	}

	return r, nil
}

// MarshalText implements encoding.TextMarshaler.
func (r Regime) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, ErrInvalidRegime
	}

	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseRegime.
func (r *Regime) UnmarshalText(b []byte) error {
	v, err := ParseRegime(string(b))
	if err != nil {
		return err
	}
	*r = v

	return nil
}
