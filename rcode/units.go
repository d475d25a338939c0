package rcode

import (
	"fmt"
	"strings"

	"github.com/dlis-toolkit/dliswriter/errs"
)

// ValidUnits lists the unit symbols RP66 V1 explicitly names (a
// representative subset of Appendix B's UNITS table, carried over from
// dliswriter/utils/enums.py's Unit enum). high_compatibility_mode upgrades
// an unknown-but-charset-valid unit from accepted-with-no-check to a hard
// validation error against this set; outside high_compatibility_mode, only
// the character-class restriction below is enforced.
var ValidUnits = map[string]struct{}{
	"A": {}, "K": {}, "cd": {}, "dAPI": {}, "dB": {}, "gAPI": {}, "kg": {}, "m": {},
	"mol": {}, "nAPI": {}, "rad": {}, "s": {}, "sr": {}, "Btu": {}, "C": {}, "D": {},
	"GPa": {}, "Gal": {}, "Hz": {}, "J": {}, "L": {}, "MHz": {}, "MPa": {}, "MeV": {},
	"Mg": {}, "Mpsi": {}, "N": {}, "Oe": {}, "P": {}, "Pa": {}, "S": {}, "T": {},
	"V": {}, "W": {}, "Wb": {}, "a": {}, "acre": {}, "atm": {}, "b": {}, "bar": {},
	"bbl": {}, "c": {}, "cP": {}, "cal": {}, "cm": {}, "cu": {}, "d": {}, "daN": {},
	"deg": {}, "degC": {}, "degF": {}, "dm": {}, "eV": {}, "fC": {}, "ft": {}, "g": {},
	"gal": {}, "h": {}, "in": {}, "kHz": {}, "kPa": {}, "kV": {}, "keV": {}, "kgf": {},
	"km": {}, "lbf": {}, "lbm": {}, "mA": {}, "mC": {}, "mD": {}, "mGal": {}, "mL": {},
	"mS": {}, "mT": {}, "mV": {}, "mW": {}, "mg": {}, "min": {}, "mm": {}, "mohm": {},
	"ms": {}, "nC": {}, "nW": {}, "ns": {}, "ohm": {}, "pC": {}, "pPa": {}, "ppdk": {},
	"ppk": {}, "ppm": {}, "psi": {}, "pu": {}, "t": {}, "ton": {}, "uA": {}, "uC": {},
	"uPa": {}, "uV": {}, "um": {}, "uohm": {}, "upsi": {}, "us": {}, "": {}, // "" is the explicit no-unit value
}

// unitsCharset is the character class RP66 V1 restricts UNITS values to
// (spec §3: `[A-Za-z0-9 \-./()]*`): upper/lowercase letters, digits, space,
// hyphen, period, slash, and parentheses.
const unitsCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789 -./()"

// ValidateUnits checks s against RP66 V1's character-class restriction for
// UNITS values (spec §3). If highCompatibilityMode is set, s must also be
// one of ValidUnits.
func ValidateUnits(s string, highCompatibilityMode bool) error {
	for _, r := range s {
		if !strings.ContainsRune(unitsCharset, r) {
			return fmt.Errorf("%w: units %q contains %q", errs.ErrInvalidUnits, s, r)
		}
	}

	if highCompatibilityMode {
		if _, ok := ValidUnits[s]; !ok {
			return fmt.Errorf("%w: units %q is not in the RP66 V1 standard unit table", errs.ErrInvalidUnits, s)
		}
	}

	return nil
}
