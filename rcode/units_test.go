package rcode

import (
	"testing"

	"github.com/dlis-toolkit/dliswriter/errs"
	"github.com/stretchr/testify/assert"
)

func TestValidateUnits_CharsetOK(t *testing.T) {
	assert.NoError(t, ValidateUnits("m", false))
	assert.NoError(t, ValidateUnits("ft/s", false))
	assert.NoError(t, ValidateUnits("g/cm3", false))
	assert.NoError(t, ValidateUnits("", false))
}

func TestValidateUnits_CharsetRejected(t *testing.T) {
	err := ValidateUnits("m^3", false)
	assert.ErrorIs(t, err, errs.ErrInvalidUnits)
}

func TestValidateUnits_CharsetAllowsSpaceAndParens(t *testing.T) {
	assert.NoError(t, ValidateUnits("lbf (force)", false))
	assert.NoError(t, ValidateUnits("m 3", false))
}

func TestValidateUnits_HighCompatibilityMode(t *testing.T) {
	assert.NoError(t, ValidateUnits("m", true))
	assert.NoError(t, ValidateUnits("ft", true))

	err := ValidateUnits("zzz", true)
	assert.ErrorIs(t, err, errs.ErrInvalidUnits)
}
