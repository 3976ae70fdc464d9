package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoHSFlag(t *testing.T) {
	f, err := ParseRoHSFlag("RohsCompliant")
	require.NoError(t, err)
	assert.Equal(t, RohsCompliant, f)
}

func TestParseRoHSFlag_Unknown(t *testing.T) {
	_, err := ParseRoHSFlag("NotAFlag")
	assert.Error(t, err)
}

func TestParseWatchListFlag(t *testing.T) {
	f, err := ParseWatchListFlag("WatchListAboveThreshold")
	require.NoError(t, err)
	assert.Equal(t, WatchListAboveThreshold, f)
}

func TestRoHSFlag_Ordering(t *testing.T) {
	assert.True(t, RohsNotImpacted < RohsCompliant)
	assert.True(t, RohsCompliant < RohsAboveThreshold)
	assert.True(t, RohsNonCompliant < RohsUnknown)
}

func TestFlagSeverity(t *testing.T) {
	assert.Equal(t, int(RohsNonCompliant), FlagSeverity(KindRoHS, "RohsNonCompliant"))
	assert.Equal(t, int(WatchListCompliant), FlagSeverity(KindWatchList, "WatchListCompliant"))
}

func TestFlagSeverity_WrongKind(t *testing.T) {
	// A watch list flag name is meaningless for a RoHS indicator.
	assert.Equal(t, 0, FlagSeverity(KindRoHS, "WatchListCompliant"))
}

func TestIndicator_Clone(t *testing.T) {
	original := Indicator{
		Name:                       "RoHS",
		LegislationNames:           []string{"EU Directive 2011/65/EU (RoHS 2)"},
		DefaultThresholdPercentage: 0.1,
		Kind:                       KindRoHS,
	}

	clone := original.Clone()
	clone.LegislationNames[0] = "changed"

	assert.Equal(t, "EU Directive 2011/65/EU (RoHS 2)", original.LegislationNames[0])
}
