package models

import "fmt"

// IndicatorKind selects the rule type an indicator is evaluated with.
type IndicatorKind string

const (
	KindRoHS      IndicatorKind = "Rohs"
	KindWatchList IndicatorKind = "WatchList"
)

// Indicator is a named compliance rule tied to one or more legislations and a
// concentration threshold. Indicators are sent with compliance requests and
// come back on each result item with a flag attached.
type Indicator struct {
	Name                       string
	LegislationNames           []string
	DefaultThresholdPercentage float64
	Kind                       IndicatorKind
}

// Clone returns an independent copy of the indicator. Result objects hold
// clones so that per-item flags never alias the definitions owned by a query
// builder.
func (i Indicator) Clone() Indicator {
	c := i
	c.LegislationNames = append([]string(nil), i.LegislationNames...)
	return c
}

// RoHSFlag is a compliance state for a RoHS-type indicator. Higher values mean
// less compliant.
type RoHSFlag int

const (
	RohsNotImpacted RoHSFlag = iota + 1
	RohsBelowThreshold
	RohsCompliant
	RohsCompliantWithExemptions
	RohsAboveThreshold
	RohsNonCompliant
	RohsUnknown
)

var rohsFlagNames = map[RoHSFlag]string{
	RohsNotImpacted:             "RohsNotImpacted",
	RohsBelowThreshold:          "RohsBelowThreshold",
	RohsCompliant:               "RohsCompliant",
	RohsCompliantWithExemptions: "RohsCompliantWithExemptions",
	RohsAboveThreshold:          "RohsAboveThreshold",
	RohsNonCompliant:            "RohsNonCompliant",
	RohsUnknown:                 "RohsUnknown",
}

func (f RoHSFlag) String() string {
	if name, ok := rohsFlagNames[f]; ok {
		return name
	}
	return fmt.Sprintf("RoHSFlag(%d)", int(f))
}

// ParseRoHSFlag converts a wire flag name to its ordered value.
func ParseRoHSFlag(name string) (RoHSFlag, error) {
	for flag, n := range rohsFlagNames {
		if n == name {
			return flag, nil
		}
	}
	return 0, fmt.Errorf("unknown RoHS flag %q", name)
}

// WatchListFlag is a compliance state for a watch-list-type indicator. Higher
// values mean less compliant.
type WatchListFlag int

const (
	WatchListNotImpacted WatchListFlag = iota + 1
	WatchListCompliant
	WatchListBelowThreshold
	WatchListAllSubstancesBelowThreshold
	WatchListAboveThreshold
	WatchListHasSubstanceAboveThreshold
	WatchListUnknown
)

var watchListFlagNames = map[WatchListFlag]string{
	WatchListNotImpacted:                 "WatchListNotImpacted",
	WatchListCompliant:                   "WatchListCompliant",
	WatchListBelowThreshold:              "WatchListBelowThreshold",
	WatchListAllSubstancesBelowThreshold: "WatchListAllSubstancesBelowThreshold",
	WatchListAboveThreshold:              "WatchListAboveThreshold",
	WatchListHasSubstanceAboveThreshold:  "WatchListHasSubstanceAboveThreshold",
	WatchListUnknown:                     "WatchListUnknown",
}

func (f WatchListFlag) String() string {
	if name, ok := watchListFlagNames[f]; ok {
		return name
	}
	return fmt.Sprintf("WatchListFlag(%d)", int(f))
}

// ParseWatchListFlag converts a wire flag name to its ordered value.
func ParseWatchListFlag(name string) (WatchListFlag, error) {
	for flag, n := range watchListFlagNames {
		if n == name {
			return flag, nil
		}
	}
	return 0, fmt.Errorf("unknown watch list flag %q", name)
}

// FlagSeverity returns the ordered severity of a wire flag name for the given
// indicator kind, or 0 if the name is not recognised. Used to rank results
// without forcing callers to switch on the kind themselves.
func FlagSeverity(kind IndicatorKind, flag string) int {
	switch kind {
	case KindRoHS:
		if f, err := ParseRoHSFlag(flag); err == nil {
			return int(f)
		}
	case KindWatchList:
		if f, err := ParseWatchListFlag(flag); err == nil {
			return int(f)
		}
	}
	return 0
}
