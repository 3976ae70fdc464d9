package results

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilupskalvis/bomcheck/internal/models"
	"github.com/kilupskalvis/bomcheck/internal/remote"
)

func rohsIndicator() models.Indicator {
	return models.Indicator{
		Name:                       "RoHS",
		LegislationNames:           []string{"EU Directive 2011/65/EU (RoHS 2)"},
		DefaultThresholdPercentage: 0.1,
		Kind:                       models.KindRoHS,
	}
}

func materialItem(value, flag string) remote.MaterialComplianceItem {
	return remote.MaterialComplianceItem{
		ReferenceType:  "MiRecordHistoryIdentity",
		ReferenceValue: value,
		Indicators:     []remote.IndicatorResult{{Name: "RoHS", Flag: flag}},
	}
}

func TestComplianceByIndicator_FirstSeenWins(t *testing.T) {
	r := NewComplianceResult([]models.Indicator{rohsIndicator()})
	r.AddMaterialItems([]remote.MaterialComplianceItem{
		materialItem("1", "RohsCompliant"),
		materialItem("2", "RohsNonCompliant"),
	})

	pivot := r.ComplianceByIndicator()
	require.Contains(t, pivot, "RoHS")
	// The first item's flag is kept even when a later item is worse.
	assert.Equal(t, "RohsCompliant", pivot["RoHS"].Flag)
}

func TestComplianceByIndicator_RecomputedAfterAdd(t *testing.T) {
	r := NewComplianceResult([]models.Indicator{rohsIndicator()})
	r.AddMaterialItems([]remote.MaterialComplianceItem{materialItem("1", "RohsCompliant")})

	_ = r.ComplianceByIndicator()
	r.AddMaterialItems([]remote.MaterialComplianceItem{materialItem("2", "RohsNonCompliant")})

	pivot := r.ComplianceByIndicator()
	assert.Equal(t, "RohsCompliant", pivot["RoHS"].Flag)
	assert.Len(t, r.Compliance(), 2)
}

func TestComplianceResult_IndicatorDefinitionEnrichment(t *testing.T) {
	r := NewComplianceResult([]models.Indicator{rohsIndicator()})
	r.AddMaterialItems([]remote.MaterialComplianceItem{materialItem("1", "RohsAboveThreshold")})

	item := r.Compliance()[0]
	res := item.Indicators["RoHS"]
	assert.Equal(t, models.KindRoHS, res.Kind)
	assert.Equal(t, 0.1, res.DefaultThresholdPercentage)
	assert.Equal(t, int(models.RohsAboveThreshold), res.Severity())
}

func TestComplianceResult_IndicatorCopyIsIndependent(t *testing.T) {
	def := rohsIndicator()
	r := NewComplianceResult([]models.Indicator{def})
	r.AddMaterialItems([]remote.MaterialComplianceItem{materialItem("1", "RohsCompliant")})

	res := r.Compliance()[0].Indicators["RoHS"]
	res.LegislationNames[0] = "changed"

	assert.Equal(t, "EU Directive 2011/65/EU (RoHS 2)", def.LegislationNames[0])
}

func TestComplianceResult_UnknownIndicatorName(t *testing.T) {
	r := NewComplianceResult(nil)
	r.AddMaterialItems([]remote.MaterialComplianceItem{materialItem("1", "RohsCompliant")})

	res := r.Compliance()[0].Indicators["RoHS"]
	assert.Equal(t, "RoHS", res.Name)
	assert.Equal(t, "RohsCompliant", res.Flag)
}

func TestAddPartItems_RecursiveStructure(t *testing.T) {
	r := NewComplianceResult([]models.Indicator{rohsIndicator()})
	r.AddPartItems([]remote.PartComplianceItem{{
		ReferenceType:  "PartNumber",
		ReferenceValue: "PN-1",
		Indicators:     []remote.IndicatorResult{{Name: "RoHS", Flag: "RohsNonCompliant"}},
		Parts: []remote.PartComplianceItem{{
			ReferenceType:  "PartNumber",
			ReferenceValue: "PN-1-1",
			Indicators:     []remote.IndicatorResult{{Name: "RoHS", Flag: "RohsCompliant"}},
			Substances: []remote.SubstanceComplianceItem{{
				ReferenceType:  "CasNumber",
				ReferenceValue: "7439-92-1",
				Indicators:     []remote.IndicatorResult{{Name: "RoHS", Flag: "RohsAboveThreshold"}},
			}},
		}},
		Materials: []remote.MaterialComplianceItem{{
			ReferenceType:  "MaterialId",
			ReferenceValue: "steel-1",
			Indicators:     []remote.IndicatorResult{{Name: "RoHS", Flag: "RohsCompliant"}},
		}},
	}})

	items := r.Compliance()
	require.Len(t, items, 1)

	root := items[0]
	assert.Equal(t, KindPart, root.Kind)
	require.Len(t, root.Children, 2)

	child := root.Children[0]
	assert.Equal(t, KindPart, child.Kind)
	assert.Equal(t, "PN-1-1", child.Reference.Value)
	require.Len(t, child.Children, 1)
	assert.Equal(t, KindSubstance, child.Children[0].Kind)
	assert.Empty(t, child.Children[0].Children)

	assert.Equal(t, KindMaterial, root.Children[1].Kind)
}

func TestAddSpecificationItems(t *testing.T) {
	r := NewComplianceResult([]models.Indicator{rohsIndicator()})
	r.AddSpecificationItems([]remote.SpecificationComplianceItem{{
		ReferenceType:  "SpecificationId",
		ReferenceValue: "MIL-DTL-53039",
		Indicators:     []remote.IndicatorResult{{Name: "RoHS", Flag: "RohsCompliant"}},
		Substances: []remote.SubstanceComplianceItem{{
			ReferenceType:  "CasNumber",
			ReferenceValue: "7439-92-1",
			Indicators:     []remote.IndicatorResult{{Name: "RoHS", Flag: "RohsBelowThreshold"}},
		}},
	}})

	items := r.Compliance()
	require.Len(t, items, 1)
	assert.Equal(t, KindSpecification, items[0].Kind)
	require.Len(t, items[0].Children, 1)
	assert.Equal(t, KindSubstance, items[0].Children[0].Kind)
}
