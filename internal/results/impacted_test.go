package results

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilupskalvis/bomcheck/internal/remote"
)

func impactedItem(value string, legislations map[string][]string) remote.ImpactedSubstancesItem {
	item := remote.ImpactedSubstancesItem{
		ReferenceType:  "MaterialId",
		ReferenceValue: value,
	}
	for name, substances := range legislations {
		leg := remote.LegislationResult{LegislationName: name}
		for _, cas := range substances {
			leg.ImpactedSubstances = append(leg.ImpactedSubstances, remote.ImpactedSubstance{CasNumber: cas})
		}
		item.Legislations = append(item.Legislations, leg)
	}
	return item
}

func TestImpactedSubstancesByLegislation_ConcatenatesAcrossItems(t *testing.T) {
	r := NewImpactedSubstancesResult()
	r.AddItems([]remote.ImpactedSubstancesItem{
		impactedItem("steel-1", map[string][]string{"REACH": {"7439-92-1", "7440-43-9"}}),
		impactedItem("brass-2", map[string][]string{"REACH": {"7439-92-1"}}),
	})

	pivot := r.ImpactedSubstancesByLegislation()
	require.Contains(t, pivot, "REACH")
	// Substances repeated across items are kept, not deduplicated.
	assert.Len(t, pivot["REACH"], 3)
}

func TestImpactedSubstancesByLegislation_SeparateLegislations(t *testing.T) {
	r := NewImpactedSubstancesResult()
	r.AddItems([]remote.ImpactedSubstancesItem{
		impactedItem("steel-1", map[string][]string{"REACH": {"7439-92-1"}}),
		impactedItem("brass-2", map[string][]string{"RoHS": {"7440-43-9"}}),
	})

	pivot := r.ImpactedSubstancesByLegislation()
	assert.Len(t, pivot["REACH"], 1)
	assert.Len(t, pivot["RoHS"], 1)
}

func TestAllImpactedSubstances_Flattens(t *testing.T) {
	r := NewImpactedSubstancesResult()
	r.AddItems([]remote.ImpactedSubstancesItem{
		impactedItem("steel-1", map[string][]string{"REACH": {"7439-92-1", "7440-43-9"}}),
		impactedItem("brass-2", map[string][]string{"REACH": {"7439-92-1"}}),
	})

	assert.Len(t, r.AllImpactedSubstances(), 3)
}

func TestImpactedSubstances_ItemAccess(t *testing.T) {
	r := NewImpactedSubstancesResult()
	r.AddItems([]remote.ImpactedSubstancesItem{
		impactedItem("steel-1", map[string][]string{"REACH": {"7439-92-1"}}),
	})

	items := r.ImpactedSubstances()
	require.Len(t, items, 1)
	assert.Equal(t, "steel-1", items[0].Reference.Value)

	reach, ok := items[0].Legislation("REACH")
	require.True(t, ok)
	assert.Equal(t, "7439-92-1", reach.Substances[0].CASNumber)

	_, ok = items[0].Legislation("Prop65")
	assert.False(t, ok)
}

func TestImpactedSubstances_AmountFields(t *testing.T) {
	amount := 1.5
	threshold := 0.1

	r := NewImpactedSubstancesResult()
	r.AddItems([]remote.ImpactedSubstancesItem{{
		ReferenceType:  "MaterialId",
		ReferenceValue: "steel-1",
		Legislations: []remote.LegislationResult{{
			LegislationName: "REACH",
			ImpactedSubstances: []remote.ImpactedSubstance{{
				SubstanceName:                 "lead",
				CasNumber:                     "7439-92-1",
				EcNumber:                      "231-100-4",
				MaxPercentageAmountInMaterial: &amount,
				LegislationThreshold:          &threshold,
			}, {
				SubstanceName: "cadmium",
			}},
		}},
	}})

	all := r.AllImpactedSubstances()
	require.Len(t, all, 2)

	require.NotNil(t, all[0].MaxPercentageAmountInMaterial)
	assert.Equal(t, 1.5, *all[0].MaxPercentageAmountInMaterial)
	assert.Equal(t, 0.1, *all[0].LegislationThreshold)

	// Omitted amounts stay nil rather than becoming zero.
	assert.Nil(t, all[1].MaxPercentageAmountInMaterial)
	assert.Nil(t, all[1].LegislationThreshold)
}

func TestAddBomLegislations_SingleDocumentItem(t *testing.T) {
	r := NewImpactedSubstancesResult()
	r.AddBomLegislations([]remote.LegislationResult{{
		LegislationName:    "REACH",
		ImpactedSubstances: []remote.ImpactedSubstance{{CasNumber: "7439-92-1"}},
	}})

	items := r.ImpactedSubstances()
	require.Len(t, items, 1)
	assert.Empty(t, items[0].Reference.Value)
	assert.Len(t, r.AllImpactedSubstances(), 1)
}
