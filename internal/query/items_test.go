package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilupskalvis/bomcheck/internal/models"
)

func TestRecordFields_Precedence(t *testing.T) {
	// All discriminants set: history identity wins.
	item := MaterialItem{
		recordFields: recordFields{
			historyIdentity: 42,
			recordGUID:      "record-guid",
			historyGUID:     "history-guid",
		},
		materialID: "steel-1",
	}

	ref, err := item.Reference()
	require.NoError(t, err)
	assert.Equal(t, models.MiRecordHistoryIdentity, ref.Type)
	assert.Equal(t, "42", ref.Value)
}

func TestRecordFields_GuidBeatsHistoryGuid(t *testing.T) {
	item := PartItem{
		recordFields: recordFields{
			recordGUID:  "record-guid",
			historyGUID: "history-guid",
		},
	}

	ref, err := item.Reference()
	require.NoError(t, err)
	assert.Equal(t, models.MiRecordGuid, ref.Type)
	assert.Equal(t, "record-guid", ref.Value)
}

func TestMaterialItem_DomainKeyFallback(t *testing.T) {
	item := MaterialItem{materialID: "steel-1"}

	ref, err := item.Reference()
	require.NoError(t, err)
	assert.Equal(t, models.MaterialId, ref.Type)
	assert.Equal(t, "steel-1", ref.Value)
}

func TestMaterialItem_NoReference(t *testing.T) {
	item := MaterialItem{}

	_, err := item.Reference()
	var refErr *InvalidReferenceError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, "material", refErr.ItemType)
}

func TestSubstanceItem_KeyPrecedence(t *testing.T) {
	item := SubstanceItem{
		chemicalName: "lead",
		casNumber:    "7439-92-1",
		ecNumber:     "231-100-4",
	}

	ref, err := item.Reference()
	require.NoError(t, err)
	assert.Equal(t, models.ChemicalName, ref.Type)
	assert.Equal(t, "lead", ref.Value)
}

func TestSubstanceItem_CasBeatsEc(t *testing.T) {
	item := SubstanceItem{
		casNumber: "7439-92-1",
		ecNumber:  "231-100-4",
	}

	ref, err := item.Reference()
	require.NoError(t, err)
	assert.Equal(t, models.CasNumber, ref.Type)
}

func TestSubstanceItem_SetPercentageAmount(t *testing.T) {
	var item SubstanceItem

	require.NoError(t, item.SetPercentageAmount(25.5))
	assert.Equal(t, 25.5, item.PercentageAmount())

	require.NoError(t, item.SetPercentageAmount(100))
	assert.Equal(t, 100.0, item.PercentageAmount())
}

func TestSubstanceItem_SetPercentageAmount_Invalid(t *testing.T) {
	var item SubstanceItem

	for _, value := range []float64{0, -1, 100.01, 200} {
		err := item.SetPercentageAmount(value)
		var pctErr *InvalidPercentageError
		require.ErrorAs(t, err, &pctErr, "value %v", value)
		assert.Equal(t, value, pctErr.Value)
	}
}
