package query

import (
	"strconv"

	"github.com/kilupskalvis/bomcheck/internal/models"
)

// recordFields holds the generic MI record discriminants shared by every
// record-based item type. Resolution precedence is fixed: history identity,
// then record GUID, then record history GUID; domain lookup keys are the
// fallback and belong to the specific item types.
type recordFields struct {
	historyIdentity int
	recordGUID      string
	historyGUID     string
}

func (r recordFields) resolve() (models.Reference, bool) {
	if r.historyIdentity != 0 {
		return models.Reference{Type: models.MiRecordHistoryIdentity, Value: strconv.Itoa(r.historyIdentity)}, true
	}
	if r.recordGUID != "" {
		return models.Reference{Type: models.MiRecordGuid, Value: r.recordGUID}, true
	}
	if r.historyGUID != "" {
		return models.Reference{Type: models.MiRecordHistoryGuid, Value: r.historyGUID}, true
	}
	return models.Reference{}, false
}

// MaterialItem identifies one material record in a query.
type MaterialItem struct {
	recordFields
	materialID string
}

// Reference resolves the item to its wire reference.
func (m MaterialItem) Reference() (models.Reference, error) {
	if ref, ok := m.resolve(); ok {
		return ref, nil
	}
	if m.materialID != "" {
		return models.Reference{Type: models.MaterialId, Value: m.materialID}, nil
	}
	return models.Reference{}, &InvalidReferenceError{ItemType: "material"}
}

// PartItem identifies one part record in a query.
type PartItem struct {
	recordFields
	partNumber string
}

// Reference resolves the item to its wire reference.
func (p PartItem) Reference() (models.Reference, error) {
	if ref, ok := p.resolve(); ok {
		return ref, nil
	}
	if p.partNumber != "" {
		return models.Reference{Type: models.PartNumber, Value: p.partNumber}, nil
	}
	return models.Reference{}, &InvalidReferenceError{ItemType: "part"}
}

// SpecificationItem identifies one specification record in a query.
type SpecificationItem struct {
	recordFields
	specificationID string
}

// Reference resolves the item to its wire reference.
func (s SpecificationItem) Reference() (models.Reference, error) {
	if ref, ok := s.resolve(); ok {
		return ref, nil
	}
	if s.specificationID != "" {
		return models.Reference{Type: models.SpecificationId, Value: s.specificationID}, nil
	}
	return models.Reference{}, &InvalidReferenceError{ItemType: "specification"}
}

// defaultPercentageAmount is assumed when a substance is added without an
// explicit amount: the query then reports compliance as if the item were
// composed entirely of that substance.
const defaultPercentageAmount = 100.0

// SubstanceItem identifies one substance record in a query, together with the
// amount it is present at in its parent item. Lookup key precedence after the
// generic discriminants: chemical name, CAS number, EC number.
type SubstanceItem struct {
	recordFields
	chemicalName     string
	casNumber        string
	ecNumber         string
	percentageAmount float64
}

// SetPercentageAmount sets the substance amount. Values outside (0, 100] are
// rejected.
func (s *SubstanceItem) SetPercentageAmount(value float64) error {
	if value <= 0 || value > 100 {
		return &InvalidPercentageError{Value: value}
	}
	s.percentageAmount = value
	return nil
}

// PercentageAmount returns the amount this substance is present at.
func (s SubstanceItem) PercentageAmount() float64 {
	return s.percentageAmount
}

// Reference resolves the item to its wire reference.
func (s SubstanceItem) Reference() (models.Reference, error) {
	if ref, ok := s.resolve(); ok {
		return ref, nil
	}
	if s.chemicalName != "" {
		return models.Reference{Type: models.ChemicalName, Value: s.chemicalName}, nil
	}
	if s.casNumber != "" {
		return models.Reference{Type: models.CasNumber, Value: s.casNumber}, nil
	}
	if s.ecNumber != "" {
		return models.Reference{Type: models.EcNumber, Value: s.ecNumber}, nil
	}
	return models.Reference{}, &InvalidReferenceError{ItemType: "substance"}
}

// BomItem is an opaque XML BoM document. It carries no record reference; the
// document itself is the query payload.
type BomItem struct {
	XML string
}
