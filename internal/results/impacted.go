package results

import (
	"github.com/kilupskalvis/bomcheck/internal/models"
	"github.com/kilupskalvis/bomcheck/internal/remote"
)

// SubstanceWithAmounts is one impacted substance together with the amounts
// reported for it. The pointer fields are nil when the server omitted the
// value.
type SubstanceWithAmounts struct {
	ChemicalName                  string
	CASNumber                     string
	ECNumber                      string
	MaxPercentageAmountInMaterial *float64
	LegislationThreshold          *float64
}

// Legislation groups the impacted substances reported for one legislation on
// one result item, in response order.
type Legislation struct {
	Name       string
	Substances []SubstanceWithAmounts
}

// ItemImpactedSubstances is one result item of an impacted substances query.
// For record queries the reference identifies the resolved record; for BoM
// queries a single item with an empty reference covers the whole document.
type ItemImpactedSubstances struct {
	Reference models.Reference

	legislations []*Legislation
	byName       map[string]*Legislation
}

// Legislations returns the per-legislation results keyed by legislation name.
func (i *ItemImpactedSubstances) Legislations() map[string]*Legislation {
	return i.byName
}

// Legislation returns the result for one legislation, if present.
func (i *ItemImpactedSubstances) Legislation(name string) (*Legislation, bool) {
	leg, ok := i.byName[name]
	return leg, ok
}

// ImpactedSubstancesResult owns the ordered result items of one impacted
// substances query execution and derives flattened pivot views on demand.
type ImpactedSubstancesResult struct {
	items         []*ItemImpactedSubstances
	byLegislation map[string][]SubstanceWithAmounts
}

// NewImpactedSubstancesResult creates an empty result collection.
func NewImpactedSubstancesResult() *ImpactedSubstancesResult {
	return &ImpactedSubstancesResult{}
}

// ImpactedSubstances returns the result items in submission order.
func (r *ImpactedSubstancesResult) ImpactedSubstances() []*ItemImpactedSubstances {
	return r.items
}

// ImpactedSubstancesByLegislation concatenates each item's substances under
// its legislation name, in item order. Substances repeated across items are
// kept; the caller sees the full multiplicity.
func (r *ImpactedSubstancesResult) ImpactedSubstancesByLegislation() map[string][]SubstanceWithAmounts {
	if r.byLegislation == nil {
		merged := make(map[string][]SubstanceWithAmounts)
		for _, item := range r.items {
			for _, leg := range item.legislations {
				merged[leg.Name] = append(merged[leg.Name], leg.Substances...)
			}
		}
		r.byLegislation = merged
	}
	return r.byLegislation
}

// AllImpactedSubstances flattens every substance of every item into a single
// slice, in item then legislation then response order. Duplicates are kept.
func (r *ImpactedSubstancesResult) AllImpactedSubstances() []SubstanceWithAmounts {
	var all []SubstanceWithAmounts
	for _, item := range r.items {
		for _, leg := range item.legislations {
			all = append(all, leg.Substances...)
		}
	}
	return all
}

// AddItems appends record result items from one response fragment.
func (r *ImpactedSubstancesResult) AddItems(items []remote.ImpactedSubstancesItem) {
	for _, item := range items {
		node := &ItemImpactedSubstances{
			Reference: wireReference(item.ReferenceType, item.ReferenceValue),
		}
		node.addLegislations(item.Legislations)
		r.items = append(r.items, node)
	}
	r.byLegislation = nil
}

// AddBomLegislations appends the single document-scoped item of a BoM
// response.
func (r *ImpactedSubstancesResult) AddBomLegislations(legislations []remote.LegislationResult) {
	node := &ItemImpactedSubstances{}
	node.addLegislations(legislations)
	r.items = append(r.items, node)
	r.byLegislation = nil
}

func (i *ItemImpactedSubstances) addLegislations(legislations []remote.LegislationResult) {
	if i.byName == nil {
		i.byName = make(map[string]*Legislation, len(legislations))
	}
	for _, wire := range legislations {
		leg := &Legislation{Name: wire.LegislationName}
		for _, sub := range wire.ImpactedSubstances {
			leg.Substances = append(leg.Substances, SubstanceWithAmounts{
				ChemicalName:                  sub.SubstanceName,
				CASNumber:                     sub.CasNumber,
				ECNumber:                      sub.EcNumber,
				MaxPercentageAmountInMaterial: sub.MaxPercentageAmountInMaterial,
				LegislationThreshold:          sub.LegislationThreshold,
			})
		}
		i.legislations = append(i.legislations, leg)
		i.byName[leg.Name] = leg
	}
}
