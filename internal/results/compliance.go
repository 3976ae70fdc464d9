// Package results assembles the per-batch responses of a query execution
// into unified result collections and derives their pivot views.
package results

import (
	"github.com/kilupskalvis/bomcheck/internal/models"
	"github.com/kilupskalvis/bomcheck/internal/remote"
)

// NodeKind tags the item type of a compliance result node.
type NodeKind string

const (
	KindPart          NodeKind = "part"
	KindMaterial      NodeKind = "material"
	KindSpecification NodeKind = "specification"
	KindSubstance     NodeKind = "substance"
)

// IndicatorResult is one indicator evaluated for one result item. It embeds
// an independent copy of the indicator definition supplied to the query, so
// mutating a result can never corrupt the builder's own definitions.
type IndicatorResult struct {
	models.Indicator
	Flag string
}

// Severity returns the ordered severity of the flag, higher meaning less
// compliant, or 0 if the flag is not recognised for the indicator's kind.
func (r IndicatorResult) Severity() int {
	return models.FlagSeverity(r.Kind, r.Flag)
}

// ComplianceNode is one item of a compliance result. BoM-structured responses
// nest: a part node owns child parts, materials, specifications and
// substances; substance nodes are leaves.
type ComplianceNode struct {
	Kind       NodeKind
	Reference  models.Reference
	Indicators map[string]IndicatorResult
	Children   []*ComplianceNode
}

// ComplianceResult owns the ordered result items of one compliance query
// execution. Items accumulate in submission order across batches.
type ComplianceResult struct {
	definitions map[string]models.Indicator
	items       []*ComplianceNode
	byIndicator map[string]IndicatorResult
}

// NewComplianceResult creates an empty result collection. The indicator
// definitions are used to enrich the name/flag pairs the server returns.
func NewComplianceResult(definitions []models.Indicator) *ComplianceResult {
	defs := make(map[string]models.Indicator, len(definitions))
	for _, def := range definitions {
		defs[def.Name] = def
	}
	return &ComplianceResult{definitions: defs}
}

// Compliance returns the result items in submission order.
func (r *ComplianceResult) Compliance() []*ComplianceNode {
	return r.items
}

// ComplianceByIndicator merges indicator results across all items. The merge
// keeps the first occurrence of each indicator name; later items do not
// overwrite it.
func (r *ComplianceResult) ComplianceByIndicator() map[string]IndicatorResult {
	if r.byIndicator == nil {
		merged := make(map[string]IndicatorResult)
		for _, item := range r.items {
			for name, res := range item.Indicators {
				if _, seen := merged[name]; !seen {
					merged[name] = res
				}
			}
		}
		r.byIndicator = merged
	}
	return r.byIndicator
}

// AddMaterialItems appends material result items from one response fragment.
func (r *ComplianceResult) AddMaterialItems(items []remote.MaterialComplianceItem) {
	for _, item := range items {
		r.items = append(r.items, r.materialNode(item))
	}
	r.byIndicator = nil
}

// AddPartItems appends part result items from one response fragment,
// reconstructing the nested BoM structure below each part.
func (r *ComplianceResult) AddPartItems(items []remote.PartComplianceItem) {
	for _, item := range items {
		r.items = append(r.items, r.partNode(item))
	}
	r.byIndicator = nil
}

// AddSpecificationItems appends specification result items from one response
// fragment.
func (r *ComplianceResult) AddSpecificationItems(items []remote.SpecificationComplianceItem) {
	for _, item := range items {
		r.items = append(r.items, r.specificationNode(item))
	}
	r.byIndicator = nil
}

// AddSubstanceItems appends substance result items from one response
// fragment.
func (r *ComplianceResult) AddSubstanceItems(items []remote.SubstanceComplianceItem) {
	for _, item := range items {
		r.items = append(r.items, r.substanceNode(item))
	}
	r.byIndicator = nil
}

func (r *ComplianceResult) indicatorResults(wire []remote.IndicatorResult) map[string]IndicatorResult {
	out := make(map[string]IndicatorResult, len(wire))
	for _, w := range wire {
		res := IndicatorResult{Flag: w.Flag}
		if def, ok := r.definitions[w.Name]; ok {
			res.Indicator = def.Clone()
		} else {
			res.Indicator = models.Indicator{Name: w.Name}
		}
		out[w.Name] = res
	}
	return out
}

func wireReference(refType, refValue string) models.Reference {
	return models.Reference{Type: models.ReferenceType(refType), Value: refValue}
}

func (r *ComplianceResult) materialNode(item remote.MaterialComplianceItem) *ComplianceNode {
	node := &ComplianceNode{
		Kind:       KindMaterial,
		Reference:  wireReference(item.ReferenceType, item.ReferenceValue),
		Indicators: r.indicatorResults(item.Indicators),
	}
	for _, sub := range item.Substances {
		node.Children = append(node.Children, r.substanceNode(sub))
	}
	return node
}

func (r *ComplianceResult) specificationNode(item remote.SpecificationComplianceItem) *ComplianceNode {
	node := &ComplianceNode{
		Kind:       KindSpecification,
		Reference:  wireReference(item.ReferenceType, item.ReferenceValue),
		Indicators: r.indicatorResults(item.Indicators),
	}
	for _, sub := range item.Substances {
		node.Children = append(node.Children, r.substanceNode(sub))
	}
	return node
}

func (r *ComplianceResult) substanceNode(item remote.SubstanceComplianceItem) *ComplianceNode {
	return &ComplianceNode{
		Kind:       KindSubstance,
		Reference:  wireReference(item.ReferenceType, item.ReferenceValue),
		Indicators: r.indicatorResults(item.Indicators),
	}
}

// partNode recurses through the BoM structure. Recursion terminates at
// substances, which have no children.
func (r *ComplianceResult) partNode(item remote.PartComplianceItem) *ComplianceNode {
	node := &ComplianceNode{
		Kind:       KindPart,
		Reference:  wireReference(item.ReferenceType, item.ReferenceValue),
		Indicators: r.indicatorResults(item.Indicators),
	}
	for _, child := range item.Parts {
		node.Children = append(node.Children, r.partNode(child))
	}
	for _, child := range item.Materials {
		node.Children = append(node.Children, r.materialNode(child))
	}
	for _, child := range item.Specifications {
		node.Children = append(node.Children, r.specificationNode(child))
	}
	for _, child := range item.Substances {
		node.Children = append(node.Children, r.substanceNode(child))
	}
	return node
}
