// Package query provides fluent builders for the supported query types. A
// builder accumulates item references and evaluation parameters, then Execute
// resolves them against a connection, batching requests and merging the
// responses into a single result.
package query

import (
	"fmt"

	"github.com/kilupskalvis/bomcheck/internal/models"
	"github.com/kilupskalvis/bomcheck/internal/remote"
)

// Default batch sizes, sized to the typical response weight per item. Parts
// and specifications expand to full BoM structures, so their batches are
// small; substances are leaves and batch large.
const (
	defaultMaterialBatchSize      = 100
	defaultPartBatchSize          = 10
	defaultSpecificationBatchSize = 10
	defaultSubstanceBatchSize     = 500
)

// batchConfig holds the batch size of a record query. An out-of-range size is
// recorded rather than returned, so fluent chains stay uninterrupted; the
// error surfaces at Execute.
type batchConfig struct {
	size int
	err  error
}

func (b *batchConfig) set(size int) {
	if size < 1 {
		b.err = &InvalidConfigurationError{Reason: fmt.Sprintf("batch size must be at least 1, got %d", size)}
		return
	}
	b.size = size
}

func (b *batchConfig) validate() error {
	return b.err
}

// complianceParams accumulates the indicators of a compliance query.
type complianceParams struct {
	indicators []models.Indicator
}

func (p *complianceParams) add(indicators []models.Indicator) {
	p.indicators = append(p.indicators, indicators...)
}

func (p *complianceParams) validate() error {
	if len(p.indicators) == 0 {
		return &MissingQueryParameterError{Parameter: "indicators"}
	}
	return nil
}

func (p *complianceParams) definitions() []remote.IndicatorDefinition {
	defs := make([]remote.IndicatorDefinition, len(p.indicators))
	for i, ind := range p.indicators {
		defs[i] = remote.IndicatorDefinitionFor(ind)
	}
	return defs
}

// impactedParams accumulates the legislation names of an impacted substances
// query.
type impactedParams struct {
	legislations []string
}

func (p *impactedParams) add(names []string) {
	p.legislations = append(p.legislations, names...)
}

func (p *impactedParams) validate() error {
	if len(p.legislations) == 0 {
		return &MissingQueryParameterError{Parameter: "legislations"}
	}
	return nil
}

// materialItems accumulates material references for both material query
// types.
type materialItems struct {
	items []MaterialItem
}

func (m *materialItems) addRecordHistoryIDs(ids []int) {
	for _, id := range ids {
		m.items = append(m.items, MaterialItem{recordFields: recordFields{historyIdentity: id}})
	}
}

func (m *materialItems) addRecordGUIDs(guids []string) {
	for _, guid := range guids {
		m.items = append(m.items, MaterialItem{recordFields: recordFields{recordGUID: guid}})
	}
}

func (m *materialItems) addRecordHistoryGUIDs(guids []string) {
	for _, guid := range guids {
		m.items = append(m.items, MaterialItem{recordFields: recordFields{historyGUID: guid}})
	}
}

func (m *materialItems) addMaterialIDs(ids []string) {
	for _, id := range ids {
		m.items = append(m.items, MaterialItem{materialID: id})
	}
}

func (m *materialItems) validate() error {
	if len(m.items) == 0 {
		return &MissingQueryParameterError{Parameter: "material references"}
	}
	return nil
}

func (m *materialItems) references() ([]models.Reference, error) {
	refs := make([]models.Reference, len(m.items))
	for i, item := range m.items {
		ref, err := item.Reference()
		if err != nil {
			return nil, err
		}
		refs[i] = ref
	}
	return refs, nil
}

// partItems accumulates part references for both part query types.
type partItems struct {
	items []PartItem
}

func (p *partItems) addRecordHistoryIDs(ids []int) {
	for _, id := range ids {
		p.items = append(p.items, PartItem{recordFields: recordFields{historyIdentity: id}})
	}
}

func (p *partItems) addRecordGUIDs(guids []string) {
	for _, guid := range guids {
		p.items = append(p.items, PartItem{recordFields: recordFields{recordGUID: guid}})
	}
}

func (p *partItems) addRecordHistoryGUIDs(guids []string) {
	for _, guid := range guids {
		p.items = append(p.items, PartItem{recordFields: recordFields{historyGUID: guid}})
	}
}

func (p *partItems) addPartNumbers(numbers []string) {
	for _, number := range numbers {
		p.items = append(p.items, PartItem{partNumber: number})
	}
}

func (p *partItems) validate() error {
	if len(p.items) == 0 {
		return &MissingQueryParameterError{Parameter: "part references"}
	}
	return nil
}

func (p *partItems) references() ([]models.Reference, error) {
	refs := make([]models.Reference, len(p.items))
	for i, item := range p.items {
		ref, err := item.Reference()
		if err != nil {
			return nil, err
		}
		refs[i] = ref
	}
	return refs, nil
}

// specificationItems accumulates specification references for both
// specification query types.
type specificationItems struct {
	items []SpecificationItem
}

func (s *specificationItems) addRecordHistoryIDs(ids []int) {
	for _, id := range ids {
		s.items = append(s.items, SpecificationItem{recordFields: recordFields{historyIdentity: id}})
	}
}

func (s *specificationItems) addRecordGUIDs(guids []string) {
	for _, guid := range guids {
		s.items = append(s.items, SpecificationItem{recordFields: recordFields{recordGUID: guid}})
	}
}

func (s *specificationItems) addRecordHistoryGUIDs(guids []string) {
	for _, guid := range guids {
		s.items = append(s.items, SpecificationItem{recordFields: recordFields{historyGUID: guid}})
	}
}

func (s *specificationItems) addSpecificationIDs(ids []string) {
	for _, id := range ids {
		s.items = append(s.items, SpecificationItem{specificationID: id})
	}
}

func (s *specificationItems) validate() error {
	if len(s.items) == 0 {
		return &MissingQueryParameterError{Parameter: "specification references"}
	}
	return nil
}

func (s *specificationItems) references() ([]models.Reference, error) {
	refs := make([]models.Reference, len(s.items))
	for i, item := range s.items {
		ref, err := item.Reference()
		if err != nil {
			return nil, err
		}
		refs[i] = ref
	}
	return refs, nil
}

// substanceItems accumulates substance references with amounts. An invalid
// amount is recorded and surfaced at Execute, matching batchConfig.
type substanceItems struct {
	items []SubstanceItem
	err   error
}

func (s *substanceItems) add(item SubstanceItem) {
	item.percentageAmount = defaultPercentageAmount
	s.items = append(s.items, item)
}

func (s *substanceItems) addWithAmount(item SubstanceItem, amount float64) {
	if err := item.SetPercentageAmount(amount); err != nil {
		if s.err == nil {
			s.err = err
		}
		return
	}
	s.items = append(s.items, item)
}

func (s *substanceItems) validate() error {
	if s.err != nil {
		return s.err
	}
	if len(s.items) == 0 {
		return &MissingQueryParameterError{Parameter: "substance references"}
	}
	return nil
}

func (s *substanceItems) references() ([]remote.SubstanceReference, error) {
	refs := make([]remote.SubstanceReference, len(s.items))
	for i, item := range s.items {
		ref, err := item.Reference()
		if err != nil {
			return nil, err
		}
		refs[i] = remote.SubstanceReference{Reference: ref, PercentageAmount: item.PercentageAmount()}
	}
	return refs, nil
}
