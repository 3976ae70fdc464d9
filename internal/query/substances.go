package query

import (
	"context"

	"github.com/kilupskalvis/bomcheck/internal/models"
	"github.com/kilupskalvis/bomcheck/internal/remote"
	"github.com/kilupskalvis/bomcheck/internal/results"
)

// Substance reference and amount pairs accepted by the ...AndAmounts adders.
// Amount is the percentage the substance is present at in its parent item.

type RecordHistoryIDAmount struct {
	RecordHistoryID int
	Amount          float64
}

type RecordGUIDAmount struct {
	RecordGUID string
	Amount     float64
}

type RecordHistoryGUIDAmount struct {
	RecordHistoryGUID string
	Amount            float64
}

type CASAmount struct {
	CASNumber string
	Amount    float64
}

type ECAmount struct {
	ECNumber string
	Amount   float64
}

type ChemicalNameAmount struct {
	ChemicalName string
	Amount       float64
}

// SubstanceComplianceQuery evaluates substance records against indicators.
// Substances added without an explicit amount are assumed to be present at
// 100%.
type SubstanceComplianceQuery struct {
	substances substanceItems
	compliance complianceParams
	batch      batchConfig
}

// NewSubstanceComplianceQuery creates an empty substance compliance query.
func NewSubstanceComplianceQuery() *SubstanceComplianceQuery {
	q := &SubstanceComplianceQuery{}
	q.batch.size = defaultSubstanceBatchSize
	return q
}

// WithRecordHistoryIDs adds substances referenced by record history identity.
func (q *SubstanceComplianceQuery) WithRecordHistoryIDs(ids ...int) *SubstanceComplianceQuery {
	for _, id := range ids {
		q.substances.add(SubstanceItem{recordFields: recordFields{historyIdentity: id}})
	}
	return q
}

// WithRecordGUIDs adds substances referenced by record GUID.
func (q *SubstanceComplianceQuery) WithRecordGUIDs(guids ...string) *SubstanceComplianceQuery {
	for _, guid := range guids {
		q.substances.add(SubstanceItem{recordFields: recordFields{recordGUID: guid}})
	}
	return q
}

// WithRecordHistoryGUIDs adds substances referenced by record history GUID.
func (q *SubstanceComplianceQuery) WithRecordHistoryGUIDs(guids ...string) *SubstanceComplianceQuery {
	for _, guid := range guids {
		q.substances.add(SubstanceItem{recordFields: recordFields{historyGUID: guid}})
	}
	return q
}

// WithChemicalNames adds substances referenced by chemical name.
func (q *SubstanceComplianceQuery) WithChemicalNames(names ...string) *SubstanceComplianceQuery {
	for _, name := range names {
		q.substances.add(SubstanceItem{chemicalName: name})
	}
	return q
}

// WithCASNumbers adds substances referenced by CAS number.
func (q *SubstanceComplianceQuery) WithCASNumbers(numbers ...string) *SubstanceComplianceQuery {
	for _, number := range numbers {
		q.substances.add(SubstanceItem{casNumber: number})
	}
	return q
}

// WithECNumbers adds substances referenced by EC number.
func (q *SubstanceComplianceQuery) WithECNumbers(numbers ...string) *SubstanceComplianceQuery {
	for _, number := range numbers {
		q.substances.add(SubstanceItem{ecNumber: number})
	}
	return q
}

// WithRecordHistoryIDsAndAmounts adds substances referenced by record history
// identity with explicit amounts.
func (q *SubstanceComplianceQuery) WithRecordHistoryIDsAndAmounts(pairs ...RecordHistoryIDAmount) *SubstanceComplianceQuery {
	for _, pair := range pairs {
		q.substances.addWithAmount(SubstanceItem{recordFields: recordFields{historyIdentity: pair.RecordHistoryID}}, pair.Amount)
	}
	return q
}

// WithRecordGUIDsAndAmounts adds substances referenced by record GUID with
// explicit amounts.
func (q *SubstanceComplianceQuery) WithRecordGUIDsAndAmounts(pairs ...RecordGUIDAmount) *SubstanceComplianceQuery {
	for _, pair := range pairs {
		q.substances.addWithAmount(SubstanceItem{recordFields: recordFields{recordGUID: pair.RecordGUID}}, pair.Amount)
	}
	return q
}

// WithRecordHistoryGUIDsAndAmounts adds substances referenced by record
// history GUID with explicit amounts.
func (q *SubstanceComplianceQuery) WithRecordHistoryGUIDsAndAmounts(pairs ...RecordHistoryGUIDAmount) *SubstanceComplianceQuery {
	for _, pair := range pairs {
		q.substances.addWithAmount(SubstanceItem{recordFields: recordFields{historyGUID: pair.RecordHistoryGUID}}, pair.Amount)
	}
	return q
}

// WithChemicalNamesAndAmounts adds substances referenced by chemical name
// with explicit amounts.
func (q *SubstanceComplianceQuery) WithChemicalNamesAndAmounts(pairs ...ChemicalNameAmount) *SubstanceComplianceQuery {
	for _, pair := range pairs {
		q.substances.addWithAmount(SubstanceItem{chemicalName: pair.ChemicalName}, pair.Amount)
	}
	return q
}

// WithCASNumbersAndAmounts adds substances referenced by CAS number with
// explicit amounts.
func (q *SubstanceComplianceQuery) WithCASNumbersAndAmounts(pairs ...CASAmount) *SubstanceComplianceQuery {
	for _, pair := range pairs {
		q.substances.addWithAmount(SubstanceItem{casNumber: pair.CASNumber}, pair.Amount)
	}
	return q
}

// WithECNumbersAndAmounts adds substances referenced by EC number with
// explicit amounts.
func (q *SubstanceComplianceQuery) WithECNumbersAndAmounts(pairs ...ECAmount) *SubstanceComplianceQuery {
	for _, pair := range pairs {
		q.substances.addWithAmount(SubstanceItem{ecNumber: pair.ECNumber}, pair.Amount)
	}
	return q
}

// WithIndicators adds indicators to evaluate the substances against.
func (q *SubstanceComplianceQuery) WithIndicators(indicators ...models.Indicator) *SubstanceComplianceQuery {
	q.compliance.add(indicators)
	return q
}

// WithBatchSize overrides the number of substances sent per request.
func (q *SubstanceComplianceQuery) WithBatchSize(size int) *SubstanceComplianceQuery {
	q.batch.set(size)
	return q
}

// Execute runs the query against the connection.
func (q *SubstanceComplianceQuery) Execute(ctx context.Context, conn *remote.Connection) (*results.ComplianceResult, error) {
	if err := q.batch.validate(); err != nil {
		return nil, err
	}
	if err := q.substances.validate(); err != nil {
		return nil, err
	}
	if err := q.compliance.validate(); err != nil {
		return nil, err
	}
	refs, err := q.substances.references()
	if err != nil {
		return nil, err
	}

	result := results.NewComplianceResult(q.compliance.indicators)
	for _, chunk := range batches(refs, q.batch.size) {
		req := &remote.SubstanceComplianceRequest{
			DatabaseKey: conn.DBKey,
			Substances:  chunk,
			Indicators:  q.compliance.definitions(),
			Config:      conn.Config,
		}
		resp, err := conn.Client.SubstanceCompliance(ctx, req)
		if err != nil {
			return nil, &RemoteCallError{Op: "substance compliance", Err: err}
		}
		result.AddSubstanceItems(resp.Substances)
	}
	return result, nil
}
