package query

import (
	"context"

	"github.com/kilupskalvis/bomcheck/internal/models"
	"github.com/kilupskalvis/bomcheck/internal/remote"
	"github.com/kilupskalvis/bomcheck/internal/results"
)

// PartComplianceQuery evaluates part records against indicators. Each result
// item carries the full BoM structure below the part.
type PartComplianceQuery struct {
	parts      partItems
	compliance complianceParams
	batch      batchConfig
}

// NewPartComplianceQuery creates an empty part compliance query.
func NewPartComplianceQuery() *PartComplianceQuery {
	q := &PartComplianceQuery{}
	q.batch.size = defaultPartBatchSize
	return q
}

// WithRecordHistoryIDs adds parts referenced by record history identity.
func (q *PartComplianceQuery) WithRecordHistoryIDs(ids ...int) *PartComplianceQuery {
	q.parts.addRecordHistoryIDs(ids)
	return q
}

// WithRecordGUIDs adds parts referenced by record GUID.
func (q *PartComplianceQuery) WithRecordGUIDs(guids ...string) *PartComplianceQuery {
	q.parts.addRecordGUIDs(guids)
	return q
}

// WithRecordHistoryGUIDs adds parts referenced by record history GUID.
func (q *PartComplianceQuery) WithRecordHistoryGUIDs(guids ...string) *PartComplianceQuery {
	q.parts.addRecordHistoryGUIDs(guids)
	return q
}

// WithPartNumbers adds parts referenced by part number.
func (q *PartComplianceQuery) WithPartNumbers(numbers ...string) *PartComplianceQuery {
	q.parts.addPartNumbers(numbers)
	return q
}

// WithIndicators adds indicators to evaluate the parts against.
func (q *PartComplianceQuery) WithIndicators(indicators ...models.Indicator) *PartComplianceQuery {
	q.compliance.add(indicators)
	return q
}

// WithBatchSize overrides the number of parts sent per request.
func (q *PartComplianceQuery) WithBatchSize(size int) *PartComplianceQuery {
	q.batch.set(size)
	return q
}

// Execute runs the query against the connection.
func (q *PartComplianceQuery) Execute(ctx context.Context, conn *remote.Connection) (*results.ComplianceResult, error) {
	if err := q.batch.validate(); err != nil {
		return nil, err
	}
	if err := q.parts.validate(); err != nil {
		return nil, err
	}
	if err := q.compliance.validate(); err != nil {
		return nil, err
	}
	refs, err := q.parts.references()
	if err != nil {
		return nil, err
	}

	result := results.NewComplianceResult(q.compliance.indicators)
	for _, chunk := range batches(refs, q.batch.size) {
		req := &remote.PartComplianceRequest{
			DatabaseKey: conn.DBKey,
			Parts:       chunk,
			Indicators:  q.compliance.definitions(),
			Config:      conn.Config,
		}
		resp, err := conn.Client.PartCompliance(ctx, req)
		if err != nil {
			return nil, &RemoteCallError{Op: "part compliance", Err: err}
		}
		result.AddPartItems(resp.Parts)
	}
	return result, nil
}

// PartImpactedSubstancesQuery resolves the substances impacting part records
// under legislations.
type PartImpactedSubstancesQuery struct {
	parts    partItems
	impacted impactedParams
	batch    batchConfig
}

// NewPartImpactedSubstancesQuery creates an empty part impacted substances
// query.
func NewPartImpactedSubstancesQuery() *PartImpactedSubstancesQuery {
	q := &PartImpactedSubstancesQuery{}
	q.batch.size = defaultPartBatchSize
	return q
}

// WithRecordHistoryIDs adds parts referenced by record history identity.
func (q *PartImpactedSubstancesQuery) WithRecordHistoryIDs(ids ...int) *PartImpactedSubstancesQuery {
	q.parts.addRecordHistoryIDs(ids)
	return q
}

// WithRecordGUIDs adds parts referenced by record GUID.
func (q *PartImpactedSubstancesQuery) WithRecordGUIDs(guids ...string) *PartImpactedSubstancesQuery {
	q.parts.addRecordGUIDs(guids)
	return q
}

// WithRecordHistoryGUIDs adds parts referenced by record history GUID.
func (q *PartImpactedSubstancesQuery) WithRecordHistoryGUIDs(guids ...string) *PartImpactedSubstancesQuery {
	q.parts.addRecordHistoryGUIDs(guids)
	return q
}

// WithPartNumbers adds parts referenced by part number.
func (q *PartImpactedSubstancesQuery) WithPartNumbers(numbers ...string) *PartImpactedSubstancesQuery {
	q.parts.addPartNumbers(numbers)
	return q
}

// WithLegislations adds legislations to resolve impacted substances against.
func (q *PartImpactedSubstancesQuery) WithLegislations(names ...string) *PartImpactedSubstancesQuery {
	q.impacted.add(names)
	return q
}

// WithBatchSize overrides the number of parts sent per request.
func (q *PartImpactedSubstancesQuery) WithBatchSize(size int) *PartImpactedSubstancesQuery {
	q.batch.set(size)
	return q
}

// Execute runs the query against the connection.
func (q *PartImpactedSubstancesQuery) Execute(ctx context.Context, conn *remote.Connection) (*results.ImpactedSubstancesResult, error) {
	if err := q.batch.validate(); err != nil {
		return nil, err
	}
	if err := q.parts.validate(); err != nil {
		return nil, err
	}
	if err := q.impacted.validate(); err != nil {
		return nil, err
	}
	refs, err := q.parts.references()
	if err != nil {
		return nil, err
	}

	result := results.NewImpactedSubstancesResult()
	for _, chunk := range batches(refs, q.batch.size) {
		req := &remote.PartImpactedSubstancesRequest{
			DatabaseKey:      conn.DBKey,
			Parts:            chunk,
			LegislationNames: q.impacted.legislations,
			Config:           conn.Config,
		}
		resp, err := conn.Client.PartImpactedSubstances(ctx, req)
		if err != nil {
			return nil, &RemoteCallError{Op: "part impacted substances", Err: err}
		}
		result.AddItems(resp.Parts)
	}
	return result, nil
}
