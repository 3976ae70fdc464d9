package query

import (
	"context"

	"github.com/kilupskalvis/bomcheck/internal/models"
	"github.com/kilupskalvis/bomcheck/internal/remote"
	"github.com/kilupskalvis/bomcheck/internal/results"
)

// SpecificationComplianceQuery evaluates specification records against
// indicators.
type SpecificationComplianceQuery struct {
	specifications specificationItems
	compliance     complianceParams
	batch          batchConfig
}

// NewSpecificationComplianceQuery creates an empty specification compliance
// query.
func NewSpecificationComplianceQuery() *SpecificationComplianceQuery {
	q := &SpecificationComplianceQuery{}
	q.batch.size = defaultSpecificationBatchSize
	return q
}

// WithRecordHistoryIDs adds specifications referenced by record history
// identity.
func (q *SpecificationComplianceQuery) WithRecordHistoryIDs(ids ...int) *SpecificationComplianceQuery {
	q.specifications.addRecordHistoryIDs(ids)
	return q
}

// WithRecordGUIDs adds specifications referenced by record GUID.
func (q *SpecificationComplianceQuery) WithRecordGUIDs(guids ...string) *SpecificationComplianceQuery {
	q.specifications.addRecordGUIDs(guids)
	return q
}

// WithRecordHistoryGUIDs adds specifications referenced by record history
// GUID.
func (q *SpecificationComplianceQuery) WithRecordHistoryGUIDs(guids ...string) *SpecificationComplianceQuery {
	q.specifications.addRecordHistoryGUIDs(guids)
	return q
}

// WithSpecificationIDs adds specifications referenced by specification ID.
func (q *SpecificationComplianceQuery) WithSpecificationIDs(ids ...string) *SpecificationComplianceQuery {
	q.specifications.addSpecificationIDs(ids)
	return q
}

// WithIndicators adds indicators to evaluate the specifications against.
func (q *SpecificationComplianceQuery) WithIndicators(indicators ...models.Indicator) *SpecificationComplianceQuery {
	q.compliance.add(indicators)
	return q
}

// WithBatchSize overrides the number of specifications sent per request.
func (q *SpecificationComplianceQuery) WithBatchSize(size int) *SpecificationComplianceQuery {
	q.batch.set(size)
	return q
}

// Execute runs the query against the connection.
func (q *SpecificationComplianceQuery) Execute(ctx context.Context, conn *remote.Connection) (*results.ComplianceResult, error) {
	if err := q.batch.validate(); err != nil {
		return nil, err
	}
	if err := q.specifications.validate(); err != nil {
		return nil, err
	}
	if err := q.compliance.validate(); err != nil {
		return nil, err
	}
	refs, err := q.specifications.references()
	if err != nil {
		return nil, err
	}

	result := results.NewComplianceResult(q.compliance.indicators)
	for _, chunk := range batches(refs, q.batch.size) {
		req := &remote.SpecificationComplianceRequest{
			DatabaseKey:    conn.DBKey,
			Specifications: chunk,
			Indicators:     q.compliance.definitions(),
			Config:         conn.Config,
		}
		resp, err := conn.Client.SpecificationCompliance(ctx, req)
		if err != nil {
			return nil, &RemoteCallError{Op: "specification compliance", Err: err}
		}
		result.AddSpecificationItems(resp.Specifications)
	}
	return result, nil
}

// SpecificationImpactedSubstancesQuery resolves the substances impacting
// specification records under legislations.
type SpecificationImpactedSubstancesQuery struct {
	specifications specificationItems
	impacted       impactedParams
	batch          batchConfig
}

// NewSpecificationImpactedSubstancesQuery creates an empty specification
// impacted substances query.
func NewSpecificationImpactedSubstancesQuery() *SpecificationImpactedSubstancesQuery {
	q := &SpecificationImpactedSubstancesQuery{}
	q.batch.size = defaultSpecificationBatchSize
	return q
}

// WithRecordHistoryIDs adds specifications referenced by record history
// identity.
func (q *SpecificationImpactedSubstancesQuery) WithRecordHistoryIDs(ids ...int) *SpecificationImpactedSubstancesQuery {
	q.specifications.addRecordHistoryIDs(ids)
	return q
}

// WithRecordGUIDs adds specifications referenced by record GUID.
func (q *SpecificationImpactedSubstancesQuery) WithRecordGUIDs(guids ...string) *SpecificationImpactedSubstancesQuery {
	q.specifications.addRecordGUIDs(guids)
	return q
}

// WithRecordHistoryGUIDs adds specifications referenced by record history
// GUID.
func (q *SpecificationImpactedSubstancesQuery) WithRecordHistoryGUIDs(guids ...string) *SpecificationImpactedSubstancesQuery {
	q.specifications.addRecordHistoryGUIDs(guids)
	return q
}

// WithSpecificationIDs adds specifications referenced by specification ID.
func (q *SpecificationImpactedSubstancesQuery) WithSpecificationIDs(ids ...string) *SpecificationImpactedSubstancesQuery {
	q.specifications.addSpecificationIDs(ids)
	return q
}

// WithLegislations adds legislations to resolve impacted substances against.
func (q *SpecificationImpactedSubstancesQuery) WithLegislations(names ...string) *SpecificationImpactedSubstancesQuery {
	q.impacted.add(names)
	return q
}

// WithBatchSize overrides the number of specifications sent per request.
func (q *SpecificationImpactedSubstancesQuery) WithBatchSize(size int) *SpecificationImpactedSubstancesQuery {
	q.batch.set(size)
	return q
}

// Execute runs the query against the connection.
func (q *SpecificationImpactedSubstancesQuery) Execute(ctx context.Context, conn *remote.Connection) (*results.ImpactedSubstancesResult, error) {
	if err := q.batch.validate(); err != nil {
		return nil, err
	}
	if err := q.specifications.validate(); err != nil {
		return nil, err
	}
	if err := q.impacted.validate(); err != nil {
		return nil, err
	}
	refs, err := q.specifications.references()
	if err != nil {
		return nil, err
	}

	result := results.NewImpactedSubstancesResult()
	for _, chunk := range batches(refs, q.batch.size) {
		req := &remote.SpecificationImpactedSubstancesRequest{
			DatabaseKey:      conn.DBKey,
			Specifications:   chunk,
			LegislationNames: q.impacted.legislations,
			Config:           conn.Config,
		}
		resp, err := conn.Client.SpecificationImpactedSubstances(ctx, req)
		if err != nil {
			return nil, &RemoteCallError{Op: "specification impacted substances", Err: err}
		}
		result.AddItems(resp.Specifications)
	}
	return result, nil
}
