package query

import (
	"context"

	"github.com/kilupskalvis/bomcheck/internal/models"
	"github.com/kilupskalvis/bomcheck/internal/remote"
	"github.com/kilupskalvis/bomcheck/internal/results"
)

// MaterialComplianceQuery evaluates material records against indicators.
type MaterialComplianceQuery struct {
	materials  materialItems
	compliance complianceParams
	batch      batchConfig
}

// NewMaterialComplianceQuery creates an empty material compliance query.
func NewMaterialComplianceQuery() *MaterialComplianceQuery {
	q := &MaterialComplianceQuery{}
	q.batch.size = defaultMaterialBatchSize
	return q
}

// WithRecordHistoryIDs adds materials referenced by record history identity.
func (q *MaterialComplianceQuery) WithRecordHistoryIDs(ids ...int) *MaterialComplianceQuery {
	q.materials.addRecordHistoryIDs(ids)
	return q
}

// WithRecordGUIDs adds materials referenced by record GUID.
func (q *MaterialComplianceQuery) WithRecordGUIDs(guids ...string) *MaterialComplianceQuery {
	q.materials.addRecordGUIDs(guids)
	return q
}

// WithRecordHistoryGUIDs adds materials referenced by record history GUID.
func (q *MaterialComplianceQuery) WithRecordHistoryGUIDs(guids ...string) *MaterialComplianceQuery {
	q.materials.addRecordHistoryGUIDs(guids)
	return q
}

// WithMaterialIDs adds materials referenced by material ID.
func (q *MaterialComplianceQuery) WithMaterialIDs(ids ...string) *MaterialComplianceQuery {
	q.materials.addMaterialIDs(ids)
	return q
}

// WithIndicators adds indicators to evaluate the materials against.
func (q *MaterialComplianceQuery) WithIndicators(indicators ...models.Indicator) *MaterialComplianceQuery {
	q.compliance.add(indicators)
	return q
}

// WithBatchSize overrides the number of materials sent per request.
func (q *MaterialComplianceQuery) WithBatchSize(size int) *MaterialComplianceQuery {
	q.batch.set(size)
	return q
}

// Execute runs the query against the connection. Items are split into batches
// and the per-batch responses merged in submission order; the first failed
// batch aborts the execution.
func (q *MaterialComplianceQuery) Execute(ctx context.Context, conn *remote.Connection) (*results.ComplianceResult, error) {
	if err := q.batch.validate(); err != nil {
		return nil, err
	}
	if err := q.materials.validate(); err != nil {
		return nil, err
	}
	if err := q.compliance.validate(); err != nil {
		return nil, err
	}
	refs, err := q.materials.references()
	if err != nil {
		return nil, err
	}

	result := results.NewComplianceResult(q.compliance.indicators)
	for _, chunk := range batches(refs, q.batch.size) {
		req := &remote.MaterialComplianceRequest{
			DatabaseKey: conn.DBKey,
			Materials:   chunk,
			Indicators:  q.compliance.definitions(),
			Config:      conn.Config,
		}
		resp, err := conn.Client.MaterialCompliance(ctx, req)
		if err != nil {
			return nil, &RemoteCallError{Op: "material compliance", Err: err}
		}
		result.AddMaterialItems(resp.Materials)
	}
	return result, nil
}

// MaterialImpactedSubstancesQuery resolves the substances impacting material
// records under legislations.
type MaterialImpactedSubstancesQuery struct {
	materials materialItems
	impacted  impactedParams
	batch     batchConfig
}

// NewMaterialImpactedSubstancesQuery creates an empty material impacted
// substances query.
func NewMaterialImpactedSubstancesQuery() *MaterialImpactedSubstancesQuery {
	q := &MaterialImpactedSubstancesQuery{}
	q.batch.size = defaultMaterialBatchSize
	return q
}

// WithRecordHistoryIDs adds materials referenced by record history identity.
func (q *MaterialImpactedSubstancesQuery) WithRecordHistoryIDs(ids ...int) *MaterialImpactedSubstancesQuery {
	q.materials.addRecordHistoryIDs(ids)
	return q
}

// WithRecordGUIDs adds materials referenced by record GUID.
func (q *MaterialImpactedSubstancesQuery) WithRecordGUIDs(guids ...string) *MaterialImpactedSubstancesQuery {
	q.materials.addRecordGUIDs(guids)
	return q
}

// WithRecordHistoryGUIDs adds materials referenced by record history GUID.
func (q *MaterialImpactedSubstancesQuery) WithRecordHistoryGUIDs(guids ...string) *MaterialImpactedSubstancesQuery {
	q.materials.addRecordHistoryGUIDs(guids)
	return q
}

// WithMaterialIDs adds materials referenced by material ID.
func (q *MaterialImpactedSubstancesQuery) WithMaterialIDs(ids ...string) *MaterialImpactedSubstancesQuery {
	q.materials.addMaterialIDs(ids)
	return q
}

// WithLegislations adds legislations to resolve impacted substances against.
func (q *MaterialImpactedSubstancesQuery) WithLegislations(names ...string) *MaterialImpactedSubstancesQuery {
	q.impacted.add(names)
	return q
}

// WithBatchSize overrides the number of materials sent per request.
func (q *MaterialImpactedSubstancesQuery) WithBatchSize(size int) *MaterialImpactedSubstancesQuery {
	q.batch.set(size)
	return q
}

// Execute runs the query against the connection.
func (q *MaterialImpactedSubstancesQuery) Execute(ctx context.Context, conn *remote.Connection) (*results.ImpactedSubstancesResult, error) {
	if err := q.batch.validate(); err != nil {
		return nil, err
	}
	if err := q.materials.validate(); err != nil {
		return nil, err
	}
	if err := q.impacted.validate(); err != nil {
		return nil, err
	}
	refs, err := q.materials.references()
	if err != nil {
		return nil, err
	}

	result := results.NewImpactedSubstancesResult()
	for _, chunk := range batches(refs, q.batch.size) {
		req := &remote.MaterialImpactedSubstancesRequest{
			DatabaseKey:      conn.DBKey,
			Materials:        chunk,
			LegislationNames: q.impacted.legislations,
			Config:           conn.Config,
		}
		resp, err := conn.Client.MaterialImpactedSubstances(ctx, req)
		if err != nil {
			return nil, &RemoteCallError{Op: "material impacted substances", Err: err}
		}
		result.AddItems(resp.Materials)
	}
	return result, nil
}
