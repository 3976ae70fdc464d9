package query

import (
	"context"

	"github.com/kilupskalvis/bomcheck/internal/models"
	"github.com/kilupskalvis/bomcheck/internal/remote"
	"github.com/kilupskalvis/bomcheck/internal/results"
)

// BomComplianceQuery evaluates a single XML BoM document against indicators.
// The document is sent whole; BoM queries never batch.
type BomComplianceQuery struct {
	bom        BomItem
	compliance complianceParams
}

// NewBomComplianceQuery creates an empty BoM compliance query.
func NewBomComplianceQuery() *BomComplianceQuery {
	return &BomComplianceQuery{}
}

// WithBom sets the BoM document. A later call replaces an earlier one; a
// query carries exactly one document.
func (q *BomComplianceQuery) WithBom(xml string) *BomComplianceQuery {
	q.bom = BomItem{XML: xml}
	return q
}

// WithIndicators adds indicators to evaluate the BoM against.
func (q *BomComplianceQuery) WithIndicators(indicators ...models.Indicator) *BomComplianceQuery {
	q.compliance.add(indicators)
	return q
}

// Execute runs the query against the connection in a single request. The
// result items are the root parts of the document.
func (q *BomComplianceQuery) Execute(ctx context.Context, conn *remote.Connection) (*results.ComplianceResult, error) {
	if q.bom.XML == "" {
		return nil, &MissingQueryParameterError{Parameter: "BoM"}
	}
	if err := q.compliance.validate(); err != nil {
		return nil, err
	}

	req := &remote.BomComplianceRequest{
		DatabaseKey: conn.DBKey,
		BomXML1711:  q.bom.XML,
		Indicators:  q.compliance.definitions(),
		Config:      conn.Config,
	}
	resp, err := conn.Client.BomCompliance(ctx, req)
	if err != nil {
		return nil, &RemoteCallError{Op: "bom compliance", Err: err}
	}

	result := results.NewComplianceResult(q.compliance.indicators)
	result.AddPartItems(resp.Parts)
	return result, nil
}

// BomImpactedSubstancesQuery resolves the substances impacting a single XML
// BoM document under legislations.
type BomImpactedSubstancesQuery struct {
	bom      BomItem
	impacted impactedParams
}

// NewBomImpactedSubstancesQuery creates an empty BoM impacted substances
// query.
func NewBomImpactedSubstancesQuery() *BomImpactedSubstancesQuery {
	return &BomImpactedSubstancesQuery{}
}

// WithBom sets the BoM document. A later call replaces an earlier one.
func (q *BomImpactedSubstancesQuery) WithBom(xml string) *BomImpactedSubstancesQuery {
	q.bom = BomItem{XML: xml}
	return q
}

// WithLegislations adds legislations to resolve impacted substances against.
func (q *BomImpactedSubstancesQuery) WithLegislations(names ...string) *BomImpactedSubstancesQuery {
	q.impacted.add(names)
	return q
}

// Execute runs the query against the connection in a single request. The
// result holds one item scoped to the whole document.
func (q *BomImpactedSubstancesQuery) Execute(ctx context.Context, conn *remote.Connection) (*results.ImpactedSubstancesResult, error) {
	if q.bom.XML == "" {
		return nil, &MissingQueryParameterError{Parameter: "BoM"}
	}
	if err := q.impacted.validate(); err != nil {
		return nil, err
	}

	req := &remote.BomImpactedSubstancesRequest{
		DatabaseKey:      conn.DBKey,
		BomXML1711:       q.bom.XML,
		LegislationNames: q.impacted.legislations,
		Config:           conn.Config,
	}
	resp, err := conn.Client.BomImpactedSubstances(ctx, req)
	if err != nil {
		return nil, &RemoteCallError{Op: "bom impacted substances", Err: err}
	}

	result := results.NewImpactedSubstancesResult()
	result.AddBomLegislations(resp.Legislations)
	return result, nil
}
