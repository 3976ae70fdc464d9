package remote

import "context"

// MockClient is a mock implementation of Client for testing. Each call is
// recorded; responses come from the per-operation function if set, otherwise
// the mock echoes the requested references back with FlagForAll attached to
// every requested indicator.
type MockClient struct {
	// Err can be set to make all methods return an error.
	Err error
	// FlagForAll is the flag echoed for every indicator when no function
	// overrides the response.
	FlagForAll string

	MaterialComplianceFn              func(*MaterialComplianceRequest) (*MaterialComplianceResponse, error)
	MaterialImpactedSubstancesFn      func(*MaterialImpactedSubstancesRequest) (*MaterialImpactedSubstancesResponse, error)
	PartComplianceFn                  func(*PartComplianceRequest) (*PartComplianceResponse, error)
	PartImpactedSubstancesFn          func(*PartImpactedSubstancesRequest) (*PartImpactedSubstancesResponse, error)
	SpecificationComplianceFn         func(*SpecificationComplianceRequest) (*SpecificationComplianceResponse, error)
	SpecificationImpactedSubstancesFn func(*SpecificationImpactedSubstancesRequest) (*SpecificationImpactedSubstancesResponse, error)
	SubstanceComplianceFn             func(*SubstanceComplianceRequest) (*SubstanceComplianceResponse, error)
	BomComplianceFn                   func(*BomComplianceRequest) (*BomComplianceResponse, error)
	BomImpactedSubstancesFn           func(*BomImpactedSubstancesRequest) (*BomImpactedSubstancesResponse, error)

	// Recorded requests, in call order.
	MaterialComplianceRequests              []*MaterialComplianceRequest
	MaterialImpactedSubstancesRequests      []*MaterialImpactedSubstancesRequest
	PartComplianceRequests                  []*PartComplianceRequest
	PartImpactedSubstancesRequests          []*PartImpactedSubstancesRequest
	SpecificationComplianceRequests         []*SpecificationComplianceRequest
	SpecificationImpactedSubstancesRequests []*SpecificationImpactedSubstancesRequest
	SubstanceComplianceRequests             []*SubstanceComplianceRequest
	BomComplianceRequests                   []*BomComplianceRequest
	BomImpactedSubstancesRequests           []*BomImpactedSubstancesRequest
}

// NewMockClient creates a MockClient whose echoed indicator flags default to
// RohsCompliant.
func NewMockClient() *MockClient {
	return &MockClient{FlagForAll: "RohsCompliant"}
}

func (m *MockClient) echoIndicators(defs []IndicatorDefinition) []IndicatorResult {
	results := make([]IndicatorResult, len(defs))
	for i, def := range defs {
		results[i] = IndicatorResult{Name: def.Name, Flag: m.FlagForAll}
	}
	return results
}

func (m *MockClient) MaterialCompliance(ctx context.Context, req *MaterialComplianceRequest) (*MaterialComplianceResponse, error) {
	m.MaterialComplianceRequests = append(m.MaterialComplianceRequests, req)
	if m.Err != nil {
		return nil, m.Err
	}
	if m.MaterialComplianceFn != nil {
		return m.MaterialComplianceFn(req)
	}
	resp := &MaterialComplianceResponse{}
	for _, ref := range req.Materials {
		resp.Materials = append(resp.Materials, MaterialComplianceItem{
			ReferenceType:  string(ref.Type),
			ReferenceValue: ref.Value,
			Indicators:     m.echoIndicators(req.Indicators),
		})
	}
	return resp, nil
}

func (m *MockClient) MaterialImpactedSubstances(ctx context.Context, req *MaterialImpactedSubstancesRequest) (*MaterialImpactedSubstancesResponse, error) {
	m.MaterialImpactedSubstancesRequests = append(m.MaterialImpactedSubstancesRequests, req)
	if m.Err != nil {
		return nil, m.Err
	}
	if m.MaterialImpactedSubstancesFn != nil {
		return m.MaterialImpactedSubstancesFn(req)
	}
	resp := &MaterialImpactedSubstancesResponse{}
	for _, ref := range req.Materials {
		resp.Materials = append(resp.Materials, ImpactedSubstancesItem{
			ReferenceType:  string(ref.Type),
			ReferenceValue: ref.Value,
			Legislations:   emptyLegislations(req.LegislationNames),
		})
	}
	return resp, nil
}

func (m *MockClient) PartCompliance(ctx context.Context, req *PartComplianceRequest) (*PartComplianceResponse, error) {
	m.PartComplianceRequests = append(m.PartComplianceRequests, req)
	if m.Err != nil {
		return nil, m.Err
	}
	if m.PartComplianceFn != nil {
		return m.PartComplianceFn(req)
	}
	resp := &PartComplianceResponse{}
	for _, ref := range req.Parts {
		resp.Parts = append(resp.Parts, PartComplianceItem{
			ReferenceType:  string(ref.Type),
			ReferenceValue: ref.Value,
			Indicators:     m.echoIndicators(req.Indicators),
		})
	}
	return resp, nil
}

func (m *MockClient) PartImpactedSubstances(ctx context.Context, req *PartImpactedSubstancesRequest) (*PartImpactedSubstancesResponse, error) {
	m.PartImpactedSubstancesRequests = append(m.PartImpactedSubstancesRequests, req)
	if m.Err != nil {
		return nil, m.Err
	}
	if m.PartImpactedSubstancesFn != nil {
		return m.PartImpactedSubstancesFn(req)
	}
	resp := &PartImpactedSubstancesResponse{}
	for _, ref := range req.Parts {
		resp.Parts = append(resp.Parts, ImpactedSubstancesItem{
			ReferenceType:  string(ref.Type),
			ReferenceValue: ref.Value,
			Legislations:   emptyLegislations(req.LegislationNames),
		})
	}
	return resp, nil
}

func (m *MockClient) SpecificationCompliance(ctx context.Context, req *SpecificationComplianceRequest) (*SpecificationComplianceResponse, error) {
	m.SpecificationComplianceRequests = append(m.SpecificationComplianceRequests, req)
	if m.Err != nil {
		return nil, m.Err
	}
	if m.SpecificationComplianceFn != nil {
		return m.SpecificationComplianceFn(req)
	}
	resp := &SpecificationComplianceResponse{}
	for _, ref := range req.Specifications {
		resp.Specifications = append(resp.Specifications, SpecificationComplianceItem{
			ReferenceType:  string(ref.Type),
			ReferenceValue: ref.Value,
			Indicators:     m.echoIndicators(req.Indicators),
		})
	}
	return resp, nil
}

func (m *MockClient) SpecificationImpactedSubstances(ctx context.Context, req *SpecificationImpactedSubstancesRequest) (*SpecificationImpactedSubstancesResponse, error) {
	m.SpecificationImpactedSubstancesRequests = append(m.SpecificationImpactedSubstancesRequests, req)
	if m.Err != nil {
		return nil, m.Err
	}
	if m.SpecificationImpactedSubstancesFn != nil {
		return m.SpecificationImpactedSubstancesFn(req)
	}
	resp := &SpecificationImpactedSubstancesResponse{}
	for _, ref := range req.Specifications {
		resp.Specifications = append(resp.Specifications, ImpactedSubstancesItem{
			ReferenceType:  string(ref.Type),
			ReferenceValue: ref.Value,
			Legislations:   emptyLegislations(req.LegislationNames),
		})
	}
	return resp, nil
}

func (m *MockClient) SubstanceCompliance(ctx context.Context, req *SubstanceComplianceRequest) (*SubstanceComplianceResponse, error) {
	m.SubstanceComplianceRequests = append(m.SubstanceComplianceRequests, req)
	if m.Err != nil {
		return nil, m.Err
	}
	if m.SubstanceComplianceFn != nil {
		return m.SubstanceComplianceFn(req)
	}
	resp := &SubstanceComplianceResponse{}
	for _, ref := range req.Substances {
		resp.Substances = append(resp.Substances, SubstanceComplianceItem{
			ReferenceType:  string(ref.Type),
			ReferenceValue: ref.Value,
			Indicators:     m.echoIndicators(req.Indicators),
		})
	}
	return resp, nil
}

func (m *MockClient) BomCompliance(ctx context.Context, req *BomComplianceRequest) (*BomComplianceResponse, error) {
	m.BomComplianceRequests = append(m.BomComplianceRequests, req)
	if m.Err != nil {
		return nil, m.Err
	}
	if m.BomComplianceFn != nil {
		return m.BomComplianceFn(req)
	}
	return &BomComplianceResponse{
		Parts: []PartComplianceItem{{
			ReferenceType:  "MiRecordHistoryIdentity",
			ReferenceValue: "1",
			Indicators:     m.echoIndicators(req.Indicators),
		}},
	}, nil
}

func (m *MockClient) BomImpactedSubstances(ctx context.Context, req *BomImpactedSubstancesRequest) (*BomImpactedSubstancesResponse, error) {
	m.BomImpactedSubstancesRequests = append(m.BomImpactedSubstancesRequests, req)
	if m.Err != nil {
		return nil, m.Err
	}
	if m.BomImpactedSubstancesFn != nil {
		return m.BomImpactedSubstancesFn(req)
	}
	return &BomImpactedSubstancesResponse{
		Legislations: emptyLegislations(req.LegislationNames),
	}, nil
}

func emptyLegislations(names []string) []LegislationResult {
	results := make([]LegislationResult, len(names))
	for i, name := range names {
		results[i] = LegislationResult{LegislationName: name}
	}
	return results
}
