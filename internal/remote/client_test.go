package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilupskalvis/bomcheck/internal/models"
)

func TestHTTPClient_MaterialCompliance(t *testing.T) {
	var gotPath, gotUser, gotPass string
	var gotReq MaterialComplianceRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUser, gotPass, _ = r.BasicAuth()
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		json.NewEncoder(w).Encode(MaterialComplianceResponse{
			Materials: []MaterialComplianceItem{{
				ReferenceType:  "MaterialId",
				ReferenceValue: "steel-1",
				Indicators:     []IndicatorResult{{Name: "RoHS", Flag: "RohsCompliant"}},
			}},
		})
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, "user", "secret", 0)
	resp, err := client.MaterialCompliance(context.Background(), &MaterialComplianceRequest{
		DatabaseKey: "MI_Restricted_Substances",
		Materials:   []models.Reference{{Type: models.MaterialId, Value: "steel-1"}},
		Indicators:  []IndicatorDefinition{{Name: "RoHS", Type: "Rohs"}},
	})
	require.NoError(t, err)

	assert.Equal(t, "/BomAnalytics/v1.svc/compliance/materials", gotPath)
	assert.Equal(t, "user", gotUser)
	assert.Equal(t, "secret", gotPass)
	assert.Equal(t, "MI_Restricted_Substances", gotReq.DatabaseKey)

	require.Len(t, resp.Materials, 1)
	assert.Equal(t, "RohsCompliant", resp.Materials[0].Indicators[0].Flag)
}

func TestHTTPClient_ImpactedSubstancesPath(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode(PartImpactedSubstancesResponse{})
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, "", "", 0)
	_, err := client.PartImpactedSubstances(context.Background(), &PartImpactedSubstancesRequest{
		DatabaseKey:      "MI_Restricted_Substances",
		Parts:            []models.Reference{{Type: models.PartNumber, Value: "PN-1"}},
		LegislationNames: []string{"REACH"},
	})
	require.NoError(t, err)
	assert.Equal(t, "/BomAnalytics/v1.svc/impactedsubstances/parts", gotPath)
}

func TestHTTPClient_ErrorDecoding(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid_request", Message: "unknown database key"})
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, "", "", 0)
	_, err := client.BomCompliance(context.Background(), &BomComplianceRequest{BomXML1711: "<PartsEco/>"})

	var remoteErr *RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, http.StatusBadRequest, remoteErr.Status)
	assert.Equal(t, "invalid_request", remoteErr.Code)
	assert.Equal(t, "unknown database key", remoteErr.Message)
}

func TestHTTPClient_ErrorWithoutBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, "", "", 0)
	_, err := client.SubstanceCompliance(context.Background(), &SubstanceComplianceRequest{})

	var remoteErr *RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, http.StatusServiceUnavailable, remoteErr.Status)
	assert.Equal(t, "unknown", remoteErr.Code)
}

func TestMockClient_EchoesRequestedReferences(t *testing.T) {
	mock := NewMockClient()

	resp, err := mock.SubstanceCompliance(context.Background(), &SubstanceComplianceRequest{
		Substances: []SubstanceReference{
			{Reference: models.Reference{Type: models.CasNumber, Value: "7439-92-1"}, PercentageAmount: 100},
		},
		Indicators: []IndicatorDefinition{{Name: "RoHS"}},
	})
	require.NoError(t, err)

	require.Len(t, resp.Substances, 1)
	assert.Equal(t, "7439-92-1", resp.Substances[0].ReferenceValue)
	assert.Equal(t, "RohsCompliant", resp.Substances[0].Indicators[0].Flag)
	assert.Len(t, mock.SubstanceComplianceRequests, 1)
}
