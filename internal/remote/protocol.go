// Package remote defines the protocol types and client for the BoM Analytics
// service.
package remote

import "github.com/kilupskalvis/bomcheck/internal/models"

// Request and response payloads exchanged with the BoM Analytics service.
// Field names follow the service's JSON contract.

// QueryConfig carries optional table-name overrides for databases that use
// non-standard table names.
type QueryConfig struct {
	MaterialUniverseTableName string `json:"material_universe_table_name,omitempty"`
	InHouseMaterialsTableName string `json:"in_house_materials_table_name,omitempty"`
	SpecificationsTableName   string `json:"specifications_table_name,omitempty"`
	ProductsAndPartsTableName string `json:"products_and_parts_table_name,omitempty"`
	SubstancesTableName       string `json:"substances_table_name,omitempty"`
	CoatingsTableName         string `json:"coatings_table_name,omitempty"`
}

// IndicatorDefinition is the request form of an indicator.
type IndicatorDefinition struct {
	Name                       string   `json:"name"`
	LegislationNames           []string `json:"legislation_names"`
	DefaultThresholdPercentage float64  `json:"default_threshold_percentage"`
	Type                       string   `json:"type"`
}

// IndicatorDefinitionFor converts a models.Indicator to its wire form.
func IndicatorDefinitionFor(ind models.Indicator) IndicatorDefinition {
	return IndicatorDefinition{
		Name:                       ind.Name,
		LegislationNames:           ind.LegislationNames,
		DefaultThresholdPercentage: ind.DefaultThresholdPercentage,
		Type:                       string(ind.Kind),
	}
}

// IndicatorResult is an indicator name and the flag the server evaluated for
// one result item.
type IndicatorResult struct {
	Name string `json:"name"`
	Flag string `json:"flag"`
}

// SubstanceReference is a substance record reference with the amount it is
// present at in its parent item.
type SubstanceReference struct {
	models.Reference
	PercentageAmount float64 `json:"percentage_amount"`
}

// ErrorResponse is the body returned by the service on failure.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// --- Compliance ---

type MaterialComplianceRequest struct {
	DatabaseKey string                `json:"database_key"`
	Materials   []models.Reference    `json:"materials"`
	Indicators  []IndicatorDefinition `json:"indicators"`
	Config      *QueryConfig          `json:"config,omitempty"`
}

type MaterialComplianceResponse struct {
	Materials []MaterialComplianceItem `json:"materials"`
}

type MaterialComplianceItem struct {
	ReferenceType  string                    `json:"reference_type"`
	ReferenceValue string                    `json:"reference_value"`
	Indicators     []IndicatorResult         `json:"indicators"`
	Substances     []SubstanceComplianceItem `json:"substances"`
}

type PartComplianceRequest struct {
	DatabaseKey string                `json:"database_key"`
	Parts       []models.Reference    `json:"parts"`
	Indicators  []IndicatorDefinition `json:"indicators"`
	Config      *QueryConfig          `json:"config,omitempty"`
}

type PartComplianceResponse struct {
	Parts []PartComplianceItem `json:"parts"`
}

// PartComplianceItem nests the full BoM structure below a part: child parts,
// materials, specifications and substances.
type PartComplianceItem struct {
	ReferenceType  string                        `json:"reference_type"`
	ReferenceValue string                        `json:"reference_value"`
	Indicators     []IndicatorResult             `json:"indicators"`
	Parts          []PartComplianceItem          `json:"parts"`
	Materials      []MaterialComplianceItem      `json:"materials"`
	Specifications []SpecificationComplianceItem `json:"specifications"`
	Substances     []SubstanceComplianceItem     `json:"substances"`
}

type SpecificationComplianceRequest struct {
	DatabaseKey    string                `json:"database_key"`
	Specifications []models.Reference    `json:"specifications"`
	Indicators     []IndicatorDefinition `json:"indicators"`
	Config         *QueryConfig          `json:"config,omitempty"`
}

type SpecificationComplianceResponse struct {
	Specifications []SpecificationComplianceItem `json:"specifications"`
}

type SpecificationComplianceItem struct {
	ReferenceType  string                    `json:"reference_type"`
	ReferenceValue string                    `json:"reference_value"`
	Indicators     []IndicatorResult         `json:"indicators"`
	Substances     []SubstanceComplianceItem `json:"substances"`
}

type SubstanceComplianceRequest struct {
	DatabaseKey string                `json:"database_key"`
	Substances  []SubstanceReference  `json:"substances"`
	Indicators  []IndicatorDefinition `json:"indicators"`
	Config      *QueryConfig          `json:"config,omitempty"`
}

type SubstanceComplianceResponse struct {
	Substances []SubstanceComplianceItem `json:"substances"`
}

type SubstanceComplianceItem struct {
	ReferenceType  string            `json:"reference_type"`
	ReferenceValue string            `json:"reference_value"`
	Indicators     []IndicatorResult `json:"indicators"`
}

type BomComplianceRequest struct {
	DatabaseKey string                `json:"database_key"`
	BomXML1711  string                `json:"bom_xml1711"`
	Indicators  []IndicatorDefinition `json:"indicators"`
	Config      *QueryConfig          `json:"config,omitempty"`
}

type BomComplianceResponse struct {
	Parts []PartComplianceItem `json:"parts"`
}

// --- Impacted substances ---

type MaterialImpactedSubstancesRequest struct {
	DatabaseKey      string             `json:"database_key"`
	Materials        []models.Reference `json:"materials"`
	LegislationNames []string           `json:"legislation_names"`
	Config           *QueryConfig       `json:"config,omitempty"`
}

type MaterialImpactedSubstancesResponse struct {
	Materials []ImpactedSubstancesItem `json:"materials"`
}

type PartImpactedSubstancesRequest struct {
	DatabaseKey      string             `json:"database_key"`
	Parts            []models.Reference `json:"parts"`
	LegislationNames []string           `json:"legislation_names"`
	Config           *QueryConfig       `json:"config,omitempty"`
}

type PartImpactedSubstancesResponse struct {
	Parts []ImpactedSubstancesItem `json:"parts"`
}

type SpecificationImpactedSubstancesRequest struct {
	DatabaseKey      string             `json:"database_key"`
	Specifications   []models.Reference `json:"specifications"`
	LegislationNames []string           `json:"legislation_names"`
	Config           *QueryConfig       `json:"config,omitempty"`
}

type SpecificationImpactedSubstancesResponse struct {
	Specifications []ImpactedSubstancesItem `json:"specifications"`
}

type BomImpactedSubstancesRequest struct {
	DatabaseKey      string       `json:"database_key"`
	BomXML1711       string       `json:"bom_xml1711"`
	LegislationNames []string     `json:"legislation_names"`
	Config           *QueryConfig `json:"config,omitempty"`
}

type BomImpactedSubstancesResponse struct {
	Legislations []LegislationResult `json:"legislations"`
}

// ImpactedSubstancesItem is one queried item with its per-legislation
// substance lists.
type ImpactedSubstancesItem struct {
	ReferenceType  string              `json:"reference_type"`
	ReferenceValue string              `json:"reference_value"`
	Legislations   []LegislationResult `json:"legislations"`
}

type LegislationResult struct {
	LegislationName    string              `json:"legislation_name"`
	ImpactedSubstances []ImpactedSubstance `json:"impacted_substances"`
}

type ImpactedSubstance struct {
	SubstanceName                 string   `json:"substance_name"`
	CasNumber                     string   `json:"cas_number"`
	EcNumber                      string   `json:"ec_number"`
	MaxPercentageAmountInMaterial *float64 `json:"max_percentage_amount_in_material"`
	LegislationThreshold          *float64 `json:"legislation_threshold"`
}
