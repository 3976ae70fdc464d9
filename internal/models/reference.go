package models

// ReferenceType identifies how a record reference is expressed on the wire.
// The values match the names used by the BoM Analytics service.
type ReferenceType string

const (
	MiRecordHistoryIdentity ReferenceType = "MiRecordHistoryIdentity"
	MiRecordGuid            ReferenceType = "MiRecordGuid"
	MiRecordHistoryGuid     ReferenceType = "MiRecordHistoryGuid"
	MaterialId              ReferenceType = "MaterialId"
	PartNumber              ReferenceType = "PartNumber"
	SpecificationId         ReferenceType = "SpecificationId"
	ChemicalName            ReferenceType = "ChemicalName"
	CasNumber               ReferenceType = "CasNumber"
	EcNumber                ReferenceType = "EcNumber"
)

// Reference is a resolved pointer to a record in the MI database. The server
// echoes references back with the discriminant it resolved the record by.
type Reference struct {
	Type  ReferenceType `json:"reference_type"`
	Value string        `json:"reference_value"`
}

// IsRecordReference returns true if the reference uses one of the generic MI
// record discriminants rather than a domain lookup key.
func (r Reference) IsRecordReference() bool {
	switch r.Type {
	case MiRecordHistoryIdentity, MiRecordGuid, MiRecordHistoryGuid:
		return true
	}
	return false
}
