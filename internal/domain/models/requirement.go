package models

// Requirement is one entry of the PCI DSS requirement catalog. The catalog is
// loaded once per process and treated as immutable.
type Requirement struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	LabSource   string `json:"lab_source" yaml:"lab_source"`
	AWSService  string `json:"aws_service" yaml:"aws_service"`
}

// RequirementCatalog mirrors the on-disk layout of the requirement catalog file.
type RequirementCatalog struct {
	Requirements []Requirement `json:"requirements" yaml:"requirements"`
}
