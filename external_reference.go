package maec

import "fmt"

// ExternalReference links a MAEC object to an outside resource such as an
// ATT&CK technique, a CVE, or a research report. Pure value type; only
// SourceName is required.
type ExternalReference struct {
	SourceName  string `json:"source_name"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
	ExternalID  string `json:"external_id,omitempty"`
}

// NewExternalReference creates a reference with just a source name.
func NewExternalReference(sourceName string) ExternalReference {
	return ExternalReference{SourceName: sourceName}
}

// AttackTechnique builds a reference to a MITRE ATT&CK technique.
func AttackTechnique(techniqueID, name string) ExternalReference {
	return ExternalReference{
		SourceName:  "mitre-attack",
		Description: name,
		URL:         fmt.Sprintf("https://attack.mitre.org/techniques/%s", techniqueID),
		ExternalID:  techniqueID,
	}
}
