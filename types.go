package maec

import (
	"time"

	"github.com/craftedsignal/maec/vocab"
)

// Name captures the name of a malware family or instance, with optional
// provenance: which source assigned it and with what confidence.
type Name struct {
	Value      string             `json:"value"`
	Source     *ExternalReference `json:"source,omitempty"`
	Confidence string             `json:"confidence,omitempty"`
}

// NewName creates a Name from a bare string, with no source and no
// confidence.
func NewName(value string) Name {
	return Name{Value: value}
}

// WithSource attaches the assigning source to a copy of the name.
func (n Name) WithSource(source ExternalReference) Name {
	n.Source = &source
	return n
}

// WithConfidence attaches a confidence level to a copy of the name.
func (n Name) WithConfidence(confidence vocab.Confidence) Name {
	n.Confidence = string(confidence)
	return n
}

// FieldData captures field observations about a malware family or
// instance: how it is delivered and when it was seen. At least one of the
// three fields must be present; the builder rejects an empty value.
type FieldData struct {
	DeliveryVectors []string   `json:"delivery_vectors,omitempty"`
	FirstSeen       *time.Time `json:"first_seen,omitempty"`
	LastSeen        *time.Time `json:"last_seen,omitempty"`
}

// FieldDataBuilder accumulates FieldData fields for validated
// construction.
type FieldDataBuilder struct {
	data FieldData
}

// NewFieldDataBuilder returns an empty FieldData builder.
func NewFieldDataBuilder() *FieldDataBuilder {
	return &FieldDataBuilder{}
}

// DeliveryVectors replaces the delivery vector list.
func (b *FieldDataBuilder) DeliveryVectors(vectors ...string) *FieldDataBuilder {
	b.data.DeliveryVectors = vectors
	return b
}

// AddDeliveryVector appends one delivery vector.
func (b *FieldDataBuilder) AddDeliveryVector(vector vocab.DeliveryVector) *FieldDataBuilder {
	b.data.DeliveryVectors = append(b.data.DeliveryVectors, string(vector))
	return b
}

// FirstSeen sets the earliest observation time.
func (b *FieldDataBuilder) FirstSeen(t time.Time) *FieldDataBuilder {
	t = t.UTC()
	b.data.FirstSeen = &t
	return b
}

// LastSeen sets the latest observation time.
func (b *FieldDataBuilder) LastSeen(t time.Time) *FieldDataBuilder {
	t = t.UTC()
	b.data.LastSeen = &t
	return b
}

// Build returns the FieldData, or a ValidationError if all three fields
// are absent.
func (b *FieldDataBuilder) Build() (*FieldData, error) {
	if b.data.DeliveryVectors == nil && b.data.FirstSeen == nil && b.data.LastSeen == nil {
		return nil, &ValidationError{
			Msg: "field data must have at least one of: delivery_vectors, first_seen, last_seen",
		}
	}
	data := b.data
	return &data, nil
}
