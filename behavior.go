package maec

import (
	"time"

	"github.com/craftedsignal/maec/vocab"
)

// Behavior captures the purpose behind a snippet of malware code as
// executed by an instance: keylogging, virtual machine detection,
// installing a backdoor, and so on.
type Behavior struct {
	ObjectHeader
	Name          vocab.Behavior
	Description   string
	Timestamp     *time.Time
	Attributes    map[string]any
	ActionRefs    []string
	TechniqueRefs []ExternalReference
}

func (*Behavior) packageObject() {}

// Validate checks the kind tag and identifier invariants.
func (b *Behavior) Validate() error {
	return b.validateKind(KindBehavior)
}

type behaviorWire struct {
	Name          vocab.Behavior      `json:"name"`
	Description   string              `json:"description,omitempty"`
	Timestamp     *time.Time          `json:"timestamp,omitempty"`
	Attributes    map[string]any      `json:"attributes,omitempty"`
	ActionRefs    []string            `json:"action_refs,omitempty"`
	TechniqueRefs []ExternalReference `json:"technique_refs,omitempty"`
}

// MarshalJSON flattens the header, body, and extension properties into a
// single JSON object.
func (b *Behavior) MarshalJSON() ([]byte, error) {
	return marshalFlat(&b.ObjectHeader, behaviorWire{
		Name:          b.Name,
		Description:   b.Description,
		Timestamp:     b.Timestamp,
		Attributes:    b.Attributes,
		ActionRefs:    b.ActionRefs,
		TechniqueRefs: b.TechniqueRefs,
	})
}

// UnmarshalJSON is the inverse of MarshalJSON; unrecognized keys land in
// the header's Custom map.
func (b *Behavior) UnmarshalJSON(data []byte) error {
	var w behaviorWire
	if err := unmarshalFlat(data, &b.ObjectHeader, &w); err != nil {
		return err
	}
	b.Name = w.Name
	b.Description = w.Description
	b.Timestamp = w.Timestamp
	b.Attributes = w.Attributes
	b.ActionRefs = w.ActionRefs
	b.TechniqueRefs = w.TechniqueRefs
	return nil
}

// BehaviorBuilder assembles a Behavior. Build fails unless a name was
// set and the finished object validates.
type BehaviorBuilder struct {
	id           string
	createdByRef string
	behavior     Behavior
}

// NewBehaviorBuilder returns an empty Behavior builder.
func NewBehaviorBuilder() *BehaviorBuilder {
	return &BehaviorBuilder{}
}

// ID overrides the generated identifier. The supplied id is still
// validated at Build time.
func (b *BehaviorBuilder) ID(id string) *BehaviorBuilder {
	b.id = id
	return b
}

// CreatedByRef sets the identity reference recorded in the header.
func (b *BehaviorBuilder) CreatedByRef(ref string) *BehaviorBuilder {
	b.createdByRef = ref
	return b
}

// Name sets the behavior vocabulary name. Required.
func (b *BehaviorBuilder) Name(name vocab.Behavior) *BehaviorBuilder {
	b.behavior.Name = name
	return b
}

// Description sets the free-text description.
func (b *BehaviorBuilder) Description(desc string) *BehaviorBuilder {
	b.behavior.Description = desc
	return b
}

// Timestamp records when the behavior was observed.
func (b *BehaviorBuilder) Timestamp(t time.Time) *BehaviorBuilder {
	t = t.UTC()
	b.behavior.Timestamp = &t
	return b
}

// Attribute records one behavior attribute.
func (b *BehaviorBuilder) Attribute(key string, value any) *BehaviorBuilder {
	if b.behavior.Attributes == nil {
		b.behavior.Attributes = make(map[string]any)
	}
	b.behavior.Attributes[key] = value
	return b
}

// AddActionRef appends a reference to an action implementing this
// behavior.
func (b *BehaviorBuilder) AddActionRef(ref string) *BehaviorBuilder {
	b.behavior.ActionRefs = append(b.behavior.ActionRefs, ref)
	return b
}

// AddTechniqueRef appends an external technique reference.
func (b *BehaviorBuilder) AddTechniqueRef(ref ExternalReference) *BehaviorBuilder {
	b.behavior.TechniqueRefs = append(b.behavior.TechniqueRefs, ref)
	return b
}

// Build validates and returns the finished Behavior.
func (b *BehaviorBuilder) Build() (*Behavior, error) {
	if b.behavior.Name == "" {
		return nil, &MissingFieldError{Field: "name"}
	}
	for _, ref := range b.behavior.ActionRefs {
		if !RefMatchesKind(ref, KindMalwareAction) {
			return nil, &InvalidReferenceError{Ref: ref, WantKind: KindMalwareAction}
		}
	}
	behavior := b.behavior
	behavior.ObjectHeader = NewHeader(KindBehavior, b.createdByRef)
	if b.id != "" {
		behavior.ID = b.id
	}
	if err := behavior.Validate(); err != nil {
		return nil, err
	}
	return &behavior, nil
}
