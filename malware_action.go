package maec

import (
	"time"

	"github.com/craftedsignal/maec/vocab"
)

// MalwareAction records a discrete, observable action taken by a malware
// instance against a system: creating a file, opening a registry key,
// sending a DNS query.
type MalwareAction struct {
	ObjectHeader
	Name             vocab.MalwareAction
	Description      string
	Timestamp        *time.Time
	IsSuccessful     *bool
	APICall          string
	InputObjectRefs  []string
	OutputObjectRefs []string
}

func (*MalwareAction) packageObject() {}

// Validate checks the kind tag and identifier invariants.
func (a *MalwareAction) Validate() error {
	return a.validateKind(KindMalwareAction)
}

type malwareActionWire struct {
	Name             vocab.MalwareAction `json:"name"`
	Description      string              `json:"description,omitempty"`
	Timestamp        *time.Time          `json:"timestamp,omitempty"`
	IsSuccessful     *bool               `json:"is_successful,omitempty"`
	APICall          string              `json:"api_call,omitempty"`
	InputObjectRefs  []string            `json:"input_object_refs,omitempty"`
	OutputObjectRefs []string            `json:"output_object_refs,omitempty"`
}

func (a *MalwareAction) MarshalJSON() ([]byte, error) {
	return marshalFlat(&a.ObjectHeader, malwareActionWire{
		Name:             a.Name,
		Description:      a.Description,
		Timestamp:        a.Timestamp,
		IsSuccessful:     a.IsSuccessful,
		APICall:          a.APICall,
		InputObjectRefs:  a.InputObjectRefs,
		OutputObjectRefs: a.OutputObjectRefs,
	})
}

func (a *MalwareAction) UnmarshalJSON(data []byte) error {
	var w malwareActionWire
	if err := unmarshalFlat(data, &a.ObjectHeader, &w); err != nil {
		return err
	}
	a.Name = w.Name
	a.Description = w.Description
	a.Timestamp = w.Timestamp
	a.IsSuccessful = w.IsSuccessful
	a.APICall = w.APICall
	a.InputObjectRefs = w.InputObjectRefs
	a.OutputObjectRefs = w.OutputObjectRefs
	return nil
}

// MalwareActionBuilder assembles a MalwareAction. Build fails unless a
// name was set and the finished object validates.
type MalwareActionBuilder struct {
	id           string
	createdByRef string
	action       MalwareAction
}

// NewMalwareActionBuilder returns an empty MalwareAction builder.
func NewMalwareActionBuilder() *MalwareActionBuilder {
	return &MalwareActionBuilder{}
}

// ID overrides the generated identifier, validated at Build time.
func (b *MalwareActionBuilder) ID(id string) *MalwareActionBuilder {
	b.id = id
	return b
}

// CreatedByRef sets the identity reference recorded in the header.
func (b *MalwareActionBuilder) CreatedByRef(ref string) *MalwareActionBuilder {
	b.createdByRef = ref
	return b
}

// Name sets the action vocabulary name. Required.
func (b *MalwareActionBuilder) Name(name vocab.MalwareAction) *MalwareActionBuilder {
	b.action.Name = name
	return b
}

// Description sets the free-text description.
func (b *MalwareActionBuilder) Description(desc string) *MalwareActionBuilder {
	b.action.Description = desc
	return b
}

// Timestamp records when the action was observed.
func (b *MalwareActionBuilder) Timestamp(t time.Time) *MalwareActionBuilder {
	t = t.UTC()
	b.action.Timestamp = &t
	return b
}

// Successful records whether the action completed successfully.
func (b *MalwareActionBuilder) Successful(ok bool) *MalwareActionBuilder {
	b.action.IsSuccessful = &ok
	return b
}

// APICall names the API call that carried out the action.
func (b *MalwareActionBuilder) APICall(call string) *MalwareActionBuilder {
	b.action.APICall = call
	return b
}

// AddInputObjectRef appends a reference to an observable the action
// consumed.
func (b *MalwareActionBuilder) AddInputObjectRef(ref string) *MalwareActionBuilder {
	b.action.InputObjectRefs = append(b.action.InputObjectRefs, ref)
	return b
}

// AddOutputObjectRef appends a reference to an observable the action
// produced.
func (b *MalwareActionBuilder) AddOutputObjectRef(ref string) *MalwareActionBuilder {
	b.action.OutputObjectRefs = append(b.action.OutputObjectRefs, ref)
	return b
}

// Build validates and returns the finished MalwareAction.
func (b *MalwareActionBuilder) Build() (*MalwareAction, error) {
	if b.action.Name == "" {
		return nil, &MissingFieldError{Field: "name"}
	}
	action := b.action
	action.ObjectHeader = NewHeader(KindMalwareAction, b.createdByRef)
	if b.id != "" {
		action.ID = b.id
	}
	if err := action.Validate(); err != nil {
		return nil, err
	}
	return &action, nil
}
