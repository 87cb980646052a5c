package maec

import "github.com/craftedsignal/maec/vocab"

// MalwareInstance characterizes a single malware binary or sample, tied to
// the observable objects (files, network traffic) that embody it.
type MalwareInstance struct {
	ObjectHeader
	InstanceObjectRefs []string
	Name               *Name
	Aliases            []Name
	Labels             []vocab.MalwareLabel
	Description        string
	FieldData          *FieldData
	Capabilities       []Capability
}

func (*MalwareInstance) packageObject() {}

// Validate checks the kind tag and identifier invariants.
func (m *MalwareInstance) Validate() error {
	return m.validateKind(KindMalwareInstance)
}

type malwareInstanceWire struct {
	InstanceObjectRefs []string             `json:"instance_object_refs"`
	Name               *Name                `json:"name,omitempty"`
	Aliases            []Name               `json:"aliases,omitempty"`
	Labels             []vocab.MalwareLabel `json:"labels,omitempty"`
	Description        string               `json:"description,omitempty"`
	FieldData          *FieldData           `json:"field_data,omitempty"`
	Capabilities       []Capability         `json:"capabilities,omitempty"`
}

func (m *MalwareInstance) MarshalJSON() ([]byte, error) {
	return marshalFlat(&m.ObjectHeader, malwareInstanceWire{
		InstanceObjectRefs: m.InstanceObjectRefs,
		Name:               m.Name,
		Aliases:            m.Aliases,
		Labels:             m.Labels,
		Description:        m.Description,
		FieldData:          m.FieldData,
		Capabilities:       m.Capabilities,
	})
}

func (m *MalwareInstance) UnmarshalJSON(data []byte) error {
	var w malwareInstanceWire
	if err := unmarshalFlat(data, &m.ObjectHeader, &w); err != nil {
		return err
	}
	m.InstanceObjectRefs = w.InstanceObjectRefs
	m.Name = w.Name
	m.Aliases = w.Aliases
	m.Labels = w.Labels
	m.Description = w.Description
	m.FieldData = w.FieldData
	m.Capabilities = w.Capabilities
	return nil
}

// MalwareInstanceBuilder assembles a MalwareInstance. Build fails unless
// at least one instance object reference was set and the finished object
// validates.
type MalwareInstanceBuilder struct {
	id           string
	createdByRef string
	instance     MalwareInstance
}

// NewMalwareInstanceBuilder returns an empty MalwareInstance builder.
func NewMalwareInstanceBuilder() *MalwareInstanceBuilder {
	return &MalwareInstanceBuilder{}
}

// ID overrides the generated identifier, validated at Build time.
func (b *MalwareInstanceBuilder) ID(id string) *MalwareInstanceBuilder {
	b.id = id
	return b
}

// CreatedByRef sets the identity reference recorded in the header.
func (b *MalwareInstanceBuilder) CreatedByRef(ref string) *MalwareInstanceBuilder {
	b.createdByRef = ref
	return b
}

// AddInstanceObjectRef appends a reference to an observable object that
// embodies this instance. At least one is required.
func (b *MalwareInstanceBuilder) AddInstanceObjectRef(ref string) *MalwareInstanceBuilder {
	b.instance.InstanceObjectRefs = append(b.instance.InstanceObjectRefs, ref)
	return b
}

// Name sets the instance name.
func (b *MalwareInstanceBuilder) Name(name Name) *MalwareInstanceBuilder {
	b.instance.Name = &name
	return b
}

// AddAlias appends an alternate name for the instance.
func (b *MalwareInstanceBuilder) AddAlias(alias Name) *MalwareInstanceBuilder {
	b.instance.Aliases = append(b.instance.Aliases, alias)
	return b
}

// AddLabel appends a malware label.
func (b *MalwareInstanceBuilder) AddLabel(label vocab.MalwareLabel) *MalwareInstanceBuilder {
	b.instance.Labels = append(b.instance.Labels, label)
	return b
}

// Description sets the free-text description.
func (b *MalwareInstanceBuilder) Description(desc string) *MalwareInstanceBuilder {
	b.instance.Description = desc
	return b
}

// FieldData attaches delivery and sighting data.
func (b *MalwareInstanceBuilder) FieldData(data FieldData) *MalwareInstanceBuilder {
	b.instance.FieldData = &data
	return b
}

// AddCapability appends a capability exhibited by this instance.
func (b *MalwareInstanceBuilder) AddCapability(c Capability) *MalwareInstanceBuilder {
	b.instance.Capabilities = append(b.instance.Capabilities, c)
	return b
}

// Build validates and returns the finished MalwareInstance.
func (b *MalwareInstanceBuilder) Build() (*MalwareInstance, error) {
	if len(b.instance.InstanceObjectRefs) == 0 {
		return nil, &MissingFieldError{Field: "instance_object_refs"}
	}
	instance := b.instance
	instance.ObjectHeader = NewHeader(KindMalwareInstance, b.createdByRef)
	if b.id != "" {
		instance.ID = b.id
	}
	if err := instance.Validate(); err != nil {
		return nil, err
	}
	return &instance, nil
}
