package maec

import "github.com/craftedsignal/maec/vocab"

// MalwareFamily characterizes a set of malware instances that share code
// and behavior: WannaCry, Emotet, and the like.
type MalwareFamily struct {
	ObjectHeader
	Name               Name
	Aliases            []Name
	Labels             []vocab.MalwareLabel
	Description        string
	FieldData          *FieldData
	CommonStrings      []string
	CommonBehaviorRefs []string
	References         []ExternalReference
}

func (*MalwareFamily) packageObject() {}

// Validate checks the kind tag and identifier invariants.
func (f *MalwareFamily) Validate() error {
	return f.validateKind(KindMalwareFamily)
}

type malwareFamilyWire struct {
	Name               Name                 `json:"name"`
	Aliases            []Name               `json:"aliases,omitempty"`
	Labels             []vocab.MalwareLabel `json:"labels,omitempty"`
	Description        string               `json:"description,omitempty"`
	FieldData          *FieldData           `json:"field_data,omitempty"`
	CommonStrings      []string             `json:"common_strings,omitempty"`
	CommonBehaviorRefs []string             `json:"common_behavior_refs,omitempty"`
	References         []ExternalReference  `json:"references,omitempty"`
}

func (f *MalwareFamily) MarshalJSON() ([]byte, error) {
	return marshalFlat(&f.ObjectHeader, malwareFamilyWire{
		Name:               f.Name,
		Aliases:            f.Aliases,
		Labels:             f.Labels,
		Description:        f.Description,
		FieldData:          f.FieldData,
		CommonStrings:      f.CommonStrings,
		CommonBehaviorRefs: f.CommonBehaviorRefs,
		References:         f.References,
	})
}

func (f *MalwareFamily) UnmarshalJSON(data []byte) error {
	var w malwareFamilyWire
	if err := unmarshalFlat(data, &f.ObjectHeader, &w); err != nil {
		return err
	}
	f.Name = w.Name
	f.Aliases = w.Aliases
	f.Labels = w.Labels
	f.Description = w.Description
	f.FieldData = w.FieldData
	f.CommonStrings = w.CommonStrings
	f.CommonBehaviorRefs = w.CommonBehaviorRefs
	f.References = w.References
	return nil
}

// MalwareFamilyBuilder assembles a MalwareFamily. Build fails unless a
// name was set and the finished object validates.
type MalwareFamilyBuilder struct {
	id           string
	createdByRef string
	family       MalwareFamily
}

// NewMalwareFamilyBuilder returns an empty MalwareFamily builder.
func NewMalwareFamilyBuilder() *MalwareFamilyBuilder {
	return &MalwareFamilyBuilder{}
}

// ID overrides the generated identifier, validated at Build time.
func (b *MalwareFamilyBuilder) ID(id string) *MalwareFamilyBuilder {
	b.id = id
	return b
}

// CreatedByRef sets the identity reference recorded in the header.
func (b *MalwareFamilyBuilder) CreatedByRef(ref string) *MalwareFamilyBuilder {
	b.createdByRef = ref
	return b
}

// Name sets the family name. Required.
func (b *MalwareFamilyBuilder) Name(name Name) *MalwareFamilyBuilder {
	b.family.Name = name
	return b
}

// AddAlias appends an alternate name for the family.
func (b *MalwareFamilyBuilder) AddAlias(alias Name) *MalwareFamilyBuilder {
	b.family.Aliases = append(b.family.Aliases, alias)
	return b
}

// AddLabel appends a malware label.
func (b *MalwareFamilyBuilder) AddLabel(label vocab.MalwareLabel) *MalwareFamilyBuilder {
	b.family.Labels = append(b.family.Labels, label)
	return b
}

// Description sets the free-text description.
func (b *MalwareFamilyBuilder) Description(desc string) *MalwareFamilyBuilder {
	b.family.Description = desc
	return b
}

// FieldData attaches delivery and sighting data.
func (b *MalwareFamilyBuilder) FieldData(data FieldData) *MalwareFamilyBuilder {
	b.family.FieldData = &data
	return b
}

// AddCommonString appends a string found across family members.
func (b *MalwareFamilyBuilder) AddCommonString(s string) *MalwareFamilyBuilder {
	b.family.CommonStrings = append(b.family.CommonStrings, s)
	return b
}

// AddCommonBehaviorRef appends a reference to a behavior exhibited across
// family members.
func (b *MalwareFamilyBuilder) AddCommonBehaviorRef(ref string) *MalwareFamilyBuilder {
	b.family.CommonBehaviorRefs = append(b.family.CommonBehaviorRefs, ref)
	return b
}

// AddReference appends an external reference.
func (b *MalwareFamilyBuilder) AddReference(ref ExternalReference) *MalwareFamilyBuilder {
	b.family.References = append(b.family.References, ref)
	return b
}

// Build validates and returns the finished MalwareFamily.
func (b *MalwareFamilyBuilder) Build() (*MalwareFamily, error) {
	if b.family.Name.Value == "" {
		return nil, &MissingFieldError{Field: "name"}
	}
	for _, ref := range b.family.CommonBehaviorRefs {
		if !RefMatchesKind(ref, KindBehavior) {
			return nil, &InvalidReferenceError{Ref: ref, WantKind: KindBehavior}
		}
	}
	family := b.family
	family.ObjectHeader = NewHeader(KindMalwareFamily, b.createdByRef)
	if b.id != "" {
		family.ID = b.id
	}
	if err := family.Validate(); err != nil {
		return nil, err
	}
	return &family, nil
}
