package maec

// Capability describes something a malware instance is able to do, such
// as persistence or data exfiltration. Unlike the other object types a
// Capability is a pure value: it has no header, no identity, and lives
// embedded inside a MalwareInstance.
type Capability struct {
	Name                string              `json:"name"`
	Description         string              `json:"description,omitempty"`
	RefinedCapabilities []Capability        `json:"refined_capabilities,omitempty"`
	Attributes          map[string]any      `json:"attributes,omitempty"`
	BehaviorRefs        []string            `json:"behavior_refs,omitempty"`
	References          []ExternalReference `json:"references,omitempty"`
}

// NewCapability creates a Capability with just a name.
func NewCapability(name string) Capability {
	return Capability{Name: name}
}

// CapabilityBuilder assembles a Capability. Build fails unless a name was
// set.
type CapabilityBuilder struct {
	capability Capability
}

// NewCapabilityBuilder returns an empty Capability builder.
func NewCapabilityBuilder() *CapabilityBuilder {
	return &CapabilityBuilder{}
}

// Name sets the capability name. Required.
func (b *CapabilityBuilder) Name(name string) *CapabilityBuilder {
	b.capability.Name = name
	return b
}

// Description sets the free-text description.
func (b *CapabilityBuilder) Description(desc string) *CapabilityBuilder {
	b.capability.Description = desc
	return b
}

// AddRefinedCapability appends a more specific sub-capability.
func (b *CapabilityBuilder) AddRefinedCapability(c Capability) *CapabilityBuilder {
	b.capability.RefinedCapabilities = append(b.capability.RefinedCapabilities, c)
	return b
}

// Attribute records one capability attribute.
func (b *CapabilityBuilder) Attribute(key string, value any) *CapabilityBuilder {
	if b.capability.Attributes == nil {
		b.capability.Attributes = make(map[string]any)
	}
	b.capability.Attributes[key] = value
	return b
}

// AddBehaviorRef appends a reference to a behavior implementing this
// capability.
func (b *CapabilityBuilder) AddBehaviorRef(ref string) *CapabilityBuilder {
	b.capability.BehaviorRefs = append(b.capability.BehaviorRefs, ref)
	return b
}

// AddReference appends an external reference.
func (b *CapabilityBuilder) AddReference(ref ExternalReference) *CapabilityBuilder {
	b.capability.References = append(b.capability.References, ref)
	return b
}

// Build returns the finished Capability, or a MissingFieldError if the
// name was never set.
func (b *CapabilityBuilder) Build() (*Capability, error) {
	if b.capability.Name == "" {
		return nil, &MissingFieldError{Field: "name"}
	}
	for _, ref := range b.capability.BehaviorRefs {
		if !RefMatchesKind(ref, KindBehavior) {
			return nil, &InvalidReferenceError{Ref: ref, WantKind: KindBehavior}
		}
	}
	capability := b.capability
	return &capability, nil
}
