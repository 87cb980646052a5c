package maec

import (
	"encoding/json"
	"fmt"
	"io"
)

// Package is the top-level MAEC aggregate: a set of heterogeneous MAEC
// objects, optional STIX observable objects keyed by local identifier,
// and relationships between objects. A Package owns its contents
// outright; contained objects never point back at it.
type Package struct {
	ObjectHeader
	Objects           []PackageObject
	ObservableObjects map[string]any
	Relationships     []Relationship
}

// Validate enforces the package invariants strictly: the kind tag must be
// "package", the schema version must be exactly "5.0", and the id must be
// structurally valid.
func (p *Package) Validate() error {
	if p.Kind != KindPackage {
		return validationErrorf("type must be %q, got %q", KindPackage, p.Kind)
	}
	if p.SchemaVersion != SchemaVersion {
		return validationErrorf("schema_version must be %q, got %q", SchemaVersion, p.SchemaVersion)
	}
	if !ValidID(p.ID) {
		return &InvalidIDError{ID: p.ID}
	}
	return nil
}

// Behaviors returns the contained Behavior objects in package order. The
// returned slice shares the package's objects; it is a read-only view.
func (p *Package) Behaviors() []*Behavior {
	return filterObjects[*Behavior](p.Objects)
}

// Collections returns the contained Collection objects in package order.
func (p *Package) Collections() []*Collection {
	return filterObjects[*Collection](p.Objects)
}

// MalwareActions returns the contained MalwareAction objects in package
// order.
func (p *Package) MalwareActions() []*MalwareAction {
	return filterObjects[*MalwareAction](p.Objects)
}

// MalwareFamilies returns the contained MalwareFamily objects in package
// order.
func (p *Package) MalwareFamilies() []*MalwareFamily {
	return filterObjects[*MalwareFamily](p.Objects)
}

// MalwareInstances returns the contained MalwareInstance objects in
// package order.
func (p *Package) MalwareInstances() []*MalwareInstance {
	return filterObjects[*MalwareInstance](p.Objects)
}

func filterObjects[T PackageObject](objects []PackageObject) []T {
	var out []T
	for _, obj := range objects {
		if v, ok := obj.(T); ok {
			out = append(out, v)
		}
	}
	return out
}

type packageWire struct {
	Objects           []json.RawMessage `json:"maec_objects"`
	ObservableObjects map[string]any    `json:"observable_objects,omitempty"`
	Relationships     []Relationship    `json:"relationships,omitempty"`
}

func (p *Package) MarshalJSON() ([]byte, error) {
	objects := make([]json.RawMessage, 0, len(p.Objects))
	for _, obj := range p.Objects {
		raw, err := json.Marshal(obj)
		if err != nil {
			return nil, err
		}
		objects = append(objects, raw)
	}
	return marshalFlat(&p.ObjectHeader, packageWire{
		Objects:           objects,
		ObservableObjects: p.ObservableObjects,
		Relationships:     p.Relationships,
	})
}

func (p *Package) UnmarshalJSON(data []byte) error {
	var w packageWire
	if err := unmarshalFlat(data, &p.ObjectHeader, &w); err != nil {
		return err
	}
	p.Objects = nil
	for i, raw := range w.Objects {
		obj, err := decodePackageObject(raw)
		if err != nil {
			return fmt.Errorf("maec_objects[%d]: %w", i, err)
		}
		p.Objects = append(p.Objects, obj)
	}
	p.ObservableObjects = w.ObservableObjects
	p.Relationships = w.Relationships
	return nil
}

// decodePackageObject resolves one element of maec_objects to a concrete
// object type. The wire format carries no discriminator beyond the
// header's own "type" field, so resolution dispatches on that field when
// it names a known kind. For unrecognized or absent kind strings it falls
// back to structural matching, trying each candidate in a fixed order —
// Behavior, Collection, MalwareAction, MalwareFamily, MalwareInstance —
// and accepting the first whose required fields are present and whose
// present fields decode cleanly.
func decodePackageObject(raw json.RawMessage) (PackageObject, error) {
	var probe struct {
		Kind string `json:"type"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, err
	}

	switch probe.Kind {
	case KindBehavior:
		var b Behavior
		if err := json.Unmarshal(raw, &b); err != nil {
			return nil, err
		}
		if b.Name == "" {
			return nil, &MissingFieldError{Field: "name"}
		}
		return &b, b.Validate()
	case KindCollection:
		var c Collection
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, err
		}
		return &c, c.Validate()
	case KindMalwareAction:
		var a MalwareAction
		if err := json.Unmarshal(raw, &a); err != nil {
			return nil, err
		}
		if a.Name == "" {
			return nil, &MissingFieldError{Field: "name"}
		}
		return &a, a.Validate()
	case KindMalwareFamily:
		var f MalwareFamily
		if err := json.Unmarshal(raw, &f); err != nil {
			return nil, err
		}
		if f.Name.Value == "" {
			return nil, &MissingFieldError{Field: "name"}
		}
		return &f, f.Validate()
	case KindMalwareInstance:
		var m MalwareInstance
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, err
		}
		if len(m.InstanceObjectRefs) == 0 {
			return nil, &MissingFieldError{Field: "instance_object_refs"}
		}
		return &m, m.Validate()
	}

	for _, try := range structuralOrder {
		if obj, ok := try(raw); ok {
			return obj, nil
		}
	}
	return nil, ErrNoMatchingKind
}

// structuralOrder lists the shape-only decode attempts for objects whose
// kind string is not recognized. Order is significant and deliberate: a
// shape satisfying several candidates resolves to the earliest.
var structuralOrder = []func(json.RawMessage) (PackageObject, bool){
	func(raw json.RawMessage) (PackageObject, bool) {
		var b Behavior
		if json.Unmarshal(raw, &b) == nil && b.Name != "" {
			return &b, true
		}
		return nil, false
	},
	func(raw json.RawMessage) (PackageObject, bool) {
		var c Collection
		if json.Unmarshal(raw, &c) == nil {
			return &c, true
		}
		return nil, false
	},
	func(raw json.RawMessage) (PackageObject, bool) {
		var a MalwareAction
		if json.Unmarshal(raw, &a) == nil && a.Name != "" {
			return &a, true
		}
		return nil, false
	},
	func(raw json.RawMessage) (PackageObject, bool) {
		var f MalwareFamily
		if json.Unmarshal(raw, &f) == nil && f.Name.Value != "" {
			return &f, true
		}
		return nil, false
	},
	func(raw json.RawMessage) (PackageObject, bool) {
		var m MalwareInstance
		if json.Unmarshal(raw, &m) == nil && len(m.InstanceObjectRefs) > 0 {
			return &m, true
		}
		return nil, false
	},
}

// Encode serializes the package as compact MAEC JSON.
func (p *Package) Encode() ([]byte, error) {
	return json.Marshal(p)
}

// EncodeIndent serializes the package as indented MAEC JSON.
func (p *Package) EncodeIndent() ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}

// Write encodes the package to w.
func (p *Package) Write(w io.Writer) error {
	data, err := p.Encode()
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing MAEC document: %w", err)
	}
	return nil
}

// DecodePackage parses and validates a MAEC package document.
func DecodePackage(data []byte) (*Package, error) {
	var p Package
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, &DecodeError{Err: err}
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// ReadPackage reads a MAEC package document from r.
func ReadPackage(r io.Reader) (*Package, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading MAEC document: %w", err)
	}
	return DecodePackage(data)
}

// PackageBuilder assembles a Package. Objects and relationships move into
// the built package; the builder holds the only reference until Build
// returns.
type PackageBuilder struct {
	id            string
	schemaVersion string
	createdByRef  string
	custom        map[string]any
	objects       []PackageObject
	observables   map[string]any
	relationships []Relationship
}

// NewPackageBuilder returns an empty Package builder.
func NewPackageBuilder() *PackageBuilder {
	return &PackageBuilder{}
}

// ID overrides the generated identifier, validated at Build time.
func (b *PackageBuilder) ID(id string) *PackageBuilder {
	b.id = id
	return b
}

// SchemaVersion overrides the schema version. Build rejects anything but
// "5.0".
func (b *PackageBuilder) SchemaVersion(version string) *PackageBuilder {
	b.schemaVersion = version
	return b
}

// CreatedByRef sets the identity reference recorded in the header.
func (b *PackageBuilder) CreatedByRef(ref string) *PackageBuilder {
	b.createdByRef = ref
	return b
}

// Custom records an extension property on the package header.
func (b *PackageBuilder) Custom(key string, value any) *PackageBuilder {
	if b.custom == nil {
		b.custom = make(map[string]any)
	}
	b.custom[key] = value
	return b
}

// AddObject appends any package object.
func (b *PackageBuilder) AddObject(obj PackageObject) *PackageBuilder {
	b.objects = append(b.objects, obj)
	return b
}

// AddBehavior appends a Behavior.
func (b *PackageBuilder) AddBehavior(behavior *Behavior) *PackageBuilder {
	return b.AddObject(behavior)
}

// AddCollection appends a Collection.
func (b *PackageBuilder) AddCollection(collection *Collection) *PackageBuilder {
	return b.AddObject(collection)
}

// AddMalwareAction appends a MalwareAction.
func (b *PackageBuilder) AddMalwareAction(action *MalwareAction) *PackageBuilder {
	return b.AddObject(action)
}

// AddMalwareFamily appends a MalwareFamily.
func (b *PackageBuilder) AddMalwareFamily(family *MalwareFamily) *PackageBuilder {
	return b.AddObject(family)
}

// AddMalwareInstance appends a MalwareInstance.
func (b *PackageBuilder) AddMalwareInstance(instance *MalwareInstance) *PackageBuilder {
	return b.AddObject(instance)
}

// ObservableObject records one STIX observable keyed by its local
// identifier within the package.
func (b *PackageBuilder) ObservableObject(key string, value any) *PackageBuilder {
	if b.observables == nil {
		b.observables = make(map[string]any)
	}
	b.observables[key] = value
	return b
}

// AddRelationship appends a Relationship.
func (b *PackageBuilder) AddRelationship(rel Relationship) *PackageBuilder {
	b.relationships = append(b.relationships, rel)
	return b
}

// Build validates and returns the finished Package.
func (b *PackageBuilder) Build() (*Package, error) {
	pkg := Package{
		ObjectHeader:      NewHeader(KindPackage, b.createdByRef),
		Objects:           b.objects,
		ObservableObjects: b.observables,
		Relationships:     b.relationships,
	}
	if b.id != "" {
		pkg.ID = b.id
	}
	if b.schemaVersion != "" {
		pkg.SchemaVersion = b.schemaVersion
	}
	for key, value := range b.custom {
		pkg.SetCustom(key, value)
	}
	if err := pkg.Validate(); err != nil {
		return nil, err
	}
	return &pkg, nil
}
