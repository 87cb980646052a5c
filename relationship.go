package maec

// Relationship connects two MAEC objects by their identifiers. The
// source and target must be structurally valid ids, but their kind
// prefixes are deliberately not cross-checked against any particular
// kind: a relationship may connect any two object types, and whether the
// referenced objects exist at all is the consumer's concern.
type Relationship struct {
	ObjectHeader
	SourceRef        string
	TargetRef        string
	RelationshipType string
	Description      string
}

// NewRelationship builds a relationship between two existing object ids.
func NewRelationship(sourceRef, relationshipType, targetRef string) (*Relationship, error) {
	return NewRelationshipBuilder().
		SourceRef(sourceRef).
		TargetRef(targetRef).
		RelationshipType(relationshipType).
		Build()
}

// Validate checks the kind tag, the object's own identifier, and the
// structural validity of both endpoint references.
func (r *Relationship) Validate() error {
	if err := r.validateKind(KindRelationship); err != nil {
		return err
	}
	if !ValidID(r.SourceRef) {
		return &InvalidIDError{ID: r.SourceRef}
	}
	if !ValidID(r.TargetRef) {
		return &InvalidIDError{ID: r.TargetRef}
	}
	return nil
}

type relationshipWire struct {
	SourceRef        string `json:"source_ref"`
	TargetRef        string `json:"target_ref"`
	RelationshipType string `json:"relationship_type"`
	Description      string `json:"description,omitempty"`
}

func (r *Relationship) MarshalJSON() ([]byte, error) {
	return marshalFlat(&r.ObjectHeader, relationshipWire{
		SourceRef:        r.SourceRef,
		TargetRef:        r.TargetRef,
		RelationshipType: r.RelationshipType,
		Description:      r.Description,
	})
}

func (r *Relationship) UnmarshalJSON(data []byte) error {
	var w relationshipWire
	if err := unmarshalFlat(data, &r.ObjectHeader, &w); err != nil {
		return err
	}
	r.SourceRef = w.SourceRef
	r.TargetRef = w.TargetRef
	r.RelationshipType = w.RelationshipType
	r.Description = w.Description
	return nil
}

// RelationshipBuilder assembles a Relationship. Build fails on the first
// missing field in the order source_ref, target_ref, relationship_type.
type RelationshipBuilder struct {
	id           string
	createdByRef string
	rel          Relationship
}

// NewRelationshipBuilder returns an empty Relationship builder.
func NewRelationshipBuilder() *RelationshipBuilder {
	return &RelationshipBuilder{}
}

// ID overrides the generated identifier, validated at Build time.
func (b *RelationshipBuilder) ID(id string) *RelationshipBuilder {
	b.id = id
	return b
}

// CreatedByRef sets the identity reference recorded in the header.
func (b *RelationshipBuilder) CreatedByRef(ref string) *RelationshipBuilder {
	b.createdByRef = ref
	return b
}

// SourceRef sets the id of the source object. Required.
func (b *RelationshipBuilder) SourceRef(ref string) *RelationshipBuilder {
	b.rel.SourceRef = ref
	return b
}

// TargetRef sets the id of the target object. Required.
func (b *RelationshipBuilder) TargetRef(ref string) *RelationshipBuilder {
	b.rel.TargetRef = ref
	return b
}

// RelationshipType names how the source relates to the target, for
// example "derived-from" or "variant-of". Required.
func (b *RelationshipBuilder) RelationshipType(relType string) *RelationshipBuilder {
	b.rel.RelationshipType = relType
	return b
}

// Description sets the free-text description.
func (b *RelationshipBuilder) Description(desc string) *RelationshipBuilder {
	b.rel.Description = desc
	return b
}

// Build validates and returns the finished Relationship.
func (b *RelationshipBuilder) Build() (*Relationship, error) {
	switch {
	case b.rel.SourceRef == "":
		return nil, &MissingFieldError{Field: "source_ref"}
	case b.rel.TargetRef == "":
		return nil, &MissingFieldError{Field: "target_ref"}
	case b.rel.RelationshipType == "":
		return nil, &MissingFieldError{Field: "relationship_type"}
	}
	rel := b.rel
	rel.ObjectHeader = NewHeader(KindRelationship, b.createdByRef)
	if b.id != "" {
		rel.ID = b.id
	}
	if err := rel.Validate(); err != nil {
		return nil, err
	}
	return &rel, nil
}
