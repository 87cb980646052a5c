package maec

// Collection groups related MAEC objects, for example every object
// recovered from one analysis run.
type Collection struct {
	ObjectHeader
	Name        string
	Description string
	Association string
}

func (*Collection) packageObject() {}

// Validate checks the kind tag and identifier invariants.
func (c *Collection) Validate() error {
	return c.validateKind(KindCollection)
}

type collectionWire struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Association string `json:"association_type,omitempty"`
}

func (c *Collection) MarshalJSON() ([]byte, error) {
	return marshalFlat(&c.ObjectHeader, collectionWire{
		Name:        c.Name,
		Description: c.Description,
		Association: c.Association,
	})
}

func (c *Collection) UnmarshalJSON(data []byte) error {
	var w collectionWire
	if err := unmarshalFlat(data, &c.ObjectHeader, &w); err != nil {
		return err
	}
	c.Name = w.Name
	c.Description = w.Description
	c.Association = w.Association
	return nil
}

// CollectionBuilder assembles a Collection. No field beyond the header is
// required.
type CollectionBuilder struct {
	id           string
	createdByRef string
	collection   Collection
}

// NewCollectionBuilder returns an empty Collection builder.
func NewCollectionBuilder() *CollectionBuilder {
	return &CollectionBuilder{}
}

// ID overrides the generated identifier, validated at Build time.
func (b *CollectionBuilder) ID(id string) *CollectionBuilder {
	b.id = id
	return b
}

// CreatedByRef sets the identity reference recorded in the header.
func (b *CollectionBuilder) CreatedByRef(ref string) *CollectionBuilder {
	b.createdByRef = ref
	return b
}

// Name sets the collection name.
func (b *CollectionBuilder) Name(name string) *CollectionBuilder {
	b.collection.Name = name
	return b
}

// Description sets the free-text description.
func (b *CollectionBuilder) Description(desc string) *CollectionBuilder {
	b.collection.Description = desc
	return b
}

// Association records why the members belong together.
func (b *CollectionBuilder) Association(assoc string) *CollectionBuilder {
	b.collection.Association = assoc
	return b
}

// Build validates and returns the finished Collection.
func (b *CollectionBuilder) Build() (*Collection, error) {
	collection := b.collection
	collection.ObjectHeader = NewHeader(KindCollection, b.createdByRef)
	if b.id != "" {
		collection.ID = b.id
	}
	if err := collection.Validate(); err != nil {
		return nil, err
	}
	return &collection, nil
}
