package maec

import "time"

// ObjectHeader is the identity and versioning block shared by every
// top-level MAEC object. Kind, ID, and Created are set at construction and
// must not change afterwards; NewVersion is the only sanctioned mutation
// and touches Modified alone.
//
// Custom holds extension properties. On the wire they are flattened into
// the object's own namespace; a custom key that collides with a declared
// field name is undefined behavior, and the codec here lets the declared
// field win.
type ObjectHeader struct {
	Kind          string
	ID            string
	SchemaVersion string
	Created       time.Time
	Modified      time.Time
	CreatedByRef  string
	Custom        map[string]any
}

// NewHeader stamps a header for a fresh object: a generated id, schema
// version "5.0", and created == modified == now.
func NewHeader(kind, createdByRef string) ObjectHeader {
	return NewHeaderWith(kind, createdByRef, time.Now, GenerateID)
}

// NewHeaderWith is NewHeader with an explicit clock and id source, for
// deterministic construction in tests.
func NewHeaderWith(kind, createdByRef string, now Clock, ids IDSource) ObjectHeader {
	t := now().UTC()
	return ObjectHeader{
		Kind:          kind,
		ID:            ids(kind),
		SchemaVersion: SchemaVersion,
		Created:       t,
		Modified:      t,
		CreatedByRef:  createdByRef,
	}
}

// CommonHeader returns h itself; embedding ObjectHeader in an object type
// makes that type satisfy Object.
func (h *ObjectHeader) CommonHeader() *ObjectHeader { return h }

// NewVersion marks the object as a new version of itself: same id, same
// created time, updated modified time.
func (h *ObjectHeader) NewVersion() {
	h.versionWith(time.Now)
}

func (h *ObjectHeader) versionWith(now Clock) {
	h.Modified = now().UTC()
}

// SetCustom records an extension property on the header.
func (h *ObjectHeader) SetCustom(key string, value any) {
	if h.Custom == nil {
		h.Custom = make(map[string]any)
	}
	h.Custom[key] = value
}

// validateKind checks the two invariants every header-bearing object
// shares: the kind tag matches the object type, and the id is
// structurally valid.
func (h *ObjectHeader) validateKind(want string) error {
	if h.Kind != want {
		return validationErrorf("type must be %q, got %q", want, h.Kind)
	}
	if !ValidID(h.ID) {
		return &InvalidIDError{ID: h.ID}
	}
	return nil
}
