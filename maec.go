// Package maec implements the MAEC 5.0 malware characterization exchange
// format: typed, versioned objects (malware families, instances, behaviors,
// actions, capabilities, relationships) aggregated into a Package and
// serialized as JSON.
//
// Objects are constructed through builders that validate required fields
// and identifier structure before a value exists; a partially-built object
// is never observable. Cross-object relationships are expressed as
// identifier strings, never live references, so a Package is a plain value
// that can be encoded, decoded, and compared without any global store.
package maec

import "time"

// MediaType is the MAEC 5.0 JSON media type for HTTP Content-Type headers.
const MediaType = "application/maec+json;version=5.0"

// MediaTypeGeneric is the version-less MAEC JSON media type.
const MediaTypeGeneric = "application/maec+json"

// SchemaVersion is the MAEC specification version this package implements.
const SchemaVersion = "5.0"

// Kind strings for the top-level MAEC object types.
const (
	KindPackage         = "package"
	KindBehavior        = "behavior"
	KindCollection      = "collection"
	KindMalwareAction   = "malware-action"
	KindMalwareFamily   = "malware-family"
	KindMalwareInstance = "malware-instance"
	KindRelationship    = "relationship"
)

// Object is implemented by every MAEC type that carries an ObjectHeader.
type Object interface {
	// CommonHeader returns the shared identity and versioning block.
	CommonHeader() *ObjectHeader
}

// PackageObject is the closed union of object types that may appear in a
// Package's maec_objects sequence: Behavior, Collection, MalwareAction,
// MalwareFamily, and MalwareInstance.
type PackageObject interface {
	Object
	packageObject()
}

// Clock supplies the current time. Injected into header construction so
// tests can pin timestamps.
type Clock func() time.Time

// IDSource mints an identifier for a kind. Injected into header
// construction so tests can pin identifiers.
type IDSource func(kind string) string
