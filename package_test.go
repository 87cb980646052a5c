package maec

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/craftedsignal/maec/vocab"
)

func TestPackageBuilder_Minimal(t *testing.T) {
	pkg, err := NewPackageBuilder().Build()
	require.NoError(t, err)

	require.Equal(t, KindPackage, pkg.Kind)
	require.Equal(t, SchemaVersion, pkg.SchemaVersion)
	require.True(t, RefMatchesKind(pkg.ID, KindPackage))
	require.Empty(t, pkg.Objects)
}

func TestPackageBuilder_MalformedID(t *testing.T) {
	_, err := NewPackageBuilder().ID("package-notauuid").Build()

	var invalid *InvalidIDError
	require.ErrorAs(t, err, &invalid)
	require.Equal(t, "package-notauuid", invalid.ID)
}

func TestPackageBuilder_WrongSchemaVersion(t *testing.T) {
	_, err := NewPackageBuilder().SchemaVersion("4.1").Build()

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestPackage_FilteredViews(t *testing.T) {
	behavior, err := NewBehaviorBuilder().Name(vocab.BehaviorEncryptFiles).Build()
	require.NoError(t, err)
	family, err := NewMalwareFamilyBuilder().Name(NewName("TestMalware")).Build()
	require.NoError(t, err)
	instance, err := NewMalwareInstanceBuilder().AddInstanceObjectRef("0").Build()
	require.NoError(t, err)
	collection, err := NewCollectionBuilder().Name("run-1").Build()
	require.NoError(t, err)
	action, err := NewMalwareActionBuilder().Name(vocab.ActionCreateFile).Build()
	require.NoError(t, err)

	pkg, err := NewPackageBuilder().
		AddBehavior(behavior).
		AddMalwareFamily(family).
		AddMalwareInstance(instance).
		AddCollection(collection).
		AddMalwareAction(action).
		Build()
	require.NoError(t, err)

	require.Len(t, pkg.Objects, 5)
	require.Len(t, pkg.Behaviors(), 1)
	require.Len(t, pkg.MalwareFamilies(), 1)
	require.Len(t, pkg.MalwareInstances(), 1)
	require.Len(t, pkg.Collections(), 1)
	require.Len(t, pkg.MalwareActions(), 1)

	// Views share the package's objects rather than copying them.
	require.Same(t, behavior, pkg.Behaviors()[0])
	require.Same(t, family, pkg.MalwareFamilies()[0])
}

// The scenario from the format documentation: a behavior and a family in
// one package, encoded and decoded back without loss.
func TestPackage_RoundTrip(t *testing.T) {
	behavior, err := NewBehaviorBuilder().
		Name(vocab.BehaviorCheckForPayload).
		Description("Test behavior").
		Build()
	require.NoError(t, err)

	family, err := NewMalwareFamilyBuilder().
		Name(NewName("TestMalware")).
		Description("Test malware family").
		Build()
	require.NoError(t, err)

	pkg, err := NewPackageBuilder().
		AddMalwareFamily(family).
		AddBehavior(behavior).
		Build()
	require.NoError(t, err)
	require.Len(t, pkg.Behaviors(), 1)
	require.Len(t, pkg.MalwareFamilies(), 1)

	encoded, err := pkg.Encode()
	require.NoError(t, err)

	decoded, err := DecodePackage(encoded)
	require.NoError(t, err)

	require.Equal(t, pkg.ID, decoded.ID)
	require.Equal(t, pkg.SchemaVersion, decoded.SchemaVersion)
	require.True(t, pkg.Created.Equal(decoded.Created))
	require.Len(t, decoded.Objects, 2)

	// Package order is preserved: family first, then behavior.
	require.IsType(t, &MalwareFamily{}, decoded.Objects[0])
	require.IsType(t, &Behavior{}, decoded.Objects[1])
	require.Equal(t, family.Name, decoded.MalwareFamilies()[0].Name)
	require.Equal(t, behavior.Name, decoded.Behaviors()[0].Name)
	require.Equal(t, behavior.Description, decoded.Behaviors()[0].Description)

	reencoded, err := decoded.Encode()
	require.NoError(t, err)
	require.JSONEq(t, string(encoded), string(reencoded))
}

func TestPackage_ObservablesAndRelationships(t *testing.T) {
	behavior, err := NewBehaviorBuilder().Name(vocab.BehaviorInstallBackdoor).Build()
	require.NoError(t, err)
	family, err := NewMalwareFamilyBuilder().Name(NewName("TestMalware")).Build()
	require.NoError(t, err)
	rel, err := NewRelationship(behavior.ID, "exhibited-by", family.ID)
	require.NoError(t, err)

	pkg, err := NewPackageBuilder().
		AddBehavior(behavior).
		AddMalwareFamily(family).
		AddRelationship(*rel).
		ObservableObject("0", map[string]any{"type": "file", "name": "dropper.exe"}).
		Custom("x_feed", "craftedsignal").
		Build()
	require.NoError(t, err)

	encoded, err := pkg.Encode()
	require.NoError(t, err)

	// Custom fields are flattened to the top level of the document.
	var doc map[string]any
	require.NoError(t, json.Unmarshal(encoded, &doc))
	require.Equal(t, "craftedsignal", doc["x_feed"])

	decoded, err := DecodePackage(encoded)
	require.NoError(t, err)
	require.Len(t, decoded.Relationships, 1)
	require.Equal(t, rel.SourceRef, decoded.Relationships[0].SourceRef)
	require.Equal(t, rel.TargetRef, decoded.Relationships[0].TargetRef)
	require.Contains(t, decoded.ObservableObjects, "0")
	require.Equal(t, "craftedsignal", decoded.Custom["x_feed"])

	reencoded, err := decoded.Encode()
	require.NoError(t, err)
	require.JSONEq(t, string(encoded), string(reencoded))
}

func TestDecodePackage_WrongSchemaVersion(t *testing.T) {
	doc := `{"type":"package","id":"` + GenerateID(KindPackage) + `","schema_version":"4.1","maec_objects":[]}`

	_, err := DecodePackage([]byte(doc))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

// An element with an unrecognized kind string is resolved structurally:
// a shape carrying a string name decodes as a Behavior, the first
// candidate in the resolution order that it satisfies.
func TestResolver_UnknownKindFallsBackToShape(t *testing.T) {
	id := GenerateID(KindPackage)
	doc := `{
		"type": "package",
		"id": "` + id + `",
		"schema_version": "5.0",
		"maec_objects": [
			{"type": "x-future-kind", "id": "x-future-kind--550e8400-e29b-41d4-a716-446655440000", "name": "check-for-payload"}
		]
	}`

	pkg, err := DecodePackage([]byte(doc))
	require.NoError(t, err)
	require.Len(t, pkg.Objects, 1)
	require.IsType(t, &Behavior{}, pkg.Objects[0])
}

// A header-only shape satisfies Collection, the second candidate.
func TestResolver_HeaderOnlyShapeIsCollection(t *testing.T) {
	doc := `{
		"type": "package",
		"id": "` + GenerateID(KindPackage) + `",
		"schema_version": "5.0",
		"maec_objects": [
			{"type": "x-future-kind", "id": "x-future-kind--550e8400-e29b-41d4-a716-446655440000"}
		]
	}`

	pkg, err := DecodePackage([]byte(doc))
	require.NoError(t, err)
	require.IsType(t, &Collection{}, pkg.Objects[0])
}

func TestResolver_NoCandidateMatches(t *testing.T) {
	doc := `{
		"type": "package",
		"id": "` + GenerateID(KindPackage) + `",
		"schema_version": "5.0",
		"maec_objects": [
			{"name": 42}
		]
	}`

	_, err := DecodePackage([]byte(doc))
	require.ErrorIs(t, err, ErrNoMatchingKind)
}

// A recognized kind string is authoritative: decoding does not fall back
// to another shape when the object fails its own kind's invariants.
func TestResolver_KnownKindIsStrict(t *testing.T) {
	doc := `{
		"type": "package",
		"id": "` + GenerateID(KindPackage) + `",
		"schema_version": "5.0",
		"maec_objects": [
			{"type": "behavior", "id": "behavior--550e8400-e29b-41d4-a716-446655440000"}
		]
	}`

	_, err := DecodePackage([]byte(doc))
	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, "name", missing.Field)
}
