package maec

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/craftedsignal/maec/vocab"
)

func TestBehaviorBuilder(t *testing.T) {
	behavior, err := NewBehaviorBuilder().
		Name(vocab.BehaviorCheckForPayload).
		Description("Test behavior").
		Build()
	require.NoError(t, err)

	require.Equal(t, KindBehavior, behavior.Kind)
	require.True(t, RefMatchesKind(behavior.ID, KindBehavior))
	require.Equal(t, vocab.BehaviorCheckForPayload, behavior.Name)
	require.Equal(t, "Test behavior", behavior.Description)
	require.NoError(t, behavior.Validate())
}

func TestBehaviorBuilder_MissingName(t *testing.T) {
	_, err := NewBehaviorBuilder().Description("no name").Build()

	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, "name", missing.Field)
}

func TestBehaviorBuilder_BadID(t *testing.T) {
	_, err := NewBehaviorBuilder().
		Name(vocab.BehaviorInstallBackdoor).
		ID("behavior-notauuid").
		Build()

	var invalid *InvalidIDError
	require.ErrorAs(t, err, &invalid)
	require.Equal(t, "behavior-notauuid", invalid.ID)
}

func TestBehaviorBuilder_WrongKindActionRef(t *testing.T) {
	ref := GenerateID(KindBehavior)
	_, err := NewBehaviorBuilder().
		Name(vocab.BehaviorAntiSandbox).
		AddActionRef(ref).
		Build()

	var invalid *InvalidReferenceError
	require.ErrorAs(t, err, &invalid)
	require.Equal(t, ref, invalid.Ref)
	require.Equal(t, KindMalwareAction, invalid.WantKind)
}

func TestBehavior_JSONFlatten(t *testing.T) {
	behavior, err := NewBehaviorBuilder().
		Name(vocab.BehaviorAntiDebugging).
		AddActionRef(GenerateID(KindMalwareAction)).
		AddTechniqueRef(AttackTechnique("T1622", "Debugger Evasion")).
		Build()
	require.NoError(t, err)
	behavior.SetCustom("x_sample_count", 3)

	data, err := json.Marshal(behavior)
	require.NoError(t, err)

	// Header, body, and custom fields share one flat namespace.
	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Equal(t, "behavior", doc["type"])
	require.Equal(t, behavior.ID, doc["id"])
	require.Equal(t, "anti-debugging", doc["name"])
	require.Equal(t, float64(3), doc["x_sample_count"])
	require.NotContains(t, doc, "description", "absent optionals must be omitted")

	var decoded Behavior
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, behavior.Name, decoded.Name)
	require.Equal(t, behavior.ActionRefs, decoded.ActionRefs)
	require.Equal(t, behavior.TechniqueRefs, decoded.TechniqueRefs)
	require.Equal(t, float64(3), decoded.Custom["x_sample_count"])
	require.True(t, behavior.Created.Equal(decoded.Created))
}

func TestBehavior_DecodeDefaultsSchemaVersion(t *testing.T) {
	id := GenerateID(KindBehavior)
	doc := `{"type":"behavior","id":"` + id + `","name":"encrypt-files"}`

	var decoded Behavior
	require.NoError(t, json.Unmarshal([]byte(doc), &decoded))
	require.Equal(t, SchemaVersion, decoded.SchemaVersion)
	require.False(t, decoded.Created.IsZero())
}
