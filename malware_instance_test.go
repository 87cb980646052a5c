package maec

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/craftedsignal/maec/vocab"
)

func TestMalwareInstanceBuilder(t *testing.T) {
	instance, err := NewMalwareInstanceBuilder().
		AddInstanceObjectRef("0").
		Name(NewName("WannaCry sample")).
		AddLabel(vocab.LabelRansomware).
		AddCapability(NewCapability("persistence")).
		Build()
	require.NoError(t, err)

	require.Equal(t, KindMalwareInstance, instance.Kind)
	require.Equal(t, []string{"0"}, instance.InstanceObjectRefs)
	require.Len(t, instance.Capabilities, 1)
}

func TestMalwareInstanceBuilder_MissingRefs(t *testing.T) {
	_, err := NewMalwareInstanceBuilder().Name(NewName("orphan")).Build()

	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, "instance_object_refs", missing.Field)
}

func TestMalwareInstance_JSONRoundTrip(t *testing.T) {
	capability, err := NewCapabilityBuilder().
		Name("anti-detection").
		AddRefinedCapability(NewCapability("anti-sandbox-detection")).
		AddBehaviorRef(GenerateID(KindBehavior)).
		Build()
	require.NoError(t, err)

	instance, err := NewMalwareInstanceBuilder().
		AddInstanceObjectRef("0").
		AddInstanceObjectRef("1").
		AddCapability(*capability).
		Build()
	require.NoError(t, err)

	encoded, err := json.Marshal(instance)
	require.NoError(t, err)

	var decoded MalwareInstance
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	require.Equal(t, instance.InstanceObjectRefs, decoded.InstanceObjectRefs)
	require.Equal(t, instance.Capabilities, decoded.Capabilities)

	reencoded, err := json.Marshal(&decoded)
	require.NoError(t, err)
	require.JSONEq(t, string(encoded), string(reencoded))
}
