package maec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewCapability(t *testing.T) {
	capability := NewCapability("data-theft")
	require.Equal(t, "data-theft", capability.Name)
	require.Empty(t, capability.RefinedCapabilities)
}

func TestCapabilityBuilder(t *testing.T) {
	capability, err := NewCapabilityBuilder().
		Name("command-and-control").
		Description("Receives tasking from a remote operator").
		AddRefinedCapability(NewCapability("receive-data-from-c2-server")).
		AddBehaviorRef(GenerateID(KindBehavior)).
		AddReference(NewExternalReference("mitre-attack")).
		Build()
	require.NoError(t, err)

	require.Equal(t, "command-and-control", capability.Name)
	require.Len(t, capability.RefinedCapabilities, 1)
	require.Len(t, capability.BehaviorRefs, 1)
}

func TestCapabilityBuilder_WrongKindBehaviorRef(t *testing.T) {
	_, err := NewCapabilityBuilder().
		Name("persistence").
		AddBehaviorRef(GenerateID(KindMalwareAction)).
		Build()

	var invalid *InvalidReferenceError
	require.ErrorAs(t, err, &invalid)
	require.Equal(t, KindBehavior, invalid.WantKind)
}

func TestCapabilityBuilder_MissingName(t *testing.T) {
	_, err := NewCapabilityBuilder().Description("no name").Build()

	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, "name", missing.Field)
}
