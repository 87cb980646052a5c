package vocab

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBehaviors(t *testing.T) {
	all := Behaviors()
	require.NotEmpty(t, all)
	for _, b := range all {
		require.True(t, b.Valid(), "behavior %q should be valid", b)
	}

	// The returned slice is a copy; mutating it must not leak back.
	all[0] = "mutated"
	require.True(t, Behaviors()[0].Valid())
}

func TestBehavior_Open(t *testing.T) {
	require.True(t, BehaviorCheckForPayload.Valid())
	require.False(t, Behavior("x-custom-behavior").Valid())
	require.False(t, Behavior("").Valid())
}

func TestMalwareActions(t *testing.T) {
	for _, a := range MalwareActions() {
		require.True(t, a.Valid())
	}
	require.False(t, MalwareAction("teleport").Valid())
}

func TestMalwareLabels(t *testing.T) {
	for _, l := range MalwareLabels() {
		require.True(t, l.Valid())
	}
	require.True(t, LabelRansomware.Valid())
	require.False(t, MalwareLabel("goodware").Valid())
}

func TestDeliveryVectors(t *testing.T) {
	for _, v := range DeliveryVectors() {
		require.True(t, v.Valid())
	}
	require.False(t, DeliveryVector("carrier-pigeon").Valid())
}

func TestSmallVocabularies(t *testing.T) {
	for _, v := range AnalysisTypes() {
		require.True(t, v.Valid())
	}
	for _, v := range AnalysisConclusions() {
		require.True(t, v.Valid())
	}
	for _, v := range Confidences() {
		require.True(t, v.Valid())
	}
	for _, v := range ProcessorArchitectures() {
		require.True(t, v.Valid())
	}
	for _, v := range ObfuscationMethods() {
		require.True(t, v.Valid())
	}
	for _, v := range EntityAssociations() {
		require.True(t, v.Valid())
	}
	require.False(t, AnalysisType("forensic").Valid())
	require.False(t, Confidence("certain").Valid())
}
