package maec

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/craftedsignal/maec/vocab"
)

func TestNewName(t *testing.T) {
	name := NewName("WannaCry")
	require.Equal(t, "WannaCry", name.Value)
	require.Nil(t, name.Source)
	require.Empty(t, name.Confidence)
}

func TestName_WithSourceAndConfidence(t *testing.T) {
	source := NewExternalReference("av-vendor")
	name := NewName("Emotet").WithSource(source).WithConfidence(vocab.ConfidenceHigh)

	require.Equal(t, "Emotet", name.Value)
	require.Equal(t, "av-vendor", name.Source.SourceName)
	require.Equal(t, "high", name.Confidence)
}

func TestFieldDataBuilder_Empty(t *testing.T) {
	_, err := NewFieldDataBuilder().Build()

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestFieldDataBuilder_DeliveryVectorOnly(t *testing.T) {
	data, err := NewFieldDataBuilder().
		AddDeliveryVector(vocab.DeliveryEmailAttachment).
		Build()
	require.NoError(t, err)
	require.Equal(t, []string{"email-attachment"}, data.DeliveryVectors)
	require.Nil(t, data.FirstSeen)
	require.Nil(t, data.LastSeen)
}

func TestFieldDataBuilder_Timestamps(t *testing.T) {
	first := time.Date(2017, 5, 12, 0, 0, 0, 0, time.UTC)
	last := time.Date(2017, 6, 1, 0, 0, 0, 0, time.UTC)

	data, err := NewFieldDataBuilder().FirstSeen(first).LastSeen(last).Build()
	require.NoError(t, err)
	require.Equal(t, first, *data.FirstSeen)
	require.Equal(t, last, *data.LastSeen)
}

func TestAttackTechnique(t *testing.T) {
	ref := AttackTechnique("T1055", "Process Injection")
	require.Equal(t, "mitre-attack", ref.SourceName)
	require.Equal(t, "T1055", ref.ExternalID)
	require.Contains(t, ref.URL, "T1055")
	require.Equal(t, "Process Injection", ref.Description)
}
