package maec

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/craftedsignal/maec/vocab"
)

func TestMalwareFamilyBuilder(t *testing.T) {
	data, err := NewFieldDataBuilder().
		AddDeliveryVector(vocab.DeliveryEmailAttachment).
		FirstSeen(time.Date(2017, 5, 12, 0, 0, 0, 0, time.UTC)).
		Build()
	require.NoError(t, err)

	family, err := NewMalwareFamilyBuilder().
		Name(NewName("WannaCry")).
		AddAlias(NewName("WanaCrypt0r")).
		AddLabel(vocab.LabelRansomware).
		AddLabel(vocab.LabelWorm).
		Description("Ransomware family first seen in May 2017").
		FieldData(*data).
		AddCommonString("WNcry@2ol7").
		Build()
	require.NoError(t, err)

	require.Equal(t, KindMalwareFamily, family.Kind)
	require.True(t, RefMatchesKind(family.ID, KindMalwareFamily))
	require.Equal(t, "WannaCry", family.Name.Value)
	require.Len(t, family.Labels, 2)
	require.NotNil(t, family.FieldData)
}

func TestMalwareFamilyBuilder_MissingName(t *testing.T) {
	_, err := NewMalwareFamilyBuilder().Description("no name").Build()

	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, "name", missing.Field)
}

func TestMalwareFamily_JSONRoundTrip(t *testing.T) {
	family, err := NewMalwareFamilyBuilder().
		Name(NewName("Emotet").WithSource(NewExternalReference("av-vendor"))).
		AddLabel(vocab.LabelTrojanHorse).
		AddCommonBehaviorRef(GenerateID(KindBehavior)).
		AddReference(AttackTechnique("T1566", "Phishing")).
		Build()
	require.NoError(t, err)

	encoded, err := json.Marshal(family)
	require.NoError(t, err)

	var decoded MalwareFamily
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	require.Equal(t, family.Name, decoded.Name)
	require.Equal(t, family.Labels, decoded.Labels)
	require.Equal(t, family.CommonBehaviorRefs, decoded.CommonBehaviorRefs)
	require.Equal(t, family.References, decoded.References)

	reencoded, err := json.Marshal(&decoded)
	require.NoError(t, err)
	require.JSONEq(t, string(encoded), string(reencoded))
}
