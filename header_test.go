package maec

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakeClock returns a Clock that advances by step on every read.
func fakeClock(start time.Time, step time.Duration) Clock {
	current := start
	return func() time.Time {
		t := current
		current = current.Add(step)
		return t
	}
}

func TestNewHeader(t *testing.T) {
	h := NewHeader(KindMalwareFamily, "")

	require.Equal(t, KindMalwareFamily, h.Kind)
	require.Equal(t, SchemaVersion, h.SchemaVersion)
	require.True(t, ValidID(h.ID))
	require.True(t, RefMatchesKind(h.ID, KindMalwareFamily))
	require.Equal(t, h.Created, h.Modified)
	require.Empty(t, h.CreatedByRef)
	require.Nil(t, h.Custom)
}

func TestNewHeader_CreatedByRef(t *testing.T) {
	creator := GenerateID("identity")
	h := NewHeader(KindBehavior, creator)
	require.Equal(t, creator, h.CreatedByRef)
}

func TestNewVersion(t *testing.T) {
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := fakeClock(start, time.Minute)
	h := NewHeaderWith(KindMalwareFamily, "", clock, GenerateID)

	id := h.ID
	created := h.Created

	// Created and ID survive any number of new versions; Modified is
	// non-decreasing and strictly grows with the clock.
	previous := h.Modified
	for i := 0; i < 3; i++ {
		h.versionWith(clock)
		require.Equal(t, id, h.ID)
		require.Equal(t, created, h.Created)
		require.True(t, h.Modified.After(previous))
		previous = h.Modified
	}
}

func TestSetCustom(t *testing.T) {
	h := NewHeader(KindPackage, "")
	h.SetCustom("x_vendor", "craftedsignal")
	require.Equal(t, "craftedsignal", h.Custom["x_vendor"])
}
