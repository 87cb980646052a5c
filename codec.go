package maec

import (
	"encoding/json"
	"reflect"
	"slices"
	"strings"
	"time"
)

// headerWire is the wire shape of ObjectHeader. Pointer fields distinguish
// an absent key from a present zero so decoding can apply the documented
// defaults (schema_version "5.0", created/modified now).
type headerWire struct {
	Kind          string     `json:"type"`
	ID            string     `json:"id"`
	SchemaVersion *string    `json:"schema_version,omitempty"`
	Created       *time.Time `json:"created,omitempty"`
	Modified      *time.Time `json:"modified,omitempty"`
	CreatedByRef  string     `json:"created_by_ref,omitempty"`
}

func (h *ObjectHeader) toWire() headerWire {
	w := headerWire{
		Kind:         h.Kind,
		ID:           h.ID,
		CreatedByRef: h.CreatedByRef,
	}
	if h.SchemaVersion != "" {
		v := h.SchemaVersion
		w.SchemaVersion = &v
	}
	if !h.Created.IsZero() {
		t := h.Created
		w.Created = &t
	}
	if !h.Modified.IsZero() {
		t := h.Modified
		w.Modified = &t
	}
	return w
}

func (h *ObjectHeader) fromWire(w headerWire) {
	now := time.Now().UTC()
	*h = ObjectHeader{
		Kind:         w.Kind,
		ID:           w.ID,
		CreatedByRef: w.CreatedByRef,
		Custom:       h.Custom,
	}
	if w.SchemaVersion != nil {
		h.SchemaVersion = *w.SchemaVersion
	} else {
		h.SchemaVersion = SchemaVersion
	}
	if w.Created != nil {
		h.Created = *w.Created
	} else {
		h.Created = now
	}
	if w.Modified != nil {
		h.Modified = *w.Modified
	} else {
		h.Modified = now
	}
}

// marshalFlat encodes a header-bearing object as a single JSON object:
// custom extension properties first, then the kind-specific body, then the
// header fields, so declared fields win any name collision.
func marshalFlat(h *ObjectHeader, body any) ([]byte, error) {
	out := make(map[string]json.RawMessage)
	for key, value := range h.Custom {
		raw, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		out[key] = raw
	}
	if body != nil {
		if err := mergeFields(out, body); err != nil {
			return nil, err
		}
	}
	if err := mergeFields(out, h.toWire()); err != nil {
		return nil, err
	}
	return json.Marshal(out)
}

// unmarshalFlat decodes a flattened JSON object into its header and body.
// Keys that belong to neither are collected into the header's Custom map.
func unmarshalFlat(data []byte, h *ObjectHeader, body any) error {
	var hw headerWire
	if err := json.Unmarshal(data, &hw); err != nil {
		return err
	}
	h.fromWire(hw)

	declared := jsonKeys(headerWire{})
	if body != nil {
		if err := json.Unmarshal(data, body); err != nil {
			return err
		}
		declared = append(declared, jsonKeys(body)...)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for key, value := range raw {
		if slices.Contains(declared, key) {
			continue
		}
		var v any
		if err := json.Unmarshal(value, &v); err != nil {
			return err
		}
		if h.Custom == nil {
			h.Custom = make(map[string]any)
		}
		h.Custom[key] = v
	}
	return nil
}

// mergeFields marshals a struct and copies its top-level keys into dst,
// overwriting existing entries.
func mergeFields(dst map[string]json.RawMessage, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}
	for key, value := range m {
		dst[key] = value
	}
	return nil
}

// jsonKeys lists the wire names declared by a struct's json tags.
func jsonKeys(v any) []string {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	keys := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("json")
		name, _, _ := strings.Cut(tag, ",")
		if name != "" && name != "-" {
			keys = append(keys, name)
		}
	}
	return keys
}
