// Package author compiles analyst-written YAML briefs into MAEC packages.
//
// A brief describes families, instances, behaviors, actions, and
// relationships by name; the compiler mints MAEC identifiers, resolves
// name-based relationship endpoints to those identifiers, and assembles a
// validated Package ready for JSON encoding.
package author

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/craftedsignal/maec"
	"github.com/craftedsignal/maec/vocab"
)

// Brief is the YAML source format for one MAEC package.
type Brief struct {
	ID            string              `yaml:"id"`
	CreatedBy     string              `yaml:"created_by"`
	Families      []FamilyBrief       `yaml:"families"`
	Instances     []InstanceBrief     `yaml:"instances"`
	Behaviors     []BehaviorBrief     `yaml:"behaviors"`
	Actions       []ActionBrief       `yaml:"actions"`
	Relationships []RelationshipBrief `yaml:"relationships"`
}

// FamilyBrief describes one malware family.
type FamilyBrief struct {
	Name            string   `yaml:"name"`
	Aliases         []string `yaml:"aliases"`
	Labels          []string `yaml:"labels"`
	Description     string   `yaml:"description"`
	DeliveryVectors []string `yaml:"delivery_vectors"`
	FirstSeen       string   `yaml:"first_seen"`
	LastSeen        string   `yaml:"last_seen"`
}

// InstanceBrief describes one malware instance.
type InstanceBrief struct {
	Name         string   `yaml:"name"`
	ObjectRefs   []string `yaml:"object_refs"`
	Labels       []string `yaml:"labels"`
	Description  string   `yaml:"description"`
	Capabilities []string `yaml:"capabilities"`
}

// BehaviorBrief describes one observed behavior.
type BehaviorBrief struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Techniques  []string `yaml:"techniques"`
}

// ActionBrief describes one observed action.
type ActionBrief struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	APICall     string `yaml:"api_call"`
}

// RelationshipBrief connects two named entries from the same brief.
type RelationshipBrief struct {
	Source      string `yaml:"source"`
	Target      string `yaml:"target"`
	Type        string `yaml:"type"`
	Description string `yaml:"description"`
}

// Load parses a brief from YAML.
func Load(data []byte) (*Brief, error) {
	var brief Brief
	if err := yaml.Unmarshal(data, &brief); err != nil {
		return nil, fmt.Errorf("parsing brief: %w", err)
	}
	return &brief, nil
}

// LoadFile reads and parses a brief from disk.
func LoadFile(path string) (*Brief, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	brief, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return brief, nil
}

// Compile assembles the brief into a validated MAEC package. Relationship
// endpoints are resolved against entry names; an endpoint that names no
// entry fails compilation.
func Compile(brief *Brief) (*maec.Package, error) {
	pb := maec.NewPackageBuilder()
	if brief.ID != "" {
		pb.ID(brief.ID)
	}
	if brief.CreatedBy != "" {
		pb.CreatedByRef(brief.CreatedBy)
	}

	// Names seen so far, for relationship resolution.
	ids := make(map[string]string)
	record := func(name, id string) error {
		if _, dup := ids[name]; dup {
			return fmt.Errorf("duplicate entry name %q", name)
		}
		ids[name] = id
		return nil
	}

	for _, fb := range brief.Families {
		family, err := compileFamily(fb)
		if err != nil {
			return nil, fmt.Errorf("family %q: %w", fb.Name, err)
		}
		if err := record(fb.Name, family.ID); err != nil {
			return nil, err
		}
		pb.AddMalwareFamily(family)
	}

	for _, ib := range brief.Instances {
		instance, err := compileInstance(ib)
		if err != nil {
			return nil, fmt.Errorf("instance %q: %w", ib.Name, err)
		}
		if err := record(ib.Name, instance.ID); err != nil {
			return nil, err
		}
		pb.AddMalwareInstance(instance)
	}

	for _, bb := range brief.Behaviors {
		behavior, err := compileBehavior(bb)
		if err != nil {
			return nil, fmt.Errorf("behavior %q: %w", bb.Name, err)
		}
		if err := record(bb.Name, behavior.ID); err != nil {
			return nil, err
		}
		pb.AddBehavior(behavior)
	}

	for _, ab := range brief.Actions {
		builder := maec.NewMalwareActionBuilder().
			Name(vocab.MalwareAction(ab.Name)).
			Description(ab.Description)
		if ab.APICall != "" {
			builder.APICall(ab.APICall)
		}
		action, err := builder.Build()
		if err != nil {
			return nil, fmt.Errorf("action %q: %w", ab.Name, err)
		}
		if err := record(ab.Name, action.ID); err != nil {
			return nil, err
		}
		pb.AddMalwareAction(action)
	}

	for _, rb := range brief.Relationships {
		sourceID, ok := ids[rb.Source]
		if !ok {
			return nil, fmt.Errorf("relationship source %q: no such entry", rb.Source)
		}
		targetID, ok := ids[rb.Target]
		if !ok {
			return nil, fmt.Errorf("relationship target %q: no such entry", rb.Target)
		}
		builder := maec.NewRelationshipBuilder().
			SourceRef(sourceID).
			TargetRef(targetID).
			RelationshipType(rb.Type).
			Description(rb.Description)
		rel, err := builder.Build()
		if err != nil {
			return nil, fmt.Errorf("relationship %s -> %s: %w", rb.Source, rb.Target, err)
		}
		pb.AddRelationship(*rel)
	}

	return pb.Build()
}

// CompileFile is LoadFile followed by Compile.
func CompileFile(path string) (*maec.Package, error) {
	brief, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return Compile(brief)
}

func compileFamily(fb FamilyBrief) (*maec.MalwareFamily, error) {
	builder := maec.NewMalwareFamilyBuilder().
		Name(maec.NewName(fb.Name)).
		Description(fb.Description)
	for _, alias := range fb.Aliases {
		builder.AddAlias(maec.NewName(alias))
	}
	for _, label := range fb.Labels {
		builder.AddLabel(vocab.MalwareLabel(label))
	}
	fieldData, err := compileFieldData(fb.DeliveryVectors, fb.FirstSeen, fb.LastSeen)
	if err != nil {
		return nil, err
	}
	if fieldData != nil {
		builder.FieldData(*fieldData)
	}
	return builder.Build()
}

func compileInstance(ib InstanceBrief) (*maec.MalwareInstance, error) {
	builder := maec.NewMalwareInstanceBuilder().
		Name(maec.NewName(ib.Name)).
		Description(ib.Description)
	for _, ref := range ib.ObjectRefs {
		builder.AddInstanceObjectRef(ref)
	}
	for _, label := range ib.Labels {
		builder.AddLabel(vocab.MalwareLabel(label))
	}
	for _, capability := range ib.Capabilities {
		builder.AddCapability(maec.NewCapability(capability))
	}
	return builder.Build()
}

func compileBehavior(bb BehaviorBrief) (*maec.Behavior, error) {
	builder := maec.NewBehaviorBuilder().
		Name(vocab.Behavior(bb.Name)).
		Description(bb.Description)
	for _, technique := range bb.Techniques {
		builder.AddTechniqueRef(maec.AttackTechnique(technique, ""))
	}
	return builder.Build()
}

func compileFieldData(vectors []string, firstSeen, lastSeen string) (*maec.FieldData, error) {
	if len(vectors) == 0 && firstSeen == "" && lastSeen == "" {
		return nil, nil
	}
	builder := maec.NewFieldDataBuilder()
	if len(vectors) > 0 {
		builder.DeliveryVectors(vectors...)
	}
	if firstSeen != "" {
		t, err := time.Parse(time.RFC3339, firstSeen)
		if err != nil {
			return nil, fmt.Errorf("first_seen: %w", err)
		}
		builder.FirstSeen(t)
	}
	if lastSeen != "" {
		t, err := time.Parse(time.RFC3339, lastSeen)
		if err != nil {
			return nil, fmt.Errorf("last_seen: %w", err)
		}
		builder.LastSeen(t)
	}
	return builder.Build()
}
