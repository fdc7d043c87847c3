package sequencedata

import (
	"fmt"

	"github.com/automoto/brawlsim/config"
	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"
)

type EndKind int

const (
	EndNone EndKind = iota
	EndRepeat
	EndDelete
	EndSwitch
)

// SequenceEndTransition is what happens once a sequence reaches its end.
// Switch targets are stored by name until the store resolves them.
type SequenceEndTransition struct {
	Kind   EndKind
	Target config.SequenceID
	name   string
}

var (
	EndTransitionNone   = SequenceEndTransition{Kind: EndNone, Target: config.SequenceNone}
	EndTransitionRepeat = SequenceEndTransition{Kind: EndRepeat, Target: config.SequenceNone}
	EndTransitionDelete = SequenceEndTransition{Kind: EndDelete, Target: config.SequenceNone}
)

// SwitchTo ends into an already known sequence.
func SwitchTo(id config.SequenceID) SequenceEndTransition {
	return SequenceEndTransition{Kind: EndSwitch, Target: id}
}

// SwitchToName ends into the sequence with the given name, resolved at build.
func SwitchToName(name string) SequenceEndTransition {
	return SequenceEndTransition{Kind: EndSwitch, Target: config.SequenceNone, name: name}
}

// TargetName is the unresolved switch target, if any.
func (t SequenceEndTransition) TargetName() string {
	return t.name
}

func (t SequenceEndTransition) String() string {
	switch t.Kind {
	case EndRepeat:
		return "repeat"
	case EndDelete:
		return "delete"
	case EndSwitch:
		if t.name != "" {
			return t.name
		}
		return t.Target.String()
	}
	return "none"
}

func parseEndTransition(s string) SequenceEndTransition {
	switch s {
	case "", "none":
		return EndTransitionNone
	case "repeat":
		return EndTransitionRepeat
	case "delete":
		return EndTransitionDelete
	}
	return SwitchToName(s)
}

// UnmarshalYAML accepts none, repeat, delete or the name of a sequence.
func (t *SequenceEndTransition) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: next must be a sequence name or none/repeat/delete", value.Line)
	}
	*t = parseEndTransition(value.Value)
	return nil
}

func (t SequenceEndTransition) MarshalYAML() (interface{}, error) {
	return t.String(), nil
}

func (SequenceEndTransition) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "string",
		Description: "none, repeat, delete or the name of a sequence of the same asset.",
	}
}
