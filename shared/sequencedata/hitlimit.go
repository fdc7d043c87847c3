package sequencedata

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"
)

const unlimitedName = "unlimited"

// HitLimit caps how many distinct targets one interaction may hit. The zero
// value allows no hits; use Limit or Unlimited.
type HitLimit struct {
	n         uint32
	unlimited bool
}

// Unlimited never exhausts.
var Unlimited = HitLimit{unlimited: true}

// Limit allows n distinct targets.
func Limit(n uint32) HitLimit {
	return HitLimit{n: n}
}

// Max returns the limit, or false when unlimited.
func (h HitLimit) Max() (uint32, bool) {
	return h.n, !h.unlimited
}

func (h HitLimit) IsUnlimited() bool {
	return h.unlimited
}

// Exhausted reports whether count hits used up the limit.
func (h HitLimit) Exhausted(count uint32) bool {
	return !h.unlimited && count >= h.n
}

func (h HitLimit) String() string {
	if h.unlimited {
		return unlimitedName
	}
	return strconv.FormatUint(uint64(h.n), 10)
}

func parseHitLimit(s string) (HitLimit, error) {
	if s == unlimitedName {
		return Unlimited, nil
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return HitLimit{}, fmt.Errorf("hit_limit %q: want a count or %q", s, unlimitedName)
	}
	return Limit(uint32(n)), nil
}

// UnmarshalYAML accepts a bare integer or the string "unlimited".
func (h *HitLimit) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: hit_limit must be a scalar", value.Line)
	}
	parsed, err := parseHitLimit(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*h = parsed
	return nil
}

func (h HitLimit) MarshalYAML() (interface{}, error) {
	if h.unlimited {
		return unlimitedName, nil
	}
	return h.n, nil
}

func (h *HitLimit) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		parsed, err := parseHitLimit(s)
		if err != nil {
			return err
		}
		*h = parsed
		return nil
	}
	var n uint32
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("hit_limit: %w", err)
	}
	*h = Limit(n)
	return nil
}

func (h HitLimit) MarshalJSON() ([]byte, error) {
	if h.unlimited {
		return json.Marshal(unlimitedName)
	}
	return json.Marshal(h.n)
}

func (HitLimit) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Description: "Distinct targets one interaction may hit.",
		OneOf: []*jsonschema.Schema{
			{Type: "integer", Minimum: json.Number("0")},
			{Type: "string", Enum: []any{unlimitedName}},
		},
	}
}
