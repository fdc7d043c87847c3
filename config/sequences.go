package config

// SequenceID identifies a sequence of an asset. Character sequences share a
// fixed set of ids; other objects get ids allocated when definitions load.
type SequenceID int

const (
	SequenceNone SequenceID = -1

	// Character sequences
	Stand SequenceID = iota - 1
	StandAttack0
	StandAttack1
	Walk
	Run
	RunStop
	Dodge
	Jump
	JumpOff
	JumpAscend
	JumpDescend
	JumpDescendLand
	JumpAttack
	DashForward
	DashForwardAscend
	DashForwardDescend
	DashBack
	DashBackAscend
	DashBackDescend
	DashDescendLand
	DashAttack
	Flinch0
	Flinch1
	Dazed
	FallForwardAscend
	FallForwardDescend
	FallForwardLand
	LieFaceDown

	// CharacterSequenceCount is the number of fixed character sequences.
	CharacterSequenceCount int = iota - 1
)

// FirstDynamicSequenceID is the first id handed out to object sequences.
const FirstDynamicSequenceID SequenceID = 1000

// SequenceToName maps character sequence ids to their definition names.
var SequenceToName = map[SequenceID]string{
	Stand:              "stand",
	StandAttack0:       "stand_attack_0",
	StandAttack1:       "stand_attack_1",
	Walk:               "walk",
	Run:                "run",
	RunStop:            "run_stop",
	Dodge:              "dodge",
	Jump:               "jump",
	JumpOff:            "jump_off",
	JumpAscend:         "jump_ascend",
	JumpDescend:        "jump_descend",
	JumpDescendLand:    "jump_descend_land",
	JumpAttack:         "jump_attack",
	DashForward:        "dash_forward",
	DashForwardAscend:  "dash_forward_ascend",
	DashForwardDescend: "dash_forward_descend",
	DashBack:           "dash_back",
	DashBackAscend:     "dash_back_ascend",
	DashBackDescend:    "dash_back_descend",
	DashDescendLand:    "dash_descend_land",
	DashAttack:         "dash_attack",
	Flinch0:            "flinch_0",
	Flinch1:            "flinch_1",
	Dazed:              "dazed",
	FallForwardAscend:  "fall_forward_ascend",
	FallForwardDescend: "fall_forward_descend",
	FallForwardLand:    "fall_forward_land",
	LieFaceDown:        "lie_face_down",
}

var nameToSequence = func() map[string]SequenceID {
	m := make(map[string]SequenceID, len(SequenceToName))
	for id, name := range SequenceToName {
		m[name] = id
	}
	return m
}()

// ParseCharacterSequence returns the character sequence with the given name.
func ParseCharacterSequence(name string) (SequenceID, bool) {
	id, ok := nameToSequence[name]
	return id, ok
}

// IsCharacter reports whether s is one of the fixed character sequences.
func (s SequenceID) IsCharacter() bool {
	return s >= Stand && int(s) < CharacterSequenceCount
}

func (s SequenceID) String() string {
	if name, ok := SequenceToName[s]; ok {
		return name
	}
	if s == SequenceNone {
		return "none"
	}
	return "unknown"
}
