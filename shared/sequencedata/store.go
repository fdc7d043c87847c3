package sequencedata

import (
	"errors"
	"fmt"
	"sort"

	"github.com/automoto/brawlsim/config"
)

var (
	ErrUnknownSequence   = errors.New("unknown sequence")
	ErrDuplicateSequence = errors.New("duplicate sequence")
	ErrMissingSequence   = errors.New("missing character sequence")
	ErrInvalidSequence   = errors.New("invalid sequence")
)

// Store is the immutable lookup from (asset, sequence) to its definition.
type Store struct {
	defs  map[Key]*Definition
	ids   map[AssetID]map[string]config.SequenceID
	kinds map[AssetID]AssetKind
	names map[config.SequenceID]string
}

// Definition looks up a sequence definition.
func (s *Store) Definition(asset AssetID, id config.SequenceID) (*Definition, bool) {
	d, ok := s.defs[Key{Asset: asset, Sequence: id}]
	return d, ok
}

// MustDefinition panics when the definition is missing; every object is
// spawned with sequences its asset defines.
func (s *Store) MustDefinition(asset AssetID, id config.SequenceID) *Definition {
	d, ok := s.Definition(asset, id)
	if !ok {
		panic(fmt.Sprintf("sequencedata: no definition for asset %q sequence %s", asset, s.Name(id)))
	}
	return d
}

// SequenceID returns the id of the named sequence of an asset.
func (s *Store) SequenceID(asset AssetID, name string) (config.SequenceID, bool) {
	id, ok := s.ids[asset][name]
	return id, ok
}

// Name returns a sequence id's name.
func (s *Store) Name(id config.SequenceID) string {
	if name, ok := s.names[id]; ok {
		return name
	}
	return id.String()
}

func (s *Store) Kind(asset AssetID) (AssetKind, bool) {
	k, ok := s.kinds[asset]
	return k, ok
}

// Assets lists the loaded assets in name order.
func (s *Store) Assets() []AssetID {
	assets := make([]AssetID, 0, len(s.kinds))
	for a := range s.kinds {
		assets = append(assets, a)
	}
	sort.Slice(assets, func(i, j int) bool { return assets[i] < assets[j] })
	return assets
}

// Len is the number of loaded definitions.
func (s *Store) Len() int {
	return len(s.defs)
}

// Builder collects asset documents and resolves them into a Store. Documents
// for the same asset are merged.
type Builder struct {
	assets map[AssetID]*AssetDocument
}

func NewBuilder() *Builder {
	return &Builder{assets: make(map[AssetID]*AssetDocument)}
}

// Add merges doc into the builder.
func (b *Builder) Add(doc AssetDocument) error {
	if doc.Asset == "" {
		return fmt.Errorf("asset document without asset id")
	}
	if doc.Kind == "" {
		doc.Kind = AssetObject
	}
	if doc.Kind != AssetCharacter && doc.Kind != AssetObject {
		return fmt.Errorf("asset %q: unknown kind %q", doc.Asset, doc.Kind)
	}

	existing, ok := b.assets[doc.Asset]
	if !ok {
		merged := AssetDocument{Asset: doc.Asset, Kind: doc.Kind, Sequences: make(map[string]SequenceDocument, len(doc.Sequences))}
		existing = &merged
		b.assets[doc.Asset] = existing
	}
	if existing.Kind != doc.Kind {
		return fmt.Errorf("asset %q: kind %q conflicts with %q", doc.Asset, doc.Kind, existing.Kind)
	}
	for name, seq := range doc.Sequences {
		if _, dup := existing.Sequences[name]; dup {
			return fmt.Errorf("asset %q sequence %q: %w", doc.Asset, name, ErrDuplicateSequence)
		}
		existing.Sequences[name] = seq
	}
	return nil
}

// Build assigns ids, validates frames and resolves end transitions. Object
// sequence ids are allocated in asset then name order so a given set of
// documents always yields the same ids.
func (b *Builder) Build() (*Store, error) {
	s := &Store{
		defs:  make(map[Key]*Definition),
		ids:   make(map[AssetID]map[string]config.SequenceID, len(b.assets)),
		kinds: make(map[AssetID]AssetKind, len(b.assets)),
		names: make(map[config.SequenceID]string),
	}

	assets := make([]AssetID, 0, len(b.assets))
	for a := range b.assets {
		assets = append(assets, a)
	}
	sort.Slice(assets, func(i, j int) bool { return assets[i] < assets[j] })

	next := config.FirstDynamicSequenceID
	for _, asset := range assets {
		doc := b.assets[asset]
		ids, err := assignIDs(doc, &next)
		if err != nil {
			return nil, err
		}
		s.ids[asset] = ids
		s.kinds[asset] = doc.Kind
		for name, id := range ids {
			if !id.IsCharacter() {
				s.names[id] = name
			}
		}
	}

	for _, asset := range assets {
		doc := b.assets[asset]
		for name, seq := range doc.Sequences {
			def, err := s.resolve(asset, name, seq)
			if err != nil {
				return nil, err
			}
			s.defs[Key{Asset: asset, Sequence: def.ID}] = def
		}
	}
	return s, nil
}

// MustBuild is Build for load paths where a bad definition must stop the
// program.
func (b *Builder) MustBuild() *Store {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

func assignIDs(doc *AssetDocument, next *config.SequenceID) (map[string]config.SequenceID, error) {
	ids := make(map[string]config.SequenceID, len(doc.Sequences))
	if doc.Kind == AssetCharacter {
		for name := range doc.Sequences {
			id, ok := config.ParseCharacterSequence(name)
			if !ok {
				return nil, fmt.Errorf("asset %q sequence %q is not a character sequence: %w", doc.Asset, name, ErrUnknownSequence)
			}
			ids[name] = id
		}
		for id := config.Stand; int(id) < config.CharacterSequenceCount; id++ {
			if _, ok := doc.Sequences[id.String()]; !ok {
				return nil, fmt.Errorf("asset %q sequence %q: %w", doc.Asset, id.String(), ErrMissingSequence)
			}
		}
		return ids, nil
	}

	names := make([]string, 0, len(doc.Sequences))
	for name := range doc.Sequences {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		ids[name] = *next
		*next++
	}
	return ids, nil
}

func (s *Store) resolve(asset AssetID, name string, seq SequenceDocument) (*Definition, error) {
	id := s.ids[asset][name]
	if len(seq.Frames) == 0 {
		return nil, fmt.Errorf("asset %q sequence %q has no frames: %w", asset, name, ErrInvalidSequence)
	}
	for i, f := range seq.Frames {
		if err := validateFrame(f); err != nil {
			return nil, fmt.Errorf("asset %q sequence %q frame %d: %v: %w", asset, name, i, err, ErrInvalidSequence)
		}
	}

	next := seq.Next
	if next.Kind == EndSwitch && next.name != "" {
		target, ok := s.ids[asset][next.name]
		if !ok {
			return nil, fmt.Errorf("asset %q sequence %q ends into %q: %w", asset, name, next.name, ErrUnknownSequence)
		}
		next = SwitchTo(target)
	}

	return &Definition{
		Asset:  asset,
		ID:     id,
		Name:   name,
		Frames: seq.Frames,
		Next:   next,
	}, nil
}

func validateFrame(f Frame) error {
	if f.Wait < 0 {
		return fmt.Errorf("negative wait %d", f.Wait)
	}
	for _, v := range f.Body {
		if err := v.validate(); err != nil {
			return err
		}
	}
	for _, in := range f.Interactions {
		if in.Kind != InteractionHit && in.Kind != "" {
			return fmt.Errorf("unknown interaction kind %q", in.Kind)
		}
		if in.Hit.RepeatDelay < 0 {
			return fmt.Errorf("negative repeat_delay %d", in.Hit.RepeatDelay)
		}
		for _, v := range in.Bounds {
			if err := v.validate(); err != nil {
				return err
			}
		}
	}
	return nil
}
