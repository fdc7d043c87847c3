package sequencedata

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

type AssetKind string

const (
	AssetCharacter AssetKind = "character"
	AssetObject    AssetKind = "object"
)

// AssetDocument is one YAML document describing the sequences of an asset.
type AssetDocument struct {
	Asset     AssetID                     `yaml:"asset" json:"asset"`
	Kind      AssetKind                   `yaml:"kind" json:"kind" jsonschema:"enum=character,enum=object"`
	Sequences map[string]SequenceDocument `yaml:"sequences" json:"sequences"`
}

// SequenceDocument is a sequence as written in a definition file.
type SequenceDocument struct {
	Next   SequenceEndTransition `yaml:"next,omitempty" json:"next,omitempty"`
	Frames []Frame               `yaml:"frames" json:"frames"`
}

// Decode reads every YAML document in r.
func Decode(r io.Reader) ([]AssetDocument, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var docs []AssetDocument
	for {
		var doc AssetDocument
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			return docs, nil
		}
		if err != nil {
			return nil, fmt.Errorf("decode asset document %d: %w", len(docs), err)
		}
		docs = append(docs, doc)
	}
}

// LoadFS decodes every .yaml and .yml file under root and builds a store.
func LoadFS(fsys fs.FS, root string) (*Store, error) {
	b := NewBuilder()
	err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isDefinitionFile(p) {
			return nil
		}
		f, err := fsys.Open(p)
		if err != nil {
			return err
		}
		defer f.Close()

		docs, err := Decode(f)
		if err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
		for _, doc := range docs {
			if err := b.Add(doc); err != nil {
				return fmt.Errorf("%s: %w", p, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load sequence definitions: %w", err)
	}
	return b.Build()
}

func isDefinitionFile(p string) bool {
	ext := strings.ToLower(path.Ext(p))
	return ext == ".yaml" || ext == ".yml"
}
