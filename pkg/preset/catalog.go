package preset

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/artem13815/workvibe/pkg/career"
	"github.com/artem13815/workvibe/pkg/nlp"
)

//go:embed catalog.yaml
var catalogYAML []byte

var ErrUnknownProfession = errors.New("unknown profession")

// Catalog — неизменяемый набор пресетов. Наружу отдаются только глубокие копии.
type Catalog struct {
	presets map[string]*career.Payload
	aliases map[string]string
}

type catalogFile struct {
	Aliases map[string]string          `yaml:"aliases"`
	Presets map[string]*career.Payload `yaml:"presets"`
}

// Load parses a catalog document. Every alias must point at a known preset.
func Load(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	c := &Catalog{
		presets: make(map[string]*career.Payload, len(f.Presets)),
		aliases: make(map[string]string, len(f.Aliases)),
	}
	for id, p := range f.Presets {
		if !p.Usable() {
			return nil, fmt.Errorf("preset %q: profession is empty", id)
		}
		c.presets[id] = p
	}
	for alias, id := range f.Aliases {
		if _, ok := c.presets[id]; !ok {
			return nil, fmt.Errorf("alias %q: %w: %s", alias, ErrUnknownProfession, id)
		}
		key := nlp.NormalizeProfession(alias)
		if key == "" {
			return nil, fmt.Errorf("alias %q normalizes to nothing", alias)
		}
		c.aliases[key] = id
	}
	return c, nil
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the embedded catalog.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Load(catalogYAML)
		if err != nil {
			panic(fmt.Sprintf("embedded preset catalog: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Resolve maps free text to a preset by its normalized alias.
func (c *Catalog) Resolve(name string) (*career.Payload, bool) {
	id, ok := c.aliases[nlp.NormalizeProfession(name)]
	if !ok {
		return nil, false
	}
	return c.Lookup(id)
}

// Lookup returns a preset by its canonical id.
func (c *Catalog) Lookup(id string) (*career.Payload, bool) {
	p, ok := c.presets[id]
	if !ok {
		return nil, false
	}
	return p.Clone(), true
}

// Find tries the canonical id first, then aliases.
func (c *Catalog) Find(name string) (*career.Payload, error) {
	if p, ok := c.Lookup(name); ok {
		return p, nil
	}
	if p, ok := c.Resolve(name); ok {
		return p, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownProfession, name)
}

// IDs returns canonical ids in sorted order.
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.presets))
	for id := range c.presets {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
