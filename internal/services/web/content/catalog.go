package content

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"

	"gopkg.in/yaml.v3"
)

const (
	specialtiesGlob = "specialties/*.yaml"
	relatedFile     = "related.yaml"
)

//go:embed data/related.yaml data/specialties/*.yaml
var embeddedFS embed.FS

var defaultCatalog = mustLoadEmbedded()

// Catalog indexes specialty pages and the related-link table.
type Catalog struct {
	specialties map[string]Specialty
	ordered     []string
	related     map[string][]RelatedLink
	fallback    []RelatedLink
}

type relatedDocument struct {
	Default     []RelatedLink            `yaml:"default"`
	Specialties map[string][]RelatedLink `yaml:"specialties"`
}

// Default returns the process-wide catalog built from embedded content.
func Default() *Catalog {
	return defaultCatalog
}

// LoadEmbedded parses the content embedded in this package.
func LoadEmbedded() (*Catalog, error) {
	sub, err := fs.Sub(embeddedFS, "data")
	if err != nil {
		return nil, fmt.Errorf("open embedded content: %w", err)
	}
	return Load(sub)
}

func mustLoadEmbedded() *Catalog {
	catalog, err := LoadEmbedded()
	if err != nil {
		panic(fmt.Sprintf("load embedded content: %v", err))
	}
	return catalog
}

// Load parses one YAML document per specialty plus the related-link table
// from fsys and validates the result.
func Load(fsys fs.FS) (*Catalog, error) {
	if fsys == nil {
		return nil, errors.New("content fs is required")
	}
	paths, err := fs.Glob(fsys, specialtiesGlob)
	if err != nil {
		return nil, fmt.Errorf("glob specialties: %w", err)
	}
	if len(paths) == 0 {
		return nil, errors.New("no specialty documents found")
	}
	sort.Strings(paths)

	catalog := &Catalog{
		specialties: make(map[string]Specialty, len(paths)),
		related:     map[string][]RelatedLink{},
	}
	for _, filePath := range paths {
		var specialty Specialty
		if err := decodeFile(fsys, filePath, &specialty); err != nil {
			return nil, err
		}
		if err := catalog.addSpecialty(path.Base(filePath), specialty); err != nil {
			return nil, err
		}
	}
	sort.SliceStable(catalog.ordered, func(i, j int) bool {
		return catalog.specialties[catalog.ordered[i]].Name < catalog.specialties[catalog.ordered[j]].Name
	})

	var related relatedDocument
	if err := decodeFile(fsys, relatedFile, &related); err != nil {
		return nil, err
	}
	if err := catalog.setRelated(related); err != nil {
		return nil, err
	}
	return catalog, nil
}

func decodeFile(fsys fs.FS, name string, out any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("parse %s: document is empty", name)
		}
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

func (c *Catalog) addSpecialty(source string, specialty Specialty) error {
	if err := validateSpecialty(specialty); err != nil {
		return fmt.Errorf("%s: %w", source, err)
	}
	if _, exists := c.specialties[specialty.Key]; exists {
		return fmt.Errorf("%s: duplicate specialty key %q", source, specialty.Key)
	}
	if specialty.SEO.CanonicalPath == "" {
		specialty.SEO.CanonicalPath = specialtyPath(specialty.Key)
	}
	if specialty.Testimonial.Practice == "" {
		specialty.Testimonial.Practice = specialty.Name
	}
	c.specialties[specialty.Key] = specialty
	c.ordered = append(c.ordered, specialty.Key)
	return nil
}

func (c *Catalog) setRelated(doc relatedDocument) error {
	if len(doc.Default) == 0 {
		return fmt.Errorf("%s: default related links are required", relatedFile)
	}
	if err := c.validateLinks("default", doc.Default); err != nil {
		return fmt.Errorf("%s: %w", relatedFile, err)
	}
	c.fallback = doc.Default

	for key, links := range doc.Specialties {
		if _, ok := c.specialties[key]; !ok {
			return fmt.Errorf("%s: related links for unknown specialty %q", relatedFile, key)
		}
		if len(links) == 0 {
			return fmt.Errorf("%s: related links for %q are empty", relatedFile, key)
		}
		if err := c.validateLinks(key, links); err != nil {
			return fmt.Errorf("%s: %w", relatedFile, err)
		}
		c.related[key] = links
	}
	return nil
}

// Specialty returns the specialty with exactly the given key.
func (c *Catalog) Specialty(key string) (Specialty, bool) {
	if c == nil {
		return Specialty{}, false
	}
	specialty, ok := c.specialties[key]
	if !ok {
		return Specialty{}, false
	}
	return specialty.clone(), true
}

// Specialties returns every specialty ordered by display name.
func (c *Catalog) Specialties() []Specialty {
	if c == nil {
		return nil
	}
	out := make([]Specialty, 0, len(c.ordered))
	for _, key := range c.ordered {
		out = append(out, c.specialties[key].clone())
	}
	return out
}

// Keys returns every specialty key in display order.
func (c *Catalog) Keys() []string {
	if c == nil {
		return nil
	}
	return append([]string(nil), c.ordered...)
}

// RelatedLinks returns the related pages for specialtyKey.
//
// The key is matched exactly. Keys without an entry, including the empty
// string, get the default list. The result is never nil for a loaded catalog
// and is always a fresh copy.
func (c *Catalog) RelatedLinks(specialtyKey string) []RelatedLink {
	if c == nil {
		return []RelatedLink{}
	}
	links, ok := c.related[specialtyKey]
	if !ok {
		links = c.fallback
	}
	return append([]RelatedLink{}, links...)
}
