// Package catalog loads the site's YAML message files into an x/text
// catalog and hands out printers bound to it.
//
// Files live at locales/<tag>/<namespace>.yaml and every key in a file
// must start with "<namespace>.".
package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	xcatalog "golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

// BaseTag is the source language every other locale must fully translate.
var BaseTag = language.AmericanEnglish

type messageFile struct {
	Locale    string            `yaml:"locale"`
	Namespace string            `yaml:"namespace"`
	Messages  map[string]string `yaml:"messages"`
}

// Bundle holds the loaded messages and the x/text catalog built from them.
type Bundle struct {
	builder  *xcatalog.Builder
	messages map[language.Tag]map[string]string
}

//go:embed locales/*/*.yaml
var embedded embed.FS

var defaultBundle = mustLoad(embedded)

// Default returns the bundle built from the embedded locale files.
func Default() *Bundle {
	return defaultBundle
}

// Load reads every locales/*/*.yaml file in fsys.
func Load(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, "locales/*/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale files: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no locale files found")
	}
	sort.Strings(paths)

	b := &Bundle{
		builder:  xcatalog.NewBuilder(xcatalog.Fallback(BaseTag)),
		messages: map[language.Tag]map[string]string{},
	}
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", p, err)
		}
		var file messageFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse %s: %w", p, err)
		}
		if err := b.add(p, file); err != nil {
			return nil, err
		}
	}
	if _, ok := b.messages[BaseTag]; !ok {
		return nil, fmt.Errorf("base locale %s has no messages", BaseTag)
	}
	if err := b.register(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Bundle) add(p string, file messageFile) error {
	dirLocale := path.Base(path.Dir(p))
	namespace := strings.TrimSuffix(path.Base(p), path.Ext(p))

	if strings.TrimSpace(file.Locale) != dirLocale {
		return fmt.Errorf("%s: locale %q does not match directory %q", p, file.Locale, dirLocale)
	}
	if strings.TrimSpace(file.Namespace) != namespace {
		return fmt.Errorf("%s: namespace %q does not match file name %q", p, file.Namespace, namespace)
	}
	if len(file.Messages) == 0 {
		return fmt.Errorf("%s: no messages", p)
	}
	tag, err := language.Parse(dirLocale)
	if err != nil {
		return fmt.Errorf("%s: locale: %w", p, err)
	}

	messages, ok := b.messages[tag]
	if !ok {
		messages = map[string]string{}
		b.messages[tag] = messages
	}
	prefix := namespace + "."
	for key, value := range file.Messages {
		key = strings.TrimSpace(key)
		if !strings.HasPrefix(key, prefix) || key == prefix {
			return fmt.Errorf("%s: key %q must start with %q", p, key, prefix)
		}
		if _, dup := messages[key]; dup {
			return fmt.Errorf("%s: duplicate key %q", p, key)
		}
		messages[key] = value
	}
	return nil
}

// register copies messages into the builder under the regional tag and its
// base language, so "es" and "es-US" both resolve.
func (b *Bundle) register() error {
	for _, tag := range b.Tags() {
		targets := []language.Tag{tag}
		if base, conf := tag.Base(); conf != language.No {
			if baseTag, err := language.Compose(base); err == nil && baseTag != tag {
				targets = append(targets, baseTag)
			}
		}
		for key, value := range b.messages[tag] {
			for _, target := range targets {
				if err := b.builder.SetString(target, key, value); err != nil {
					return fmt.Errorf("register %s %q: %w", target, key, err)
				}
			}
		}
	}
	return nil
}

// Printer returns a printer for tag that formats keys from this bundle.
func (b *Bundle) Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(b.builder))
}

// Tags lists the loaded locales in a stable order.
func (b *Bundle) Tags() []language.Tag {
	out := make([]language.Tag, 0, len(b.messages))
	for tag := range b.messages {
		out = append(out, tag)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// Lookup returns the raw message for key, falling back to BaseTag.
func (b *Bundle) Lookup(tag language.Tag, key string) (string, bool) {
	if value, ok := b.messages[tag][key]; ok {
		return value, true
	}
	value, ok := b.messages[BaseTag][key]
	return value, ok
}

// Missing lists BaseTag keys that tag does not translate.
func (b *Bundle) Missing(tag language.Tag) []string {
	var out []string
	for key := range b.messages[BaseTag] {
		if _, ok := b.messages[tag][key]; !ok {
			out = append(out, key)
		}
	}
	sort.Strings(out)
	return out
}

func mustLoad(fsys fs.FS) *Bundle {
	b, err := Load(fsys)
	if err != nil {
		panic(err)
	}
	return b
}
