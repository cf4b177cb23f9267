// Package i18n holds the translation dictionary, the locale-field resolver
// and the request locale context.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/ghodss/yaml"

	"elhamas/internal/domain"
)

//go:embed locales/*.yaml
var embeddedLocales embed.FS

// Dictionary maps (locale, dotted key) to display text. It is immutable once loaded.
type Dictionary struct {
	tables map[domain.Locale]map[string]string
}

var defaultDictionary = mustLoadEmbedded()

// Default returns the process-wide dictionary built from the embedded catalogs.
func Default() *Dictionary { return defaultDictionary }

func mustLoadEmbedded() *Dictionary {
	d, err := LoadFS(embeddedLocales)
	if err != nil {
		panic(err)
	}
	return d
}

// LoadFS reads locales/<locale>.yaml for every supported locale.
func LoadFS(fsys fs.FS) (*Dictionary, error) {
	d := &Dictionary{tables: make(map[domain.Locale]map[string]string, len(domain.Locales))}
	for _, loc := range domain.Locales {
		path := "locales/" + string(loc) + ".yaml"
		raw, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", path, err)
		}
		var tree map[string]any
		if err := yaml.Unmarshal(raw, &tree); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", path, err)
		}
		table := make(map[string]string)
		flatten("", tree, table)
		d.tables[loc] = table
	}
	return d, nil
}

// New builds a dictionary from already-flat tables. Used by tests and tools.
func New(tables map[domain.Locale]map[string]string) *Dictionary {
	d := &Dictionary{tables: make(map[domain.Locale]map[string]string, len(tables))}
	for loc, t := range tables {
		cp := make(map[string]string, len(t))
		for k, v := range t {
			cp[k] = v
		}
		d.tables[loc] = cp
	}
	return d
}

func flatten(prefix string, node map[string]any, out map[string]string) {
	for k, v := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch t := v.(type) {
		case map[string]any:
			flatten(key, t, out)
		case string:
			out[key] = t
		case nil:
		default:
			out[key] = fmt.Sprint(t)
		}
	}
}

// Translate returns the text for key in loc. A miss returns the key itself so
// untranslated strings stay visible in the UI; the other locale is never used.
func (d *Dictionary) Translate(key string, loc domain.Locale) string {
	if d == nil {
		return key
	}
	if v, ok := d.tables[loc][key]; ok {
		return v
	}
	return key
}

// Table returns a copy of the flat table for loc.
func (d *Dictionary) Table(loc domain.Locale) map[string]string {
	src := d.tables[loc]
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

// Keys lists the keys defined for loc, sorted.
func (d *Dictionary) Keys(loc domain.Locale) []string {
	keys := make([]string, 0, len(d.tables[loc]))
	for k := range d.tables[loc] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Missing reports, per locale, keys that exist in another locale but not in it.
func (d *Dictionary) Missing() map[domain.Locale][]string {
	all := map[string]struct{}{}
	for _, t := range d.tables {
		for k := range t {
			all[k] = struct{}{}
		}
	}
	out := map[domain.Locale][]string{}
	for _, loc := range domain.Locales {
		for k := range all {
			if _, ok := d.tables[loc][k]; !ok {
				out[loc] = append(out[loc], k)
			}
		}
		sort.Strings(out[loc])
		if len(out[loc]) == 0 {
			delete(out, loc)
		}
	}
	return out
}
