// Package catalog resolves localized message strings for the sign-in
// flow. String packs are one JSON object per locale, loaded from
// lang/<locale>/signin.json.
package catalog

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
	"golang.org/x/text/language"
)

// packFile is the per-locale string pack filename.
const packFile = "signin.json"

// Catalog holds the loaded string packs and answers key lookups with
// Accept-Language aware locale matching. Safe for concurrent use.
type Catalog struct {
	fs  afero.Fs
	dir string
	def language.Tag

	mu      sync.RWMutex
	tags    []language.Tag
	packs   map[language.Tag]map[string]string
	matcher language.Matcher
}

// New loads every locale pack under dir from the given filesystem.
// defaultLocale is the fallback when nothing else matches.
func New(fs afero.Fs, dir, defaultLocale string) (*Catalog, error) {
	def, err := language.Parse(defaultLocale)
	if err != nil {
		return nil, fmt.Errorf("invalid default locale %q: %w", defaultLocale, err)
	}

	c := &Catalog{fs: fs, dir: dir, def: def}
	if err := c.Reload(); err != nil {
		return nil, err
	}
	return c, nil
}

// Reload re-reads all string packs from disk. It swaps the loaded packs
// atomically, so concurrent Get calls always see a consistent set.
func (c *Catalog) Reload() error {
	entries, err := afero.ReadDir(c.fs, c.dir)
	if err != nil {
		return fmt.Errorf("reading lang dir %q: %w", c.dir, err)
	}

	packs := make(map[language.Tag]map[string]string)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		tag, err := language.Parse(entry.Name())
		if err != nil {
			continue // Not a locale directory.
		}

		raw, err := afero.ReadFile(c.fs, filepath.Join(c.dir, entry.Name(), packFile))
		if err != nil {
			continue // Locale directory without a pack.
		}
		strings := make(map[string]string)
		if err := json.Unmarshal(raw, &strings); err != nil {
			return fmt.Errorf("parsing %s pack: %w", entry.Name(), err)
		}
		packs[tag] = strings
	}

	if _, ok := packs[c.def]; !ok {
		return fmt.Errorf("default locale %q has no string pack under %q", c.def, c.dir)
	}

	// The default locale leads so the matcher falls back to it.
	tags := []language.Tag{c.def}
	for tag := range packs {
		if tag != c.def {
			tags = append(tags, tag)
		}
	}

	c.mu.Lock()
	c.tags = tags
	c.packs = packs
	c.matcher = language.NewMatcher(tags)
	c.mu.Unlock()
	return nil
}

// Get returns the message for key in the best-matching locale. locale is
// an Accept-Language header value and may be empty. A key missing from
// every applicable pack renders as "[[key]]" so broken references are
// visible rather than silent.
func (c *Catalog) Get(locale, key string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, index := language.MatchStrings(c.matcher, locale)
	tag := c.tags[index]

	if msg, ok := c.packs[tag][key]; ok {
		return msg
	}
	if msg, ok := c.packs[c.def][key]; ok {
		return msg
	}
	return "[[" + key + "]]"
}

// Locales lists the loaded locales, default first.
func (c *Catalog) Locales() []language.Tag {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]language.Tag, len(c.tags))
	copy(out, c.tags)
	return out
}
