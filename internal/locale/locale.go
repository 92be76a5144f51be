// Package locale resolves UI string keys against embedded per-language
// tables. A missing key falls back to the raw key string, so an
// incomplete table degrades visibly instead of crashing.
package locale

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
)

//go:embed locales/*.json
var localeFS embed.FS

// DefaultLang is used when no table exists for the requested language.
const DefaultLang = "en"

var (
	mu      sync.RWMutex
	current *Table
)

// Table is one language's key→string mapping.
type Table struct {
	lang    string
	strings map[string]string
}

// Load reads the embedded table for lang, falling back to DefaultLang
// when no table for lang exists.
func Load(lang string) *Table {
	t, err := load(lang)
	if err != nil && lang != DefaultLang {
		t, err = load(DefaultLang)
	}
	if err != nil {
		// No usable table; every lookup falls back to the raw key.
		return &Table{lang: lang, strings: map[string]string{}}
	}
	return t
}

func load(lang string) (*Table, error) {
	raw, err := localeFS.ReadFile("locales/" + lang + ".json")
	if err != nil {
		return nil, err
	}
	var m map[string]string
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("locale %s: %w", lang, err)
	}
	return &Table{lang: lang, strings: m}, nil
}

// Lang returns the table's language code.
func (t *Table) Lang() string {
	return t.lang
}

// T resolves key, applying fmt placeholders when args are given. A
// missing key returns the key itself.
func (t *Table) T(key string, args ...any) string {
	s, ok := t.strings[key]
	if !ok {
		return key
	}
	if len(args) == 0 {
		return s
	}
	return fmt.Sprintf(s, args...)
}

// Detect picks the language from QUIZCAST_LANG, then the LANG environment
// variable's language prefix, then DefaultLang.
func Detect() string {
	if lang := os.Getenv("QUIZCAST_LANG"); lang != "" {
		return lang
	}
	if env := os.Getenv("LANG"); env != "" {
		lang := env
		if i := strings.IndexAny(lang, "_."); i > 0 {
			lang = lang[:i]
		}
		if lang != "" && lang != "C" && lang != "POSIX" {
			return lang
		}
	}
	return DefaultLang
}

// SetLanguage switches the package-level table.
func SetLanguage(lang string) {
	mu.Lock()
	defer mu.Unlock()
	current = Load(lang)
}

// T resolves key against the active table.
func T(key string, args ...any) string {
	mu.RLock()
	t := current
	mu.RUnlock()
	if t == nil {
		mu.Lock()
		if current == nil {
			current = Load(Detect())
		}
		t = current
		mu.Unlock()
	}
	return t.T(key, args...)
}
