// Package samples maps named writing systems to their character pools.
package samples

import (
	"sort"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/verte-zerg/glyphpass/internal/pool"
)

// Samples maps a script identifier to its pool. Entries are never empty.
type Samples map[string]pool.Pool

type script struct {
	name   string
	code   string
	label  string
	blocks []pool.Block
	keep   pool.FilterFunc
}

var scripts = []script{
	// Western.
	{
		name:   "Latin",
		code:   "Latn",
		label:  "Latin (English, Spanish, French, etc.)",
		// A through z inclusive, letters only.
		blocks: block('A', 'z'+1),
		keep:   unicode.IsLetter,
	},
	{name: "Latin_Extended", code: "Latn", label: "Extended Latin (European languages)", blocks: block(0x00C0, 0x024F)},
	{name: "Greek", code: "Grek", label: "Greek", blocks: block(0x0370, 0x03FF)},
	{name: "Cyrillic", code: "Cyrl", label: "Cyrillic (Russian, Bulgarian, etc.)", blocks: block(0x0400, 0x04FF)},

	// Middle Eastern and African.
	{name: "Hebrew", code: "Hebr", label: "Hebrew", blocks: block(0x0590, 0x05FF)},
	{name: "Arabic", code: "Arab", label: "Arabic", blocks: block(0x0600, 0x06FF)},
	{name: "Ethiopic", code: "Ethi", label: "Ethiopic", blocks: block(0x1200, 0x137F)},

	// South and Southeast Asian.
	{name: "Devanagari", code: "Deva", label: "Devanagari (Hindi, Sanskrit)", blocks: block(0x0900, 0x097F)},
	{name: "Bengali", code: "Beng", label: "Bengali", blocks: block(0x0980, 0x09FF)},
	{name: "Tamil", code: "Taml", label: "Tamil", blocks: block(0x0B80, 0x0BFF)},
	{name: "Thai", code: "Thai", label: "Thai", blocks: block(0x0E00, 0x0E7F)},

	// East Asian.
	{name: "Hiragana", code: "Hira", label: "Japanese Hiragana", blocks: block(0x3040, 0x309F)},
	{name: "Katakana", code: "Kana", label: "Japanese Katakana", blocks: block(0x30A0, 0x30FF)},
	{name: "Hangul", code: "Hang", label: "Korean Hangul", blocks: block(0xAC00, 0xAD00)},
	{name: "CJK", code: "Hani", label: "Chinese/Japanese/Korean Ideographs", blocks: block(0x4E00, 0x4F00)},
}

func block(lo, hi rune) []pool.Block {
	return []pool.Block{{Lo: lo, Hi: hi}}
}

// Build enumerates every known script and keeps its eligible code points.
// Scripts whose pool comes out empty are left out.
func Build() Samples {
	out := make(Samples, len(scripts))
	for _, s := range scripts {
		p := pool.FromRanges(s.blocks...)
		if s.keep != nil {
			filtered := p[:0]
			for _, r := range p {
				if s.keep(r) {
					filtered = append(filtered, r)
				}
			}
			p = filtered
		}
		if len(p) == 0 {
			continue
		}
		out[s.name] = p
	}
	return out
}

// Names returns the script identifiers in sorted order.
func (s Samples) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TotalSize returns the combined size of every script pool.
func (s Samples) TotalSize() int {
	total := 0
	for _, p := range s {
		total += len(p)
	}
	return total
}

// KnownNames returns every script identifier Build considers, in declaration
// order.
func KnownNames() []string {
	names := make([]string, 0, len(scripts))
	for _, s := range scripts {
		names = append(names, s.name)
	}
	return names
}

// DisplayName returns a descriptive label for a script identifier. Unknown
// identifiers are returned unchanged.
func DisplayName(name string) string {
	if s, ok := lookup(name); ok {
		return s.label
	}
	return name
}

// ScriptCode returns the ISO 15924 code for a script identifier.
func ScriptCode(name string) (language.Script, bool) {
	s, ok := lookup(name)
	if !ok {
		return language.Script{}, false
	}
	code, err := language.ParseScript(s.code)
	if err != nil {
		return language.Script{}, false
	}
	return code, true
}

// ISOName returns the English ISO 15924 name for a script identifier, or an
// empty string when unknown.
func ISOName(name string) string {
	code, ok := ScriptCode(name)
	if !ok {
		return ""
	}
	return display.English.Scripts().Name(code)
}

func lookup(name string) (script, bool) {
	for _, s := range scripts {
		if s.name == name {
			return s, true
		}
	}
	return script{}, false
}
