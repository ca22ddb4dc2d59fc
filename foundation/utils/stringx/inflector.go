// File: inflector.go
// Title: Inflector
// Description: Singular and plural forms through irregular and uncountable
//              tables followed by an ordered rule table.
// Author: msto63
// Version: v0.3.1
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.3.0: Initial implementation
// - 2026-10-17 v0.3.1: is/es stems (axis, alias, gas), tie/pie/lie irregulars

package stringx

import (
	"regexp"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"
)

// rule rewrites a word matching pattern with replacement ($1 style groups)
type rule struct {
	pattern     *regexp.Regexp
	replacement string
}

func newRule(pattern, replacement string) rule {
	return rule{pattern: regexp.MustCompile(pattern), replacement: replacement}
}

const (
	oStems   = "buffal|domin|ech|embarg|her|mosquit|potat|tomat|volcan|torped|vet"
	onStems  = "phenomen|noumen|prolegomen|organ"
	umStems  = "bacteri|agend|desiderat|errat|strat|dat|ov|extrem|candelabr|curricul|millenni|referend|stadi|medi|memorand|aphel|perihel"
	usStems  = "alumn|bacill|cact|foc|fung|nucle|radi|stimul|syllab|termin"
	sisStems = "analy|cri|the|diagno|synop|parenthe|hypothe|empha|oa|progno"
	isStems  = "ax|test|bas"
	esStems  = "alias|atlas|bias|canvas|gas|iris|lens"
)

// pluralRules are tried in order; the first match wins.
var pluralRules = []rule{
	newRule(`^(.*)(matr|append|rad)ix$`, "${1}${2}ices"),
	newRule(`^(.*)(vert|ind|cod|vort)ex$`, "${1}${2}ices"),
	newRule(`^(.*)eau$`, "${1}eaux"),
	newRule(`^(.*[^aeiou])y$`, "${1}ies"),
	newRule(`^(.*)(al|ol|el|ea|oa|ar)f$`, "${1}${2}ves"),
	newRule(`^(.*)(wi|kni|li)fe$`, "${1}${2}ves"),
	newRule(`^(.*)(`+oStems+`)o$`, "${1}${2}oes"),
	newRule(`^(.*)(`+onStems+`)on$`, "${1}${2}a"),
	newRule(`^(.*)(`+umStems+`)um$`, "${1}${2}a"),
	newRule(`^(.*)(`+usStems+`)us$`, "${1}${2}i"),
	newRule(`^(.*)(`+sisStems+`)sis$`, "${1}${2}ses"),
	newRule(`^(.*_)?(`+isStems+`)is$`, "${1}${2}es"),
	newRule(`^(.*_)?(`+esStems+`)$`, "${1}${2}es"),
	newRule(`^(.*)(ch|sh|ss|x|z)$`, "${1}${2}es"),
	newRule(`^(.*)us$`, "${1}uses"),
	newRule(`^(.*)s$`, "${0}"),
	newRule(`^(.*)$`, "${1}s"),
}

// singularRules are tried in order; the first match wins.
var singularRules = []rule{
	newRule(`^(.*)(matr|append|rad)ices$`, "${1}${2}ix"),
	newRule(`^(.*)(vert|ind|cod|vort)ices$`, "${1}${2}ex"),
	newRule(`^(.*)eaux$`, "${1}eau"),
	newRule(`^(.*[^aeiou])ies$`, "${1}y"),
	newRule(`^(.*)(al|ol|el|ea|oa|ar)ves$`, "${1}${2}f"),
	newRule(`^(.*)(wi|kni|li)ves$`, "${1}${2}fe"),
	newRule(`^(.*)(`+oStems+`)oes$`, "${1}${2}o"),
	newRule(`^(.*)(`+onStems+`)a$`, "${1}${2}on"),
	newRule(`^(.*)(`+umStems+`)a$`, "${1}${2}um"),
	newRule(`^(.*)(`+usStems+`)i$`, "${1}${2}us"),
	newRule(`^(.*)(`+sisStems+`)ses$`, "${1}${2}sis"),
	newRule(`^(.*_)?(`+isStems+`)es$`, "${1}${2}is"),
	newRule(`^(.*_)?(`+esStems+`)es$`, "${1}${2}"),
	newRule(`^(.*_)?(`+esStems+`)$`, "${0}"),
	newRule(`^(.*)([^aeiou]ch|[aeiou]{2}ch|sh|ss|x|z)es$`, "${1}${2}"),
	newRule(`^(.*[^aeiou])uses$`, "${1}us"),
	newRule(`^(.*)(ss|us|is)$`, "${0}"),
	newRule(`^(.*)s$`, "${1}"),
}

// defaultIrregulars maps singular to plural.
var defaultIrregulars = map[string]string{
	"child":     "children",
	"foot":      "feet",
	"goose":     "geese",
	"louse":     "lice",
	"man":       "men",
	"mouse":     "mice",
	"ox":        "oxen",
	"person":    "people",
	"quiz":      "quizzes",
	"tooth":     "teeth",
	"woman":     "women",
	"criterion": "criteria",
	"thief":     "thieves",
	"chief":     "chiefs",
	"belief":    "beliefs",
	"brief":     "briefs",
	"album":     "albums",
	"area":      "areas",
	"tie":       "ties",
	"pie":       "pies",
	"lie":       "lies",
	"movie":     "movies",
	"cookie":    "cookies",
	"genus":     "genera",
	"corpus":    "corpora",
	"testis":    "testes",
}

var defaultUncountables = []string{
	"deer", "equipment", "fish", "information", "means", "money", "news",
	"offspring", "rice", "series", "sheep", "species", "police",
}

// Inflector holds the irregular tables and the compiled pipeline cache.
// It is safe for concurrent use once constructed.
type Inflector struct {
	plurals   map[string]string // singular -> plural
	singulars map[string]string // plural -> singular
	pipelines sync.Map          // signature -> []stepFunc
}

// Option configures an Inflector.
type Option func(*Inflector)

// WithIrregular registers an irregular singular/plural pair.
func WithIrregular(singular, plural string) Option {
	return func(in *Inflector) {
		s, p := strings.ToLower(singular), strings.ToLower(plural)
		if s == "" || p == "" {
			return
		}
		in.plurals[s] = p
		in.singulars[p] = s
	}
}

// WithUncountable registers words that have a single form.
func WithUncountable(words ...string) Option {
	return func(in *Inflector) {
		for _, w := range words {
			if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
				in.plurals[w] = w
				in.singulars[w] = w
			}
		}
	}
}

// NewInflector creates an inflector with the built-in tables plus opts.
func NewInflector(opts ...Option) *Inflector {
	in := &Inflector{
		plurals:   make(map[string]string, len(defaultIrregulars)+len(defaultUncountables)),
		singulars: make(map[string]string, len(defaultIrregulars)+len(defaultUncountables)),
	}
	for s, p := range defaultIrregulars {
		in.plurals[s] = p
		in.singulars[p] = s
	}
	WithUncountable(defaultUncountables...)(in)
	for _, opt := range opts {
		if opt != nil {
			opt(in)
		}
	}
	return in
}

var (
	defaultInflector   = NewInflector()
	defaultInflectorMu sync.RWMutex
)

// Default returns the inflector used by the package functions.
func Default() *Inflector {
	defaultInflectorMu.RLock()
	defer defaultInflectorMu.RUnlock()
	return defaultInflector
}

// SetDefault replaces the inflector used by the package functions.
func SetDefault(in *Inflector) {
	if in == nil {
		return
	}
	defaultInflectorMu.Lock()
	defer defaultInflectorMu.Unlock()
	defaultInflector = in
}

// Pluralize returns the plural form of s using the default inflector.
func Pluralize(s string) string {
	return Default().Pluralize(s)
}

// Singularize returns the singular form of s using the default inflector.
func Singularize(s string) string {
	return Default().Singularize(s)
}

// Pluralize returns the plural form of s. Blank input is returned unchanged.
// Example: "hanami_category" -> "hanami_categories"
func (in *Inflector) Pluralize(s string) string {
	if IsBlank(s) {
		return s
	}
	if out, ok := lookupIrregular(s, in.plurals, in.singulars); ok {
		return out
	}
	return applyRules(pluralRules, s)
}

// Singularize returns the singular form of s. Blank input is returned unchanged.
// Example: "admin_people" -> "admin_person"
func (in *Inflector) Singularize(s string) string {
	if IsBlank(s) {
		return s
	}
	if out, ok := lookupIrregular(s, in.singulars, in.plurals); ok {
		return out
	}
	return applyRules(singularRules, s)
}

// lookupIrregular resolves s against table. The key is the last underscore
// separated word when it is made of letters, otherwise the whole string.
// A word that already has the target form (a key of inverse) is returned as
// is. The case of the word's first letter carries over to the result.
func lookupIrregular(s string, table, inverse map[string]string) (string, bool) {
	prefix, word := "", s
	if i := strings.LastIndex(s, underscoreSeparator); i >= 0 && isLetters(s[i+1:]) {
		prefix, word = s[:i+1], s[i+1:]
	}
	key := strings.ToLower(word)

	if out, ok := table[key]; ok {
		first, _ := utf8.DecodeRuneInString(word)
		if unicode.IsUpper(first) {
			out = upperFirst(out)
		}
		return prefix + out, true
	}
	if _, ok := inverse[key]; ok {
		return s, true
	}
	return "", false
}

func applyRules(rules []rule, s string) string {
	for _, r := range rules {
		if m := r.pattern.FindStringSubmatchIndex(s); m != nil {
			return string(r.pattern.ExpandString(nil, r.replacement, s, m))
		}
	}
	return s
}
