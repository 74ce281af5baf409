// Package generator builds typing text sequences.
package generator

import (
	"math/rand"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/verte-zerg/slowtype/internal/model"
)

var wordCountByDuration = map[int]int{
	10:  80,
	15:  120,
	25:  200,
	30:  250,
	50:  400,
	60:  500,
	100: 800,
	120: 1000,
}

// Options controls text generation for one session.
type Options struct {
	Mode       model.Mode
	Lang       model.Language
	Duration   int
	Levels     []model.Level
	ExtraWords []string
	CapsPct    float64
	PunctPct   float64
	PunctSet   []rune
}

// Generator produces randomized typing text.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewWithSeed(time.Now().UnixNano())
}

// NewWithSeed returns a deterministic Generator.
func NewWithSeed(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Text builds the target text for a session.
func (g *Generator) Text(opts Options) string {
	if opts.Mode == model.ModeQuotes {
		return g.Quote(opts.Lang)
	}
	pool := Pool(opts.Lang, opts.Levels, opts.ExtraWords)
	words := g.Generate(pool, WordCount(opts.Duration), opts.CapsPct, opts.PunctPct, opts.PunctSet)
	return strings.Join(words, " ")
}

// Quote returns a random built-in quote for the language.
func (g *Generator) Quote(lang model.Language) string {
	quotes, ok := builtinQuotes[lang]
	if !ok {
		quotes = builtinQuotes[model.LangEnglish]
	}
	return quotes[g.rnd.Intn(len(quotes))]
}

// Generate selects words uniformly and applies caps/punctuation rules.
func (g *Generator) Generate(words []string, count int, capsPct, punctPct float64, punctSet []rune) []string {
	if len(words) == 0 || count <= 0 {
		return nil
	}
	result := make([]string, 0, count)
	for i := 0; i < count; i++ {
		word := words[g.rnd.Intn(len(words))]
		word = applyCaps(g.rnd, word, capsPct)
		word = applyPunct(g.rnd, word, punctPct, punctSet)
		result = append(result, word)
	}
	return result
}

// WordCount returns how many words a words-mode text needs for a duration.
func WordCount(duration int) int {
	if n, ok := wordCountByDuration[duration]; ok {
		return n
	}
	if n := duration * 8; n > 80 {
		return n
	}
	return 80
}

// Pool returns the built-in words for the selected levels plus extra words.
// An empty level selection, or one that matches no words, uses every level.
func Pool(lang model.Language, levels []model.Level, extra []string) []string {
	words, ok := builtinWords[lang]
	if !ok {
		words = builtinWords[model.LangEnglish]
	}
	want := make(map[model.Level]bool, len(levels))
	for _, l := range levels {
		want[l] = true
	}
	pool := make([]string, 0, len(words)+len(extra))
	if len(want) > 0 {
		for _, w := range words {
			if want[LevelOf(lang, w)] {
				pool = append(pool, w)
			}
		}
	}
	if len(pool) == 0 {
		pool = append(pool, words...)
	}
	return append(pool, extra...)
}

// LevelOf assigns a difficulty level from the word's length.
func LevelOf(lang model.Language, word string) model.Level {
	n := utf8.RuneCountInString(word)
	easyMax, mediumMax := 3, 5
	if lang == model.LangThai {
		easyMax, mediumMax = 2, 4
	}
	switch {
	case n <= easyMax:
		return model.LevelEasy
	case n <= mediumMax:
		return model.LevelMedium
	default:
		return model.LevelHard
	}
}

func applyCaps(rnd *rand.Rand, word string, capsPct float64) string {
	if capsPct <= 0 {
		return word
	}
	if rnd.Float64() > capsPct {
		return word
	}
	runes := []rune(word)
	if len(runes) == 0 {
		return word
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func applyPunct(rnd *rand.Rand, word string, punctPct float64, punctSet []rune) string {
	if punctPct <= 0 || len(punctSet) == 0 {
		return word
	}
	if rnd.Float64() > punctPct {
		return word
	}
	punct := punctSet[rnd.Intn(len(punctSet))]
	return word + string(punct)
}

// Source yields fresh texts for fixed options.
type Source struct {
	gen  *Generator
	opts Options
}

// Source binds options to the generator.
func (g *Generator) Source(opts Options) *Source {
	return &Source{gen: g, opts: opts}
}

// NextText returns a newly generated text.
func (s *Source) NextText() string {
	return s.gen.Text(s.opts)
}
