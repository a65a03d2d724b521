package matching

import (
	"iter"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// unitWords are measurement and size words stripped from ingredient lines.
var unitWords = []string{
	"g", "kg", "ml", "l", "oz", "lb", "tbsp", "tsp", "cup", "cups",
	"pinch", "handful", "clove", "large", "medium", "small", "can", "cans",
}

var (
	parentheticalRe = regexp.MustCompile(`\([^()]*\)`)
	quantityRe      = regexp.MustCompile(`\p{N}+(?:[./⁄-]\p{N}+)*`)
	unitRe          = regexp.MustCompile(`\b(?:` + strings.Join(unitWords, "|") + `)\b`)
)

// foldDiacritics maps "jalapeño" to "jalapeno". The chain is stateful, so a
// fresh one is built per call.
func foldDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Normalize reduces a raw ingredient line such as "2 tbsp garlic cloves, minced"
// to a comparable token ("garlic cloves"). Lines that reduce to nothing, like
// "2 cups", yield "" and are treated as unmatchable.
func Normalize(raw string) string {
	s := foldDiacritics(strings.ToLower(raw))

	// nested asides are peeled from the inside out
	for {
		stripped := parentheticalRe.ReplaceAllString(s, " ")
		if stripped == s {
			break
		}
		s = stripped
	}

	if i := strings.IndexByte(s, ','); i >= 0 {
		s = s[:i]
	}

	s = quantityRe.ReplaceAllString(s, " ")
	s = unitRe.ReplaceAllString(s, " ")

	s = strings.Join(strings.Fields(s), " ")
	return strings.Trim(s, " .-/")
}

// NormalizeAll lazily yields the normalized token of every line, skipping
// lines that normalize to "".
func NormalizeAll(lines []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, line := range lines {
			token := Normalize(line)
			if token == "" {
				continue
			}
			if !yield(token) {
				return
			}
		}
	}
}

// normalizeTerm prepares a user-supplied available ingredient. Only case,
// accents and surrounding whitespace are touched: users type names, not lines.
func normalizeTerm(term string) string {
	return strings.Join(strings.Fields(foldDiacritics(strings.ToLower(term))), " ")
}
