package matching

import "strings"

// Synonyms maps a canonical ingredient name to the aliases it is known by.
type Synonyms map[string][]string

// DefaultSynonyms is the built-in alias table used for smart matching.
var DefaultSynonyms = Synonyms{
	"onion":       {"onions", "red onion", "white onion", "yellow onion", "shallot"},
	"green onion": {"scallion", "scallions", "spring onion"},
	"garlic":      {"garlic clove", "garlic cloves", "minced garlic"},
	"tomato":      {"tomatoes", "cherry tomato", "cherry tomatoes", "roma tomato"},
	"pepper":      {"black pepper", "bell pepper", "peppercorn"},
	"bell pepper": {"capsicum", "red pepper", "green pepper"},
	"chili":       {"chilli", "chile", "chili pepper", "jalapeno"},
	"potato":      {"potatoes", "sweet potato", "russet potato"},
	"egg":         {"eggs", "egg yolk", "egg white"},
	"milk":        {"whole milk", "skim milk", "oat milk", "almond milk", "soy milk"},
	"butter":      {"unsalted butter", "salted butter", "margarine"},
	"cheese":      {"cheddar", "mozzarella", "parmesan", "feta"},
	"cream":       {"heavy cream", "double cream", "whipping cream"},
	"oil":         {"olive oil", "vegetable oil", "canola oil", "sunflower oil"},
	"flour":       {"all-purpose flour", "plain flour", "wheat flour"},
	"sugar":       {"brown sugar", "caster sugar", "granulated sugar"},
	"rice":        {"basmati rice", "jasmine rice", "brown rice"},
	"pasta":       {"spaghetti", "penne", "fusilli", "linguine", "noodles"},
	"chicken":     {"chicken breast", "chicken thigh", "chicken thighs"},
	"beef":        {"ground beef", "minced beef", "steak"},
	"cilantro":    {"coriander", "coriander leaves"},
	"chickpea":    {"chickpeas", "garbanzo", "garbanzo beans"},
	"zucchini":    {"courgette", "courgettes"},
	"eggplant":    {"aubergine", "aubergines"},
	"shrimp":      {"prawn", "prawns"},
	"stock":       {"broth", "bouillon"},
}

// Expander widens on-hand ingredient terms with their known aliases.
// It is read-only after construction and safe for concurrent use.
type Expander struct {
	table map[string][]string
}

// NewExpander copies table into an expander with lowercased keys and aliases.
func NewExpander(table Synonyms) *Expander {
	e := &Expander{table: make(map[string][]string, len(table))}
	for canonical, aliases := range table {
		key := normalizeTerm(canonical)
		for _, alias := range aliases {
			if a := normalizeTerm(alias); a != "" {
				e.table[key] = append(e.table[key], a)
			}
		}
	}
	return e
}

// Expand returns term followed by its aliases. Unknown terms expand to
// themselves only.
func (e *Expander) Expand(term string) []string {
	term = strings.ToLower(term)
	out := []string{term}
	if e == nil {
		return out
	}
	for _, alias := range e.table[term] {
		if alias != term {
			out = append(out, alias)
		}
	}
	return out
}

// ExpandAll returns the de-duplicated union of Expand over terms, keeping
// first-seen order.
func (e *Expander) ExpandAll(terms []string) []string {
	seen := make(map[string]struct{}, len(terms))
	out := make([]string, 0, len(terms))
	for _, term := range terms {
		for _, t := range e.Expand(term) {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	return out
}
