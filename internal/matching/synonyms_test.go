package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandKnownTerm(t *testing.T) {
	e := NewExpander(Synonyms{"onion": {"onions", "Red Onion", "white onion"}})

	got := e.Expand("Onion")
	assert.Equal(t, []string{"onion", "onions", "red onion", "white onion"}, got)
}

func TestExpandUnknownTerm(t *testing.T) {
	e := NewExpander(DefaultSynonyms)
	assert.Equal(t, []string{"saffron"}, e.Expand("saffron"))
}

func TestExpandIsNotReverseLookup(t *testing.T) {
	e := NewExpander(Synonyms{"onion": {"shallot"}})
	assert.Equal(t, []string{"shallot"}, e.Expand("shallot"))
}

func TestExpandAllDeduplicates(t *testing.T) {
	e := NewExpander(Synonyms{
		"onion":  {"onions", "shallot"},
		"garlic": {"garlic clove"},
	})

	got := e.ExpandAll([]string{"onion", "onions", "garlic", "onion"})
	assert.Equal(t, []string{"onion", "onions", "shallot", "garlic", "garlic clove"}, got)
}

func TestNilExpander(t *testing.T) {
	var e *Expander
	assert.Equal(t, []string{"salt"}, e.Expand("salt"))
}

func TestNewExpanderCopiesTable(t *testing.T) {
	table := Synonyms{"egg": {"eggs"}}
	e := NewExpander(table)
	table["egg"] = append(table["egg"], "quail egg")

	assert.Equal(t, []string{"egg", "eggs"}, e.Expand("egg"))
}
