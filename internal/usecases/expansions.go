package usecases

import (
	_ "embed"
	"strings"

	yaml "go.yaml.in/yaml/v3"
)

//go:embed expansions.yaml
var expansionsYAML []byte

// expansionTable maps style tags and occasion words to richer phrases so
// short inputs like "party" embed closer to the corpus vocabulary.
type expansionTable struct {
	Occasions map[string]string `yaml:"occasions"`
	Styles    map[string]string `yaml:"styles"`
}

var expansions = mustLoadExpansions()

func mustLoadExpansions() expansionTable {
	var t expansionTable
	if err := yaml.Unmarshal(expansionsYAML, &t); err != nil {
		panic(err)
	}
	return t
}

// expandWords replaces every word of input that has an entry in table with
// its expansion, leaving unknown words untouched.
func expandWords(input string, table map[string]string) string {
	words := strings.Fields(input)
	for i, w := range words {
		if phrase, ok := table[strings.ToLower(strings.Trim(w, ",.!?"))]; ok {
			words[i] = phrase
		}
	}
	return strings.Join(words, " ")
}

// styleQueryText turns style tags into a descriptive phrase for embedding.
func styleQueryText(styles []string) string {
	cleaned := make([]string, 0, len(styles))
	for _, s := range styles {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		cleaned = append(cleaned, expandWords(s, expansions.Styles))
	}
	if len(cleaned) == 0 {
		return ""
	}
	return strings.Join(cleaned, ", ") + " cocktail"
}

// occasionQueryText expands an occasion phrase for embedding.
func occasionQueryText(occasion string) string {
	occasion = strings.ToLower(strings.TrimSpace(occasion))
	if occasion == "" {
		return ""
	}
	return "cocktail for " + expandWords(occasion, expansions.Occasions)
}

// alcoholicQueryText turns an alcoholic preference into a query phrase. It
// only feeds the embedding when no other signal composed any text, since the
// preference is otherwise already applied as an exact filter.
func alcoholicQueryText(alcoholic *string) string {
	if alcoholic == nil {
		return ""
	}
	pref := strings.ToLower(strings.TrimSpace(*alcoholic))
	if pref == "" {
		return ""
	}
	return pref + " cocktail"
}

// ingredientsQueryText joins ingredient names into the embedded query text.
func ingredientsQueryText(ingredients []string) string {
	cleaned := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		ing = strings.ToLower(strings.TrimSpace(ing))
		if ing == "" {
			continue
		}
		cleaned = append(cleaned, ing)
	}
	if len(cleaned) == 0 {
		return ""
	}
	return "cocktail with " + strings.Join(cleaned, ", ")
}
