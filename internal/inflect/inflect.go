// Package inflect models the external inflector capability autocomplete
// depends on: given a lemma, return every inflected surface form a user
// might actually type. Modeled as an injected interface rather than a
// module-level table, mirroring internal/lemma's treatment of the
// lemmatizer.
package inflect

// Inflector returns the set of inflected surface forms of a lemma.
type Inflector interface {
	InflectAll(term string) []string
}

// RuleBased is a small suffix-rule inflector covering the common English
// noun/verb inflections (plural, gerund, past tense, third person
// singular). It is not a linguistic analyzer — it has no notion of
// irregular forms — but it is deterministic and dependency-free, which
// is what autocomplete needs when no richer morphological analyzer is
// wired in.
type RuleBased struct{}

// NewRuleBased returns the default RuleBased Inflector.
func NewRuleBased() RuleBased {
	return RuleBased{}
}

// InflectAll returns term itself plus its regular suffix variants,
// deduplicated. The base term always comes first.
func (RuleBased) InflectAll(term string) []string {
	if term == "" {
		return nil
	}

	forms := []string{term}
	forms = append(forms, pluralForms(term)...)
	forms = append(forms, verbForms(term)...)
	return dedupPreserveOrder(forms)
}

func pluralForms(term string) []string {
	switch last := term[len(term)-1]; {
	case last == 's' || last == 'x' || last == 'z':
		return []string{term + "es"}
	case last == 'y' && len(term) > 1 && !isVowel(term[len(term)-2]):
		return []string{term[:len(term)-1] + "ies"}
	default:
		return []string{term + "s"}
	}
}

func verbForms(term string) []string {
	var forms []string
	switch last := term[len(term)-1]; {
	case last == 'e':
		forms = append(forms, term[:len(term)-1]+"ing", term+"d")
	case last == 'y' && len(term) > 1 && !isVowel(term[len(term)-2]):
		forms = append(forms, term+"ing", term[:len(term)-1]+"ied")
	default:
		forms = append(forms, term+"ing", term+"ed")
	}
	return forms
}

func isVowel(b byte) bool {
	switch b {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	default:
		return false
	}
}

func dedupPreserveOrder(forms []string) []string {
	seen := make(map[string]struct{}, len(forms))
	out := make([]string, 0, len(forms))
	for _, f := range forms {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out
}
