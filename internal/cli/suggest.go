package cli

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/studiowebux/lit/internal/profiles"
)

const maxSuggestions = 3

// suggest returns up to maxSuggestions names that fuzzily match name
func suggest(name string, names []string) []string {
	matches := fuzzy.Find(name, names)

	// fuzzy needs the query to be a subsequence; also try the reverse so
	// typos with extra characters still match shorter names
	if len(matches) == 0 {
		for _, candidate := range names {
			if len(fuzzy.Find(candidate, []string{name})) > 0 {
				matches = append(matches, fuzzy.Match{Str: candidate})
			}
		}
	}

	var result []string
	for _, m := range matches {
		if len(result) == maxSuggestions {
			break
		}
		result = append(result, m.Str)
	}
	return result
}

// notFound builds the unknown-profile error with suggestions
func notFound(name string, names []string) error {
	err := fmt.Errorf("%w: %s", profiles.ErrProfileNotFound, name)
	if hints := suggest(name, names); len(hints) > 0 {
		return fmt.Errorf("%w (did you mean %s?)", err, strings.Join(hints, ", "))
	}
	return err
}
