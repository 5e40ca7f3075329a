package glossary

import (
	"context"
	"log"
)

// Store is the read boundary to the persistent glossary. Implementations
// return a snapshot mapping of lowercase term to explanation.
type Store interface {
	Terms(ctx context.Context) (map[string]string, error)
}

// Merged returns the built-in defaults overlaid with the store's entries;
// on key collision the store wins. A nil store yields the defaults alone,
// and a store error degrades to the defaults rather than failing the
// caller's annotation.
func Merged(ctx context.Context, store Store) map[string]string {
	terms := DefaultTerms()
	if store == nil {
		return terms
	}

	stored, err := store.Terms(ctx)
	if err != nil {
		log.Printf("glossary: falling back to built-in terms: %v", err)
		return terms
	}
	for term, explanation := range stored {
		terms[term] = explanation
	}
	return terms
}
