package lang

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/arthur-debert/assetgen/pkg/errors"
)

// DefaultCollation is the language used to order keys when none is set
const DefaultCollation = "en"

// Sorter orders translation keys with locale-aware collation
type Sorter struct {
	tag language.Tag
}

// NewSorter creates a sorter for a BCP 47 language tag
func NewSorter(collation string) (*Sorter, error) {
	if collation == "" {
		collation = DefaultCollation
	}
	tag, err := language.Parse(collation)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid collation language %q", collation).
			WithDetail("collation", collation)
	}
	return &Sorter{tag: tag}, nil
}

// Sort returns a sorted copy of keys
func (s *Sorter) Sort(keys []string) []string {
	out := make([]string, len(keys))
	copy(out, keys)
	// collate.Collator keeps scratch buffers, so one per call
	collate.New(s.tag).SortStrings(out)
	return out
}
