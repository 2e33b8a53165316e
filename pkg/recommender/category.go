package recommender

import (
	"fmt"
	"strings"
)

// Category is the kind of event an outfit is picked for.
type Category int

const (
	Sports Category = iota
	Formal
	Casual
)

var categoryNames = map[Category]string{
	Sports: "Sports",
	Formal: "Formal",
	Casual: "Casual",
}

// Categories returns every category in declaration order.
func Categories() []Category {
	return []Category{Sports, Formal, Casual}
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// ParseCategory matches s against the category names, ignoring case and
// surrounding whitespace.
func ParseCategory(s string) (Category, error) {
	trimmed := strings.TrimSpace(s)
	for _, c := range Categories() {
		if strings.EqualFold(trimmed, categoryNames[c]) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}
