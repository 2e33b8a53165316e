package recommender

import (
	"fmt"
	"math/rand"
	"time"
)

// Outfit is a top paired with a bottom. The zero value is the "no outfit"
// sentinel returned when a category has nothing to pick from.
type Outfit struct {
	Top    string
	Bottom string
}

// IsEmpty reports whether o is the sentinel outfit.
func (o Outfit) IsEmpty() bool {
	return o.Top == "" && o.Bottom == ""
}

// Recommender picks outfits for its current category from fixed tables.
// It is not safe for concurrent use.
type Recommender struct {
	category Category
	tops     map[Category][]string
	bottoms  map[Category][]string
	rng      *rand.Rand
}

// Option configures a Recommender.
type Option func(*Recommender)

// WithRand sets the random source used for picks.
func WithRand(rng *rand.Rand) Option {
	return func(r *Recommender) {
		if rng != nil {
			r.rng = rng
		}
	}
}

// New returns a Recommender for category with the built-in wardrobe.
func New(category Category, opts ...Option) *Recommender {
	r := &Recommender{
		category: category,
		tops: map[Category][]string{
			Sports: {"Tank Top", "Jersey"},
			Formal: {"Vest", "Blouse"},
			Casual: {"T-Shirt", "Long Sleeve Shirt"},
		},
		bottoms: map[Category][]string{
			Sports: {"Soccer Shorts", "Tennis Skirt"},
			Formal: {"Long Pants", "Pencil Skirt"},
			Casual: {"Jeans", "Mini Skirt"},
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.rng == nil {
		r.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return r
}

func (r *Recommender) Category() Category {
	return r.category
}

// SetCategory switches the category used by later lookups.
func (r *Recommender) SetCategory(c Category) {
	r.category = c
}

// PossibleTops returns a copy of the tops for the current category, or an
// empty slice when the category has no entry.
func (r *Recommender) PossibleTops() []string {
	return lookup(r.tops, r.category)
}

// PossibleBottoms returns a copy of the bottoms for the current category, or
// an empty slice when the category has no entry.
func (r *Recommender) PossibleBottoms() []string {
	return lookup(r.bottoms, r.category)
}

// RandomIndex returns a uniformly distributed int in [0, bound).
func (r *Recommender) RandomIndex(bound int) (int, error) {
	if bound <= 0 {
		return 0, fmt.Errorf("%w: bound must be positive, got %d", ErrInvalidArgument, bound)
	}
	return r.rng.Intn(bound), nil
}

// SuggestOutfit picks a top and a bottom independently. It returns the empty
// Outfit if either list for the current category is empty.
func (r *Recommender) SuggestOutfit() Outfit {
	top, ok := r.pick(r.tops[r.category])
	if !ok {
		return Outfit{}
	}
	bottom, ok := r.pick(r.bottoms[r.category])
	if !ok {
		return Outfit{}
	}
	return Outfit{Top: top, Bottom: bottom}
}

func (r *Recommender) pick(items []string) (string, bool) {
	i, err := r.RandomIndex(len(items))
	if err != nil {
		return "", false
	}
	return items[i], true
}

func lookup(table map[Category][]string, c Category) []string {
	items, ok := table[c]
	if !ok {
		return []string{}
	}
	out := make([]string, len(items))
	copy(out, items)
	return out
}
