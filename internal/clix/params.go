package clix

import (
	"fmt"

	"github.com/spf13/pflag"

	"outfitter/pkg/recommender"
)

// ParseEvent resolves the event category from the first positional argument,
// then the --event flag, then fallback.
func ParseEvent(flags *pflag.FlagSet, args []string, fallback recommender.Category) (recommender.Category, error) {
	if len(args) > 0 {
		return recommender.ParseCategory(args[0])
	}
	if flags.Changed("event") {
		name, err := flags.GetString("event")
		if err != nil {
			return 0, err
		}
		return recommender.ParseCategory(name)
	}
	return fallback, nil
}

// ParseCount reads --count and checks it against [1, max].
func ParseCount(flags *pflag.FlagSet, max int) (int, error) {
	count, err := flags.GetInt("count")
	if err != nil {
		return 0, err
	}
	if count < 1 || count > max {
		return 0, fmt.Errorf("%w: --count must be between 1 and %d, got %d", recommender.ErrInvalidArgument, max, count)
	}
	return count, nil
}
