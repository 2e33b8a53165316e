package services

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"outfitter/internal/models"
	"outfitter/pkg/recommender"
)

type ServiceConfig struct {
	MaxCount int
}

// OutfitService hands out outfit suggestions. It is safe for concurrent use:
// each call gets its own Recommender and draws from a shared, locked source.
type OutfitService struct {
	cfg ServiceConfig
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time

	// lookupRand only satisfies recommender.New for table reads; it is never drawn from.
	lookupRand *rand.Rand
}

func NewOutfitService(cfg ServiceConfig, rng *rand.Rand) *OutfitService {
	if cfg.MaxCount <= 0 {
		cfg.MaxCount = 1
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &OutfitService{
		cfg: cfg,
		rng: rng,
		now: time.Now,

		lookupRand: rand.New(rand.NewSource(1)),
	}
}

func (s *OutfitService) MaxCount() int {
	return s.cfg.MaxCount
}

func (s *OutfitService) Categories() []recommender.Category {
	return recommender.Categories()
}

// Suggest returns a single outfit for the event category.
func (s *OutfitService) Suggest(ctx context.Context, category recommender.Category) (*models.Suggestion, error) {
	suggestions, err := s.SuggestMany(ctx, category, 1)
	if err != nil {
		return nil, err
	}
	return suggestions[0], nil
}

// SuggestMany returns count independent outfits for the event category.
func (s *OutfitService) SuggestMany(ctx context.Context, category recommender.Category, count int) ([]*models.Suggestion, error) {
	if count < 1 || count > s.cfg.MaxCount {
		return nil, fmt.Errorf("%w: count must be between 1 and %d, got %d", recommender.ErrInvalidArgument, s.cfg.MaxCount, count)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec := recommender.New(category, recommender.WithRand(s.rng))
	suggestions := make([]*models.Suggestion, 0, count)
	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		outfit := rec.SuggestOutfit()
		if outfit.IsEmpty() {
			log.WithField("event", category.String()).Warn("recommender returned no outfit")
			return nil, fmt.Errorf("%w for event %s", models.ErrNoOutfit, category)
		}
		suggestions = append(suggestions, &models.Suggestion{
			ID:        uuid.New(),
			Event:     category.String(),
			Top:       outfit.Top,
			Bottom:    outfit.Bottom,
			CreatedAt: s.now().UTC(),
		})
	}

	log.WithFields(log.Fields{
		"event": category.String(),
		"count": len(suggestions),
	}).Debug("suggested outfits")
	return suggestions, nil
}

// Wardrobe lists the tops and bottoms available for the event category.
func (s *OutfitService) Wardrobe(category recommender.Category) models.Wardrobe {
	rec := recommender.New(category, recommender.WithRand(s.lookupRand))
	return models.Wardrobe{
		Event:   category.String(),
		Tops:    rec.PossibleTops(),
		Bottoms: rec.PossibleBottoms(),
	}
}
