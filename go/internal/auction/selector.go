package auction

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/DomonziHUN/f1-manager/go/internal/models"
)

// tierWeights is the draw distribution over pilot tiers. Mid and low tiers
// dominate so legendary drivers stay rare on the block.
var tierWeights = []struct {
	tier   int
	weight float64
}{
	{tier: 1, weight: 0.05},
	{tier: 2, weight: 0.15},
	{tier: 3, weight: 0.30},
	{tier: 4, weight: 0.35},
	{tier: 5, weight: 0.15},
}

// PilotPool is the slice of the catalog the selector draws from.
type PilotPool interface {
	PilotsByTierExcluding(ctx context.Context, tier int, exclude []uuid.UUID) ([]models.Pilot, error)
}

// Selector draws a unique lot of pilots for a new auction using weighted
// tier sampling.
type Selector struct {
	pool PilotPool
	rng  *rand.Rand
}

func NewSelector(pool PilotPool, rng *rand.Rand) *Selector {
	return &Selector{
		pool: pool,
		rng:  rng,
	}
}

// drawTier samples a tier from the weight table by cumulative sum. Falls
// back to tier 5 if the roll lands past the table.
func (s *Selector) drawTier() int {
	r := s.rng.Float64()
	cum := 0.0
	for _, tw := range tierWeights {
		cum += tw.weight
		if r <= cum {
			return tw.tier
		}
	}
	return 5
}

// SelectLot draws up to count unique pilots. A drawn tier with no remaining
// candidates wastes the attempt; after maxAttempts the lot may be short.
func (s *Selector) SelectLot(ctx context.Context, count, maxAttempts int) ([]models.Pilot, error) {
	selected := make([]models.Pilot, 0, count)
	exclude := make([]uuid.UUID, 0, count)

	for attempt := 0; attempt < maxAttempts && len(selected) < count; attempt++ {
		tier := s.drawTier()

		candidates, err := s.pool.PilotsByTierExcluding(ctx, tier, exclude)
		if err != nil {
			return nil, fmt.Errorf("failed to load tier %d candidates: %w", tier, err)
		}
		if len(candidates) == 0 {
			continue
		}

		pick := candidates[s.rng.Intn(len(candidates))]
		selected = append(selected, pick)
		exclude = append(exclude, pick.ID)
	}

	return selected, nil
}
