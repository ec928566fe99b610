package auction

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/DomonziHUN/f1-manager/go/internal/models"
)

// fakePool serves catalog pilots from memory, honoring the exclusion list.
type fakePool struct {
	pilots []models.Pilot
	err    error
}

func (p *fakePool) PilotsByTierExcluding(_ context.Context, tier int, exclude []uuid.UUID) ([]models.Pilot, error) {
	if p.err != nil {
		return nil, p.err
	}

	excluded := make(map[uuid.UUID]struct{}, len(exclude))
	for _, id := range exclude {
		excluded[id] = struct{}{}
	}

	var out []models.Pilot
	for _, pilot := range p.pilots {
		if pilot.Tier != tier {
			continue
		}
		if _, ok := excluded[pilot.ID]; ok {
			continue
		}
		out = append(out, pilot)
	}
	return out, nil
}

func catalogPool(perTier int, baseSalary int64) *fakePool {
	pool := &fakePool{}
	for tier := 1; tier <= 5; tier++ {
		for i := 0; i < perTier; i++ {
			pool.pilots = append(pool.pilots, models.Pilot{
				ID:         uuid.New(),
				Name:       fmt.Sprintf("Tier %d Driver %d", tier, i),
				Tier:       tier,
				BaseSalary: baseSalary,
			})
		}
	}
	return pool
}

func TestSelectLotFillsWithUniquePilots(t *testing.T) {
	pool := catalogPool(10, 1_000_000)
	selector := NewSelector(pool, rand.New(rand.NewSource(1)))

	lot, err := selector.SelectLot(context.Background(), 10, 50)
	require.NoError(t, err)
	require.Len(t, lot, 10)

	seen := make(map[uuid.UUID]struct{})
	for _, pilot := range lot {
		_, dup := seen[pilot.ID]
		require.False(t, dup, "pilot %s drawn twice", pilot.Name)
		seen[pilot.ID] = struct{}{}
	}
}

func TestSelectLotUnderFillsSmallCatalog(t *testing.T) {
	// Only two pilots exist at all, both tier 3. Draws landing on other
	// tiers waste attempts and the lot comes back short.
	pool := &fakePool{pilots: []models.Pilot{
		{ID: uuid.New(), Name: "A", Tier: 3},
		{ID: uuid.New(), Name: "B", Tier: 3},
	}}
	selector := NewSelector(pool, rand.New(rand.NewSource(7)))

	lot, err := selector.SelectLot(context.Background(), 5, 50)
	require.NoError(t, err)
	require.LessOrEqual(t, len(lot), 2)

	seen := make(map[uuid.UUID]struct{})
	for _, pilot := range lot {
		_, dup := seen[pilot.ID]
		require.False(t, dup)
		seen[pilot.ID] = struct{}{}
	}
}

func TestSelectLotEmptyCatalog(t *testing.T) {
	selector := NewSelector(&fakePool{}, rand.New(rand.NewSource(1)))

	lot, err := selector.SelectLot(context.Background(), 10, 50)
	require.NoError(t, err)
	require.Empty(t, lot)
}

func TestSelectLotPropagatesPoolError(t *testing.T) {
	pool := &fakePool{err: errors.New("catalog down")}
	selector := NewSelector(pool, rand.New(rand.NewSource(1)))

	_, err := selector.SelectLot(context.Background(), 10, 50)
	require.Error(t, err)
}

func TestDrawTierStaysInRange(t *testing.T) {
	selector := NewSelector(&fakePool{}, rand.New(rand.NewSource(42)))

	seen := make(map[int]int)
	for i := 0; i < 1000; i++ {
		tier := selector.drawTier()
		require.GreaterOrEqual(t, tier, 1)
		require.LessOrEqual(t, tier, 5)
		seen[tier]++
	}

	// Mid tiers carry most of the weight; every tier shows up over 1000 draws.
	for tier := 1; tier <= 5; tier++ {
		require.Positive(t, seen[tier], "tier %d never drawn", tier)
	}
}
