package gacha

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/hieuluvjingliu/GardenBredN/internal/classweights"
	"github.com/hieuluvjingliu/GardenBredN/internal/domain"
	"github.com/hieuluvjingliu/GardenBredN/internal/event"
	"github.com/hieuluvjingliu/GardenBredN/internal/logger"
	"github.com/hieuluvjingliu/GardenBredN/internal/metrics"
	"github.com/hieuluvjingliu/GardenBredN/internal/mutation"
	"github.com/hieuluvjingliu/GardenBredN/internal/repository"
)

// FreshQueueSize is the queue length generated on profile creation and on a
// rainbow fresh start.
const FreshQueueSize = 32

// Value scaling for seed rewards, multiplied by the 1-based pull index.
const (
	rainbowValuePerPull = 100_000
	seedValuePerPull    = 10_000
	coinRewardMax       = 1_000_000
)

// rewardRates is the fixed independent reward-type distribution, drawn by
// cumulative subtraction over a uniform value. This is deliberately a
// different probability system from the mutation tier ladder.
var rewardRates = []struct {
	rewardType  string
	probability float64
}{
	{domain.RewardCoins, 0.30},
	{domain.RewardSeedPlanted, 0.30},
	{domain.RewardSeedMature, 0.30},
	{domain.RewardSeedRedGold, 0.09},
	{domain.RewardSeedRainbow, 0.01},
}

// TableSource yields the current class weight table used for queue draws.
type TableSource interface {
	Table() *classweights.Table
}

// Service defines the gacha queue engine business logic
type Service interface {
	// GetState returns the caller's gacha snapshot: counters, the current
	// requirement, an upcoming preview, and mature seed counts by class.
	GetState(ctx context.Context, playerID uuid.UUID) (*domain.GachaState, error)

	// Roll consumes the current step's mature seeds and resolves one reward.
	Roll(ctx context.Context, playerID uuid.UUID) (*domain.RollResult, error)

	// History returns the most recent roll records, newest first.
	History(ctx context.Context, playerID uuid.UUID, limit int) ([]domain.RollRecord, error)
}

type service struct {
	repo      repository.Gacha
	invRepo   repository.Inventory
	catalog   repository.Catalog
	weights   TableSource
	roller    *mutation.Roller
	bus       event.Bus
	lookahead int
	preview   int
	rnd       func() float64
	rndInt    func(n int64) int64
	now       func() time.Time
}

// NewService creates a new gacha service
func NewService(
	repo repository.Gacha,
	invRepo repository.Inventory,
	catalog repository.Catalog,
	weights TableSource,
	roller *mutation.Roller,
	bus event.Bus,
	lookahead, preview int,
) Service {
	return &service{
		repo:      repo,
		invRepo:   invRepo,
		catalog:   catalog,
		weights:   weights,
		roller:    roller,
		bus:       bus,
		lookahead: lookahead,
		preview:   preview,
		rnd:       rand.Float64,
		rndInt:    rand.Int63n,
		now:       time.Now,
	}
}

// freshQueue draws a full run of queue entries from the weight table.
func (s *service) freshQueue(size int) []string {
	table := s.weights.Table()
	queue := make([]string, size)
	for i := range queue {
		queue[i] = table.Draw(s.rnd())
	}
	return queue
}

// extendQueue appends entries until the queue covers step + lookahead.
// Reports whether the queue actually grew.
func (s *service) extendQueue(profile *domain.GachaProfile) bool {
	need := profile.Step + s.lookahead
	if len(profile.Queue) >= need {
		return false
	}
	table := s.weights.Table()
	for len(profile.Queue) < need {
		profile.Queue = append(profile.Queue, table.Draw(s.rnd()))
	}
	return true
}

// ensureProfile loads a profile, creating one with a fresh queue on first use.
func (s *service) ensureProfile(ctx context.Context, playerID uuid.UUID) (*domain.GachaProfile, error) {
	profile, err := s.repo.GetProfile(ctx, playerID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, domain.ErrPlayerNotFound) {
		return nil, fmt.Errorf("failed to get gacha profile: %w", err)
	}

	profile, err = s.repo.CreateProfile(ctx, playerID, s.freshQueue(FreshQueueSize))
	if err != nil {
		return nil, fmt.Errorf("failed to create gacha profile: %w", err)
	}
	return profile, nil
}

func (s *service) requirements(profile *domain.GachaProfile) (current domain.Requirement, upcoming []domain.Requirement) {
	current = domain.Requirement{
		Class: profile.Queue[profile.Step],
		Cost:  domain.StepCost(profile.Step),
	}
	for i := 1; i <= s.preview; i++ {
		idx := profile.Step + i
		if idx >= len(profile.Queue) {
			break
		}
		upcoming = append(upcoming, domain.Requirement{
			Class: profile.Queue[idx],
			Cost:  domain.StepCost(idx),
		})
	}
	return current, upcoming
}

func (s *service) GetState(ctx context.Context, playerID uuid.UUID) (*domain.GachaState, error) {
	profile, err := s.ensureProfile(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if s.extendQueue(profile) {
		if err := s.repo.SaveQueue(ctx, playerID, profile.Queue); err != nil {
			return nil, fmt.Errorf("failed to persist extended queue: %w", err)
		}
	}

	counts, err := s.invRepo.CountMatureSeedsByClass(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count mature seeds: %w", err)
	}

	current, upcoming := s.requirements(profile)
	return &domain.GachaState{
		TotalPulls:  profile.TotalPulls,
		Pity10:      profile.Pity10,
		Pity90:      profile.Pity90,
		Step:        profile.Step,
		Current:     current,
		Upcoming:    upcoming,
		MatureSeeds: counts,
	}, nil
}

// drawRewardType picks a reward type by cumulative subtraction.
func drawRewardType(roll float64) string {
	target := roll
	for _, r := range rewardRates {
		target -= r.probability
		if target < 0 {
			return r.rewardType
		}
	}
	return rewardRates[len(rewardRates)-1].rewardType
}

// resolveMutation turns a reward type and post-increment pity counters into
// the reward's mutation and the counters to persist. The reward TYPE draw and
// the pity-governed tier draw stay independent: pity only shapes the tier on
// the plain seed rewards, while forced red/gold/rainbow reward types reset
// counters the same way a naturally rolled tier would.
func (s *service) resolveMutation(rewardType string, pity10, pity90 int) (tier string, outPity10, outPity90 int) {
	switch rewardType {
	case domain.RewardSeedRainbow:
		return domain.TierRainbow, 0, 0
	case domain.RewardSeedRedGold:
		tier = domain.TierRed
		if s.rnd() < 0.5 {
			tier = domain.TierGold
		}
		return tier, 0, pity90
	case domain.RewardSeedPlanted, domain.RewardSeedMature:
		return s.roller.Forced(pity10, pity90)
	default:
		return "", pity10, pity90
	}
}

func (s *service) Roll(ctx context.Context, playerID uuid.UUID) (*domain.RollResult, error) {
	log := logger.FromContext(ctx)

	if _, err := s.ensureProfile(ctx, playerID); err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	profile, err := tx.GetProfileForUpdate(ctx, playerID)
	if err != nil {
		return nil, err
	}
	s.extendQueue(profile)

	class := profile.Queue[profile.Step]
	cost := domain.StepCost(profile.Step)

	available, err := tx.CountMatureSeeds(ctx, playerID, class)
	if err != nil {
		return nil, fmt.Errorf("failed to count mature seeds: %w", err)
	}
	if available < cost {
		return nil, &domain.InsufficientMaterialsError{Class: class, Required: cost, Available: available}
	}

	ids, err := tx.SelectMatureSeedIDs(ctx, playerID, class, cost)
	if err != nil {
		return nil, fmt.Errorf("failed to select seeds: %w", err)
	}
	if len(ids) < cost {
		metrics.GachaConflicts.Inc()
		return nil, domain.ErrConflict
	}
	deleted, err := tx.DeleteSeeds(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to consume seeds: %w", err)
	}
	if deleted != cost {
		// The exact ids we selected were consumed by a concurrent roll.
		metrics.GachaConflicts.Inc()
		return nil, domain.ErrConflict
	}

	pull := profile.TotalPulls + 1
	pity10 := profile.Pity10 + 1
	pity90 := profile.Pity90 + 1

	rewardType := drawRewardType(s.rnd())
	tier, pity10, pity90 := s.resolveMutation(rewardType, pity10, pity90)

	result := &domain.RollResult{
		PullIndex:  pull,
		RewardType: rewardType,
		Mutation:   tier,
		Consumed:   cost,
	}

	switch rewardType {
	case domain.RewardCoins:
		amount := s.rndInt(coinRewardMax) + 1
		player, err := tx.GetPlayerForUpdate(ctx, playerID)
		if err != nil {
			return nil, err
		}
		if err := tx.UpdatePlayerCoins(ctx, playerID, player.Coins+amount); err != nil {
			return nil, fmt.Errorf("failed to credit coins: %w", err)
		}
		result.Value = amount

	default:
		seed, err := s.buildRewardSeed(ctx, playerID, rewardType, tier, pull)
		if err != nil {
			return nil, err
		}
		if err := tx.InsertSeed(ctx, *seed); err != nil {
			return nil, fmt.Errorf("failed to issue seed: %w", err)
		}
		result.Class = seed.Class
		result.Value = int64(seed.BasePrice)
		result.Seed = seed
	}

	// Rainbow from any path is the fresh-start reward: step back to zero and
	// a regenerated queue.
	if tier == domain.TierRainbow {
		result.FreshStart = true
		profile.Step = 0
		profile.Queue = s.freshQueue(FreshQueueSize)
	} else {
		profile.Step++
	}
	s.extendQueue(profile)

	profile.TotalPulls = pull
	profile.Pity10 = pity10
	profile.Pity90 = pity90
	profile.UpdatedAt = s.now()
	if err := tx.SaveProfile(ctx, *profile); err != nil {
		return nil, fmt.Errorf("failed to save gacha profile: %w", err)
	}

	record := domain.RollRecord{
		ID:         uuid.New(),
		PlayerID:   playerID,
		PullIndex:  pull,
		RewardType: rewardType,
		Class:      result.Class,
		Mutation:   tier,
		Value:      result.Value,
		CreatedAt:  s.now(),
	}
	if err := tx.InsertRollRecord(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to record roll: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	result.NextStep = profile.Step
	metrics.GachaRolls.WithLabelValues(rewardType).Inc()
	if s.bus != nil {
		if err := s.bus.Publish(ctx, event.NewGachaRolledEvent(
			playerID.String(), int64(pull), rewardType, result.Class, tier,
			result.Value, result.FreshStart)); err != nil {
			log.Warn("Event publish failed", "type", event.GachaRolled, "error", err)
		}
	}
	log.Info("Gacha rolled", "playerID", playerID, "pull", pull,
		"rewardType", rewardType, "mutation", tier, "freshStart", result.FreshStart)

	if state, err := s.GetState(ctx, playerID); err == nil {
		result.State = state
	} else {
		log.Warn("Failed to compute post-roll state", "error", err)
	}
	return result, nil
}

// buildRewardSeed constructs the reward seed for the seed-bearing reward
// types. The class always comes from a fresh weight-table draw, independent
// of the queue entry just consumed.
func (s *service) buildRewardSeed(ctx context.Context, playerID uuid.UUID, rewardType, tier string, pull int) (*domain.Seed, error) {
	class := s.weights.Table().Draw(s.rnd())
	seed := &domain.Seed{
		ID:       uuid.New(),
		PlayerID: playerID,
		Class:    class,
		Mutation: tier,
	}

	switch rewardType {
	case domain.RewardSeedPlanted:
		price, err := s.catalog.GetPrice(ctx, class)
		if err != nil {
			if !errors.Is(err, domain.ErrClassNotFound) {
				return nil, fmt.Errorf("failed to resolve class price: %w", err)
			}
			price = domain.BaseClassPrice
		}
		seed.BasePrice = price

	case domain.RewardSeedRainbow:
		seed.IsMature = true
		seed.BasePrice = pull * rainbowValuePerPull

	default: // plain mature and red/gold
		seed.IsMature = true
		seed.BasePrice = pull * seedValuePerPull
	}
	return seed, nil
}

func (s *service) History(ctx context.Context, playerID uuid.UUID, limit int) ([]domain.RollRecord, error) {
	records, err := s.repo.ListRolls(ctx, playerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list rolls: %w", err)
	}
	return records, nil
}
