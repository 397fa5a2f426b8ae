package usecases

import (
	"context"
	"sort"

	"github.com/cleitonmarx/symbiont/depend"

	"github.com/sukseskontraktor/rental-assistant/internal/domain"
	"github.com/sukseskontraktor/rental-assistant/internal/nlu"
	"github.com/sukseskontraktor/rental-assistant/internal/telemetry"
)

const (
	// EntitySearchLimit caps both substring and fuzzy candidate lists.
	EntitySearchLimit = 10
	// FuzzyScoreThreshold is the minimum token-set ratio for a fuzzy
	// equipment candidate.
	FuzzyScoreThreshold = 60
	// CarryoverTurnLimit bounds how far back the resolver looks for an
	// equipment mention in history.
	CarryoverTurnLimit = 5
)

// ResolveEquipment finds the equipment a free-text utterance refers to.
type ResolveEquipment interface {
	// Resolve matches the utterance against equipment names: substring
	// first, then fuzzy token-set matching. Empty result is a valid outcome.
	Resolve(ctx context.Context, query string) ([]domain.Equipment, error)
	// ResolveWithCarryover extends Resolve by re-running it over recent
	// user turns when the current utterance names no equipment.
	ResolveWithCarryover(ctx context.Context, query string, history []domain.ConversationTurn) ([]domain.Equipment, error)
}

// ResolveEquipmentImpl is the implementation of the ResolveEquipment use case.
type ResolveEquipmentImpl struct {
	equipmentRepo domain.EquipmentRepository
	scorer        domain.StringScorer
}

// NewResolveEquipmentImpl creates a new instance of ResolveEquipmentImpl.
func NewResolveEquipmentImpl(equipmentRepo domain.EquipmentRepository, scorer domain.StringScorer) ResolveEquipmentImpl {
	return ResolveEquipmentImpl{
		equipmentRepo: equipmentRepo,
		scorer:        scorer,
	}
}

// Resolve matches equipment names by substring first; a substring hit always
// wins, even when a fuzzy candidate would score higher.
func (re ResolveEquipmentImpl) Resolve(ctx context.Context, query string) ([]domain.Equipment, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	q := nlu.Normalize(query)
	if q == "" {
		return nil, nil
	}

	equipments, err := re.equipmentRepo.SearchByName(spanCtx, q, EntitySearchLimit)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	if len(equipments) > 0 {
		return equipments, nil
	}

	return re.fuzzyResolve(spanCtx, q)
}

// ResolveWithCarryover falls back to the most recent user turn that names
// equipment, scanning newest-first.
func (re ResolveEquipmentImpl) ResolveWithCarryover(ctx context.Context, query string, history []domain.ConversationTurn) ([]domain.Equipment, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	equipments, err := re.Resolve(spanCtx, query)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	if len(equipments) > 0 {
		return equipments, nil
	}

	turns := history
	if len(turns) > CarryoverTurnLimit {
		turns = turns[:CarryoverTurnLimit]
	}
	for _, turn := range turns {
		if turn.Sender != domain.SenderRole_User {
			continue
		}
		equipments, err = re.Resolve(spanCtx, turn.Message)
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		if len(equipments) > 0 {
			return equipments, nil
		}
	}
	return nil, nil
}

func (re ResolveEquipmentImpl) fuzzyResolve(ctx context.Context, query string) ([]domain.Equipment, error) {
	all, err := re.equipmentRepo.ListAll(ctx, 0)
	if err != nil {
		return nil, err
	}

	type scored struct {
		equipment domain.Equipment
		score     int
	}
	candidates := make([]scored, 0, len(all))
	for _, e := range all {
		score := re.scorer.TokenSetRatio(query, e.Name)
		if score >= FuzzyScoreThreshold {
			candidates = append(candidates, scored{equipment: e, score: score})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	if len(candidates) > EntitySearchLimit {
		candidates = candidates[:EntitySearchLimit]
	}

	equipments := make([]domain.Equipment, 0, len(candidates))
	for _, c := range candidates {
		equipments = append(equipments, c.equipment)
	}
	return equipments, nil
}

// InitResolveEquipment registers the ResolveEquipment use case in the
// dependency container.
type InitResolveEquipment struct {
	EquipmentRepo domain.EquipmentRepository `resolve:""`
	Scorer        domain.StringScorer        `resolve:""`
}

// Initialize registers the ResolveEquipment use case.
func (ire InitResolveEquipment) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ResolveEquipment](NewResolveEquipmentImpl(ire.EquipmentRepo, ire.Scorer))
	return ctx, nil
}
