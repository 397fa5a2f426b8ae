package usecases

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"

	"github.com/sukseskontraktor/rental-assistant/internal/domain"
	"github.com/sukseskontraktor/rental-assistant/internal/nlu"
	"github.com/sukseskontraktor/rental-assistant/internal/telemetry"
)

const (
	// HistoryTurnLimit is how many recent turns the orchestrator reads per call.
	HistoryTurnLimit = 5
	// RosterFetchLimit caps the list-all roster.
	RosterFetchLimit = 50
	// StockReportMaxLines caps the per-line stock report before the total.
	StockReportMaxLines = 6

	latenessPartialRatioThreshold = 80
)

// latenessKeywords select the delivery-delay apology over the generic
// complaint acknowledgment.
var latenessKeywords = []string{"belum sampai", "lama", "ditunda", "kapan datang", "kapan sampai"}

// TurnCommand is one inbound user message. An empty UserID is treated as
// anonymous.
type TurnCommand struct {
	UserID  string
	Message string
}

// HandleTurn defines the interface for the dialogue orchestration use case.
type HandleTurn interface {
	// Execute runs one full dialogue turn and returns the decision.
	Execute(ctx context.Context, cmd TurnCommand) (domain.DialogueDecision, error)
}

// HandleTurnImpl is the implementation of the HandleTurn use case. It
// sequences intent resolution, history lookups, and entity resolution into a
// single deterministic decision per turn, and persists both sides of the
// exchange.
type HandleTurnImpl struct {
	resolver      nlu.IntentResolver
	listAll       nlu.ListAllDetector
	entities      ResolveEquipment
	equipmentRepo domain.EquipmentRepository
	uow           domain.UnitOfWork
	timeProvider  domain.CurrentTimeProvider
	scorer        domain.StringScorer
	replies       ReplyCatalog
	location      *time.Location
}

// NewHandleTurnImpl creates a new instance of HandleTurnImpl.
func NewHandleTurnImpl(
	resolver nlu.IntentResolver,
	listAll nlu.ListAllDetector,
	entities ResolveEquipment,
	equipmentRepo domain.EquipmentRepository,
	uow domain.UnitOfWork,
	timeProvider domain.CurrentTimeProvider,
	scorer domain.StringScorer,
	replies ReplyCatalog,
	location *time.Location,
) HandleTurnImpl {
	return HandleTurnImpl{
		resolver:      resolver,
		listAll:       listAll,
		entities:      entities,
		equipmentRepo: equipmentRepo,
		uow:           uow,
		timeProvider:  timeProvider,
		scorer:        scorer,
		replies:       replies,
		location:      location,
	}
}

// Execute runs one dialogue turn. The user message is appended before the
// history read, so the closing state and carryover always see a consistent,
// append-only record.
func (ht HandleTurnImpl) Execute(ctx context.Context, cmd TurnCommand) (domain.DialogueDecision, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	userID := cmd.UserID
	if userID == "" {
		userID = "anonymous"
	}
	text := strings.ToLower(strings.TrimSpace(cmd.Message))

	userTurn := domain.ConversationTurn{
		ID:        uuid.New(),
		UserID:    userID,
		Message:   text,
		Sender:    domain.SenderRole_User,
		CreatedAt: ht.timeProvider.Now(),
	}
	if err := userTurn.Validate(); err != nil {
		telemetry.RecordErrorAndStatus(span, err)
		return domain.DialogueDecision{}, err
	}
	if err := ht.uow.Conversation().AppendTurn(spanCtx, userTurn); err != nil {
		telemetry.RecordErrorAndStatus(span, err)
		return domain.DialogueDecision{}, err
	}

	history, err := ht.uow.Conversation().RecentHistory(spanCtx, userID, HistoryTurnLimit)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.DialogueDecision{}, err
	}

	result, err := ht.resolver.Resolve(spanCtx, text)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.DialogueDecision{}, err
	}
	meta := domain.DecisionMeta{Source: result.Source, Score: result.Score}

	if domain.DeriveDialogueState(history) == domain.DialogueState_AwaitingClosingConfirmation &&
		result.Intent == domain.Intent_ClosingConfirmation {
		return ht.finish(spanCtx, userID, domain.DialogueDecision{
			Intent: domain.Intent_FinalClosing,
			Answer: ht.replies.Farewell,
			Meta:   meta,
		})
	}

	if ht.listAll.IsListAllRequest(text) {
		decision, err := ht.fullRoster(spanCtx, meta)
		if telemetry.RecordErrorAndStatus(span, err) {
			return domain.DialogueDecision{}, err
		}
		return ht.finish(spanCtx, userID, decision)
	}

	equipments, err := ht.entities.ResolveWithCarryover(spanCtx, text, history)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.DialogueDecision{}, err
	}

	if result.Intent == domain.Intent_Unknown && len(equipments) == 0 {
		return ht.finish(spanCtx, userID, domain.DialogueDecision{
			Intent: domain.Intent_UnknownOutOfContext,
			Answer: ht.replies.OutOfContext,
			Meta:   meta,
		})
	}
	if needsEquipment(result.Intent) && len(equipments) == 0 {
		return ht.finish(spanCtx, userID, domain.DialogueDecision{
			Intent: result.Intent,
			Answer: ht.replies.NotAvailable,
			Meta:   meta,
		})
	}

	return ht.finish(spanCtx, userID, ht.dispatch(text, result.Intent, equipments, meta))
}

// needsEquipment reports whether the intent cannot be answered without a
// resolved equipment entity.
func needsEquipment(intent domain.Intent) bool {
	switch intent {
	case domain.Intent_CheckStock, domain.Intent_AskPrice, domain.Intent_PriceSewa:
		return true
	}
	return false
}

func (ht HandleTurnImpl) fullRoster(ctx context.Context, meta domain.DecisionMeta) (domain.DialogueDecision, error) {
	roster, err := ht.equipmentRepo.ListAll(ctx, RosterFetchLimit)
	if err != nil {
		return domain.DialogueDecision{}, err
	}

	answer := ht.replies.RosterEmpty
	if len(roster) > 0 {
		lines := make([]string, 0, len(roster)+1)
		lines = append(lines, ht.replies.RosterHeader)
		for _, e := range roster {
			lines = append(lines, fmt.Sprintf(ht.replies.RosterLine, e.Name, e.AvailableUnits()))
		}
		answer = strings.Join(lines, "\n")
	}

	return domain.DialogueDecision{
		Intent: domain.Intent_ListAllEquipment,
		Answer: answer,
		Meta:   meta,
	}, nil
}

func (ht HandleTurnImpl) dispatch(text string, intent domain.Intent, equipments []domain.Equipment, meta domain.DecisionMeta) domain.DialogueDecision {
	decision := domain.DialogueDecision{Intent: intent, Meta: meta}

	switch intent {
	case domain.Intent_Booking:
		name := ht.replies.BookingFallbackName
		if len(equipments) > 0 {
			name = equipments[0].Name
		}
		decision.Answer = fmt.Sprintf(ht.replies.BookingPrompt, name)
		decision.ShowOrderForm = true
		if start, ok := domain.ExtractTimeFromText(text, ht.timeProvider.Now(), ht.location); ok {
			decision.Meta.RequestedStart = &start
		}

	case domain.Intent_CheckStock:
		decision.Answer = ht.stockReport(equipments)

	case domain.Intent_AskPrice, domain.Intent_PriceSewa:
		decision.Answer = ht.priceReport(equipments)

	case domain.Intent_Complaint:
		decision.Answer = ht.replies.ComplaintGeneral
		if ht.mentionsLateness(text) {
			decision.Answer = ht.replies.ComplaintLate
		}

	case domain.Intent_Greeting:
		decision.Answer = ht.replies.Greeting

	case domain.Intent_ClosingKeyword:
		decision.Answer = ht.replies.ClosingOffer

	case domain.Intent_ClosingConfirmation:
		decision.Answer = ht.replies.Farewell

	default:
		decision.Answer = ht.replies.Clarification
	}

	return decision
}

func (ht HandleTurnImpl) stockReport(equipments []domain.Equipment) string {
	if len(equipments) == 1 {
		e := equipments[0]
		return fmt.Sprintf(ht.replies.StockSingle, e.Name, e.AvailableUnits())
	}

	listed := equipments
	if len(listed) > StockReportMaxLines {
		listed = listed[:StockReportMaxLines]
	}
	lines := make([]string, 0, len(listed)+2)
	lines = append(lines, ht.replies.StockHeader)
	for _, e := range listed {
		lines = append(lines, fmt.Sprintf(ht.replies.StockLine, e.Name, e.AvailableUnits()))
	}
	lines = append(lines, fmt.Sprintf(ht.replies.StockTotal, domain.AggregateStock(equipments)))
	return strings.Join(lines, "\n")
}

func (ht HandleTurnImpl) priceReport(equipments []domain.Equipment) string {
	lines := make([]string, 0, len(equipments)+1)
	lines = append(lines, ht.replies.PriceHeader)
	for _, e := range equipments {
		lines = append(lines, fmt.Sprintf(ht.replies.PriceLine, e.Name, formatRupiah(e.Price), e.AvailableUnits()))
	}
	return strings.Join(lines, "\n")
}

func (ht HandleTurnImpl) mentionsLateness(text string) bool {
	for _, kw := range latenessKeywords {
		if ht.scorer.PartialRatio(kw, text) >= latenessPartialRatioThreshold {
			return true
		}
	}
	return false
}

// finish appends the assistant turn and records the turn-completed outbox
// event in one transaction, then returns the decision unchanged.
func (ht HandleTurnImpl) finish(ctx context.Context, userID string, decision domain.DialogueDecision) (domain.DialogueDecision, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	aiTurn := domain.ConversationTurn{
		ID:        uuid.New(),
		UserID:    userID,
		Message:   decision.Answer,
		Sender:    domain.SenderRole_AI,
		CreatedAt: ht.timeProvider.Now(),
	}
	event := domain.DialogueTurnEvent{
		Type:      domain.EventType_DIALOGUE_TURN_COMPLETED,
		TurnID:    aiTurn.ID,
		UserID:    userID,
		Intent:    decision.Intent,
		Source:    decision.Meta.Source,
		CreatedAt: aiTurn.CreatedAt,
	}

	err := ht.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		if err := uow.Conversation().AppendTurn(spanCtx, aiTurn); err != nil {
			return err
		}
		return uow.Outbox().CreateDialogueEvent(spanCtx, event)
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.DialogueDecision{}, err
	}
	return decision, nil
}

// formatRupiah renders a price with thousands separators, matching the
// catalog's "Rp 1,500,000" style.
func formatRupiah(price float64) string {
	digits := strconv.FormatInt(int64(price), 10)

	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	return b.String()
}

// InitHandleTurn registers the HandleTurn use case in the dependency
// container.
type InitHandleTurn struct {
	Resolver      nlu.IntentResolver         `resolve:""`
	Entities      ResolveEquipment           `resolve:""`
	EquipmentRepo domain.EquipmentRepository `resolve:""`
	Uow           domain.UnitOfWork          `resolve:""`
	TimeProvider  domain.CurrentTimeProvider `resolve:""`
	Scorer        domain.StringScorer        `resolve:""`
	Timezone      string                     `config:"ASSISTANT_TIMEZONE" default:"Asia/Jakarta"`
}

// Initialize loads the reply catalog and registers the HandleTurn use case.
func (iht InitHandleTurn) Initialize(ctx context.Context) (context.Context, error) {
	location, err := time.LoadLocation(iht.Timezone)
	if err != nil {
		return ctx, fmt.Errorf("load timezone %q: %w", iht.Timezone, err)
	}

	replies, err := LoadReplyCatalog()
	if err != nil {
		return ctx, err
	}

	depend.Register[HandleTurn](NewHandleTurnImpl(
		iht.Resolver,
		nlu.NewListAllDetector(iht.Scorer),
		iht.Entities,
		iht.EquipmentRepo,
		iht.Uow,
		iht.TimeProvider,
		iht.Scorer,
		replies,
		location,
	))
	return ctx, nil
}
