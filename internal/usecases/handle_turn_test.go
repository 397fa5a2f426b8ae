package usecases_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sukseskontraktor/rental-assistant/internal/adapters/outbound/fuzzy"
	"github.com/sukseskontraktor/rental-assistant/internal/common"
	"github.com/sukseskontraktor/rental-assistant/internal/domain"
	"github.com/sukseskontraktor/rental-assistant/internal/nlu"
	"github.com/sukseskontraktor/rental-assistant/internal/usecases"
)

var turnTime = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

type stubIntentResolver struct {
	result domain.IntentResult
}

func (s stubIntentResolver) Resolve(_ context.Context, _ string) (domain.IntentResult, error) {
	return s.result, nil
}

type orchestratorFixture struct {
	repo *domain.MockEquipmentRepository
	uow  *domain.MockUnitOfWork
	ht   usecases.HandleTurnImpl
}

func newOrchestrator(t *testing.T, result domain.IntentResult, history []domain.ConversationTurn) orchestratorFixture {
	t.Helper()

	repo := domain.NewMockEquipmentRepository(t)
	uow := domain.NewMockUnitOfWork(t)
	uow.ConversationRepo.EXPECT().AppendTurn(mock.Anything, mock.Anything).Return(nil)
	uow.ConversationRepo.EXPECT().RecentHistory(mock.Anything, mock.Anything, usecases.HistoryTurnLimit).
		Return(history, nil)
	uow.OutboxRepo.EXPECT().CreateDialogueEvent(mock.Anything, mock.Anything).Return(nil)

	replies, err := usecases.LoadReplyCatalog()
	require.NoError(t, err)

	scorer := fuzzy.NewScorer()
	ht := usecases.NewHandleTurnImpl(
		stubIntentResolver{result: result},
		nlu.NewListAllDetector(scorer),
		usecases.NewResolveEquipmentImpl(repo, scorer),
		repo,
		uow,
		domain.FixedTimeProvider{Time: turnTime},
		scorer,
		replies,
		time.UTC,
	)
	return orchestratorFixture{repo: repo, uow: uow, ht: ht}
}

func TestHandleTurn_ClosingShortCircuit(t *testing.T) {
	history := []domain.ConversationTurn{
		{Sender: domain.SenderRole_User, Message: "nggak, segitu aja"},
		{Sender: domain.SenderRole_AI, Message: "Ada lagi yang bisa saya bantu?"},
		{Sender: domain.SenderRole_User, Message: "makasih"},
	}
	fx := newOrchestrator(t, domain.IntentResult{
		Intent: domain.Intent_ClosingConfirmation,
		Source: domain.IntentSource_Keyword,
	}, history)

	decision, err := fx.ht.Execute(t.Context(), usecases.TurnCommand{UserID: "u1", Message: "nggak, segitu aja"})
	require.NoError(t, err)
	assert.Equal(t, domain.Intent_FinalClosing, decision.Intent)
	assert.Equal(t, "Terima kasih sudah menggunakan layanan kami. Semoga harimu menyenangkan!", decision.Answer)
	assert.False(t, decision.ShowOrderForm)
	// Normal dispatch is bypassed entirely.
	fx.repo.AssertNotCalled(t, "SearchByName", mock.Anything, mock.Anything, mock.Anything)
	fx.repo.AssertNotCalled(t, "ListAll", mock.Anything, mock.Anything)
}

func TestHandleTurn_ClosingConfirmationWithoutOffer(t *testing.T) {
	// No prior closing offer, so "nggak" is ordinary dispatch, not farewell.
	history := []domain.ConversationTurn{
		{Sender: domain.SenderRole_AI, Message: "Excavator PC200 — stok saat ini: 3 unit."},
	}
	fx := newOrchestrator(t, domain.IntentResult{
		Intent: domain.Intent_ClosingConfirmation,
		Source: domain.IntentSource_Keyword,
	}, history)
	fx.repo.EXPECT().SearchByName(mock.Anything, mock.Anything, usecases.EntitySearchLimit).Return(nil, nil)
	fx.repo.EXPECT().ListAll(mock.Anything, 0).Return(nil, nil)

	decision, err := fx.ht.Execute(t.Context(), usecases.TurnCommand{UserID: "u1", Message: "nggak"})
	require.NoError(t, err)
	assert.Equal(t, domain.Intent_ClosingConfirmation, decision.Intent)
	assert.Equal(t, "Terima kasih sudah menggunakan layanan kami. Semoga harimu menyenangkan!", decision.Answer)
}

func TestHandleTurn_ListAllOverride(t *testing.T) {
	fx := newOrchestrator(t, domain.IntentResult{
		Intent: domain.Intent_CheckStock,
		Source: domain.IntentSource_Keyword,
	}, nil)
	fx.repo.EXPECT().ListAll(mock.Anything, usecases.RosterFetchLimit).
		Return([]domain.Equipment{
			{Name: "Buldoser B10", Stock: 2},
			{Name: "Excavator PC200", Stock: 9, AvailableStock: common.Ptr(4)},
		}, nil)

	decision, err := fx.ht.Execute(t.Context(), usecases.TurnCommand{UserID: "u1", Message: "ada alat apa aja"})
	require.NoError(t, err)
	assert.Equal(t, domain.Intent_ListAllEquipment, decision.Intent)
	assert.Contains(t, decision.Answer, "Berikut semua alat yang tersedia:")
	assert.Contains(t, decision.Answer, "Buldoser B10 — stok: 2 unit")
	assert.Contains(t, decision.Answer, "Excavator PC200 — stok: 4 unit")
	fx.repo.AssertNotCalled(t, "SearchByName", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleTurn_ListAllEmptyRoster(t *testing.T) {
	fx := newOrchestrator(t, domain.IntentResult{
		Intent: domain.Intent_Unknown,
		Source: domain.IntentSource_None,
	}, nil)
	fx.repo.EXPECT().ListAll(mock.Anything, usecases.RosterFetchLimit).Return(nil, nil)

	decision, err := fx.ht.Execute(t.Context(), usecases.TurnCommand{UserID: "u1", Message: "daftar lengkap alat"})
	require.NoError(t, err)
	assert.Equal(t, domain.Intent_ListAllEquipment, decision.Intent)
	assert.Equal(t, "Saat ini belum ada data alat yang tersedia.", decision.Answer)
}

func TestHandleTurn_OutOfContext(t *testing.T) {
	fx := newOrchestrator(t, domain.IntentResult{
		Intent: domain.Intent_Unknown,
		Source: domain.IntentSource_None,
	}, nil)
	fx.repo.EXPECT().SearchByName(mock.Anything, mock.Anything, usecases.EntitySearchLimit).Return(nil, nil)
	fx.repo.EXPECT().ListAll(mock.Anything, 0).Return(nil, nil)

	decision, err := fx.ht.Execute(t.Context(), usecases.TurnCommand{UserID: "u1", Message: "bagaimana cuaca hari rabu"})
	require.NoError(t, err)
	assert.Equal(t, domain.Intent_UnknownOutOfContext, decision.Intent)
	assert.Equal(t, "Maaf, saya tidak mengerti maksud Anda.", decision.Answer)
}

func TestHandleTurn_UnknownWithEntityClarifies(t *testing.T) {
	fx := newOrchestrator(t, domain.IntentResult{
		Intent: domain.Intent_Unknown,
		Source: domain.IntentSource_SemanticLow,
		Score:  common.Ptr(0.31),
	}, nil)
	fx.repo.EXPECT().SearchByName(mock.Anything, mock.Anything, usecases.EntitySearchLimit).
		Return([]domain.Equipment{{Name: "Crane C50"}}, nil)

	decision, err := fx.ht.Execute(t.Context(), usecases.TurnCommand{UserID: "u1", Message: "crane itu gimana ya"})
	require.NoError(t, err)
	assert.Equal(t, domain.Intent_Unknown, decision.Intent)
	assert.Equal(t, "Maaf, saya belum mengerti. Bisa jelaskan lebih detail?", decision.Answer)
}

func TestHandleTurn_StockIntentWithoutEntity(t *testing.T) {
	fx := newOrchestrator(t, domain.IntentResult{
		Intent: domain.Intent_CheckStock,
		Source: domain.IntentSource_Keyword,
	}, nil)
	fx.repo.EXPECT().SearchByName(mock.Anything, mock.Anything, usecases.EntitySearchLimit).Return(nil, nil)
	fx.repo.EXPECT().ListAll(mock.Anything, 0).Return(nil, nil)

	decision, err := fx.ht.Execute(t.Context(), usecases.TurnCommand{UserID: "u1", Message: "masih ada stok?"})
	require.NoError(t, err)
	assert.Equal(t, domain.Intent_CheckStock, decision.Intent)
	assert.Equal(t, "Mohon maaf, alat tersebut belum tersedia.", decision.Answer)
}

func TestHandleTurn_SingleStockReport(t *testing.T) {
	fx := newOrchestrator(t, domain.IntentResult{
		Intent: domain.Intent_CheckStock,
		Source: domain.IntentSource_Keyword,
	}, nil)
	fx.repo.EXPECT().SearchByName(mock.Anything, mock.Anything, usecases.EntitySearchLimit).
		Return([]domain.Equipment{{Name: "Excavator PC200", Stock: 9, AvailableStock: common.Ptr(3)}}, nil)

	decision, err := fx.ht.Execute(t.Context(), usecases.TurnCommand{UserID: "u1", Message: "stok excavator pc200"})
	require.NoError(t, err)
	assert.Equal(t, "Excavator PC200 — stok saat ini: 3 unit.", decision.Answer)
}

func TestHandleTurn_AggregatedStockReport(t *testing.T) {
	fx := newOrchestrator(t, domain.IntentResult{
		Intent: domain.Intent_CheckStock,
		Source: domain.IntentSource_Keyword,
	}, nil)
	fx.repo.EXPECT().SearchByName(mock.Anything, mock.Anything, usecases.EntitySearchLimit).
		Return([]domain.Equipment{
			{Name: "Excavator PC200", Stock: 9, AvailableStock: common.Ptr(3)},
			{Name: "Excavator PC300", Stock: 5},
		}, nil)

	decision, err := fx.ht.Execute(t.Context(), usecases.TurnCommand{UserID: "u1", Message: "stok excavator"})
	require.NoError(t, err)
	assert.Contains(t, decision.Answer, "Berikut stok yang saya temukan:")
	assert.Contains(t, decision.Answer, "Excavator PC200 — tersedia: 3 unit")
	assert.Contains(t, decision.Answer, "Excavator PC300 — tersedia: 5 unit")
	assert.Contains(t, decision.Answer, "Total (gabungan): 8 unit.")
}

func TestHandleTurn_PriceReportFormatsRupiah(t *testing.T) {
	fx := newOrchestrator(t, domain.IntentResult{
		Intent: domain.Intent_AskPrice,
		Source: domain.IntentSource_Keyword,
	}, nil)
	fx.repo.EXPECT().SearchByName(mock.Anything, mock.Anything, usecases.EntitySearchLimit).
		Return([]domain.Equipment{{Name: "Excavator PC200", Price: 1500000, Stock: 3}}, nil)

	decision, err := fx.ht.Execute(t.Context(), usecases.TurnCommand{UserID: "u1", Message: "harga excavator pc200"})
	require.NoError(t, err)
	assert.Contains(t, decision.Answer, "Harga yang saya temukan:")
	assert.Contains(t, decision.Answer, "Excavator PC200 — harga: Rp 1,500,000 / bulan — stok: 3")
}

func TestHandleTurn_BookingShowsOrderForm(t *testing.T) {
	fx := newOrchestrator(t, domain.IntentResult{
		Intent: domain.Intent_Booking,
		Source: domain.IntentSource_Keyword,
	}, nil)
	fx.repo.EXPECT().SearchByName(mock.Anything, mock.Anything, usecases.EntitySearchLimit).
		Return([]domain.Equipment{{Name: "Excavator PC200"}}, nil)

	decision, err := fx.ht.Execute(t.Context(), usecases.TurnCommand{UserID: "u1", Message: "mau booking excavator besok"})
	require.NoError(t, err)
	assert.Equal(t, domain.Intent_Booking, decision.Intent)
	assert.True(t, decision.ShowOrderForm)
	assert.Contains(t, decision.Answer, "form pemesanan untuk Excavator PC200")
	require.NotNil(t, decision.Meta.RequestedStart)
	assert.Equal(t, time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC), *decision.Meta.RequestedStart)
}

func TestHandleTurn_ComplaintTemplates(t *testing.T) {
	t.Run("lateness complaint", func(t *testing.T) {
		fx := newOrchestrator(t, domain.IntentResult{
			Intent: domain.Intent_Complaint,
			Source: domain.IntentSource_Keyword,
		}, nil)
		fx.repo.EXPECT().SearchByName(mock.Anything, mock.Anything, usecases.EntitySearchLimit).
			Return([]domain.Equipment{{Name: "Crane C50"}}, nil)

		decision, err := fx.ht.Execute(t.Context(), usecases.TurnCommand{UserID: "u1", Message: "crane saya belum sampai"})
		require.NoError(t, err)
		assert.Contains(t, decision.Answer, "keterlambatan pengiriman")
	})

	t.Run("general complaint", func(t *testing.T) {
		fx := newOrchestrator(t, domain.IntentResult{
			Intent: domain.Intent_Complaint,
			Source: domain.IntentSource_Keyword,
		}, nil)
		fx.repo.EXPECT().SearchByName(mock.Anything, mock.Anything, usecases.EntitySearchLimit).
			Return([]domain.Equipment{{Name: "Crane C50"}}, nil)

		decision, err := fx.ht.Execute(t.Context(), usecases.TurnCommand{UserID: "u1", Message: "crane c50 rusak"})
		require.NoError(t, err)
		assert.Contains(t, decision.Answer, "Tim teknis kami")
	})
}

func TestHandleTurn_EmptyMessageIsInvalid(t *testing.T) {
	repo := domain.NewMockEquipmentRepository(t)
	uow := domain.NewMockUnitOfWork(t)
	replies, err := usecases.LoadReplyCatalog()
	require.NoError(t, err)

	scorer := fuzzy.NewScorer()
	ht := usecases.NewHandleTurnImpl(
		stubIntentResolver{},
		nlu.NewListAllDetector(scorer),
		usecases.NewResolveEquipmentImpl(repo, scorer),
		repo,
		uow,
		domain.FixedTimeProvider{Time: turnTime},
		scorer,
		replies,
		time.UTC,
	)

	_, err = ht.Execute(t.Context(), usecases.TurnCommand{UserID: "u1", Message: "   "})
	var validationErr *domain.ValidationErr
	assert.ErrorAs(t, err, &validationErr)
}
