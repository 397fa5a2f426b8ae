package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// mocks.go holds hand-written testify doubles for the domain interfaces.
// They expose an EXPECT() helper so test call-sites read the same as
// generated mocks.

type mockConstructorTestingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockEquipmentRepository is a test double for EquipmentRepository.
type MockEquipmentRepository struct{ mock.Mock }

func NewMockEquipmentRepository(t mockConstructorTestingT) *MockEquipmentRepository {
	m := &MockEquipmentRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type MockEquipmentRepository_Expecter struct{ mock *mock.Mock }

func (m *MockEquipmentRepository) EXPECT() *MockEquipmentRepository_Expecter {
	return &MockEquipmentRepository_Expecter{mock: &m.Mock}
}

func (e *MockEquipmentRepository_Expecter) SearchByName(ctx, query, limit any) *mock.Call {
	return e.mock.On("SearchByName", ctx, query, limit)
}

func (e *MockEquipmentRepository_Expecter) ListAll(ctx, limit any) *mock.Call {
	return e.mock.On("ListAll", ctx, limit)
}

func (e *MockEquipmentRepository_Expecter) GetByID(ctx, id any) *mock.Call {
	return e.mock.On("GetByID", ctx, id)
}

func (m *MockEquipmentRepository) SearchByName(ctx context.Context, query string, limit int) ([]Equipment, error) {
	args := m.Called(ctx, query, limit)
	eq, _ := args.Get(0).([]Equipment)
	return eq, args.Error(1)
}

func (m *MockEquipmentRepository) ListAll(ctx context.Context, limit int) ([]Equipment, error) {
	args := m.Called(ctx, limit)
	eq, _ := args.Get(0).([]Equipment)
	return eq, args.Error(1)
}

func (m *MockEquipmentRepository) GetByID(ctx context.Context, id int64) (Equipment, bool, error) {
	args := m.Called(ctx, id)
	eq, _ := args.Get(0).(Equipment)
	return eq, args.Bool(1), args.Error(2)
}

// MockConversationRepository is a test double for ConversationRepository.
type MockConversationRepository struct{ mock.Mock }

func NewMockConversationRepository(t mockConstructorTestingT) *MockConversationRepository {
	m := &MockConversationRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type MockConversationRepository_Expecter struct{ mock *mock.Mock }

func (m *MockConversationRepository) EXPECT() *MockConversationRepository_Expecter {
	return &MockConversationRepository_Expecter{mock: &m.Mock}
}

func (e *MockConversationRepository_Expecter) AppendTurn(ctx, turn any) *mock.Call {
	return e.mock.On("AppendTurn", ctx, turn)
}

func (e *MockConversationRepository_Expecter) RecentHistory(ctx, userID, limit any) *mock.Call {
	return e.mock.On("RecentHistory", ctx, userID, limit)
}

func (m *MockConversationRepository) AppendTurn(ctx context.Context, turn ConversationTurn) error {
	return m.Called(ctx, turn).Error(0)
}

func (m *MockConversationRepository) RecentHistory(ctx context.Context, userID string, limit int) ([]ConversationTurn, error) {
	args := m.Called(ctx, userID, limit)
	turns, _ := args.Get(0).([]ConversationTurn)
	return turns, args.Error(1)
}

// MockOutboxRepository is a test double for OutboxRepository.
type MockOutboxRepository struct{ mock.Mock }

func NewMockOutboxRepository(t mockConstructorTestingT) *MockOutboxRepository {
	m := &MockOutboxRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type MockOutboxRepository_Expecter struct{ mock *mock.Mock }

func (m *MockOutboxRepository) EXPECT() *MockOutboxRepository_Expecter {
	return &MockOutboxRepository_Expecter{mock: &m.Mock}
}

func (e *MockOutboxRepository_Expecter) CreateDialogueEvent(ctx, event any) *mock.Call {
	return e.mock.On("CreateDialogueEvent", ctx, event)
}

func (e *MockOutboxRepository_Expecter) FetchPendingEvents(ctx, limit any) *mock.Call {
	return e.mock.On("FetchPendingEvents", ctx, limit)
}

func (e *MockOutboxRepository_Expecter) UpdateEvent(ctx, eventID, status, retryCount, lastError any) *mock.Call {
	return e.mock.On("UpdateEvent", ctx, eventID, status, retryCount, lastError)
}

func (e *MockOutboxRepository_Expecter) DeleteEvent(ctx, eventID any) *mock.Call {
	return e.mock.On("DeleteEvent", ctx, eventID)
}

func (m *MockOutboxRepository) CreateDialogueEvent(ctx context.Context, event DialogueTurnEvent) error {
	return m.Called(ctx, event).Error(0)
}

func (m *MockOutboxRepository) FetchPendingEvents(ctx context.Context, limit int) ([]OutboxEvent, error) {
	args := m.Called(ctx, limit)
	events, _ := args.Get(0).([]OutboxEvent)
	return events, args.Error(1)
}

func (m *MockOutboxRepository) UpdateEvent(ctx context.Context, eventID uuid.UUID, status OutboxStatus, retryCount int, lastError string) error {
	return m.Called(ctx, eventID, status, retryCount, lastError).Error(0)
}

func (m *MockOutboxRepository) DeleteEvent(ctx context.Context, eventID uuid.UUID) error {
	return m.Called(ctx, eventID).Error(0)
}

// MockUnitOfWork is a test double for UnitOfWork. Execute runs the supplied
// function against the mock itself so repository expectations apply inside
// the transaction.
type MockUnitOfWork struct {
	mock.Mock
	ConversationRepo *MockConversationRepository
	OutboxRepo       *MockOutboxRepository
}

func NewMockUnitOfWork(t mockConstructorTestingT) *MockUnitOfWork {
	m := &MockUnitOfWork{
		ConversationRepo: NewMockConversationRepository(t),
		OutboxRepo:       NewMockOutboxRepository(t),
	}
	m.Mock.Test(t)
	return m
}

func (m *MockUnitOfWork) Conversation() ConversationRepository {
	return m.ConversationRepo
}

func (m *MockUnitOfWork) Outbox() OutboxRepository {
	return m.OutboxRepo
}

func (m *MockUnitOfWork) Execute(ctx context.Context, fn func(uow UnitOfWork) error) error {
	return fn(m)
}

// MockSemanticEncoder is a test double for SemanticEncoder.
type MockSemanticEncoder struct{ mock.Mock }

func NewMockSemanticEncoder(t mockConstructorTestingT) *MockSemanticEncoder {
	m := &MockSemanticEncoder{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type MockSemanticEncoder_Expecter struct{ mock *mock.Mock }

func (m *MockSemanticEncoder) EXPECT() *MockSemanticEncoder_Expecter {
	return &MockSemanticEncoder_Expecter{mock: &m.Mock}
}

func (e *MockSemanticEncoder_Expecter) EncodeQuery(ctx, text any) *mock.Call {
	return e.mock.On("EncodeQuery", ctx, text)
}

func (e *MockSemanticEncoder_Expecter) EncodeBatch(ctx, texts any) *mock.Call {
	return e.mock.On("EncodeBatch", ctx, texts)
}

func (m *MockSemanticEncoder) EncodeQuery(ctx context.Context, text string) (EmbeddingVector, error) {
	args := m.Called(ctx, text)
	vec, _ := args.Get(0).(EmbeddingVector)
	return vec, args.Error(1)
}

func (m *MockSemanticEncoder) EncodeBatch(ctx context.Context, texts []string) ([]EmbeddingVector, error) {
	args := m.Called(ctx, texts)
	vecs, _ := args.Get(0).([]EmbeddingVector)
	return vecs, args.Error(1)
}

// MockIntentClassifier is a test double for IntentClassifier.
type MockIntentClassifier struct{ mock.Mock }

func NewMockIntentClassifier(t mockConstructorTestingT) *MockIntentClassifier {
	m := &MockIntentClassifier{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type MockIntentClassifier_Expecter struct{ mock *mock.Mock }

func (m *MockIntentClassifier) EXPECT() *MockIntentClassifier_Expecter {
	return &MockIntentClassifier_Expecter{mock: &m.Mock}
}

func (e *MockIntentClassifier_Expecter) Classify(ctx, embedding any) *mock.Call {
	return e.mock.On("Classify", ctx, embedding)
}

func (m *MockIntentClassifier) Classify(ctx context.Context, embedding []float64) (ClassPrediction, error) {
	args := m.Called(ctx, embedding)
	pred, _ := args.Get(0).(ClassPrediction)
	return pred, args.Error(1)
}

// MockEventPublisher is a test double for EventPublisher.
type MockEventPublisher struct{ mock.Mock }

func NewMockEventPublisher(t mockConstructorTestingT) *MockEventPublisher {
	m := &MockEventPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type MockEventPublisher_Expecter struct{ mock *mock.Mock }

func (m *MockEventPublisher) EXPECT() *MockEventPublisher_Expecter {
	return &MockEventPublisher_Expecter{mock: &m.Mock}
}

func (e *MockEventPublisher_Expecter) PublishEvent(ctx, event any) *mock.Call {
	return e.mock.On("PublishEvent", ctx, event)
}

func (m *MockEventPublisher) PublishEvent(ctx context.Context, event OutboxEvent) error {
	return m.Called(ctx, event).Error(0)
}

// MockKnowledgeSource is a test double for KnowledgeSource.
type MockKnowledgeSource struct{ mock.Mock }

func NewMockKnowledgeSource(t mockConstructorTestingT) *MockKnowledgeSource {
	m := &MockKnowledgeSource{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type MockKnowledgeSource_Expecter struct{ mock *mock.Mock }

func (m *MockKnowledgeSource) EXPECT() *MockKnowledgeSource_Expecter {
	return &MockKnowledgeSource_Expecter{mock: &m.Mock}
}

func (e *MockKnowledgeSource_Expecter) Load(ctx any) *mock.Call {
	return e.mock.On("Load", ctx)
}

func (m *MockKnowledgeSource) Load(ctx context.Context) ([]KnowledgeExample, error) {
	args := m.Called(ctx)
	examples, _ := args.Get(0).([]KnowledgeExample)
	return examples, args.Error(1)
}

// FixedTimeProvider is a deterministic clock for tests.
type FixedTimeProvider struct{ Time time.Time }

func (f FixedTimeProvider) Now() time.Time { return f.Time }
