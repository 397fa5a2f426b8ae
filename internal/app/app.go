package app

import (
	"github.com/cleitonmarx/symbiont"

	"github.com/sukseskontraktor/rental-assistant/internal/adapters/inbound/http"
	"github.com/sukseskontraktor/rental-assistant/internal/adapters/inbound/workers"
	"github.com/sukseskontraktor/rental-assistant/internal/adapters/outbound/config"
	"github.com/sukseskontraktor/rental-assistant/internal/adapters/outbound/fuzzy"
	"github.com/sukseskontraktor/rental-assistant/internal/adapters/outbound/knowledge"
	"github.com/sukseskontraktor/rental-assistant/internal/adapters/outbound/log"
	"github.com/sukseskontraktor/rental-assistant/internal/adapters/outbound/modelrunner"
	"github.com/sukseskontraktor/rental-assistant/internal/adapters/outbound/postgres"
	"github.com/sukseskontraktor/rental-assistant/internal/adapters/outbound/pubsub"
	"github.com/sukseskontraktor/rental-assistant/internal/adapters/outbound/time"
	"github.com/sukseskontraktor/rental-assistant/internal/nlu"
	"github.com/sukseskontraktor/rental-assistant/internal/telemetry"
	"github.com/sukseskontraktor/rental-assistant/internal/usecases"
)

// NewAssistantApp creates and returns a new instance of the rental assistant application.
func NewAssistantApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&log.InitLogger{},
			&telemetry.InitOpenTelemetry{},
			&telemetry.InitHttpClient{},
			&config.InitVaultProvider{},
			&postgres.InitDB{},
			&postgres.InitUnitOfWork{},
			&postgres.InitEquipmentRepository{},
			&postgres.InitConversationRepository{},
			&time.InitCurrentTimeProvider{},
			&pubsub.InitClient{},
			&pubsub.InitPublisher{},
			&fuzzy.InitScorer{},
			&knowledge.InitKnowledgeSource{},
			&modelrunner.InitEncoder{},
			&modelrunner.InitClassifier{},
			&nlu.InitIntentResolver{},

			&usecases.InitResolveEquipment{},
			&usecases.InitHandleTurn{},
			&usecases.InitRelayOutbox{},
		).
		Host(
			&http.AssistantServer{},
			&workers.MessageRelay{},
		).
		Introspect(&MermaidGraphIntrospector{})
}
