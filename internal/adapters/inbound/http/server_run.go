package http

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/rs/cors"

	"github.com/sukseskontraktor/rental-assistant/internal/telemetry"
	"github.com/sukseskontraktor/rental-assistant/internal/usecases"
)

// AssistantServer is the REST API HTTP server for the rental assistant.
type AssistantServer struct {
	Port              int                 `config:"HTTP_PORT" default:"8080"`
	Logger            *log.Logger         `resolve:""`
	HandleTurnUseCase usecases.HandleTurn `resolve:""`
}

// Run starts the HTTP server for the AssistantServer.
func (api AssistantServer) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /assistant/query", api.Query)
	mux.HandleFunc("GET /health", api.Health)

	// Register introspection endpoint for debugging and testing purposes
	mux.HandleFunc("/introspect", IntrospectHandler)

	h := telemetry.HttpHandler(mux, "rental-assistant-api")

	// Apply CORS at the top-level so preflight requests hit it, too.
	h = cors.AllowAll().Handler(h)

	s := &http.Server{
		Handler: h,
		Addr:    fmt.Sprintf(":%d", api.Port),
	}

	errCh := make(chan error, 1)
	go func() {
		api.Logger.Printf("AssistantServer: Listening on port %d", api.Port)
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			api.Logger.Printf("AssistantServer: error during shutdown: %v", err)
		} else {
			api.Logger.Println("AssistantServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// IsReady checks if the AssistantServer is ready by performing a health check.
func (api AssistantServer) IsReady(ctx context.Context) error {
	resp, err := http.Get(fmt.Sprintf("http://:%d/health", api.Port))
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}
