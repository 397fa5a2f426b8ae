package usecases

import (
	"embed"
	"fmt"

	"go.yaml.in/yaml/v3"
)

//go:embed replies/replies.yml
var replyTemplates embed.FS

// ReplyCatalog holds every Indonesian reply template the orchestrator can
// emit. Loaded once from the embedded catalog at startup.
type ReplyCatalog struct {
	Farewell            string `yaml:"farewell"`
	Greeting            string `yaml:"greeting"`
	ClosingOffer        string `yaml:"closing_offer"`
	Clarification       string `yaml:"clarification"`
	OutOfContext        string `yaml:"out_of_context"`
	NotAvailable        string `yaml:"not_available"`
	RosterHeader        string `yaml:"roster_header"`
	RosterLine          string `yaml:"roster_line"`
	RosterEmpty         string `yaml:"roster_empty"`
	BookingPrompt       string `yaml:"booking_prompt"`
	BookingFallbackName string `yaml:"booking_fallback_name"`
	StockSingle         string `yaml:"stock_single"`
	StockHeader         string `yaml:"stock_header"`
	StockLine           string `yaml:"stock_line"`
	StockTotal          string `yaml:"stock_total"`
	PriceHeader         string `yaml:"price_header"`
	PriceLine           string `yaml:"price_line"`
	ComplaintLate       string `yaml:"complaint_late"`
	ComplaintGeneral    string `yaml:"complaint_general"`
}

// LoadReplyCatalog decodes the embedded reply templates.
func LoadReplyCatalog() (ReplyCatalog, error) {
	file, err := replyTemplates.Open("replies/replies.yml")
	if err != nil {
		return ReplyCatalog{}, fmt.Errorf("failed to open reply catalog: %w", err)
	}
	defer file.Close() //nolint:errcheck

	var catalog ReplyCatalog
	if err := yaml.NewDecoder(file).Decode(&catalog); err != nil {
		return ReplyCatalog{}, fmt.Errorf("failed to decode reply catalog: %w", err)
	}
	return catalog, nil
}
