// Package knowledge loads the intent example corpus from a CSV file on disk.
package knowledge

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/cleitonmarx/symbiont/depend"

	"github.com/sukseskontraktor/rental-assistant/internal/domain"
)

// CSVSource reads labeled utterances from a CSV file with a question and an
// intent column. A missing file yields an empty corpus, not an error, so the
// assistant can boot on the built-in fallback examples.
type CSVSource struct {
	path   string
	logger *log.Logger
}

// NewCSVSource creates a new CSVSource.
func NewCSVSource(path string, logger *log.Logger) CSVSource {
	return CSVSource{
		path:   path,
		logger: logger,
	}
}

// Load reads the corpus. Rows missing either column are skipped.
func (s CSVSource) Load(ctx context.Context) ([]domain.KnowledgeExample, error) {
	f, err := os.Open(s.path)
	if os.IsNotExist(err) {
		s.logger.Printf("CSVSource: knowledge file %s not found, using fallback corpus", s.path)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open knowledge csv: %w", err)
	}
	defer f.Close() //nolint:errcheck

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read knowledge csv header: %w", err)
	}

	questionCol, intentCol := -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "question":
			questionCol = i
		case "intent":
			intentCol = i
		}
	}
	if questionCol < 0 || intentCol < 0 {
		return nil, fmt.Errorf("knowledge csv missing question/intent columns: %v", header)
	}

	var examples []domain.KnowledgeExample
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read knowledge csv row: %w", err)
		}
		if questionCol >= len(record) || intentCol >= len(record) {
			continue
		}
		text := strings.TrimSpace(record[questionCol])
		intent := strings.TrimSpace(record[intentCol])
		if text == "" || intent == "" {
			continue
		}
		examples = append(examples, domain.KnowledgeExample{
			Text:   text,
			Intent: domain.Intent(intent),
		})
	}

	s.logger.Printf("CSVSource: loaded %d knowledge examples from %s", len(examples), s.path)
	return examples, nil
}

// InitKnowledgeSource initializes the KnowledgeSource dependency.
type InitKnowledgeSource struct {
	Logger *log.Logger `resolve:""`
	Path   string      `config:"KNOWLEDGE_CSV_PATH" default:"data/knowledge.csv"`
}

// Initialize registers the KnowledgeSource in the dependency container.
func (i InitKnowledgeSource) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.KnowledgeSource](NewCSVSource(i.Path, i.Logger))
	return ctx, nil
}
