package extracting

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

const (
	taskParseTransaction = "parse_transaction"
	taskParseInvoice     = "parse_invoice"
	taskMapColumns       = "map_columns"
	taskMatchLedger      = "match_ledger"
	taskCategorize       = "categorize"
	taskAnalyzeRisk      = "analyze_risk"
	taskGenerateInsights = "generate_insights"
	taskExplainForecast  = "explain_forecast"
	taskDraftReminder    = "draft_reminder"
	taskOutlinePitchDeck = "outline_pitch_deck"
	taskGenerateReport   = "generate_report"
)

var tasks = []string{
	taskParseTransaction,
	taskParseInvoice,
	taskMapColumns,
	taskMatchLedger,
	taskCategorize,
	taskAnalyzeRisk,
	taskGenerateInsights,
	taskExplainForecast,
	taskDraftReminder,
	taskOutlinePitchDeck,
	taskGenerateReport,
}

//go:embed prompts.yaml
var promptsYAML []byte

// Prompt is one instruction template. Model optionally pins a model for the task.
type Prompt struct {
	Instruction string `yaml:"instruction"`
	Model       string `yaml:"model"`
}

type Catalog map[string]Prompt

// LoadCatalog parses a prompt catalog and checks every task has an instruction.
func LoadCatalog(data []byte) (Catalog, error) {
	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("parsing prompt catalog: %w", err)
	}

	for _, task := range tasks {
		prompt, ok := catalog[task]
		if !ok || prompt.Instruction == "" {
			return nil, fmt.Errorf("prompt catalog: missing instruction for %q", task)
		}
	}

	return catalog, nil
}

func DefaultCatalog() (Catalog, error) {
	return LoadCatalog(promptsYAML)
}
