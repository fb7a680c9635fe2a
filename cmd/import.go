package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/candidate-pool/poolctl/internal/ai"
	"github.com/candidate-pool/poolctl/internal/ai/gemini"
	"github.com/candidate-pool/poolctl/internal/logger"
	"github.com/candidate-pool/poolctl/internal/secrets"
	"github.com/candidate-pool/poolctl/internal/validate"
)

var candidatesImportCmd = &cobra.Command{
	Use:   "import <cv-file>",
	Short: "Extract a candidate record from a CV with Gemini and add it to the pool",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		l := newLogger()
		config := mustConfig(l)
		client := newAPIClient(config, l)

		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		doc := ai.NewDocument(filepath.Base(args[0]), data)

		parser, err := newCVParser(cmd, config.AI, l)
		if err != nil {
			return err
		}

		l.Info("parsing CV",
			zap.String("document", doc.Name),
			zap.String("mime", doc.MIME),
		)

		record, err := parser.Parse(cmd.Context(), doc)
		if err != nil {
			return fmt.Errorf("parsing CV %q: %w", doc.Name, err)
		}

		if issues := validate.Candidate(record); len(issues) > 0 {
			fmt.Printf("extraction from %q is incomplete:\n", doc.Name)
			return reportIssues(issues)
		}

		if err := printRecordJSON(record); err != nil {
			return err
		}

		if dryRun, _ := cmd.Flags().GetBool("dry-run"); dryRun {
			return nil
		}

		yes, _ := cmd.Flags().GetBool("yes")
		ok, err := confirm("Add this candidate to the pool?", yes)
		if err != nil || !ok {
			return err
		}

		created, err := client.CreateCandidate(cmd.Context(), record)
		if err != nil {
			return describeFailure(err, client.BaseURL())
		}

		fmt.Printf("candidate %d (%s) imported from %s\n", created.ID, created.FullName, doc.Name)
		return nil
	},
}

func init() {
	candidatesImportCmd.Flags().Bool("dry-run", false, "print the extracted record without saving it")
	candidatesImportCmd.Flags().BoolP("yes", "y", false, "do not ask for confirmation")
}

func newCVParser(cmd *cobra.Command, config *AIConfig, l *zap.Logger) (ai.Parser, error) {
	if config == nil {
		config = &AIConfig{}
	}

	provider := strings.TrimSpace(strings.ToLower(config.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", config.Provider)
	}

	geminiConfig := config.Gemini
	if geminiConfig == nil {
		geminiConfig = &GeminiConfig{}
	}

	apiKey, err := secrets.Source{
		Name:  "gemini api key",
		Value: geminiConfig.APIKey,
		File:  geminiConfig.APIKeyFile,
	}.Resolve()
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key, ai.gemini.api-key-file or GEMINI_API_KEY_FILE)", err)
	}

	parserLogger := logger.WithFields(l, logger.StringFields(
		logger.StringField{Key: logger.FieldProvider, Value: "gemini"},
		logger.StringField{Key: logger.FieldModel, Value: geminiConfig.Model},
	)...)

	generator, err := gemini.NewGenerator(cmd.Context(), apiKey, geminiConfig.Model, geminiConfig.MaxRetries, parserLogger)
	if err != nil {
		return nil, err
	}

	return gemini.NewParser(generator, parserLogger, geminiConfig.MaxLogLength), nil
}
