package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/synapse-ai/sourcing-agent/internal/logger"
	"github.com/synapse-ai/sourcing-agent/internal/sourcing"
)

const (
	PromptShowReport      = "Show full report"
	PromptShowMessages    = "Show outreach messages"
	PromptReportByCompany = "Report by company"
	PromptReportToFile    = "Dump report to file"
	PromptExit            = "Exit"
)

var errExit = errors.New("exit requested")

var sourcePrompt = promptui.Select{
	Label: "Proceed?",
	Items: []string{PromptShowReport, PromptShowMessages, PromptReportByCompany, PromptReportToFile, PromptExit},
}

var sourceCmd = &cobra.Command{
	Use:   "source",
	Short: "Run the sourcing pipeline once for a job description and print the report",
	Run: func(cmd *cobra.Command, _ []string) {
		source(cmd)
	},
}

func init() {
	rootCmd.AddCommand(sourceCmd)

	sourceCmd.Flags().StringP("job-file", "f", "", "file with the job description. The built-in demo job is used when unset.")
	sourceCmd.Flags().IntP("max-candidates", "n", 0, "maximum number of candidates in the report")
	sourceCmd.Flags().StringP("location", "l", "", "location preference for candidates")
	sourceCmd.Flags().BoolP("auto-approve", "y", false, "print the full report and exit without the interactive prompt")
}

// source is the one-shot pipeline command for the cli.
func source(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the sourcing-agent", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	jobDescription, err := loadJobDescription(cmd)
	if err != nil {
		logger.Fatal("loading the job description", zap.Error(err))
	}

	agent, _, err := buildAgent(ctx, config, logger)
	if err != nil {
		logger.Fatal("building the sourcing pipeline", zap.Error(err))
	}

	maxCandidates, _ := cmd.Flags().GetInt("max-candidates")
	location, _ := cmd.Flags().GetString("location")

	result, err := agent.ProcessJob(ctx, sourcing.Request{
		JobDescription:     jobDescription,
		MaxCandidates:      maxCandidates,
		LocationPreference: location,
	})
	if err != nil {
		logger.Fatal("sourcing run failed", zap.Error(err))
	}

	logger.Info("sourcing run finished",
		zap.String("job_id", result.JobID),
		zap.Int("candidates_found", result.CandidatesFound),
		zap.Int("top_candidates", len(result.TopCandidates)),
		zap.Float64("processing_time_seconds", result.ProcessingTimeSeconds),
	)

	if cmd.Flag("auto-approve").Value.String() == "true" {
		if err := handleAction(PromptShowReport, result, logger); err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}
		return
	}

	for {
		_, action, err := sourcePrompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(action, result, logger); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(action string, result *sourcing.Result, logger *zap.Logger) error {
	switch action {
	case PromptShowReport:
		pretty, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("rendering report: %w", err)
		}
		fmt.Println(string(pretty))
		return nil
	case PromptShowMessages:
		printMessages(result)
		return nil
	case PromptReportByCompany:
		pretty, _ := json.MarshalIndent(reportByCompany(result), "", "  ")
		logger.Info(string(pretty), zap.Int("candidates count", len(result.TopCandidates)))
		return nil
	case PromptReportToFile:
		filename, err := dumpReportToTmpFile(result)
		if err != nil {
			return fmt.Errorf("dump report to file: %w", err)
		}
		logger.Info("dumping report to file", zap.String("filename", filename))
		return nil
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func printMessages(result *sourcing.Result) {
	for i, candidate := range result.TopCandidates {
		if candidate.OutreachMessage == "" {
			continue
		}

		fmt.Printf("--- #%d %s (%s, %.1f/10) ---\n%s\n\n",
			i+1, candidate.Name, candidate.Company, candidate.FitScore, candidate.OutreachMessage,
		)
	}
}

func reportByCompany(result *sourcing.Result) map[string]int {
	report := make(map[string]int)
	for _, candidate := range result.TopCandidates {
		report[candidate.Company]++
	}

	return report
}

func dumpReportToTmpFile(result *sourcing.Result) (string, error) {
	file, err := os.CreateTemp("", "sourcing_report_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	pretty, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}

	if _, err := file.Write(pretty); err != nil {
		return "", err
	}

	return file.Name(), nil
}

func loadJobDescription(cmd *cobra.Command) (string, error) {
	jobFile, _ := cmd.Flags().GetString("job-file")
	if jobFile == "" {
		return sourcing.DemoJobDescription, nil
	}

	content, err := os.ReadFile(jobFile)
	if err != nil {
		return "", fmt.Errorf("reading job description file: %w", err)
	}

	return string(content), nil
}
