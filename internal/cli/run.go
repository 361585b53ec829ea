package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/probatch/probatch/internal/config"
	"github.com/probatch/probatch/internal/engine"
	"github.com/probatch/probatch/internal/model"
	"github.com/probatch/probatch/internal/output"
	"github.com/probatch/probatch/internal/store"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a batch of test cases from a configuration file",
	Run: func(cmd *cobra.Command, args []string) {
		configFile, _ := cmd.Flags().GetString("config")
		projectID, _ := cmd.Flags().GetString("project")
		verbose, _ := cmd.Flags().GetBool("verbose")
		noColor, _ := cmd.Flags().GetBool("no-color")

		if configFile == "" {
			fmt.Println("Error: config file is required")
			cmd.Help()
			return
		}

		cfg, err := config.Load(configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		if errs := config.Validate(cfg); len(errs) > 0 {
			fmt.Fprintln(os.Stderr, "Configuration validation errors:")
			for _, err := range errs {
				fmt.Fprintf(os.Stderr, "  - %s\n", err.Error())
			}
			os.Exit(1)
		}

		req, caseCount, err := buildRequest(cmd, cfg, projectID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if caseCount == 0 {
			fmt.Fprintf(os.Stderr, "Error: no test cases for project %q\n", req.ProjectID)
			os.Exit(1)
		}

		mem := store.NewMemory()
		for i := range cfg.Projects {
			mem.PutProject(&cfg.Projects[i])
		}
		for i := range cfg.TestCases {
			mem.PutTestCase(&cfg.TestCases[i])
		}

		controller := engine.NewController(mem, mem)

		executionID, err := controller.Create(context.Background(), req)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		formatter := output.NewFormatter(verbose, noColor)
		fmt.Printf("▶ RUNNING %d test cases (strategy=%s, concurrency=%d)\n\n",
			caseCount, req.Strategy, req.ConcurrencyLimit)

		state := waitForCompletion(controller, executionID, verbose)

		results, err := controller.Results(executionID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		for _, r := range results.Results {
			fmt.Print(formatter.FormatResult(r))
		}
		fmt.Println()
		fmt.Print(formatter.FormatSummary(results.State, results.Summary))

		if state != model.StateCompleted {
			os.Exit(1)
		}
	},
}

// buildRequest assembles the execution request from config defaults and
// flag overrides, selecting every test case of the chosen project.
func buildRequest(cmd *cobra.Command, cfg *config.Config, projectID string) (engine.ExecutionRequest, int, error) {
	if projectID == "" {
		if len(cfg.Projects) != 1 {
			return engine.ExecutionRequest{}, 0, fmt.Errorf("--project is required when the config declares %d projects", len(cfg.Projects))
		}
		projectID = cfg.Projects[0].ID
	}

	var caseIDs []string
	for _, tc := range cfg.TestCases {
		if tc.ProjectID == projectID {
			caseIDs = append(caseIDs, tc.ID)
		}
	}

	req := engine.ExecutionRequest{
		ProjectID:        projectID,
		TestCaseIDs:      caseIDs,
		ConcurrencyLimit: cfg.Defaults.ConcurrencyLimit,
		Timeout:          cfg.Defaults.Timeout,
		RetryCount:       cfg.Defaults.RetryCount,
		Strategy:         cfg.Defaults.Strategy,
	}

	if cmd.Flags().Changed("concurrency") {
		req.ConcurrencyLimit, _ = cmd.Flags().GetInt("concurrency")
	}
	if cmd.Flags().Changed("timeout") {
		req.Timeout, _ = cmd.Flags().GetDuration("timeout")
	}
	if cmd.Flags().Changed("retries") {
		req.RetryCount, _ = cmd.Flags().GetInt("retries")
	}
	if cmd.Flags().Changed("strategy") {
		req.Strategy, _ = cmd.Flags().GetString("strategy")
	}

	return req, len(caseIDs), nil
}

// waitForCompletion polls the controller until the execution reaches a
// terminal state, printing progress in verbose mode.
func waitForCompletion(controller *engine.Controller, executionID string, verbose bool) model.ExecutionState {
	lastCount := -1
	for {
		status, err := controller.Status(executionID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if verbose && status.ResultCount != lastCount {
			fmt.Printf("  %s: %d/%d\n", status.State, status.ResultCount, status.RequestedCount)
			lastCount = status.ResultCount
		}

		if status.State.Terminal() {
			return status.State
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("config", "c", "", "Configuration file (required)")
	cmd.Flags().StringP("project", "p", "", "Project to run (required when the config has several)")
	cmd.Flags().IntP("concurrency", "n", 0, "Concurrency limit override")
	cmd.Flags().DurationP("timeout", "t", 30*time.Second, "Per-attempt timeout override")
	cmd.Flags().IntP("retries", "r", 0, "Retry count override (extra attempts after the first)")
	cmd.Flags().StringP("strategy", "s", "", "Execution strategy override: serial, parallel or mixed")
	cmd.Flags().BoolP("verbose", "v", false, "Enable verbose output")
	cmd.Flags().Bool("no-color", false, "Disable colored output")
}

func init() {
	addRunFlags(runCmd)
}
