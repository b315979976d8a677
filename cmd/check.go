package cmd

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"db-preflight/internal/preflight"
	"db-preflight/internal/recorder"

	"github.com/gosuri/uiprogress"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run pre-flight checks against the migration environment",
	Long: `Validates that the environment is safe to migrate: source and target are
reachable, the source credentials and server variables satisfy the dialect's
replication rules, and every target table is empty. The first violated
precondition aborts the run; no later step is attempted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := GetPipelineConfig()
		if err != nil {
			return err
		}

		fmt.Printf("🛫 Checking %s source against %s target (%d tables)\n",
			config.Source.Driver, config.Target.Driver, len(config.Tables))

		source, err := sql.Open(config.Source.Driver, config.Source.DSN)
		if err != nil {
			return fmt.Errorf("failed to open source: %w", err)
		}
		defer source.Close()

		target, err := sql.Open(config.Target.Driver, config.Target.DSN)
		if err != nil {
			return fmt.Errorf("failed to open target: %w", err)
		}
		defer target.Close()

		tableNames := make([]string, 0, len(config.Tables))
		schemas := make(map[string]string, len(config.Tables))
		for _, t := range config.Tables {
			tableNames = append(tableNames, t.Name)
			schemas[t.Name] = t.Schema
		}
		importerConfig := preflight.NewImporterConfig(tableNames, preflight.NewTableSchemaMapper(schemas))

		sourceEngine := preflight.NewCheckEngine(config.Source.Driver)
		targetEngine := preflight.NewCheckEngine(config.Target.Driver)

		ctx := context.Background()
		steps := []checkStep{
			{name: "source connection", run: func() error {
				return sourceEngine.CheckConnection(ctx, []*sql.DB{source})
			}},
			{name: "source privileges", skip: !sourceEngine.HasCapability(), run: func() error {
				return sourceEngine.CheckPrivilege(ctx, []*sql.DB{source})
			}},
			{name: "source variables", skip: !sourceEngine.HasCapability(), run: func() error {
				return sourceEngine.CheckVariable(ctx, []*sql.DB{source})
			}},
			{name: "target connection", run: func() error {
				return targetEngine.CheckConnection(ctx, []*sql.DB{target})
			}},
			{name: "target tables empty", run: func() error {
				return targetEngine.CheckTargetTable(ctx, []*sql.DB{target},
					importerConfig.TableSchemaMapper(), importerConfig.LogicalTableNames())
			}},
		}

		results, checkErr := runSteps(steps)

		// Final Report
		fmt.Println("\n📋 Pre-Flight Report:")
		for i, r := range results {
			icon := "✓"
			status := "OK"
			switch {
			case r.err != nil:
				icon, status = "✗", describeFailure(r.err)
			case r.skipped:
				icon, status = "-", "SKIPPED (no dialect rules)"
			case r.notRun:
				icon, status = "-", "NOT RUN (earlier check failed)"
			}
			fmt.Printf("[%s] [%02d/%02d] %-20s : %s (%s)\n",
				icon, i+1, len(results), r.name, status, r.elapsed.Round(time.Millisecond))
		}

		if checkErr != nil {
			return fmt.Errorf("environment is not safe to migrate: %w", checkErr)
		}
		log.Println("All pre-flight checks passed. Safe to start the migration job.")
		return nil
	},
}

type checkStep struct {
	name string
	skip bool
	run  func() error
}

type stepResult struct {
	name    string
	skipped bool
	notRun  bool
	elapsed time.Duration
	err     error
}

// runSteps executes the steps in order, fail-fast: once a step fails, later
// steps are recorded as not run.
func runSteps(steps []checkStep) ([]stepResult, error) {
	uiprogress.Start()
	defer uiprogress.Stop()

	current := ""
	bar := uiprogress.AddBar(len(steps)).AppendCompleted().PrependElapsed()
	bar.PrependFunc(func(b *uiprogress.Bar) string {
		return fmt.Sprintf("%-22s", current)
	})

	times := recorder.New()
	var results []stepResult
	var firstErr error
	for _, step := range steps {
		current = step.name
		r := stepResult{name: step.name, skipped: step.skip}
		switch {
		case firstErr != nil:
			r.notRun = true
		case !step.skip:
			times.Record(step.name)
			r.err = step.run()
			r.elapsed = times.ElapsedAndClean(step.name)
			if r.err != nil {
				firstErr = r.err
			}
		}
		results = append(results, r)
		bar.Incr()
	}
	return results, firstErr
}

// describeFailure renders the error taxonomy for the operator.
func describeFailure(err error) string {
	var connErr *preflight.InvalidConnectionError
	if errors.As(err, &connErr) {
		return fmt.Sprintf("INVALID CONNECTION: %v", connErr.Cause)
	}
	var notEmpty *preflight.TargetTableNotEmptyError
	if errors.As(err, &notEmpty) {
		return fmt.Sprintf("TARGET TABLE NOT EMPTY: %s", notEmpty.Table)
	}
	return fmt.Sprintf("FAILED: %v", err)
}

func init() {
	RootCmd.AddCommand(checkCmd)
}
