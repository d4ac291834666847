package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/liftover/liftover/internal/config"
	"github.com/liftover/liftover/internal/lock"
	"github.com/liftover/liftover/internal/logging"
	"github.com/liftover/liftover/internal/registry"
	"github.com/liftover/liftover/internal/report"
	"github.com/liftover/liftover/internal/source"
	"github.com/liftover/liftover/internal/target"
	"github.com/liftover/liftover/internal/transfer"
)

var (
	runReportPath string
	runBatchSize  int

	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	headStyle = lipgloss.NewStyle().Bold(true)
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the migration",
	Long: `Transfer all five tables in dependency order. A failure in one table
rolls that table back and the run continues; only a failure to connect
to either store aborts with a non-zero exit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		level := cfg.Logging.Level
		if logLevel != "" {
			level = logLevel
		}
		logger, err := logging.Setup(level, cfg.Logging.Directory)
		if err != nil {
			return fmt.Errorf("setting up logging: %w", err)
		}

		if err := lock.Acquire(""); err != nil {
			return err
		}
		defer lock.Release("")

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		src := source.NewMySQLReader(cfg.Source.DSN())
		tgt := target.NewPostgresWriter(cfg.Target.ConnString(), cfg.Target.Schema)

		// Connection establishment is the only fatal failure mode.
		if err := src.Connect(ctx); err != nil {
			return fmt.Errorf("connecting to source: %w", err)
		}
		defer src.Close()
		if err := tgt.Connect(ctx); err != nil {
			return fmt.Errorf("connecting to target: %w", err)
		}
		defer tgt.Close()

		batchSize := cfg.Migration.BatchSize
		if runBatchSize > 0 {
			batchSize = runBatchSize
		}

		fmt.Println(headStyle.Render("Starting migration MySQL → PostgreSQL"))

		reg := registry.New()
		runner := &transfer.Runner{
			Source:    src,
			Target:    tgt,
			Registry:  reg,
			Logger:    logger,
			BatchSize: batchSize,
		}
		results := runner.Run(ctx)

		fmt.Println()
		for _, res := range results {
			if res.Failed() {
				fmt.Println(failStyle.Render(fmt.Sprintf("✗ %-14s %v", res.Table, res.Err)))
				continue
			}
			fmt.Println(okStyle.Render(fmt.Sprintf("✓ %-14s %d migrated, %d skipped", res.Table, res.Migrated, res.Skipped)))
		}

		rep := report.Generate(
			report.StoreSummary{Host: cfg.Source.Host, Database: cfg.Source.Database},
			report.StoreSummary{Host: cfg.Target.Host, Database: cfg.Target.Database},
			results, reg)

		fmt.Println()
		fmt.Printf("Totals: %d migrated, %d skipped, %d registry entries\n",
			rep.Totals.Migrated, rep.Totals.Skipped, rep.Registry.TotalEntries)
		if len(rep.Totals.FailedTables) > 0 {
			fmt.Println(failStyle.Render(fmt.Sprintf("Failed tables: %v — see logs, rerun is NOT safe without clearing the target", rep.Totals.FailedTables)))
		}

		if runReportPath != "" {
			if err := report.WriteJSON(rep, runReportPath); err != nil {
				logger.Error("writing report", "path", runReportPath, "error", err)
			} else {
				fmt.Printf("Report written to %s\n", runReportPath)
			}
		}

		// Table-scoped failures were logged and reported; the run itself
		// completed, so the exit status stays zero.
		return nil
	},
}

func init() {
	runCmd.Flags().StringVar(&runReportPath, "report", "", "write a JSON run report to this path")
	runCmd.Flags().IntVar(&runBatchSize, "batch-size", 0, "rows per insert statement (overrides config)")
	rootCmd.AddCommand(runCmd)
}
