package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/liftover/liftover/internal/config"
	"github.com/liftover/liftover/internal/source"
	"github.com/liftover/liftover/internal/target"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show what a run would transfer",
	Long:  `Connect to the source, count rows per table and print the transfer order without writing anything.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		src := source.NewMySQLReader(cfg.Source.DSN())
		if err := src.Connect(ctx); err != nil {
			return fmt.Errorf("connecting to source: %w", err)
		}
		defer src.Close()

		fmt.Printf("Source: %s:%d/%s\n", cfg.Source.Host, cfg.Source.Port, cfg.Source.Database)
		fmt.Printf("Target: %s:%d/%s (schema %s)\n", cfg.Target.Host, cfg.Target.Port, cfg.Target.Database, cfg.Target.Schema)
		fmt.Printf("Batch size: %d rows per statement\n\n", cfg.Migration.BatchSize)

		fmt.Println("Transfer order:")
		for _, step := range planSteps {
			count, err := src.RowCount(ctx, step.sourceTable)
			if err != nil {
				return fmt.Errorf("counting %s: %w", step.sourceTable, err)
			}
			line := fmt.Sprintf("  %-22s → %-14s %d rows", step.sourceTable, step.targetTable, count)
			if step.dependsOn != "" {
				line += fmt.Sprintf(" (after %s)", step.dependsOn)
			}
			fmt.Println(line)
		}
		return nil
	},
}

var planSteps = []struct {
	sourceTable string
	targetTable string
	dependsOn   string
}{
	{source.TableEmployees, target.TableEmployees, ""},
	{source.TableMembers, target.TableCustomers, ""},
	{source.TableProducts, target.TableProducts, ""},
	{source.TableTransactions, target.TableInvoices, "customers"},
	{source.TableDetails, target.TableInvoiceItems, "invoices, products"},
}

func init() {
	rootCmd.AddCommand(planCmd)
}
