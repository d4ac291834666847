package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/liftover/liftover/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a config file interactively",
	Long:  `Walk through prompts to create a Liftover configuration file at ~/.liftover/liftover.yaml.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reader := bufio.NewReader(os.Stdin)

		fmt.Println("Liftover Configuration Setup")
		fmt.Println("============================")
		fmt.Println()

		fmt.Println("Source MySQL")
		fmt.Println("------------")
		srcHost := prompt(reader, "Host", "localhost")
		srcPort, err := strconv.Atoi(prompt(reader, "Port", "3306"))
		if err != nil {
			return fmt.Errorf("invalid port")
		}
		srcDB := prompt(reader, "Database name", "rekamteknik")
		srcUser := prompt(reader, "Username", "root")
		srcPass := prompt(reader, "Password (or ${ENV:VAR} / ${VAULT:path#key} / ${AWS_SM:name})", "")
		fmt.Println()

		fmt.Println("Target PostgreSQL")
		fmt.Println("-----------------")
		tgtHost := prompt(reader, "Host", "localhost")
		tgtPort, err := strconv.Atoi(prompt(reader, "Port", "5432"))
		if err != nil {
			return fmt.Errorf("invalid port")
		}
		tgtDB := prompt(reader, "Database name", "postgres")
		tgtSchema := prompt(reader, "Schema", "public")
		tgtUser := prompt(reader, "Username", "postgres")
		tgtPass := prompt(reader, "Password (or a secret reference)", "")
		tgtSSL := prompt(reader, "SSL mode (disable/require/verify-full)", "require")
		fmt.Println()

		cfg := &config.Config{
			Version: config.CurrentVersion,
			Source: config.SourceConfig{
				Host:     srcHost,
				Port:     srcPort,
				Database: srcDB,
				Username: srcUser,
				Password: srcPass,
			},
			Target: config.TargetConfig{
				Host:     tgtHost,
				Port:     tgtPort,
				Database: tgtDB,
				Schema:   tgtSchema,
				Username: tgtUser,
				Password: tgtPass,
				SSLMode:  tgtSSL,
			},
		}

		cfgPath := config.ExpandHome(config.DefaultPath)
		if cfgFile != "" {
			cfgPath = cfgFile
		}

		if err := cfg.Save(cfgPath); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}

		fmt.Printf("Config written to %s\n", cfgPath)
		fmt.Println()
		fmt.Println("Next steps:")
		fmt.Println("  liftover plan   — Preview the transfer against the source")
		fmt.Println("  liftover run    — Execute the migration")
		fmt.Println("  liftover verify — Compare row counts afterwards")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func prompt(reader *bufio.Reader, label, defaultVal string) string {
	if defaultVal != "" {
		fmt.Printf("  %s [%s]: ", label, defaultVal)
	} else {
		fmt.Printf("  %s: ", label)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return defaultVal
	}
	return input
}
