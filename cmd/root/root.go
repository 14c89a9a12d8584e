// Package root contains the root command for the application
package root

import (
	"fjacquet/invoice-recon/internal/common"
	"fjacquet/invoice-recon/internal/config"
	"fjacquet/invoice-recon/internal/loader"
	"fjacquet/invoice-recon/internal/logging"
	"fjacquet/invoice-recon/internal/store"
	"fjacquet/invoice-recon/internal/writer"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are shared by multiple commands
type CommonFlags struct {
	Invoices string
	Payments string
	Output   string
	Validate bool
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// AppConfig holds the resolved application configuration
	AppConfig *config.Config

	// SharedFlags are accessible to all commands
	SharedFlags = CommonFlags{}

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "invoice-recon",
		Short: "A CLI tool to reconcile invoice and payment CSV files.",
		Long: `invoice-recon matches payments against invoices using direct references,
amount/date proximity and normalized-name heuristics, then reports matches,
unmatched records and outstanding balances.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to invoice-recon!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to initialize configuration: %v", err)
			}
			AppConfig = cfg
			Log = config.ConfigureLoggingFromConfig(cfg)

			loader.SetLogger(Log)
			writer.SetLogger(Log)
			store.SetLogger(Log)

			if cfg.CSV.Delimiter != "" {
				delim := []rune(cfg.CSV.Delimiter)[0]
				Log.WithField(logging.FieldDelimiter, cfg.CSV.Delimiter).Debug("Setting CSV delimiter from configuration")
				common.SetDelimiter(delim)
			}
		},
	}
)

// Init initializes the root command and all shared flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Invoices, "invoices", "i", "", "Input invoices CSV file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Payments, "payments", "p", "", "Input payments CSV file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "out", "Output directory for result CSV files")
	Cmd.PersistentFlags().BoolVarP(&SharedFlags.Validate, "validate", "v", false, "Validate input file columns before matching")
}
