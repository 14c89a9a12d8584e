// Package match handles the reconciliation command
package match

import (
	"fmt"

	"fjacquet/invoice-recon/cmd/root"
	"fjacquet/invoice-recon/internal/loader"
	"fjacquet/invoice-recon/internal/logging"
	"fjacquet/invoice-recon/internal/matcher"
	"fjacquet/invoice-recon/internal/report"
	"fjacquet/invoice-recon/internal/store"
	"fjacquet/invoice-recon/internal/validation"
	"fjacquet/invoice-recon/internal/writer"

	"github.com/spf13/cobra"
)

// Cmd represents the match command
var Cmd = &cobra.Command{
	Use:   "match",
	Short: "Reconcile invoices against payments",
	Long: `Reconcile an invoices CSV against a payments CSV and write the match,
unmatched and remaining-balance tables to the output directory.`,
	Run: matchFunc,
}

func matchFunc(cmd *cobra.Command, args []string) {
	log := root.Log
	log.Info("Match command called")
	log.Infof("Invoices file: %s", root.SharedFlags.Invoices)
	log.Infof("Payments file: %s", root.SharedFlags.Payments)
	log.Infof("Output directory: %s", root.SharedFlags.Output)

	if root.SharedFlags.Invoices == "" || root.SharedFlags.Payments == "" {
		log.Fatal("Both --invoices and --payments are required")
	}
	if err := validation.IsValidInputFile(root.SharedFlags.Invoices); err != nil {
		log.Fatalf("Invalid invoices file: %v", err)
	}
	if err := validation.IsValidInputFile(root.SharedFlags.Payments); err != nil {
		log.Fatalf("Invalid payments file: %v", err)
	}
	if err := validation.IsValidReportFormat(root.AppConfig.Report.Format); err != nil {
		log.Fatalf("Invalid report configuration: %v", err)
	}

	if root.SharedFlags.Validate {
		validateInputs()
	}

	invoices, err := loader.ReadInvoices(root.SharedFlags.Invoices)
	if err != nil {
		log.Fatalf("Error loading invoices: %v", err)
	}
	payments, err := loader.ReadPayments(root.SharedFlags.Payments)
	if err != nil {
		log.Fatalf("Error loading payments: %v", err)
	}

	rules, err := store.NewRuleStore(root.AppConfig.Matching.RulesFile).Load()
	if err != nil {
		log.Fatalf("Error loading normalization rules: %v", err)
	}

	engine := matcher.NewEngineWithMatchers(
		logging.NewLogrusAdapterFromLogger(log),
		matcher.NewDirectReferenceMatcher(),
		&matcher.AmountDateMatcher{WindowDays: root.AppConfig.Matching.DateWindowDays},
		&matcher.NameAmountMatcher{Rules: rules},
	)

	result, err := engine.Reconcile(invoices, payments)
	if err != nil {
		log.Fatalf("Error reconciling records: %v", err)
	}

	if err := writer.WriteResult(result, root.SharedFlags.Output); err != nil {
		log.Fatalf("Error writing result files: %v", err)
	}

	summary, err := report.NewReportGenerator().GenerateReport(result.Summary(), root.AppConfig.Report.Format)
	if err != nil {
		log.Fatalf("Error generating summary report: %v", err)
	}
	fmt.Println(string(summary))

	log.Info("Reconciliation completed successfully!")
}

func validateInputs() {
	log := root.Log
	log.Info("Validating input files...")

	valid, err := loader.ValidateInvoicesFile(root.SharedFlags.Invoices)
	if err != nil {
		log.Fatalf("Error validating invoices file: %v", err)
	}
	if !valid {
		log.Fatal("The invoices file is missing required columns")
	}

	valid, err = loader.ValidatePaymentsFile(root.SharedFlags.Payments)
	if err != nil {
		log.Fatalf("Error validating payments file: %v", err)
	}
	if !valid {
		log.Fatal("The payments file is missing required columns")
	}
	log.Info("Validation successful.")
}
