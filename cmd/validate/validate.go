// Package validate handles input file validation commands
package validate

import (
	"fjacquet/invoice-recon/cmd/root"
	"fjacquet/invoice-recon/internal/loader"

	"github.com/spf13/cobra"
)

// Cmd represents the validate command
var Cmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate invoice and payment CSV files",
	Long:  `Check that the input CSV files carry the columns the matcher requires.`,
	Run:   validateFunc,
}

func validateFunc(cmd *cobra.Command, args []string) {
	log := root.Log
	log.Info("Validate command called")

	if root.SharedFlags.Invoices == "" && root.SharedFlags.Payments == "" {
		log.Fatal("At least one of --invoices or --payments is required")
	}

	if root.SharedFlags.Invoices != "" {
		valid, err := loader.ValidateInvoicesFile(root.SharedFlags.Invoices)
		if err != nil {
			log.Fatalf("Error validating invoices file: %v", err)
		}
		if valid {
			log.Infof("%s has the required invoice columns", root.SharedFlags.Invoices)
		} else {
			log.Infof("%s is missing required invoice columns", root.SharedFlags.Invoices)
		}
	}

	if root.SharedFlags.Payments != "" {
		valid, err := loader.ValidatePaymentsFile(root.SharedFlags.Payments)
		if err != nil {
			log.Fatalf("Error validating payments file: %v", err)
		}
		if valid {
			log.Infof("%s has the required payment columns", root.SharedFlags.Payments)
		} else {
			log.Infof("%s is missing required payment columns", root.SharedFlags.Payments)
		}
	}
}
