package report

import (
	"encoding/json"
	"encoding/xml"
	"fmt"

	"fjacquet/invoice-recon/internal/logging"
	"fjacquet/invoice-recon/internal/models"

	"github.com/sirupsen/logrus"
)

// ReportGenerator renders a reconciliation summary in various formats.
type ReportGenerator struct {
	logger *logrus.Logger
}

// NewReportGenerator creates a new instance of ReportGenerator.
func NewReportGenerator() *ReportGenerator {
	return &ReportGenerator{
		logger: logging.GetLogger(),
	}
}

// GenerateReport renders the summary in the specified format (json or xml).
// It returns the report as a byte slice and an error if generation fails or
// the format is unsupported.
func (g *ReportGenerator) GenerateReport(summary models.Summary, format string) ([]byte, error) {
	switch format {
	case "json":
		return g.generateJSONReport(summary)
	case "xml":
		return g.generateXMLReport(summary)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

func (g *ReportGenerator) generateJSONReport(summary models.Summary) ([]byte, error) {
	jsonReport, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		g.logger.Errorf("Failed to marshal JSON report: %v", err)
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return jsonReport, nil
}

func (g *ReportGenerator) generateXMLReport(summary models.Summary) ([]byte, error) {
	type xmlSummary struct {
		XMLName xml.Name `xml:"ReconciliationSummary"`
		models.Summary
	}
	xmlReport, err := xml.MarshalIndent(xmlSummary{Summary: summary}, "", "  ")
	if err != nil {
		g.logger.Errorf("Failed to marshal XML report: %v", err)
		return nil, fmt.Errorf("failed to marshal XML report: %w", err)
	}
	return []byte(xml.Header + string(xmlReport)), nil
}
