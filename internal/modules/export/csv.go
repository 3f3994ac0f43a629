package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aristath/investlab/internal/domain"
)

// Header is the column row of an exported table. The first cell is the
// unnamed index column.
var Header = []string{
	"",
	"Investment Name",
	"Category",
	"Expected Return (%)",
	"Risk Level (1-10)",
	"Cap Rate (%)",
	"Liquidity (1-10)",
	"Volatility (1-10)",
	"Fees (%)",
	"Time Horizon",
	"Inflation Hedge",
	"Minimum Investment ($)",
}

// WriteCSV writes the dataset as comma-separated text, one row per record,
// led by the record's source index. An empty dataset still gets the header.
func WriteCSV(w io.Writer, ds domain.Dataset) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, r := range ds {
		if err := cw.Write(row(r)); err != nil {
			return fmt.Errorf("failed to write csv row %d: %w", r.Index, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}

func row(r domain.InvestmentRecord) []string {
	capRate := ""
	if r.CapRatePct != nil {
		capRate = formatDecimal(*r.CapRatePct)
	}

	return []string{
		strconv.Itoa(r.Index),
		r.Name,
		string(r.Category),
		formatDecimal(r.ExpectedReturnPct),
		strconv.Itoa(r.RiskLevel),
		capRate,
		strconv.Itoa(r.Liquidity),
		strconv.Itoa(r.Volatility),
		formatDecimal(r.FeesPct),
		string(r.TimeHorizon),
		yesNo(r.InflationHedge),
		strconv.Itoa(r.MinimumInvestment),
	}
}

// formatDecimal prints the shortest representation, always with a decimal point (10 -> "10.0")
func formatDecimal(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
