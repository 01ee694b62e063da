package cmd

import (
	"strings"
	"testing"

	"github.com/etnz/advisor"
)

func TestProjectionMarkdown(t *testing.T) {
	projection := advisor.Projection{
		Rate:         3.0,
		Years:        35,
		AdjustedGoal: advisor.M(2813862.0, "USD"),
	}

	md := projectionMarkdown(projection)
	if !strings.Contains(md, "Adjusted Savings Goal with Inflation (3.00%)") {
		t.Errorf("projectionMarkdown() misses the title:\n%s", md)
	}
	if !strings.Contains(md, "**$2,813,862.00** in 35 years") {
		t.Errorf("projectionMarkdown() misses the adjusted goal:\n%s", md)
	}
	if strings.Contains(md, "Note:") {
		t.Errorf("projectionMarkdown() carries a degradation note without a default:\n%s", md)
	}
}

func TestProjectionMarkdown_Defaulted(t *testing.T) {
	projection := advisor.Projection{
		RateDefaulted: true,
		Years:         35,
		AdjustedGoal:  advisor.M(1000000.0, "USD"),
	}

	md := projectionMarkdown(projection)
	if !strings.Contains(md, "Note: the inflation rate could not be fetched") {
		t.Errorf("projectionMarkdown() misses the degradation note:\n%s", md)
	}
}
