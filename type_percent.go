package advisor

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Percent represents a percentage value, e.g. Percent(3) is 3%.
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

// Factor returns the exact growth factor 1 + p/100 applied by one period of
// compounding at this rate.
func (p Percent) Factor() decimal.Decimal {
	return decimal.NewFromFloat(float64(p)).Div(decimal.NewFromInt(100)).Add(decimal.NewFromInt(1))
}
