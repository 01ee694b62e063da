package advisor

import "fmt"

// Plan holds the retirement configuration for the session.
type Plan struct {
	CurrentAge          int
	RetirementAge       int
	CurrentSavings      Money
	MonthlyContribution Money
	SavingsGoal         Money
}

// Projection is the result of an inflation-adjusted savings projection.
type Projection struct {
	// Rate is the annual inflation rate used for the adjustment.
	Rate Percent
	// RateDefaulted is true when the inflation gateway was unavailable and
	// the rate silently degraded to 0. It lets callers tell "real 0%" apart
	// from "fetch failed".
	RateDefaulted bool
	// Years is the number of years until retirement. It can be zero or
	// negative when the plan is misconfigured; the goal is then scaled by a
	// unit or inverse factor.
	Years int
	// AdjustedGoal is the savings goal compounded forward by Rate over Years.
	AdjustedGoal Money
}

// Planner holds the single active retirement plan of a session.
//
// The plan starts unset; SetPlan replaces it whole. There is no partial
// update and no history of prior plans.
type Planner struct {
	plan *Plan
}

// NewPlanner creates a planner with no plan set.
func NewPlanner() *Planner { return &Planner{} }

// SetPlan replaces the stored plan atomically.
//
// Negative ages and amounts are rejected with ErrInvalidInput. The logical
// ordering of ages (retirement after current) is the caller's responsibility.
func (p *Planner) SetPlan(plan Plan) error {
	if plan.CurrentAge < 0 || plan.RetirementAge < 0 {
		return fmt.Errorf("%w: ages must not be negative", ErrInvalidInput)
	}
	if plan.CurrentSavings.IsNegative() || plan.MonthlyContribution.IsNegative() || plan.SavingsGoal.IsNegative() {
		return fmt.Errorf("%w: plan amounts must not be negative", ErrInvalidInput)
	}
	p.plan = &plan
	return nil
}

// Plan returns the current plan and whether one has been set.
func (p *Planner) Plan() (Plan, bool) {
	if p.plan == nil {
		return Plan{}, false
	}
	return *p.plan, true
}

// Project computes the inflation-adjusted savings goal
//
//	adjusted = goal * (1 + rate/100) ^ yearsToRetirement
//
// using exact decimal arithmetic. It returns ErrPlanIncomplete when no plan
// has been set.
func (p *Planner) Project(rate Percent) (Projection, error) {
	if p.plan == nil {
		return Projection{}, ErrPlanIncomplete
	}

	years := p.plan.RetirementAge - p.plan.CurrentAge
	factor, err := rate.Factor().PowInt32(int32(years))
	if err != nil {
		// only 0^negative fails, i.e. a -100% rate with a past retirement age
		return Projection{}, fmt.Errorf("%w: cannot compound %s over %d years", ErrInvalidInput, rate, years)
	}

	return Projection{
		Rate:         rate,
		Years:        years,
		AdjustedGoal: p.plan.SavingsGoal.Mul(factor),
	}, nil
}
