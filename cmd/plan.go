package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/advisor"
	"github.com/google/subcommands"
)

// planCmd is the top-level command for retirement planning.
type planCmd struct{}

func (*planCmd) Name() string     { return "plan" }
func (*planCmd) Synopsis() string { return "retirement planning commands" }
func (*planCmd) Usage() string {
	return `plan <subcommand> <options>

Retirement planning commands.
`
}
func (c *planCmd) SetFlags(f *flag.FlagSet) {}

func (c *planCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	commander := subcommands.NewCommander(f, "plan")
	commander.Register(&planSetCmd{}, "")
	commander.Register(&planProjectCmd{}, "")
	return commander.Execute(ctx, args...)
}

// planFlags holds the five retirement plan fields as flags, shared by the
// set and project subcommands.
type planFlags struct {
	currentAge          int
	retirementAge       int
	currentSavings      float64
	monthlyContribution float64
	savingsGoal         float64
}

func (p *planFlags) register(f *flag.FlagSet) {
	f.IntVar(&p.currentAge, "age", 0, "Current age.")
	f.IntVar(&p.retirementAge, "retirement-age", 0, "Planned retirement age.")
	f.Float64Var(&p.currentSavings, "savings", 0, "Current savings.")
	f.Float64Var(&p.monthlyContribution, "monthly", 0, "Monthly contribution.")
	f.Float64Var(&p.savingsGoal, "goal", 0, "Savings goal at retirement.")
}

func (p *planFlags) plan() advisor.Plan {
	return advisor.Plan{
		CurrentAge:          p.currentAge,
		RetirementAge:       p.retirementAge,
		CurrentSavings:      money(p.currentSavings),
		MonthlyContribution: money(p.monthlyContribution),
		SavingsGoal:         money(p.savingsGoal),
	}
}

// planSetCmd implements the "plan set" command.
type planSetCmd struct {
	planFlags
}

func (*planSetCmd) Name() string     { return "set" }
func (*planSetCmd) Synopsis() string { return "validate and display a retirement plan" }
func (*planSetCmd) Usage() string {
	return `fab plan set -age <n> -retirement-age <n> -savings <n> -monthly <n> -goal <n>

  Validates a retirement plan and displays it. The CLI process is its own
  session; use 'fab serve' to keep a plan alive across requests, or
  'fab plan project' to project a plan in one shot.
`
}

func (p *planSetCmd) SetFlags(f *flag.FlagSet) { p.register(f) }

func (p *planSetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	planner := advisor.NewPlanner()
	if err := planner.SetPlan(p.plan()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	plan, _ := planner.Plan()
	fmt.Println("Retirement plan updated!")
	fmt.Printf("  retire at %d (in %d years), goal %s, starting from %s plus %s monthly\n",
		plan.RetirementAge, plan.RetirementAge-plan.CurrentAge, plan.SavingsGoal,
		plan.CurrentSavings, plan.MonthlyContribution)
	return subcommands.ExitSuccess
}

// planProjectCmd implements the "plan project" command.
type planProjectCmd struct {
	planFlags
	rate float64
}

func (*planProjectCmd) Name() string { return "project" }
func (*planProjectCmd) Synopsis() string {
	return "project the savings goal under the current inflation rate"
}
func (*planProjectCmd) Usage() string {
	return `fab plan project -age <n> -retirement-age <n> -savings <n> -monthly <n> -goal <n> [-rate <pct>]

  Sets the retirement plan and projects the savings goal forward under the
  current annual inflation rate fetched from Alpha Vantage. When the rate
  cannot be fetched (or -rate is not forced), the projection degrades to a
  0% adjustment and says so.
`
}

func (p *planProjectCmd) SetFlags(f *flag.FlagSet) {
	p.register(f)
	f.Float64Var(&p.rate, "rate", -1, "Force an inflation rate instead of fetching it (percentage).")
}

func (p *planProjectCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session := advisor.NewSession(p.inflation(), nil, nil)
	if err := session.SetPlan(p.plan()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	projection, err := session.Projection(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(projectionMarkdown(projection))
	return subcommands.ExitSuccess
}

// inflation returns the gateway for the projection, honoring a forced rate.
func (p *planProjectCmd) inflation() advisor.InflationProvider {
	if p.rate >= 0 {
		return fixedRate(p.rate)
	}
	return newInflation()
}

// fixedRate is an InflationProvider returning a constant rate.
type fixedRate float64

func (r fixedRate) Rate(context.Context) (advisor.Percent, error) {
	return advisor.Percent(r), nil
}

// projectionMarkdown renders a projection result.
func projectionMarkdown(projection advisor.Projection) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Adjusted Savings Goal with Inflation (%s)\n\n", projection.Rate)
	fmt.Fprintf(&b, "**%s** in %d years\n", projection.AdjustedGoal, projection.Years)
	if projection.RateDefaulted {
		b.WriteString("\n> Note: the inflation rate could not be fetched, the goal is not adjusted.\n")
	}
	return b.String()
}
