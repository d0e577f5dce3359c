package cli

import (
	"fmt"
	"os"

	"github.com/lifesim/scenario-engine/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a life-scenario simulation against the baseline",
}

var (
	relocateCity       string
	relocateIncome     float64
	relocateCOL        float64
	relocateMovingCost float64

	careerField      string
	careerSalary     float64
	careerCost       float64
	careerTransition int

	childMonthly float64
	childInitial float64

	homePrice float64
	homeDown  float64
	homeRate  float64
	homeYears int

	retireAge int

	debtAmount float64
	debtExtra  float64

	customTitle       string
	customDescription string
)

func runRequest(req domain.ScenarioRequest) error {
	svc, cfg, err := newService()
	if err != nil {
		return err
	}
	formatter, err := newFormatter()
	if err != nil {
		return err
	}

	record := svc.Simulate(cfg.Profile, req, horizonMonths(cfg))
	data, err := formatter.Format(&record)
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, string(data))
	return nil
}

var relocateCmd = &cobra.Command{
	Use:   "relocate",
	Short: "Relocate to another city",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRequest(domain.RelocateRequest{
			City:               relocateCity,
			IncomeFactor:       decimal.NewFromFloat(relocateIncome),
			CostOfLivingFactor: decimal.NewFromFloat(relocateCOL),
			MovingCost:         decimal.NewFromFloat(relocateMovingCost),
		})
	},
}

var careerCmd = &cobra.Command{
	Use:   "career",
	Short: "Change careers",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRequest(domain.CareerChangeRequest{
			Field:            careerField,
			NewMonthlySalary: decimal.NewFromFloat(careerSalary),
			TransitionCost:   decimal.NewFromFloat(careerCost),
			TransitionMonths: careerTransition,
		})
	},
}

var childCmd = &cobra.Command{
	Use:   "child",
	Short: "Have a child",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRequest(domain.HaveChildRequest{
			MonthlyCost: decimal.NewFromFloat(childMonthly),
			InitialCost: decimal.NewFromFloat(childInitial),
		})
	},
}

var homeCmd = &cobra.Command{
	Use:   "home",
	Short: "Buy a home with a fixed-rate mortgage",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRequest(domain.BuyHomeRequest{
			HomePrice:          decimal.NewFromFloat(homePrice),
			DownPaymentPercent: decimal.NewFromFloat(homeDown),
			MortgageRate:       decimal.NewFromFloat(homeRate),
			TermYears:          homeYears,
		})
	},
}

var retireCmd = &cobra.Command{
	Use:   "retire",
	Short: "Retire early at a target age",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRequest(domain.EarlyRetirementRequest{TargetAge: retireAge})
	},
}

var debtCmd = &cobra.Command{
	Use:   "payoff",
	Short: "Pay off a debt with extra monthly payments",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRequest(domain.PayOffDebtRequest{
			DebtAmount:   decimal.NewFromFloat(debtAmount),
			ExtraPayment: decimal.NewFromFloat(debtExtra),
		})
	},
}

// customScenarioParams builds the sparse delta set from the flags the user
// actually set; untouched flags stay absent rather than becoming zero deltas.
func customScenarioParams(flags *pflag.FlagSet) domain.ScenarioParameters {
	params := domain.ScenarioParameters{}
	setDelta := func(name string, dst **decimal.Decimal) {
		if flags.Changed(name) {
			v, _ := flags.GetFloat64(name)
			d := decimal.NewFromFloat(v)
			*dst = &d
		}
	}
	setDelta("extra-expenses", &params.AdditionalExpenses)
	setDelta("extra-income", &params.AdditionalIncome)
	setDelta("one-time-cost", &params.OneTimeCost)
	setDelta("savings-rate", &params.NewSavingsRate)
	return params
}

var customCmd = &cobra.Command{
	Use:   "custom",
	Short: "Apply explicit parameter deltas",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRequest(domain.CustomRequest{
			Title:       customTitle,
			Description: customDescription,
			Parameters:  customScenarioParams(cmd.Flags()),
		})
	},
}

func init() {
	relocateCmd.Flags().StringVar(&relocateCity, "city", "", "Target city")
	relocateCmd.Flags().Float64Var(&relocateIncome, "income-factor", 1.0, "Multiplier on current salary")
	relocateCmd.Flags().Float64Var(&relocateCOL, "col-factor", 1.0, "Multiplier on monthly expenses")
	relocateCmd.Flags().Float64Var(&relocateMovingCost, "moving-cost", 0, "One-time moving cost")

	careerCmd.Flags().StringVar(&careerField, "field", "", "New field or role")
	careerCmd.Flags().Float64Var(&careerSalary, "salary", 0, "New monthly salary")
	careerCmd.Flags().Float64Var(&careerCost, "transition-cost", 0, "One-time transition cost")
	careerCmd.Flags().IntVar(&careerTransition, "transition-months", 0, "Months without income")

	childCmd.Flags().Float64Var(&childMonthly, "monthly-cost", 0, "Recurring monthly cost")
	childCmd.Flags().Float64Var(&childInitial, "initial-cost", 0, "One-time initial cost")

	homeCmd.Flags().Float64Var(&homePrice, "price", 0, "Home price")
	homeCmd.Flags().Float64Var(&homeDown, "down", 20, "Down payment percent")
	homeCmd.Flags().Float64Var(&homeRate, "rate", 0.065, "Annual mortgage rate")
	homeCmd.Flags().IntVar(&homeYears, "years", 30, "Mortgage term in years")

	retireCmd.Flags().IntVar(&retireAge, "age", 0, "Target retirement age")

	debtCmd.Flags().Float64Var(&debtAmount, "amount", 0, "Debt balance to track")
	debtCmd.Flags().Float64Var(&debtExtra, "extra", 0, "Extra monthly payment")

	customCmd.Flags().StringVar(&customTitle, "title", "", "Scenario title")
	customCmd.Flags().StringVar(&customDescription, "description", "", "Scenario description")
	customCmd.Flags().Float64("extra-expenses", 0, "Additional monthly expenses")
	customCmd.Flags().Float64("extra-income", 0, "Additional monthly income")
	customCmd.Flags().Float64("one-time-cost", 0, "One-time cost")
	customCmd.Flags().Float64("savings-rate", 0, "Override savings rate (0-1)")

	simulateCmd.AddCommand(relocateCmd, careerCmd, childCmd, homeCmd, retireCmd, debtCmd, customCmd)
	rootCmd.AddCommand(simulateCmd)
}
