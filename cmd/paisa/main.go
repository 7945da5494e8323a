package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"strings"

	"github.com/paisacalc/paisa/internal/calculation"
	"github.com/paisacalc/paisa/internal/compare"
	"github.com/paisacalc/paisa/internal/config"
	"github.com/paisacalc/paisa/internal/domain"
	"github.com/paisacalc/paisa/internal/goalseek"
	"github.com/paisacalc/paisa/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "paisa %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

var rootCmd = &cobra.Command{
	Use:   "paisa",
	Short: "Indian investment and savings calculators",
	Long:  "Calculators for SIP, lumpsum, deposits, small savings schemes, retirement corpus and withdrawals",
}

// calcFlags collects every parameter a product calculation may need.
// Each product reads only the ones it uses.
type calcFlags struct {
	amount          float64
	rate            float64
	years           float64
	months          float64
	days            float64
	stepUp          float64
	withdrawal      float64
	age             float64
	contributionPct float64
	annualIncrease  float64
	startYear       int
	frequency       string
	simple          bool
	calibrate       bool
}

func registerCalcFlags(cmd *cobra.Command, f *calcFlags) {
	cmd.Flags().Float64VarP(&f.amount, "amount", "a", 0, "Investment amount (monthly, yearly or one-time depending on the product)")
	cmd.Flags().Float64VarP(&f.rate, "rate", "r", 0, "Annual interest or return rate in percent")
	cmd.Flags().Float64VarP(&f.years, "years", "y", 0, "Tenure in years")
	cmd.Flags().Float64Var(&f.months, "months", 0, "Tenure in months (FD and RD)")
	cmd.Flags().Float64Var(&f.days, "days", 0, "Tenure in days (FD only)")
	cmd.Flags().Float64Var(&f.stepUp, "step-up", 0, "Annual SIP increase in percent")
	cmd.Flags().Float64VarP(&f.withdrawal, "withdrawal", "w", 0, "Monthly withdrawal amount (SWP)")
	cmd.Flags().Float64Var(&f.age, "age", 0, "Current age (EPF and NPS)")
	cmd.Flags().Float64Var(&f.contributionPct, "contribution-pct", 0, "Employee EPF contribution in percent")
	cmd.Flags().Float64Var(&f.annualIncrease, "annual-increase", 0, "Expected yearly salary increase in percent")
	cmd.Flags().IntVar(&f.startYear, "start-year", 0, "Investment start year (SSY)")
	cmd.Flags().StringVar(&f.frequency, "frequency", "yearly", "Compounding frequency (yearly, half-yearly, quarterly)")
	cmd.Flags().BoolVar(&f.simple, "simple", false, "Use simple interest for FD")
	cmd.Flags().BoolVar(&f.calibrate, "calibrate", false, "Apply the SSY published-table calibration offset")
}

func parseFrequency(s string) (domain.CompoundingFrequency, error) {
	switch strings.ToLower(s) {
	case "", "yearly":
		return domain.CompoundYearly, nil
	case "half-yearly", "halfyearly":
		return domain.CompoundHalfYearly, nil
	case "quarterly":
		return domain.CompoundQuarterly, nil
	default:
		return domain.CompoundYearly, fmt.Errorf("unknown frequency %q (yearly, half-yearly, quarterly)", s)
	}
}

// fdTenure picks the tenure unit from whichever flag was set, most specific
// first.
func fdTenure(f calcFlags) (float64, domain.TenureUnit) {
	switch {
	case f.days > 0:
		return f.days, domain.UnitDays
	case f.months > 0:
		return f.months, domain.UnitMonths
	default:
		return f.years, domain.UnitYears
	}
}

// runCalculation maps the flags onto the product's input and computes it.
// Scheme rates left at zero fall back to the configured defaults.
func runCalculation(product string, f calcFlags, schemes *config.SchemeConfig) (any, error) {
	freq, err := parseFrequency(f.frequency)
	if err != nil {
		return nil, err
	}

	switch product {
	case "sip":
		return calculation.CalculateSIP(domain.SIPInput{
			MonthlyInvestment: f.amount, AnnualRatePct: f.rate, Years: f.years,
		}), nil
	case "lumpsum":
		return calculation.CalculateLumpsum(domain.LumpsumInput{
			Principal: f.amount, AnnualRatePct: f.rate, Years: f.years,
		}), nil
	case "stepup-sip":
		return calculation.CalculateStepUpSIP(domain.StepUpSIPInput{
			MonthlyInvestment: f.amount, AnnualRatePct: f.rate, Years: f.years, StepUpPct: f.stepUp,
		}), nil
	case "fd":
		tenure, unit := fdTenure(f)
		return calculation.CalculateFD(domain.FDInput{
			Principal: f.amount, AnnualRatePct: f.rate, Tenure: tenure, Unit: unit, SimpleMode: f.simple,
		}), nil
	case "rd":
		tenure, unit := f.years, domain.UnitYears
		if f.months > 0 {
			tenure, unit = f.months, domain.UnitMonths
		}
		return calculation.CalculateRD(domain.RDInput{
			MonthlyDeposit: f.amount, AnnualRatePct: f.rate, Tenure: tenure, Unit: unit,
		}), nil
	case "ppf":
		rate := f.rate
		if rate == 0 && schemes != nil {
			rate = schemes.PPFRatePct
		}
		return calculation.CalculatePPF(domain.PPFInput{
			YearlyInvestment: f.amount, AnnualRatePct: rate, Years: f.years,
		}), nil
	case "nsc":
		rate := f.rate
		if rate == 0 && schemes != nil {
			rate = schemes.NSCRatePct
		}
		return calculation.CalculateNSC(domain.NSCInput{
			Principal: f.amount, AnnualRatePct: rate, Frequency: freq,
		}), nil
	case "ssy":
		rate := f.rate
		calibrate := f.calibrate
		if schemes != nil {
			if rate == 0 {
				rate = schemes.SSYRatePct
			}
			calibrate = calibrate || schemes.SSYCalibration
		}
		return calculation.CalculateSSY(domain.SSYInput{
			YearlyInvestment: f.amount, AnnualRatePct: rate, StartYear: f.startYear, Calibrate: calibrate,
		}), nil
	case "epf":
		rate := f.rate
		if rate == 0 && schemes != nil {
			rate = schemes.EPFRatePct
		}
		return calculation.CalculateEPF(domain.EPFInput{
			MonthlySalary: f.amount, ContributionPct: f.contributionPct,
			AnnualIncrease: f.annualIncrease, AnnualRatePct: rate, Age: f.age,
		}), nil
	case "nps":
		return calculation.CalculateNPS(domain.NPSInput{
			MonthlyInvestment: f.amount, AnnualRatePct: f.rate, Age: f.age,
		}), nil
	case "gratuity":
		var gratuityCap float64
		if schemes != nil {
			gratuityCap = schemes.GratuityCap
		}
		return calculation.CalculateGratuity(domain.GratuityInput{
			MonthlySalary: f.amount, YearsOfService: f.years, Cap: gratuityCap,
		}), nil
	case "swp":
		return calculation.CalculateSWP(domain.SWPInput{
			Principal: f.amount, MonthlyWithdrawal: f.withdrawal, AnnualRatePct: f.rate, Years: f.years,
		}), nil
	case "simple-interest":
		return calculation.CalculateSimpleInterest(domain.SimpleInterestInput{
			Principal: f.amount, AnnualRatePct: f.rate, Years: f.years,
		}), nil
	case "compound-interest":
		return calculation.CalculateCompoundInterest(domain.CompoundInterestInput{
			Principal: f.amount, AnnualRatePct: f.rate, Years: f.years, Frequency: freq,
		}), nil
	case "mf-return":
		return calculation.CalculateMFReturn(domain.MFReturnInput{
			Principal: f.amount, AnnualRatePct: f.rate, Years: f.years,
		}), nil
	default:
		return nil, fmt.Errorf("unknown product %q, see 'paisa calculate --help'", product)
	}
}

func loadSchemes(path string) (*config.SchemeConfig, error) {
	if path == "" {
		return config.Default(), nil
	}
	parser := config.NewInputParser()
	return parser.LoadFromFile(path)
}

func calculateCmd() *cobra.Command {
	var f calcFlags
	var schemesPath, format string

	cmd := &cobra.Command{
		Use:   "calculate <product>",
		Short: "Calculate maturity for a product",
		Long: "Products: sip, lumpsum, stepup-sip, fd, rd, ppf, nsc, ssy, epf, nps,\n" +
			"gratuity, swp, simple-interest, compound-interest, mf-return",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			product := args[0]

			schemes, err := loadSchemes(schemesPath)
			if err != nil {
				return err
			}

			result, err := runCalculation(product, f, schemes)
			if err != nil {
				return err
			}

			formatter := output.GetFormatterByName(format)
			if formatter == nil {
				return fmt.Errorf("unknown format %q (console, json, csv)", format)
			}

			data, err := formatter.Format(output.Summarize(product, result))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	registerCalcFlags(cmd, &f)
	cmd.Flags().StringVar(&schemesPath, "schemes", "", "Path to a scheme rates YAML file")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "Output format (console, json, csv)")
	return cmd
}

func goalCmd() *cobra.Command {
	var target, rate, years float64
	var kind string

	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Find the investment needed to reach a target corpus",
		RunE: func(cmd *cobra.Command, args []string) error {
			goalTarget := goalseek.TargetMonthlySIP
			if kind == "lumpsum" {
				goalTarget = goalseek.TargetLumpsum
			} else if kind != "sip" {
				return fmt.Errorf("unknown goal type %q (sip, lumpsum)", kind)
			}

			solver := goalseek.NewDefaultSolver()
			result, err := solver.Solve(context.Background(), goalseek.Request{
				Target:        goalTarget,
				TargetCorpus:  decimal.NewFromFloat(target),
				AnnualRatePct: rate,
				Years:         years,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Required amount:  %s\n", result.RequiredAmount.StringFixed(2))
			fmt.Fprintf(cmd.OutOrStdout(), "Projected value:  %s\n", result.AchievedValue.StringFixed(0))
			fmt.Fprintf(cmd.OutOrStdout(), "Iterations:       %d\n", result.Iterations)
			fmt.Fprintf(cmd.OutOrStdout(), "Status:           %s\n", result.ConvergenceInfo)
			if !result.Converged {
				return fmt.Errorf("goal could not be met within product limits")
			}
			return nil
		},
	}

	cmd.Flags().Float64VarP(&target, "target", "t", 0, "Target corpus amount (required)")
	cmd.Flags().Float64VarP(&rate, "rate", "r", 12, "Expected annual return in percent")
	cmd.Flags().Float64VarP(&years, "years", "y", 10, "Investment horizon in years")
	cmd.Flags().StringVar(&kind, "type", "sip", "Goal type (sip, lumpsum)")
	_ = cmd.MarkFlagRequired("target")
	return cmd
}

func compareCmd() *cobra.Command {
	var budget, years, equityRate, rdRate, stepUp float64
	var format string

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare investment strategies over the same budget and horizon",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine := compare.NewCompareEngine()
			compSet, err := engine.Compare(context.Background(), compare.CompareOptions{
				MonthlyBudget: budget,
				Years:         years,
				EquityRatePct: equityRate,
				RDRatePct:     rdRate,
				StepUpPct:     stepUp,
			})
			if err != nil {
				return err
			}

			switch format {
			case "table":
				fmt.Fprint(cmd.OutOrStdout(), (&compare.TableFormatter{}).Format(compSet))
			case "json":
				out, err := (&compare.JSONFormatter{Pretty: true}).Format(compSet)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
			case "csv":
				out, err := (&compare.CSVFormatter{}).Format(compSet)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), out)
			default:
				return fmt.Errorf("unknown format %q (table, csv, json)", format)
			}
			return nil
		},
	}

	cmd.Flags().Float64VarP(&budget, "budget", "b", 10000, "Monthly investment budget")
	cmd.Flags().Float64VarP(&years, "years", "y", 10, "Investment horizon in years")
	cmd.Flags().Float64Var(&equityRate, "equity-rate", 12, "Expected market return in percent")
	cmd.Flags().Float64Var(&rdRate, "rd-rate", 7, "Bank recurring deposit rate in percent")
	cmd.Flags().Float64Var(&stepUp, "step-up", 10, "Annual step-up in percent")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format (table, csv, json)")
	return cmd
}

func reportCmd() *cobra.Command {
	var f calcFlags
	var outPath string

	cmd := &cobra.Command{
		Use:   "report <product>",
		Short: "Write a PDF schedule report (swp, ssy, epf)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			product := args[0]

			var report output.SchedulePDF
			switch product {
			case "swp":
				result := calculation.CalculateSWP(domain.SWPInput{
					Principal: f.amount, MonthlyWithdrawal: f.withdrawal, AnnualRatePct: f.rate, Years: f.years,
				})
				report = output.SWPSchedulePDF(result)
			case "ssy":
				result := calculation.CalculateSSY(domain.SSYInput{
					YearlyInvestment: f.amount, AnnualRatePct: f.rate, StartYear: f.startYear, Calibrate: f.calibrate,
				})
				report = output.YearSchedulePDF("Sukanya Samriddhi Yojana", product, result, result.Schedule)
			case "epf":
				result := calculation.CalculateEPF(domain.EPFInput{
					MonthlySalary: f.amount, ContributionPct: f.contributionPct,
					AnnualIncrease: f.annualIncrease, AnnualRatePct: f.rate, Age: f.age,
				})
				report = output.YearSchedulePDF("Employees' Provident Fund", product, result, result.Schedule)
			default:
				return fmt.Errorf("no schedule report for product %q (swp, ssy, epf)", product)
			}

			file, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("failed to create report file: %w", err)
			}
			defer file.Close()

			if err := report.Write(file); err != nil {
				return fmt.Errorf("failed to write report: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", outPath)
			return nil
		},
	}

	registerCalcFlags(cmd, &f)
	cmd.Flags().StringVarP(&outPath, "out", "o", "report.pdf", "Output PDF path")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <schemes-file>",
		Short: "Validate a scheme rates YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			cfg, err := parser.LoadFromFile(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration is valid (PPF %.2f%%, NSC %.2f%%, SSY %.2f%%, EPF %.2f%%)\n",
				cfg.PPFRatePct, cfg.NSCRatePct, cfg.SSYRatePct, cfg.EPFRatePct)
			return nil
		},
	}
}

func main() {
	rootCmd.AddCommand(calculateCmd())
	rootCmd.AddCommand(goalCmd())
	rootCmd.AddCommand(compareCmd())
	rootCmd.AddCommand(reportCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
