package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/paisacalc/paisa/internal/calculation"
	"github.com/paisacalc/paisa/internal/domain"
	"github.com/paisacalc/paisa/internal/output"
)

// scene identifies which screen is active.
type scene int

const (
	scenePicker scene = iota
	sceneEditor
)

// fieldDef describes one editable parameter of a product.
type fieldDef struct {
	Label string
	Limit domain.FieldLimit
}

// productDef binds a product's fields to its calculation.
type productDef struct {
	Key    string
	Title  string
	Fields []fieldDef
	Calc   func(vals []float64) any
}

// products is the picker menu, in display order.
var products = []productDef{
	{
		Key: "sip", Title: "SIP",
		Fields: []fieldDef{
			{"Monthly Investment", domain.SIPMonthly},
			{"Expected Return (% p.a.)", domain.AnnualRatePct},
			{"Time Period (years)", domain.TenureYears},
		},
		Calc: func(v []float64) any {
			return calculation.CalculateSIP(domain.SIPInput{
				MonthlyInvestment: v[0], AnnualRatePct: v[1], Years: v[2],
			})
		},
	},
	{
		Key: "lumpsum", Title: "Lumpsum",
		Fields: []fieldDef{
			{"Total Investment", domain.LumpsumPrincipal},
			{"Expected Return (% p.a.)", domain.AnnualRatePct},
			{"Time Period (years)", domain.TenureYears},
		},
		Calc: func(v []float64) any {
			return calculation.CalculateLumpsum(domain.LumpsumInput{
				Principal: v[0], AnnualRatePct: v[1], Years: v[2],
			})
		},
	},
	{
		Key: "stepup-sip", Title: "Step-Up SIP",
		Fields: []fieldDef{
			{"Monthly Investment", domain.SIPMonthly},
			{"Expected Return (% p.a.)", domain.AnnualRatePct},
			{"Time Period (years)", domain.TenureYears},
			{"Annual Step-Up (%)", domain.StepUpPct},
		},
		Calc: func(v []float64) any {
			return calculation.CalculateStepUpSIP(domain.StepUpSIPInput{
				MonthlyInvestment: v[0], AnnualRatePct: v[1], Years: v[2], StepUpPct: v[3],
			})
		},
	},
	{
		Key: "fd", Title: "Fixed Deposit",
		Fields: []fieldDef{
			{"Total Investment", domain.FDPrincipal},
			{"Rate of Interest (% p.a.)", domain.FDRatePct},
			{"Time Period (years)", domain.FDTenureYears},
		},
		Calc: func(v []float64) any {
			return calculation.CalculateFD(domain.FDInput{
				Principal: v[0], AnnualRatePct: v[1], Tenure: v[2], Unit: domain.UnitYears,
			})
		},
	},
	{
		Key: "rd", Title: "Recurring Deposit",
		Fields: []fieldDef{
			{"Monthly Investment", domain.RDMonthly},
			{"Rate of Interest (% p.a.)", domain.RDRatePct},
			{"Time Period (years)", domain.RDTenureYears},
		},
		Calc: func(v []float64) any {
			return calculation.CalculateRD(domain.RDInput{
				MonthlyDeposit: v[0], AnnualRatePct: v[1], Tenure: v[2], Unit: domain.UnitYears,
			})
		},
	},
	{
		Key: "ppf", Title: "PPF",
		Fields: []fieldDef{
			{"Yearly Investment", domain.PPFYearly},
			{"Rate of Interest (% p.a.)", domain.AnnualRatePct},
			{"Time Period (years)", domain.PPFYears},
		},
		Calc: func(v []float64) any {
			return calculation.CalculatePPF(domain.PPFInput{
				YearlyInvestment: v[0], AnnualRatePct: v[1], Years: v[2],
			})
		},
	},
	{
		Key: "nsc", Title: "NSC",
		Fields: []fieldDef{
			{"Amount Invested", domain.NSCPrincipal},
			{"Rate of Interest (% p.a.)", domain.AnnualRatePct},
		},
		Calc: func(v []float64) any {
			return calculation.CalculateNSC(domain.NSCInput{
				Principal: v[0], AnnualRatePct: v[1], Frequency: domain.CompoundYearly,
			})
		},
	},
	{
		Key: "ssy", Title: "Sukanya Samriddhi Yojana",
		Fields: []fieldDef{
			{"Yearly Investment", domain.SSYYearly},
			{"Rate of Interest (% p.a.)", domain.AnnualRatePct},
			{"Start Year", domain.SSYStartYear},
		},
		Calc: func(v []float64) any {
			return calculation.CalculateSSY(domain.SSYInput{
				YearlyInvestment: v[0], AnnualRatePct: v[1], StartYear: int(v[2]),
			})
		},
	},
	{
		Key: "epf", Title: "EPF",
		Fields: []fieldDef{
			{"Monthly Salary (Basic + DA)", domain.EPFMonthlySalary},
			{"Your Contribution (%)", domain.EPFContributionPct},
			{"Annual Salary Increase (%)", domain.EPFAnnualIncrease},
			{"Rate of Interest (% p.a.)", domain.AnnualRatePct},
			{"Current Age", domain.EPFAge},
		},
		Calc: func(v []float64) any {
			return calculation.CalculateEPF(domain.EPFInput{
				MonthlySalary: v[0], ContributionPct: v[1], AnnualIncrease: v[2],
				AnnualRatePct: v[3], Age: v[4],
			})
		},
	},
	{
		Key: "nps", Title: "NPS",
		Fields: []fieldDef{
			{"Monthly Investment", domain.NPSMonthly},
			{"Expected Return (% p.a.)", domain.AnnualRatePct},
			{"Current Age", domain.NPSAge},
		},
		Calc: func(v []float64) any {
			return calculation.CalculateNPS(domain.NPSInput{
				MonthlyInvestment: v[0], AnnualRatePct: v[1], Age: v[2],
			})
		},
	},
	{
		Key: "gratuity", Title: "Gratuity",
		Fields: []fieldDef{
			{"Monthly Salary (Basic + DA)", domain.GratuitySalary},
			{"Years of Service", domain.GratuityYears},
		},
		Calc: func(v []float64) any {
			return calculation.CalculateGratuity(domain.GratuityInput{
				MonthlySalary: v[0], YearsOfService: v[1],
			})
		},
	},
	{
		Key: "swp", Title: "SWP",
		Fields: []fieldDef{
			{"Total Investment", domain.SWPPrincipal},
			{"Withdrawal per Month", domain.SWPWithdrawal},
			{"Expected Return (% p.a.)", domain.AnnualRatePct},
			{"Time Period (years)", domain.SWPYears},
		},
		Calc: func(v []float64) any {
			return calculation.CalculateSWP(domain.SWPInput{
				Principal: v[0], MonthlyWithdrawal: v[1], AnnualRatePct: v[2], Years: v[3],
			})
		},
	},
	{
		Key: "simple-interest", Title: "Simple Interest",
		Fields: []fieldDef{
			{"Principal Amount", domain.LumpsumPrincipal},
			{"Rate of Interest (% p.a.)", domain.AnnualRatePct},
			{"Time Period (years)", domain.TenureYears},
		},
		Calc: func(v []float64) any {
			return calculation.CalculateSimpleInterest(domain.SimpleInterestInput{
				Principal: v[0], AnnualRatePct: v[1], Years: v[2],
			})
		},
	},
	{
		Key: "compound-interest", Title: "Compound Interest",
		Fields: []fieldDef{
			{"Principal Amount", domain.LumpsumPrincipal},
			{"Rate of Interest (% p.a.)", domain.AnnualRatePct},
			{"Time Period (years)", domain.TenureYears},
		},
		Calc: func(v []float64) any {
			return calculation.CalculateCompoundInterest(domain.CompoundInterestInput{
				Principal: v[0], AnnualRatePct: v[1], Years: v[2],
				Frequency: domain.CompoundYearly,
			})
		},
	},
	{
		Key: "mf-return", Title: "Mutual Fund Returns",
		Fields: []fieldDef{
			{"Total Investment", domain.LumpsumPrincipal},
			{"Expected Return (% p.a.)", domain.AnnualRatePct},
			{"Time Period (years)", domain.TenureYears},
		},
		Calc: func(v []float64) any {
			return calculation.CalculateMFReturn(domain.MFReturnInput{
				Principal: v[0], AnnualRatePct: v[1], Years: v[2],
			})
		},
	},
}

// Model is the application state.
type Model struct {
	currentScene scene
	cursor       int
	product      productDef
	inputs       []textinput.Model
	focusIndex   int
	summary      *output.Summary
	width        int
	height       int
}

// NewModel creates the model at the product picker.
func NewModel() Model {
	return Model{
		currentScene: scenePicker,
		width:        80,
		height:       24,
	}
}

// Init satisfies tea.Model. Nothing to load up front.
func (m Model) Init() tea.Cmd {
	return nil
}

// enterEditor swaps to the editor for the product under the cursor.
func (m Model) enterEditor() Model {
	m.product = products[m.cursor]
	m.inputs = make([]textinput.Model, len(m.product.Fields))
	for i, f := range m.product.Fields {
		ti := textinput.New()
		ti.Placeholder = formatLimitDefault(f.Limit)
		ti.CharLimit = 12
		ti.Width = 14
		if i == 0 {
			ti.Focus()
		}
		m.inputs[i] = ti
	}
	m.focusIndex = 0
	m.summary = nil
	m.currentScene = sceneEditor
	return m.recalculate()
}

// recalculate parses every field and refreshes the result summary.
func (m Model) recalculate() Model {
	vals := make([]float64, len(m.inputs))
	var errs []domain.FieldError
	for i, f := range m.product.Fields {
		raw := m.inputs[i].Value()
		if raw == "" {
			raw = formatLimitDefault(f.Limit)
		}
		vals[i] = calculation.ParseField(raw, f.Limit)
		if fieldErr := calculation.CheckMin(f.Label, vals[i], f.Limit); fieldErr != nil {
			errs = append(errs, *fieldErr)
		}
	}

	s := output.Summarize(m.product.Key, m.product.Calc(vals))
	s.Errors = errs
	m.summary = &s
	return m
}
