package pension

import "github.com/shopspring/decimal"

// Rates holds the employee and employer contribution rates as fractions
// (0.07 means 7%).
type Rates struct {
	Employee decimal.Decimal
	Employer decimal.Decimal
}

type Contribution struct {
	Employee decimal.Decimal
	Employer decimal.Decimal
	Total    decimal.Decimal
}

// Contributions applies the rate pair to a pensionable base. A zero or
// negative base yields zero contributions.
func Contributions(base decimal.Decimal, rates Rates) Contribution {
	if base.Sign() <= 0 {
		return Contribution{
			Employee: decimal.Zero,
			Employer: decimal.Zero,
			Total:    decimal.Zero,
		}
	}

	employee := base.Mul(rates.Employee)
	employer := base.Mul(rates.Employer)

	return Contribution{
		Employee: employee,
		Employer: employer,
		Total:    employee.Add(employer),
	}
}
