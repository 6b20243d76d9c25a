package offerings

import (
	"fmt"
	"os"
	"sort"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

const DefaultServiceFee = "2.00"

// Table is the allow-list of amounts. It is read-only after construction and
// safe for concurrent use.
type Table struct {
	offerings map[string]Offering
}

func DefaultTable() Table {
	table, err := NewTable(
		Offering{Amount: "52.00", BaseAmount: "50.00", Fee: DefaultServiceFee, Description: "Tutoring session (1 hour)"},
		Offering{Amount: "102.00", BaseAmount: "100.00", Fee: DefaultServiceFee, Description: "Tutoring sessions (2 hours)"},
		Offering{Amount: "206.00", BaseAmount: "204.00", Fee: DefaultServiceFee, Description: "Tutoring package (4 hours)"},
	)
	if err != nil {
		panic(fmt.Sprintf("default offering table is inconsistent: %s", err))
	}
	return table
}

// NewTable checks that every offering key is the two-decimal rendering of
// base plus fee. Requests are still matched on the literal key.
func NewTable(offerings ...Offering) (Table, error) {
	if len(offerings) == 0 {
		return Table{}, fmt.Errorf("offering table is empty")
	}

	table := Table{offerings: make(map[string]Offering, len(offerings))}
	for _, o := range offerings {
		err := o.check()
		if err != nil {
			return Table{}, err
		}
		if _, exists := table.offerings[o.Amount]; exists {
			return Table{}, fmt.Errorf("duplicate offering for amount '%s'", o.Amount)
		}
		table.offerings[o.Amount] = o
	}
	return table, nil
}

type offeringFile struct {
	Offerings []Offering `yaml:"offerings"`
}

func LoadFile(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("error reading offering file %s: %w", path, err)
	}

	file := offeringFile{}
	err = yaml.Unmarshal(data, &file)
	if err != nil {
		return Table{}, fmt.Errorf("error parsing offering file %s: %w", path, err)
	}

	table, err := NewTable(file.Offerings...)
	if err != nil {
		return Table{}, fmt.Errorf("invalid offering file %s: %w", path, err)
	}
	return table, nil
}

// Validate is the only gate between a client supplied amount and a charge.
// "52", "52.0" and "52.000" are all rejected when the table holds "52.00".
func (t Table) Validate(amount string) (Offering, error) {
	offering, found := t.offerings[amount]
	if !found {
		return Offering{}, &InvalidAmountError{Amount: amount}
	}
	return offering, nil
}

// All returns the offerings ordered by amount.
func (t Table) All() []Offering {
	result := make([]Offering, 0, len(t.offerings))
	for _, o := range t.offerings {
		result = append(result, o)
	}
	sort.Slice(result, func(i, j int) bool {
		return decimal.RequireFromString(result[i].Amount).LessThan(decimal.RequireFromString(result[j].Amount))
	})
	return result
}

func (o Offering) check() error {
	if o.Description == "" {
		return fmt.Errorf("offering '%s' has no description", o.Amount)
	}

	amount, err := decimal.NewFromString(o.Amount)
	if err != nil {
		return fmt.Errorf("offering amount '%s' is not a decimal: %w", o.Amount, err)
	}
	if amount.StringFixed(2) != o.Amount {
		return fmt.Errorf("offering amount '%s' must be written with exactly two decimals", o.Amount)
	}
	if !amount.IsPositive() {
		return fmt.Errorf("offering amount '%s' must be positive", o.Amount)
	}

	base, err := decimal.NewFromString(o.BaseAmount)
	if err != nil {
		return fmt.Errorf("offering '%s' base amount '%s' is not a decimal: %w", o.Amount, o.BaseAmount, err)
	}
	fee, err := decimal.NewFromString(o.Fee)
	if err != nil {
		return fmt.Errorf("offering '%s' fee '%s' is not a decimal: %w", o.Amount, o.Fee, err)
	}
	if !base.Add(fee).Equal(amount) {
		return fmt.Errorf("offering '%s' does not equal base %s plus fee %s", o.Amount, o.BaseAmount, o.Fee)
	}
	return nil
}
