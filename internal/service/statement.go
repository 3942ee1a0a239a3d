package service

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"bluesoft-bank/internal/domain"
)

const statementDateLayout = "2006-01-02 15:04:05"

// RenderStatement turns an ordered movement list into the monthly statement
// text. Deposits add to the running total, withdrawals subtract, and the
// final line carries the resulting balance. Movements are rendered in input
// order; callers must supply them already sorted chronologically.
func RenderStatement(movements []domain.Movement) string {
	total := decimal.Zero

	var b strings.Builder
	b.WriteString("**Extracto mensual**\n\n")

	for _, m := range movements {
		switch m.Kind {
		case domain.KindDeposit:
			total = total.Add(m.Amount)
		case domain.KindWithdrawal:
			total = total.Sub(m.Amount)
		}

		fmt.Fprintf(&b, "- %s: %s - %s€\n", m.OccurredAt.Format(statementDateLayout), m.Kind, m.Amount)
	}

	fmt.Fprintf(&b, "\n**Saldo final**: %s€", total)

	return b.String()
}
