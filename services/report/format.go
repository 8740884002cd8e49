package reportservice

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type formatter struct {
	currency   string
	dateLayout string
	printer    *message.Printer
	title      cases.Caser
}

func newFormatter(opts Options) formatter {
	return formatter{
		currency:   strings.ToUpper(opts.Currency),
		dateLayout: opts.DateLayout,
		printer:    message.NewPrinter(language.English),
		title:      cases.Title(language.English),
	}
}

// money renders "USD 1,234.50".
func (f formatter) money(d decimal.Decimal) string {
	d = d.Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	whole := d.IntPart()
	cents := d.Sub(decimal.NewFromInt(whole)).Shift(2).IntPart()
	return fmt.Sprintf("%s %s%s.%02d", f.currency, sign, f.printer.Sprintf("%d", whole), cents)
}

func (f formatter) optionalMoney(d *decimal.Decimal) string {
	if d == nil {
		return NotAvailable
	}
	return f.money(*d)
}

func (f formatter) date(t time.Time) string {
	return t.Format(f.dateLayout)
}

func (f formatter) optionalDate(t *time.Time, sentinel string) string {
	if t == nil {
		return sentinel
	}
	return f.date(*t)
}

func (f formatter) timestamp(t time.Time) string {
	return t.Format(f.dateLayout + " 15:04")
}

// label turns an enum value such as "maintenance" into "Maintenance".
func (f formatter) label(s string) string {
	return f.title.String(strings.ReplaceAll(s, "_", " "))
}

func optionalInt(v *int) any {
	if v == nil {
		return NotAvailable
	}
	return *v
}

func optionalString(s *string, sentinel string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return sentinel
	}
	return *s
}

func joinTags(tags []string) string {
	if len(tags) == 0 {
		return NoTags
	}
	return strings.Join(tags, ", ")
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
