package discord

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// MoneyFormatter renders amounts with a fixed locale's digit grouping and a
// currency symbol. Expenses display as en-US USD, cashflows as id-ID IDR.
type MoneyFormatter struct {
	printer *message.Printer
	symbol  string
}

var (
	usd = MoneyFormatter{printer: message.NewPrinter(language.AmericanEnglish), symbol: "$"}
	idr = MoneyFormatter{printer: message.NewPrinter(language.Indonesian), symbol: "Rp "}
)

func (f MoneyFormatter) Format(amount decimal.Decimal) string {
	v, _ := amount.Float64()

	return f.symbol + f.printer.Sprint(number.Decimal(v,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// dateLayout is the input format accepted by the add subcommands.
const dateLayout = "2006-01-02 15:04"

func parseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err == nil {
		return t, nil
	}

	// A bare date means midnight.
	return time.ParseInLocation(time.DateOnly, s, time.Local)
}

func formatDate(t time.Time) string {
	return t.Format("Jan 2, 2006, 03:04 PM")
}
