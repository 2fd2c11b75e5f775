// Package currency renders integer amounts for display.
package currency

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// TWD formats New Taiwan dollar amounts.
var TWD = New(language.MustParse("zh-TW"), "NT$")

type Formatter struct {
	printer *message.Printer
	symbol  string
}

func New(tag language.Tag, symbol string) Formatter {
	return Formatter{
		printer: message.NewPrinter(tag),
		symbol:  symbol,
	}
}

// Format renders amount with digit grouping, "NT$ 35,900".
func (f Formatter) Format(amount int) string {
	return f.printer.Sprintf("%s %d", f.symbol, amount)
}
