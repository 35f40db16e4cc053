package format

import (
	"fmt"
	"strings"
	"unicode/utf8"

	tm "github.com/buger/goterm"
	"github.com/fatih/color"
	"github.com/gioco-play/easy-i18n/i18n"
)

// Status of a checked item
type Status int

const (
	StatusOK Status = iota
	StatusWarning
	StatusError
)

// Tag returns the coloured status marker
func (s Status) Tag() string {
	switch s {
	case StatusWarning:
		return color.YellowString("[WARN]")
	case StatusError:
		return color.RedString("[ERROR]")
	default:
		return color.GreenString("[DONE]")
	}
}

// Output formats and prints a table row with status indicator
func Output(item, msg, suggest string, status Status) {
	msg = padding(msg, 60)
	suggest = padding(suggest, 20)
	var table = tm.NewTable(0, 4, 2, ' ', 0)
	fmt.Fprint(table, i18n.Sprintf("\t%s\t%s\t%s\t%s", item, msg, suggest, status.Tag()))
	tm.Println(table)
	tm.Flush()
}

// padding adds spaces to ensure consistent column width
func padding(item string, length int) string {
	itemLen := utf8.RuneCountInString(item)
	if itemLen < length {
		item += strings.Repeat(" ", length-itemLen)
	}
	return item
}
