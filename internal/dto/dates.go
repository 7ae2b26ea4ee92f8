package dto

import (
	"fmt"
	"time"
)

var indonesianMonths = [13]string{
	"", "Jan", "Feb", "Mar", "Apr", "Mei", "Jun",
	"Jul", "Agt", "Sep", "Okt", "Nov", "Des",
}

// FormattedDateEN renders a creation date for the English locale, e.g.
// "Jan 2, 2026".
func FormattedDateEN(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// FormattedDateID renders the same date with Indonesian month abbreviations.
func FormattedDateID(t time.Time) string {
	return fmt.Sprintf("%s %d, %d", indonesianMonths[t.Month()], t.Day(), t.Year())
}
