package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/studysync/pkg/views"
)

const width = len("Su Mo Tu We Th Fr Sa")

// MonthCalendar renders the mini calendar: days carrying a schedule or
// reminder are bright, today is bold underlined.
func (pp *PrettyPrint) MonthCalendar(mv views.MonthView) {
	tf := color.New(color.FgWhite, color.Italic)

	m := fmt.Sprintf("%s %d", mv.Month.String(), mv.Year)
	mid := (width - len(m)) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = tf.Printf("%s%s\n", strings.Repeat(" ", mid), m)

	h := color.New(color.Faint)
	_, _ = h.Println("Su Mo Tu We Th Fr Sa")

	// Pad out the start of the month.
	for i := time.Sunday; i < mv.StartDay; i++ {
		fmt.Print("   ")
	}

	quiet := color.New(color.Faint, color.FgWhite)
	busy := color.New(color.Bold, color.FgHiWhite)
	today := color.New(color.Bold, color.Underline, color.FgHiCyan)

	d := mv.StartDay
	for _, day := range mv.Days {
		printer := quiet
		if day.HasEvent {
			printer = busy
		}
		if day.IsToday {
			printer = today
		}
		_, _ = printer.Printf("%2d", day.Day)
		fmt.Print(" ")

		d++
		if d > time.Saturday {
			d = time.Sunday
			fmt.Print("\n")
		}
	}
	fmt.Print("\n\n")
}
