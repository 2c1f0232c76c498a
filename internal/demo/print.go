package demo

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			PaddingLeft(2)

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("110"))

	noteStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("243"))

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("203"))

	doneStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42"))

	promptStyle = lipgloss.NewStyle().
			Faint(true)
)

// Banner prints the example title box.
func Banner(title string) {
	fmt.Println(bannerStyle.Render(title))
	fmt.Println()
}

// Section prints a numbered step heading.
func Section(n, total int, title string) {
	fmt.Println(sectionStyle.Render(fmt.Sprintf("[%d/%d] %s", n, total, title)))
}

// Show prints a labelled value, indenting multi-line output.
func Show(label string, value any) {
	fmt.Println(labelStyle.Render(label + ":"))
	text := strings.TrimRight(fmt.Sprintf("%v", value), "\n")
	fmt.Println(resultStyle.Render(text))
	fmt.Println()
}

// Showf prints a formatted line of result output.
func Showf(format string, args ...any) {
	fmt.Println(resultStyle.Render(fmt.Sprintf(format, args...)))
}

// Note prints an informational aside.
func Note(text string) {
	fmt.Println(noteStyle.Render(text))
	fmt.Println()
}

// Errorf prints a step failure.
func Errorf(format string, args ...any) {
	fmt.Println(errorStyle.Render(fmt.Sprintf(format, args...)))
	fmt.Println()
}

// Done prints the closing summary line.
func Done(passed, total int) {
	fmt.Println()
	if passed == total {
		fmt.Println(doneStyle.Render(fmt.Sprintf("All %d steps completed.", total)))
	} else {
		fmt.Println(errorStyle.Render(fmt.Sprintf("%d of %d steps completed.", passed, total)))
	}
}
