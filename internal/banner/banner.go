// Package banner renders the startup banner for the demo walk-through.
package banner

import (
	"fmt"
	"io"
	"strings"
)

const (
	bannerWidth       = 80
	minSeparatorWidth = 50

	title    = "Interactive Greeting Demo"
	subtitle = "Line-buffered console input, three ways"
)

// Print writes the centered banner to w.
func Print(w io.Writer) {
	contentWidth := len(title)
	if len(subtitle) > contentWidth {
		contentWidth = len(subtitle)
	}
	separatorWidth := contentWidth + 6

	fmt.Fprintln(w)
	printCentered(w, title)
	printSeparator(w, separatorWidth)
	printCentered(w, subtitle)
	fmt.Fprintln(w)
}

func printCentered(w io.Writer, text string) {
	if len(text) >= bannerWidth {
		fmt.Fprintln(w, text)
		return
	}

	leftPadding := (bannerWidth - len(text)) / 2
	fmt.Fprintf(w, "%s%s\n", strings.Repeat(" ", leftPadding), text)
}

func printSeparator(w io.Writer, width int) {
	if width < minSeparatorWidth {
		width = minSeparatorWidth
	}
	if width > bannerWidth {
		width = bannerWidth
	}

	leftPadding := (bannerWidth - width) / 2
	fmt.Fprintf(w, "%s%s\n", strings.Repeat(" ", leftPadding), strings.Repeat("═", width))
}
