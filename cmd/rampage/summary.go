package main

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/width"
)

// ── Exit summary helpers ───────────────────────────────────────────

const summaryWidth = 40

func printSummary(title string, res outcome) {
	p := message.NewPrinter(language.English)
	fmt.Println()
	printSection(title)
	if res.quit {
		printStat("result", "quit")
	} else {
		printStat("result", "game over")
	}
	printStat("score", p.Sprintf("%d", res.score))
	printStat("length", p.Sprintf("%d", res.length))
	printStat("steps", p.Sprintf("%d", res.steps))
	if res.image != "" {
		printStat("snapshot", res.image)
	}
	fmt.Println()
}

func printSection(title string) {
	lineLen := summaryWidth - displayWidth(title) - 1
	if lineLen < 3 {
		lineLen = 3
	}
	fmt.Printf("  \033[33m── %s %s\033[0m\n", title, strings.Repeat("─", lineLen))
}

func printStat(label, value string) {
	dotsLen := summaryWidth - 4 - displayWidth(label) - displayWidth(value)
	if dotsLen < 3 {
		dotsLen = 3
	}
	fmt.Printf("  %s \033[90m%s\033[0m \033[32m%s\033[0m\n", label, strings.Repeat("·", dotsLen), value)
}

// displayWidth counts terminal columns: wide and fullwidth runes take two.
func displayWidth(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}
