package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs an ASCII art banner for Vine.
func PrintBanner() {
	p := termenv.ColorProfile()
	// Green gradient, top to bottom
	s1 := termenv.String(" __      ___            ").Foreground(p.Color("#bef264"))
	s2 := termenv.String(" \\ \\    / (_)           ").Foreground(p.Color("#a3e635"))
	s3 := termenv.String("  \\ \\  / / _ _ __   ___ ").Foreground(p.Color("#84cc16"))
	s4 := termenv.String("   \\ \\/ / | | '_ \\ / _ \\").Foreground(p.Color("#65a30d"))
	s5 := termenv.String("    \\  /  | | | | |  __/").Foreground(p.Color("#4d7c0f"))
	s6 := termenv.String("     \\/   |_|_| |_|\\___|").Foreground(p.Color("#3f6212"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println(s6)
	fmt.Println()
}
