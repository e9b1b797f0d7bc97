package cmd

import (
	"unicode"

	"github.com/go-drift/asciistats/internal/coinflip"
)

type command int

const (
	commandNone command = iota
	commandPress
	commandQuit
)

// keyCommand maps an input key to what it does on the coin-flip screens.
// For commandPress the title of the button to press is returned.
func keyCommand(key rune, batch int) (command, string) {
	switch unicode.ToLower(key) {
	case 'f':
		return commandPress, coinflip.TitleFlip
	case 'b':
		return commandPress, coinflip.BatchTitle(batch)
	case '?', 'h':
		return commandPress, coinflip.TitleHelp
	case '<':
		return commandPress, coinflip.TitleBack
	case 'q':
		return commandQuit, ""
	default:
		return commandNone, ""
	}
}
