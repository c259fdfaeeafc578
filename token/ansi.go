package token

import "regexp"

var ansiRE = regexp.MustCompile("\x1b\\[[0-9;]*m")

// StripANSI removes ANSI SGR escape sequences from text. The decoder
// applies it up front when asked to tolerate accidentally colorized
// input; unstripped escapes otherwise surface as unexpected-character
// errors.
func StripANSI(text string) string {
	return ansiRE.ReplaceAllString(text, "")
}
