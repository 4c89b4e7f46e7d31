package lexer

import "strconv"

// parseFloat decodes a scanned numeric lexeme ([0-9]+('.'[0-9]+)?) as an
// IEEE-754 double (spec §4.1).
func parseFloat(text string) (float64, error) {
	return strconv.ParseFloat(text, 64)
}
