package bench

// EstimateTokens approximates an LLM tokenizer's count: runs of
// letters and digits cost roughly one token per four characters,
// every punctuation byte costs one, whitespace runs cost one. Good
// enough for comparing serializations of the same data.
func EstimateTokens(text string) int {
	tokens := 0
	run := 0
	inSpace := false

	flush := func() {
		if run > 0 {
			tokens += (run + 3) / 4
			run = 0
		}
	}

	for i := 0; i < len(text); i++ {
		ch := text[i]
		switch {
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r':
			flush()
			if !inSpace {
				tokens++
				inSpace = true
			}
			continue
		case isWordByte(ch):
			run++
		default:
			flush()
			tokens++
		}
		inSpace = false
	}
	flush()
	return tokens
}

func isWordByte(ch byte) bool {
	return ch == '_' ||
		ch >= 'a' && ch <= 'z' ||
		ch >= 'A' && ch <= 'Z' ||
		ch >= '0' && ch <= '9' ||
		ch >= 0x80
}
