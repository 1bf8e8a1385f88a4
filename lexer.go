package gotreesitter

import "unicode/utf8"

// Lexer is the adaptor between the driver and a language's LexFn (§4.2). It
// holds the input and the current character cursor, and drives LexFn with
// whatever lex-state hint the driver supplies — normal (the lex state the
// current parse state declares) or LexStateError (recovery's all-tokens
// state). This is deliberately the only place that knows how to read the
// input; the rest of the driver only ever sees Lengths and Symbols.
type Lexer struct {
	source []byte
	pos    Length
}

func newLexer(source []byte) *Lexer {
	return &Lexer{source: source}
}

// reset rewinds the character cursor to position, discarding anything the
// lexer may have buffered. Used when the driver restarts a stack restored
// partway through the input.
func (lx *Lexer) reset(position Length) {
	lx.pos = position
}

// position returns the lexer's current cumulative position.
func (lx *Lexer) position() Length {
	return lx.pos
}

func (lx *Lexer) atEOF() bool {
	return int(lx.pos.Bytes) >= len(lx.source)
}

// lex invokes lang's LexFn in lex state `state`, skipping any leading
// spans LexFn marks as ignorable (symbol 0) and folding their extent into
// the returned padding. It returns ok=false at end of input or when LexFn
// recognizes nothing at all at the current position — the two cases the
// driver (and, during recovery, handleError) must tell apart from a normal
// token by also checking atEOF.
func (lx *Lexer) lex(lang *Language, state uint16) (sym Symbol, padding, size Length, ok bool) {
	paddingStart := lx.pos
	for {
		if lx.atEOF() {
			return 0, lx.pos.Sub(paddingStart), ZeroLength, false
		}

		tokenStart := lx.pos
		ctx := LexContext{Remaining: lx.source[lx.pos.Bytes:]}
		matchedSym, length, matched := lang.LexFn(ctx, state)
		if !matched || length.Bytes == 0 {
			return 0, tokenStart.Sub(paddingStart), ZeroLength, false
		}

		lx.pos = lx.pos.Add(length)
		if matchedSym == 0 {
			// Ignorable span (whitespace): keep scanning for a real token,
			// the skipped bytes join the eventual token's padding.
			continue
		}
		return matchedSym, tokenStart.Sub(paddingStart), length, true
	}
}

// advance consumes exactly one character. It is used only when lex made no
// progress at all, to guarantee error recovery's re-lex loop (§4.6) always
// terminates. Returns false at end of input.
func (lx *Lexer) advance() bool {
	if lx.atEOF() {
		return false
	}
	r, size := utf8.DecodeRune(lx.source[lx.pos.Bytes:])
	lx.pos = lx.pos.Add(lengthOfText(lx.source[lx.pos.Bytes : lx.pos.Bytes+uint32(size)]))
	_ = r
	return true
}
