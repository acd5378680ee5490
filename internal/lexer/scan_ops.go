package lexer

import (
	"ferret/internal/diag"
	"ferret/internal/token"
)

// Greedy matching: 3-byte sequences first, then 2-byte, then single bytes.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: k, Span: sp, Text: lx.text(sp)}
	}

	switch {
	case lx.try3('.', '.', '.'):
		return emit(token.DotDotDot)
	case lx.try2('.', '.'):
		return emit(token.DotDot)
	case lx.try2(':', ':'):
		return emit(token.ColonColon)
	case lx.try2(':', '='):
		return emit(token.ColonAssign)
	case lx.try2('-', '>'):
		return emit(token.Arrow)
	case lx.try2('=', '>'):
		return emit(token.FatArrow)
	case lx.try2('=', '='):
		return emit(token.EqEq)
	case lx.try2('!', '='):
		return emit(token.BangEq)
	case lx.try2('!', '!'):
		return emit(token.BangBang)
	case lx.try2('<', '='):
		return emit(token.LtEq)
	case lx.try2('>', '='):
		return emit(token.GtEq)
	case lx.try2('&', '&'):
		return emit(token.AndAnd)
	case lx.try2('|', '|'):
		return emit(token.OrOr)
	case lx.try2('|', '>'):
		return emit(token.PipeGt)
	case lx.try2('?', '?'):
		return emit(token.QuestionQuestion)
	case lx.try2('*', '*'):
		return emit(token.StarStar)
	case lx.try2('+', '+'):
		return emit(token.PlusPlus)
	case lx.try2('-', '-'):
		return emit(token.MinusMinus)
	case lx.try2('+', '='):
		return emit(token.PlusAssign)
	case lx.try2('-', '='):
		return emit(token.MinusAssign)
	case lx.try2('*', '='):
		return emit(token.StarAssign)
	case lx.try2('/', '='):
		return emit(token.SlashAssign)
	case lx.try2('%', '='):
		return emit(token.PercentAssign)
	}

	ch := lx.cursor.Bump()
	switch ch {
	case '+':
		return emit(token.Plus)
	case '-':
		return emit(token.Minus)
	case '*':
		return emit(token.Star)
	case '/':
		return emit(token.Slash)
	case '%':
		return emit(token.Percent)
	case '=':
		return emit(token.Assign)
	case '!':
		return emit(token.Bang)
	case '<':
		return emit(token.Lt)
	case '>':
		return emit(token.Gt)
	case '&':
		return emit(token.Amp)
	case '|':
		return emit(token.Pipe)
	case '^':
		return emit(token.Caret)
	case '~':
		return emit(token.Tilde)
	case '#':
		return emit(token.Hash)
	case '@':
		return emit(token.At)
	case '?':
		return emit(token.Question)
	case ':':
		return emit(token.Colon)
	case ';':
		return emit(token.Semicolon)
	case ',':
		return emit(token.Comma)
	case '.':
		return emit(token.Dot)
	case '(':
		return emit(token.LParen)
	case ')':
		return emit(token.RParen)
	case '{':
		return emit(token.LBrace)
	case '}':
		return emit(token.RBrace)
	case '[':
		return emit(token.LBracket)
	case ']':
		return emit(token.RBracket)
	case '_':
		return emit(token.Underscore)
	}

	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnknownChar, sp, "unknown character")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}
