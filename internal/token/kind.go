package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// KwLet represents the 'let' keyword.
	KwLet // let
	// KwConst represents the 'const' keyword.
	KwConst // const
	// KwType represents the 'type' keyword.
	KwType // type
	// KwFn represents the 'fn' keyword.
	KwFn // fn
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwWhile represents the 'while' keyword.
	KwWhile // while
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwIn represents the 'in' keyword.
	KwIn // in
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwBreak represents the 'break' keyword.
	KwBreak // break
	// KwContinue represents the 'continue' keyword.
	KwContinue // continue
	// KwDefer represents the 'defer' keyword.
	KwDefer // defer
	// KwFork represents the 'fork' keyword.
	KwFork // fork
	// KwTry represents the 'try' keyword.
	KwTry // try
	// KwImport represents the 'import' keyword.
	KwImport // import
	// KwAs represents the 'as' keyword.
	KwAs // as
	// KwIs represents the 'is' keyword.
	KwIs // is
	// KwMatch represents the 'match' keyword.
	KwMatch // match
	// KwCatch represents the 'catch' keyword.
	KwCatch // catch
	// KwStruct represents the 'struct' keyword.
	KwStruct // struct
	// KwEnum represents the 'enum' keyword.
	KwEnum // enum
	// KwUnion represents the 'union' keyword.
	KwUnion // union
	// KwInterface represents the 'interface' keyword.
	KwInterface // interface
	// KwMap represents the 'map' keyword.
	KwMap // map
	// KwConstraint represents the 'constraint' keyword.
	KwConstraint // constraint
	// KwMut represents the 'mut' keyword.
	KwMut // mut
	// Primitive represents a built-in primitive type name (i32, f64, str, ...).
	Primitive

	// IntLit represents an integer literal token.
	IntLit
	// FloatLit represents a float literal token.
	FloatLit
	// ImaginaryLit represents an imaginary number literal token.
	ImaginaryLit
	// StringLit represents a string literal token.
	StringLit
	// CharLit represents a character literal token.
	CharLit
	// ByteLit represents a byte literal token.
	ByteLit
	// BoolLit represents a 'true' or 'false' literal token.
	BoolLit
	// NoneLit represents the 'none' literal token.
	NoneLit

	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Star represents the star operator token.
	Star // *
	// StarStar represents the power operator token.
	StarStar // **
	// Slash represents the slash operator token.
	Slash // /
	// Percent represents the percent operator token.
	Percent // %
	// Assign represents the assign operator token.
	Assign // =
	// PlusAssign represents the plus assign operator token.
	PlusAssign // +=
	// MinusAssign represents the minus assign operator token.
	MinusAssign // -=
	// StarAssign represents the star assign operator token.
	StarAssign // *=
	// SlashAssign represents the slash assign operator token.
	SlashAssign // /=
	// PercentAssign represents the percent assign operator token.
	PercentAssign // %=
	// ColonAssign represents the walrus assign operator token.
	ColonAssign // :=
	// PlusPlus represents the increment operator token.
	PlusPlus // ++
	// MinusMinus represents the decrement operator token.
	MinusMinus // --
	// EqEq represents the equality operator token.
	EqEq // ==
	// Bang represents the bang operator token.
	Bang // !
	// BangEq represents the inequality operator token.
	BangEq // !=
	// BangBang represents the error-propagation operator token.
	BangBang // !!
	// Lt represents the less-than operator token.
	Lt // <
	// LtEq represents the less-or-equal operator token.
	LtEq // <=
	// Gt represents the greater-than operator token.
	Gt // >
	// GtEq represents the greater-or-equal operator token.
	GtEq // >=
	// Amp represents the ampersand operator token.
	Amp // &
	// AndAnd represents the logical-and operator token.
	AndAnd // &&
	// Pipe represents the pipe operator token.
	Pipe // |
	// OrOr represents the logical-or operator token.
	OrOr // ||
	// PipeGt represents the pipeline operator token.
	PipeGt // |>
	// Caret represents the caret operator token.
	Caret // ^
	// Tilde represents the tilde operator token.
	Tilde // ~
	// Hash represents the hash operator token.
	Hash // #
	// At represents the at operator token.
	At // @
	// Question represents the question operator token.
	Question // ?
	// QuestionQuestion represents the null-coalescing operator token.
	QuestionQuestion // ??
	// Colon represents the colon token.
	Colon // :
	// ColonColon represents the scope-resolution token.
	ColonColon // ::
	// Semicolon represents the semicolon token.
	Semicolon // ;
	// Comma represents the comma token.
	Comma // ,
	// Dot represents the dot token.
	Dot // .
	// DotDot represents the range operator token.
	DotDot // ..
	// DotDotDot represents the spread operator token.
	DotDotDot // ...
	// Arrow represents the arrow token.
	Arrow // ->
	// FatArrow represents the fat arrow token.
	FatArrow // =>
	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBrace represents the left brace token.
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }
	// LBracket represents the left bracket token.
	LBracket // [
	// RBracket represents the right bracket token.
	RBracket // ]
	// Underscore represents the wildcard token.
	Underscore // _
)
