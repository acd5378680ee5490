package token

var kindNames = [...]string{
	Invalid:          "Invalid",
	EOF:              "EOF",
	Ident:            "Ident",
	KwLet:            "KwLet",
	KwConst:          "KwConst",
	KwType:           "KwType",
	KwFn:             "KwFn",
	KwIf:             "KwIf",
	KwElse:           "KwElse",
	KwWhile:          "KwWhile",
	KwFor:            "KwFor",
	KwIn:             "KwIn",
	KwReturn:         "KwReturn",
	KwBreak:          "KwBreak",
	KwContinue:       "KwContinue",
	KwDefer:          "KwDefer",
	KwFork:           "KwFork",
	KwTry:            "KwTry",
	KwImport:         "KwImport",
	KwAs:             "KwAs",
	KwIs:             "KwIs",
	KwMatch:          "KwMatch",
	KwCatch:          "KwCatch",
	KwStruct:         "KwStruct",
	KwEnum:           "KwEnum",
	KwUnion:          "KwUnion",
	KwInterface:      "KwInterface",
	KwMap:            "KwMap",
	KwConstraint:     "KwConstraint",
	KwMut:            "KwMut",
	Primitive:        "Primitive",
	IntLit:           "IntLit",
	FloatLit:         "FloatLit",
	ImaginaryLit:     "ImaginaryLit",
	StringLit:        "StringLit",
	CharLit:          "CharLit",
	ByteLit:          "ByteLit",
	BoolLit:          "BoolLit",
	NoneLit:          "NoneLit",
	Plus:             "Plus",
	Minus:            "Minus",
	Star:             "Star",
	StarStar:         "StarStar",
	Slash:            "Slash",
	Percent:          "Percent",
	Assign:           "Assign",
	PlusAssign:       "PlusAssign",
	MinusAssign:      "MinusAssign",
	StarAssign:       "StarAssign",
	SlashAssign:      "SlashAssign",
	PercentAssign:    "PercentAssign",
	ColonAssign:      "ColonAssign",
	PlusPlus:         "PlusPlus",
	MinusMinus:       "MinusMinus",
	EqEq:             "EqEq",
	Bang:             "Bang",
	BangEq:           "BangEq",
	BangBang:         "BangBang",
	Lt:               "Lt",
	LtEq:             "LtEq",
	Gt:               "Gt",
	GtEq:             "GtEq",
	Amp:              "Amp",
	AndAnd:           "AndAnd",
	Pipe:             "Pipe",
	OrOr:             "OrOr",
	PipeGt:           "PipeGt",
	Caret:            "Caret",
	Tilde:            "Tilde",
	Hash:             "Hash",
	At:               "At",
	Question:         "Question",
	QuestionQuestion: "QuestionQuestion",
	Colon:            "Colon",
	ColonColon:       "ColonColon",
	Semicolon:        "Semicolon",
	Comma:            "Comma",
	Dot:              "Dot",
	DotDot:           "DotDot",
	DotDotDot:        "DotDotDot",
	Arrow:            "Arrow",
	FatArrow:         "FatArrow",
	LParen:           "LParen",
	RParen:           "RParen",
	LBrace:           "LBrace",
	RBrace:           "RBrace",
	LBracket:         "LBracket",
	RBracket:         "RBracket",
	Underscore:       "Underscore",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}
