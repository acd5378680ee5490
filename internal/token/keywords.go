package token

var keywords = map[string]Kind{
	"let":        KwLet,
	"const":      KwConst,
	"type":       KwType,
	"fn":         KwFn,
	"if":         KwIf,
	"else":       KwElse,
	"while":      KwWhile,
	"for":        KwFor,
	"in":         KwIn,
	"return":     KwReturn,
	"break":      KwBreak,
	"continue":   KwContinue,
	"defer":      KwDefer,
	"fork":       KwFork,
	"try":        KwTry,
	"import":     KwImport,
	"as":         KwAs,
	"is":         KwIs,
	"match":      KwMatch,
	"catch":      KwCatch,
	"struct":     KwStruct,
	"enum":       KwEnum,
	"union":      KwUnion,
	"interface":  KwInterface,
	"map":        KwMap,
	"constraint": KwConstraint,
	"mut":        KwMut,
	"true":       BoolLit,
	"false":      BoolLit,
	"none":       NoneLit,
}

// primitives are the built-in type names. They share the single Primitive
// kind; the parser tells them apart by lexeme. int/uint/float are the
// platform-width aliases of their sized forms.
var primitives = map[string]struct{}{
	"i8":    {},
	"i16":   {},
	"i32":   {},
	"i64":   {},
	"u8":    {},
	"u16":   {},
	"u32":   {},
	"u64":   {},
	"int":   {},
	"uint":  {},
	"f32":   {},
	"f64":   {},
	"float": {},
	"str":   {},
	"bool":  {},
	"byte":  {},
}

// LookupKeyword reclassifies an identifier lexeme as a keyword, literal
// keyword, or primitive type name. Keywords are case-sensitive: only the
// lowercase spelling is recognized.
func LookupKeyword(ident string) (Kind, bool) {
	if k, ok := keywords[ident]; ok {
		return k, true
	}
	if _, ok := primitives[ident]; ok {
		return Primitive, true
	}
	return Invalid, false
}
