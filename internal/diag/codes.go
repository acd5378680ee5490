package diag

import (
	"fmt"
)

// Code identifies one diagnostic condition. Lexical codes live in the 1000
// range, syntactic in the 2000 range, I/O and project in the 4000 range.
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedChar         Code = 1003
	LexUnterminatedBlockComment Code = 1004
	LexBadNumber                Code = 1005
	LexBadEscape                Code = 1006

	// Syntactic
	SynInfo               Code = 2000
	SynUnexpectedToken    Code = 2001
	SynUnexpectedTopLevel Code = 2002
	SynExpectIdentifier   Code = 2003
	SynExpectExpression   Code = 2004
	SynExpectType         Code = 2005
	SynExpectConstraint   Code = 2006
	SynExpectLBrace       Code = 2007
	SynExpectRBrace       Code = 2008
	SynExpectRParen       Code = 2009
	SynExpectRBracket     Code = 2010
	SynExpectColon        Code = 2011
	SynExpectComma        Code = 2012
	SynExpectAssign       Code = 2013
	SynExpectFnName       Code = 2014
	SynExpectParamList    Code = 2015
	SynExpectMatchArm     Code = 2016
	SynExpectForHeader    Code = 2017
	SynExpectImportPath   Code = 2018
	SynBadAssignTarget    Code = 2019
	SynBadTypeArgs        Code = 2020

	// I/O and project
	IOError            Code = 4000
	ProjBadManifest    Code = 4001
	ProjMissingPackage Code = 4002
)

// ID renders the stable external identifier for the code, e.g. "SYN2001".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

var codeDescription = map[Code]string{
	UnknownCode:                 "unknown error",
	LexInfo:                     "lexical note",
	LexUnknownChar:              "unknown character",
	LexUnterminatedString:       "unterminated string literal",
	LexUnterminatedChar:         "unterminated character literal",
	LexUnterminatedBlockComment: "unterminated block comment",
	LexBadNumber:                "malformed numeric literal",
	LexBadEscape:                "invalid escape sequence",
	SynInfo:                     "syntax note",
	SynUnexpectedToken:          "unexpected token",
	SynUnexpectedTopLevel:       "unexpected top-level construct",
	SynExpectIdentifier:         "expected identifier",
	SynExpectExpression:         "expected expression",
	SynExpectType:               "expected type",
	SynExpectConstraint:         "expected constraint",
	SynExpectLBrace:             "expected '{'",
	SynExpectRBrace:             "expected '}'",
	SynExpectRParen:             "expected ')'",
	SynExpectRBracket:           "expected ']'",
	SynExpectColon:              "expected ':'",
	SynExpectComma:              "expected ','",
	SynExpectAssign:             "expected '='",
	SynExpectFnName:             "expected function name",
	SynExpectParamList:          "expected parameter list",
	SynExpectMatchArm:           "expected match arm",
	SynExpectForHeader:          "malformed for-loop header",
	SynExpectImportPath:         "expected import path string",
	SynBadAssignTarget:          "invalid assignment target",
	SynBadTypeArgs:              "malformed type argument list",
	IOError:                     "i/o error",
	ProjBadManifest:             "malformed project manifest",
	ProjMissingPackage:          "missing [package] section",
}

// Title returns a short human description for the code.
func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return c.ID()
}

// IsLexical reports whether the code belongs to the lexer range.
func (c Code) IsLexical() bool {
	return c >= 1000 && c < 2000
}

// IsSyntactic reports whether the code belongs to the parser range.
func (c Code) IsSyntactic() bool {
	return c >= 2000 && c < 3000
}
