package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003

	// Syntax
	SynInfo                 Code = 2000
	SynUnexpectedToken      Code = 2001
	SynExpectExpression     Code = 2002
	SynExpectIdentifier     Code = 2003
	SynExpectSemicolon      Code = 2004
	SynUnclosedTag          Code = 2005
	SynMismatchedClosingTag Code = 2006
	SynUnclosedBrace        Code = 2007
	SynUnclosedParen        Code = 2008
	SynUnclosedBracket      Code = 2009

	// Nesting checks
	NestInfo             Code = 3000
	NestInvalidNesting   Code = 3001
	NestVoidParent       Code = 3002
	NestInteractiveChild Code = 3003
	NestExcludedParent   Code = 3004

	// I/O
	IOLoadFileError Code = 4001
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexInfo:                     "Lexical information",
	LexUnknownChar:              "Unknown character",
	LexUnterminatedString:       "Unterminated string",
	LexUnterminatedBlockComment: "Unterminated block comment",
	SynInfo:                     "Syntax information",
	SynUnexpectedToken:          "Unexpected token",
	SynExpectExpression:         "Expect expression",
	SynExpectIdentifier:         "Expect identifier",
	SynExpectSemicolon:          "Expect semicolon",
	SynUnclosedTag:              "Unclosed element tag",
	SynMismatchedClosingTag:     "Mismatched closing tag",
	SynUnclosedBrace:            "Unclosed brace",
	SynUnclosedParen:            "Unclosed parenthesis",
	SynUnclosedBracket:          "Unclosed bracket",
	NestInfo:                    "Nesting information",
	NestInvalidNesting:          "Invalid element nesting",
	NestVoidParent:              "Void element cannot have children",
	NestInteractiveChild:        "Interactive element inside interactive container",
	NestExcludedParent:          "Element excluded from this parent",
	IOLoadFileError:             "I/O load file error",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("NEST%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
