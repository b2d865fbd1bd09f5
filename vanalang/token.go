package vanalang

import (
	"strconv"
)

type Token struct {
	Kind TokenKind
	// Text is the string literal content, the operator run or the identifier
	// name. For other kinds it holds the lexeme.
	Text string
	Num  float64
	Bool bool
	Ctrl byte
	Type PrimitiveType
}

type Spanned struct {
	Token
	Span Span
}

type TokenKind uint8

const (
	TokenInvalid TokenKind = iota
	TokenEOF

	TokenNull
	TokenBool
	TokenNum
	TokenStr
	TokenOp
	TokenCtrl
	TokenIdent
	TokenType

	TokenIf
	TokenElse
	TokenElif
	TokenWhile
	TokenFor
	TokenUntil
	TokenInclude
	TokenDefer
	TokenDelete
	TokenSwitch
	TokenCase
	TokenDefault
	TokenFn
	TokenReturn
	TokenStruct
	TokenNew
	TokenInterface
	TokenUsing
	TokenEnum
	TokenMut
	TokenImut
	TokenUnsafe
	TokenIn
	TokenBreak
	TokenContinue
	TokenAs
	TokenPubl
	TokenShared

	numTokenKinds
)

var tokenKindNames = [numTokenKinds]string{
	TokenInvalid:   "Invalid",
	TokenEOF:       "EOF",
	TokenNull:      "Null",
	TokenBool:      "Bool",
	TokenNum:       "Num",
	TokenStr:       "Str",
	TokenOp:        "Op",
	TokenCtrl:      "Ctrl",
	TokenIdent:     "Ident",
	TokenType:      "Type",
	TokenIf:        "If",
	TokenElse:      "Else",
	TokenElif:      "Elif",
	TokenWhile:     "While",
	TokenFor:       "For",
	TokenUntil:     "Until",
	TokenInclude:   "Include",
	TokenDefer:     "Defer",
	TokenDelete:    "Delete",
	TokenSwitch:    "Switch",
	TokenCase:      "Case",
	TokenDefault:   "Default",
	TokenFn:        "Fn",
	TokenReturn:    "Return",
	TokenStruct:    "Struct",
	TokenNew:       "New",
	TokenInterface: "Interface",
	TokenUsing:     "Using",
	TokenEnum:      "Enum",
	TokenMut:       "Mut",
	TokenImut:      "Imut",
	TokenUnsafe:    "Unsafe",
	TokenIn:        "In",
	TokenBreak:     "Break",
	TokenContinue:  "Continue",
	TokenAs:        "As",
	TokenPubl:      "Publ",
	TokenShared:    "Shared",
}

func (k TokenKind) String() string {
	if k < numTokenKinds {
		return tokenKindNames[k]
	}
	return "TokenKind(" + strconv.Itoa(int(k)) + ")"
}

// IsKeyword reports whether k is one of the reserved word kinds.
func (k TokenKind) IsKeyword() bool {
	return k >= TokenIf && k <= TokenShared
}

type PrimitiveType uint8

const (
	TypeI16 PrimitiveType = iota + 1
	TypeI32
	TypeI64
	TypeU8
	TypeU16
	TypeU32
	TypeU64
	TypeStr
)

func (t PrimitiveType) String() string {
	switch t {
	case TypeI16:
		return "int16"
	case TypeI32:
		return "int32"
	case TypeI64:
		return "int64"
	case TypeU8:
		return "uint8"
	case TypeU16:
		return "uint16"
	case TypeU32:
		return "uint32"
	case TypeU64:
		return "uint64"
	case TypeStr:
		return "str"
	}
	return "PrimitiveType(" + strconv.Itoa(int(t)) + ")"
}

// keywords maps reserved spellings to their tokens. Identifiers are looked up
// here after scanning; anything absent is an Ident.
var keywords = map[string]Token{
	"if":        {Kind: TokenIf},
	"else":      {Kind: TokenElse},
	"elif":      {Kind: TokenElif},
	"while":     {Kind: TokenWhile},
	"for":       {Kind: TokenFor},
	"until":     {Kind: TokenUntil},
	"include":   {Kind: TokenInclude},
	"defer":     {Kind: TokenDefer},
	"delete":    {Kind: TokenDelete},
	"switch":    {Kind: TokenSwitch},
	"case":      {Kind: TokenCase},
	"default":   {Kind: TokenDefault},
	"fn":        {Kind: TokenFn},
	"return":    {Kind: TokenReturn},
	"struct":    {Kind: TokenStruct},
	"new":       {Kind: TokenNew},
	"interface": {Kind: TokenInterface},
	"using":     {Kind: TokenUsing},
	"enum":      {Kind: TokenEnum},
	"mut":       {Kind: TokenMut},
	"imut":      {Kind: TokenImut},
	"unsafe":    {Kind: TokenUnsafe},
	"in":        {Kind: TokenIn},
	"break":     {Kind: TokenBreak},
	"continue":  {Kind: TokenContinue},
	"as":        {Kind: TokenAs},
	"publ":      {Kind: TokenPubl},
	"shared":    {Kind: TokenShared},

	"true":  {Kind: TokenBool, Bool: true},
	"false": {Kind: TokenBool, Bool: false},
	"none":  {Kind: TokenNull},

	"int16":  {Kind: TokenType, Type: TypeI16},
	"int32":  {Kind: TokenType, Type: TypeI32},
	"int64":  {Kind: TokenType, Type: TypeI64},
	"uint8":  {Kind: TokenType, Type: TypeU8},
	"uint16": {Kind: TokenType, Type: TypeU16},
	"uint32": {Kind: TokenType, Type: TypeU32},
	"uint64": {Kind: TokenType, Type: TypeU64},
	"str":    {Kind: TokenType, Type: TypeStr},
}

// LookupIdent returns the token for an identifier-shaped word.
func LookupIdent(word string) Token {
	if tok, ok := keywords[word]; ok {
		tok.Text = word
		return tok
	}
	return Token{Kind: TokenIdent, Text: word}
}

// Keywords returns the reserved spellings. The result is a fresh map.
func Keywords() map[string]TokenKind {
	ret := make(map[string]TokenKind, len(keywords))
	for word, tok := range keywords {
		ret[word] = tok.Kind
	}
	return ret
}

// String returns the display spelling of the token. It is the source
// spelling except for the null literal, written none and shown as null.
func (t Token) String() string {
	switch t.Kind {
	case TokenEOF:
		return "end of input"
	case TokenNull:
		return "null"
	case TokenBool:
		return strconv.FormatBool(t.Bool)
	case TokenNum:
		return strconv.FormatFloat(t.Num, 'g', -1, 64)
	case TokenStr:
		return strconv.Quote(t.Text)
	case TokenCtrl:
		return string(rune(t.Ctrl))
	case TokenType:
		return t.Type.String()
	}
	if t.Kind.IsKeyword() {
		return keywordSpellings[t.Kind]
	}
	return t.Text
}

var keywordSpellings = func() map[TokenKind]string {
	ret := make(map[TokenKind]string)
	for word, tok := range keywords {
		if tok.Kind.IsKeyword() {
			ret[tok.Kind] = word
		}
	}
	return ret
}()
