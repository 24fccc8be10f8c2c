package tezos

import "fmt"

// tokenType classifies a lexeme of a parameter signature.
type tokenType uint8

const (
	tokenEOF tokenType = iota
	tokenLParen
	tokenRParen
	tokenSemicolon
	tokenAnnot
	tokenParameter
	tokenOr
	tokenPair
	tokenScalar
	tokenSingleArg
	tokenDoubleArg
)

func (t tokenType) String() string {
	switch t {
	case tokenEOF:
		return "end of input"
	case tokenLParen:
		return "'('"
	case tokenRParen:
		return "')'"
	case tokenSemicolon:
		return "';'"
	case tokenAnnot:
		return "annotation"
	case tokenParameter:
		return "'parameter'"
	case tokenOr:
		return "'or'"
	case tokenPair:
		return "'pair'"
	case tokenScalar:
		return "type"
	case tokenSingleArg:
		return "single-argument type"
	case tokenDoubleArg:
		return "double-argument type"
	default:
		return fmt.Sprintf("tokenType(%d)", uint8(t))
	}
}

// keywords maps every reserved word to its category. Read-only.
var keywords = map[string]tokenType{
	"parameter": tokenParameter,
	"or":        tokenOr,
	"pair":      tokenPair,

	"bytes":     tokenScalar,
	"int":       tokenScalar,
	"nat":       tokenScalar,
	"bool":      tokenScalar,
	"string":    tokenScalar,
	"timestamp": tokenScalar,
	"signature": tokenScalar,
	"key":       tokenScalar,
	"key_hash":  tokenScalar,
	"mutez":     tokenScalar,
	"address":   tokenScalar,
	"unit":      tokenScalar,
	"operation": tokenScalar,
	"chain_id":  tokenScalar,

	"option":   tokenSingleArg,
	"list":     tokenSingleArg,
	"contract": tokenSingleArg,
	"set":      tokenSingleArg,

	"lambda":  tokenDoubleArg,
	"map":     tokenDoubleArg,
	"big_map": tokenDoubleArg,
}

type token struct {
	typ    tokenType
	text   string
	offset int
}

// tokenize splits a signature into tokens, dropping whitespace.
func tokenize(src string) ([]token, error) {
	tokens := make([]token, 0, len(src)/4)

	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case isSpace(c):
			i++
		case c == '(':
			tokens = append(tokens, token{typ: tokenLParen, text: "(", offset: i})
			i++
		case c == ')':
			tokens = append(tokens, token{typ: tokenRParen, text: ")", offset: i})
			i++
		case c == ';':
			tokens = append(tokens, token{typ: tokenSemicolon, text: ";", offset: i})
			i++
		case c == ':' || c == '%':
			j := i + 1
			for j < len(src) && !isSpace(src[j]) && src[j] != '(' && src[j] != ')' && src[j] != ';' {
				j++
			}
			if j == i+1 {
				return nil, &GrammarError{Offset: i, Token: src[i:j], Msg: "empty annotation"}
			}
			tokens = append(tokens, token{typ: tokenAnnot, text: src[i:j], offset: i})
			i = j
		case isWordByte(c):
			j := i
			for j < len(src) && isWordByte(src[j]) {
				j++
			}
			word := src[i:j]
			typ, ok := keywords[word]
			if !ok {
				return nil, &GrammarError{Offset: i, Token: word, Msg: "unknown type"}
			}
			tokens = append(tokens, token{typ: typ, text: word, offset: i})
			i = j
		default:
			return nil, &GrammarError{Offset: i, Token: string(c), Msg: "unexpected character"}
		}
	}

	return append(tokens, token{typ: tokenEOF, offset: len(src)}), nil
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isWordByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_'
}
