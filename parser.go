package tezos

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"
)

// legacyEntryPrefix is the field annotation namespace emitted by Liquidity.
const legacyEntryPrefix = "%_Liq_entry_"

// typeNode is one node of a parsed parameter type.
type typeNode struct {
	kind   tokenType // tokenOr, tokenPair, tokenScalar, tokenSingleArg or tokenDoubleArg
	name   string
	annots []string
	args   []*typeNode
}

// typeString renders the node without annotations, parenthesizing arguments:
// "option (int)", "map (string) (nat)".
func (n *typeNode) typeString() string {
	if len(n.args) == 0 {
		return n.name
	}
	var b strings.Builder
	b.WriteString(n.name)
	for _, arg := range n.args {
		b.WriteString(" (")
		b.WriteString(arg.typeString())
		b.WriteByte(')')
	}
	return b.String()
}

// ParseParameter compiles a "parameter <type>;" signature into the entry
// points reachable from its root, in left-to-right order.
func ParseParameter(signature string, opts ...ParseOption) ([]*EntryPoint, error) {
	return parse(signature, true, opts)
}

// ParseType compiles a bare type expression such as
// "(or (int %deposit) (string %note))".
func ParseType(expr string, opts ...ParseOption) ([]*EntryPoint, error) {
	return parse(expr, false, opts)
}

func parse(src string, declaration bool, opts []ParseOption) ([]*EntryPoint, error) {
	cfg := defaultParseConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	tokens, err := tokenize(src)
	if err != nil {
		return nil, err
	}

	p := &parser{tokens: tokens, maxDepth: cfg.maxDepth}
	root, err := p.parseRoot(declaration)
	if err != nil {
		return nil, err
	}

	entryPoints := compile(root)
	cfg.logger.Debug("compiled parameter type",
		zap.Int("entrypoints", len(entryPoints)),
		zap.Strings("names", EntryPointNames(entryPoints)))
	return entryPoints, nil
}

// parser is a recursive-descent parser over a token slice.
type parser struct {
	tokens   []token
	pos      int
	maxDepth int
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) next() token {
	t := p.tokens[p.pos]
	if t.typ != tokenEOF {
		p.pos++
	}
	return t
}

func (p *parser) expect(typ tokenType) (token, error) {
	t := p.next()
	if t.typ != typ {
		return t, p.unexpected(t, "expected "+typ.String())
	}
	return t, nil
}

func (p *parser) unexpected(t token, msg string) error {
	return &GrammarError{Offset: t.offset, Token: t.text, Msg: msg}
}

func (p *parser) parseRoot(declaration bool) (*typeNode, error) {
	if declaration {
		if _, err := p.expect(tokenParameter); err != nil {
			return nil, err
		}
	}

	root, err := p.parseType(1)
	if err != nil {
		return nil, err
	}

	if declaration {
		if _, err := p.expect(tokenSemicolon); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(tokenEOF); err != nil {
		return nil, err
	}
	return root, nil
}

func (p *parser) parseType(depth int) (*typeNode, error) {
	t := p.next()
	if depth > p.maxDepth {
		return nil, p.unexpected(t, "type nesting exceeds maximum depth")
	}

	switch t.typ {
	case tokenLParen:
		inner, err := p.parseType(depth + 1)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokenRParen); err != nil {
			return nil, err
		}
		return inner, nil
	case tokenScalar:
		return &typeNode{kind: t.typ, name: t.text, annots: p.parseAnnots()}, nil
	case tokenSingleArg:
		return p.parseArgs(t, 1, depth)
	case tokenOr, tokenPair, tokenDoubleArg:
		return p.parseArgs(t, 2, depth)
	default:
		return nil, p.unexpected(t, "expected type")
	}
}

func (p *parser) parseArgs(t token, arity, depth int) (*typeNode, error) {
	n := &typeNode{kind: t.typ, name: t.text, annots: p.parseAnnots()}
	for i := 0; i < arity; i++ {
		arg, err := p.parseType(depth + 1)
		if err != nil {
			return nil, err
		}
		n.args = append(n.args, arg)
	}
	return n, nil
}

func (p *parser) parseAnnots() []string {
	var annots []string
	for p.peek().typ == tokenAnnot {
		annots = append(annots, p.next().text)
	}
	return annots
}

// compile folds a type tree bottom-up into entry points.
func compile(n *typeNode) []*EntryPoint {
	switch n.kind {
	case tokenOr:
		return compileOr(n)
	case tokenPair:
		return compilePair(n)
	case tokenSingleArg, tokenDoubleArg:
		return compileWrapper(n)
	default:
		return compileScalar(n)
	}
}

func compileScalar(n *typeNode) []*EntryPoint {
	field := fieldAnnotation(n.annots)
	param := Parameter{Name: typeAnnotation(n.annots), Type: n.name}
	if param.Name == "" {
		param.Name = field
	}
	return []*EntryPoint{{
		name:       field,
		parameters: []Parameter{param},
		template:   SlotExpr{},
	}}
}

// compileWrapper collapses option, list, contract, set, lambda, map and
// big_map into a single opaque parameter.
func compileWrapper(n *typeNode) []*EntryPoint {
	name := fieldAnnotation(n.annots)
	param := Parameter{Name: typeAnnotation(n.annots), Type: n.typeString()}

	inner := compile(n.args[0])
	if len(inner) == 1 && len(inner[0].parameters) == 1 {
		if name == "" {
			name = inner[0].name
		}
		if param.Name == "" {
			param.Name = inner[0].parameters[0].Name
		}
	}
	if param.Name == "" {
		param.Name = name
	}

	return []*EntryPoint{{
		name:       name,
		parameters: []Parameter{param},
		template:   GroupExpr{Inner: SlotExpr{}},
	}}
}

func compilePair(n *typeNode) []*EntryPoint {
	name := fieldAnnotation(n.annots)
	first, second := compile(n.args[0]), compile(n.args[1])

	paired := make([]*EntryPoint, 0, len(first)*len(second))
	for _, a := range first {
		for _, b := range second {
			params := make([]Parameter, 0, len(a.parameters)+len(b.parameters))
			params = append(params, a.parameters...)
			params = append(params, b.parameters...)
			paired = append(paired, &EntryPoint{
				name:       name,
				parameters: params,
				template:   PairExpr{First: a.template, Second: b.template},
			})
		}
	}
	return paired
}

func compileOr(n *typeNode) []*EntryPoint {
	prefix := typeAnnotation(n.annots)
	if prefix == "" {
		prefix = fieldAnnotation(n.annots)
	}

	left, right := compile(n.args[0]), compile(n.args[1])
	branched := make([]*EntryPoint, 0, len(left)+len(right))
	for _, ep := range left {
		branched = append(branched, branch(ep, prefix, LeftExpr{Inner: ep.template}))
	}
	for _, ep := range right {
		branched = append(branched, branch(ep, prefix, RightExpr{Inner: ep.template}))
	}
	return branched
}

// branch copies ep under an or. A sole parameter named after the entry point
// loses its name, since the entry point already carries it.
func branch(ep *EntryPoint, prefix string, template Expr) *EntryPoint {
	params := make([]Parameter, len(ep.parameters))
	copy(params, ep.parameters)
	if len(params) == 1 && params[0].Name == ep.name {
		params[0].Name = ""
	}

	name := ep.name
	switch {
	case prefix != "" && name != "":
		name = prefix + "." + name
	case prefix != "":
		name = prefix
	}

	return &EntryPoint{name: name, parameters: params, template: template}
}

// fieldAnnotation returns the first %annotation, normalized.
func fieldAnnotation(annots []string) string {
	for _, a := range annots {
		if strings.HasPrefix(a, "%") {
			name := strings.TrimPrefix(a, legacyEntryPrefix)
			return capitalize(strings.TrimPrefix(name, "%"))
		}
	}
	return ""
}

// typeAnnotation returns the first :annotation, normalized.
func typeAnnotation(annots []string) string {
	for _, a := range annots {
		if strings.HasPrefix(a, ":") {
			return capitalize(strings.TrimPrefix(a, ":"))
		}
	}
	return ""
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
