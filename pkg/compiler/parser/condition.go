package parser

import (
	"strings"

	"github.com/zurustar/mybash/pkg/compiler/ast"
	"github.com/zurustar/mybash/pkg/compiler/lexer"
	"github.com/zurustar/mybash/pkg/compiler/token"
)

// conditionParser walks the header tokens of one conditional line.
type conditionParser struct {
	s       *lexer.Scanner
	lineNum int

	curToken  token.Token
	peekToken token.Token
}

func parseCondition(line string, lineNum int) (*ast.Condition, error) {
	p := &conditionParser{
		s:       lexer.NewScanner(line),
		lineNum: lineNum,
	}
	// Read two tokens, so curToken and peekToken are both set
	p.nextToken()
	p.nextToken()

	if p.curToken.Type != token.WORD || p.curToken.Literal != token.KeywordIf {
		return nil, newInvalidCondition(p.curToken.Literal, "expected `if`")
	}

	if !p.expectOperand() {
		return nil, newInvalidCondition(p.peekToken.Literal, "expected left operand")
	}
	left := p.curToken.Literal

	if !p.expectPeek(token.OPERATOR) {
		return nil, newInvalidCondition(p.peekToken.Literal, "expected comparison operator")
	}
	op, ok := token.LookupOperator(p.curToken.Literal)
	if !ok {
		return nil, newInvalidCondition(p.curToken.Literal, "unknown comparison operator")
	}

	if !p.expectOperand() {
		return nil, newInvalidCondition(p.peekToken.Literal, "expected right operand")
	}
	right := p.curToken.Literal

	if p.peekToken.Type != token.WORD || p.peekToken.Literal != token.KeywordThen {
		return nil, newInvalidCondition(p.peekToken.Literal, "expected `then`")
	}
	p.nextToken()

	branch := strings.TrimSpace(p.s.Rest(p.curToken.End))
	if branch == "" {
		return nil, newInvalidCondition(line, "missing branch after `then`")
	}

	kind := lexer.Classify(branch)
	if kind == token.SKIP {
		return nil, newInvalidCondition(branch, "branch must be a declaration, an echo or a condition")
	}

	then, err := parseLine(branch, kind, lineNum)
	if err != nil {
		return nil, err
	}

	return &ast.Condition{
		Line: lineNum,
		Compare: ast.Comparison{
			Left:     left,
			Right:    right,
			Operator: op,
		},
		Then: then,
	}, nil
}

func (p *conditionParser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.s.NextToken()
}

func (p *conditionParser) expectPeek(t token.TokenType) bool {
	if p.peekToken.Type == t {
		p.nextToken()
		return true
	}
	return false
}

func (p *conditionParser) expectOperand() bool {
	switch p.peekToken.Type {
	case token.WORD, token.STRING:
		p.nextToken()
		return true
	}
	return false
}
