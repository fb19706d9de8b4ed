package sxreader

import (
	"fmt"
	"io"
	"strconv"

	"gscheme.dev/gscheme/sx"
)

// Reader builds sx.Object values from the token stream produced by a Lexer.
type Reader struct {
	lx   *Lexer
	peek *Token
}

// NewReader creates a Reader over the given source text.
func NewReader(src string) *Reader {
	return &Reader{lx: NewLexer(src)}
}

func (rd *Reader) nextToken() (Token, error) {
	if rd.peek != nil {
		tok := *rd.peek
		rd.peek = nil
		return tok, nil
	}
	return rd.lx.Next()
}

func (rd *Reader) peekToken() (Token, error) {
	if rd.peek == nil {
		tok, err := rd.lx.Next()
		if err != nil {
			return Token{}, err
		}
		rd.peek = &tok
	}
	return *rd.peek, nil
}

// Read parses and returns one top-level S-expression. It returns io.EOF
// when the input is exhausted.
func (rd *Reader) Read() (sx.Object, error) {
	tok, err := rd.nextToken()
	if err != nil {
		return nil, err
	}
	return rd.readFrom(tok)
}

// ReadAll reads every top-level S-expression in the input.
func (rd *Reader) ReadAll() ([]sx.Object, error) {
	var forms []sx.Object
	for {
		form, err := rd.Read()
		if err != nil {
			if err == io.EOF {
				return forms, nil
			}
			return forms, err
		}
		forms = append(forms, form)
	}
}

func (rd *Reader) readFrom(tok Token) (sx.Object, error) {
	switch tok.Kind {
	case EOF:
		return nil, io.EOF
	case LPAREN:
		return rd.readList()
	case RPAREN:
		return nil, &SyntaxError{Msg: "unexpected ')'", Line: tok.Line, Col: tok.Col}
	case VECTOR_OPEN:
		return rd.readVector()
	case QUOTE, QUASIQUOTE, UNQUOTE, UNQUOTE_SPLICING:
		return rd.readMacro(tok)
	case INTEGER:
		n, err := strconv.ParseInt(tok.Text, 10, 64)
		if err != nil {
			return nil, &SyntaxError{Msg: fmt.Sprintf("invalid integer literal %q", tok.Text), Line: tok.Line, Col: tok.Col}
		}
		return sx.Integer(n), nil
	case FLOAT:
		f, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			return nil, &SyntaxError{Msg: fmt.Sprintf("invalid float literal %q", tok.Text), Line: tok.Line, Col: tok.Col}
		}
		return sx.Float(f), nil
	case BOOLEAN:
		return sx.Boolean(tok.Text == "#t"), nil
	case CHARACTER:
		r := []rune(tok.Text)
		if len(r) != 1 {
			return nil, &SyntaxError{Msg: "invalid character literal", Line: tok.Line, Col: tok.Col}
		}
		return sx.Character(r[0]), nil
	case STRING:
		return sx.NewString(tok.Text), nil
	case SYMBOL:
		return sx.Intern(tok.Text), nil
	}
	return nil, &SyntaxError{Msg: "unrecognized token", Line: tok.Line, Col: tok.Col}
}

// readMacro implements the `'x` -> (quote x), `` `x `` -> (quasiquote x),
// `,x` -> (unquote x), `,@x` -> (unquote-splicing x) desugaring.
func (rd *Reader) readMacro(tok Token) (sx.Object, error) {
	var head *sx.Symbol
	switch tok.Kind {
	case QUOTE:
		head = sx.SymQuote
	case QUASIQUOTE:
		head = sx.SymQuasiquote
	case UNQUOTE:
		head = sx.SymUnquote
	case UNQUOTE_SPLICING:
		head = sx.SymUnquoteSplicing
	}
	inner, err := rd.Read()
	if err != nil {
		if err == io.EOF {
			return nil, &SyntaxError{Msg: "unexpected end of input after reader macro", Line: tok.Line, Col: tok.Col, Incomplete: true}
		}
		return nil, err
	}
	return sx.MakeList(head, inner), nil
}

func (rd *Reader) readList() (sx.Object, error) {
	var lb sx.ListBuilder
	for {
		tok, err := rd.peekToken()
		if err != nil {
			return nil, err
		}
		if tok.Kind == EOF {
			return nil, &SyntaxError{Msg: "unexpected end of input, expected ')'", Line: tok.Line, Col: tok.Col, Incomplete: true}
		}
		if tok.Kind == RPAREN {
			_, _ = rd.nextToken()
			return lb.List(), nil
		}
		// A dotted tail: "SYMBOL ." is a lexer symbol consisting solely of
		// ".", used here to end the list with an improper tail.
		if tok.Kind == SYMBOL && tok.Text == "." {
			_, _ = rd.nextToken()
			tail, err := rd.Read()
			if err != nil {
				return nil, err
			}
			closeTok, err := rd.nextToken()
			if err != nil {
				return nil, err
			}
			if closeTok.Kind != RPAREN {
				return nil, &SyntaxError{Msg: "malformed dotted list, expected ')'", Line: closeTok.Line, Col: closeTok.Col}
			}
			last := lb.List()
			if last == nil {
				return sx.Cons(sx.Nil(), tail), nil
			}
			lastPair := last
			for lastPair.Tail() != nil {
				lastPair = lastPair.Tail()
			}
			lastPair.SetCdr(tail)
			return last, nil
		}
		elem, err := rd.Read()
		if err != nil {
			return nil, err
		}
		lb.Add(elem)
	}
}

func (rd *Reader) readVector() (sx.Object, error) {
	var items []sx.Object
	for {
		tok, err := rd.peekToken()
		if err != nil {
			return nil, err
		}
		if tok.Kind == EOF {
			return nil, &SyntaxError{Msg: "unexpected end of input, expected ')'", Line: tok.Line, Col: tok.Col, Incomplete: true}
		}
		if tok.Kind == RPAREN {
			_, _ = rd.nextToken()
			return sx.NewVector(items), nil
		}
		elem, err := rd.Read()
		if err != nil {
			return nil, err
		}
		items = append(items, elem)
	}
}
