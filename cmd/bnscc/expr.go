package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/biodivine/bnscc/pkg/bdd"
)

// maxVarIndex scans expr for the highest "vN" token so the caller knows how
// many variables the Worker needs before any parsing happens.
func maxVarIndex(expr string) (int, error) {
	max := -1
	for _, tok := range strings.Fields(expr) {
		tok = strings.Trim(tok, "()")
		idx, ok := varIndex(tok)
		if !ok {
			continue
		}
		if idx > max {
			max = idx
		}
	}
	if max < 0 {
		return 0, fmt.Errorf("no variable reference (vN) found in expression %q", expr)
	}
	return max, nil
}

func varIndex(tok string) (int, bool) {
	if !strings.HasPrefix(tok, "v") {
		return 0, false
	}
	n, err := strconv.Atoi(tok[1:])
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// parseExpr is a tiny recursive-descent parser for prefix Boolean
// expressions: "and <e> <e>", "not <e>", or a bare "vN" variable reference,
// with parentheses accepted purely for readability (they carry no grouping
// meaning beyond what prefix notation already gives).
func parseExpr(w *bdd.Worker, tokens []string) (bdd.BDD, error) {
	b, rest, err := parseOne(w, tokens)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("unexpected trailing tokens: %v", rest)
	}
	return b, nil
}

func parseOne(w *bdd.Worker, tokens []string) (b bdd.BDD, rest []string, err error) {
	if len(tokens) == 0 {
		return nil, nil, fmt.Errorf("unexpected end of expression")
	}
	tok := tokens[0]
	tokens = tokens[1:]
	tok = strings.Trim(tok, "()")

	switch tok {
	case "and":
		left, rest, err := parseOne(w, tokens)
		if err != nil {
			return nil, nil, err
		}
		right, rest, err := parseOne(w, rest)
		if err != nil {
			return nil, nil, err
		}
		return w.And(left, right), rest, nil
	case "not":
		operand, rest, err := parseOne(w, tokens)
		if err != nil {
			return nil, nil, err
		}
		return w.Not(operand), rest, nil
	default:
		idx, ok := varIndex(tok)
		if !ok {
			return nil, nil, fmt.Errorf("unexpected token %q", tok)
		}
		v, err := w.MkVar(uint32(idx))
		if err != nil {
			return nil, nil, err
		}
		return v, tokens, nil
	}
}
