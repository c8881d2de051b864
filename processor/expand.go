package processor

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// sysEquate returns the predefined system equates.
func (proc *Processor) sysEquate() map[string]string {
	return map[string]string{
		"LINENO":    "0",
		"REG_COUNT": fmt.Sprintf("%v", proc.regs.Size()),
		"MEM_SIZE":  fmt.Sprintf("%v", proc.mem.Size()),
	}
}

// parenEval does load-time $(...) evaluations.
func (proc *Processor) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range proc.equate {
		value64, verr := strconv.ParseInt(str, 0, 64)
		if verr != nil {
			// Ignore non-integer equates.
			continue
		}
		pred[key] = starlark.MakeInt64(value64)
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}

	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}

	return
}

var (
	reExpr  = regexp.MustCompile(`\$\([^\$]*\)`)
	reIdent = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*`)
)

// expandLine preprocesses one raw source line: strips the ';' comment,
// evaluates $() expressions, substitutes equates, and consumes .equ
// directives. An empty result line produces no instruction. On error
// the trimmed source line is returned alongside the error, for
// reporting.
func (proc *Processor) expandLine(text string, lineno int) (line string, err error) {
	proc.equate["LINENO"] = fmt.Sprintf("%v", lineno)

	text, _, _ = strings.Cut(text, ";")
	line = strings.TrimSpace(text)
	if len(line) == 0 {
		return
	}

	// Do $() evaluations
	expanded := reExpr.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := proc.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%v", value)
	})
	if err != nil {
		return
	}

	// .equ CONST VALUE
	fields := strings.Fields(expanded)
	if len(fields) > 0 && fields[0] == ".equ" {
		if len(fields) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := proc.equate[fields[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		proc.equate[fields[1]] = fields[2]
		line = ""
		return
	}

	// Equate substitution on identifier tokens.
	expanded = reIdent.ReplaceAllStringFunc(expanded, func(word string) string {
		equate, ok := proc.equate[word]
		if ok {
			return equate
		}
		return word
	})

	line = expanded
	return
}
