package example

import (
	"errors"
	"fmt"
	"github.com/hneemann/cmap"
	"math"
	"strconv"
	"strings"
)

type operation func(a, b float64) float64

// operators is the dispatch table of the binary operators
var operators = cmap.New(
	cmap.E[string, operation]("+", func(a, b float64) float64 { return a + b }),
	cmap.E[string, operation]("-", func(a, b float64) float64 { return a - b }),
	cmap.E[string, operation]("*", func(a, b float64) float64 { return a * b }),
	cmap.E[string, operation]("/", func(a, b float64) float64 { return a / b }),
	cmap.E[string, operation]("^", math.Pow),
)

var constants = cmap.New(
	cmap.E("pi", math.Pi),
	cmap.E("e", math.E),
)

// Calc evaluates an expression in reverse polish notation like "2 pi *".
// The given variables hide the built-in constants of the same name.
func Calc(exp string, vars cmap.Lookup[string, float64]) (float64, error) {
	idents := cmap.Join(vars, constants)
	var stack []float64
	for _, tok := range strings.Fields(exp) {
		if op, err := operators.Get(tok); err == nil {
			if len(stack) < 2 {
				return 0, fmt.Errorf("operator %s requires two operands", tok)
			}
			a, b := stack[len(stack)-2], stack[len(stack)-1]
			stack = append(stack[:len(stack)-2], op(a, b))
			continue
		}
		if f, err := strconv.ParseFloat(tok, 64); err == nil {
			stack = append(stack, f)
			continue
		}
		v, err := idents.Get(tok)
		if err != nil {
			return 0, fmt.Errorf("unknown identifier %s: %w", tok, err)
		}
		stack = append(stack, v)
	}
	if len(stack) != 1 {
		return 0, errors.New("expression does not evaluate to a single value")
	}
	return stack[0], nil
}
