package axis

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Parse reads a range in the form produced by Range.String:
//
//	lo..hi   lo..=hi   lo..   ..hi   ..=hi   ..   (lo..hi
//
// Surrounding whitespace is ignored. Errors wrap ErrSyntax or ErrValue.
func Parse[T constraints.Integer](s string) (Range[T], error) {
	text := strings.TrimSpace(s)
	excluded := strings.HasPrefix(text, "(")
	text = strings.TrimPrefix(text, "(")

	left, right, found := strings.Cut(text, "..")
	if !found {
		return Range[T]{}, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	left, right = strings.TrimSpace(left), strings.TrimSpace(right)
	included := strings.HasPrefix(right, "=")
	right = strings.TrimSpace(strings.TrimPrefix(right, "="))
	if excluded && left == "" || included && right == "" {
		return Range[T]{}, fmt.Errorf("%w: %q", ErrSyntax, s)
	}

	start, end := Open[T](), Open[T]()
	if left != "" {
		v, err := parseValue[T](left)
		if err != nil {
			return Range[T]{}, err
		}
		start = Inc(v)
		if excluded {
			start = Exc(v)
		}
	}
	if right != "" {
		v, err := parseValue[T](right)
		if err != nil {
			return Range[T]{}, err
		}
		end = Exc(v)
		if included {
			end = Inc(v)
		}
	}

	return Between(start, end), nil
}

// MustParse is like Parse but panics on error. Intended for literals.
func MustParse[T constraints.Integer](s string) Range[T] {
	r, err := Parse[T](s)
	if err != nil {
		panic(err)
	}

	return r
}

// parseValue converts a base-10 literal to T, rejecting values T cannot hold.
func parseValue[T constraints.Integer](s string) (T, error) {
	if signed[T]() {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil || int64(T(v)) != v {
			return 0, fmt.Errorf("%w: %q", ErrValue, s)
		}

		return T(v), nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil || uint64(T(v)) != v {
		return 0, fmt.Errorf("%w: %q", ErrValue, s)
	}

	return T(v), nil
}
