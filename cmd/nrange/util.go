package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, exiting if it was never registered.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	return r
}

// GetInt gets an expected int, exiting if it was never registered.
func GetInt(cmd *cobra.Command, flag string) int {
	r, err := cmd.Flags().GetInt(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	return r
}

// GetString gets an expected string, exiting if it was never registered.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	return r
}

// parsePoint reads a comma-separated coordinate list such as "1,-2,3".
func parsePoint(s string, dim int) ([]int64, error) {
	fields := strings.Split(s, ",")
	if len(fields) != dim {
		return nil, fmt.Errorf("point %q has %d coordinates, region has %d axes", s, len(fields), dim)
	}
	p := make([]int64, dim)
	for i, f := range fields {
		v, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("point %q: coordinate %d: %w", s, i, err)
		}
		p[i] = v
	}

	return p, nil
}

// formatPoint renders p in the form parsePoint reads.
func formatPoint(p []int64) string {
	parts := make([]string, len(p))
	for i, v := range p {
		parts[i] = strconv.FormatInt(v, 10)
	}

	return strings.Join(parts, ",")
}

// guard runs fn and turns a panic carrying an error into a returned error.
// The region packages panic on contract violations such as the length of
// an unbounded axis; at the command line these are user input problems.
func guard(fn func()) (err error) {
	defer func() {
		if p := recover(); p != nil {
			e, ok := p.(error)
			if !ok {
				panic(p)
			}
			err = e
		}
	}()
	fn()

	return nil
}
