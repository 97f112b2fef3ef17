package main

import (
	"fmt"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/nrange/axis"
	"github.com/katalvlaran/nrange/region"
)

func newWalkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "walk [flags] axis...",
		Short: "print every point of the region, axis 0 fastest.",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := loadRegion(cmd, args)
			if err != nil {
				return err
			}
			limit := GetInt(cmd, "limit")
			if limit == 0 && unbounded(r) {
				log.Warn("region has an unbounded axis; output may not end (see --limit)")
			}
			var it *region.Odometer[int64, axis.Range[int64]]
			if err := guard(func() { it = r.Iter() }); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			n := 0
			for limit == 0 || n < limit {
				p, ok := it.Next()
				if !ok {
					break
				}
				fmt.Fprintln(out, formatPoint(p))
				n++
			}
			log.Debugf("walked %d points", n)

			return nil
		},
	}
	cmd.Flags().IntP("limit", "n", 0, "stop after this many points (0 for no limit)")

	return cmd
}

func newLenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "len [flags] axis...",
		Short: "print the number of points in the region.",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := loadRegion(cmd, args)
			if err != nil {
				return err
			}
			var n int
			if err := guard(func() { n = r.Len() }); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)

			return nil
		},
	}
}

func newContainsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contains --point x,y,... [flags] axis...",
		Short: "report whether a point lies in the region.",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := loadRegion(cmd, args)
			if err != nil {
				return err
			}
			p, err := parsePoint(GetString(cmd, "point"), r.Dim())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), r.Contains(p))

			return nil
		},
	}
	cmd.Flags().StringP("point", "p", "", "comma-separated coordinates")
	//nolint:errcheck
	cmd.MarkFlagRequired("point")

	return cmd
}

func newIndexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index --point x,y,... [flags] axis...",
		Short: "print the position of a point in enumeration order.",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := loadRegion(cmd, args)
			if err != nil {
				return err
			}
			p, err := parsePoint(GetString(cmd, "point"), r.Dim())
			if err != nil {
				return err
			}
			var (
				idx int
				ok  bool
			)
			if err := guard(func() { idx, ok = r.Index(p) }); err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("point %s is not in %v", formatPoint(p), r)
			}
			fmt.Fprintln(cmd.OutOrStdout(), idx)

			return nil
		},
	}
	cmd.Flags().StringP("point", "p", "", "comma-separated coordinates")
	//nolint:errcheck
	cmd.MarkFlagRequired("point")

	return cmd
}

func newAtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "at [flags] index axis...",
		Short: "print the point at a position in enumeration order.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("index %q: %w", args[0], err)
			}
			r, err := loadRegion(cmd, args[1:])
			if err != nil {
				return err
			}
			var (
				p  []int64
				ok bool
			)
			if err := guard(func() { p, ok = r.At(idx) }); err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("index %d is outside %v", idx, r)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatPoint(p))

			return nil
		},
	}
}
