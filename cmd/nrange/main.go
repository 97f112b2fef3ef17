// Command nrange enumerates and queries N-dimensional integer regions.
//
// Usage:
//
//	nrange walk 0..3 0..=2            # print every point, axis 0 fastest
//	nrange walk --repeat 3 0..2       # the same axis on three dimensions
//	nrange len --file region.yaml     # axes read from a YAML file
//	nrange contains --point 1,2 0..3 0..3
//	nrange index --point 1,2 0..3 0..3
//	nrange at 7 0..3 0..3
//
// Region files list the axes in order:
//
//	axes: ["0..3", "0..=2"]
//	repeat: 1
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
