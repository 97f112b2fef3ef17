package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/nrange/axis"
	"github.com/katalvlaran/nrange/region"
)

// space is the region type the command works with.
type space = region.Region[int64, axis.Range[int64]]

// regionFile is the YAML layout accepted by --file.
type regionFile struct {
	Axes   []string `yaml:"axes"`
	Repeat int      `yaml:"repeat"`
}

// errNoAxes is returned when neither arguments nor a file name any axis.
var errNoAxes = errors.New("no axes given")

// loadRegion builds the region from the axis arguments, or from --file,
// applying --repeat when set.
func loadRegion(cmd *cobra.Command, exprs []string) (space, error) {
	repeat := GetInt(cmd, "repeat")
	if file := GetString(cmd, "file"); file != "" {
		if len(exprs) > 0 {
			return space{}, fmt.Errorf("axes given both as arguments and in %s", file)
		}
		rf, err := readRegionFile(file)
		if err != nil {
			return space{}, err
		}
		exprs = rf.Axes
		if repeat == 0 {
			repeat = rf.Repeat
		}
	}
	if len(exprs) == 0 {
		return space{}, errNoAxes
	}
	if repeat < 0 {
		return space{}, fmt.Errorf("repeat must be non-negative, got %d", repeat)
	}

	axes := make([]axis.Range[int64], len(exprs))
	for i, s := range exprs {
		a, err := axis.Parse[int64](s)
		if err != nil {
			return space{}, fmt.Errorf("axis %d: %w", i, err)
		}
		axes[i] = a
	}

	var r space
	switch {
	case repeat > 0 && len(axes) != 1:
		return space{}, fmt.Errorf("repeat needs exactly one axis, got %d", len(axes))
	case repeat > 0:
		r = region.Repeat[int64](axes[0], repeat)
	default:
		r = region.Of(axes...)
	}
	log.WithFields(log.Fields{"region": r.String(), "dim": r.Dim()}).Debug("region loaded")

	return r, nil
}

// readRegionFile decodes a YAML region file, rejecting unknown keys.
func readRegionFile(name string) (regionFile, error) {
	var rf regionFile
	data, err := os.ReadFile(name)
	if err != nil {
		return rf, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&rf); err != nil {
		return rf, fmt.Errorf("%s: %w", name, err)
	}
	log.WithField("file", name).Debugf("read %d axes", len(rf.Axes))

	return rf, nil
}

// unbounded reports whether any axis lacks an edge.
func unbounded(r space) bool {
	for _, a := range r.Axes() {
		if a.StartBound().Kind == axis.Unbounded || a.EndBound().Kind == axis.Unbounded {
			return true
		}
	}

	return false
}
