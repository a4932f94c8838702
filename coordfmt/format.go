/*
Package coordfmt renders coordinates for consoles.

Coordinates print in their effective dimension order, either inline or
as aligned key/value tables, with optional coloring of keys and values.
Rendering adapts to the width of an interactive terminal.

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package coordfmt

import (
	"cmp"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/coords"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/term"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Config controls coordinate rendering.
//
// LineWidth is the target line length in fixed-width character
// positions; a coordinate whose inline form does not fit is rendered as
// a stacked key/value table instead. KeyColor and ValueColor are used
// for the respective cells; either may be nil for uncolored output.
type Config struct {
	LineWidth  int
	KeyColor   *color.Color
	ValueColor *color.Color
}

// ConfigFromTerminal is a simple helper for creating a formatting
// Config. It checks whether stdout is a terminal, and if so it reads
// the terminal's width and sets Config.LineWidth accordingly, together
// with a default color palette.
func ConfigFromTerminal() *Config {
	config := &Config{
		KeyColor: color.New(color.FgBlue),
	}
	if term.IsTerminal(0) {
		w, _, err := term.GetSize(0)
		if err != nil {
			config.LineWidth = 65
		} else {
			if w > 65 {
				config.LineWidth = w - 10
			} else if w > 30 {
				config.LineWidth = w - 5
			} else if w > 10 {
				config.LineWidth = w
			} else {
				config.LineWidth = 10
			}
		}
	} else {
		config.LineWidth = 65
	}
	T().P("format", "coord").Infof("setting line length to %d en", config.LineWidth)
	return config
}

// Print outputs a coordinate to stdout, with a config derived from the
// current terminal's properties.
func Print[K cmp.Ordered](c coords.Coordinate[K]) error {
	return Fprint(os.Stdout, c, nil)
}

// Fprint outputs a coordinate to w. If config is nil, a heuristic will
// create one from the current terminal's properties (if stdout is
// interactive).
//
// Dimensions appear in the coordinate's effective order. Output is a
// single line when it fits config.LineWidth, a stacked two-column table
// otherwise.
func Fprint[K cmp.Ordered](w io.Writer, c coords.Coordinate[K], config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
	}
	if inline := c.String(); len(inline) <= config.LineWidth {
		return printInline(w, c, config)
	}
	return printStacked(w, c, config)
}

func printInline[K cmp.Ordered](w io.Writer, c coords.Coordinate[K], config *Config) error {
	sep := ""
	if err := write(w, nil, nameOf(c)+"{"); err != nil {
		return err
	}
	for k, v := range c.Items(nil) {
		if err := write(w, nil, sep); err != nil {
			return err
		}
		if err := write(w, config.KeyColor, fmt.Sprintf("%v", k)); err != nil {
			return err
		}
		if err := write(w, nil, ": "); err != nil {
			return err
		}
		if err := write(w, config.ValueColor, formatValue(v)); err != nil {
			return err
		}
		sep = ", "
	}
	return write(w, nil, "}\n")
}

func printStacked[K cmp.Ordered](w io.Writer, c coords.Coordinate[K], config *Config) error {
	if err := write(w, nil, nameOf(c)+"\n"); err != nil {
		return err
	}
	keywidth := 0
	for k := range c.Keys(nil) {
		if n := len(fmt.Sprintf("%v", k)); n > keywidth {
			keywidth = n
		}
	}
	for k, v := range c.Items(nil) {
		cell := fmt.Sprintf("%v", k)
		if err := write(w, nil, "  "); err != nil {
			return err
		}
		if err := write(w, config.KeyColor, cell); err != nil {
			return err
		}
		pad := strings.Repeat(" ", keywidth-len(cell)+2)
		if err := write(w, nil, pad); err != nil {
			return err
		}
		if err := write(w, config.ValueColor, formatValue(v)); err != nil {
			return err
		}
		if err := write(w, nil, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// FprintSeq outputs a sequence of coordinates to w as a single table:
// a header row of dimension keys, then one row of values per
// coordinate. The column order is the first coordinate's effective
// order; cells for keys a coordinate does not hold stay blank.
func FprintSeq[K cmp.Ordered](w io.Writer, cs []coords.Coordinate[K], config *Config) error {
	if len(cs) == 0 {
		return nil
	}
	if config == nil {
		config = ConfigFromTerminal()
	}
	order := cs[0].Order()
	widths := make([]int, len(order))
	cells := make([][]string, len(cs))
	for i, k := range order {
		widths[i] = len(fmt.Sprintf("%v", k))
	}
	for j, c := range cs {
		row := make([]string, len(order))
		for i, k := range order {
			if v, err := c.At(k); err == nil {
				row[i] = formatValue(v)
			}
			if len(row[i]) > widths[i] {
				widths[i] = len(row[i])
			}
		}
		cells[j] = row
	}
	for i, k := range order {
		cell := fmt.Sprintf("%v", k)
		if err := write(w, config.KeyColor, cell); err != nil {
			return err
		}
		if err := write(w, nil, pad(cell, widths[i], i == len(order)-1)); err != nil {
			return err
		}
	}
	if err := write(w, nil, "\n"); err != nil {
		return err
	}
	for _, row := range cells {
		for i, cell := range row {
			if err := write(w, config.ValueColor, cell); err != nil {
				return err
			}
			if err := write(w, nil, pad(cell, widths[i], i == len(row)-1)); err != nil {
				return err
			}
		}
		if err := write(w, nil, "\n"); err != nil {
			return err
		}
	}
	return nil
}

func pad(cell string, width int, last bool) string {
	if last {
		return ""
	}
	return strings.Repeat(" ", width-len(cell)+2)
}

func write(w io.Writer, c *color.Color, s string) error {
	if s == "" {
		return nil
	}
	if c != nil {
		_, err := c.Fprint(w, s)
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

func nameOf[K cmp.Ordered](c coords.Coordinate[K]) string {
	if s := c.Space(); s != nil {
		return s.Name()
	}
	return "Coordinate"
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
