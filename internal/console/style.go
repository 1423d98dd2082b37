// Package console renders the colourised, fixed-width status lines that chimg
// prints to the user.
package console

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

type Level string

const (
	LevelInfo     Level = "Info"
	LevelError    Level = "ERROR"
	LevelDebug    Level = "DEBUG"
	LevelCritical Level = "CRITICAL"
	LevelWarning  Level = "WARNING"
)

const placeholder = "{}"

// Levels lists the accepted levels in display order.
var Levels = []Level{LevelInfo, LevelError, LevelDebug, LevelCritical, LevelWarning}

var levelColors = map[Level]color.Attribute{
	LevelInfo:     color.FgWhite,
	LevelError:    color.FgRed,
	LevelDebug:    color.FgGreen,
	LevelCritical: color.FgRed,
	LevelWarning:  color.FgRed,
}

// Formatter turns a level and a "{}" template into a console line.
type Formatter struct {
	colored bool
}

func NewFormatter(colored bool) *Formatter {
	return &Formatter{colored: colored}
}

// Format renders template at the given level, substituting each "{}" with the
// next value from args. An unknown level yields a CRITICAL line listing the
// valid levels instead.
func (f *Formatter) Format(level Level, template string, args ...interface{}) string {
	attr, ok := levelColors[level]
	if !ok {
		return f.render(color.FgRed, LevelCritical, "Invalid level, All levels list: {}", []interface{}{levelList()})
	}
	return f.render(attr, level, template, args)
}

func (f *Formatter) render(attr color.Attribute, level Level, template string, args []interface{}) string {
	var b strings.Builder

	b.WriteString(f.paint(attr, fmt.Sprintf("[%-10s", string(level)+"]")))
	b.WriteString(f.paint(color.FgBlue, "  "))

	for _, seg := range split(template, args) {
		if seg.value {
			b.WriteString(f.paint(color.FgGreen, seg.text))
		} else {
			b.WriteString(f.paint(color.FgBlue, seg.text))
		}
	}

	return b.String()
}

func (f *Formatter) paint(attr color.Attribute, s string) string {
	if s == "" {
		return ""
	}
	c := color.New(attr)
	if f.colored {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(s)
}

func levelList() string {
	names := make([]string, len(Levels))
	for i, l := range Levels {
		names[i] = string(l)
	}
	return strings.Join(names, ", ")
}

// Substitute fills the "{}" placeholders of template without any styling.
func Substitute(template string, args ...interface{}) string {
	var b strings.Builder
	for _, seg := range split(template, args) {
		b.WriteString(seg.text)
	}
	return b.String()
}

type segment struct {
	text  string
	value bool
}

// split cuts template at each "{}". Placeholders without a matching argument
// are kept literally and surplus arguments are dropped.
func split(template string, args []interface{}) []segment {
	var segs []segment
	next := 0
	rest := template
	for {
		i := strings.Index(rest, placeholder)
		if i < 0 {
			break
		}
		segs = append(segs, segment{text: rest[:i]})
		if next < len(args) {
			segs = append(segs, segment{text: fmt.Sprint(args[next]), value: true})
			next++
		} else {
			segs = append(segs, segment{text: placeholder, value: true})
		}
		rest = rest[i+len(placeholder):]
	}
	return append(segs, segment{text: rest})
}
