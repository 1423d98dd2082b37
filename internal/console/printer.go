package console

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Message is a single styled line waiting to be rendered.
type Message struct {
	Level    Level
	Template string
	Args     []interface{}
}

func Info(template string, args ...interface{}) Message {
	return Message{Level: LevelInfo, Template: template, Args: args}
}

func Errorf(template string, args ...interface{}) Message {
	return Message{Level: LevelError, Template: template, Args: args}
}

func (m Message) String() string {
	return Substitute(m.Template, m.Args...)
}

// Error is an error shown to the user as one or more styled lines.
type Error struct {
	Messages []Message
	Err      error
}

func NewError(cause error, messages ...Message) *Error {
	return &Error{Messages: messages, Err: cause}
}

func (e *Error) Error() string {
	lines := make([]string, len(e.Messages))
	for i, m := range e.Messages {
		lines[i] = m.String()
	}
	return strings.Join(lines, "; ")
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Printer writes formatted lines to w.
type Printer struct {
	w         io.Writer
	formatter *Formatter
}

func NewPrinter(w io.Writer, colored bool) *Printer {
	return &Printer{w: w, formatter: NewFormatter(colored)}
}

func (p *Printer) Print(level Level, template string, args ...interface{}) {
	fmt.Fprintln(p.w, p.formatter.Format(level, template, args...))
}

func (p *Printer) PrintMessage(m Message) {
	p.Print(m.Level, m.Template, m.Args...)
}

// PrintError renders err. A *Error prints its own lines; anything else is
// printed as a single ERROR line.
func (p *Printer) PrintError(err error) {
	var cerr *Error
	if errors.As(err, &cerr) && len(cerr.Messages) > 0 {
		for _, m := range cerr.Messages {
			p.PrintMessage(m)
		}
		return
	}
	p.Print(LevelError, "{}", err)
}
