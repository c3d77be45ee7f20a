// Package session runs a line-oriented conversation with the converter: each
// input line is one user event, and the view is drawn again after every event
// that changes it.
//
// Commands:
//
//	old <amount>    type into the old-unit field
//	new <amount>    type into the new-unit field
//	total <amount>  type into the mixed-payment total (new units)
//	paid <amount>   type into the mixed-payment old-unit payment
//	calc            compute the remainder
//	lang            switch language
//	dark            switch dark mode
//	show            draw the view
//	help            list commands
//	quit            end the session
//
// Everything after the command word is the field text, verbatim except for the
// single separating space; a bare "old" clears the field.
package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"fjacquet/syp-convert/internal/app"
	"fjacquet/syp-convert/internal/logging"
	"fjacquet/syp-convert/internal/render"
)

const help = `commands:
  old <amount>    convert old units to new units
  new <amount>    convert new units to old units
  total <amount>  set the total due (new units)
  paid <amount>   set the amount paid in old units
  calc            calculate what is left to pay
  lang            switch language
  dark            switch dark mode
  show            show the converter
  quit            leave
`

// Session connects a controller to an input stream and an output writer.
type Session struct {
	ctrl   *app.Controller
	out    io.Writer
	opts   render.Options
	logger logging.Logger
}

// New returns a session drawing ctrl to out.
func New(ctrl *app.Controller, out io.Writer, opts render.Options, logger logging.Logger) *Session {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Session{
		ctrl:   ctrl,
		out:    out,
		opts:   opts,
		logger: logger.WithField(logging.FieldComponent, "session"),
	}
}

// Run draws the view once and then handles lines from in until quit, end of
// input or cancellation of ctx. Cancellation ends the session at once, even
// while waiting for input, and is reported as ctx.Err(). It returns the number
// of events handled.
func (s *Session) Run(ctx context.Context, in io.Reader) (int, error) {
	if err := s.draw(); err != nil {
		return 0, err
	}

	lines := make(chan string)
	readErr := make(chan error, 1)
	stop := make(chan struct{})
	defer close(stop)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-stop:
				return
			}
		}
		readErr <- scanner.Err()
	}()

	events := 0
	for {
		if err := ctx.Err(); err != nil {
			return events, err
		}

		select {
		case <-ctx.Done():
			return events, ctx.Err()
		case line, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return events, fmt.Errorf("error reading input: %w", err)
				}
				s.logger.Debug("Session ended", logging.Field{Key: logging.FieldCount, Value: events})
				return events, nil
			}

			done, err := s.Handle(line)
			if err != nil {
				return events, err
			}
			events++
			if done {
				s.logger.Debug("Session ended", logging.Field{Key: logging.FieldCount, Value: events})
				return events, nil
			}
		}
	}
}

// Handle applies one input line. done is true when the line ends the session.
func (s *Session) Handle(line string) (done bool, err error) {
	command, text := split(line)

	switch command {
	case "":
		return false, nil
	case "old":
		s.ctrl.EditOld(text)
	case "new":
		s.ctrl.EditNew(text)
	case "total":
		s.ctrl.SetTotalNew(text)
	case "paid":
		s.ctrl.SetPaidOld(text)
	case "calc":
		s.ctrl.CalculateRemainder()
	case "lang":
		s.ctrl.ToggleLanguage()
	case "dark":
		s.ctrl.ToggleDarkMode()
	case "show":
	case "help", "?":
		_, err := io.WriteString(s.out, help)
		return false, err
	case "quit", "exit", "q":
		return true, nil
	default:
		_, err := fmt.Fprintf(s.out, "unknown command %q, type help\n", command)
		return false, err
	}

	return false, s.draw()
}

func (s *Session) draw() error {
	return render.Text(s.out, s.ctrl.View(), s.opts)
}

// split separates the command word from the field text.
func split(line string) (command, text string) {
	line = strings.TrimLeft(line, " \t")
	command = line
	if i := strings.IndexAny(line, " \t"); i >= 0 {
		command, text = line[:i], line[i+1:]
	}
	return strings.ToLower(strings.TrimRight(command, "\r")), strings.TrimRight(text, "\r")
}
