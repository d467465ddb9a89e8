package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/govalues/fraction"
	"github.com/govalues/fraction/internal/config"
)

// Session reads two fractions from in and writes them, together with
// their sum, difference, product and quotient, to out.
type Session struct {
	in        *bufio.Reader
	out       io.Writer
	precision int
	wait      bool
	log       *slog.Logger
}

// NewSession returns a session reading from in and writing to out.
func NewSession(in io.Reader, out io.Writer, cfg config.Config, log *slog.Logger) *Session {
	return &Session{
		in:        bufio.NewReader(in),
		out:       out,
		precision: cfg.Precision,
		wait:      cfg.Wait,
		log:       log,
	}
}

type operation struct {
	name string
	op   func(fraction.Fraction) (fraction.Fraction, error)
}

// Run executes one session.
// Arithmetic and input failures are reported to out and end the
// session early; they are not returned.
func (s *Session) Run() error {
	s.log.Info("session.started", "precision", s.precision, "wait", s.wait)

	if err := s.calculate(); err != nil {
		s.report(err)
	}

	if s.wait {
		// Any input, including EOF, ends the session.
		_, _ = s.in.ReadString('\n')
	}

	s.log.Info("session.finished")
	return nil
}

func (s *Session) calculate() error {
	n1, err := s.readInt("numerator of fraction 1")
	if err != nil {
		return err
	}
	d1, err := s.readInt("denominator of fraction 1")
	if err != nil {
		return err
	}
	n2, err := s.readInt("numerator of fraction 2")
	if err != nil {
		return err
	}
	d2, err := s.readInt("denominator of fraction 2")
	if err != nil {
		return err
	}

	f, err := fraction.New(n1, d1)
	if err != nil {
		return err
	}
	g, err := fraction.New(n2, d2)
	if err != nil {
		return err
	}
	s.print("First fraction", f)
	s.print("Second fraction", g)

	ops := []operation{
		{"Sum", f.Add},
		{"Difference", f.Sub},
		{"Product", f.Mul},
		{"Quotient", f.Quo},
	}
	for _, o := range ops {
		r, err := o.op(g)
		if err != nil {
			s.log.Warn("operation.failed", "op", o.name, "err", err)
			return err
		}
		s.log.Debug("operation.completed", "op", o.name, "result", r.String())
		s.print(o.name, r)
	}
	return nil
}

func (s *Session) readInt(what string) (int64, error) {
	fmt.Fprintf(s.out, "Enter the %s:\n", what) //nolint:errcheck

	line, err := s.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return 0, fmt.Errorf("reading %s: %w", what, err)
	}
	n, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", what, err)
	}
	s.log.Debug("fraction.read", "field", what, "value", n)
	return n, nil
}

func (s *Session) print(label string, f fraction.Fraction) {
	fmt.Fprintf(s.out, "%s: %v\nAs a number: %s\n", label, f, s.format(f)) //nolint:errcheck
}

// format renders the decimal value of f.
// A negative precision gives the shortest float64 representation.
func (s *Session) format(f fraction.Fraction) string {
	if s.precision >= 0 {
		d, err := f.Decimal(s.precision)
		if err == nil {
			return d.String()
		}
		s.log.Debug("decimal.fallback", "value", f.String(), "err", err)
	}
	return strconv.FormatFloat(f.DecimalValue(), 'g', -1, 64)
}

// report prints err the way the console shows failures: invalid arguments
// print their message only, anything else is prefixed with "Error: ".
func (s *Session) report(err error) {
	if errors.Is(err, fraction.ErrInvalidArgument) {
		fmt.Fprintln(s.out, err.Error()) //nolint:errcheck
		return
	}
	fmt.Fprintln(s.out, "Error: "+err.Error()) //nolint:errcheck
}
