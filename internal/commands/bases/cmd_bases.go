package bases

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bokysan/multibase"
	"github.com/bokysan/multibase/internal/logging"
	"github.com/k0kubun/go-ansi"
	"github.com/pkg/errors"
)

const (
	Bold     = "\x1b[1m"
	Reset    = "\x1b[0m"
	DarkGray = "\x1b[90m"
	White    = "\x1b[97m"
)

// Command lists the registered bases
type Command struct {
	Alphabet bool `yaml:"alphabet" short:"a" long:"alphabet" description:"Show the symbols of each base"`
	NoColor  bool `yaml:"noColor"            long:"no-color" description:"Print a plain table"`

	out io.Writer
}

func NewCommand() *Command {
	return &Command{
		out: ansi.NewAnsiStdout(),
	}
}

func (c *Command) String() string {
	return "Supported bases"
}

func (c *Command) Execute(args []string) error {
	logging.SetupLogging()

	header, row, name, reset := Bold+White, DarkGray, White, Reset
	if c.NoColor || logging.NoColor() {
		header, row, name, reset = "", "", "", ""
	}

	if err := c.println(header, "CODE", "NAME", "KIND", "ALPHABET", reset); err != nil {
		return err
	}
	for _, b := range multibase.Bases() {
		code := strconv.QuoteRune(b.Code())
		if err := c.println(row, code, name+pad(b.Name(), 18)+row, b.Kind().String(), b.Alphabet(), reset); err != nil {
			return err
		}
	}
	return nil
}

// println writes one row of the table. The alphabet column is only shown on request.
func (c *Command) println(color, code, name, kind, alphabet, reset string) error {
	line := color + pad(code, 6) + " " + pad(name, 18) + " " + pad(kind, 12)
	if c.Alphabet {
		line += " " + alphabet
	}
	_, err := fmt.Fprintln(c.out, strings.TrimRight(line, " ")+reset)
	return errors.Wrap(err, "Could not write the output")
}

func pad(s string, width int) string {
	return fmt.Sprintf("%-*s", width, s)
}
