package encode

import (
	"fmt"
	"io"
	"os"

	"github.com/bokysan/multibase"
	"github.com/bokysan/multibase/internal/commands"
	"github.com/bokysan/multibase/internal/logging"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Command encodes data into a multibase string
type Command struct {
	Base      string `yaml:"base"      short:"b" long:"base"       env:"MULTIBASE_BASE" description:"Base to encode with, by name (e.g. 'base58btc') or by code (e.g. 'z')" default:"base58btc"`
	Input     string `yaml:"input"     short:"i" long:"input"                           description:"Read the data from this file ('-' for stdin). If not set, arguments are encoded one by one, or stdin if there are none."`
	NoNewline bool   `yaml:"noNewline" short:"n" long:"no-newline"                      description:"Do not print the trailing newline"`

	in  io.Reader
	out io.Writer
}

func NewCommand() *Command {
	return &Command{
		Base: multibase.Base58Btc.Name(),
		in:   os.Stdin,
		out:  os.Stdout,
	}
}

func (c *Command) String() string {
	return "Encode data"
}

func (c *Command) Execute(args []string) error {
	logging.SetupLogging()

	base, err := multibase.Lookup(c.Base)
	if err != nil {
		return errors.WithStack(err)
	}

	if c.Input == "" && len(args) > 0 {
		for _, arg := range args {
			if err := c.write(base, []byte(arg)); err != nil {
				return err
			}
		}
		return nil
	}

	data, err := commands.ReadInput(c.in, c.Input)
	if err != nil {
		return err
	}
	return c.write(base, data)
}

func (c *Command) write(base multibase.Base, data []byte) error {
	log.Debugf("Encoding %d bytes with %v", len(data), base)

	eol := "\n"
	if c.NoNewline {
		eol = ""
	}
	if _, err := fmt.Fprint(c.out, multibase.Encode(base, data), eol); err != nil {
		return errors.Wrap(err, "Could not write the output")
	}
	return nil
}
