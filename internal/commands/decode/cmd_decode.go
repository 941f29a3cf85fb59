package decode

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/bokysan/multibase"
	"github.com/bokysan/multibase/internal/commands"
	"github.com/bokysan/multibase/internal/logging"
	"github.com/davecgh/go-spew/spew"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	FormatRaw  = "raw"
	FormatHex  = "hex"
	FormatDump = "dump"
)

// Command decodes multibase strings. Every argument (or every line of the input) is decoded on its
// own; inputs which fail do not stop the others.
type Command struct {
	Input  string `yaml:"input"  short:"i" long:"input"  description:"Read the strings from this file ('-' for stdin), one per line. If not set, arguments are decoded, or stdin if there are none."`
	Format string `yaml:"format" short:"o" long:"output" description:"Output format" choice:"raw" choice:"hex" choice:"dump" default:"raw"`

	in  io.Reader
	out io.Writer
}

func NewCommand() *Command {
	return &Command{
		Format: FormatRaw,
		in:     os.Stdin,
		out:    os.Stdout,
	}
}

func (c *Command) String() string {
	return "Decode data"
}

func (c *Command) Execute(args []string) error {
	logging.SetupLogging()

	inputs := args
	if c.Input != "" || len(args) == 0 {
		lines, err := commands.ReadLines(c.in, c.Input)
		if err != nil {
			return err
		}
		inputs = lines
	}

	var errs error
	for i, input := range inputs {
		base, data, err := multibase.Decode(input)
		if err != nil {
			errs = multierror.Append(errs, errors.Wrapf(err, "Could not decode input #%d", i+1))
			continue
		}

		log.Debugf("Input #%d is %v, %d bytes", i+1, base, len(data))
		if log.IsLevelEnabled(log.TraceLevel) {
			log.Tracef("Decoded input #%d:\n%s", i+1, spew.Sdump(data))
		}

		if err := c.write(data); err != nil {
			return multierror.Append(errs, err)
		}
	}

	return errs
}

func (c *Command) write(data []byte) error {
	var err error
	switch c.Format {
	case FormatHex:
		_, err = fmt.Fprintln(c.out, hex.EncodeToString(data))
	case FormatDump:
		spew.Fdump(c.out, data)
	default:
		_, err = c.out.Write(data)
	}
	return errors.Wrap(err, "Could not write the output")
}
