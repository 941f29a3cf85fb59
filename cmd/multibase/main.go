package main

import (
	"fmt"
	"os"
	"path"

	"github.com/bokysan/multibase/internal/args"
	"github.com/bokysan/multibase/internal/commands/bases"
	"github.com/bokysan/multibase/internal/commands/decode"
	"github.com/bokysan/multibase/internal/commands/encode"
	"github.com/bokysan/multibase/internal/commands/serve"
	"github.com/bokysan/multibase/internal/commands/version"
	mbFlags "github.com/bokysan/multibase/internal/flags"
	"github.com/bokysan/multibase/internal/util"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

const (
	// ErrConfigFileDoesNotExist is raised when configuration file cannot be found
	ErrConfigFileDoesNotExist = flags.ErrInvalidTag + 1
)

// Multibase is the main executable
type Multibase struct {
	parser *flags.Parser
}

// NewMultibase will create a new instance of Multibase and initialize the parser
func NewMultibase() *Multibase {
	executablePath := path.Base(os.Args[0])

	mb := &Multibase{
		parser: flags.NewNamedParser(executablePath, flags.HelpFlag|flags.PrintErrors),
	}

	mb.setupGeneral()
	mb.addCommand("version", "Print the version", "Print the application version and exit", version.NewCommand())
	mb.addCommand("encode", "Encode data", "Encode the arguments, a file or stdin into a multibase string", encode.NewCommand())
	mb.addCommand("decode", "Decode data", "Decode multibase strings from the arguments, a file or stdin", decode.NewCommand())
	mb.addCommand("bases", "List bases", "List all supported bases with their codes", bases.NewCommand())
	mb.addCommand("serve", "Run the HTTP API", "Run an HTTP server encoding and decoding request bodies", serve.NewCommand())

	return mb
}

// setupGeneral will configure general options
func (mb *Multibase) setupGeneral() {
	if _, err := mb.parser.AddGroup("General", "General options", &args.General); err != nil {
		util.MustErrorNilOrExit(errors.WithStack(err))
	}
}

// addCommand registers a sub-command with the parser
func (mb *Multibase) addCommand(name, short, long string, cmd interface{}) {
	_, err := mb.parser.AddCommand(name, short, long, cmd)
	util.MustErrorNilOrExit(err)
}

// main starts multibase and reads the configuration file
func main() {
	multibase := NewMultibase()
	args.General.ConfigurationFile = func(file string) error {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			util.MustErrorNilOrExit(&flags.Error{
				Type:    ErrConfigFileDoesNotExist,
				Message: fmt.Sprintf("Configuration file %s does not exist.", file),
			})
		}

		args.General.ConfigurationFilePath = file
		return mbFlags.NewYamlParser(multibase.parser).ParseFile(file)
	}

	_, err := multibase.parser.Parse()
	util.MustErrorNilOrExit(err)
}
