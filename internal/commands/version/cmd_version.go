package version

import (
	"fmt"
	"io"

	"github.com/bokysan/multibase/internal/version"
	"github.com/k0kubun/go-ansi"
)

const (
	Bold           = "\x1b[1m"
	Reset          = "\x1b[0m"
	LightGray      = "\x1b[37m"
	DarkGray       = "\x1b[90m"
	White          = "\x1b[97m"
	BackgroundBlue = "\x1b[44m"
)

// Command prints the version details
type Command struct {
	out io.Writer
}

func NewCommand() *Command {
	return &Command{
		out: ansi.NewAnsiStdout(),
	}
}

func (i *Command) String() string {
	return "Version details"
}

//goland:noinspection GoUnhandledErrorResult
func (i *Command) Execute(args []string) error {
	PrintVersion(i.out)
	fmt.Fprintf(i.out, DarkGray+" Author      "+White+"%+v"+Reset+"\n", version.Author)
	if version.GitTag != "" {
		fmt.Fprintf(i.out, DarkGray+" Git tag     "+White+"%+v"+Reset+"\n", version.GitTag)
	}
	if version.GitBranch != "" {
		fmt.Fprintf(i.out, DarkGray+" Git branch  "+White+"%+v"+Reset+"\n", version.GitBranch)
	}
	if version.GitState != "" {
		fmt.Fprintf(i.out, DarkGray+" Git state   "+White+"%+v"+Reset+"\n", version.GitState)
	}
	if version.GoVersion != "" {
		fmt.Fprintf(i.out, DarkGray+" Go version  "+White+"%+v"+Reset+"\n", version.GoVersion)
	}
	return nil
}

//goland:noinspection GoUnhandledErrorResult
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, Bold+BackgroundBlue+
		LightGray+" %s "+White+"%s"+LightGray+" "+Reset+"\n"+
		DarkGray+" Built on    "+White+"%+v\n"+
		DarkGray+" Git version "+White+"%+v"+Reset+"\n",
		version.Banner(), version.AppVersion(), version.BuildDate, version.GitCommit)
}
