package commands

import (
	"bufio"
	"io"
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// MaxLineLength is the longest line ReadLines accepts
const MaxLineLength = 16 * 1024 * 1024

// ReadInput reads the whole input: the given file, or `in` if file is empty or `-`
func ReadInput(in io.Reader, file string) ([]byte, error) {
	if file == "" || file == "-" {
		data, err := ioutil.ReadAll(in)
		return data, errors.Wrap(err, "Could not read the input")
	}

	data, err := ioutil.ReadFile(file)
	if err != nil {
		return nil, errors.Wrapf(err, "Could not read %v", file)
	}
	log.Debugf("Read %d bytes from %v", len(data), file)
	return data, nil
}

// ReadLines returns non-empty lines of the input: the given file, or `in` if file is empty or `-`.
// Line endings (`\n` or `\r\n`) are removed, any other whitespace is kept.
func ReadLines(in io.Reader, file string) ([]string, error) {
	if file != "" && file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, errors.Wrapf(err, "Could not open %v", file)
		}
		defer func() {
			if err := f.Close(); err != nil {
				log.Errorf("Could not close %s: %v", file, err)
			}
		}()
		in = f
	}

	lines := make([]string, 0)
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 64*1024), MaxLineLength)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, errors.Wrap(scanner.Err(), "Could not read the input")
}
