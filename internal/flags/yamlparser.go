package flags

import (
	"fmt"
	"io"
	"os"
	"path"
	"reflect"
	"strings"
	"unsafe"

	"github.com/goccy/go-yaml"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// YamlParser is an argument parser for flags package but takes a YAML file instead of a standard INI.
//
// Every top-level key of a YAML document is matched to a command (e.g. `serve:`) or an option group
// (e.g. `general:`) of the parser and the value is unmarshalled straight into the structure behind it.
type YamlParser struct {
	parser *flags.Parser
}

// NewYamlParser creates a new yaml parser for a given flags.Parser.
func NewYamlParser(p *flags.Parser) *YamlParser {
	return &YamlParser{
		parser: p,
	}
}

// ParseFile parses flags from an yaml formatted file. The returned errors
// can be of the type flags.Error.
func (y *YamlParser) ParseFile(filename string) error {
	body, err := os.Open(filename)
	if err != nil {
		return errors.WithStack(err)
	}

	defer func() {
		if err := body.Close(); err != nil {
			log.Errorf("Could not close %s: %v", filename, err)
		}
	}()

	// Files can reference other files relative to their own location
	return y.Parse(body, yaml.ReferenceDirs(path.Dir(filename)), yaml.RecursiveDir(true))
}

// Parse takes an input stream and parses YAML documents one after another, using the provided
// decode options. This allows you to have multiple individual YAML documents within one physical
// file / input stream, all separated by triple dashes (`---`).
func (y *YamlParser) Parse(config io.Reader, opts ...yaml.DecodeOption) error {
	decoder := yaml.NewDecoder(config, opts...)

	for i := 1; ; i++ {
		obj := make(map[string]interface{})
		err := decoder.Decode(&obj)
		if err == io.EOF {
			return nil
		} else if err != nil {
			return errors.Wrapf(err, "Could not decode document at position %v", i)
		}

		if err = y.parseDocument(obj); err != nil {
			return errors.WithStack(err)
		}
	}
}

// parseDocument matches every top-level key to a command or a group and fills in its data
func (y *YamlParser) parseDocument(obj map[string]interface{}) error {
	for name, val := range obj {
		data, err := y.find(name)
		if err != nil {
			return err
		}

		if conv, err := yaml.Marshal(val); err != nil {
			return errors.WithStack(err)
		} else if err := yaml.Unmarshal(conv, data.Interface()); err != nil {
			return errors.Wrapf(err, "Could not read section '%s'", name)
		}
	}
	return nil
}

// find returns the pointer to the data structure registered for the command or group with the
// given name.
func (y *YamlParser) find(name string) (reflect.Value, error) {
	if command := y.parser.Find(name); command != nil {
		return groupData(command.Group), nil
	}
	for _, group := range y.parser.Groups() {
		if strings.EqualFold(group.ShortDescription, name) {
			return groupData(group), nil
		}
	}
	return reflect.Value{}, errors.WithStack(&flags.Error{
		Type:    flags.ErrUnknownGroup,
		Message: fmt.Sprintf("could not find option command or group '%s'", name),
	})
}

// groupData digs out the pointer the group was created with. The flags library does not expose it,
// so it has to be read from the private field.
func groupData(group *flags.Group) reflect.Value {
	dataField := reflect.Indirect(reflect.ValueOf(group)).FieldByName("data")
	dataField = reflect.NewAt(dataField.Type(), unsafe.Pointer(dataField.UnsafeAddr())).Elem()
	return dataField.Elem()
}
