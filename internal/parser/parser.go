package parser

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mcncl/json2types/internal/errors"
	"github.com/mcncl/json2types/internal/models"
)

// DefaultMaxDepth bounds the nesting of arrays and objects accepted by Parse.
const DefaultMaxDepth = 512

// Options tune the parser.
type Options struct {
	// MaxDepth is the deepest array/object nesting accepted. Zero means DefaultMaxDepth.
	MaxDepth int
}

func (o Options) maxDepth() int {
	if o.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return o.MaxDepth
}

// Parse converts JSON data from an io.Reader into an IntermediateRepresentation.
// Object members keep their source order.
func Parse(reader io.Reader) (models.IntermediateRepresentation, error) {
	return ParseWithOptions(reader, Options{})
}

// ParseWithOptions is Parse with explicit options.
func ParseWithOptions(reader io.Reader, opts Options) (models.IntermediateRepresentation, error) {
	decoder := json.NewDecoder(reader)
	decoder.UseNumber()

	tok, err := decoder.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return models.IntermediateRepresentation{}, errors.NewParsingError("input is empty or contains only whitespace", errors.ErrEmptyInput)
		}
		return models.IntermediateRepresentation{}, decodeError(err)
	}

	d := &tokenReader{dec: decoder, maxDepth: opts.maxDepth()}
	root, err := d.value(tok, 0)
	if err != nil {
		return models.IntermediateRepresentation{}, err
	}

	// Anything but EOF after the first value is either a second value or garbage.
	if _, err := decoder.Token(); err == nil {
		return models.IntermediateRepresentation{}, errors.NewParsingError("multiple JSON values found at the root", errors.ErrMultipleJSON)
	} else if !errors.Is(err, io.EOF) {
		return models.IntermediateRepresentation{}, errors.NewParsingError("invalid trailing data after first JSON value", errors.Wrap(errors.ErrInvalidJSON, err.Error()))
	}

	return models.IntermediateRepresentation{
		Root:        root,
		RootIsArray: root.Kind() == models.KindArray,
	}, nil
}

type tokenReader struct {
	dec      *json.Decoder
	maxDepth int
}

// value builds a models.Value starting at tok, reading further tokens for
// arrays and objects.
func (d *tokenReader) value(tok json.Token, depth int) (models.Value, error) {
	switch t := tok.(type) {
	case nil:
		return models.Null(), nil
	case bool:
		return models.Bool(t), nil
	case json.Number:
		return models.Number(t), nil
	case string:
		return models.String(t), nil
	case json.Delim:
		if depth >= d.maxDepth {
			return models.Value{}, errors.NewParsingError(
				fmt.Sprintf("nesting exceeds the maximum depth of %d at offset %d", d.maxDepth, d.dec.InputOffset()),
				errors.ErrTooDeep,
			)
		}
		switch t {
		case '{':
			return d.object(depth + 1)
		case '[':
			return d.array(depth + 1)
		}
	}
	return models.Value{}, errors.NewParsingError(
		fmt.Sprintf("unexpected token %v at offset %d", tok, d.dec.InputOffset()),
		errors.ErrInvalidJSON,
	)
}

func (d *tokenReader) object(depth int) (models.Value, error) {
	var members []models.Member
	for d.dec.More() {
		keyTok, err := d.next()
		if err != nil {
			return models.Value{}, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return models.Value{}, errors.NewParsingError(
				fmt.Sprintf("object key must be a string at offset %d", d.dec.InputOffset()),
				errors.ErrInvalidJSON,
			)
		}
		tok, err := d.next()
		if err != nil {
			return models.Value{}, err
		}
		val, err := d.value(tok, depth)
		if err != nil {
			return models.Value{}, err
		}
		members = append(members, models.Member{Key: key, Value: val})
	}
	if err := d.closing('}'); err != nil {
		return models.Value{}, err
	}
	return models.Object(members...), nil
}

func (d *tokenReader) array(depth int) (models.Value, error) {
	var items []models.Value
	for d.dec.More() {
		tok, err := d.next()
		if err != nil {
			return models.Value{}, err
		}
		val, err := d.value(tok, depth)
		if err != nil {
			return models.Value{}, err
		}
		items = append(items, val)
	}
	if err := d.closing(']'); err != nil {
		return models.Value{}, err
	}
	return models.Array(items...), nil
}

func (d *tokenReader) closing(delim json.Delim) error {
	tok, err := d.next()
	if err != nil {
		return err
	}
	if tok != delim {
		return errors.NewParsingError(
			fmt.Sprintf("expected %q at offset %d", delim, d.dec.InputOffset()),
			errors.ErrInvalidJSON,
		)
	}
	return nil
}

// next reads a token inside a container, where EOF means truncated input.
func (d *tokenReader) next() (json.Token, error) {
	tok, err := d.dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.NewParsingError("unexpected end of JSON input", errors.ErrInvalidJSON)
		}
		return nil, decodeError(err)
	}
	return tok, nil
}

func decodeError(err error) error {
	var syntaxError *json.SyntaxError
	if errors.As(err, &syntaxError) {
		return errors.NewParsingError(
			fmt.Sprintf("JSON syntax error at offset %d", syntaxError.Offset),
			errors.ErrInvalidJSON,
		)
	}
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return errors.NewParsingError("unexpected end of JSON input", errors.ErrInvalidJSON)
	}
	return errors.NewParsingError("failed to decode JSON", err)
}

// ParseString parses JSON from a string
func ParseString(jsonString string) (models.IntermediateRepresentation, error) {
	return ParseStringWithOptions(jsonString, Options{})
}

// ParseStringWithOptions parses JSON from a string with explicit options.
func ParseStringWithOptions(jsonString string, opts Options) (models.IntermediateRepresentation, error) {
	if strings.TrimSpace(jsonString) == "" {
		return models.IntermediateRepresentation{}, errors.NewInputError("input string is empty", errors.ErrEmptyInput)
	}
	return ParseWithOptions(strings.NewReader(jsonString), opts)
}

// ParseFile parses JSON from a file path
func ParseFile(filePath string) (models.IntermediateRepresentation, error) {
	return ParseFileWithOptions(filePath, Options{})
}

// ParseFileWithOptions parses JSON from a file path with explicit options.
func ParseFileWithOptions(filePath string, opts Options) (models.IntermediateRepresentation, error) {
	if strings.TrimSpace(filePath) == "" {
		return models.IntermediateRepresentation{}, errors.NewInputError("file path is empty", errors.ErrInvalidFilePath)
	}
	file, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return models.IntermediateRepresentation{}, errors.NewInputError(
				fmt.Sprintf("file '%s' not found", filePath),
				errors.ErrFileNotFound,
			)
		}
		return models.IntermediateRepresentation{}, errors.NewInputError(
			fmt.Sprintf("failed to open file '%s'", filePath),
			err,
		)
	}
	defer func() {
		_ = file.Close()
	}()

	stat, err := file.Stat()
	if err != nil {
		return models.IntermediateRepresentation{}, errors.NewInputError(
			fmt.Sprintf("failed to get file stats for '%s'", filePath),
			err,
		)
	}
	if stat.Size() == 0 {
		return models.IntermediateRepresentation{}, errors.NewInputError(
			fmt.Sprintf("input file '%s' is empty", filePath),
			errors.ErrFileEmpty,
		)
	}

	return ParseWithOptions(file, opts)
}
