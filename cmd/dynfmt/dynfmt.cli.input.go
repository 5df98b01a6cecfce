package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// readInput reads content from a file or stdin
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == InputSourceStdin {
		return io.ReadAll(stdin)
	}

	return os.ReadFile(path)
}

// writeOutput writes content to a file or stdout
func writeOutput(path string, data []byte, stdout io.Writer) error {
	if path == FlagDefaultOutput {
		_, err := stdout.Write(data)
		return err
	}

	return os.WriteFile(path, data, FilePermissions)
}

// loadArguments decodes render arguments from an inline JSON string or a data
// file. The result is a map[string]any, a []any, or nil when neither is given.
func loadArguments(dataJSON, dataFilePath string) (any, error) {
	var args any

	switch {
	case dataFilePath != "":
		data, err := os.ReadFile(dataFilePath)
		if err != nil {
			return nil, err
		}
		ext := strings.ToLower(filepath.Ext(dataFilePath))
		if ext == DataExtYAML || ext == DataExtYML {
			if err := yaml.Unmarshal(data, &args); err != nil {
				return nil, err
			}
		} else if args, err = decodeJSON(data); err != nil {
			return nil, err
		}
	case dataJSON != "":
		var err error
		if args, err = decodeJSON([]byte(dataJSON)); err != nil {
			return nil, err
		}
	default:
		return nil, nil
	}

	switch args.(type) {
	case map[string]any, []any, nil:
		return args, nil
	}
	return nil, errors.New(ErrMsgDataShape)
}

// decodeJSON keeps integral numbers integral so they stay usable as
// widths, precisions and radix-formatted values.
func decodeJSON(data []byte) (any, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var value any
	if err := decoder.Decode(&value); err != nil {
		return nil, err
	}
	return normalizeNumbers(value), nil
}

func normalizeNumbers(value any) any {
	switch v := value.(type) {
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n
		}
		if f, err := v.Float64(); err == nil {
			return f
		}
		return v.String()
	case map[string]any:
		for key, item := range v {
			v[key] = normalizeNumbers(item)
		}
		return v
	case []any:
		for i, item := range v {
			v[i] = normalizeNumbers(item)
		}
		return v
	}
	return value
}
