// Package cli holds the command logic for cmd/dekoda, separated from flag
// parsing so it can be exercised in tests without spawning a process.
package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	dekoda "github.com/reoring/dekoda"
	"github.com/reoring/dekoda/dsl"
	yamlsrc "github.com/reoring/dekoda/source/yaml"
)

// Options mirrors the command-line surface of cmd/dekoda.
type Options struct {
	// Path is a dot-separated property path walked before decoding;
	// empty means decode the document root.
	Path string
	// Type selects the leaf decoder: string, number, int or bool.
	Type string
	// YAML switches the parser driver from JSON to YAML.
	YAML bool
}

// ErrDecodeFailed wraps the failure message of an Outcome so main can map it
// to a non-zero exit code while still printing the plain message.
type ErrDecodeFailed struct{ Message string }

func (e ErrDecodeFailed) Error() string { return e.Message }

// Run reads one document from in, parses it, navigates the configured path and
// decodes the configured leaf type, writing the rendered payload to out.
// Decode failures return ErrDecodeFailed carrying the outcome's message.
func Run(opts Options, in io.Reader, out io.Writer) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	render, err := rendererFor(opts.Type)
	if err != nil {
		return err
	}

	parsed := parse(data, opts.YAML)
	located := dekoda.RunThrough(dekoda.At(splitPath(opts.Path)...), parsed)
	rendered := dekoda.RunThrough(render, located)
	return dekoda.Fold(rendered,
		func(s string) error {
			_, werr := fmt.Fprintln(out, s)
			return werr
		},
		func(msg string) error { return ErrDecodeFailed{Message: msg} },
	)
}

func parse(data []byte, useYAML bool) dekoda.Outcome[dekoda.Value] {
	if useYAML {
		return dekoda.FromOptional(yamlsrc.Parse(data))
	}
	return dekoda.ParseBytes(data)
}

// rendererFor picks the leaf decoder for the requested type and post-maps its
// payload to the printed representation.
func rendererFor(typeName string) (dekoda.Decoder[string], error) {
	switch typeName {
	case "string":
		return dsl.String(), nil
	case "number":
		return dekoda.MapResult(dsl.Number(), func(n float64) string {
			return strconv.FormatFloat(n, 'g', -1, 64)
		}), nil
	case "int":
		return dekoda.MapResult(dsl.Int(), strconv.Itoa), nil
	case "bool":
		return dekoda.MapResult(dsl.Bool(), strconv.FormatBool), nil
	default:
		return nil, fmt.Errorf("unknown type %q (want string, number, int or bool)", typeName)
	}
}

func splitPath(path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, ".")
}
