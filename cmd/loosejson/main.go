package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/iancoleman/strcase"

	"github.com/jkelly/loosejson"
	"github.com/jkelly/loosejson/internal/cliconfig"
)

// CLI defines the command-line interface
var CLI struct {
	Input    string `help:"Path to input JSON file. If not specified, reads from stdin." short:"i" type:"path"`
	Output   string `help:"Path to output file. If not specified, writes to stdout." short:"o" type:"path"`
	Path     string `help:"Dot-separated path to extract, e.g. user.addresses.0.city." short:"p"`
	Fallback string `help:"Value printed when --path cannot be resolved."`
	Join     string `help:"Join the elements of a root-level array with the given separator." short:"j"`
	Keys     bool   `help:"Print the keys of a root-level object, one per line."`
	Values   bool   `help:"Print the values of a root-level object, one per line."`
	Rename   string `help:"Rewrite object keys recursively." enum:"none,camel,snake,kebab" default:"none"`
	Compact  bool   `help:"Emit compact JSON instead of indented output." short:"c"`
	Config   string `help:"Path to YAML config file." type:"path"`
	Verbose  bool   `help:"Log offending payloads of decode failures at info level." short:"v"`
	Version  bool   `help:"Show version information."`
}

// Context holds the runtime context
type Context struct {
	Codec  *loosejson.Codec
	Config *cliconfig.Config
}

// Version information
const Version = "0.1.0"

var errNoInput = errors.New("no input provided: please specify a file with -i or pipe JSON data to stdin")

func main() {
	parser := kong.Must(&CLI,
		kong.Name("loosejson"),
		kong.Description("Query and reshape loosely-typed JSON data"),
		kong.UsageOnError(),
	)

	_, err := parser.Parse(os.Args[1:])
	if err != nil {
		os.Exit(1)
	}

	if CLI.Version {
		fmt.Printf("loosejson version %s\n", Version)
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", friendlyError(err))
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	codec := loosejson.NewCodec(logger)
	codec.LogPayloads = CLI.Verbose || cfg.Verbose

	if err := run(&Context{Codec: codec, Config: cfg}); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", friendlyError(err))
		fmt.Fprintf(os.Stderr, "\nFor help, run: loosejson --help\n")
		os.Exit(1)
	}
}

// loadConfig loads the YAML config named by --config, or the nearest
// config file found in the directory tree, or defaults.
func loadConfig() (*cliconfig.Config, error) {
	path := CLI.Config
	if path == "" {
		path = cliconfig.FindConfigFile()
	}
	if path == "" {
		return cliconfig.NewConfig(), nil
	}
	return cliconfig.LoadConfig(path)
}

// run executes the main program logic
func run(ctx *Context) error {
	text, err := readInput()
	if err != nil {
		return err
	}

	value, err := ctx.Codec.DecodeValue(text)
	if err != nil {
		return err
	}

	rename := CLI.Rename
	if rename == cliconfig.RenameNone && ctx.Config.Rename != "" {
		rename = ctx.Config.Rename
	}
	if rename != cliconfig.RenameNone {
		value = renameKeys(value, rename)
	}

	fallback := CLI.Fallback
	if fallback == "" {
		fallback = ctx.Config.Fallback
	}

	switch {
	case CLI.Path != "":
		resolved, ok := resolvePath(value, CLI.Path)
		if !ok {
			return writeOutput(fallback)
		}
		return writeOutput(renderValue(resolved, ctx))
	case CLI.Join != "":
		arr, ok := value.AsArray()
		if !ok {
			return fmt.Errorf("--join requires a JSON array at the root, got %s", value.Kind())
		}
		return writeOutput(arr.Join(CLI.Join))
	case CLI.Keys:
		obj, ok := value.AsObject()
		if !ok {
			return fmt.Errorf("--keys requires a JSON object at the root, got %s", value.Kind())
		}
		return writeOutput(obj.Keys().Join("\n"))
	case CLI.Values:
		obj, ok := value.AsObject()
		if !ok {
			return fmt.Errorf("--values requires a JSON object at the root, got %s", value.Kind())
		}
		return writeOutput(obj.Values().Join("\n"))
	default:
		return writeOutput(renderValue(value, ctx))
	}
}

// readInput reads JSON text from file or stdin
func readInput() (string, error) {
	if CLI.Input != "" {
		data, err := os.ReadFile(CLI.Input)
		if err != nil {
			if os.IsNotExist(err) {
				return "", fmt.Errorf("file '%s' not found", CLI.Input)
			}
			return "", fmt.Errorf("failed to read file '%s': %w", CLI.Input, err)
		}
		return string(data), nil
	}

	stdinInfo, err := os.Stdin.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to access stdin: %w", err)
	}
	if (stdinInfo.Mode() & os.ModeCharDevice) != 0 {
		return "", errNoInput
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read from stdin: %w", err)
	}
	return string(data), nil
}

// writeOutput writes text to file or stdout
func writeOutput(text string) error {
	if CLI.Output != "" {
		if err := os.WriteFile(CLI.Output, []byte(text+"\n"), 0644); err != nil {
			return fmt.Errorf("failed to write to file '%s': %w", CLI.Output, err)
		}
		return nil
	}
	_, err := fmt.Println(text)
	return err
}

// renderValue renders scalars in their native string form and containers
// as JSON, indented unless --compact is set.
func renderValue(v loosejson.Value, ctx *Context) string {
	switch v.Kind() {
	case loosejson.KindArray, loosejson.KindObject:
		compact := ctx.Codec.Serialize(v)
		if CLI.Compact || ctx.Config.Compact {
			return compact
		}
		var buf bytes.Buffer
		if err := json.Indent(&buf, []byte(compact), "", "  "); err != nil {
			return compact
		}
		return buf.String()
	default:
		return v.String()
	}
}

// resolvePath walks a dot-separated path: object segments match keys,
// array segments match decimal indices.
func resolvePath(v loosejson.Value, path string) (loosejson.Value, bool) {
	current := v
	for _, seg := range strings.Split(path, ".") {
		if obj, ok := current.AsObject(); ok {
			if !obj.Has(seg) {
				return loosejson.Value{}, false
			}
			current = obj.Get(seg)
			continue
		}
		if arr, ok := current.AsArray(); ok {
			i, err := strconv.Atoi(seg)
			if err != nil {
				return loosejson.Value{}, false
			}
			elem, err := arr.Get(i)
			if err != nil {
				return loosejson.Value{}, false
			}
			current = elem
			continue
		}
		return loosejson.Value{}, false
	}
	return current, true
}

// renameKeys rewrites every object key recursively using the given style.
func renameKeys(v loosejson.Value, style string) loosejson.Value {
	if obj, ok := v.AsObject(); ok {
		out := loosejson.NewObject()
		obj.Range(func(key string, val loosejson.Value) bool {
			out.Put(renameKey(key, style), renameKeys(val, style))
			return true
		})
		return loosejson.ValueOf(out)
	}
	if arr, ok := v.AsArray(); ok {
		out := loosejson.NewArray()
		arr.Range(func(_ int, val loosejson.Value) bool {
			out.Add(renameKeys(val, style))
			return true
		})
		return loosejson.ValueOf(out)
	}
	return v
}

func renameKey(key, style string) string {
	switch style {
	case cliconfig.RenameCamel:
		return strcase.ToLowerCamel(key)
	case cliconfig.RenameSnake:
		return strcase.ToSnake(key)
	case cliconfig.RenameKebab:
		return strcase.ToKebab(key)
	default:
		return key
	}
}

// friendlyError maps errors to user-facing messages
func friendlyError(err error) string {
	var libErr *loosejson.Error
	if errors.As(err, &libErr) {
		switch libErr.Type {
		case loosejson.ErrorTypeDecode:
			return fmt.Sprintf("JSON decode error: %s", libErr.Message)
		case loosejson.ErrorTypeIndex:
			return fmt.Sprintf("Index error: %s", libErr.Message)
		default:
			return fmt.Sprintf("Error: %s", libErr.Message)
		}
	}
	if errors.Is(err, loosejson.ErrEmptyInput) {
		return "Error: The input is empty. Please provide valid JSON data."
	}
	if errors.Is(err, errNoInput) {
		return "Error: No input provided. Please specify a file with -i or pipe JSON data to stdin."
	}
	return fmt.Sprintf("Error: %v", err)
}
