package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/mcncl/json2types/internal/config"
	"github.com/mcncl/json2types/internal/errors"
	"github.com/mcncl/json2types/internal/formatter"
	"github.com/mcncl/json2types/internal/generator"
	"github.com/mcncl/json2types/internal/infer"
	"github.com/mcncl/json2types/internal/lang"
	"github.com/mcncl/json2types/internal/logger"
	"github.com/mcncl/json2types/internal/models"
	"github.com/mcncl/json2types/internal/parser"
)

// CLI defines the command-line interface
var CLI struct {
	File          string `arg:"" optional:"" help:"Path to input JSON file. Same as --input." type:"path"`
	Input         string `help:"Path to input JSON file. If not specified, reads from stdin." short:"i" type:"path"`
	Output        string `help:"Path to output file. If not specified, writes to stdout." short:"o" type:"path"`
	Language      string `help:"Target language: go, rust, scala, java, typescript or python." short:"l"`
	ListLanguages bool   `help:"List supported target languages and exit."`
	Package       string `help:"Package clause for Go output." short:"p"`
	RootName      string `help:"Name for the root type (default AutoGenerated)." short:"r"`
	NoFormat      bool   `help:"Skip the gofmt pass over Go output."`
	MaxDepth      int    `help:"Maximum nesting depth accepted in the input (default 512)."`
	Config        string `help:"Path to a config file. Defaults to .json2types.yml in the current or a parent directory." short:"c" type:"path"`
	Debug         bool   `help:"Enable debug logging." short:"d"`
	Version       bool   `help:"Show version information." short:"v"`
	Interactive   bool   `help:"Run in interactive mode, allowing direct JSON input with Ctrl+D to process." short:"I"`
}

// Context holds the runtime context
type Context struct {
	Config *config.Config
	Logger *zap.Logger
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	app := kong.Must(&CLI,
		kong.Name("json2types"),
		kong.Description("Generate Go, Rust, Scala, Java, TypeScript or Python types from a JSON sample"),
		kong.UsageOnError(),
	)

	// No arguments and a terminal on stdin means interactive mode
	if len(os.Args) == 1 {
		CLI.Interactive = true
	}

	if _, err := app.Parse(os.Args[1:]); err != nil {
		app.FatalIfErrorf(err)
	}

	if CLI.Version {
		fmt.Printf("json2types version %s\n", Version)
		return
	}

	if CLI.ListLanguages {
		for _, name := range lang.Available() {
			fmt.Println(name)
		}
		return
	}

	cfg, err := config.LoadConfigWithCLI(CLI.Config, overrides())
	if err != nil {
		exitWithError(err)
	}

	log := logger.New(cfg.Dev.Debug)
	defer func() {
		_ = log.Sync()
	}()

	if err := run(&Context{Config: cfg, Logger: log}); err != nil {
		log.Debug("run failed", zap.Error(err))
		exitWithError(err)
	}
}

func exitWithError(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
	fmt.Fprintf(os.Stderr, "\nFor help, run: json2types --help\n")
	os.Exit(1)
}

// overrides collects the flags that take precedence over file and environment.
func overrides() config.Overrides {
	return config.Overrides{
		Language: CLI.Language,
		Package:  CLI.Package,
		RootName: CLI.RootName,
		NoFormat: CLI.NoFormat,
		MaxDepth: CLI.MaxDepth,
		Debug:    CLI.Debug,
	}
}

// run executes the main program logic
func run(ctx *Context) error {
	cfg := ctx.Config
	if cfg == nil {
		cfg = config.NewConfig()
	}
	log := ctx.Logger
	if log == nil {
		log = zap.NewNop()
	}

	// 1. Select the renderer
	renderer, err := cfg.Renderer()
	if err != nil {
		return err
	}

	// 2. Parse JSON input
	ir, err := parseInput(parser.Options{MaxDepth: cfg.Parser.MaxDepth})
	if err != nil {
		return err
	}

	// 3. Infer and render the records
	engine := infer.NewEngine(renderer,
		infer.WithRootName(cfg.RootName),
		infer.WithLogger(log),
	)
	gen := generator.NewGenerator(engine, generator.Options{
		Package:   cfg.Package,
		Separator: cfg.Output.Separator,
	}, log)
	code := gen.Generate(ir)

	// 4. Format the code if requested
	if cfg.Formatting.Enabled && formatter.Supports(renderer.Name()) {
		code = formatter.NewFormatter(log).FormatOrKeep(code)
	}

	// 5. Output the result
	return writeOutput(code, renderer.Name())
}

// inputPath returns the file named by the positional argument or --input.
func inputPath() (string, error) {
	if CLI.File != "" && CLI.Input != "" && CLI.File != CLI.Input {
		return "", errors.NewInputError("both a positional file and --input were given", errors.ErrInvalidFilePath)
	}
	if CLI.File != "" {
		return CLI.File, nil
	}
	return CLI.Input, nil
}

// parseInput reads JSON from file or stdin
func parseInput(opts parser.Options) (models.IntermediateRepresentation, error) {
	path, err := inputPath()
	if err != nil {
		return models.IntermediateRepresentation{}, err
	}
	if path != "" {
		return parser.ParseFileWithOptions(path, opts)
	}

	stdinInfo, err := os.Stdin.Stat()
	if err != nil {
		return models.IntermediateRepresentation{}, errors.NewInputError("failed to access stdin", err)
	}

	if (stdinInfo.Mode() & os.ModeCharDevice) != 0 {
		// Terminal is interactive (not piped)
		if CLI.Interactive {
			return readInteractiveInput(opts)
		}
		return models.IntermediateRepresentation{}, errors.NewInputError("no input provided", errors.ErrNoInput)
	}

	jsonData, err := io.ReadAll(os.Stdin)
	if err != nil {
		return models.IntermediateRepresentation{}, errors.NewInputError("failed to read from stdin", err)
	}

	if len(jsonData) == 0 {
		return models.IntermediateRepresentation{}, errors.NewInputError("empty input received from stdin", errors.ErrEmptyInput)
	}

	return parser.ParseStringWithOptions(string(jsonData), opts)
}

// writeOutput writes code to file or stdout
func writeOutput(code, language string) error {
	if CLI.Output != "" {
		err := os.WriteFile(CLI.Output, []byte(code), 0644)
		if err != nil {
			return errors.NewOutputError(fmt.Sprintf("failed to write to file '%s'", CLI.Output), err)
		}
		fmt.Fprintf(os.Stderr, "Generated %s code written to %s\n", language, CLI.Output)
		return nil
	}

	if strings.TrimSpace(code) == "" {
		return nil
	}
	_, err := fmt.Println(strings.TrimSpace(code))
	if err != nil {
		return errors.NewOutputError("failed to write to stdout", err)
	}
	return nil
}

// readInteractiveInput provides an interactive mode for users to paste JSON
// and signal completion with Ctrl+D (EOF)
func readInteractiveInput(opts parser.Options) (models.IntermediateRepresentation, error) {
	fmt.Fprintln(os.Stderr, "json2types Interactive Mode")
	fmt.Fprintln(os.Stderr, "Paste your JSON below and press Ctrl+D (or Ctrl+Z on Windows) when done:")

	reader := bufio.NewReader(os.Stdin)
	var jsonBuilder strings.Builder

	for {
		line, err := reader.ReadString('\n')
		jsonBuilder.WriteString(line)
		if err == io.EOF {
			break
		}
		if err != nil {
			return models.IntermediateRepresentation{}, errors.NewInputError("error reading input", err)
		}
	}

	jsonData := jsonBuilder.String()
	if strings.TrimSpace(jsonData) == "" {
		return models.IntermediateRepresentation{}, errors.NewInputError("empty input received", errors.ErrEmptyInput)
	}

	fmt.Fprintln(os.Stderr, "\nProcessing JSON...")
	return parser.ParseStringWithOptions(jsonData, opts)
}
