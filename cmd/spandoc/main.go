// Command spandoc converts WordprocessingML documents to styled text and
// prints the result.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/benjaminschreck/go-spandoc/pkg/spandoc"
	"github.com/benjaminschreck/go-spandoc/pkg/spandoc/render"
	"github.com/benjaminschreck/go-spandoc/pkg/spandoc/rich"
)

const version = "0.1.0"

// CLI defines the command-line interface for spandoc.
type CLI struct {
	// Global flags
	Strict   bool   `help:"Abort on malformed run properties instead of skipping them"`
	LogLevel string `name:"log-level" help:"Log level (debug, info, warn, error, off); defaults to SPANDOC_LOG_LEVEL"`

	Render  RenderCmd  `cmd:"" help:"Print a document as plain text, ANSI or HTML"`
	Spans   SpansCmd   `cmd:"" help:"List the style spans of a document"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// runContext is bound into every command's Run method.
type runContext struct {
	cli    *CLI
	stdin  io.Reader
	stdout io.Writer
}

// importFile imports path, or standard input when path is "-".
func (rc *runContext) importFile(path string) (*rich.Buffer, error) {
	config := spandoc.ConfigFromEnvironment()
	if rc.cli.Strict {
		config.StrictAttributes = true
	}
	if rc.cli.LogLevel != "" {
		config.LogLevel = rc.cli.LogLevel
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	spandoc.SetGlobalConfig(config)

	im, err := spandoc.NewImporter(config)
	if err != nil {
		return nil, err
	}
	if path == "-" {
		return im.ImportReader(rc.stdin)
	}
	return im.ImportFile(path)
}

// RenderCmd prints a document.
type RenderCmd struct {
	File   string `arg:"" help:"document.xml, .docx or .xz file; - reads standard input"`
	Format string `short:"f" help:"Output format (plain, ansi, html)" enum:"plain,ansi,html" default:"plain"`
}

func (c *RenderCmd) Run(rc *runContext) error {
	format, err := render.ParseFormat(c.Format)
	if err != nil {
		return err
	}
	buf, err := rc.importFile(c.File)
	if err != nil {
		return err
	}
	return render.Render(rc.stdout, buf, format)
}

// SpansCmd lists style spans.
type SpansCmd struct {
	File string `arg:"" help:"document.xml, .docx or .xz file; - reads standard input"`
	JSON bool   `name:"json" help:"Print spans as JSON"`
}

func (c *SpansCmd) Run(rc *runContext) error {
	buf, err := rc.importFile(c.File)
	if err != nil {
		return err
	}
	records := render.SpanRecords(buf)

	if c.JSON {
		enc := json.NewEncoder(rc.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	for _, r := range records {
		kind := r.Kind
		if r.Value != "" {
			kind += "=" + r.Value
		}
		if _, err := fmt.Fprintf(rc.stdout, "[%d,%d)\t%s\t%q\n", r.Start, r.End, kind, r.Text); err != nil {
			return err
		}
	}
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run(rc *runContext) error {
	_, err := fmt.Fprintf(rc.stdout, "spandoc version %s\n", version)
	return err
}

func newParser(cli *CLI, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("spandoc"),
		kong.Description("Convert WordprocessingML documents to styled text"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	}, options...)
	return kong.New(cli, options...)
}

// run parses args and executes the selected command.
func run(args []string, stdin io.Reader, stdout io.Writer) error {
	var cli CLI
	parser, err := newParser(&cli)
	if err != nil {
		return err
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	return ctx.Run(&runContext{cli: &cli, stdin: stdin, stdout: stdout})
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "spandoc: %v\n", err)
		os.Exit(1)
	}
}
