package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	flag "github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/fwojciec/docdiff"
	"github.com/fwojciec/docdiff/bubbletea"
	"github.com/fwojciec/docdiff/godiff"
	"github.com/fwojciec/docdiff/goldmark"
	"github.com/fwojciec/docdiff/html"
	"github.com/fwojciec/docdiff/lipgloss"
)

// App encapsulates the application logic for testing.
type App struct {
	OldPath string
	NewPath string

	ExtractorFor func(path string) docdiff.Extractor
	Comparer     *docdiff.Comparer
	Viewer       docdiff.Viewer
	Renderer     docdiff.Renderer
	Out          io.Writer

	EmitHTML    bool
	SummaryOnly bool
}

// Run extracts both documents, compares them, and hands the result to the
// selected output: TUI by default, HTML report or summary line when asked.
func (a *App) Run(ctx context.Context) error {
	var oldBlocks, newBlocks []docdiff.Block

	var g errgroup.Group
	g.Go(func() error {
		var err error
		oldBlocks, err = a.extract(a.OldPath)
		return err
	})
	g.Go(func() error {
		var err error
		newBlocks, err = a.extract(a.NewPath)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	result := a.Comparer.Compare(oldBlocks, newBlocks)

	switch {
	case a.SummaryOnly:
		s := result.Summary
		_, err := fmt.Fprintf(a.Out, "%d additions, %d deletions, %d changes\n",
			s.Additions, s.Deletions, s.Changes())
		return err
	case a.EmitHTML:
		return a.Renderer.Render(a.Out, result)
	default:
		return a.Viewer.View(ctx, result)
	}
}

func (a *App) extract(path string) ([]docdiff.Block, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	blocks, err := a.ExtractorFor(path).Extract(source)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", path, err)
	}
	return blocks, nil
}

// DefaultExtractorFor picks an extractor by file extension: Markdown for
// .md/.markdown, HTML for everything else.
func DefaultExtractorFor(path string) docdiff.Extractor {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return goldmark.NewExtractor()
	default:
		return html.NewExtractor()
	}
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	flags := flag.NewFlagSet("docdiff", flag.ContinueOnError)
	emitHTML := flags.Bool("html", false, "write a side-by-side HTML report to stdout instead of opening the TUI")
	summaryOnly := flags.Bool("summary", false, "print only the change counts")
	light := flags.Bool("light", false, "use the light terminal theme")
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: docdiff [flags] OLD NEW")
		flags.PrintDefaults()
	}
	if err := flags.Parse(os.Args[1:]); err != nil {
		return err
	}
	if flags.NArg() != 2 {
		flags.Usage()
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	theme := lipgloss.DefaultTheme()
	if *light {
		theme = lipgloss.LightTheme()
	}

	app := &App{
		OldPath:      flags.Arg(0),
		NewPath:      flags.Arg(1),
		ExtractorFor: DefaultExtractorFor,
		Comparer:     docdiff.NewComparer(godiff.NewDiffer(), docdiff.StructComparer{}),
		Viewer:       bubbletea.NewViewer(bubbletea.WithViewerTheme(theme)),
		Renderer:     html.NewRenderer(),
		Out:          os.Stdout,
		EmitHTML:     *emitHTML,
		SummaryOnly:  *summaryOnly,
	}
	return app.Run(ctx)
}
