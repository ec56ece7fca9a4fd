package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/barcode-maker/barcode-maker/internal/export"
	"github.com/barcode-maker/barcode-maker/internal/render"
	"github.com/barcode-maker/barcode-maker/internal/settings"
	"github.com/barcode-maker/barcode-maker/internal/symbology"
)

func init() { //nolint: gochecknoinits
	f := renderCmd.Flags()
	f.StringVarP(&renderOpts.format, "format", "f", symbology.DefaultFormat, "barcode format, see the formats command")
	f.StringVarP(&renderOpts.input, "input", "i", "-", "file with one value per line, - reads stdin")
	f.StringVarP(&renderOpts.image, "image", "t", string(settings.DefaultImageFormat), "image format: svg, png, jpg or gif")
	f.StringVarP(&renderOpts.out, "out", "o", ".", "output directory")
	f.IntVar(&renderOpts.width, "width", 0, "barcode width in pixels, 0 uses the format default")
	f.IntVar(&renderOpts.height, "height", 0, "barcode height in pixels, 0 uses the format default")
	f.IntVar(&renderOpts.margin, "margin", -1, "margin in pixels, -1 uses the format default")
	f.BoolVar(&renderOpts.noText, "no-text", false, "hide the human readable text")
	f.IntVar(&renderOpts.workers, "workers", 4, "concurrent renders") //nolint:mnd

	rootCmd.AddCommand(renderCmd)
}

type renderFlags struct {
	format  string
	input   string
	image   string
	out     string
	width   int
	height  int
	margin  int
	noText  bool
	workers int
}

var (
	renderOpts renderFlags

	renderCmd = &cobra.Command{
		Use:   "render [values...]",
		Short: "Render barcodes to a file",
		Long: `Render barcodes without the web service. Values are taken from the
arguments or, without arguments, from --input. One value is written as
barcode-<format>.<ext>, several values as a zip archive.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, renderOpts)
		},
	}
)

func runRender(cmd *cobra.Command, args []string, flags renderFlags) error {
	format, ok := symbology.Canonical(flags.format)
	if !ok {
		return fmt.Errorf("unknown barcode format %q", flags.format)
	}

	img, err := render.ParseImageFormat(flags.image)
	if err != nil {
		return err
	}

	input := strings.Join(args, "\n")
	if len(args) == 0 {
		if input, err = readInput(cmd, flags.input); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	file, err := export.New(flags.workers, 0).Export(ctx, format, input, img, renderOptions(format, flags))
	if err != nil {
		return err
	}

	if err = os.MkdirAll(flags.out, 0o750); err != nil { //nolint:mnd
		return fmt.Errorf("create output directory: %w", err)
	}

	target := filepath.Join(flags.out, file.Name)
	if err = os.WriteFile(target, file.Data, 0o600); err != nil { //nolint:mnd
		return fmt.Errorf("write %s: %w", target, err)
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: %d barcode(s), %s\n",
		target, file.Count, humanize.Bytes(uint64(len(file.Data))))

	return err
}

// renderOptions applies the flags on top of the format defaults.
func renderOptions(format string, flags renderFlags) render.Options {
	opts := settings.DefaultsFor(format).RenderOptions()

	if flags.width > 0 {
		opts.Width = flags.width
	}

	if flags.height > 0 {
		opts.Height = flags.height
	}

	if flags.margin >= 0 {
		opts.Margin = flags.margin
	}

	if flags.noText {
		opts.ShowText = false
	}

	return opts
}

func readInput(cmd *cobra.Command, name string) (string, error) {
	var r io.Reader = cmd.InOrStdin()

	if name != "-" {
		f, err := os.Open(filepath.Clean(name))
		if err != nil {
			return "", fmt.Errorf("open input: %w", err)
		}
		defer f.Close()

		r = f
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}

	return string(data), nil
}
