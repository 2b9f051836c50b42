// Command shapesdemo renders a YAML scene to a PNG file through any of the
// drawing entry conventions.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/shapes"
	"github.com/gogpu/shapes/async"
	"github.com/gogpu/shapes/internal/scene"
)

var (
	output   string
	mode     string
	parallel int
	timeout  time.Duration
	verbose  bool
	progress bool
)

var rootCmd = &cobra.Command{
	Use:   "shapesdemo <scene.yaml>",
	Short: "Render a YAML scene of shapes to PNG",
	Long: `shapesdemo draws every shape of a scene file onto a pixmap and saves it.

The --mode flag selects the execution convention: blocking, config,
context, begin or future. All modes produce the same image.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVarP(&output, "output", "o", "scene.png", "output PNG file")
	rootCmd.Flags().StringVar(&mode, "mode", "config", "execution mode: blocking, config, context, begin, future")
	rootCmd.Flags().IntVar(&parallel, "parallel", 0, "max degree of parallelism (0 = GOMAXPROCS)")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 0, "cancel rendering after this duration (0 = never)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log pipeline decisions to stderr")
	rootCmd.Flags().BoolVar(&progress, "progress", false, "report compositing progress to stderr")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if verbose {
		shapes.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	s, err := scene.Load(args[0])
	if err != nil {
		return err
	}
	target, err := s.NewTarget()
	if err != nil {
		return err
	}
	ops, err := s.Operations(target)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	cfg := &async.Config{Context: ctx, MaxDegreeOfParallelism: parallel}
	if progress {
		cfg.Progress = &progressPrinter{out: cmd.ErrOrStderr()}
	}

	start := time.Now()
	var completed, canceled int
	shared := async.FromConfig(cfg)
	for _, op := range ops {
		ok, err := execute(ctx, op, cfg, shared)
		if err != nil {
			return err
		}
		if ok {
			completed++
		} else {
			canceled++
		}
	}
	elapsed := time.Since(start)

	if err := target.SavePNG(output); err != nil {
		return fmt.Errorf("failed to save %s: %w", output, err)
	}

	p := message.NewPrinter(language.English)
	p.Fprintf(cmd.OutOrStdout(), "Rendered %d of %d shapes (%d canceled) to %s, %dx%d pixels in %v\n",
		completed, len(ops), canceled, output, s.Width, s.Height, elapsed.Round(time.Microsecond))
	return nil
}

func execute(ctx context.Context, op *shapes.Operation, cfg *async.Config, shared async.Context) (bool, error) {
	switch mode {
	case "blocking":
		return true, op.Draw()
	case "config":
		return op.DrawWithConfig(cfg)
	case "context":
		return op.DrawWithContext(shared)
	case "begin":
		return async.End(op.Begin(cfg))
	case "future":
		return op.DrawAsync(cfg).Await(ctx)
	}
	return false, fmt.Errorf("unknown mode %q", mode)
}

// progressPrinter writes one line per finished operation.
type progressPrinter struct {
	out io.Writer

	mu        sync.Mutex
	operation string
	max       int
	steps     int
}

func (p *progressPrinter) New(operation string, max int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.operation, p.max, p.steps = operation, max, 0
}

func (p *progressPrinter) Increment() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.steps++
}

func (p *progressPrinter) Complete() {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.out, "%s: %d/%d bands\n", p.operation, p.steps, p.max)
}
