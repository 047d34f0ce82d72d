// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"greedyasm/core/assembler"
	"greedyasm/core/fasta"
	"greedyasm/internal/cliutil"
	"greedyasm/internal/cmdutil"
	"greedyasm/internal/config"
	"greedyasm/internal/loader"
	"greedyasm/internal/version"
	"greedyasm/internal/writers"
)

// Exit codes.
const (
	ExitOK        = 0
	ExitNotSingle = 1 // --require-single and more than one contig remains
	ExitUsage     = 2
	ExitIO        = 3
	ExitCanceled  = 130
)

// exitError carries a process exit code through cobra's RunE.
type exitError struct {
	code  int
	err   error
	usage bool // print usage after the message
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

func usageErr(err error) error { return &exitError{code: ExitUsage, err: err, usage: true} }

const longHelp = `greedyasm – greedy shortest-superstring assembly of DNA fragments

Reads fragments over {A, C, G, T} from FASTA (or one-per-line) inputs and
repeatedly merges the pair with the largest suffix/prefix overlap until no
pair overlaps by at least --min-overlap. Ties prefer the shorter merge, then
the first pair in input order.

Settings may also come from --config (yaml, toml, json) or GREEDYASM_*
environment variables; flags win over both.`

// NewCommand builds the root command. Output goes to stdout, diagnostics to stderr.
func NewCommand(stdout, stderr io.Writer) *cobra.Command {
	v := config.NewViper()
	var cfgFile string

	cmd := &cobra.Command{
		Use:     "greedyasm [flags] <fragments.fa>... | -",
		Short:   "Greedy shortest-superstring assembly of DNA fragments",
		Long:    longHelp,
		Version: version.Version,
		Args:    cobra.ArbitraryArgs,
		Example: `  greedyasm reads.fa
  greedyasm -o fasta --line-width 80 'reads/*.fa.gz'
  cat reads.txt | greedyasm --input-format lines -o json --trace -`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), v, cfgFile, args, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return usageErr(err) })

	d := config.Defaults()
	fl := cmd.Flags()
	fl.SortFlags = false
	fl.StringVar(&cfgFile, "config", "", "settings file (yaml, toml, json)")
	fl.String("input-format", d.InputFormat, "input format: fasta | lines")
	fl.Int("min-overlap", d.MinOverlap, "smallest overlap (nt) that may be merged")
	fl.Bool("require-single", d.RequireSingle, "exit 1 unless exactly one contig remains")
	fl.StringP("output", "o", d.Output, "output: text | json | jsonl | yaml | fasta")
	fl.Int("line-width", d.LineWidth, "FASTA line width (0 = no wrapping)")
	fl.Bool("sort", d.Sort, "sort contigs by length (desc), then sequence")
	fl.Bool("no-header", d.NoHeader, "suppress header line in text output")
	fl.Bool("trace", d.Trace, "include merge steps in json/yaml output")
	fl.Bool("verbose", d.Verbose, "report each merge on stderr")
	fl.BoolP("quiet", "q", d.Quiet, "suppress non-essential warnings")
	_ = v.BindPFlags(fl)

	return cmd
}

// RunContext executes greedyasm with argv and returns the process exit code.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	if len(argv) == 0 {
		argv = []string{"--help"}
	}

	cmd := NewCommand(outw, stderr)
	cmd.SetArgs(argv)
	err := cmd.ExecuteContext(parent)

	code := ExitOK
	if err != nil {
		var ee *exitError
		if !errors.As(err, &ee) {
			ee = usageErr(err).(*exitError)
		}
		code = ee.code
		if ee.err != nil {
			_, _ = fmt.Fprintln(stderr, ee.err)
		}
		if ee.usage {
			_, _ = fmt.Fprint(outw, cmd.UsageString())
		}
	}

	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return ExitOK
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return ExitIO
	}
	return code
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func run(ctx context.Context, v *viper.Viper, cfgFile string, args []string, stdout, stderr io.Writer) error {
	s, err := config.Load(v, cfgFile)
	if err != nil {
		return usageErr(err)
	}

	paths, err := cliutil.ExpandPositionals(args)
	if err != nil {
		return usageErr(err)
	}
	if len(paths) == 0 {
		return usageErr(errors.New("at least one input file is required ('-' for stdin)"))
	}
	if cliutil.CountStdin(paths) > 1 {
		return usageErr(errors.New("'-' (stdin) may be given only once"))
	}

	inputs, err := loader.Load(ctx, paths, fasta.Format(s.InputFormat))
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return &exitError{code: ExitCanceled}
		}
		return &exitError{code: ExitUsage, err: err}
	}
	if len(inputs) == 0 {
		cmdutil.Warnf(stderr, s.Quiet, "no fragments found in %d input(s)", len(paths))
	}
	cmdutil.Infof(stderr, s.Verbose, "loaded %d fragment(s) from %d input(s)", len(inputs), len(paths))

	var merges []assembler.Merge
	asm := assembler.NewWithConfig(loader.Fragments(inputs), assembler.Config{
		MinOverlap: s.MinOverlap,
		OnMerge: func(m assembler.Merge) {
			cmdutil.Infof(stderr, s.Verbose, "step=%d overlap=%d left_len=%d right_len=%d merged_len=%d",
				m.Step, m.Overlap, m.Left.Len(), m.Right.Len(), m.Result.Len())
			if s.Trace {
				merges = append(merges, m)
			}
		},
	})
	if err := asm.AssembleAllContext(ctx); err != nil {
		return &exitError{code: ExitCanceled}
	}
	cmdutil.Infof(stderr, s.Verbose, "assembled %d fragment(s) into %d contig(s) in %d step(s)", len(inputs), asm.Len(), asm.Steps())

	res := writers.ToAPIResult(len(inputs), asm.Steps(), asm.Fragments(), merges, s.Sort)
	opts := writers.Options{Header: !s.NoHeader, LineWidth: s.LineWidth}
	if err := writers.Write(s.Output, stdout, res, opts); writers.IsBrokenPipe(err) {
		return nil
	} else if err != nil {
		return &exitError{code: ExitIO, err: err}
	}

	if s.RequireSingle && res.ContigCount != 1 {
		cmdutil.Warnf(stderr, s.Quiet, "%d contigs remain; expected exactly one", res.ContigCount)
		return &exitError{code: ExitNotSingle}
	}
	return nil
}
