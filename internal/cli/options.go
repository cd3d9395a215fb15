// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"seqguard/internal/config"
	"seqguard/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	Input      string
	ConfigFile string

	// Execution
	Threads int
	Mode    string

	// Output
	Output       string
	Encoding     string
	FailExitCode int

	// Misc
	LogLevel string
	Verbose  bool
}

// NewCommand builds the root command. run is invoked after flags are parsed
// and AfterParse has succeeded.
func NewCommand(name string, opt *Options, run func(cmd *cobra.Command) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:   name + " [flags] [FILE]",
		Short: "FASTQ quality check",
		Long: name + ` validates FASTQ files: record structure, duplicate headers,
sequence/quality length parity, quality character range, and reports
non-ATGC bases. gzip, bzip2, xz and zstd inputs are decompressed
transparently; use '-' to read stdin.

Prints "QC Result: PASS" or "QC Result: FAIL" on stdout; every defect
found is reported on stderr.`,
		Example: `  ` + name + ` -i reads.fastq.gz
  ` + name + ` --mode stream reads.fq
  zcat reads.fq.gz | ` + name + ` -i - --output json`,
		Version:       version.Version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := AfterParse(opt, args); err != nil {
				return err
			}
			return run(cmd)
		},
	}
	cmd.SetVersionTemplate(name + " version {{.Version}}\n")
	Register(cmd.Flags(), opt)
	return cmd
}

// Register wires flags onto fs.
func Register(fs *pflag.FlagSet, o *Options) {
	def := config.Default()

	fs.StringVarP(&o.Input, "input", "i", "", "path to .fastq or .fastq.gz file ('-' for stdin) [*]")
	fs.StringVar(&o.ConfigFile, "config", "", "YAML config file")

	fs.IntVarP(&o.Threads, "threads", "t", def.Threads, "worker threads (0 = all CPUs)")
	fs.StringVarP(&o.Mode, "mode", "m", def.Mode, "execution mode: batch (report every defect) | stream (stop at first failing record)")

	fs.StringVarP(&o.Output, "output", "o", def.Output, "report format: text | json")
	fs.StringVar(&o.Encoding, "encoding", def.Encoding, "quality encoding: phred33 | phred64")
	fs.IntVar(&o.FailExitCode, "fail-exit-code", def.FailExitCode, "exit status when QC fails")

	fs.StringVar(&o.LogLevel, "log-level", def.LogLevel, "log level: debug | info | warn | error")
	fs.BoolVarP(&o.Verbose, "verbose", "v", false, "debug logging (same as --log-level debug)")
}

// AfterParse resolves the positional FILE argument into Input.
func AfterParse(o *Options, args []string) error {
	if len(args) == 1 {
		if o.Input != "" {
			return fmt.Errorf("input given twice: --input %q and %q", o.Input, args[0])
		}
		o.Input = args[0]
	}
	if o.Input == "" {
		return errors.New("an input file is required (--input or FILE)")
	}
	return nil
}

// Apply copies explicitly set flags over cfg so that flags beat the config
// file and environment.
func (o *Options) Apply(fs *pflag.FlagSet, cfg *config.Config) {
	if fs.Changed("threads") {
		cfg.Threads = o.Threads
	}
	if fs.Changed("mode") {
		cfg.Mode = o.Mode
	}
	if fs.Changed("output") {
		cfg.Output = o.Output
	}
	if fs.Changed("encoding") {
		cfg.Encoding = o.Encoding
	}
	if fs.Changed("fail-exit-code") {
		cfg.FailExitCode = o.FailExitCode
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = o.LogLevel
	}
	if o.Verbose {
		cfg.LogLevel = "debug"
	}
}
