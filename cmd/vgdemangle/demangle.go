package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/skdltmxn/vgdemangle/demangle"
	"github.com/skdltmxn/vgdemangle/internal/terminal"
	"github.com/spf13/cobra"
)

var (
	demangleEnabled  = true
	demangleNoCXX    bool
	demangleNoZ      bool
	demangleNoParams bool
)

var demangleCmd = &cobra.Command{
	Use:   "demangle [symbol...]",
	Short: "Demangle symbol names",
	Long: `Demangle symbol names given as arguments.

With no arguments, symbols are read from stdin one per line and each line is
written back demangled.`,
	RunE: runDemangle,
}

func init() {
	demangleCmd.Flags().BoolVar(&demangleEnabled, "demangle", true, "run C++ and Rust demangling (false overrides the config file)")
	demangleCmd.Flags().BoolVar(&demangleNoCXX, "no-cxx", false, "skip C++ and Rust demangling")
	demangleCmd.Flags().BoolVar(&demangleNoZ, "no-z", false, "skip Z-decoding of redirect specifiers")
	demangleCmd.Flags().BoolVar(&demangleNoParams, "no-params", false, "omit C++ function parameters")
}

func runDemangle(cmd *cobra.Command, args []string) error {
	if !demangleEnabled {
		cfg.Demangle.Enabled = false
	}
	if demangleNoParams {
		cfg.Demangle.Params = false
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	d := demangle.New(append(opts, demangle.WithLogger(logger))...)

	doCXX := cfg.Demangle.CXX && !demangleNoCXX
	doZ := cfg.Demangle.Z && !demangleNoZ

	if len(args) > 0 {
		for _, sym := range args {
			fmt.Fprintln(output, d.Demangle(doCXX, doZ, sym))
		}
		return nil
	}

	in := cmd.InOrStdin()
	interactive := false
	if f, ok := in.(*os.File); ok {
		interactive = terminal.NewDetector(f).IsInteractive()
	}
	return filter(in, d, doCXX, doZ, interactive)
}

func filter(in io.Reader, d *demangle.Demangler, doCXX, doZ, interactive bool) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	prompt := func() {
		if interactive {
			fmt.Fprint(os.Stderr, "> ")
		}
	}

	prompt()
	for scanner.Scan() {
		// The view is written out before the next call reuses the buffer.
		fmt.Fprintf(output, "%s\n", d.DemangleBytes(doCXX, doZ, scanner.Text()))
		prompt()
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}
