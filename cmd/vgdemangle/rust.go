package main

import (
	"fmt"

	"github.com/skdltmxn/vgdemangle/internal/rust"
	"github.com/spf13/cobra"
)

var rustVerbose bool

var rustCmd = &cobra.Command{
	Use:   "rust <name>...",
	Short: "Decode C++-demangled Rust names",
	Long: `Decode Rust escapes in names that have already been C++-demangled,
for example output from another demangler.

Names without a plausible Rust hash suffix are printed unchanged.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRust,
}

func init() {
	rustCmd.Flags().BoolVarP(&rustVerbose, "verbose", "v", false, "show whether each name looked like Rust")
}

func runRust(cmd *cobra.Command, args []string) error {
	for _, name := range args {
		decoded := rust.Decode(name)
		if rustVerbose {
			fmt.Fprintf(output, "%-5v %s\n", rust.LooksMangled(name), decoded)
			continue
		}
		fmt.Fprintln(output, decoded)
	}
	return nil
}
