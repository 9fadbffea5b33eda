package main

import (
	"errors"
	"fmt"

	"github.com/skdltmxn/vgdemangle/demangle"
	"github.com/spf13/cobra"
)

var zdecodeCmd = &cobra.Command{
	Use:   "zdecode <symbol>...",
	Short: "Decode Z-encoded redirect specifiers",
	Long: `Decode Z-encoded redirect specifiers into their soname, function name
and equivalence class.

Example:
  vgdemangle zdecode _vgr00000ZZ_libcZdsoZa_malloc`,
	Args: cobra.MinimumNArgs(1),
	RunE: runZDecode,
}

func runZDecode(cmd *cobra.Command, args []string) error {
	failed := 0
	for _, sym := range args {
		spec, err := demangle.ZDemangle(sym, true)
		if err != nil {
			failed++
			printZError(sym, err)
			continue
		}
		printRedirectSpec(sym, spec)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d symbol(s) failed to decode", failed, len(args))
	}
	return nil
}

func printRedirectSpec(sym string, spec demangle.RedirectSpec) {
	kind := "replace"
	if spec.IsWrap {
		kind = "wrap"
	}

	fmt.Fprintf(output, "Symbol: %s\n", sym)
	fmt.Fprintf(output, "  Soname: %s\n", spec.Soname)
	fmt.Fprintf(output, "  Function: %s\n", spec.FnName)
	fmt.Fprintf(output, "  Kind: %s\n", kind)
	if spec.EclassTag != 0 {
		fmt.Fprintf(output, "  EclassTag: %04d\n", spec.EclassTag)
		fmt.Fprintf(output, "  EclassPrio: %d\n", spec.EclassPrio)
	}
	fmt.Fprintln(output)
}

func printZError(sym string, err error) {
	fmt.Fprintf(output, "Symbol: %s\n", sym)
	switch {
	case errors.Is(err, demangle.ErrForbiddenPrefix):
		fmt.Fprintf(output, "  Error: reserved VG_Z_ soname prefix (tool bug)\n")
	case errors.Is(err, demangle.ErrMalformedHeader):
		fmt.Fprintf(output, "  Error: not a redirect specifier\n")
	default:
		fmt.Fprintf(output, "  Error: %v\n", err)
	}
	fmt.Fprintln(output)
}
