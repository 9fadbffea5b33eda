package main

import (
	"fmt"

	"github.com/skdltmxn/vgdemangle/internal/zenc"
	"github.com/spf13/cobra"
)

var (
	zencodeSoname  string
	zencodeFn      string
	zencodeWrap    bool
	zencodeTag     int
	zencodePrio    int
	zencodeLiteral bool
)

var zencodeCmd = &cobra.Command{
	Use:   "zencode",
	Short: "Build a Z-encoded redirect specifier",
	Long: `Build a Z-encoded redirect specifier from a soname pattern and a
function name.

Example:
  vgdemangle zencode --soname 'libc.so*' --fn malloc`,
	Args: cobra.NoArgs,
	RunE: runZEncode,
}

func init() {
	zencodeCmd.Flags().StringVarP(&zencodeSoname, "soname", "s", "", "soname pattern")
	zencodeCmd.Flags().StringVarP(&zencodeFn, "fn", "f", "", "function name")
	zencodeCmd.Flags().BoolVarP(&zencodeWrap, "wrap", "w", false, "wrap instead of replace")
	zencodeCmd.Flags().IntVarP(&zencodeTag, "tag", "t", 0, "equivalence class tag (0-9999)")
	zencodeCmd.Flags().IntVarP(&zencodePrio, "prio", "p", 0, "equivalence class priority (0-9)")
	zencodeCmd.Flags().BoolVarP(&zencodeLiteral, "literal", "l", false, "store the function name unencoded")
	_ = zencodeCmd.MarkFlagRequired("fn")
}

func runZEncode(cmd *cobra.Command, args []string) error {
	spec := zenc.RedirectSpec{
		Soname:     zencodeSoname,
		FnName:     zencodeFn,
		IsWrap:     zencodeWrap,
		EclassTag:  zencodeTag,
		EclassPrio: zencodePrio,
	}

	encode := zenc.Encode
	if zencodeLiteral {
		encode = zenc.EncodeLiteral
	}

	sym, err := encode(spec)
	if err != nil {
		return fmt.Errorf("failed to encode: %w", err)
	}
	fmt.Fprintln(output, sym)
	return nil
}
