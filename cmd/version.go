package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// version is set via -ldflags at release build time. Source builds fall
// back to the module version the Go toolchain bakes in.
var version = ""

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the lessonsmith version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("lessonsmith", resolveVersion())
	},
}

func resolveVersion() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "(devel)"
}
