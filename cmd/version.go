package cmd

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Set at build time with -ldflags "-X github.com/aenigma-lab/opsearch/cmd.version=...".
var (
	version   = "dev"
	commit    = ""
	buildDate = ""
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show opsearch version and build information",
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, _ []string) error {
	info := currentBuild()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Version:    %s\n", info.version)
	fmt.Fprintf(out, "Commit:     %s\n", emptyAsNA(info.commit))
	fmt.Fprintf(out, "Build Date: %s\n", emptyAsNA(info.date))
	fmt.Fprintf(out, "Go Version: %s\n", runtime.Version())
	fmt.Fprintf(out, "OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
	return nil
}

type buildInfo struct {
	version, commit, date string
}

// currentBuild prefers the ldflags values and falls back to the module
// version and VCS stamps recorded by the Go toolchain (go install).
func currentBuild() buildInfo {
	b := buildInfo{version: version, commit: commit, date: buildDate}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return b
	}
	if b.version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		b.version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch {
		case s.Key == "vcs.revision" && b.commit == "":
			b.commit = s.Value
		case s.Key == "vcs.time" && b.date == "":
			b.date = s.Value
		}
	}
	return b
}

func emptyAsNA(s string) string {
	if s == "" {
		return "n/a"
	}
	return s
}
