// Command lvseg segments a weighted edge list with the Felzenszwalb–Huttenlocher
// criterion and prints one cluster id per element.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func newRootCmd(fs afero.Fs) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "lvseg",
		Short:         "lvseg is a graph segmentation tool.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(
		newSegmentCmd(fs),
		newVersionCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the lvseg version.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println("lvseg", version)
		},
	}
}

// execute runs the root command and returns the process exit code. A failure
// is reported once, on stderr.
func execute(fs afero.Fs, args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd(fs)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}

	return 0
}

func main() {
	os.Exit(execute(afero.NewOsFs(), os.Args[1:], os.Stdout, os.Stderr))
}
