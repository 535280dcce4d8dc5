package main

import (
	"fmt"
	"io"

	"github.com/aretw0/headr"
	"github.com/aretw0/headr/internal/cli"
	"github.com/spf13/cobra"
)

// newRootCmd builds the headr command bound to the given streams.
func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "headr [flags] [FILE]...",
		Short: "Print the first lines or bytes of each file",
		Long: `Print the first 10 lines of each FILE to standard output.
With more than one FILE, precede each with a header giving the file name.
With no FILE, or when FILE is -, read standard input.`,
		Version:       headr.Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Lookup errors only occur for undefined flags; all four are defined below.
			lines, _ := cmd.Flags().GetString("lines")
			bytes, _ := cmd.Flags().GetString("bytes")
			configPath, _ := cmd.Flags().GetString("config")
			debug, _ := cmd.Flags().GetBool("debug")

			return cli.Execute(cmd.Context(), cli.RunOptions{
				Files:      args,
				Lines:      lines,
				LinesSet:   cmd.Flags().Changed("lines"),
				Bytes:      bytes,
				BytesSet:   cmd.Flags().Changed("bytes"),
				ConfigPath: configPath,
				Debug:      debug,
				Stdin:      stdin,
				Stdout:     stdout,
				Stderr:     stderr,
			})
		},
	}

	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetVersionTemplate("headr version {{.Version}}\n")

	cmd.Flags().StringP("lines", "n", "10", "print the first LINES lines of each file")
	cmd.Flags().StringP("bytes", "c", "", "print the first BYTES bytes of each file")
	cmd.Flags().String("config", "", "YAML file providing default lines or bytes")
	cmd.Flags().Bool("debug", false, "write debug logs to standard error")
	cmd.MarkFlagsMutuallyExclusive("lines", "bytes")

	return cmd
}

// run executes the command and maps its outcome to a process exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdin, stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}
