package cli

import (
	"github.com/spf13/cobra"

	"github.com/rxprobe/rxprobe/internal/oracle"
)

var compileCmd = &cobra.Command{
	Use:   "compile [file...]",
	Short: "Compile every input line independently",
	Long: `Runs the compile-only variant of the protocol: each line is an
independent pattern, answered with "success" or the engine's escaped
diagnostic. No state is carried between lines and there is no test
phase.

Example:
  printf 'a+\n(\n' | rxprobe compile`,
	Args: cobra.ArbitraryArgs,
	RunE: runCompile,
}

func init() {
	rootCmd.AddCommand(compileCmd)
}

func runCompile(cmd *cobra.Command, args []string) error {
	eng, err := setup()
	if err != nil {
		return err
	}

	in, cleanup, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, stop := signalContext(cmd)
	defer stop()

	return oracle.NewLoop(eng, in, cmd.OutOrStdout()).RunCompileOnly(ctx)
}
