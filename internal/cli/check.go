package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rxprobe/rxprobe/internal/oracle"
)

var checkCmd = &cobra.Command{
	Use:   "check <pattern>",
	Short: "Compile a single pattern and report the verdict",
	Long: `Compiles the pattern argument with the selected flavor. Prints
"success" on a clean compile; otherwise prints the engine's escaped
diagnostic and exits nonzero.

Example:
  rxprobe check 'a+'
  rxprobe check --flavor pcre '(?<=x)y'`,
	Args:         cobra.ExactArgs(1),
	RunE:         runCheck,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	eng, err := setup()
	if err != nil {
		return err
	}

	if _, err := eng.Compile(args[0]); err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), oracle.EscapeDiagnostic(err.Error()))
		return fmt.Errorf("pattern does not compile under flavor %q", eng.Name())
	}

	fmt.Fprintln(cmd.OutOrStdout(), "success")
	return nil
}
