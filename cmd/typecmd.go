package cmd

import (
	"fmt"

	"github.com/shimf/uidrive/internal/output"
	"github.com/shimf/uidrive/internal/platform/robot"
	"github.com/spf13/cobra"
)

// TypeResult is the YAML output of a successful type command.
type TypeResult struct {
	OK     bool   `yaml:"ok"             json:"ok"`
	Action string `yaml:"action"         json:"action"`
	Text   string `yaml:"text,omitempty" json:"text,omitempty"`
}

var typeCmd = &cobra.Command{
	Use:   "type [text]",
	Short: "Type text into the focused window",
	Long:  "Inject literal keystrokes into whatever currently holds focus. Text can be passed as a positional argument or via --text.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runType,
}

func init() {
	rootCmd.AddCommand(typeCmd)
	typeCmd.Flags().String("text", "", "Text to type (alternative to positional arg)")
	typeCmd.Flags().Bool("close", false, "Send the platform close-window chord instead of text")
}

func runType(cmd *cobra.Command, args []string) error {
	text, _ := cmd.Flags().GetString("text")
	closeWin, _ := cmd.Flags().GetBool("close")

	// Positional arg overrides --text flag
	if len(args) > 0 {
		text = args[0]
	}

	kb := robot.Keyboard{}

	if closeWin {
		if err := kb.CloseWindow(); err != nil {
			return err
		}
		return output.Print(TypeResult{OK: true, Action: "close"})
	}

	if text == "" {
		return fmt.Errorf("specify --text, --close, or a positional text argument")
	}
	if err := kb.TypeText(text); err != nil {
		return err
	}
	return output.Print(TypeResult{OK: true, Action: "type", Text: text})
}
