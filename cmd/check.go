package cmd

import (
	"fmt"

	"github.com/shimf/uidrive/internal/model"
	"github.com/shimf/uidrive/internal/output"
	"github.com/shimf/uidrive/internal/script"
	"github.com/spf13/cobra"
)

// CheckResult is the YAML output of a check (or run --dry-run).
type CheckResult struct {
	OK       bool         `yaml:"ok"                 json:"ok"`
	Action   string       `yaml:"action"             json:"action"`
	Steps    int          `yaml:"steps"              json:"steps"`
	Warnings []string     `yaml:"warnings,omitempty" json:"warnings,omitempty"`
	Parsed   []model.Step `yaml:"parsed"             json:"parsed"`
}

var checkCmd = &cobra.Command{
	Use:   "check <script>",
	Short: "Parse and validate a driving script",
	Long: `Parse a driving script and report its steps without executing anything.

Unknown action tokens are reported as warnings: the loader tolerates
them, but the executor will fail the step at run time. Unknown By values
are also flagged, although they only cost the step its search criterion.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	steps, err := script.Load(args[0])
	if err != nil {
		return err
	}

	var warnings []string
	for i, step := range steps {
		if _, ok := model.ParseAction(step.Action); !ok {
			warnings = append(warnings, fmt.Sprintf("step %d: unsupported action %q", i+1, step.Action))
		}
		if step.By != "" {
			if _, ok := model.ParseBy(step.By); !ok {
				warnings = append(warnings, fmt.Sprintf("step %d: unrecognized By %q (no search criterion)", i+1, step.By))
			}
		}
		if step.ControlType != "" {
			if _, ok := model.ParseControlType(step.ControlType); !ok {
				warnings = append(warnings, fmt.Sprintf("step %d: unrecognized ControlType %q (no search criterion)", i+1, step.ControlType))
			}
		}
	}

	return output.Print(CheckResult{
		OK:       len(warnings) == 0,
		Action:   "check",
		Steps:    len(steps),
		Warnings: warnings,
		Parsed:   steps,
	})
}
