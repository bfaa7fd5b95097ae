package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/shimf/uidrive/internal/engine"
	"github.com/shimf/uidrive/internal/output"
	"github.com/shimf/uidrive/internal/platform"
	"github.com/spf13/cobra"
)

// WaitResult is the YAML output of a wait command.
type WaitResult struct {
	OK       bool   `yaml:"ok"                  json:"ok"`
	Action   string `yaml:"action"              json:"action"`
	Found    bool   `yaml:"found"               json:"found"`
	Target   string `yaml:"target,omitempty"    json:"target,omitempty"`
	Elapsed  string `yaml:"elapsed"             json:"elapsed"`
	TimedOut bool   `yaml:"timed_out,omitempty" json:"timed_out,omitempty"`
}

var waitCmd = &cobra.Command{
	Use:   "wait <target>",
	Short: "Wait for an element to appear in the target's tree",
	Long: `Poll the target's accessibility tree until an element matching the
selector appears or the timeout elapses.

With --optional, a timeout completes with found: false instead of
failing, matching what the IfExists script action does.`,
	Args: cobra.ExactArgs(1),
	RunE: runWait,
}

func init() {
	rootCmd.AddCommand(waitCmd)
	waitCmd.Flags().String("window", "", "Window title substring to scope the search")
	waitCmd.Flags().String("control-type", "", "Control type hint (e.g. Button, Edit, MenuItem)")
	waitCmd.Flags().String("by", "", "Selector kind: AutomationId, Name, ClassName, Title")
	waitCmd.Flags().String("selector", "", "Selector payload interpreted per --by")
	waitCmd.Flags().Int("timeout-ms", 5000, "Max milliseconds to wait")
	waitCmd.Flags().Bool("optional", false, "Complete without error when nothing appears")
}

func runWait(cmd *cobra.Command, args []string) error {
	driver, err := platform.NewDriver()
	if err != nil {
		return err
	}
	sess, err := openSession(driver, args[0])
	if err != nil {
		return err
	}
	defer sess.Close()

	window, _ := cmd.Flags().GetString("window")
	controlType, _ := cmd.Flags().GetString("control-type")
	by, _ := cmd.Flags().GetString("by")
	selector, _ := cmd.Flags().GetString("selector")
	timeoutMs, _ := cmd.Flags().GetInt("timeout-ms")
	optional, _ := cmd.Flags().GetBool("optional")

	timeout := time.Duration(timeoutMs) * time.Millisecond
	start := time.Now()

	el, err := engine.ResolveElement(sess, window, controlType, by, selector, !optional, timeout)
	elapsed := fmt.Sprintf("%.1fs", time.Since(start).Seconds())

	var notFound *engine.ElementNotFoundError
	switch {
	case err != nil && errors.As(err, &notFound):
		_ = output.Print(WaitResult{Action: "wait", Elapsed: elapsed, TimedOut: true})
		return err
	case err != nil:
		return err
	case el == nil:
		return output.Print(WaitResult{OK: true, Action: "wait", Found: false, Elapsed: elapsed, TimedOut: true})
	default:
		return output.Print(WaitResult{OK: true, Action: "wait", Found: true, Target: el.Name(), Elapsed: elapsed})
	}
}
