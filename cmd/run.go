package cmd

import (
	"fmt"
	"time"

	"github.com/shimf/uidrive/internal/engine"
	"github.com/shimf/uidrive/internal/logging"
	"github.com/shimf/uidrive/internal/output"
	"github.com/shimf/uidrive/internal/platform"
	"github.com/shimf/uidrive/internal/platform/robot"
	"github.com/shimf/uidrive/internal/script"
	"github.com/spf13/cobra"
)

// RunResult is the YAML output of a run command.
type RunResult struct {
	OK        bool                `yaml:"ok"                  json:"ok"`
	Action    string              `yaml:"action"              json:"action"`
	Target    string              `yaml:"target"              json:"target"`
	Steps     int                 `yaml:"steps"               json:"steps"`
	Completed int                 `yaml:"completed"           json:"completed"`
	Error     string              `yaml:"error,omitempty"     json:"error,omitempty"`
	Results   []engine.StepResult `yaml:"results"             json:"results"`
}

var runCmd = &cobra.Command{
	Use:   "run <target> <script>",
	Short: "Execute a driving script against a target application",
	Long: `Execute the steps of a driving script, in order, against a target
application's accessibility tree.

The target is either the path of an executable to launch, or
"Attach:<titleSubstring>" to bind to an already-running window. The
script is tabular CSV with the header
Action, Window, ControlType, By, Selector, Value, TimeoutMs
(or a YAML list of step maps for .yaml/.yml files).

Execution is fail-fast: the first fatal step failure aborts the rest of
the script.

Exit codes:
  0  all steps completed
  2  missing arguments
  3  no top-level window appeared within the startup wait
  4  a step failed
  1  any other fatal error

Example:
  uidrive run "Attach:Contoso Invoicing" invoices.csv
  uidrive run "C:\Tools\editor.exe" smoke.csv --timeout-ms 10000`,
	Args: cobra.ArbitraryArgs,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().Int("timeout-ms", 0, "Default per-step timeout in ms (default: 5000)")
	runCmd.Flags().Int("startup-wait", 15, "Max seconds to wait for the target's first window")
	runCmd.Flags().String("abort-key", "", "Global hotkey that aborts the run between steps (e.g. \"esc\")")
	runCmd.Flags().Bool("dry-run", false, "Parse and print the steps without opening a session")
}

func runRun(cmd *cobra.Command, args []string) error {
	if len(args) < 2 {
		return &exitError{code: 2, err: fmt.Errorf("usage: uidrive run <target> <script>")}
	}
	target, scriptPath := args[0], args[1]

	steps, err := script.Load(scriptPath)
	if err != nil {
		return err
	}
	if len(steps) == 0 {
		return fmt.Errorf("script %s contains no steps", scriptPath)
	}

	if dryRun, _ := cmd.Flags().GetBool("dry-run"); dryRun {
		return output.Print(CheckResult{
			OK:     true,
			Action: "dry-run",
			Steps:  len(steps),
			Parsed: steps,
		})
	}

	timeoutMs, _ := cmd.Flags().GetInt("timeout-ms")
	startupWait, _ := cmd.Flags().GetInt("startup-wait")
	abortKey, _ := cmd.Flags().GetString("abort-key")

	logger := logging.New(logLevel())

	driver, err := platform.NewDriver()
	if err != nil {
		return err
	}
	sess, err := openSession(driver, target)
	if err != nil {
		return err
	}
	defer sess.Close()

	// Applications can be slow to surface their first window after
	// launch; retry until one exists or the startup wait elapses.
	if _, found := engine.ResolveWindow(sess, "", time.Duration(startupWait)*time.Second); !found {
		return &exitError{
			code: 3,
			err:  fmt.Errorf("no top-level window appeared within %ds", startupWait),
		}
	}

	opts := []engine.Option{}
	if timeoutMs > 0 {
		opts = append(opts, engine.WithDefaultTimeout(time.Duration(timeoutMs)*time.Millisecond))
	}
	if abortKey != "" {
		watcher := robot.WatchKey(abortKey)
		defer watcher.Close()
		opts = append(opts, engine.WithStop(watcher.Triggered))
	}

	exec := engine.New(sess, logger, opts...)
	results, runErr := exec.Run(steps)

	result := RunResult{
		OK:        runErr == nil,
		Action:    "run",
		Target:    target,
		Steps:     len(steps),
		Completed: countCompleted(results),
		Results:   results,
	}
	if runErr != nil {
		result.Error = runErr.Error()
	}
	if printErr := output.Print(result); printErr != nil {
		return printErr
	}
	if runErr != nil {
		return &exitError{code: 4, err: runErr}
	}
	return nil
}

func countCompleted(results []engine.StepResult) int {
	n := 0
	for _, r := range results {
		if r.OK {
			n++
		}
	}
	return n
}
