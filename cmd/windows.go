package cmd

import (
	"time"

	"github.com/shimf/uidrive/internal/engine"
	"github.com/shimf/uidrive/internal/output"
	"github.com/shimf/uidrive/internal/platform"
	"github.com/spf13/cobra"
)

// windowEntry is the YAML output for one window.
type windowEntry struct {
	Index int    `yaml:"index" json:"index"`
	Title string `yaml:"title" json:"title"`
}

var windowsCmd = &cobra.Command{
	Use:   "windows <target>",
	Short: "List the target application's top-level windows",
	Long:  "Attach to (or launch) a target and list its current top-level windows in provider enumeration order.",
	Args:  cobra.ExactArgs(1),
	RunE:  runWindows,
}

func init() {
	rootCmd.AddCommand(windowsCmd)
	windowsCmd.Flags().Int("wait", 5, "Max seconds to wait for the first window")
}

func runWindows(cmd *cobra.Command, args []string) error {
	driver, err := platform.NewDriver()
	if err != nil {
		return err
	}
	sess, err := openSession(driver, args[0])
	if err != nil {
		return err
	}
	defer sess.Close()

	waitSec, _ := cmd.Flags().GetInt("wait")
	engine.ResolveWindow(sess, "", time.Duration(waitSec)*time.Second)

	windows, err := sess.TopLevelWindows()
	if err != nil {
		return err
	}

	entries := make([]windowEntry, len(windows))
	for i, w := range windows {
		entries[i] = windowEntry{Index: i, Title: w.Title()}
	}
	return output.Print(entries)
}
