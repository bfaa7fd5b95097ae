package cmd

import (
	"testing"

	"github.com/shimf/uidrive/internal/engine"
)

func TestRunCommand_HasExpectedFlags(t *testing.T) {
	for _, name := range []string{"timeout-ms", "startup-wait", "abort-key", "dry-run"} {
		if runCmd.Flags().Lookup(name) == nil {
			t.Errorf("expected flag --%s on run command", name)
		}
	}
}

func TestRunCommand_MissingArgsExitCode(t *testing.T) {
	err := runRun(runCmd, []string{"only-target"})
	if err == nil {
		t.Fatal("expected error for missing script argument")
	}
	ee, ok := err.(*exitError)
	if !ok {
		t.Fatalf("expected *exitError, got %T", err)
	}
	if ee.code != 2 {
		t.Errorf("exit code = %d, want 2", ee.code)
	}
}

func TestCountCompleted(t *testing.T) {
	results := []engine.StepResult{
		{OK: true},
		{OK: true},
		{OK: false},
	}
	if got := countCompleted(results); got != 2 {
		t.Errorf("countCompleted = %d, want 2", got)
	}
	if got := countCompleted(nil); got != 0 {
		t.Errorf("countCompleted(nil) = %d, want 0", got)
	}
}
