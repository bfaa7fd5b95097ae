package cmd

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/shimf/uidrive/internal/engine"
	"github.com/shimf/uidrive/internal/logging"
	"github.com/shimf/uidrive/internal/model"
	"github.com/shimf/uidrive/internal/platform"
	"github.com/shimf/uidrive/internal/script"
	"gopkg.in/yaml.v3"
)

// mcpServer wraps the MCP server with the tree driver. Tool calls are
// serialized: a run owns the target's UI while it executes.
type mcpServer struct {
	driver   platform.Driver
	driverMu sync.Mutex
	mcp      *mcpserver.MCPServer
}

// MCPConfig holds MCP server configuration.
type MCPConfig struct {
	Transport string
	Port      int
}

// newMCPServer creates and configures an MCP server with all uidrive tools.
func newMCPServer() (*mcpServer, error) {
	driver, err := platform.NewDriver()
	if err != nil {
		return nil, err
	}

	s := &mcpServer{driver: driver}
	s.mcp = mcpserver.NewMCPServer(
		"uidrive",
		"1.0.0",
	)

	s.registerTools()
	return s, nil
}

// serve starts the MCP server with the configured transport.
func (s *mcpServer) serve(cfg MCPConfig) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *mcpServer) registerTools() {
	// check_script
	s.mcp.AddTool(
		mcp.NewTool("check_script",
			mcp.WithDescription("Parse and validate a driving script without executing it. Returns the parsed steps and any warnings."),
			mcp.WithString("script", mcp.Description("Script text"), mcp.Required()),
			mcp.WithString("format", mcp.Description("Script format: csv (default) or yaml")),
		),
		s.handleCheckScript,
	)

	// run_script
	s.mcp.AddTool(
		mcp.NewTool("run_script",
			mcp.WithDescription("Execute a driving script against a target application. Steps execute sequentially and the first fatal failure aborts the rest."),
			mcp.WithString("target", mcp.Description("Executable path to launch, or 'Attach:<titleSubstring>' to bind to a running window"), mcp.Required()),
			mcp.WithString("script", mcp.Description("Script text"), mcp.Required()),
			mcp.WithString("format", mcp.Description("Script format: csv (default) or yaml")),
			mcp.WithNumber("timeout-ms", mcp.Description("Default per-step timeout in ms (default: 5000)")),
			mcp.WithNumber("startup-wait", mcp.Description("Max seconds to wait for the target's first window (default: 15)")),
		),
		s.handleRunScript,
	)

	// windows
	s.mcp.AddTool(
		mcp.NewTool("windows",
			mcp.WithDescription("List a target application's top-level windows in enumeration order"),
			mcp.WithString("target", mcp.Description("Executable path or 'Attach:<titleSubstring>'"), mcp.Required()),
			mcp.WithNumber("wait", mcp.Description("Max seconds to wait for the first window (default: 5)")),
		),
		s.handleWindows,
	)

	// wait_for
	s.mcp.AddTool(
		mcp.NewTool("wait_for",
			mcp.WithDescription("Wait for an element matching a selector to appear in the target's accessibility tree"),
			mcp.WithString("target", mcp.Description("Executable path or 'Attach:<titleSubstring>'"), mcp.Required()),
			mcp.WithString("window", mcp.Description("Window title substring to scope the search")),
			mcp.WithString("control-type", mcp.Description("Control type hint (e.g. Button, Edit, MenuItem)")),
			mcp.WithString("by", mcp.Description("Selector kind: AutomationId, Name, ClassName, Title")),
			mcp.WithString("selector", mcp.Description("Selector payload interpreted per 'by'")),
			mcp.WithNumber("timeout-ms", mcp.Description("Max milliseconds to wait (default: 5000)")),
			mcp.WithBoolean("optional", mcp.Description("Complete with found:false instead of failing on timeout")),
		),
		s.handleWaitFor,
	)
}

// resultToText serializes a result value to YAML for an MCP response.
func resultToText(v interface{}) string {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("error: %s", err)
	}
	return string(b)
}

func loadScriptText(text, format string) ([]model.Step, error) {
	switch strings.ToLower(format) {
	case "", "csv":
		return script.LoadCSV(strings.NewReader(text))
	case "yaml", "yml":
		return script.LoadYAML(strings.NewReader(text))
	default:
		return nil, fmt.Errorf("unsupported script format: %s (use csv or yaml)", format)
	}
}

func (s *mcpServer) handleCheckScript(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	steps, err := loadScriptText(stringParam(params, "script", ""), stringParam(params, "format", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var warnings []string
	for i, step := range steps {
		if _, ok := model.ParseAction(step.Action); !ok {
			warnings = append(warnings, fmt.Sprintf("step %d: unsupported action %q", i+1, step.Action))
		}
	}

	return mcp.NewToolResultText(resultToText(CheckResult{
		OK:       len(warnings) == 0,
		Action:   "check",
		Steps:    len(steps),
		Warnings: warnings,
		Parsed:   steps,
	})), nil
}

func (s *mcpServer) handleRunScript(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	target := stringParam(params, "target", "")
	steps, err := loadScriptText(stringParam(params, "script", ""), stringParam(params, "format", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(steps) == 0 {
		return mcp.NewToolResultError("script contains no steps"), nil
	}
	timeoutMs := intParam(params, "timeout-ms", 0)
	startupWait := intParam(params, "startup-wait", 15)

	s.driverMu.Lock()
	defer s.driverMu.Unlock()

	sess, err := openSession(s.driver, target)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	defer sess.Close()

	if _, found := engine.ResolveWindow(sess, "", time.Duration(startupWait)*time.Second); !found {
		return mcp.NewToolResultError(fmt.Sprintf("no top-level window appeared within %ds", startupWait)), nil
	}

	opts := []engine.Option{}
	if timeoutMs > 0 {
		opts = append(opts, engine.WithDefaultTimeout(time.Duration(timeoutMs)*time.Millisecond))
	}
	exec := engine.New(sess, logging.New(logLevel()), opts...)
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
		return mcp.NewToolResultError(resultToText(result)), nil
	}
	return mcp.NewToolResultText(resultToText(result)), nil
}

func (s *mcpServer) handleWindows(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	target := stringParam(params, "target", "")
	waitSec := intParam(params, "wait", 5)

	s.driverMu.Lock()
	defer s.driverMu.Unlock()

	sess, err := openSession(s.driver, target)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	defer sess.Close()

	engine.ResolveWindow(sess, "", time.Duration(waitSec)*time.Second)

	windows, err := sess.TopLevelWindows()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	entries := make([]windowEntry, len(windows))
	for i, w := range windows {
		entries[i] = windowEntry{Index: i, Title: w.Title()}
	}
	return mcp.NewToolResultText(resultToText(entries)), nil
}

func (s *mcpServer) handleWaitFor(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	target := stringParam(params, "target", "")
	window := stringParam(params, "window", "")
	controlType := stringParam(params, "control-type", "")
	by := stringParam(params, "by", "")
	selector := stringParam(params, "selector", "")
	timeoutMs := intParam(params, "timeout-ms", 5000)
	optional := boolParam(params, "optional", false)

	s.driverMu.Lock()
	defer s.driverMu.Unlock()

	sess, err := openSession(s.driver, target)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	defer sess.Close()

	timeout := time.Duration(timeoutMs) * time.Millisecond
	start := time.Now()
	el, err := engine.ResolveElement(sess, window, controlType, by, selector, !optional, timeout)
	elapsed := fmt.Sprintf("%.1fs", time.Since(start).Seconds())

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if el == nil {
		return mcp.NewToolResultText(resultToText(WaitResult{OK: true, Action: "wait", Found: false, Elapsed: elapsed, TimedOut: true})), nil
	}
	return mcp.NewToolResultText(resultToText(WaitResult{OK: true, Action: "wait", Found: true, Target: el.Name(), Elapsed: elapsed})), nil
}
