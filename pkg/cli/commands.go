package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/devicelab-dev/swipe-geometry/pkg/dispatch"
	"github.com/devicelab-dev/swipe-geometry/pkg/executor"
	"github.com/devicelab-dev/swipe-geometry/pkg/flow"
	"github.com/devicelab-dev/swipe-geometry/pkg/geometry"
	"github.com/devicelab-dev/swipe-geometry/pkg/report"
	"github.com/devicelab-dev/swipe-geometry/pkg/swipe"
	"github.com/devicelab-dev/swipe-geometry/pkg/uiautomator2"
)

var computeCommand = &cli.Command{
	Name:  "compute",
	Usage: "Compute a single swipe",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "direction", Aliases: []string{"d"}, Usage: "up, down, left or right", Required: true},
		&cli.StringFlag{Name: "view", Usage: "View rect as x,y,width,height", Required: true},
		&cli.StringFlag{Name: "screen", Usage: "Screen size as width,height", Required: true},
		&cli.BoolFlag{Name: "slow", Usage: "Slow swipe (default fast)"},
		&cli.Float64Flag{Name: "amount", Usage: "Fraction of the travel to the screen edge (default 0.75)"},
		&cli.Float64Flag{Name: "start-x", Usage: "Normalized start x inside the view"},
		&cli.Float64Flag{Name: "start-y", Usage: "Normalized start y inside the view"},
		&cli.BoolFlag{Name: "json", Usage: "Print the gesture as JSON"},
	},
	Action: runCompute,
}

var planFlags = []cli.Flag{
	&cli.IntFlag{Name: "workers", Usage: "Plans evaluated concurrently", Value: executor.DefaultWorkers},
	&cli.StringFlag{Name: "screen", Usage: "Screen size (width,height) for plans that do not name one"},
}

var planCommand = &cli.Command{
	Name:      "plan",
	Usage:     "Evaluate plan files and write a report",
	ArgsUsage: "<plan-file-or-dir>...",
	Flags:     planFlags,
	Action:    runPlan,
}

var dispatchCommand = &cli.Command{
	Name:      "dispatch",
	Usage:     "Evaluate plan files and play each swipe through UIAutomator2",
	ArgsUsage: "<plan-file-or-dir>...",
	Flags:     planFlags,
	Action:    runDispatch,
}

func optionalFlag(c *cli.Context, name string) swipe.Optional {
	if !c.IsSet(name) {
		return swipe.Optional{}
	}
	return swipe.Some(c.Float64(name))
}

func runCompute(c *cli.Context) error {
	dir, err := geometry.ParseDirection(c.String("direction"))
	if err != nil {
		return err
	}
	view, err := parseRect(c.String("view"))
	if err != nil {
		return fmt.Errorf("--view: %w", err)
	}
	screen, err := parseSize(c.String("screen"))
	if err != nil {
		return fmt.Errorf("--screen: %w", err)
	}

	g, err := swipe.Compute(swipe.Params{
		Direction: dir,
		Fast:      !c.Bool("slow"),
		Amount:    optionalFlag(c, "amount"),
		StartX:    optionalFlag(c, "start-x"),
		StartY:    optionalFlag(c, "start-y"),
	}, swipe.Geometry{View: view, Screen: screen})
	if err != nil {
		return err
	}

	out := c.App.Writer
	if c.Bool("json") {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(g)
	}
	fmt.Fprintf(out, "Direction: %s (%s, %s)\n", g.Direction, g.Speed, g.Precision)
	fmt.Fprintf(out, "Start:     %s\n", g.Start)
	fmt.Fprintf(out, "End:       %s\n", g.End)
	return nil
}

func runPlan(c *cli.Context) error {
	log := newLogger(c)
	defer func() { _ = log.Sync() }()

	return runPlans(c, log, nil, swipe.Size{})
}

func runDispatch(c *cli.Context) error {
	log := newLogger(c)
	defer func() { _ = log.Sync() }()

	var client *uiautomator2.Client
	if socket := c.String("socket"); socket != "" {
		client = uiautomator2.NewClient(socket)
	} else {
		client = uiautomator2.NewClientTCP(c.Int("driver-host-port"))
	}
	defer client.Close()

	ctx := c.Context
	ready, err := client.Status(ctx)
	if err != nil {
		return fmt.Errorf("uiautomator2 status: %w", err)
	}
	if !ready {
		return fmt.Errorf("uiautomator2 server not ready")
	}
	if err := client.CreateSession(ctx, uiautomator2.Capabilities{
		PlatformName:   "Android",
		AutomationName: "UiAutomator2",
	}); err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	log.Info("session created", zap.String("session", client.SessionID()))

	var deviceScreen swipe.Size
	if w, h, err := client.ScreenSize(ctx); err == nil {
		deviceScreen = swipe.Size{Width: float64(w), Height: float64(h)}
		log.Debug("device screen", zap.Int("width", w), zap.Int("height", h))
	} else {
		log.Warn("could not read device screen size", zap.Error(err))
	}

	return runPlans(c, log, dispatch.NewUIAutomator2(client, log), deviceScreen)
}

// runPlans is shared by plan and dispatch. deviceScreen is used when
// neither the plan nor --screen names a screen size.
func runPlans(c *cli.Context, log *zap.Logger, dispatcher swipe.Dispatcher, deviceScreen swipe.Size) error {
	if c.NArg() == 0 {
		return fmt.Errorf("no plan files given")
	}

	screen, err := screenSize(log, c.String("screen"), deviceScreen)
	if err != nil {
		return err
	}

	flows, err := flow.ParsePaths(c.Args().Slice())
	if err != nil {
		return err
	}

	out := c.App.Writer
	runner := executor.NewParallelRunner(executor.RunnerConfig{
		Workers:    c.Int("workers"),
		Screen:     screen,
		Dispatcher: dispatcher,
		Logger:     log,
		OnFlowEnd: func(idx, total int, p report.Plan) {
			printPlanResult(out, idx, total, p)
		},
	})

	result, err := runner.Run(c.Context, flows)
	if err != nil {
		return err
	}

	r := report.New(result.FlowResults, msDuration(result.Duration))
	outputDir := c.String("output")
	if err := report.Write(outputDir, r); err != nil {
		return err
	}

	fmt.Fprintf(out, "\n%d/%d plans passed in %s. Report: %s\n",
		result.PassedFlows, result.TotalFlows, executor.FormatDuration(result.Duration), outputDir)

	if result.FailedFlows > 0 {
		return fmt.Errorf("%d plan(s) failed", result.FailedFlows)
	}
	return nil
}

// screenSize picks --screen over the device-reported size. A mismatch
// between the two is logged since swipes will then miss the real screen.
func screenSize(log *zap.Logger, flag string, deviceScreen swipe.Size) (swipe.Size, error) {
	if flag == "" {
		return deviceScreen, nil
	}
	screen, err := parseSize(flag)
	if err != nil {
		return swipe.Size{}, fmt.Errorf("--screen: %w", err)
	}
	if !deviceScreen.IsZero() && screen != deviceScreen {
		log.Warn("--screen overrides device screen size",
			zap.String("screen", fmt.Sprintf("%gx%g", screen.Width, screen.Height)),
			zap.String("device", fmt.Sprintf("%gx%g", deviceScreen.Width, deviceScreen.Height)))
	}
	return screen, nil
}

func printPlanResult(out io.Writer, idx, total int, p report.Plan) {
	status := "✓ Passed"
	if p.Status == report.StatusFailed {
		status = "✗ Failed"
	}
	fmt.Fprintf(out, "[%d/%d] %s (%s) - %s (%s)\n",
		idx+1, total, p.Name, p.SourceFile, status, executor.FormatDuration(p.DurationMs))

	for _, s := range p.Swipes {
		if s.Status == report.StatusFailed {
			fmt.Fprintf(out, "  %s: %s\n", s.Description, s.Error)
			continue
		}
		fmt.Fprintf(out, "  %s: %s -> %s\n", s.Description, s.Gesture.Start, s.Gesture.End)
	}
}
