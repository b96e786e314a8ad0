// Command rv64i is the interpreter's command-line entry point: it
// assembles and runs a program, launches the terminal debugger, or
// starts the HTTP/WebSocket server, all over the same host.Host the
// rest of the module is built around.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/lookbusy1344/rv64i-emulator/api"
	"github.com/lookbusy1344/rv64i-emulator/debugger"
	"github.com/lookbusy1344/rv64i-emulator/host"
	"github.com/lookbusy1344/rv64i-emulator/vm"
)

const shutdownTimeout = 5 * time.Second

// Version information, overridden at build time with
// -ldflags "-X main.Version=v1.2.3".
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "rv64i",
		Short: "An RV64I base integer interpreter",
	}

	root.AddCommand(newRunCmd())
	root.AddCommand(newDebugCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func newRunCmd() *cobra.Command {
	var freq uint32
	var regFlags []string
	var statsPath string
	var coveragePath string

	cmd := &cobra.Command{
		Use:   "run <file>",
		Short: "Assemble and run a program to completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := os.ReadFile(args[0]) // #nosec G304 -- operator-supplied program path
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			initial, err := parseRegisterFlags(regFlags)
			if err != nil {
				return err
			}

			h, err := host.New(initial)
			if err != nil {
				return err
			}
			if freq != 0 {
				h.SetFrequency(&freq)
			}

			h.SetCode(string(source))
			for _, e := range h.Errors() {
				fmt.Fprintln(os.Stderr, "error:", e)
			}

			if statsPath != "" {
				h.EnableStatistics(vm.NewPerformanceStatistics())
			}
			if coveragePath != "" {
				h.EnableCoverage(vm.NewCodeCoverage(nil))
			}

			h.SetRunning(true)
			if freq != 0 {
				sched := host.NewScheduler(h, freq)
				go sched.Start()
				for h.Running() {
					time.Sleep(time.Second / time.Duration(freq))
				}
				sched.Stop()
			} else {
				h.Run()
			}

			printRegisters(h)

			if statsPath != "" {
				if err := writeReport(statsPath, h.Statistics().ExportJSON); err != nil {
					return err
				}
			}
			if coveragePath != "" {
				if err := writeReport(coveragePath, h.Coverage().ExportJSON); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().Uint32Var(&freq, "freq", 0, "step frequency in Hz (0 = as fast as possible)")
	cmd.Flags().StringArrayVar(&regFlags, "reg", nil, "initial register value, as N=VALUE (e.g. --reg 10=0x20)")
	cmd.Flags().StringVar(&statsPath, "stats", "", "write performance statistics as JSON to this path")
	cmd.Flags().StringVar(&coveragePath, "coverage", "", "write line coverage as JSON to this path")
	return cmd
}

// writeReport runs an Export* function against a freshly created file at path.
func writeReport(path string, export func(w io.Writer) error) error {
	f, err := os.Create(path) // #nosec G304 -- operator-supplied output path
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	return export(f)
}

func newDebugCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "debug <file>",
		Short: "Launch the terminal debugger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := os.ReadFile(args[0]) // #nosec G304 -- operator-supplied program path
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			zero := make([]string, 31)
			for i := range zero {
				zero[i] = "0"
			}
			h, err := host.New(zero)
			if err != nil {
				return err
			}
			h.SetCode(string(source))

			dbg := debugger.NewDebugger(h)
			dbg.LoadSource(string(source))

			tui := debugger.NewTUI(dbg)
			return tui.Run()
		},
	}
}

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP/WebSocket API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			srv := api.NewServer(port)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() { errCh <- srv.Start() }()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			}
		},
	}

	cmd.Flags().IntVar(&port, "port", 8080, "HTTP server port")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("rv64i %s (commit %s, built %s)\n", Version, Commit, Date)
			return nil
		},
	}
}

// parseRegisterFlags converts "N=VALUE" flags into the 31-element
// initial-register slice host.New expects, indexed by x1..x31.
func parseRegisterFlags(flags []string) ([]string, error) {
	values := make([]string, 31)
	for i := range values {
		values[i] = "0"
	}

	for _, flag := range flags {
		idxStr, value, ok := strings.Cut(flag, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --reg value %q, want N=VALUE", flag)
		}
		idx, err := strconv.Atoi(idxStr)
		if err != nil || idx < 1 || idx > 31 {
			return nil, fmt.Errorf("invalid register number in %q, want 1..31", flag)
		}
		values[idx-1] = value
	}

	return values, nil
}

func printRegisters(h *host.Host) {
	regs := h.RegistersRepr()
	for i, r := range regs {
		fmt.Printf("x%-2d  %-20s 0x%s\n", i, r.Decimal, r.Hex16)
	}
}
