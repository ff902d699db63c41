// slicekit-demo exercises the container library from the command line. It
// wires the allocation tracker to a structured logger so every storage
// reservation, release and leak report is visible while the demos run.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hupe1980/slicekit"
	"github.com/hupe1980/slicekit/alloc"
	"github.com/hupe1980/slicekit/logging"
)

var (
	logLevel  string
	logFormat string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "slicekit-demo",
		Short:         "Demos for the slicekit fixed-extent container",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "pretty", "log format (json, text, pretty)")

	rootCmd.AddCommand(newWalkthroughCmd(), newRollbackCmd())

	return rootCmd
}

// setupTracking installs a tracked storage manager. It returns the command's
// logger behind the minimal Logger interface plus a teardown that emits the
// leak report.
func setupTracking(component string) (logging.Logger, func()) {
	logger := logging.NewLogger(&logging.LoggerConfig{
		Level:     logging.ParseLogLevel(logLevel),
		Format:    logFormat,
		Output:    os.Stderr,
		Component: component,
	})

	tracker := alloc.NewTracker(logger)
	alloc.SetTracker(tracker)

	return logger, func() {
		tracker.Report()
		alloc.SetTracker(nil)
	}
}

func newWalkthroughCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "walkthrough",
		Short: "Run the construction and view walkthrough",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, done := setupTracking("walkthrough")
			defer done()
			log.Info("running construction and view walkthrough")

			s, err := slicekit.Of(1, 2, 3, 4, 5)
			if err != nil {
				return err
			}
			defer s.Release()

			first, err := s.At(0)
			if err != nil {
				return err
			}
			fmt.Printf("built %d elements, first = %d\n", s.Len(), *first)

			sub, err := s.Sub(1, 4)
			if err != nil {
				return err
			}
			fmt.Printf("view over [1,4):\n%s", sub)

			if _, err := s.Sub(2, 2); errors.Is(err, slicekit.ErrInvalidRange) {
				fmt.Println("empty range rejected:", err)
			}
			if _, err := slicekit.FromBuffer[int](nil, 3); errors.Is(err, slicekit.ErrNilBuffer) {
				fmt.Println("nil buffer rejected:", err)
			}

			sub.Release()
			return nil
		},
	}
}

// payload is a clonable demo element whose duplication can be made to fail,
// driving the rollback path.
type payload struct {
	ID   int
	Fail bool
}

var errPayloadClone = errors.New("payload clone failed")

// Clone duplicates the payload or fails when flagged.
func (p payload) Clone() (payload, error) {
	if p.Fail {
		return payload{}, errPayloadClone
	}
	return p, nil
}

func newRollbackCmd() *cobra.Command {
	var failAt int

	cmd := &cobra.Command{
		Use:   "rollback",
		Short: "Show partial-construction rollback on a failing element",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, done := setupTracking("rollback")
			defer done()
			log.Info("staging clone failure at index %d", failAt)

			src := make([]payload, 4)
			for i := range src {
				src[i] = payload{ID: i}
			}
			if failAt >= 0 && failAt < len(src) {
				src[failAt].Fail = true
			}

			s, err := slicekit.FromSlice(src)
			if err != nil {
				fmt.Printf("construction failed as staged: %v\n", err)
				fmt.Println("no storage leaked; see leak report below")
				return nil
			}
			defer s.Release()

			fmt.Printf("unexpectedly built %d elements\n", s.Len())
			return nil
		},
	}

	cmd.Flags().IntVar(&failAt, "fail-at", 2, "index of the element whose clone fails (-1 disables)")

	return cmd
}
