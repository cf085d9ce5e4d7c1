package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sched "github.com/eventheap/eventheap/sched"
)

var (
	// CLI flags for the run command
	logLevel      string // Log verbosity level
	capacity      int    // Heap capacity for the built-in demo schedule
	alphabetical  bool   // Order events by description instead of timestamp
	schedulePath  string // Optional YAML schedule file
	completeCount int    // Number of events to complete before printing
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "eventheap",
	Short: "Bounded priority scheduler for timestamped events",
}

// runCmd builds a heap (from a YAML schedule or the built-in demo events),
// completes the requested number of events, and prints the remaining queue.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the event scheduler",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if alphabetical {
			sched.SetAlphabetical()
		} else {
			sched.SetChronological()
		}

		var heap *sched.Heap
		if schedulePath != "" {
			schedule, err := sched.LoadSchedule(schedulePath)
			if err != nil {
				logrus.Fatalf("Unable to load schedule: %v", err)
			}
			schedule.Mode(nil)
			heap, err = schedule.Build(nil)
			if err != nil {
				logrus.Fatalf("Unable to build heap from schedule: %v", err)
			}
		} else {
			heap, err = demoHeap(capacity)
			if err != nil {
				logrus.Fatalf("Unable to build demo heap: %v", err)
			}
		}

		logrus.Infof("Scheduler ready: %d/%d events queued, alphabetical=%v",
			heap.Size(), heap.Capacity(), sched.IsAlphabetical())

		if next, err := heap.Peek(); err != nil {
			fmt.Println("Queue is empty:", err)
		} else {
			fmt.Println("Next event:", next)
		}

		for i := 0; i < completeCount; i++ {
			done, err := heap.CompleteNext()
			if err != nil {
				fmt.Println("Unable to complete event:", err)
				break
			}
			fmt.Println("Completed:", done)
		}

		fmt.Println("Remaining events:")
		fmt.Println(heap.Snapshot())

		if completed := heap.DrainCompleted(); len(completed) > 0 {
			fmt.Println("Completion log:")
			for _, e := range completed {
				fmt.Println(" ", e)
			}
		}
	},
}

// demoHeap fills a heap with the built-in demonstration events.
func demoHeap(capacity int) (*sched.Heap, error) {
	heap, err := sched.New(capacity, nil)
	if err != nil {
		return nil, err
	}
	demo := []struct {
		description       string
		day, hour, minute int
	}{
		{"Project Presentation", 1, 9, 0},
		{"Final Exam", 30, 14, 0},
		{"Team Meeting", 28, 10, 0},
	}
	for _, d := range demo {
		e, err := sched.NewEvent(d.description, d.day, d.hour, d.minute)
		if err != nil {
			return nil, err
		}
		if err := heap.Insert(e); err != nil {
			return nil, err
		}
	}
	return heap, nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().IntVar(&capacity, "capacity", 10, "Heap capacity for the built-in demo schedule")
	runCmd.Flags().BoolVar(&alphabetical, "alphabetical", false, "Order events by description instead of timestamp")
	runCmd.Flags().StringVar(&schedulePath, "schedule", "", "Path to a YAML schedule file")
	runCmd.Flags().IntVar(&completeCount, "complete", 1, "Number of events to complete before printing the queue")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
