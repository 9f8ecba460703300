// Command lc3vm loads an LC-3 program image and runs it to completion on
// the controlling terminal, or batch-runs several images headlessly.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lc3vm/lc3vm/internal/batch"
	"github.com/lc3vm/lc3vm/internal/cpu"
	"github.com/lc3vm/lc3vm/internal/host"
	"github.com/lc3vm/lc3vm/internal/lc3err"
	"github.com/lc3vm/lc3vm/internal/memory"
	"github.com/lc3vm/lc3vm/internal/snapshot"
)

func main() {
	var snapshotIn string
	var snapshotOut string

	rootCmd := &cobra.Command{
		Use:   "lc3vm [image]",
		Short: "Run an LC-3 program image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImage(args[0], snapshotIn, snapshotOut)
		},
	}
	rootCmd.Flags().StringVar(&snapshotIn, "snapshot", "", "resume from a saved CPU/memory snapshot instead of a fresh image load")
	rootCmd.Flags().StringVar(&snapshotOut, "save-on-halt", "", "write a snapshot to this path right before exiting on HALT")

	var numWorkers int
	batchCmd := &cobra.Command{
		Use:   "batch [images...]",
		Short: "Run several independent images concurrently and summarize the results",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(args, numWorkers)
		},
	}
	batchCmd.Flags().IntVar(&numWorkers, "workers", 0, "number of concurrent VM instances (defaults to NumCPU)")

	rootCmd.AddCommand(batchCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, formatError(err))
		os.Exit(1)
	}
}

func runImage(path, snapshotIn, snapshotOut string) error {
	var c *cpu.CPU
	var mem *memory.Memory

	if snapshotIn != "" {
		loaded, loadedMem, err := snapshot.Load(snapshotIn)
		if err != nil {
			return fmt.Errorf("loading snapshot: %w", err)
		}
		c, mem = loaded, loadedMem
	} else {
		mem = memory.New()
		data, err := os.ReadFile(path)
		if err != nil {
			return lc3err.New(lc3err.ReadingFile, "%v", err)
		}
		if err := memory.LoadImage(mem, data); err != nil {
			return err
		}
		c = cpu.New(mem, nil, nil)
	}

	stdinFd := int(os.Stdin.Fd())
	var restore func()
	if term.IsTerminal(stdinFd) {
		prev, err := term.MakeRaw(stdinFd)
		if err == nil {
			restore = func() { term.Restore(stdinFd, prev) }
		}
	}
	if restore != nil {
		defer restore()
	}

	io := host.NewStdIO(os.Stdin, os.Stdout)
	c.In, c.Out = io, io

	runErr := c.Run()

	if snapshotOut != "" && runErr == nil {
		if err := snapshot.Save(snapshotOut, c, mem); err != nil {
			return fmt.Errorf("saving snapshot: %w", err)
		}
	}
	return runErr
}

func runBatch(images []string, numWorkers int) error {
	table := batch.Run(images, batch.Config{NumWorkers: numWorkers})
	failures := 0
	for _, r := range table.Results() {
		if r.Err != nil {
			failures++
			fmt.Printf("%-30s FAIL  steps=%-6d %v\n", r.Image, r.Steps, r.Err)
			continue
		}
		fmt.Printf("%-30s HALT  steps=%-6d\n", r.Image, r.Steps)
	}
	if failures > 0 {
		return fmt.Errorf("%d of %d images failed", failures, len(images))
	}
	return nil
}

func formatError(err error) string {
	if le, ok := err.(*lc3err.Error); ok {
		return fmt.Sprintf("lc3vm: %s", le.Error())
	}
	return fmt.Sprintf("lc3vm: %v", err)
}
