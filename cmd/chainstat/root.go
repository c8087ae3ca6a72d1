// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/chainstat/config"
)

// Profiling modes accepted by --profile.
const (
	profileNone = ""
	profileCPU  = "cpu"
	profileMem  = "mem"
)

// app carries the state shared by every subcommand.
type app struct {
	out    io.Writer
	errOut io.Writer

	rt         config.Runtime
	profile    string
	profileDir string

	log     *slog.Logger
	stopper interface{ Stop() }
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut, rt: config.Default().Runtime}

	root := &cobra.Command{
		Use:          "chainstat",
		Short:        "Monte Carlo radial distributions of single polymer chains",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	f := root.PersistentFlags()
	f.StringVar(&a.rt.LogLevel, "log-level", a.rt.LogLevel, "debug, info, warn or error")
	f.StringVar(&a.rt.LogFormat, "log-format", a.rt.LogFormat, "text or json")
	f.StringVar(&a.profile, "profile", profileNone, "write a cpu or mem profile")
	f.StringVar(&a.profileDir, "profile-dir", ".", "directory for profile output")

	root.AddCommand(
		newSampleCmd(a),
		newBatchCmd(a),
		newMomentsCmd(a),
	)
	return root
}

// setup applies environment overrides, builds the logger and starts
// profiling. Flags given explicitly win over the environment.
func (a *app) setup(cmd *cobra.Command) error {
	flags := cmd.Flags()
	rt := a.rt
	if err := config.ApplyEnv(&rt); err != nil {
		return err
	}
	if !flags.Changed("log-level") {
		a.rt.LogLevel = rt.LogLevel
	}
	if !flags.Changed("log-format") {
		a.rt.LogFormat = rt.LogFormat
	}
	a.rt.OutputDir, a.rt.Workers = rt.OutputDir, rt.Workers
	a.log = a.rt.NewLogger(a.errOut)

	switch a.profile {
	case profileNone:
	case profileCPU:
		a.stopper = profile.Start(profile.CPUProfile, profile.ProfilePath(a.profileDir), profile.Quiet)
	case profileMem:
		a.stopper = profile.Start(profile.MemProfile, profile.ProfilePath(a.profileDir), profile.Quiet)
	default:
		return fmt.Errorf("unknown profile mode %q", a.profile)
	}
	return nil
}

// run wraps a subcommand body so profiling stops even when it fails.
func (a *app) run(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		defer a.teardown()
		return fn(cmd, args)
	}
}

func (a *app) teardown() {
	if a.stopper != nil {
		a.stopper.Stop()
		a.stopper = nil
	}
}
