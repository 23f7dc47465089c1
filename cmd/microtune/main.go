// Command microtune stands in for an UTAU resampler and retunes each note
// before handing it to the real one.
//
// Usage:
//
//	microtune [flags] in_file out_file pitch velocity flags offset length consonant cutoff volume modulation tempo pitchbend
//
// The resampler path, launcher and tuning mode are read from microtune.yaml
// next to the executable:
//
//	resampler: C:\Program Files (x86)\UTAU\resampler.exe
//	launcher: [wine]
//	mode: edo31          # or: scale
//	scale:
//	  edo: 19            # or: file: meantone.scl
//	  center_note: 69
//
// In edo31 mode the pitch bend is shifted so every 12-TET key sounds at its
// 31-EDO pitch and a Z flag adds whole 31-EDO steps. In scale mode the keys
// are mapped onto the configured scale and the rendered note is chosen anew.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{exec: execResampler}
	err := newRootCmd(a).ExecuteContext(ctx)
	if err == nil {
		return
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		stop()
		os.Exit(exitErr.ExitCode())
	}
	fmt.Fprintf(os.Stderr, "microtune: %v\n", err)
	stop()
	os.Exit(1)
}
