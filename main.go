package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/whirl-cli/whirl/cmd"
	"github.com/whirl-cli/whirl/internal/build"
)

var version = "dev"

func init() {
	build.Version = version
}

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)

		// Propagate the wrapped command's exit code.
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		os.Exit(1)
	}
}
