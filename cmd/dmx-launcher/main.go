package main

import (
	"os"

	"github.com/kskskav/dmx/internal/cli"
	"github.com/kskskav/dmx/internal/errors"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}
