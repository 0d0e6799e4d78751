package main

import (
	"os"

	"github.com/mexus/range-perf/cmd"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Console logs on stderr; the benchmark report owns stdout
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	cmd.Execute()
}
