// Copyright 2024 - 2025, the Embedded Rust 101 contributors
// SPDX-License-Identifier: AGPL-3.0-only

package audit

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetDefaultLogger installs the console logger used until the configuration
// is loaded. Every line carries sys, the name of the running command.
//
// Colour is used only when stderr is a terminal and NO_COLOR is unset.
func SetDefaultLogger(sys string) {
	_, noColor := os.LookupEnv("NO_COLOR")
	color := !noColor && isatty.IsTerminal(os.Stderr.Fd())

	log.Logger = newStartupLogger(os.Stderr, sys, color)
}

func newStartupLogger(w io.Writer, sys string, color bool) zerolog.Logger {
	out := zerolog.ConsoleWriter{Out: w, NoColor: !color, TimeFormat: time.TimeOnly}

	return zerolog.New(out).With().Timestamp().Str("sys", sys).Logger()
}
