package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// logger writes diagnostics to stderr; report output goes to stdout unlogged.
var logger = zerolog.Nop()

func configureLogging() {
	level := zerolog.WarnLevel
	if viper.GetBool("verbose") {
		level = zerolog.DebugLevel
	}

	writer := zerolog.ConsoleWriter{Out: os.Stderr}
	logger = zerolog.New(writer).Level(level).With().Timestamp().Logger()
}
