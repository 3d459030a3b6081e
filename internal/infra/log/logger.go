// Package logs builds the process-wide slog.Logger from configuration.
package logs

import (
	"log/slog"
	"os"
	"strings"

	"fogon/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var levelNames = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Params holds dependencies for the logger, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
}

// New builds the logger. JSON output is the default; the pretty flag
// switches to the text handler for local runs.
func New(params Params) (*slog.Logger, error) {
	name := params.Config.Env.Log.Level
	level, ok := levelNames[strings.ToLower(name)]
	if !ok {
		return nil, errors.Errorf("unknown log level: %s", name)
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if params.Config.Env.Log.Pretty {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return slog.New(handler), nil
}
