// Package autoload initializes the global logger from the environment on
// import. Blank-import it from main.
package autoload

import (
	configx "github.com/bpeddi/simple-ai-agent/pkg/config"
	logx "github.com/bpeddi/simple-ai-agent/pkg/logger"
)

func init() {
	logx.Init(*configx.MustNew[logx.Config]("LOG"))
}
