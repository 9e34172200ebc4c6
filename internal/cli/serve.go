package cli

import (
	"clearday.dev/clearday/internal/constants"
	"clearday.dev/clearday/internal/server"
)

type ServeCmd struct {
	Addr   string `help:"Listen address." default:":3001"`
	Static string `help:"Directory of static assets to serve." type:"path"`
	Debug  bool   `help:"Verbose request logging."`
}

func (c *ServeCmd) Run(ctx *Context) error {
	addr := c.Addr
	if addr == "" {
		addr = constants.DefaultServeAddr
	}
	srv := server.New(server.Config{
		Addr:      addr,
		StaticDir: c.Static,
		Debug:     c.Debug,
	})
	return srv.Run()
}
