package cmd

import (
	"context"
	"flag"
	"log"
	"net/http"

	"github.com/Ghiles-CTO/fundfees/api"
	"github.com/google/subcommands"
)

// serveCmd holds the flags for the 'serve' subcommand.
type serveCmd struct {
	addr string
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serve the fee calculators over HTTP" }
func (*serveCmd) Usage() string {
	return `ffc serve [-addr <host:port>]

  Exposes the fee calculators and the invoice validator as a JSON API for
  invoice-generation endpoints and fee-accrual jobs.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.addr, "addr", ":8080", "Listen address")
}

func (c *serveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	log.Printf("fee API listening on %s", c.addr)
	if err := http.ListenAndServe(c.addr, api.NewRouter()); err != nil {
		return fail("server error: %v", err)
	}
	return subcommands.ExitSuccess
}
