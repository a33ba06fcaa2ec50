// Command leximind looks English words up in a public dictionary, adds AI
// insights and keeps a short search history on this device. It also serves
// the same operations as a loopback JSON API (leximind serve).
//
// Exit codes: 0 = success, 1 = error (including a failed lookup).
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/leximind/internal/app"
	"github.com/heartmarshall/leximind/internal/transport/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Execute(ctx, buildEnv, app.Version)
	stop()
	os.Exit(code)
}

func buildEnv(ctx context.Context, opts cli.Options) (*cli.Env, error) {
	a, err := app.Build(ctx, app.Options{ConfigPath: opts.ConfigPath, Ephemeral: opts.Ephemeral})
	if err != nil {
		return nil, err
	}
	return &cli.Env{
		Lookup:  a.Lookup,
		History: a.Sessions,
		Themes:  a.Sessions,
		Auth:    a.Auth,
		Serve:   a.Serve,
		Close:   a.Close,
	}, nil
}
