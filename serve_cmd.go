package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/eburon/echo-lexicon/internal/lexicon"
	"github.com/eburon/echo-lexicon/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve lookups and annotation over HTTP",
	Long: paragraph(fmt.Sprintf("\n%s the lexicon API. With --watch, lexicon files are reloaded when they change on disk, including words appended by augment; otherwise the running lexicons stay as loaded until POST /reload.",
		keyword("Serve"))),
	Example: paragraph("echo-lexicon serve --addr :8765 --watch"),
	Args:    cobra.NoArgs,
	RunE:    runServe,
}

func init() {
	flags := serveCmd.Flags()
	flags.String("addr", "127.0.0.1:8765", "listen address")
	flags.Bool("watch", false, "reload lexicons when files change, augment runs included")
	_ = viper.BindPFlag("serve.addr", flags.Lookup("addr"))
	_ = viper.BindPFlag("serve.watch", flags.Lookup("watch"))
}

func runServe(*cobra.Command, []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	m, err := a.manager()
	if err != nil {
		return err
	}

	// Prune the corpus cache while the server runs.
	c, err := a.corpusCache(true)
	if err != nil {
		return err
	}
	defer c.Close() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	h := server.NewHandler(m,
		server.WithMaxTextLength(a.env.MaxTextLength),
		server.WithLogger(a.logger.WithPrefix("http")),
	)
	srv := server.New(viper.GetString("serve.addr"), h, a.logger.WithPrefix("http"))

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Run(ctx) })
	if viper.GetBool("serve.watch") {
		g.Go(func() error { return m.Watch(ctx, lexicon.DefaultWatchDebounce) })
	}
	return g.Wait()
}
