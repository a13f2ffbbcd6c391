package cli

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/pakomoretlwe/profiler/internal/config"
	"github.com/pakomoretlwe/profiler/internal/dataset"
	"github.com/pakomoretlwe/profiler/internal/logging"
	"github.com/pakomoretlwe/profiler/internal/profile"
	"github.com/pakomoretlwe/profiler/internal/server"
)

const watchDebounce = 300 * time.Millisecond

func newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the profile dashboard",
		Long: `Serve starts the dashboard HTTP server.

The built-in profile can be replaced with a YAML file via --profile. With
--watch the file is reloaded whenever it changes, without a restart.`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}

	f := cmd.Flags()
	f.String("addr", config.DefaultAddr, "listen address (PORT is honoured when set)")
	f.String("mode", config.ModeRelease, "server mode: debug, release, test")
	f.String("profile", "", "YAML file overriding the built-in profile")
	f.Bool("watch", false, "reload the profile file when it changes")
	f.Uint64("seed", config.DefaultSeed, "seed for the synthetic emissions series")
	registerLimitFlags(cmd)

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := config.FromContext(cmd.Context())
	log := logging.FromContext(cmd.Context())

	store, err := profile.NewStore(cfg.Profile)
	if err != nil {
		return &ExitError{Code: 2, Err: err}
	}

	srv, err := server.New(server.Options{
		Mode:    cfg.Mode,
		Profile: store,
		Limits:  dataset.Limits{MaxBytes: cfg.MaxUploadBytes, MaxRows: cfg.MaxRows},
		Seed:    cfg.Seed,
		Logger:  log,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Run(ctx, cfg.Addr) })
	if cfg.Watch {
		g.Go(func() error { return store.Watch(ctx, watchDebounce, log) })
	}

	return g.Wait()
}
