package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jsphweid/fretdex/api"
	"github.com/jsphweid/fretdex/constants"
	"github.com/jsphweid/fretdex/util"
)

var (
	serveAddr    string
	serveWatch   bool
	serveOrigins string
)

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", constants.GetAddr(), "listen address")
	serveCmd.Flags().BoolVar(&serveWatch, "watch", false, "reload the chords db when the file changes")
	serveCmd.Flags().StringVar(&serveOrigins, "origins", "", "comma separated CORS origins (default FRETDEX_ALLOWED_ORIGINS or *)")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the fretboard API",
	Long:  `Serves chords, scales and SVG fretboard diagrams over HTTP for the browser front end.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return serve(ctx)
	},
}

func serve(ctx context.Context) error {
	src, err := openSource()
	if err != nil {
		return err
	}
	if serveWatch {
		if err := src.Watch(ctx); err != nil {
			return err
		}
		logger.Info("Watching chords db", zap.String("path", src.Path()))
	}

	origins := util.SplitList(serveOrigins)
	if len(origins) == 0 {
		origins = constants.GetAllowedOrigins()
	}

	server := &http.Server{
		Addr:              serveAddr,
		Handler:           api.NewServer(src, logger).Handler(origins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Listening", zap.String("addr", serveAddr))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
