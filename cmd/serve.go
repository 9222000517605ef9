/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/valpere/promptran/internal/catalog"
	"github.com/valpere/promptran/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the translation HTTP API",
	Long: `Run the translation HTTP API.

Endpoints:
  POST /api/translate   {"text","from","to","options":{"dialect","tone","plurality"}}
  GET  /api/options     suggested dialects, tones and pluralities
  GET  /healthz         liveness and configured provider`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		svc, err := buildService(ctx)
		if err != nil {
			return err
		}

		srv := &http.Server{
			Addr:              cfg.Server.Addr,
			Handler:           server.New(svc, catalog.Default(), logger.Named("http")).Handler(),
			ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		}

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			logger.Info("listening",
				zap.String("addr", cfg.Server.Addr),
				zap.String("provider", svc.Provider()),
				zap.String("model", svc.Model()))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server failed: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
		return g.Wait()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", ":8080", "Listen address")
	_ = v.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
}
