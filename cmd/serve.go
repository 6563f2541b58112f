/*
 * Copyright (c) YugabyteDB, Inc.
 */

package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/cmd/util"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/log"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/server"
)

// serveCmd runs the console backend
var serveCmd = &cobra.Command{
	Use:     "serve",
	Short:   "Serve the YugabyteDB Anywhere console over HTTP",
	Long:    "Serve the console state, universe panels and operations over HTTP",
	Example: `yba-console serve --port 15480`,
	Run: func(cmd *cobra.Command, args []string) {
		if logFile := viper.GetString("log-file"); logFile != "" {
			closer := log.SetLogFile(logFile)
			defer closer.Close()
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		console := util.MustConsole(ctx)
		port, err := cmd.Flags().GetInt("port")
		if err != nil {
			util.Fatal(err)
		}
		srv := server.New(server.Config{
			Port:         port,
			RootURL:      console.API.RootURL(),
			CustomerUUID: console.API.CustomerUUID,
		}, console.API, console.Store)
		if err := srv.Start(ctx); err != nil {
			util.Fatal(err)
		}
		logrus.Info("Console stopped\n")
	},
}

func init() {
	serveCmd.Flags().SortFlags = false

	serveCmd.Flags().IntP("port", "p", server.DefaultPort,
		"[Optional] Port the console listens on.")
	serveCmd.Flags().String("log-file", "",
		"[Optional] Also write logs to this file, rotated when it grows large.")
	viper.BindPFlag("log-file", serveCmd.Flags().Lookup("log-file"))
}
