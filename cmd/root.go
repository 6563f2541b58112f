/*
 * Copyright (c) YugabyteDB, Inc.
 */

package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/yugabyte/yugabyte-db/managed/yba-console/cmd/backup"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/cmd/provider"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/cmd/table"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/cmd/task"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/cmd/universe"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/client"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/formatter"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/log"

	"github.com/common-nighthawk/go-figure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile      string
	cfgDirectory string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use: "yba-console",
	Short: "yba-console - Admin console for the universes, tables and providers " +
		"of YugabyteDB Anywhere.",
	Long: `
	YugabyteDB Anywhere is a control plane for managing YugabyteDB universes
	across hybrid and multi-cloud environments. yba-console gives access to the
	universes, their tables and backups, the cloud providers and the tasks of a
	customer, from the command line or served over HTTP.`,

	Run: func(cmd *cobra.Command, args []string) {
		myFigure := figure.NewFigure("yba-console", "", true)
		myFigure.Print()
		logrus.Printf("\n")
		cmd.Help()
	},

	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if strings.HasPrefix(cmd.CommandPath(), "yba-console completion") {
			return
		}
	},
}

// called on module init
func init() {
	cobra.OnInitialize(initConfig)
	cobra.EnableCaseInsensitive = true

	setDefaults()
	rootCmd.PersistentFlags().SortFlags = false
	rootCmd.PersistentFlags().StringVar(&cfgDirectory, "directory", "",
		"Directory containing the yba-console configuration file '.yba-console.yaml'. "+
			"Defaults to '$HOME/.yba-console/'.")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"Full path to a specific configuration file for yba-console. "+
			"If provided, this takes precedence over the directory specified via --directory. "+
			"Defaults to '$HOME/.yba-console/.yba-console.yaml'.")
	rootCmd.PersistentFlags().StringP("host", "H", "http://localhost:9000",
		"YugabyteDB Anywhere Host")
	rootCmd.PersistentFlags().StringP("apiToken", "a", "", "YugabyteDB Anywhere api token.")
	rootCmd.PersistentFlags().String("api-root", client.DefaultAPIRoot,
		"Path prefix of the YugabyteDB Anywhere REST API.")
	rootCmd.PersistentFlags().String("customer-uuid", "",
		"Customer UUID. Resolved from the api token when not set.")
	rootCmd.PersistentFlags().StringP("output", "o", formatter.TableFormatKey,
		"Select the desired output format. Allowed values: table, json, pretty.")
	rootCmd.PersistentFlags().StringP("logLevel", "l", "info",
		"Select the desired log level format. Allowed values: debug, info, warn, error, fatal.")
	rootCmd.PersistentFlags().Bool("debug", false, "Use debug mode, same as --logLevel debug.")
	rootCmd.PersistentFlags().
		Bool("disable-color", false, "Disable colors in output. (default false)")
	rootCmd.PersistentFlags().Bool("wait", true,
		"Wait until the task is completed, otherwise it will exit immediately.")
	rootCmd.PersistentFlags().Duration("timeout", 7*24*time.Hour,
		"Wait command timeout, example: 5m, 1h.")
	rootCmd.PersistentFlags().Bool("insecure", false,
		"Allow insecure connections to YugabyteDB Anywhere."+
			" Value ignored for http endpoints. Defaults to false for https.")
	rootCmd.PersistentFlags().String("ca-cert", "",
		"CA certificate file path for secure connection to YugabyteDB Anywhere.")

	//Bind peristents flags to viper
	for _, name := range []string{
		"host", "apiToken", "api-root", "customer-uuid", "output", "logLevel", "debug",
		"disable-color", "wait", "timeout", "insecure", "ca-cert",
	} {
		viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}

	rootCmd.AddCommand(universe.UniverseCmd)
	rootCmd.AddCommand(table.TableCmd)
	rootCmd.AddCommand(backup.BackupCmd)
	rootCmd.AddCommand(provider.ProviderCmd)
	rootCmd.AddCommand(task.TaskCmd)
	rootCmd.AddCommand(serveCmd)

	addGroupsCmd(rootCmd)
}

// Execute commands
func Execute(version string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate("YugabyteDB Anywhere console (yba-console) version: {{.Version}}\n")
	if err := rootCmd.Execute(); err != nil {
		// Set log level and formatter for this error
		log.SetLogLevel(viper.GetString("logLevel"), viper.GetBool("debug"))
		logrus.Fatal(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
	}
}

func setDefaults() {
	viper.SetDefault("host", "http://localhost:9000")
	viper.SetDefault("api-root", client.DefaultAPIRoot)
	viper.SetDefault("output", formatter.TableFormatKey)
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("debug", false)
	viper.SetDefault("disable-color", false)
	viper.SetDefault("wait", true)
	viper.SetDefault("timeout", time.Duration(7*24*time.Hour))
	viper.SetDefault("insecure", false)
	viper.SetDefault("ca-cert", "")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else if cfgDirectory != "" {
		// Check if the directory exists
		if stat, err := os.Stat(cfgDirectory); err == nil && stat.IsDir() {
			viper.SetConfigType("yaml")
			viper.SetConfigFile(filepath.Join(cfgDirectory, ".yba-console.yaml"))
		} else {
			logrus.Fatalf("%s",
				formatter.Colorize(
					"Provided configuration directory does not exist: "+cfgDirectory,
					formatter.RedColor,
				))
		}
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)
		configDir := filepath.Join(home, ".yba-console")
		os.MkdirAll(configDir, 0o700)
		viper.AddConfigPath(configDir)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".yba-console")
		viper.SetConfigFile(filepath.Join(configDir, ".yba-console.yaml"))
	}

	//Will check every environment variable starting with YBA_
	viper.SetEnvPrefix("yba")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	//Read all enviromnent variable that match YBA_ENVNAME
	viper.AutomaticEnv() // read in environment variables that match
	// Set log level and formatter
	if err := log.SetLogLevel(viper.GetString("logLevel"), viper.GetBool("debug")); err != nil {
		logrus.Fatal(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
	}
	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		logrus.Debugf("Using config file: %s\n", viper.ConfigFileUsed())
	}
}

func addGroupsCmd(rootCmd *cobra.Command) {
	rootCmd.AddGroup(
		&cobra.Group{
			ID:    "universe",
			Title: "Universe Operation Commands",
		},
	)
	universe.UniverseCmd.GroupID = "universe"
	table.TableCmd.GroupID = "universe"
	backup.BackupCmd.GroupID = "universe"
	task.TaskCmd.GroupID = "universe"

	rootCmd.AddGroup(
		&cobra.Group{
			ID:    "integration",
			Title: "Integration Commands",
		},
	)
	provider.ProviderCmd.GroupID = "integration"

	rootCmd.AddGroup(
		&cobra.Group{
			ID:    "console",
			Title: "Console Commands",
		},
	)
	serveCmd.GroupID = "console"
}
