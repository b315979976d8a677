package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile   string
	sourceDSN string
	targetDSN string
)

var RootCmd = &cobra.Command{
	Use:   "db-preflight",
	Short: "Pre-flight validation for data migration jobs",
	Long: `
  ____  ____    ____  ____  _____ _____ _     ___ ____ _   _ _____
 |  _ \| __ )  |  _ \|  _ \| ____|  ___| |   |_ _/ ___| | | |_   _|
 | | | |  _ \  | |_) | |_) |  _| | |_  | |    | | |  _| |_| | | |
 | |_| | |_) | |  __/|  _ <| |___|  _| | |___ | | |_| |  _  | | |
 |____/|____/  |_|   |_| \_\_____|_|   |_____|___\____|_| |_| |_|

DB PREFLIGHT 🛫 - Migration Environment Validator
`,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Define flags
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./db-preflight.yaml)")
	RootCmd.PersistentFlags().StringVar(&sourceDSN, "source-dsn", "", "source Data Source Name (DSN)")
	RootCmd.PersistentFlags().StringVar(&targetDSN, "target-dsn", "", "target Data Source Name (DSN)")

	// Bind DSN flags to viper (Flag > Config > Env)
	viper.BindPFlag("source.dsn", RootCmd.PersistentFlags().Lookup("source-dsn"))
	viper.BindPFlag("target.dsn", RootCmd.PersistentFlags().Lookup("target-dsn"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// 1. Executable Directory (Priority 1)
		ex, err := os.Executable()
		if err == nil {
			exePath := filepath.Dir(ex)
			viper.AddConfigPath(exePath)
		}

		// 2. Current Directory (Priority 2)
		viper.AddConfigPath(".")

		viper.SetConfigName("db-preflight")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}
