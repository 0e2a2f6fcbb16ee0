package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/SionoiS/dit"
	"github.com/SionoiS/dit/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "dit",
	Short: "IPFS facade CLI",
	Long:  "CLI for content reads, name resolution, DAG fetches and pubsub over a local IPFS daemon.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ~/.config/dit/config.yaml)")
	rootCmd.PersistentFlags().String("api", "", "daemon API address (overrides the persisted one)")
	rootCmd.PersistentFlags().String("cache-dir", "", "local content cache directory (empty: no cache)")

	viper.BindPFlag(config.EndpointKey, rootCmd.PersistentFlags().Lookup("api"))
	viper.BindPFlag("cache_dir", rootCmd.PersistentFlags().Lookup("cache-dir"))
}

func initConfig() {
	if cfg := rootCmd.PersistentFlags().Lookup("config").Value.String(); cfg != "" {
		viper.SetConfigFile(cfg)
	} else {
		viper.AddConfigPath(config.Dir())
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("DIT")
	viper.AutomaticEnv()

	viper.ReadInConfig()
}

func configFile() string {
	if cfg := rootCmd.PersistentFlags().Lookup("config").Value.String(); cfg != "" {
		return cfg
	}
	return config.File()
}

// newClient resolves the persisted API address (writing the default back on
// first use) and connects to the daemon.
func newClient() (*dit.Client, error) {
	addr, err := config.Resolve(viper.GetViper(), configFile())
	if err != nil {
		return nil, err
	}

	var opts []dit.Option
	if dir := viper.GetString("cache_dir"); dir != "" {
		opts = append(opts, dit.WithCache(dir))
	}
	return dit.Connect(addr, opts...)
}
