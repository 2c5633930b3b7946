package app

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/algosender/algosender/cmd/algosender-cli/app/account"
	"github.com/algosender/algosender/cmd/algosender-cli/app/send"
	"github.com/algosender/algosender/cmd/algosender-cli/app/status"
)

var RootCmd = &cobra.Command{
	Use:   "algosender-cli",
	Short: "CLI tool to send and track Algorand TestNet payments",
}

func init() {
	var err error
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().String("algod", "https://testnet-api.algonode.cloud", "Address of the algod REST API")
	err = viper.BindPFlag("algod", RootCmd.PersistentFlags().Lookup("algod"))
	if err != nil {
		log.Fatal(err)
	}

	RootCmd.PersistentFlags().String("algodToken", "", "API token for the algod REST API")
	err = viper.BindPFlag("algodToken", RootCmd.PersistentFlags().Lookup("algodToken"))
	if err != nil {
		log.Fatal(err)
	}

	RootCmd.PersistentFlags().String("indexer", "https://testnet-idx.algonode.cloud", "Address of the indexer REST API")
	err = viper.BindPFlag("indexer", RootCmd.PersistentFlags().Lookup("indexer"))
	if err != nil {
		log.Fatal(err)
	}

	RootCmd.PersistentFlags().String("indexerToken", "", "API token for the indexer REST API")
	err = viper.BindPFlag("indexerToken", RootCmd.PersistentFlags().Lookup("indexerToken"))
	if err != nil {
		log.Fatal(err)
	}

	RootCmd.PersistentFlags().String("logLevel", "INFO", "Log level (DEBUG, INFO, WARN, ERROR)")
	err = viper.BindPFlag("logLevel", RootCmd.PersistentFlags().Lookup("logLevel"))
	if err != nil {
		log.Fatal(err)
	}

	RootCmd.AddCommand(account.Cmd)
	RootCmd.AddCommand(send.Cmd)
	RootCmd.AddCommand(status.Cmd)
}

func Execute() error {
	return RootCmd.Execute()
}

func initConfig() {
	viper.SetEnvPrefix("ALGOSENDER_CLI")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetConfigName("algosender-cli")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Printf("failed to read config file: %v\n", err)
		}
	}
}
