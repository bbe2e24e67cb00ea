package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"shoplist/pkg/client"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("SHOPLIST")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:           "shoplist",
		Short:         "Manage a shopping list from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("api-url", "http://localhost:3000", "base URL of the shoplist API (SHOPLIST_API_URL)")
	root.PersistentFlags().String("lang", "en", "language for server messages (SHOPLIST_LANG)")
	root.PersistentFlags().Duration("timeout", 10*time.Second, "request timeout (SHOPLIST_TIMEOUT)")
	_ = v.BindPFlags(root.PersistentFlags())

	newClient := func() *client.Client {
		return client.New(
			v.GetString("api-url"),
			client.WithLanguage(v.GetString("lang")),
			client.WithTimeout(v.GetDuration("timeout")),
		)
	}

	root.AddCommand(newItemsCommand(newClient), newCategoriesCommand(newClient))
	return root
}
