package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fxsml/rxchain/config"
)

func newEnvCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "List the environment variables rxchain reads",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range sections {
				for _, key := range config.Keys(name, a.settings.section(name)) {
					if v, ok := os.LookupEnv(key); ok {
						fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", key, v)
						continue
					}
					fmt.Fprintln(cmd.OutOrStdout(), key)
				}
			}
		},
	}
}
