// Copyright 2021 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/matrixorigin/motype/pkg/config"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configFile string
	cfg := config.NewConfig()

	root := &cobra.Command{
		Use:          "motype",
		Short:        "Exercise the pluggable scalar types and their vectorized predicates",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configFile != "" {
				if err := config.LoadConfigFromFile(configFile, cfg); err != nil {
					return err
				}
			}
			return cfg.Apply()
		},
	}
	root.PersistentFlags().StringVarP(&configFile, "config", "c", "", "toml configuration file")

	root.AddCommand(demoCommand(), scanCommand(cfg), tidsCommand())
	return root
}
