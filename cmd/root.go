// Copyright © 2019 NAME HERE <EMAIL ADDRESS>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "stix-tmrate",
	Short: "Estimate STIX telemetry packet sizes and downlink rates",
	Long: `stix-tmrate computes the bit-level sizes of STIX telemetry product
structures from the TMTC ICD and projects the packet counts and daily
telemetry volume they imply for a given integration cadence.

No packet bytes are read or written; everything is size prediction.`,
}

// Verbose enables extra diagnostic output in subcommands
var Verbose bool

var logLevel string

var logger hclog.Logger

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initLogger)

	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")
}

func initLogger() {
	logger = hclog.New(&hclog.LoggerOptions{
		Name:  "stix-tmrate",
		Level: hclog.LevelFromString(logLevel),
	})
}
