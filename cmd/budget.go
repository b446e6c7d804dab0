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

	"github.com/spf13/cobra"

	"github.com/samaloney/stix-tmrate/rate"
)

// budgetCmd represents the budget command
var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Project the daily telemetry volume for a set of products",
	Long: `Estimate packets per day and total telemetry volume for each
product in a scenario, then sum the volumes into an aggregate downlink
budget.  Without --scenario the quick look set with the ICD example
parameters and cadences is used.

A product whose estimate fails (for example a cadence that does not tile
the day) is reported and skipped; the remaining products are unaffected.`,
	Run: func(cmd *cobra.Command, args []string) {
		runBudget()
	},
}

var scenarioFile string

func init() {
	rootCmd.AddCommand(budgetCmd)

	budgetCmd.Flags().StringVarP(&scenarioFile, "scenario", "s", "", "YAML scenario file; defaults to the ICD quick look example set")
}

func runBudget() {
	scenario := rate.DefaultScenario()
	if scenarioFile != "" {
		s, err := rate.LoadScenario(scenarioFile)
		if err != nil {
			logger.Error("cannot load scenario", "error", err)
			return
		}
		scenario = s
	}

	var totalBitsPerDay float64
	for _, entry := range scenario.Products {
		est, err := entry.Compute()
		if err != nil {
			logger.Error("estimate failed", "product", entry.Product, "error", err)
			continue
		}
		if Verbose {
			logger.Info("estimated", "product", est.Product, "cadence", entry.IntegrationSec, "records/day", est.RecordsPerDay)
		}
		fmt.Printf("%-20s capacity=%d fixed=%d remaining=%d variable=%d records/packet=%d free=%d packets/day=%.3f\n",
			est.Product, est.CapacityBits, est.FixedBits, est.SpaceBits,
			est.VariableBits, est.RecordsPerPacket, est.RemainderBits, est.PacketsPerDay)
		totalBitsPerDay += est.BitsPerDay
	}

	fmt.Printf("total: %.0f bits/day (%.2f bit/s)\n", totalBitsPerDay, totalBitsPerDay/rate.SecondsPerDay)
}
