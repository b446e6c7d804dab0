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

	"github.com/samaloney/stix-tmrate/tm"
)

// productsCmd represents the products command
var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "List the telemetry products in the catalog",
	Run: func(cmd *cobra.Command, args []string) {
		for _, p := range tm.Products {
			if p.XrayUser {
				fmt.Printf("%-20s ssid=%-3d x-ray user data\n", p.Name, p.SSID)
				continue
			}
			fmt.Printf("%-20s ssid=%d\n", p.Name, p.SSID)
		}
	},
}

func init() {
	rootCmd.AddCommand(productsCmd)
}
