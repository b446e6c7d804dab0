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
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samaloney/stix-tmrate/tm"
)

// sizeCmd represents the size command
var sizeCmd = &cobra.Command{
	Use:   "size <product>...",
	Short: "Compute fixed and per-record sizes for one or more products",
	Long: `Compute the fixed header and per-record bit sizes of the named
product structures for the given structural parameters.  Product names are
those listed by the products command.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) < 1 {
			return errors.New("requires at least one product name")
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		printSizes(args)
	},
}

var (
	numSamples       int
	numEnergies      int
	numPixelSets     int
	numDetectorMasks int
)

func init() {
	rootCmd.AddCommand(sizeCmd)

	sizeCmd.Flags().IntVar(&numSamples, "samples", 1, "number of data samples per structure")
	sizeCmd.Flags().IntVar(&numEnergies, "energies", 1, "number of energy bins or energy groups")
	sizeCmd.Flags().IntVar(&numPixelSets, "pixel-sets", 1, "number of pixel sets (x-ray level 1/2)")
	sizeCmd.Flags().IntVar(&numDetectorMasks, "detector-masks", 1, "number of detector masks")
}

func printSizes(names []string) {
	params := tm.Params{
		Samples:       numSamples,
		Energies:      numEnergies,
		PixelSets:     numPixelSets,
		DetectorMasks: numDetectorMasks,
	}

	for _, name := range names {
		product, ok := tm.Lookup(name)
		if !ok {
			logger.Error("unknown product", "product", name)
			continue
		}
		size := product.Size(params)
		perRecord := product.Size(tm.Params{
			Samples:       1,
			Energies:      params.Energies,
			PixelSets:     params.PixelSets,
			DetectorMasks: params.DetectorMasks,
		}).Variable
		fmt.Printf("%-20s ssid=%d fixed=%d bits, %d bits per record (%d records = %d bits)\n",
			product.Name, product.SSID, size.Fixed, perRecord,
			params.Samples, size.Fixed+size.Variable)
		if product.XrayUser {
			fmt.Printf("%-20s plus %d bits common x-ray user-data header\n", "", tm.CommonXrayUserBits)
		}
	}
}
