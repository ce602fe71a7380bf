// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"os"

	"github.com/consensys/go-mpoly/pkg/mpoly"
	"github.com/spf13/cobra"
)

// gcdCmd represents the gcd command
var gcdCmd = &cobra.Command{
	Use:   "gcd [flags] poly poly",
	Short: "Compute the greatest common divisor of two polynomials.",
	Long: `Compute the GCD of two polynomials, normalised to be primitive with a
positive leading coefficient.  With --cofactors, both exact cofactors
are printed as well.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		configureLogLevel(cmd)
		//
		ctx, names := parseContext(cmd)
		//
		var (
			a = parsePoly(args[0], names, ctx)
			b = parsePoly(args[1], names, ctx)
			g = mpoly.NewPoly(ctx)
		)
		//
		if getFlag(cmd, "cofactors") {
			var (
				abar = mpoly.NewPoly(ctx)
				bbar = mpoly.NewPoly(ctx)
			)
			//
			mpoly.GCDCofactors(g, abar, bbar, a, b, ctx)
			fmt.Printf("gcd:      %s\n", g.Format(names, ctx))
			fmt.Printf("cofactor: %s\n", abar.Format(names, ctx))
			fmt.Printf("cofactor: %s\n", bbar.Format(names, ctx))
			//
			return
		}
		//
		g.GCD(a, b, ctx)
		fmt.Println(g.Format(names, ctx))
	},
}

func init() {
	rootCmd.AddCommand(gcdCmd)
	gcdCmd.Flags().Bool("cofactors", false, "also print both cofactors")
}
