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

	"github.com/consensys/go-mpoly/pkg/groebner"
	"github.com/spf13/cobra"
)

// groebnerCmd represents the groebner command
var groebnerCmd = &cobra.Command{
	Use:   "groebner [flags] poly...",
	Short: "Compute a Gröbner basis for the given generators.",
	Long: `Run Buchberger's algorithm on the given generators under the configured
ordering.  Guards against blow-up can be set with --max-basis,
--max-terms and --max-coeff-bits; the run aborts when any trips.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		configureLogLevel(cmd)
		//
		ctx, names := parseContext(cmd)
		gens := groebner.NewBasis(ctx)
		//
		for _, arg := range args {
			gens.Append(parsePoly(arg, names, ctx))
		}
		//
		limits := groebner.Limits{
			MaxBasis:     getUint(cmd, "max-basis"),
			MaxPolyLen:   getUint(cmd, "max-terms"),
			MaxCoeffBits: getUint(cmd, "max-coeff-bits"),
		}
		//
		basis, err := groebner.BuchbergerWithLimits(gens, limits)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		//
		if getFlag(cmd, "reduce") {
			groebner.AutoReduce(basis)
		}
		//
		for i := uint(0); i < basis.Len(); i++ {
			fmt.Println(basis.Get(i).Format(names, ctx))
		}
	},
}

func init() {
	rootCmd.AddCommand(groebnerCmd)
	groebnerCmd.Flags().Bool("reduce", false, "autoreduce the resulting basis")
	groebnerCmd.Flags().Uint("max-basis", 0, "abort when the basis grows past this size (0 = unlimited)")
	groebnerCmd.Flags().Uint("max-terms", 0, "abort when a reduced S-polynomial has more terms (0 = unlimited)")
	groebnerCmd.Flags().Uint("max-coeff-bits", 0, "abort when a coefficient needs more bits (0 = unlimited)")
}
