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

// divCmd represents the div command
var divCmd = &cobra.Command{
	Use:   "div [flags] dividend divisor",
	Short: "Divide one polynomial by another.",
	Long: `Divide the first polynomial by the second, printing quotient and
remainder.  With --exact, only certified exact divisions succeed.`,
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
			q = mpoly.NewPoly(ctx)
			r = mpoly.NewPoly(ctx)
		)
		//
		if b.IsZero() {
			fmt.Println("division by zero")
			os.Exit(1)
		}
		//
		if getFlag(cmd, "exact") {
			if !mpoly.Divides(q, a, b, ctx) {
				fmt.Println("not divisible")
				os.Exit(1)
			}
			//
			fmt.Println(q.Format(names, ctx))
			//
			return
		}
		//
		mpoly.DivRem(q, r, a, b, ctx)
		fmt.Printf("quotient:  %s\n", q.Format(names, ctx))
		fmt.Printf("remainder: %s\n", r.Format(names, ctx))
	},
}

func init() {
	rootCmd.AddCommand(divCmd)
	divCmd.Flags().Bool("exact", false, "fail unless the division is exact")
}
