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
	"runtime/debug"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Version is filled when building with make, but *not* when installing via "go
// install".
var Version string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "go-mpoly",
	Short: "A toolbox for exact multivariate polynomial arithmetic.",
	Long: `A toolbox for exact arithmetic on sparse multivariate polynomials over
arbitrary-precision integers: expansion, division, GCD and Gröbner bases.`,
	Run: func(cmd *cobra.Command, args []string) {
		if getFlag(cmd, "version") {
			fmt.Print("go-mpoly ")
			if Version != "" {
				// Built via "make"
				fmt.Printf("%s", Version)
			} else if info, ok := debug.ReadBuildInfo(); ok {
				// Built via "go install"
				fmt.Printf("%s", info.Main.Version)
			} else {
				// Unknown, perhaps "go run"
				fmt.Printf("(unknown version)")
			}
			fmt.Println()
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	configureLogging()
	//
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// configureLogging picks a log format suited to where stderr goes: colours
// for an interactive terminal, plain timestamps otherwise.
func configureLogging() {
	interactive := term.IsTerminal(int(os.Stderr.Fd()))
	//
	log.SetFormatter(&log.TextFormatter{
		ForceColors:   interactive,
		DisableColors: !interactive,
		FullTimestamp: !interactive,
	})
}

func init() {
	rootCmd.Flags().Bool("version", false, "Report version of this executable")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().StringSlice("vars", nil, "comma-separated variable names (defaults to x0,x1,...)")
	rootCmd.PersistentFlags().Uint("nvars", 0, "number of variables (defaults to the number of names given)")
	rootCmd.PersistentFlags().String("ordering", "degrevlex", "monomial ordering: lex, deglex or degrevlex")
}
