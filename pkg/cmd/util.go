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
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Get an expected flag, or panic if an error arises.
func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Get an expected uint flag, or panic if an error arises.
func getUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Get an expected string flag, or panic if an error arises.
func getString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Get an expected string-slice flag, or panic if an error arises.
func getStringSlice(cmd *cobra.Command, flag string) []string {
	r, err := cmd.Flags().GetStringSlice(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Configure log level according to the persistent verbosity flag.
func configureLogLevel(cmd *cobra.Command) {
	if getFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
}

// Construct the polynomial context described by the persistent flags,
// together with the variable names used for parsing and printing.
func parseContext(cmd *cobra.Command) (*mpoly.Context, []string) {
	var (
		names = getStringSlice(cmd, "vars")
		nvars = getUint(cmd, "nvars")
	)
	//
	if nvars == 0 {
		nvars = uint(len(names))
	}
	//
	if nvars == 0 {
		fmt.Println("no variables: set --vars or --nvars")
		os.Exit(2)
	}
	//
	ordering, ok := mpoly.ParseOrdering(getString(cmd, "ordering"))
	if !ok {
		fmt.Printf("unknown ordering %q\n", getString(cmd, "ordering"))
		os.Exit(2)
	}
	//
	return mpoly.NewContext(nvars, ordering), names
}

// Parse one polynomial expression, exiting with a suitable message on error.
func parsePoly(input string, names []string, ctx *mpoly.Context) *mpoly.Poly {
	p, err := mpoly.Parse(input, names, ctx)
	if err != nil {
		fmt.Printf("malformed polynomial %q: %s\n", input, err)
		os.Exit(2)
	}
	//
	return p
}
