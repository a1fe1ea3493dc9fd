/*
 * Copyright 2026 The picopll authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Pllgen runs the PLL divider search on the host and writes the result out
// as Go source, so firmware can embed a precomputed clock configuration
// instead of searching at boot. It is meant to be driven by go:generate.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"picopll/src/pll"
)

var (
	freqKHz uint32
	pkgName string
	varName string
	outFile string
)

var rootCmd = &cobra.Command{
	Use:          "pllgen",
	Short:        "generate RP2040 system PLL divider constants",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, ok := pll.ForFrequencyKHz(freqKHz)
		if !ok {
			return fmt.Errorf("no feasible PLL configuration for %d kHz", freqKHz)
		}
		if cfg.ErrHz != 0 {
			fmt.Fprintf(cmd.ErrOrStderr(),
				"pllgen: %d kHz is not reachable exactly, closest is %d Hz (off by %d Hz)\n",
				freqKHz, cfg.OutHz, cfg.ErrHz)
		}
		w := cmd.OutOrStdout()
		if outFile != "" {
			f, err := os.Create(outFile)
			if err != nil {
				return err
			}
			defer f.Close()
			w = f
		}
		return emit(w, pkgName, varName, freqKHz, cfg)
	},
}

func init() {
	rootCmd.Flags().Uint32Var(&freqKHz, "freq-khz", 0, "target system clock in kHz")
	rootCmd.Flags().StringVar(&pkgName, "package", "main", "package name for the generated file")
	rootCmd.Flags().StringVar(&varName, "var", "sysClock", "name of the generated variable")
	rootCmd.Flags().StringVar(&outFile, "out", "", "output file (default stdout)")
	_ = rootCmd.MarkFlagRequired("freq-khz")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
