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

package main

import (
	"fmt"
	"io"

	"picopll/src/pll"
)

// emit writes a Go source file binding cfg to a package-level variable.
// The output is already gofmt-clean; tabs below are literal.
func emit(w io.Writer, pkg, name string, freqKHz uint32, cfg pll.Evaluated) error {
	_, err := fmt.Fprintf(w, `// Code generated by pllgen --freq-khz %d; DO NOT EDIT.

package %s

import "picopll/src/pll"

// %s holds the system PLL dividers for a %d kHz clock, computed ahead
// of time so the firmware never runs the search itself.
var %s = pll.Evaluated{
	Config: pll.Config{
		RefDiv:   %d,
		FBDiv:    %d,
		PostDiv1: %d,
		PostDiv2: %d,
	},
	RefHz: %d,
	VCOHz: %d,
	OutHz: %d,
	ErrHz: %d,
}
`, freqKHz, pkg, name, freqKHz, name,
		cfg.RefDiv, cfg.FBDiv, cfg.PostDiv1, cfg.PostDiv2,
		cfg.RefHz, cfg.VCOHz, cfg.OutHz, cfg.ErrHz)
	return err
}
