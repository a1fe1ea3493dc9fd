//go:build rp2040

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

package pico

import (
	"errors"
	"fmt"
	"machine"

	"github.com/chiefMarlin/tinygo-drivers/si5351"

	"picopll/src/pll"
)

// si5351XtalHz is the crystal on the Si5351 breakout used as the bench
// reference, not the Pico's own 12MHz crystal.
const si5351XtalHz = 25e6

/*
SetupReference programs an I2C-attached Si5351 clock generator to emit outHz
on its clock 0 output. The output serves as an independent comparison signal
when checking what the system PLL really produces: the Si5351 runs from its
own crystal, so any disagreement between it and the Pico's clock is real.

Only outputs the multisynth can reach directly are supported; frequencies
low enough to need the chip's extra R divider are rejected.
*/
func SetupReference(outHz float64) error {
	rc, err := pll.RefClockSettings(si5351XtalHz, outHz)
	if err != nil {
		return err
	}
	if rc.R != 1 {
		return errors.New("reference: output too low for the multisynth alone")
	}

	if err := machine.I2C0.Configure(machine.I2CConfig{}); err != nil {
		return fmt.Errorf("reference: I2C0 configure: %w", err)
	}
	clockgen := si5351.New(machine.I2C0)
	connected, err := clockgen.Connected()
	if err != nil {
		return fmt.Errorf("reference: device status: %w", err)
	}
	if !connected {
		return errors.New("reference: no Si5351 on the bus")
	}
	if err := clockgen.Configure(); err != nil {
		return fmt.Errorf("reference: configure: %w", err)
	}

	if err := clockgen.ConfigurePLL(si5351.PLL_A, uint8(rc.PLLMul), rc.PLLNum, rc.PLLDenom); err != nil {
		return fmt.Errorf("reference: PLL: %w", err)
	}
	if err := clockgen.ConfigureMultisynth(0, si5351.PLL_A, rc.Div, rc.DivNum, rc.DivDenom); err != nil {
		return fmt.Errorf("reference: multisynth: %w", err)
	}
	if err := clockgen.EnableOutputs(); err != nil {
		return fmt.Errorf("reference: enable outputs: %w", err)
	}
	return nil
}
