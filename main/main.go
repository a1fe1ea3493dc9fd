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

package main

//go:generate go run picopll/pllgen --freq-khz 176000 --package main --var sysClock --out sysclock.go

import (
	"fmt"
	"machine"
	"time"

	pio "github.com/tinygo-org/pio/rp2-pio"

	"picopll/src/pico"
)

func main() {
	time.Sleep(2000 * time.Millisecond)

	fmt.Printf("boot clk_sys = %d kHz\n", pico.MeasureClockKHz(pico.FCSrcClkSys))

	t0 := pico.MicroTime()
	pico.SetSysClock(sysClock)
	dt := pico.MicroTime() - t0
	fmt.Printf("switched to %d Hz in %d µs: refdiv=%d fbdiv=%d postdiv=%d/%d vco=%d Hz\n",
		sysClock.OutHz, dt, sysClock.RefDiv, sysClock.FBDiv,
		sysClock.PostDiv1, sysClock.PostDiv2, sysClock.VCOHz)
	fmt.Printf("measured pll_sys = %d kHz, clk_sys = %d kHz\n",
		pico.MeasureClockKHz(pico.FCSrcPLLSys), pico.MeasureClockKHz(pico.FCSrcClkSys))

	// an independent 10MHz to compare against on the bench, if the Si5351
	// breakout is plugged in
	if err := pico.SetupReference(10e6); err != nil {
		fmt.Printf("no external reference: %s\n", err)
	}

	// put clk_sys/16 on a pin so a counter can watch it
	sm, err := pio.PIO0.ClaimStateMachine()
	if err != nil {
		panic("failed to claim state machine: " + err.Error())
	}
	out, err := pico.NewClockOut(sm, machine.Pin(15))
	if err != nil {
		panic("failed clock output setup: " + err.Error())
	}
	if err := out.SetFrequency(sysClock.OutHz / 16); err != nil {
		panic("failed to set output frequency: " + err.Error())
	}

	ticker := time.NewTicker(2 * time.Second)
	for i := 0; i < 100; i++ {
		<-ticker.C
		fmt.Printf("clk_sys = %d kHz, clk_peri = %d kHz, t = %d µs\n",
			pico.MeasureClockKHz(pico.FCSrcClkSys),
			pico.MeasureClockKHz(pico.FCSrcClkPeri),
			pico.MicroTime())
	}
	machine.EnterBootloader()
}
