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
	"device/rp"

	"picopll/src/pll"
)

// sysClockHz remembers the last frequency programmed onto clk_sys so the
// peripheral divider helpers know their source rate.
var sysClockHz uint64 = 125_000_000

// SysClockHz reports the frequency most recently programmed by SetSysClock,
// or the 125MHz boot default.
func SysClockHz() uint64 {
	return sysClockHz
}

/*
SetSysClock reprograms the system PLL with a searched divider configuration
and switches clk_sys onto it. The sequencing rules come from the RP2040
datasheet: clk_sys must sit on its glitchless reference source while the PLL
is down, the VCO has to report lock before the post dividers are powered,
and the divider is restored only after the mux has switched so the core is
never overclocked mid-transition.

The caller is responsible for re-deriving anything that counts clk_sys
cycles (UART baud rates, the PIO dividers, PWM periods) afterwards.
*/
func SetSysClock(cfg pll.Evaluated) {
	c := rp.CLOCKS

	// run clk_sys from the glitchless reference while the PLL is bounced
	c.CLK_SYS_CTRL.ClearBits(rp.CLOCKS_CLK_SYS_CTRL_SRC_Msk)
	for !c.CLK_SYS_SELECTED.HasBits(1) {
	}

	// cycle the PLL through reset to a known state
	rp.RESETS.RESET.SetBits(rp.RESETS_RESET_PLL_SYS)
	rp.RESETS.RESET.ClearBits(rp.RESETS_RESET_PLL_SYS)
	for !rp.RESETS.RESET_DONE.HasBits(rp.RESETS_RESET_PLL_SYS) {
	}

	p := rp.PLL_SYS
	p.CS.Set(uint32(cfg.RefDiv)) // REFDIV occupies the low bits of CS
	p.FBDIV_INT.Set(uint32(cfg.FBDiv))

	// power up the VCO and wait for lock before exposing the output
	p.PWR.ClearBits(rp.PLL_SYS_PWR_PD | rp.PLL_SYS_PWR_VCOPD)
	for !p.CS.HasBits(rp.PLL_SYS_CS_LOCK) {
	}

	p.PRIM.Set(uint32(cfg.PostDiv1)<<rp.PLL_SYS_PRIM_POSTDIV1_Pos |
		uint32(cfg.PostDiv2)<<rp.PLL_SYS_PRIM_POSTDIV2_Pos)
	p.PWR.ClearBits(rp.PLL_SYS_PWR_POSTDIVPD)

	// aux mux first, divider at unity, then the glitchless mux
	c.CLK_SYS_DIV.Set(1 << 8) // 1.0 in int.frac8
	c.CLK_SYS_CTRL.ReplaceBits(
		rp.CLOCKS_CLK_SYS_CTRL_AUXSRC_CLKSRC_PLL_SYS<<rp.CLOCKS_CLK_SYS_CTRL_AUXSRC_Pos,
		rp.CLOCKS_CLK_SYS_CTRL_AUXSRC_Msk, 0)
	c.CLK_SYS_CTRL.SetBits(rp.CLOCKS_CLK_SYS_CTRL_SRC_CLKSRC_CLK_SYS_AUX)
	for !c.CLK_SYS_SELECTED.HasBits(1 << rp.CLOCKS_CLK_SYS_CTRL_SRC_CLKSRC_CLK_SYS_AUX) {
	}

	// keep the peripheral clock glued to clk_sys
	c.CLK_PERI_CTRL.Set(rp.CLOCKS_CLK_PERI_CTRL_ENABLE |
		rp.CLOCKS_CLK_PERI_CTRL_AUXSRC_CLK_SYS<<rp.CLOCKS_CLK_PERI_CTRL_AUXSRC_Pos)

	sysClockHz = cfg.OutHz
}
