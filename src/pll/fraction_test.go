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

package pll

import (
	"math"
	"math/big"
	"testing"
)

func Test_continuedFraction(t *testing.T) {
	type args struct {
		a, b, e, f, maxDenom uint64
	}
	tests := []struct {
		name  string
		args  args
		wantC uint64
		wantD uint64
	}{
		{
			name:  "integer",
			args:  args{a: 10, b: 1, e: 1, maxDenom: 100},
			wantC: 10,
			wantD: 1,
		},
		{
			name:  "zero",
			args:  args{a: 0, b: 1, e: 1, maxDenom: 100},
			wantC: 0,
			wantD: 1,
		},
		{
			name:  "exact division",
			args:  args{a: 63, b: 9, e: 0, f: 1, maxDenom: 10},
			wantC: 7,
			wantD: 1,
		},
		{
			name:  "exact answer",
			args:  args{a: 23, b: 5, e: 0, f: 1, maxDenom: 10},
			wantC: 23,
			wantD: 5,
		},
		{
			name:  "limited depth",
			args:  args{a: 2300, b: 500, e: 0, f: 1, maxDenom: 7},
			wantC: 23,
			wantD: 5,
		},
		{
			name:  "almost unlimited depth",
			args:  args{a: 451, b: 98, e: 0, f: 1, maxDenom: 99},
			wantC: 451,
			wantD: 98,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotC, gotD := continuedFraction(tt.args.a, tt.args.b, tt.args.e, tt.args.f, tt.args.maxDenom)
			if gotC != tt.wantC || gotD != tt.wantD {
				t.Errorf("continuedFraction() = %d/%d, want %d/%d", gotC, gotD, tt.wantC, tt.wantD)
			}
		})
	}
}

func Test_fractionLimit(t *testing.T) {
	// walking the denominator limit up through the convergents of pi must
	// step through the classic approximations with monotonically shrinking
	// residuals
	maxD := [][]uint64{
		{5, 3, 1},
		{7, 22, 7},
		{105, 22, 7},
		{106, 333, 106},
		{113, 355, 113},
		{33000, 355, 113},
		{33102, 103993, 33102},
		{33215, 104348, 33215},
		{100_000, 312689, 99532},
	}
	lastD := uint64(0)
	last := big.NewRat(10, 1)
	var eps big.Rat
	for i := 0; i < len(maxD); i++ {
		a, b := continuedFraction(314159265358, 100_000_000_000, 0, 1, maxD[i][0])
		// the residual is too small for floating point, use big rationals
		eps := eps.Abs(eps.Sub(big.NewRat(int64(a), int64(b)), big.NewRat(314159265358, 100_000_000_000)))
		if b != lastD && new(big.Rat).Sub(last, eps).Num().Int64() < 0 {
			t.Errorf("at %d, error increased from %s to %s", maxD[i][0], last.FloatString(10), eps.FloatString(10))
		}
		last.Set(eps)
		lastD = b

		if a != maxD[i][1] || b != maxD[i][2] {
			t.Errorf("%d => %d, %d, but wanted %v", maxD[i][0], a, b, maxD[i][1:])
		}
	}
}

func Test_nearestFraction(t *testing.T) {
	type args struct {
		a, b, maxDenom uint64
	}
	tests := []struct {
		name    string
		args    args
		wantC   uint64
		wantD   uint64
		wantEps float64
	}{
		{"exact division", args{a: 3879 * 1712, b: 1712, maxDenom: 20}, 3879, 1, 0},
		{"famous pi", args{a: uint64(math.Round(math.Pi * 3879)), b: 3879, maxDenom: 100}, 22, 7, math.Round(math.Pi*3879)/3879 - 22.0/7.0},
		{"famous pi, larger", args{a: uint64(math.Round(math.Pi * 3879)), b: 3879, maxDenom: 110}, 333, 106, math.Round(math.Pi*3879)/3879 - 333.0/106.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotC, gotD, gotEps := NearestFraction(tt.args.a, tt.args.b, tt.args.maxDenom)
			if gotC != tt.wantC || gotD != tt.wantD {
				t.Errorf("NearestFraction() = %d/%d, want %d/%d", gotC, gotD, tt.wantC, tt.wantD)
			}
			if gotEps != tt.wantEps {
				t.Errorf("NearestFraction() eps = %v, want %v", gotEps, tt.wantEps)
			}
		})
	}
}

func Test_clockDiv(t *testing.T) {
	type testCase struct {
		name     string
		src, out uint64
		maxWhole uint32
		whole    uint32
		frac     uint8
		ok       bool
	}
	tests := []testCase{
		{"unity", 125_000_000, 125_000_000, 0xffffff, 1, 0, true},
		{"integer", 12_000_000, 1_000_000, 0xffffff, 12, 0, true},
		{"half step", 125_000_000, 50_000_000, 0xffffff, 2, 128, true},
		{"rounded", 125_000_000, 48_000_000, 0xffffff, 2, 155, true},
		{"too fast", 48_000_000, 125_000_000, 0xffffff, 0, 0, false},
		{"zero", 125_000_000, 0, 0xffffff, 0, 0, false},
		{"whole overflow", 1_000_000_000, 1, 0xffff, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			whole, frac, ok := ClockDiv(tt.src, tt.out, tt.maxWhole)
			if whole != tt.whole || frac != tt.frac || ok != tt.ok {
				t.Errorf("ClockDiv(%d, %d) = %d, %d, %v, want %d, %d, %v",
					tt.src, tt.out, whole, frac, ok, tt.whole, tt.frac, tt.ok)
			}
		})
	}
}
