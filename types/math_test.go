// SPDX-License-Identifier: BUSL-1.1
//
// Copyright (C) 2025, Colligence, Inc. All rights reserved.
// Use of this software is governed by the Business Source License included
// in the LICENSE file of this repository and at www.mariadb.com/bsl11.
//
// ANY USE OF THE LICENSED WORK IN VIOLATION OF THIS LICENSE WILL AUTOMATICALLY
// TERMINATE YOUR RIGHTS UNDER THIS LICENSE FOR THE CURRENT AND ALL OTHER
// VERSIONS OF THE LICENSED WORK.
//
// THIS LICENSE DOES NOT GRANT YOU ANY RIGHT IN ANY TRADEMARK OR LOGO OF
// LICENSOR OR ITS AFFILIATES (PROVIDED THAT YOU MAY USE A TRADEMARK OR LOGO OF
// LICENSOR AS EXPRESSLY REQUIRED BY THIS LICENSE).
//
// TO THE EXTENT PERMITTED BY APPLICABLE LAW, THE LICENSED WORK IS PROVIDED ON
// AN "AS IS" BASIS. LICENSOR HEREBY DISCLAIMS ALL WARRANTIES AND CONDITIONS,
// EXPRESS OR IMPLIED, INCLUDING (WITHOUT LIMITATION) WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE, NON-INFRINGEMENT, AND
// TITLE.

package types_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minsuj-colligence/talken-stable-vault/types"
)

func TestProportion(t *testing.T) {
	// ACT: Compute a handful of exact and flooring cases.
	testCases := []struct {
		name                          string
		amount, numerator, denominator uint64
		expected                      uint64
	}{
		{"exact", 1_000_000, 3, 2, 1_500_000},
		{"identity", 42, 7, 7, 42},
		{"floors toward zero", 10, 1, 3, 3},
		{"zero amount", 0, 5, 7, 0},
		{"zero numerator", 5, 0, 7, 0},
		{"max by max over max", math.MaxUint64, math.MaxUint64, math.MaxUint64, math.MaxUint64},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := types.Proportion(tc.amount, tc.numerator, tc.denominator)

			// ASSERT: Result matches floor(amount * numerator / denominator).
			require.NoError(t, err)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestProportionDivisionByZero(t *testing.T) {
	// ACT: Divide by zero.
	_, err := types.Proportion(100, 1, 0)

	// ASSERT: The specific arithmetic failure surfaces.
	require.ErrorIs(t, err, types.ErrDivisionByZero)
}

func TestProportionOverflow(t *testing.T) {
	// ACT: The widened intermediate fits, but the floored result does not.
	_, err := types.Proportion(math.MaxUint64, 2, 1)

	// ASSERT: Overflow is reported instead of wrapping.
	require.ErrorIs(t, err, types.ErrArithmeticOverflow)

	// ACT: Largest possible intermediate that still reduces into range.
	result, err := types.Proportion(math.MaxUint64, math.MaxUint64/2, math.MaxUint64)

	// ASSERT: No overflow for a reducible intermediate.
	require.NoError(t, err)
	assert.Equal(t, math.MaxUint64/uint64(2), result)
}
