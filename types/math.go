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

package types

import (
	"cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
)

// Proportion computes floor(amount * numerator / denominator) over a widened
// intermediate, so the multiplication itself can never wrap. The floored
// result must fit back into a uint64; rounding is always truncation toward
// zero, never in favour of the caller.
func Proportion(amount, numerator, denominator uint64) (uint64, error) {
	if denominator == 0 {
		return 0, errors.Wrapf(ErrDivisionByZero, "cannot compute %d * %d / 0", amount, numerator)
	}

	result := sdkmath.NewIntFromUint64(amount).
		Mul(sdkmath.NewIntFromUint64(numerator)).
		Quo(sdkmath.NewIntFromUint64(denominator))
	if !result.IsUint64() {
		return 0, errors.Wrapf(ErrArithmeticOverflow, "%d * %d / %d exceeds uint64 range", amount, numerator, denominator)
	}

	return result.Uint64(), nil
}

// checkedAdd returns a + b, failing instead of wrapping around.
func checkedAdd(a, b uint64) (uint64, error) {
	sum := a + b
	if sum < a {
		return 0, errors.Wrapf(ErrArithmeticOverflow, "%d + %d exceeds uint64 range", a, b)
	}
	return sum, nil
}

// checkedSub returns a - b, failing instead of wrapping around.
func checkedSub(a, b uint64) (uint64, error) {
	if b > a {
		return 0, errors.Wrapf(ErrInsufficientBalance, "cannot subtract %d from %d", b, a)
	}
	return a - b, nil
}
