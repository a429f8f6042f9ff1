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

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minsuj-colligence/talken-stable-vault/types"
)

func testVault(totalAssets, totalShares uint64, feeBps uint32) types.Vault {
	return types.Vault{
		Authority:   "authority",
		AssetDenom:  "uusdc",
		ShareDenom:  "utsv",
		TotalAssets: totalAssets,
		TotalShares: totalShares,
		FeeBps:      feeBps,
	}
}

func TestQuoteDepositBootstrap(t *testing.T) {
	// ARRANGE: An empty pool.
	vault := testVault(0, 0, 10)

	// ACT: Quote the first deposit.
	shares, err := vault.QuoteDeposit(1_000_000)

	// ASSERT: The bootstrap rate is 1:1.
	require.NoError(t, err)
	assert.Equal(t, uint64(1_000_000), shares)
}

func TestQuoteDepositProRata(t *testing.T) {
	// ARRANGE: A pool trading above 1:1 (2 assets per share).
	vault := testVault(2_000, 1_000, 0)

	// ACT: Quote a deposit of 100 assets.
	shares, err := vault.QuoteDeposit(100)

	// ASSERT: Half as many shares are minted.
	require.NoError(t, err)
	assert.Equal(t, uint64(50), shares)
}

func TestQuoteDepositZeroAmount(t *testing.T) {
	vault := testVault(1_000, 1_000, 0)

	_, err := vault.QuoteDeposit(0)

	require.ErrorIs(t, err, types.ErrZeroAmount)
}

func TestQuoteRedeem(t *testing.T) {
	// ARRANGE: A 1:1 pool of 1,500,000 with a 10 bps fee.
	vault := testVault(1_500_000, 1_500_000, 10)

	// ACT: Quote redemption of 1,000,000 shares.
	gross, fee, net, err := vault.QuoteRedeem(1_000_000)

	// ASSERT: Fee is 0.1% of gross and net is the remainder.
	require.NoError(t, err)
	assert.Equal(t, uint64(1_000_000), gross)
	assert.Equal(t, uint64(1_000), fee)
	assert.Equal(t, uint64(999_000), net)
}

func TestQuoteRedeemFeeMonotonic(t *testing.T) {
	// ARRANGE: Fixed totals and shares; only the fee varies.
	previousNet := uint64(math.MaxUint64)
	for _, feeBps := range []uint32{0, 1, 10, 50, 100} {
		vault := testVault(10_000_000, 2_000_000, feeBps)

		// ACT
		gross, fee, net, err := vault.QuoteRedeem(500_000)

		// ASSERT: Raising the fee strictly lowers the net payout, and the
		// fee never exceeds gross.
		require.NoError(t, err)
		assert.LessOrEqual(t, fee, gross)
		assert.Less(t, net, previousNet)
		previousNet = net
	}
}

func TestQuoteRedeemRejections(t *testing.T) {
	vault := testVault(1_000, 1_000, 0)

	_, _, _, err := vault.QuoteRedeem(0)
	require.ErrorIs(t, err, types.ErrZeroAmount)

	_, _, _, err = vault.QuoteRedeem(1_001)
	require.ErrorIs(t, err, types.ErrInsufficientShares)
}

func TestApplyDeposit(t *testing.T) {
	vault := testVault(1_000_000, 1_000_000, 10)

	require.NoError(t, vault.ApplyDeposit(500_000, 500_000))

	assert.Equal(t, uint64(1_500_000), vault.TotalAssets)
	assert.Equal(t, uint64(1_500_000), vault.TotalShares)
}

func TestApplyDepositOverflow(t *testing.T) {
	vault := testVault(math.MaxUint64-10, 1_000, 0)

	err := vault.ApplyDeposit(11, 11)

	require.ErrorIs(t, err, types.ErrArithmeticOverflow)
	// ASSERT: Totals are untouched after a failed apply.
	assert.Equal(t, uint64(math.MaxUint64-10), vault.TotalAssets)
	assert.Equal(t, uint64(1_000), vault.TotalShares)
}

func TestApplyRedeemRetainsFee(t *testing.T) {
	// ARRANGE: A 1:1 pool of 1,500,000 with a
	// 10 bps fee, redeeming 1,000,000 shares for a net of 999,000.
	vault := testVault(1_500_000, 1_500_000, 10)
	_, fee, net, err := vault.QuoteRedeem(1_000_000)
	require.NoError(t, err)

	// ACT
	require.NoError(t, vault.ApplyRedeem(1_000_000, net))

	// ASSERT: Only the net payout left the pool; the 1,000 fee stays behind
	// and the per-share value rises above 1:1.
	assert.Equal(t, uint64(1_000), fee)
	assert.Equal(t, uint64(501_000), vault.TotalAssets)
	assert.Equal(t, uint64(500_000), vault.TotalShares)
	assert.True(t, vault.ExchangeRate().GT(sdkmath.LegacyOneDec()))
}

func TestApplyRedeemUnderflow(t *testing.T) {
	vault := testVault(1_000, 1_000, 0)

	err := vault.ApplyRedeem(100, 2_000)

	require.ErrorIs(t, err, types.ErrInsufficientBalance)
}

func TestDepositRedeemNeverProfitable(t *testing.T) {
	// ARRANGE: Pools at awkward rates with no fee, so any gain could only
	// come from rounding.
	for _, totals := range [][2]uint64{{3, 7}, {1_000, 333}, {999_999, 1_000_000}, {7, 3}} {
		vault := testVault(totals[0], totals[1], 0)
		deposit := uint64(1_000)

		// ACT: Deposit then immediately redeem the minted shares.
		shares, err := vault.QuoteDeposit(deposit)
		require.NoError(t, err)
		require.NoError(t, vault.ApplyDeposit(deposit, shares))
		if shares == 0 {
			continue
		}
		_, _, net, err := vault.QuoteRedeem(shares)
		require.NoError(t, err)

		// ASSERT: Rounding loss lands on the withdrawer, never the pool.
		assert.LessOrEqual(t, net, deposit, "totals %v", totals)
	}
}

func TestVaultValidate(t *testing.T) {
	valid := testVault(1_000, 1_000, 100)
	require.NoError(t, valid.Validate())

	feeTooHigh := testVault(0, 0, 101)
	require.ErrorIs(t, feeTooHigh.Validate(), types.ErrInvalidFee)

	unbacked := testVault(0, 1, 0)
	require.ErrorIs(t, unbacked.Validate(), types.ErrInvalidVaultState)

	sameDenoms := testVault(0, 0, 0)
	sameDenoms.ShareDenom = sameDenoms.AssetDenom
	require.ErrorIs(t, sameDenoms.Validate(), types.ErrInvalidVaultState)
}

func TestExchangeRate(t *testing.T) {
	// ASSERT: An empty pool reports the bootstrap rate.
	empty := testVault(0, 0, 0)
	assert.Equal(t, "1.000000000000000000", empty.ExchangeRate().String())

	// ASSERT: A pool holding retained fees reports a rate above one.
	funded := testVault(501_000, 500_000, 10)
	assert.Equal(t, "1.002000000000000000", funded.ExchangeRate().String())
}
