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

const (
	// MaxFeeBps caps the redemption fee at 1.0%.
	MaxFeeBps = 100

	// BpsDenominator is the basis point scale: 1 bps = 1/10,000.
	BpsDenominator = 10_000
)

// Vault is the singleton share-accounting record. TotalAssets and TotalShares
// are either both zero (empty pool) or both positive; zero assets backing a
// positive share supply is never a valid state.
type Vault struct {
	Authority   string `json:"authority"`
	AssetDenom  string `json:"asset_denom"`
	ShareDenom  string `json:"share_denom"`
	TotalAssets uint64 `json:"total_assets"`
	TotalShares uint64 `json:"total_shares"`
	FeeBps      uint32 `json:"fee_bps"`
}

// Validate checks the configuration bounds and the totals invariant.
func (v Vault) Validate() error {
	if v.Authority == "" {
		return errors.Wrap(ErrInvalidVaultState, "authority cannot be empty")
	}
	if v.AssetDenom == "" || v.ShareDenom == "" {
		return errors.Wrap(ErrInvalidVaultState, "asset and share denoms cannot be empty")
	}
	if v.AssetDenom == v.ShareDenom {
		return errors.Wrapf(ErrInvalidVaultState, "asset and share denoms must differ, got %s", v.AssetDenom)
	}
	if v.FeeBps > MaxFeeBps {
		return errors.Wrapf(ErrInvalidFee, "fee of %d bps exceeds maximum of %d bps", v.FeeBps, MaxFeeBps)
	}
	if v.TotalAssets == 0 && v.TotalShares > 0 {
		return errors.Wrapf(ErrInvalidVaultState, "%d shares outstanding with no backing assets", v.TotalShares)
	}

	return nil
}

// QuoteDeposit returns the number of shares minted for a deposit of assets at
// the current exchange rate. The first deposit into an empty pool sets a 1:1
// rate; afterwards shares = floor(assets * totalShares / totalAssets).
func (v Vault) QuoteDeposit(assets uint64) (uint64, error) {
	if assets == 0 {
		return 0, errors.Wrap(ErrZeroAmount, "deposit amount must be positive")
	}
	if v.TotalShares == 0 {
		return assets, nil
	}

	return Proportion(assets, v.TotalShares, v.TotalAssets)
}

// QuoteRedeem returns the gross asset value of the given shares, the
// redemption fee, and the net payout. The fee is a FeeBps fraction of gross
// and by construction never exceeds it.
func (v Vault) QuoteRedeem(shares uint64) (gross, fee, net uint64, err error) {
	if shares == 0 {
		return 0, 0, 0, errors.Wrap(ErrZeroAmount, "redeem amount must be positive")
	}
	if shares > v.TotalShares {
		return 0, 0, 0, errors.Wrapf(ErrInsufficientShares, "redeeming %d shares but only %d outstanding", shares, v.TotalShares)
	}

	gross, err = Proportion(shares, v.TotalAssets, v.TotalShares)
	if err != nil {
		return 0, 0, 0, err
	}
	fee, err = Proportion(gross, uint64(v.FeeBps), BpsDenominator)
	if err != nil {
		return 0, 0, 0, err
	}

	return gross, fee, gross - fee, nil
}

// ApplyDeposit commits a quoted deposit to the pool totals.
func (v *Vault) ApplyDeposit(assets, shares uint64) error {
	totalAssets, err := checkedAdd(v.TotalAssets, assets)
	if err != nil {
		return errors.Wrap(err, "unable to grow total assets")
	}
	totalShares, err := checkedAdd(v.TotalShares, shares)
	if err != nil {
		return errors.Wrap(err, "unable to grow total shares")
	}

	v.TotalAssets = totalAssets
	v.TotalShares = totalShares
	return nil
}

// ApplyRedeem commits a quoted redemption to the pool totals. Only the net
// payout leaves the pool; the fee stays behind and dilutes across the
// remaining shareholders. The subtractions are unreachable given a prior
// quote against the same totals but are checked regardless.
func (v *Vault) ApplyRedeem(shares, netAssets uint64) error {
	totalAssets, err := checkedSub(v.TotalAssets, netAssets)
	if err != nil {
		return errors.Wrap(err, "unable to shrink total assets")
	}
	totalShares, err := checkedSub(v.TotalShares, shares)
	if err != nil {
		return errors.Wrapf(ErrInsufficientShares, "cannot burn %d of %d outstanding shares", shares, v.TotalShares)
	}
	if totalAssets == 0 && totalShares > 0 {
		return errors.Wrapf(ErrInvalidVaultState, "redemption would leave %d shares with no backing assets", totalShares)
	}

	v.TotalAssets = totalAssets
	v.TotalShares = totalShares
	return nil
}

// ExchangeRate returns the implicit asset value of one share. An empty pool
// reports the 1:1 bootstrap rate.
func (v Vault) ExchangeRate() sdkmath.LegacyDec {
	if v.TotalShares == 0 {
		return sdkmath.LegacyOneDec()
	}

	return sdkmath.LegacyNewDecFromInt(sdkmath.NewIntFromUint64(v.TotalAssets)).
		QuoInt(sdkmath.NewIntFromUint64(v.TotalShares))
}
