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

package keeper

import (
	"context"
	"strconv"

	"cosmossdk.io/core/event"
	"cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/minsuj-colligence/talken-stable-vault/types"
)

var _ types.MsgServer = &msgServer{}

type msgServer struct {
	*Keeper
}

func NewMsgServer(keeper *Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

func (m msgServer) Initialize(ctx context.Context, msg *types.MsgInitialize) (*types.MsgInitializeResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}

	if _, err := m.address.StringToBytes(msg.Authority); err != nil {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "invalid authority address: %s", msg.Authority)
	}
	if err := sdk.ValidateDenom(msg.AssetDenom); err != nil {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "invalid asset denom: %s", msg.AssetDenom)
	}
	if err := sdk.ValidateDenom(msg.ShareDenom); err != nil {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "invalid share denom: %s", msg.ShareDenom)
	}
	if msg.FeeBps > types.MaxFeeBps {
		return nil, errors.Wrapf(types.ErrInvalidFee, "fee of %d bps exceeds maximum of %d bps", msg.FeeBps, types.MaxFeeBps)
	}

	exists, err := m.HasVault(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "unable to check vault existence")
	}
	if exists {
		return nil, types.ErrAlreadyInitialized
	}

	vault := types.Vault{
		Authority:   msg.Authority,
		AssetDenom:  msg.AssetDenom,
		ShareDenom:  msg.ShareDenom,
		TotalAssets: 0,
		TotalShares: 0,
		FeeBps:      msg.FeeBps,
	}
	if err := m.SetVault(ctx, vault); err != nil {
		return nil, errors.Wrap(err, "unable to persist vault")
	}

	m.logger.Info("vault initialized",
		"authority", msg.Authority,
		"asset_denom", msg.AssetDenom,
		"share_denom", msg.ShareDenom,
		"fee_bps", msg.FeeBps,
	)

	if err := m.event.EventManager(ctx).EmitKV(
		ctx,
		types.EventTypeInitialized,
		event.Attribute{Key: types.AttributeKeyAuthority, Value: msg.Authority},
		event.Attribute{Key: types.AttributeKeyAssetDenom, Value: msg.AssetDenom},
		event.Attribute{Key: types.AttributeKeyShareDenom, Value: msg.ShareDenom},
		event.Attribute{Key: types.AttributeKeyFeeBps, Value: strconv.FormatUint(uint64(msg.FeeBps), 10)},
	); err != nil {
		return nil, errors.Wrap(err, "unable to emit initialization event")
	}

	return &types.MsgInitializeResponse{}, nil
}

func (m msgServer) Deposit(ctx context.Context, msg *types.MsgDeposit) (*types.MsgDepositResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}

	depositorBz, err := m.address.StringToBytes(msg.Depositor)
	if err != nil {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "invalid depositor address: %s", msg.Depositor)
	}
	depositor := sdk.AccAddress(depositorBz)

	vault, err := m.GetVault(ctx)
	if err != nil {
		return nil, err
	}

	shares, err := vault.QuoteDeposit(msg.Assets)
	if err != nil {
		return nil, err
	}

	balance := m.bank.GetBalance(ctx, depositor, vault.AssetDenom).Amount
	if balance.LT(sdkmath.NewIntFromUint64(msg.Assets)) {
		return nil, errors.Wrapf(types.ErrInsufficientBalance, "depositing %d %s but only %s available", msg.Assets, vault.AssetDenom, balance.String())
	}

	// Move the assets into custody first; shares are only minted against
	// value the pool actually holds.
	assets := coins(vault.AssetDenom, msg.Assets)
	if err := m.bank.SendCoinsFromAccountToModule(ctx, depositor, types.ModuleName, assets); err != nil {
		return nil, errors.Wrap(err, "unable to transfer deposit into custody")
	}

	shareCoins := coins(vault.ShareDenom, shares)
	if err := m.bank.MintCoins(ctx, types.ModuleName, shareCoins); err != nil {
		return nil, errors.Wrap(err, "unable to mint shares")
	}
	if err := m.bank.SendCoinsFromModuleToAccount(ctx, types.ModuleName, depositor, shareCoins); err != nil {
		return nil, errors.Wrap(err, "unable to transfer shares to depositor")
	}

	if err := vault.ApplyDeposit(msg.Assets, shares); err != nil {
		return nil, errors.Wrap(err, "unable to update vault totals")
	}
	if err := m.SetVault(ctx, vault); err != nil {
		return nil, errors.Wrap(err, "unable to persist vault totals")
	}

	if err := m.event.EventManager(ctx).EmitKV(
		ctx,
		types.EventTypeDeposit,
		event.Attribute{Key: types.AttributeKeyDepositor, Value: msg.Depositor},
		event.Attribute{Key: types.AttributeKeyAssets, Value: strconv.FormatUint(msg.Assets, 10)},
		event.Attribute{Key: types.AttributeKeyShares, Value: strconv.FormatUint(shares, 10)},
	); err != nil {
		return nil, errors.Wrap(err, "unable to emit deposit event")
	}

	return &types.MsgDepositResponse{Shares: shares}, nil
}

func (m msgServer) Redeem(ctx context.Context, msg *types.MsgRedeem) (*types.MsgRedeemResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}

	ownerBz, err := m.address.StringToBytes(msg.Owner)
	if err != nil {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "invalid owner address: %s", msg.Owner)
	}
	owner := sdk.AccAddress(ownerBz)

	vault, err := m.GetVault(ctx)
	if err != nil {
		return nil, err
	}

	net, fee, err := m.executeRedeem(ctx, vault, owner, owner, msg.Shares)
	if err != nil {
		return nil, err
	}

	if err := m.event.EventManager(ctx).EmitKV(
		ctx,
		types.EventTypeRedeem,
		event.Attribute{Key: types.AttributeKeyOwner, Value: msg.Owner},
		event.Attribute{Key: types.AttributeKeyReceiver, Value: msg.Owner},
		event.Attribute{Key: types.AttributeKeyShares, Value: strconv.FormatUint(msg.Shares, 10)},
		event.Attribute{Key: types.AttributeKeyAssets, Value: strconv.FormatUint(net, 10)},
		event.Attribute{Key: types.AttributeKeyFee, Value: strconv.FormatUint(fee, 10)},
	); err != nil {
		return nil, errors.Wrap(err, "unable to emit redeem event")
	}

	return &types.MsgRedeemResponse{Assets: net, Fee: fee}, nil
}

func (m msgServer) DelegatedRedeem(ctx context.Context, msg *types.MsgDelegatedRedeem) (*types.MsgDelegatedRedeemResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}

	if _, err := m.address.StringToBytes(msg.Relayer); err != nil {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "invalid relayer address: %s", msg.Relayer)
	}
	ownerBz, err := m.address.StringToBytes(msg.Owner)
	if err != nil {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "invalid owner address: %s", msg.Owner)
	}
	owner := sdk.AccAddress(ownerBz)
	receiverBz, err := m.address.StringToBytes(msg.Receiver)
	if err != nil {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "invalid receiver address: %s", msg.Receiver)
	}
	receiver := sdk.AccAddress(receiverBz)

	vault, err := m.GetVault(ctx)
	if err != nil {
		return nil, err
	}

	now := m.header.GetHeaderInfo(ctx).Time
	if now.Unix() > msg.Deadline {
		return nil, errors.Wrapf(types.ErrDeadlineExpired, "deadline %d passed at %d", msg.Deadline, now.Unix())
	}

	if err := m.verifyDelegatedRedeem(ownerBz, msg.Shares, receiverBz, msg.Nonce, msg.Deadline, msg.OwnerPubKey, msg.Signature); err != nil {
		return nil, err
	}

	if err := m.CheckAndConsumeNonce(ctx, ownerBz, msg.Nonce, msg.Deadline); err != nil {
		return nil, err
	}

	net, fee, err := m.executeRedeem(ctx, vault, owner, receiver, msg.Shares)
	if err != nil {
		return nil, err
	}

	if err := m.event.EventManager(ctx).EmitKV(
		ctx,
		types.EventTypeRedeem,
		event.Attribute{Key: types.AttributeKeyOwner, Value: msg.Owner},
		event.Attribute{Key: types.AttributeKeyReceiver, Value: msg.Receiver},
		event.Attribute{Key: types.AttributeKeyShares, Value: strconv.FormatUint(msg.Shares, 10)},
		event.Attribute{Key: types.AttributeKeyAssets, Value: strconv.FormatUint(net, 10)},
		event.Attribute{Key: types.AttributeKeyFee, Value: strconv.FormatUint(fee, 10)},
	); err != nil {
		return nil, errors.Wrap(err, "unable to emit redeem event")
	}

	return &types.MsgDelegatedRedeemResponse{Assets: net, Fee: fee}, nil
}

func (m msgServer) SetFee(ctx context.Context, msg *types.MsgSetFee) (*types.MsgSetFeeResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}

	vault, err := m.GetVault(ctx)
	if err != nil {
		return nil, err
	}
	if msg.Authority != vault.Authority {
		return nil, errors.Wrapf(types.ErrUnauthorized, "expected %s, got %s", vault.Authority, msg.Authority)
	}
	if msg.NewFeeBps > types.MaxFeeBps {
		return nil, errors.Wrapf(types.ErrInvalidFee, "fee of %d bps exceeds maximum of %d bps", msg.NewFeeBps, types.MaxFeeBps)
	}

	oldFeeBps := vault.FeeBps
	vault.FeeBps = msg.NewFeeBps
	if err := m.SetVault(ctx, vault); err != nil {
		return nil, errors.Wrap(err, "unable to persist vault")
	}

	m.logger.Info("redemption fee updated", "old_fee_bps", oldFeeBps, "new_fee_bps", msg.NewFeeBps)

	if err := m.event.EventManager(ctx).EmitKV(
		ctx,
		types.EventTypeFeeUpdated,
		event.Attribute{Key: types.AttributeKeyOldFeeBps, Value: strconv.FormatUint(uint64(oldFeeBps), 10)},
		event.Attribute{Key: types.AttributeKeyNewFeeBps, Value: strconv.FormatUint(uint64(msg.NewFeeBps), 10)},
	); err != nil {
		return nil, errors.Wrap(err, "unable to emit fee update event")
	}

	return &types.MsgSetFeeResponse{}, nil
}

func (m msgServer) EmergencyWithdraw(ctx context.Context, msg *types.MsgEmergencyWithdraw) (*types.MsgEmergencyWithdrawResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}

	vault, err := m.GetVault(ctx)
	if err != nil {
		return nil, err
	}
	if msg.Authority != vault.Authority {
		return nil, errors.Wrapf(types.ErrUnauthorized, "expected %s, got %s", vault.Authority, msg.Authority)
	}
	if msg.Amount == 0 {
		return nil, errors.Wrap(types.ErrZeroAmount, "withdrawal amount must be positive")
	}

	recipientBz, err := m.address.StringToBytes(msg.Recipient)
	if err != nil {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "invalid recipient address: %s", msg.Recipient)
	}
	recipient := sdk.AccAddress(recipientBz)

	custody := m.account.GetModuleAddress(types.ModuleName)
	balance := m.bank.GetBalance(ctx, custody, vault.AssetDenom).Amount
	if balance.LT(sdkmath.NewIntFromUint64(msg.Amount)) {
		return nil, errors.Wrapf(types.ErrInsufficientBalance, "withdrawing %d %s but custody holds %s", msg.Amount, vault.AssetDenom, balance.String())
	}

	// The pool totals are deliberately left untouched: the vault is
	// under-collateralized from this point until the assets are restored or
	// the share supply is written down by a follow-up governance action.
	if err := m.bank.SendCoinsFromModuleToAccount(ctx, types.ModuleName, recipient, coins(vault.AssetDenom, msg.Amount)); err != nil {
		return nil, errors.Wrap(err, "unable to transfer custody funds")
	}

	m.logger.Warn("emergency withdrawal executed; vault is under-collateralized until assets are restored",
		"authority", msg.Authority,
		"recipient", msg.Recipient,
		"amount", msg.Amount,
		"total_assets", vault.TotalAssets,
	)

	if err := m.event.EventManager(ctx).EmitKV(
		ctx,
		types.EventTypeEmergencyWithdraw,
		event.Attribute{Key: types.AttributeKeyAuthority, Value: msg.Authority},
		event.Attribute{Key: types.AttributeKeyRecipient, Value: msg.Recipient},
		event.Attribute{Key: types.AttributeKeyAmount, Value: strconv.FormatUint(msg.Amount, 10)},
	); err != nil {
		return nil, errors.Wrap(err, "unable to emit emergency withdrawal event")
	}

	return &types.MsgEmergencyWithdrawResponse{}, nil
}

// executeRedeem burns shares from owner and pays the net asset value to
// receiver, committing the reduced totals afterwards. The fee portion of
// gross never leaves custody.
func (m msgServer) executeRedeem(ctx context.Context, vault types.Vault, owner, receiver sdk.AccAddress, shares uint64) (net, fee uint64, err error) {
	_, fee, net, err = vault.QuoteRedeem(shares)
	if err != nil {
		return 0, 0, err
	}

	shareBalance := m.bank.GetBalance(ctx, owner, vault.ShareDenom).Amount
	if shareBalance.LT(sdkmath.NewIntFromUint64(shares)) {
		return 0, 0, errors.Wrapf(types.ErrInsufficientShares, "redeeming %d shares but only %s held", shares, shareBalance.String())
	}

	custody := m.account.GetModuleAddress(types.ModuleName)
	custodyBalance := m.bank.GetBalance(ctx, custody, vault.AssetDenom).Amount
	if custodyBalance.LT(sdkmath.NewIntFromUint64(net)) {
		// Reachable after an emergency withdrawal drained custody below the
		// book value of the pool.
		return 0, 0, errors.Wrapf(types.ErrInsufficientBalance, "payout of %d %s exceeds custody balance %s", net, vault.AssetDenom, custodyBalance.String())
	}

	shareCoins := coins(vault.ShareDenom, shares)
	if err := m.bank.SendCoinsFromAccountToModule(ctx, owner, types.ModuleName, shareCoins); err != nil {
		return 0, 0, errors.Wrap(err, "unable to collect shares for burning")
	}
	if err := m.bank.BurnCoins(ctx, types.ModuleName, shareCoins); err != nil {
		return 0, 0, errors.Wrap(err, "unable to burn shares")
	}

	if err := m.bank.SendCoinsFromModuleToAccount(ctx, types.ModuleName, receiver, coins(vault.AssetDenom, net)); err != nil {
		return 0, 0, errors.Wrap(err, "unable to transfer payout from custody")
	}

	if err := vault.ApplyRedeem(shares, net); err != nil {
		return 0, 0, errors.Wrap(err, "unable to update vault totals")
	}
	if err := m.SetVault(ctx, vault); err != nil {
		return 0, 0, errors.Wrap(err, "unable to persist vault totals")
	}

	return net, fee, nil
}

func coins(denom string, amount uint64) sdk.Coins {
	return sdk.NewCoins(sdk.NewCoin(denom, sdkmath.NewIntFromUint64(amount)))
}
