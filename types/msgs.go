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

import "context"

// MsgInitialize creates the vault record with empty totals. The signer
// becomes the configuration authority.
type MsgInitialize struct {
	Authority  string
	AssetDenom string
	ShareDenom string
	FeeBps     uint32
}

type MsgInitializeResponse struct{}

// MsgDeposit contributes assets to the pool in exchange for shares.
type MsgDeposit struct {
	Depositor string
	Assets    uint64
}

type MsgDepositResponse struct {
	Shares uint64
}

// MsgRedeem burns the owner's shares for a proportional claim on the pool,
// net of the redemption fee.
type MsgRedeem struct {
	Owner  string
	Shares uint64
}

type MsgRedeemResponse struct {
	Assets uint64
	Fee    uint64
}

// MsgDelegatedRedeem is a redeem submitted by a relayer on the owner's
// behalf, authorized by the owner's off-chain signature over the canonical
// digest of (owner, shares, receiver, nonce, deadline). The relayer pays only
// the submission cost; assets are debited from the owner and credited to the
// receiver.
type MsgDelegatedRedeem struct {
	Relayer     string
	Owner       string
	Shares      uint64
	Receiver    string
	Deadline    int64
	Nonce       uint64
	OwnerPubKey []byte
	Signature   []byte
}

type MsgDelegatedRedeemResponse struct {
	Assets uint64
	Fee    uint64
}

// MsgSetFee updates the redemption fee. Authority only.
type MsgSetFee struct {
	Authority string
	NewFeeBps uint32
}

type MsgSetFeeResponse struct{}

// MsgEmergencyWithdraw moves custody funds to a designated account without
// touching the pool totals. Authority only; see the msg server for the
// under-collateralization consequences.
type MsgEmergencyWithdraw struct {
	Authority string
	Recipient string
	Amount    uint64
}

type MsgEmergencyWithdrawResponse struct{}

type MsgServer interface {
	Initialize(ctx context.Context, msg *MsgInitialize) (*MsgInitializeResponse, error)
	Deposit(ctx context.Context, msg *MsgDeposit) (*MsgDepositResponse, error)
	Redeem(ctx context.Context, msg *MsgRedeem) (*MsgRedeemResponse, error)
	DelegatedRedeem(ctx context.Context, msg *MsgDelegatedRedeem) (*MsgDelegatedRedeemResponse, error)
	SetFee(ctx context.Context, msg *MsgSetFee) (*MsgSetFeeResponse, error)
	EmergencyWithdraw(ctx context.Context, msg *MsgEmergencyWithdraw) (*MsgEmergencyWithdrawResponse, error)
}

type QueryVaultRequest struct{}

type QueryVaultResponse struct {
	Vault        Vault
	ExchangeRate string
}

type QueryNonceRequest struct {
	Owner string
}

type QueryNonceResponse struct {
	Nonce uint64
}

type QueryServer interface {
	Vault(ctx context.Context, req *QueryVaultRequest) (*QueryVaultResponse, error)
	Nonce(ctx context.Context, req *QueryNonceRequest) (*QueryNonceResponse, error)
}
