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

// Event types emitted for external observers and indexers.
const (
	EventTypeInitialized       = "tsv_vault_initialized"
	EventTypeDeposit           = "tsv_vault_deposit"
	EventTypeRedeem            = "tsv_vault_redeem"
	EventTypeFeeUpdated        = "tsv_vault_fee_updated"
	EventTypeEmergencyWithdraw = "tsv_vault_emergency_withdraw"
)

// Event attribute keys. Each event carries a fixed set of these.
const (
	AttributeKeyAuthority  = "authority"
	AttributeKeyAssetDenom = "asset_denom"
	AttributeKeyShareDenom = "share_denom"
	AttributeKeyFeeBps     = "fee_bps"
	AttributeKeyDepositor  = "depositor"
	AttributeKeyOwner      = "owner"
	AttributeKeyReceiver   = "receiver"
	AttributeKeyRecipient  = "recipient"
	AttributeKeyAssets     = "assets"
	AttributeKeyShares     = "shares"
	AttributeKeyFee        = "fee"
	AttributeKeyOldFeeBps  = "old_fee_bps"
	AttributeKeyNewFeeBps  = "new_fee_bps"
	AttributeKeyAmount     = "amount"
)
