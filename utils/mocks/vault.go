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

package mocks

import (
	"testing"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec/address"
	"github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/minsuj-colligence/talken-stable-vault/keeper"
	"github.com/minsuj-colligence/talken-stable-vault/types"
)

// VaultKeeper creates a store-backed keeper with fresh mock collaborators.
func VaultKeeper(t testing.TB) (*keeper.Keeper, BankKeeper, sdk.Context) {
	bank := BankKeeper{Balances: make(map[string]sdk.Coins)}
	k, ctx := VaultKeeperWithKeepers(t, bank, AccountKeeper{})
	return k, bank, ctx
}

// VaultKeeperWithKeepers creates a store-backed keeper wired to the provided
// collaborators. Each call builds an independent store, so tests get fully
// isolated vault instances.
func VaultKeeperWithKeepers(t testing.TB, bank types.BankKeeper, account types.AccountKeeper) (*keeper.Keeper, sdk.Context) {
	key := storetypes.NewKVStoreKey(types.ModuleName)
	tkey := storetypes.NewTransientStoreKey("transient_tsv")
	wrapper := testutil.DefaultContextWithDB(t, key, tkey)

	k := keeper.NewKeeper(
		runtime.NewKVStoreService(key),
		log.NewNopLogger(),
		runtime.ProvideHeaderInfoService(nil),
		runtime.ProvideEventService(),
		address.NewBech32Codec("cosmos"),
		account,
		bank,
	)

	return k, wrapper.Ctx
}
