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

package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minsuj-colligence/talken-stable-vault/types"
	"github.com/minsuj-colligence/talken-stable-vault/utils"
	"github.com/minsuj-colligence/talken-stable-vault/utils/mocks"
)

func TestGenesisRoundTrip(t *testing.T) {
	k, _, ctx := mocks.VaultKeeper(t)
	authority, alice, bob := utils.TestAccount(), utils.TestAccount(), utils.TestAccount()

	// ARRANGE: A genesis state with a seeded vault and consumed nonces.
	genesis := &types.GenesisState{
		Vault: &types.Vault{
			Authority:   authority.Address,
			AssetDenom:  "uusdc",
			ShareDenom:  "utsv",
			TotalAssets: 1_500_000,
			TotalShares: 1_000_000,
			FeeBps:      10,
		},
		Nonces: []types.OwnerNonce{
			{Owner: alice.Address, Nonce: 3},
			{Owner: bob.Address, Nonce: 1},
		},
	}

	// ACT: Restore and re-export the state.
	require.NoError(t, k.InitGenesis(ctx, genesis))
	exported, err := k.ExportGenesis(ctx)
	require.NoError(t, err)

	// ASSERT
	require.NotNil(t, exported.Vault)
	assert.Equal(t, *genesis.Vault, *exported.Vault)
	assert.ElementsMatch(t, genesis.Nonces, exported.Nonces)

	nonce, err := k.GetNonce(ctx, alice.Bytes)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), nonce)
}

func TestGenesisEmpty(t *testing.T) {
	k, _, ctx := mocks.VaultKeeper(t)

	// ACT: Restore the default state and export it back.
	require.NoError(t, k.InitGenesis(ctx, types.DefaultGenesisState()))
	exported, err := k.ExportGenesis(ctx)
	require.NoError(t, err)

	// ASSERT: No vault record and no nonces.
	assert.Nil(t, exported.Vault)
	assert.Empty(t, exported.Nonces)
}

func TestGenesisInvalid(t *testing.T) {
	k, _, ctx := mocks.VaultKeeper(t)
	authority, alice := utils.TestAccount(), utils.TestAccount()

	// ACT: Attempt to restore a vault with shares but no backing assets.
	err := k.InitGenesis(ctx, &types.GenesisState{
		Vault: &types.Vault{
			Authority:   authority.Address,
			AssetDenom:  "uusdc",
			ShareDenom:  "utsv",
			TotalAssets: 0,
			TotalShares: 100,
		},
	})
	// ASSERT
	require.ErrorIs(t, err, types.ErrInvalidVaultState)

	// ACT: Attempt to restore duplicate nonce entries for one owner.
	err = k.InitGenesis(ctx, &types.GenesisState{
		Nonces: []types.OwnerNonce{
			{Owner: alice.Address, Nonce: 1},
			{Owner: alice.Address, Nonce: 2},
		},
	})
	// ASSERT
	require.Error(t, err)
}
