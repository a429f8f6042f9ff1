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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minsuj-colligence/talken-stable-vault/types"
)

func TestVaultCodecRoundTrip(t *testing.T) {
	// ARRANGE
	vault := testVault(1_500_000, 1_500_000, 10)

	// ACT
	bz, err := types.VaultValue.Encode(vault)
	require.NoError(t, err)
	decoded, err := types.VaultValue.Decode(bz)
	require.NoError(t, err)

	// ASSERT
	assert.Equal(t, vault, decoded)
}

func TestVaultCodecDeterministic(t *testing.T) {
	vault := testVault(42, 7, 100)

	a, err := types.VaultValue.Encode(vault)
	require.NoError(t, err)
	b, err := types.VaultValue.Encode(vault)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestVaultCodecTruncated(t *testing.T) {
	bz, err := types.VaultValue.Encode(testVault(1, 1, 0))
	require.NoError(t, err)

	// ASSERT: Truncating the record at any point fails decoding rather than
	// producing a partial vault.
	for i := 0; i < len(bz); i++ {
		_, err := types.VaultValue.Decode(bz[:i])
		assert.Error(t, err, "decode succeeded with %d of %d bytes", i, len(bz))
	}
}
