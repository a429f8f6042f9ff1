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
	"errors"

	"cosmossdk.io/collections"
	sdkerrors "cosmossdk.io/errors"

	"github.com/minsuj-colligence/talken-stable-vault/types"
)

// GetVault returns the vault record, or ErrNotInitialized when no vault has
// been created yet.
func (k *Keeper) GetVault(ctx context.Context) (types.Vault, error) {
	vault, err := k.Vault.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.Vault{}, types.ErrNotInitialized
		}
		return types.Vault{}, sdkerrors.Wrap(err, "unable to get vault from state")
	}

	return vault, nil
}

// SetVault persists the vault record, rejecting any write that would violate
// the totals invariant or the fee bound.
func (k *Keeper) SetVault(ctx context.Context, vault types.Vault) error {
	if err := vault.Validate(); err != nil {
		return err
	}

	return k.Vault.Set(ctx, vault)
}

// HasVault reports whether the vault record exists.
func (k *Keeper) HasVault(ctx context.Context) (bool, error) {
	return k.Vault.Has(ctx)
}

// GetNonce returns the stored replay counter for an owner. Owners that have
// never delegated start at zero.
func (k *Keeper) GetNonce(ctx context.Context, owner []byte) (uint64, error) {
	nonce, err := k.Nonces.Get(ctx, owner)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return 0, nil
		}
		return 0, sdkerrors.Wrap(err, "unable to get nonce from state")
	}

	return nonce, nil
}

// SetNonce persists an owner's replay counter.
func (k *Keeper) SetNonce(ctx context.Context, owner []byte, nonce uint64) error {
	return k.Nonces.Set(ctx, owner, nonce)
}
