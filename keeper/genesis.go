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

	"cosmossdk.io/errors"

	"github.com/minsuj-colligence/talken-stable-vault/types"
)

// InitGenesis restores the vault record and the nonce table.
func (k *Keeper) InitGenesis(ctx context.Context, genesis *types.GenesisState) error {
	if err := genesis.Validate(); err != nil {
		return err
	}

	if genesis.Vault != nil {
		if err := k.SetVault(ctx, *genesis.Vault); err != nil {
			return errors.Wrap(err, "unable to restore vault")
		}
	}

	for _, entry := range genesis.Nonces {
		owner, err := k.address.StringToBytes(entry.Owner)
		if err != nil {
			return errors.Wrapf(types.ErrInvalidRequest, "invalid nonce owner address: %s", entry.Owner)
		}
		if err := k.SetNonce(ctx, owner, entry.Nonce); err != nil {
			return errors.Wrapf(err, "unable to restore nonce for %s", entry.Owner)
		}
	}

	return nil
}

// ExportGenesis snapshots the vault record and the nonce table.
func (k *Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	genesis := types.DefaultGenesisState()

	exists, err := k.HasVault(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "unable to check vault existence")
	}
	if exists {
		vault, err := k.GetVault(ctx)
		if err != nil {
			return nil, err
		}
		genesis.Vault = &vault
	}

	err = k.Nonces.Walk(ctx, nil, func(ownerBz []byte, nonce uint64) (bool, error) {
		owner, err := k.address.BytesToString(ownerBz)
		if err != nil {
			return true, errors.Wrap(err, "unable to encode nonce owner address")
		}
		genesis.Nonces = append(genesis.Nonces, types.OwnerNonce{Owner: owner, Nonce: nonce})
		return false, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "unable to export nonces")
	}

	return genesis, nil
}
