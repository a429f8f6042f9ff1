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

import "cosmossdk.io/errors"

// OwnerNonce pairs a delegating principal with its replay counter.
type OwnerNonce struct {
	Owner string `json:"owner"`
	Nonce uint64 `json:"nonce"`
}

// GenesisState carries the vault record and the nonce table. A nil vault
// means the module starts uninitialized.
type GenesisState struct {
	Vault  *Vault       `json:"vault,omitempty"`
	Nonces []OwnerNonce `json:"nonces"`
}

func DefaultGenesisState() *GenesisState {
	return &GenesisState{}
}

func (gs *GenesisState) Validate() error {
	if gs.Vault != nil {
		if err := gs.Vault.Validate(); err != nil {
			return err
		}
	}

	seen := make(map[string]bool, len(gs.Nonces))
	for _, entry := range gs.Nonces {
		if entry.Owner == "" {
			return errors.Wrap(ErrInvalidRequest, "nonce owner cannot be empty")
		}
		if seen[entry.Owner] {
			return errors.Wrapf(ErrInvalidRequest, "duplicate nonce entry for owner %s", entry.Owner)
		}
		seen[entry.Owner] = true
	}

	return nil
}
