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

package utils

import (
	"github.com/cosmos/cosmos-sdk/crypto/keys/ed25519"
	"github.com/cosmos/cosmos-sdk/types/bech32"
)

// Account is a test principal. Keys are ed25519 so accounts can sign
// delegated-redeem authorizations directly.
type Account struct {
	Key     *ed25519.PrivKey
	Address string
	Bytes   []byte
}

func TestAccount() Account {
	key := ed25519.GenPrivKey()
	bytes := key.PubKey().Address().Bytes()
	address, _ := bech32.ConvertAndEncode("cosmos", bytes)

	return Account{
		Key:     key,
		Address: address,
		Bytes:   bytes,
	}
}

// PubKey returns the raw 32-byte ed25519 public key.
func (a Account) PubKey() []byte {
	return a.Key.PubKey().Bytes()
}

// Sign signs the given message with the account key.
func (a Account) Sign(message []byte) []byte {
	signature, err := a.Key.Sign(message)
	if err != nil {
		panic(err)
	}
	return signature
}
