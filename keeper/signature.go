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
	"bytes"

	"cosmossdk.io/errors"
	"github.com/cosmos/cosmos-sdk/crypto/keys/ed25519"

	"github.com/minsuj-colligence/talken-stable-vault/types"
)

// verifyDelegatedRedeem checks the owner's off-chain authorization: the
// presented public key must derive the owner address, and the signature must
// verify over the canonical digest of (owner, shares, receiver, nonce,
// deadline). Anything short of a full match is ErrInvalidSignature; the
// caller learns nothing about which part failed.
func (k *Keeper) verifyDelegatedRedeem(owner []byte, shares uint64, receiver []byte, nonce uint64, deadline int64, pubKey, signature []byte) error {
	if len(pubKey) != ed25519.PubKeySize {
		return errors.Wrapf(types.ErrInvalidSignature, "invalid public key length %d", len(pubKey))
	}

	key := ed25519.PubKey{Key: pubKey}
	if !bytes.Equal(key.Address().Bytes(), owner) {
		return errors.Wrap(types.ErrInvalidSignature, "public key does not belong to owner")
	}

	digest := types.DelegatedRedeemDigest(owner, shares, receiver, nonce, deadline)
	if !key.VerifySignature(digest, signature) {
		return errors.Wrap(types.ErrInvalidSignature, "signature verification failed")
	}

	return nil
}
