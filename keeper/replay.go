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

// CheckAndConsumeNonce accepts a delegated authorization exactly once: the
// presented nonce must equal the stored counter, which is then incremented.
// Message execution is serialized per store branch, so two delegated requests
// carrying the same nonce can never both observe the same stored value; the
// increment commits or reverts together with the rest of the message.
func (k *Keeper) CheckAndConsumeNonce(ctx context.Context, owner []byte, presented uint64, deadline int64) error {
	now := k.header.GetHeaderInfo(ctx).Time
	if now.Unix() > deadline {
		return errors.Wrapf(types.ErrDeadlineExpired, "deadline %d passed at %d", deadline, now.Unix())
	}

	stored, err := k.GetNonce(ctx, owner)
	if err != nil {
		return err
	}
	if presented != stored {
		return errors.Wrapf(types.ErrNonceMismatch, "expected nonce %d, got %d", stored, presented)
	}

	if err := k.SetNonce(ctx, owner, stored+1); err != nil {
		return errors.Wrap(err, "unable to persist consumed nonce")
	}

	return nil
}
