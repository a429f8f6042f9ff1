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

import "encoding/binary"

// delegatedRedeemDomain separates delegated-redeem signatures from any other
// payload an owner key might sign.
var delegatedRedeemDomain = []byte("tsv/delegated-redeem|")

// DelegatedRedeemDigest builds the canonical byte string an owner signs to
// authorize a relayed redemption. Addresses are length-prefixed so that no
// two distinct (owner, shares, receiver, nonce, deadline) tuples can encode
// to the same bytes.
func DelegatedRedeemDigest(owner []byte, shares uint64, receiver []byte, nonce uint64, deadline int64) []byte {
	buf := make([]byte, 0, len(delegatedRedeemDomain)+len(owner)+len(receiver)+28)

	buf = append(buf, delegatedRedeemDomain...)
	buf = binary.BigEndian.AppendUint16(buf, uint16(len(owner)))
	buf = append(buf, owner...)
	buf = binary.BigEndian.AppendUint64(buf, shares)
	buf = binary.BigEndian.AppendUint16(buf, uint16(len(receiver)))
	buf = append(buf, receiver...)
	buf = binary.BigEndian.AppendUint64(buf, nonce)
	buf = binary.BigEndian.AppendUint64(buf, uint64(deadline))

	return buf
}
