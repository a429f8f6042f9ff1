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

import (
	"encoding/binary"
	"encoding/json"
	"fmt"

	collcodec "cosmossdk.io/collections/codec"
)

// VaultValue is the collections value codec for the vault record. The wire
// layout is deterministic: each string is length-prefixed with a big-endian
// uint16, followed by the big-endian totals and fee.
var VaultValue collcodec.ValueCodec[Vault] = vaultValueCodec{}

type vaultValueCodec struct{}

func (vaultValueCodec) Encode(value Vault) ([]byte, error) {
	buf := make([]byte, 0, 6+len(value.Authority)+len(value.AssetDenom)+len(value.ShareDenom)+20)

	for _, field := range []string{value.Authority, value.AssetDenom, value.ShareDenom} {
		if len(field) > 0xFFFF {
			return nil, fmt.Errorf("vault field exceeds maximum encodable length: %d", len(field))
		}
		buf = binary.BigEndian.AppendUint16(buf, uint16(len(field)))
		buf = append(buf, field...)
	}

	buf = binary.BigEndian.AppendUint64(buf, value.TotalAssets)
	buf = binary.BigEndian.AppendUint64(buf, value.TotalShares)
	buf = binary.BigEndian.AppendUint32(buf, value.FeeBps)

	return buf, nil
}

func (vaultValueCodec) Decode(b []byte) (Vault, error) {
	var vault Vault

	readString := func() (string, error) {
		if len(b) < 2 {
			return "", fmt.Errorf("truncated vault record: %d bytes remaining", len(b))
		}
		n := int(binary.BigEndian.Uint16(b))
		b = b[2:]
		if len(b) < n {
			return "", fmt.Errorf("truncated vault record: expected %d bytes, got %d", n, len(b))
		}
		s := string(b[:n])
		b = b[n:]
		return s, nil
	}

	var err error
	if vault.Authority, err = readString(); err != nil {
		return Vault{}, err
	}
	if vault.AssetDenom, err = readString(); err != nil {
		return Vault{}, err
	}
	if vault.ShareDenom, err = readString(); err != nil {
		return Vault{}, err
	}

	if len(b) != 20 {
		return Vault{}, fmt.Errorf("invalid vault record trailer: expected 20 bytes, got %d", len(b))
	}
	vault.TotalAssets = binary.BigEndian.Uint64(b[0:8])
	vault.TotalShares = binary.BigEndian.Uint64(b[8:16])
	vault.FeeBps = binary.BigEndian.Uint32(b[16:20])

	return vault, nil
}

func (vaultValueCodec) EncodeJSON(value Vault) ([]byte, error) {
	return json.Marshal(value)
}

func (vaultValueCodec) DecodeJSON(b []byte) (Vault, error) {
	var vault Vault
	err := json.Unmarshal(b, &vault)
	return vault, err
}

func (vaultValueCodec) Stringify(value Vault) string {
	return fmt.Sprintf(
		"Vault(authority=%s, asset=%s, share=%s, totalAssets=%d, totalShares=%d, feeBps=%d)",
		value.Authority, value.AssetDenom, value.ShareDenom,
		value.TotalAssets, value.TotalShares, value.FeeBps,
	)
}

func (vaultValueCodec) ValueType() string {
	return "tsv.Vault"
}
