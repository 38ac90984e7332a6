// SPDX-License-Identifier: BUSL-1.1
//
// Copyright (C) 2025, NASD Inc. All rights reserved.
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

package mocks

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/WeiDaiEcosystem/behodler-vaults/types"
)

var _ types.PoolKeeper = &PoolKeeper{}
var _ types.RouterKeeper = RouterKeeper{}

// PoolKeeper is a single-pool market maker stub. Denom0 must sort byte-wise
// below Denom1, matching the canonical pair order the vault relies on. Mint
// credits MintAmount of the LP denom to the recipient through Assets so a
// minted position is immediately transferable.
type PoolKeeper struct {
	Id                 uint64
	Denom0, Denom1     string
	Reserve0, Reserve1 math.Int
	LP                 string
	Account            sdk.AccAddress
	MintAmount         math.Int
	Assets             AssetKeeper

	Err error
}

func (k *PoolKeeper) Pair(_ context.Context, poolID uint64) (string, string, error) {
	if err := k.check(poolID); err != nil {
		return "", "", err
	}

	return k.Denom0, k.Denom1, nil
}

func (k *PoolKeeper) Reserves(_ context.Context, poolID uint64) (math.Int, math.Int, error) {
	if err := k.check(poolID); err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}

	return k.Reserve0, k.Reserve1, nil
}

func (k *PoolKeeper) Address(_ context.Context, poolID uint64) (sdk.AccAddress, error) {
	if err := k.check(poolID); err != nil {
		return nil, err
	}

	return k.Account, nil
}

func (k *PoolKeeper) LPDenom(_ context.Context, poolID uint64) (string, error) {
	if err := k.check(poolID); err != nil {
		return "", err
	}

	return k.LP, nil
}

func (k *PoolKeeper) Mint(_ context.Context, poolID uint64, to sdk.AccAddress) (math.Int, error) {
	if err := k.check(poolID); err != nil {
		return math.ZeroInt(), err
	}

	coin := sdk.NewCoin(k.LP, k.MintAmount)
	k.Assets.Balances[to.String()] = k.Assets.Balances[to.String()].Add(coin)

	return k.MintAmount, nil
}

func (k *PoolKeeper) check(poolID uint64) error {
	if k.Err != nil {
		return k.Err
	}
	if poolID != k.Id {
		return fmt.Errorf("unknown pool %d", poolID)
	}

	return nil
}

// RouterKeeper prices one pool side against the other with floor division.
type RouterKeeper struct {
	Err error
}

func (k RouterKeeper) Quote(_ context.Context, amount, reserveIn, reserveOut math.Int) (math.Int, error) {
	if k.Err != nil {
		return math.ZeroInt(), k.Err
	}
	if !reserveIn.IsPositive() || !reserveOut.IsPositive() {
		return math.ZeroInt(), fmt.Errorf("pool has no reserves to quote against")
	}

	return amount.Mul(reserveOut).Quo(reserveIn), nil
}
