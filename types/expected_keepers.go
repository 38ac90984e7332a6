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

package types

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// AssetKeeper is the expected interface of the asset module holding the
// deposit asset, the counter asset and the minted liquidity credit. The
// vault never inspects its accounting; it only moves funds and propagates
// failures.
type AssetKeeper interface {
	GetBalance(ctx context.Context, denom string, address sdk.AccAddress) math.Int
	GetAllowance(ctx context.Context, denom string, owner, spender sdk.AccAddress) math.Int
	Transfer(ctx context.Context, denom string, from, to sdk.AccAddress, amount math.Int) error
	TransferFrom(ctx context.Context, denom string, spender, owner, to sdk.AccAddress, amount math.Int) error
}

// PoolKeeper is the expected interface of the market-maker pool the vault
// mints liquidity into. Pair and Reserves report the pool's two sides in the
// pool's own canonical order: the byte-wise lower denom first.
type PoolKeeper interface {
	Pair(ctx context.Context, poolID uint64) (denom0, denom1 string, err error)
	Reserves(ctx context.Context, poolID uint64) (reserve0, reserve1 math.Int, err error)
	Address(ctx context.Context, poolID uint64) (sdk.AccAddress, error)
	LPDenom(ctx context.Context, poolID uint64) (string, error)
	Mint(ctx context.Context, poolID uint64, to sdk.AccAddress) (math.Int, error)
}

// RouterKeeper is the expected interface of the routing module that prices
// one pool side against the other: floor(amount * reserveOut / reserveIn).
type RouterKeeper interface {
	Quote(ctx context.Context, amount, reserveIn, reserveOut math.Int) (math.Int, error)
}
