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

package keeper

import (
	"context"

	"cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/WeiDaiEcosystem/behodler-vaults/types"
)

// mintLiquidity funds the pool from both sides of the pair and mints the
// resulting liquidity credit to the vault. The counter side comes out of the
// vault's own holdings, the deposit side out of the depositor's, with the fee
// slice diverted to the fee receiver. All four steps belong to one atomic
// unit: any failure aborts the enclosing operation with no partial effect.
func (k *Keeper) mintLiquidity(
	ctx context.Context,
	config types.VaultConfig,
	depositor sdk.AccAddress,
	fee, exchange, required math.Int,
) (math.Int, error) {
	holdings := k.asset.GetBalance(ctx, config.CounterDenom, types.ModuleAddress)
	if holdings.LT(required) {
		return math.ZeroInt(), errors.Wrapf(
			types.ErrInsufficientPoolLiquidity,
			"vault holds %s %s, quote requires %s",
			holdings.String(), config.CounterDenom, required.String(),
		)
	}

	poolAddress, err := k.pool.Address(ctx, config.PoolId)
	if err != nil {
		return math.ZeroInt(), errors.Wrap(err, "unable to resolve pool address")
	}

	feeReceiver, err := k.address.StringToBytes(config.FeeReceiver)
	if err != nil {
		return math.ZeroInt(), errors.Wrapf(types.ErrInvalidParameter, "invalid fee receiver: %s", config.FeeReceiver)
	}

	if err := k.asset.Transfer(ctx, config.CounterDenom, types.ModuleAddress, poolAddress, required); err != nil {
		return math.ZeroInt(), errors.Wrap(types.ErrTransferFailed, err.Error())
	}
	if err := k.asset.TransferFrom(ctx, config.DepositDenom, types.ModuleAddress, depositor, poolAddress, exchange); err != nil {
		return math.ZeroInt(), errors.Wrap(types.ErrTransferFailed, err.Error())
	}
	if err := k.asset.TransferFrom(ctx, config.DepositDenom, types.ModuleAddress, depositor, feeReceiver, fee); err != nil {
		return math.ZeroInt(), errors.Wrap(types.ErrTransferFailed, err.Error())
	}

	liquidity, err := k.pool.Mint(ctx, config.PoolId, types.ModuleAddress)
	if err != nil {
		return math.ZeroInt(), errors.Wrap(err, "unable to mint pool liquidity")
	}

	return liquidity, nil
}
