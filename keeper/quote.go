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

	"github.com/WeiDaiEcosystem/behodler-vaults/types"
)

// orderedReserves unpacks the pool's reserve pair into (deposit, counter)
// order. The pool reports reserves keyed by its own canonical pair order,
// byte-wise lower denom first; the same comparison is applied here so the
// two bookkeepings can never disagree. The comparison is a pure tie-break on
// denom bytes, not a value judgment.
func orderedReserves(config types.VaultConfig, reserve0, reserve1 math.Int) (reserveDeposit, reserveCounter math.Int) {
	if config.DepositDenom < config.CounterDenom {
		return reserve0, reserve1
	}

	return reserve1, reserve0
}

// quoteCounterAsset computes the counter-asset amount required to match the
// given deposit amount at the pool's current reserve ratio, using the
// router's floor-division quote.
func (k *Keeper) quoteCounterAsset(ctx context.Context, config types.VaultConfig, amount math.Int) (math.Int, error) {
	reserve0, reserve1, err := k.pool.Reserves(ctx, config.PoolId)
	if err != nil {
		return math.ZeroInt(), errors.Wrap(err, "unable to fetch pool reserves")
	}

	reserveDeposit, reserveCounter := orderedReserves(config, reserve0, reserve1)

	required, err := k.router.Quote(ctx, amount, reserveDeposit, reserveCounter)
	if err != nil {
		return math.ZeroInt(), errors.Wrap(err, "unable to quote counter asset")
	}

	return required, nil
}
