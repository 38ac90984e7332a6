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
	"testing"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec/address"
	"github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/WeiDaiEcosystem/behodler-vaults/keeper"
	"github.com/WeiDaiEcosystem/behodler-vaults/types"
	"github.com/WeiDaiEcosystem/behodler-vaults/utils"
)

// Authority is the principal allowed to mutate the vault configuration in
// tests.
var Authority = utils.TestAccount().Address

func VaultsKeeper(t testing.TB) (*keeper.Keeper, sdk.Context) {
	asset := AssetKeeper{
		Balances:   make(map[string]sdk.Coins),
		Allowances: make(map[string]sdk.Coins),
		Failing:    make(map[string]bool),
	}
	pool := &PoolKeeper{Assets: asset}

	return VaultsKeeperWithKeepers(t, asset, pool, RouterKeeper{})
}

func VaultsKeeperWithKeepers(t testing.TB, asset AssetKeeper, pool *PoolKeeper, router RouterKeeper) (*keeper.Keeper, sdk.Context) {
	key := storetypes.NewKVStoreKey(types.ModuleName)
	tkey := storetypes.NewTransientStoreKey("transient_" + types.ModuleName)
	ctx := testutil.DefaultContextWithDB(t, key, tkey).Ctx

	k := keeper.NewKeeper(
		Authority,
		runtime.NewKVStoreService(key),
		log.NewNopLogger(),
		runtime.ProvideHeaderInfoService(&runtime.AppBuilder{}),
		runtime.ProvideEventService(),
		address.NewBech32Codec("cosmos"),
		asset,
		pool,
		router,
	)

	return k, ctx
}
