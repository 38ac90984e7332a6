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
	"cosmossdk.io/collections"
	"cosmossdk.io/core/address"
	"cosmossdk.io/core/event"
	"cosmossdk.io/core/header"
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"

	"github.com/WeiDaiEcosystem/behodler-vaults/types"
)

type Keeper struct {
	authority string

	store store.KVStoreService

	logger  log.Logger
	header  header.Service
	event   event.Service
	address address.Codec
	asset   types.AssetKeeper
	pool    types.PoolKeeper
	router  types.RouterKeeper

	Config        collections.Item[types.VaultConfig]
	ForceUnlocked collections.Item[bool]
	Entered       collections.Item[bool]
	Batches       collections.Map[collections.Pair[[]byte, uint64], types.LockedBatch]
	BatchCounts   collections.Map[[]byte, uint64]
	Cursors       collections.Map[[]byte, uint64]
}

func NewKeeper(
	authority string,
	store store.KVStoreService,
	logger log.Logger,
	header header.Service,
	event event.Service,
	address address.Codec,
	asset types.AssetKeeper,
	pool types.PoolKeeper,
	router types.RouterKeeper,
) *Keeper {
	builder := collections.NewSchemaBuilder(store)

	keeper := &Keeper{
		authority: authority,

		store: store,

		logger:  logger.With("module", types.ModuleName),
		header:  header,
		event:   event,
		address: address,
		asset:   asset,
		pool:    pool,
		router:  router,

		Config:        collections.NewItem(builder, types.ConfigKey, "config", types.JSONValue[types.VaultConfig]("vault_config")),
		ForceUnlocked: collections.NewItem(builder, types.ForceUnlockKey, "force_unlocked", collections.BoolValue),
		Entered:       collections.NewItem(builder, types.EnteredKey, "entered", collections.BoolValue),
		Batches:       collections.NewMap(builder, types.BatchPrefix, "batches", collections.PairKeyCodec(collections.BytesKey, collections.Uint64Key), types.JSONValue[types.LockedBatch]("locked_batch")),
		BatchCounts:   collections.NewMap(builder, types.BatchCountPrefix, "batch_counts", collections.BytesKey, collections.Uint64Value),
		Cursors:       collections.NewMap(builder, types.CursorPrefix, "cursors", collections.BytesKey, collections.Uint64Value),
	}

	_, err := builder.Build()
	if err != nil {
		panic(err)
	}

	return keeper
}

// SetAssetKeeper overwrites the asset keeper used by this module.
func (k *Keeper) SetAssetKeeper(asset types.AssetKeeper) {
	k.asset = asset
}

// GetAuthority returns the principal allowed to mutate the vault configuration.
func (k *Keeper) GetAuthority() string {
	return k.authority
}
