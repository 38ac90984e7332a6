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
	"errors"

	"cosmossdk.io/collections"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/WeiDaiEcosystem/behodler-vaults/types"
)

// GetConfig returns the stored vault configuration. The boolean flag reports
// whether the vault has been bootstrapped.
func (k *Keeper) GetConfig(ctx context.Context) (types.VaultConfig, bool, error) {
	config, err := k.Config.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.VaultConfig{}, false, nil
		}
		return types.VaultConfig{}, false, err
	}

	return config, true, nil
}

// SetConfig persists the provided vault configuration in state.
func (k *Keeper) SetConfig(ctx context.Context, config types.VaultConfig) error {
	return k.Config.Set(ctx, config)
}

// GetForceUnlocked reports whether the one-way maturity override has been
// enabled. A missing entry means the vault has never been force-unlocked.
func (k *Keeper) GetForceUnlocked(ctx context.Context) (bool, error) {
	enabled, err := k.ForceUnlocked.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	return enabled, nil
}

// EffectiveStakeDuration returns the maturity period in seconds that applies
// right now: zero once the vault has been force-unlocked, the configured
// duration otherwise.
func (k *Keeper) EffectiveStakeDuration(ctx context.Context) (int64, error) {
	unlocked, err := k.GetForceUnlocked(ctx)
	if err != nil {
		return 0, err
	}
	if unlocked {
		return 0, nil
	}

	config, _, err := k.GetConfig(ctx)
	if err != nil {
		return 0, err
	}

	return config.StakeDuration, nil
}

// GetBatchCount returns the number of batches ever queued for the holder.
// Missing entries are treated as zero without error.
func (k *Keeper) GetBatchCount(ctx context.Context, holder sdk.AccAddress) (uint64, error) {
	count, err := k.BatchCounts.Get(ctx, holder)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}

	return count, nil
}

// GetCursor returns the index of the holder's next unclaimed batch. Missing
// entries are treated as zero: a fresh ledger claims from the front.
func (k *Keeper) GetCursor(ctx context.Context, holder sdk.AccAddress) (uint64, error) {
	cursor, err := k.Cursors.Get(ctx, holder)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}

	return cursor, nil
}

// GetBatch fetches one locked batch by holder and position. The boolean flag
// indicates whether the batch exists in state.
func (k *Keeper) GetBatch(ctx context.Context, holder sdk.AccAddress, index uint64) (types.LockedBatch, bool, error) {
	batch, err := k.Batches.Get(ctx, collections.Join(holder.Bytes(), index))
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.LockedBatch{}, false, nil
		}
		return types.LockedBatch{}, false, err
	}

	return batch, true, nil
}

// SetBatch overwrites a single ledger entry. Claiming is the only mutation a
// batch ever sees; entries are never removed.
func (k *Keeper) SetBatch(ctx context.Context, holder sdk.AccAddress, index uint64, batch types.LockedBatch) error {
	return k.Batches.Set(ctx, collections.Join(holder.Bytes(), index), batch)
}

// AppendBatch queues a new locked batch at the tail of the holder's ledger
// and returns the index it was stored under.
func (k *Keeper) AppendBatch(ctx context.Context, holder sdk.AccAddress, batch types.LockedBatch) (uint64, error) {
	count, err := k.GetBatchCount(ctx, holder)
	if err != nil {
		return 0, err
	}

	if err := k.Batches.Set(ctx, collections.Join(holder.Bytes(), count), batch); err != nil {
		return 0, err
	}
	if err := k.BatchCounts.Set(ctx, holder, count+1); err != nil {
		return 0, err
	}

	return count, nil
}

// IterateBatches walks the holder's ledger in queue order. Returning true
// from the callback stops the iteration early.
func (k *Keeper) IterateBatches(ctx context.Context, holder sdk.AccAddress, fn func(index uint64, batch types.LockedBatch) (bool, error)) error {
	count, err := k.GetBatchCount(ctx, holder)
	if err != nil {
		return err
	}

	for index := uint64(0); index < count; index++ {
		batch, found, err := k.GetBatch(ctx, holder, index)
		if err != nil {
			return err
		}
		if !found {
			continue
		}

		stop, err := fn(index, batch)
		if err != nil || stop {
			return err
		}
	}

	return nil
}

// enterPurchase acquires the purchase-path mutual exclusion flag. It returns
// a release closure that must run on every exit path; callers defer it
// immediately so the flag cannot be left set by an error return.
func (k *Keeper) enterPurchase(ctx context.Context) (func(), error) {
	entered, err := k.Entered.Get(ctx)
	if err != nil && !errors.Is(err, collections.ErrNotFound) {
		return nil, err
	}
	if entered {
		return nil, types.ErrReentrancy
	}

	if err := k.Entered.Set(ctx, true); err != nil {
		return nil, err
	}

	return func() {
		if err := k.Entered.Set(ctx, false); err != nil {
			k.logger.Error("unable to release purchase guard", "err", err)
		}
	}, nil
}
