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
	"time"

	"cosmossdk.io/math"
)

// QueryServer is the vault's read-only surface.
type QueryServer interface {
	LockedPosition(ctx context.Context, req *QueryLockedPosition) (*QueryLockedPositionResponse, error)
	LockedPositionCount(ctx context.Context, req *QueryLockedPositionCount) (*QueryLockedPositionCountResponse, error)
	StakeDuration(ctx context.Context, req *QueryStakeDuration) (*QueryStakeDurationResponse, error)
	VaultConfig(ctx context.Context, req *QueryVaultConfig) (*QueryVaultConfigResponse, error)
	ForceUnlocked(ctx context.Context, req *QueryForceUnlocked) (*QueryForceUnlockedResponse, error)
	NextClaim(ctx context.Context, req *QueryNextClaim) (*QueryNextClaimResponse, error)
}

type QueryLockedPosition struct {
	Holder string
	Index  uint64
}

type QueryLockedPositionResponse struct {
	Holder    string
	Amount    math.Int
	Timestamp time.Time
	Claimed   bool
}

type QueryLockedPositionCount struct {
	Holder string
}

type QueryLockedPositionCountResponse struct {
	// Count is the number of batches ever queued for the holder, claimed
	// batches included.
	Count uint64
}

type QueryStakeDuration struct{}

type QueryStakeDurationResponse struct {
	// DurationSeconds is zero once the vault has been force-unlocked.
	DurationSeconds int64
}

type QueryVaultConfig struct{}

type QueryVaultConfigResponse struct {
	Config VaultConfig
}

type QueryForceUnlocked struct{}

type QueryForceUnlockedResponse struct {
	Enabled bool
}

type QueryNextClaim struct {
	Holder string
}

type QueryNextClaimResponse struct {
	// Index is the holder's cursor: the position of the next unclaimed batch.
	Index uint64
	// Amount is the liquidity locked in that batch.
	Amount math.Int
	// UnlockTime is the instant after which the batch becomes claimable.
	// Claims require strictly more elapsed time than the stake duration, so
	// a claim at exactly UnlockTime still fails.
	UnlockTime time.Time
	// Claimable reports whether a claim would succeed at query time.
	Claimable bool
}
