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
	"time"

	"cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/WeiDaiEcosystem/behodler-vaults/types"
)

var _ types.QueryServer = &queryServer{}

type queryServer struct {
	*Keeper
}

func NewQueryServer(keeper *Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

func (q queryServer) LockedPosition(ctx context.Context, req *types.QueryLockedPosition) (*types.QueryLockedPositionResponse, error) {
	if req == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "request cannot be nil")
	}

	holderBz, err := q.address.StringToBytes(req.Holder)
	if err != nil {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "invalid holder address: %s", req.Holder)
	}

	batch, found, err := q.GetBatch(ctx, sdk.AccAddress(holderBz), req.Index)
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch locked batch")
	}
	if !found {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "no batch at position %d", req.Index)
	}

	return &types.QueryLockedPositionResponse{
		Holder:    req.Holder,
		Amount:    batch.Amount,
		Timestamp: batch.Timestamp,
		Claimed:   batch.Claimed,
	}, nil
}

func (q queryServer) LockedPositionCount(ctx context.Context, req *types.QueryLockedPositionCount) (*types.QueryLockedPositionCountResponse, error) {
	if req == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "request cannot be nil")
	}

	holderBz, err := q.address.StringToBytes(req.Holder)
	if err != nil {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "invalid holder address: %s", req.Holder)
	}

	count, err := q.GetBatchCount(ctx, sdk.AccAddress(holderBz))
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch batch count")
	}

	return &types.QueryLockedPositionCountResponse{Count: count}, nil
}

func (q queryServer) StakeDuration(ctx context.Context, req *types.QueryStakeDuration) (*types.QueryStakeDurationResponse, error) {
	if req == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "request cannot be nil")
	}

	duration, err := q.EffectiveStakeDuration(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "unable to determine stake duration")
	}

	return &types.QueryStakeDurationResponse{DurationSeconds: duration}, nil
}

func (q queryServer) VaultConfig(ctx context.Context, req *types.QueryVaultConfig) (*types.QueryVaultConfigResponse, error) {
	if req == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "request cannot be nil")
	}

	config, _, err := q.GetConfig(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch vault configuration")
	}

	return &types.QueryVaultConfigResponse{Config: config}, nil
}

func (q queryServer) ForceUnlocked(ctx context.Context, req *types.QueryForceUnlocked) (*types.QueryForceUnlockedResponse, error) {
	if req == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "request cannot be nil")
	}

	enabled, err := q.GetForceUnlocked(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch force unlock flag")
	}

	return &types.QueryForceUnlockedResponse{Enabled: enabled}, nil
}

func (q queryServer) NextClaim(ctx context.Context, req *types.QueryNextClaim) (*types.QueryNextClaimResponse, error) {
	if req == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "request cannot be nil")
	}

	holderBz, err := q.address.StringToBytes(req.Holder)
	if err != nil {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "invalid holder address: %s", req.Holder)
	}
	holder := sdk.AccAddress(holderBz)

	cursor, err := q.GetCursor(ctx, holder)
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch claim cursor")
	}
	count, err := q.GetBatchCount(ctx, holder)
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch batch count")
	}
	if cursor >= count {
		return nil, errors.Wrap(types.ErrNothingToClaim, "all batches claimed")
	}

	batch, found, err := q.GetBatch(ctx, holder, cursor)
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch locked batch")
	}
	if !found {
		return nil, errors.Wrapf(types.ErrNothingToClaim, "batch %d missing", cursor)
	}

	duration, err := q.EffectiveStakeDuration(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "unable to determine stake duration")
	}

	unlockTime := batch.Timestamp.Add(time.Duration(duration) * time.Second)
	now := q.header.GetHeaderInfo(ctx).Time

	return &types.QueryNextClaimResponse{
		Index:      cursor,
		Amount:     batch.Amount,
		UnlockTime: unlockTime,
		Claimable:  now.Sub(batch.Timestamp) > time.Duration(duration)*time.Second,
	}, nil
}
