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
	"strconv"
	"time"

	"cosmossdk.io/core/event"
	"cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/WeiDaiEcosystem/behodler-vaults/types"
)

var _ types.MsgServer = &msgServer{}

type msgServer struct {
	*Keeper
}

func NewMsgServer(keeper *Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

func (m msgServer) Bootstrap(ctx context.Context, msg *types.MsgBootstrap) (*types.MsgBootstrapResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}
	if msg.Owner != m.authority {
		return nil, errors.Wrapf(types.ErrUnauthorized, "expected %s, got %s", m.authority, msg.Owner)
	}

	// Each call rebuilds the configuration from scratch; there is no
	// first-call protection.
	config := types.VaultConfig{
		DepositDenom: msg.DepositDenom,
		CounterDenom: msg.CounterDenom,
		PoolId:       msg.PoolId,
	}

	if err := m.applyFeeReceiver(&config, msg.FeeReceiver); err != nil {
		return nil, err
	}
	if err := applyParameters(&config, msg.DurationDays, msg.DonationShare, msg.PurchaseFee); err != nil {
		return nil, err
	}

	if err := m.SetConfig(ctx, config); err != nil {
		return nil, errors.Wrap(err, "unable to persist vault configuration")
	}

	return &types.MsgBootstrapResponse{}, nil
}

func (m msgServer) SetFeeReceiver(ctx context.Context, msg *types.MsgSetFeeReceiver) (*types.MsgSetFeeReceiverResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}
	if msg.Owner != m.authority {
		return nil, errors.Wrapf(types.ErrUnauthorized, "expected %s, got %s", m.authority, msg.Owner)
	}

	config, _, err := m.GetConfig(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch vault configuration")
	}

	if err := m.applyFeeReceiver(&config, msg.FeeReceiver); err != nil {
		return nil, err
	}

	if err := m.SetConfig(ctx, config); err != nil {
		return nil, errors.Wrap(err, "unable to persist vault configuration")
	}

	return &types.MsgSetFeeReceiverResponse{}, nil
}

func (m msgServer) SetParameters(ctx context.Context, msg *types.MsgSetParameters) (*types.MsgSetParametersResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}
	if msg.Owner != m.authority {
		return nil, errors.Wrapf(types.ErrUnauthorized, "expected %s, got %s", m.authority, msg.Owner)
	}

	config, _, err := m.GetConfig(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch vault configuration")
	}

	if err := applyParameters(&config, msg.DurationDays, msg.DonationShare, msg.PurchaseFee); err != nil {
		return nil, err
	}

	if err := m.SetConfig(ctx, config); err != nil {
		return nil, errors.Wrap(err, "unable to persist vault configuration")
	}

	return &types.MsgSetParametersResponse{}, nil
}

func (m msgServer) PurchaseLP(ctx context.Context, msg *types.MsgPurchaseLP) (*types.MsgPurchaseLPResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}

	return m.PurchaseLPFor(ctx, &types.MsgPurchaseLPFor{
		Depositor:   msg.Depositor,
		Beneficiary: msg.Depositor,
		Amount:      msg.Amount,
	})
}

func (m msgServer) PurchaseLPFor(ctx context.Context, msg *types.MsgPurchaseLPFor) (*types.MsgPurchaseLPResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}

	release, err := m.enterPurchase(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return nil, errors.Wrap(types.ErrInvalidParameter, "deposit amount must be positive")
	}

	depositorBz, err := m.address.StringToBytes(msg.Depositor)
	if err != nil {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "invalid depositor address: %s", msg.Depositor)
	}
	depositor := sdk.AccAddress(depositorBz)

	beneficiaryBz, err := m.address.StringToBytes(msg.Beneficiary)
	if err != nil {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "invalid beneficiary address: %s", msg.Beneficiary)
	}
	beneficiary := sdk.AccAddress(beneficiaryBz)

	config, found, err := m.GetConfig(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch vault configuration")
	}
	if !found {
		return nil, errors.Wrap(types.ErrInvalidParameter, "vault is not configured")
	}

	balance := m.asset.GetBalance(ctx, config.DepositDenom, depositor)
	if balance.LT(msg.Amount) {
		return nil, errors.Wrapf(types.ErrInsufficientBalance, "balance %s is below deposit %s", balance.String(), msg.Amount.String())
	}

	allowance := m.asset.GetAllowance(ctx, config.DepositDenom, depositor, types.ModuleAddress)
	if allowance.LT(msg.Amount) {
		return nil, errors.Wrapf(types.ErrInsufficientAllowance, "allowance %s is below deposit %s", allowance.String(), msg.Amount.String())
	}

	fee := msg.Amount.MulRaw(config.PurchaseFee).QuoRaw(types.MaxSharePercent)
	exchange := msg.Amount.Sub(fee)

	required, err := m.quoteCounterAsset(ctx, config, exchange)
	if err != nil {
		return nil, err
	}

	liquidity, err := m.mintLiquidity(ctx, config, depositor, fee, exchange, required)
	if err != nil {
		return nil, err
	}

	headerInfo := m.header.GetHeaderInfo(ctx)
	index, err := m.AppendBatch(ctx, beneficiary, types.LockedBatch{
		Amount:    liquidity,
		Timestamp: headerInfo.Time,
		Claimed:   false,
	})
	if err != nil {
		return nil, errors.Wrap(err, "unable to queue locked batch")
	}

	if err := m.event.EventManager(ctx).EmitKV(ctx, types.EventTypePurchase,
		event.Attribute{Key: types.AttributeKeyDepositor, Value: msg.Depositor},
		event.Attribute{Key: types.AttributeKeyBeneficiary, Value: msg.Beneficiary},
		event.Attribute{Key: types.AttributeKeyAmount, Value: msg.Amount.String()},
		event.Attribute{Key: types.AttributeKeyFee, Value: fee.String()},
		event.Attribute{Key: types.AttributeKeyExchange, Value: exchange.String()},
		event.Attribute{Key: types.AttributeKeyLiquidity, Value: liquidity.String()},
	); err != nil {
		return nil, errors.Wrap(err, "unable to emit purchase event")
	}

	if err := m.event.EventManager(ctx).EmitKV(ctx, types.EventTypeBatchLocked,
		event.Attribute{Key: types.AttributeKeyHolder, Value: msg.Beneficiary},
		event.Attribute{Key: types.AttributeKeyIndex, Value: strconv.FormatUint(index, 10)},
		event.Attribute{Key: types.AttributeKeyLiquidity, Value: liquidity.String()},
		event.Attribute{Key: types.AttributeKeyTimestamp, Value: headerInfo.Time.UTC().Format(time.RFC3339)},
	); err != nil {
		return nil, errors.Wrap(err, "unable to emit batch locked event")
	}

	return &types.MsgPurchaseLPResponse{Liquidity: liquidity, Fee: fee}, nil
}

func (m msgServer) ClaimLP(ctx context.Context, msg *types.MsgClaimLP) (*types.MsgClaimLPResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}

	claimerBz, err := m.address.StringToBytes(msg.Claimer)
	if err != nil {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "invalid claimer address: %s", msg.Claimer)
	}
	claimer := sdk.AccAddress(claimerBz)

	config, found, err := m.GetConfig(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch vault configuration")
	}
	if !found {
		return nil, errors.Wrap(types.ErrInvalidParameter, "vault is not configured")
	}

	cursor, err := m.GetCursor(ctx, claimer)
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch claim cursor")
	}
	count, err := m.GetBatchCount(ctx, claimer)
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch batch count")
	}
	if cursor >= count {
		return nil, errors.Wrap(types.ErrNothingToClaim, "all batches claimed")
	}

	batch, found, err := m.GetBatch(ctx, claimer, cursor)
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch locked batch")
	}
	if !found {
		return nil, errors.Wrapf(types.ErrNothingToClaim, "batch %d missing", cursor)
	}

	duration, err := m.EffectiveStakeDuration(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "unable to determine stake duration")
	}

	// Strictly greater than: a claim at the exact boundary instant fails.
	headerInfo := m.header.GetHeaderInfo(ctx)
	elapsed := headerInfo.Time.Sub(batch.Timestamp)
	if elapsed <= time.Duration(duration)*time.Second {
		return nil, errors.Wrapf(
			types.ErrStillLocked,
			"batch %d unlocks after %s", cursor, batch.Timestamp.Add(time.Duration(duration)*time.Second).UTC().Format(time.RFC3339),
		)
	}

	// The cursor and claimed flag move before any outbound transfer so a
	// reentrant claim observes an already-advanced cursor. A transfer
	// failure below aborts the operation and discards these writes with it.
	if err := m.Cursors.Set(ctx, claimer, cursor+1); err != nil {
		return nil, errors.Wrap(err, "unable to advance claim cursor")
	}
	batch.Claimed = true
	if err := m.SetBatch(ctx, claimer, cursor, batch); err != nil {
		return nil, errors.Wrap(err, "unable to mark batch claimed")
	}

	donation := batch.Donation(config.DonationShare)
	payout := batch.Amount.Sub(donation)

	if err := m.event.EventManager(ctx).EmitKV(ctx, types.EventTypeClaim,
		event.Attribute{Key: types.AttributeKeyHolder, Value: msg.Claimer},
		event.Attribute{Key: types.AttributeKeyIndex, Value: strconv.FormatUint(cursor, 10)},
		event.Attribute{Key: types.AttributeKeyDonation, Value: donation.String()},
		event.Attribute{Key: types.AttributeKeyPayout, Value: payout.String()},
	); err != nil {
		return nil, errors.Wrap(err, "unable to emit claim event")
	}

	lpDenom, err := m.pool.LPDenom(ctx, config.PoolId)
	if err != nil {
		return nil, errors.Wrap(err, "unable to resolve liquidity denom")
	}

	if err := m.asset.Transfer(ctx, lpDenom, types.ModuleAddress, types.BurnAddress, donation); err != nil {
		return nil, errors.Wrap(types.ErrTransferFailed, err.Error())
	}
	if err := m.asset.Transfer(ctx, lpDenom, types.ModuleAddress, claimer, payout); err != nil {
		return nil, errors.Wrap(types.ErrTransferFailed, err.Error())
	}

	return &types.MsgClaimLPResponse{Payout: payout, Donation: donation}, nil
}

func (m msgServer) EnableForceUnlock(ctx context.Context, msg *types.MsgEnableForceUnlock) (*types.MsgEnableForceUnlockResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}
	if msg.Owner != m.authority {
		return nil, errors.Wrapf(types.ErrUnauthorized, "expected %s, got %s", m.authority, msg.Owner)
	}

	// Setting an already-set flag is a no-op; there is no disable path.
	if err := m.ForceUnlocked.Set(ctx, true); err != nil {
		return nil, errors.Wrap(err, "unable to enable force unlock")
	}

	if err := m.event.EventManager(ctx).EmitKV(ctx, types.EventTypeForceUnlock); err != nil {
		return nil, errors.Wrap(err, "unable to emit force unlock event")
	}

	return &types.MsgEnableForceUnlockResponse{}, nil
}

// applyFeeReceiver validates and assigns the fee receiver on the supplied
// configuration.
func (m msgServer) applyFeeReceiver(config *types.VaultConfig, receiver string) error {
	if receiver == "" {
		return errors.Wrap(types.ErrInvalidParameter, "fee receiver cannot be empty")
	}
	if _, err := m.address.StringToBytes(receiver); err != nil {
		return errors.Wrapf(types.ErrInvalidParameter, "invalid fee receiver: %s", receiver)
	}

	config.FeeReceiver = receiver

	return nil
}

// applyParameters validates the percentage splits and assigns the maturity
// duration, converting the day-denominated input into seconds.
func applyParameters(config *types.VaultConfig, durationDays, donationShare, purchaseFee int64) error {
	if donationShare < 0 || donationShare > types.MaxSharePercent {
		return errors.Wrapf(types.ErrInvalidParameter, "donation share %d exceeds 100", donationShare)
	}
	if purchaseFee < 0 || purchaseFee > types.MaxSharePercent {
		return errors.Wrapf(types.ErrInvalidParameter, "purchase fee %d exceeds 100", purchaseFee)
	}
	if durationDays < 0 {
		return errors.Wrapf(types.ErrInvalidParameter, "stake duration %d cannot be negative", durationDays)
	}

	config.StakeDuration = durationDays * types.SecondsPerDay
	config.DonationShare = donationShare
	config.PurchaseFee = purchaseFee

	return nil
}
