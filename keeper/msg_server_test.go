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

package keeper_test

import (
	"context"
	"testing"
	"time"

	"cosmossdk.io/core/header"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WeiDaiEcosystem/behodler-vaults/keeper"
	"github.com/WeiDaiEcosystem/behodler-vaults/types"
	"github.com/WeiDaiEcosystem/behodler-vaults/utils"
	"github.com/WeiDaiEcosystem/behodler-vaults/utils/mocks"
)

const (
	depositDenom = "udai"
	counterDenom = "uscx"
	lpDenom      = "ulp"
	testPoolId   = 7
)

var genesis = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

type vaultEnv struct {
	keeper *keeper.Keeper
	server types.MsgServer
	asset  mocks.AssetKeeper
	pool   *mocks.PoolKeeper
	ctx    sdk.Context
	fees   utils.Account
}

// setupVault creates a bootstrapped vault over a udai/uscx pool priced at
// two deposit units per counter unit, with a seven day lock, a 10% donation
// share and a 5% purchase fee. The vault account starts with one million
// uscx to pair deposits against.
func setupVault(t *testing.T) vaultEnv {
	asset := mocks.AssetKeeper{
		Balances:   make(map[string]sdk.Coins),
		Allowances: make(map[string]sdk.Coins),
		Failing:    make(map[string]bool),
	}
	pool := &mocks.PoolKeeper{
		Id:         testPoolId,
		Denom0:     depositDenom,
		Denom1:     counterDenom,
		Reserve0:   math.NewInt(2_000_000),
		Reserve1:   math.NewInt(1_000_000),
		LP:         lpDenom,
		Account:    sdk.AccAddress(utils.TestAccount().Bytes),
		MintAmount: math.NewInt(600),
		Assets:     asset,
	}

	k, ctx := mocks.VaultsKeeperWithKeepers(t, asset, pool, mocks.RouterKeeper{})
	server := keeper.NewMsgServer(k)
	ctx = ctx.WithHeaderInfo(header.Info{Time: genesis})

	fees := utils.TestAccount()
	_, err := server.Bootstrap(ctx, &types.MsgBootstrap{
		Owner:         mocks.Authority,
		DepositDenom:  depositDenom,
		CounterDenom:  counterDenom,
		PoolId:        testPoolId,
		FeeReceiver:   fees.Address,
		DurationDays:  7,
		DonationShare: 10,
		PurchaseFee:   5,
	})
	require.NoError(t, err)

	asset.Balances[types.ModuleAddress.String()] = sdk.NewCoins(
		sdk.NewCoin(counterDenom, math.NewInt(1_000_000)),
	)

	return vaultEnv{keeper: k, server: server, asset: asset, pool: pool, ctx: ctx, fees: fees}
}

// fund credits the account with deposit asset and approves the vault to
// spend the same amount.
func fund(env vaultEnv, account utils.Account, amount int64) {
	coin := sdk.NewCoin(depositDenom, math.NewInt(amount))
	env.asset.Balances[account.Address] = env.asset.Balances[account.Address].Add(coin)
	env.asset.Allowances[account.Address] = env.asset.Allowances[account.Address].Add(coin)
}

func balanceOf(env vaultEnv, address, denom string) math.Int {
	return env.asset.Balances[address].AmountOf(denom)
}

func hasEvent(ctx sdk.Context, eventType string) bool {
	for _, event := range ctx.EventManager().Events() {
		if event.Type == eventType {
			return true
		}
	}

	return false
}

func TestBootstrap(t *testing.T) {
	env := setupVault(t)
	receiver := utils.TestAccount()

	// ACT: Attempt to bootstrap with an invalid message.
	_, err := env.server.Bootstrap(env.ctx, nil)
	// ASSERT: The action should've failed due to invalid message.
	require.ErrorIs(t, err, types.ErrInvalidRequest)

	// ACT: Attempt to bootstrap as a non-owner.
	_, err = env.server.Bootstrap(env.ctx, &types.MsgBootstrap{
		Owner:       receiver.Address,
		FeeReceiver: receiver.Address,
	})
	// ASSERT: The action should've failed due to a bad owner.
	require.ErrorIs(t, err, types.ErrUnauthorized)

	// ACT: Attempt to bootstrap with an empty fee receiver.
	_, err = env.server.Bootstrap(env.ctx, &types.MsgBootstrap{
		Owner: mocks.Authority,
	})
	// ASSERT: The action should've failed due to the missing receiver.
	require.ErrorIs(t, err, types.ErrInvalidParameter)

	// ACT: Attempt to bootstrap with a foreign-prefix fee receiver.
	_, err = env.server.Bootstrap(env.ctx, &types.MsgBootstrap{
		Owner:       mocks.Authority,
		FeeReceiver: receiver.Invalid,
	})
	// ASSERT: The action should've failed due to the undecodable receiver.
	require.ErrorIs(t, err, types.ErrInvalidParameter)

	// ACT: Attempt to bootstrap with an out-of-range donation share.
	_, err = env.server.Bootstrap(env.ctx, &types.MsgBootstrap{
		Owner:         mocks.Authority,
		FeeReceiver:   receiver.Address,
		DonationShare: 101,
	})
	// ASSERT: The action should've failed due to the bad share.
	require.ErrorIs(t, err, types.ErrInvalidParameter)

	// ACT: Attempt to bootstrap with an out-of-range purchase fee.
	_, err = env.server.Bootstrap(env.ctx, &types.MsgBootstrap{
		Owner:       mocks.Authority,
		FeeReceiver: receiver.Address,
		PurchaseFee: 200,
	})
	// ASSERT: The action should've failed due to the bad fee.
	require.ErrorIs(t, err, types.ErrInvalidParameter)

	// ACT: Attempt to bootstrap with a negative duration.
	_, err = env.server.Bootstrap(env.ctx, &types.MsgBootstrap{
		Owner:        mocks.Authority,
		FeeReceiver:  receiver.Address,
		DurationDays: -1,
	})
	// ASSERT: The action should've failed due to the bad duration.
	require.ErrorIs(t, err, types.ErrInvalidParameter)

	// ACT: Bootstrap again with a fresh configuration.
	_, err = env.server.Bootstrap(env.ctx, &types.MsgBootstrap{
		Owner:         mocks.Authority,
		DepositDenom:  "uusd",
		CounterDenom:  "uwei",
		PoolId:        9,
		FeeReceiver:   receiver.Address,
		DurationDays:  30,
		DonationShare: 2,
		PurchaseFee:   1,
	})
	// ASSERT: The prior configuration was fully overwritten.
	require.NoError(t, err)
	config, found, err := env.keeper.GetConfig(env.ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "uusd", config.DepositDenom)
	assert.Equal(t, "uwei", config.CounterDenom)
	assert.Equal(t, uint64(9), config.PoolId)
	assert.Equal(t, receiver.Address, config.FeeReceiver)
	assert.Equal(t, int64(30*types.SecondsPerDay), config.StakeDuration)
	assert.Equal(t, int64(2), config.DonationShare)
	assert.Equal(t, int64(1), config.PurchaseFee)
}

func TestSetFeeReceiver(t *testing.T) {
	env := setupVault(t)
	receiver := utils.TestAccount()

	// ACT: Attempt to set the fee receiver as a non-owner.
	_, err := env.server.SetFeeReceiver(env.ctx, &types.MsgSetFeeReceiver{
		Owner:       receiver.Address,
		FeeReceiver: receiver.Address,
	})
	// ASSERT: The action should've failed due to a bad owner.
	require.ErrorIs(t, err, types.ErrUnauthorized)

	// ACT: Attempt to set an undecodable fee receiver.
	_, err = env.server.SetFeeReceiver(env.ctx, &types.MsgSetFeeReceiver{
		Owner:       mocks.Authority,
		FeeReceiver: receiver.Invalid,
	})
	// ASSERT: The action should've failed due to the bad receiver.
	require.ErrorIs(t, err, types.ErrInvalidParameter)

	// ACT: Rotate the fee receiver.
	_, err = env.server.SetFeeReceiver(env.ctx, &types.MsgSetFeeReceiver{
		Owner:       mocks.Authority,
		FeeReceiver: receiver.Address,
	})
	// ASSERT: Only the receiver changed; the rest of the config survived.
	require.NoError(t, err)
	config, _, err := env.keeper.GetConfig(env.ctx)
	require.NoError(t, err)
	assert.Equal(t, receiver.Address, config.FeeReceiver)
	assert.Equal(t, depositDenom, config.DepositDenom)
	assert.Equal(t, int64(7*types.SecondsPerDay), config.StakeDuration)
}

func TestSetParameters(t *testing.T) {
	env := setupVault(t)

	// ACT: Attempt to set parameters as a non-owner.
	_, err := env.server.SetParameters(env.ctx, &types.MsgSetParameters{
		Owner: utils.TestAccount().Address,
	})
	// ASSERT: The action should've failed due to a bad owner.
	require.ErrorIs(t, err, types.ErrUnauthorized)

	// ACT: Attempt to set an out-of-range donation share.
	_, err = env.server.SetParameters(env.ctx, &types.MsgSetParameters{
		Owner:         mocks.Authority,
		DonationShare: 150,
	})
	// ASSERT: The action should've failed due to the bad share.
	require.ErrorIs(t, err, types.ErrInvalidParameter)

	// ACT: Shorten the lock and adjust both splits.
	_, err = env.server.SetParameters(env.ctx, &types.MsgSetParameters{
		Owner:         mocks.Authority,
		DurationDays:  1,
		DonationShare: 0,
		PurchaseFee:   0,
	})
	// ASSERT: The configuration reflects the new values.
	require.NoError(t, err)
	config, _, err := env.keeper.GetConfig(env.ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(types.SecondsPerDay), config.StakeDuration)
	assert.Equal(t, int64(0), config.DonationShare)
	assert.Equal(t, int64(0), config.PurchaseFee)
}

func TestPurchaseLP(t *testing.T) {
	env := setupVault(t)
	alice := utils.TestAccount()

	// ACT: Attempt to purchase with a nil amount.
	_, err := env.server.PurchaseLP(env.ctx, &types.MsgPurchaseLP{
		Depositor: alice.Address,
		Amount:    math.Int{},
	})
	// ASSERT: The action should've failed due to the nil amount.
	require.ErrorIs(t, err, types.ErrInvalidParameter)

	// ACT: Attempt to purchase with a zero amount.
	_, err = env.server.PurchaseLP(env.ctx, &types.MsgPurchaseLP{
		Depositor: alice.Address,
		Amount:    math.ZeroInt(),
	})
	// ASSERT: The action should've failed due to the zero amount.
	require.ErrorIs(t, err, types.ErrInvalidParameter)

	// ACT: Attempt to purchase with an undecodable depositor.
	_, err = env.server.PurchaseLP(env.ctx, &types.MsgPurchaseLP{
		Depositor: alice.Invalid,
		Amount:    math.NewInt(1000),
	})
	// ASSERT: The action should've failed due to the bad address.
	require.ErrorIs(t, err, types.ErrInvalidRequest)

	// ACT: Attempt to purchase with no balance.
	_, err = env.server.PurchaseLP(env.ctx, &types.MsgPurchaseLP{
		Depositor: alice.Address,
		Amount:    math.NewInt(1000),
	})
	// ASSERT: The action should've failed due to insufficient balance.
	require.ErrorIs(t, err, types.ErrInsufficientBalance)

	// ARRANGE: Give Alice a balance but a short allowance.
	env.asset.Balances[alice.Address] = sdk.NewCoins(sdk.NewCoin(depositDenom, math.NewInt(1000)))
	env.asset.Allowances[alice.Address] = sdk.NewCoins(sdk.NewCoin(depositDenom, math.NewInt(999)))

	// ACT: Attempt to purchase beyond the approved amount.
	_, err = env.server.PurchaseLP(env.ctx, &types.MsgPurchaseLP{
		Depositor: alice.Address,
		Amount:    math.NewInt(1000),
	})
	// ASSERT: The action should've failed due to insufficient allowance.
	require.ErrorIs(t, err, types.ErrInsufficientAllowance)

	// ARRANGE: Full approval, but drain the vault's counter asset.
	env.asset.Allowances[alice.Address] = sdk.NewCoins(sdk.NewCoin(depositDenom, math.NewInt(1000)))
	holdings := env.asset.Balances[types.ModuleAddress.String()]
	env.asset.Balances[types.ModuleAddress.String()] = sdk.NewCoins()

	// ACT: Attempt to purchase against an unfunded vault.
	_, err = env.server.PurchaseLP(env.ctx, &types.MsgPurchaseLP{
		Depositor: alice.Address,
		Amount:    math.NewInt(1000),
	})
	// ASSERT: The action should've failed due to missing pool liquidity.
	require.ErrorIs(t, err, types.ErrInsufficientPoolLiquidity)
	env.asset.Balances[types.ModuleAddress.String()] = holdings

	// ACT: Purchase 1000 udai worth of liquidity.
	resp, err := env.server.PurchaseLP(env.ctx, &types.MsgPurchaseLP{
		Depositor: alice.Address,
		Amount:    math.NewInt(1000),
	})
	// ASSERT: 5% fee was split off and the 950 udai remainder was paired
	// with 475 uscx at the pool's two-to-one reserve ratio.
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(50), resp.Fee)
	assert.Equal(t, math.NewInt(600), resp.Liquidity)

	assert.True(t, balanceOf(env, alice.Address, depositDenom).IsZero())
	assert.Equal(t, math.NewInt(50), balanceOf(env, env.fees.Address, depositDenom))
	assert.Equal(t, math.NewInt(950), balanceOf(env, env.pool.Account.String(), depositDenom))
	assert.Equal(t, math.NewInt(475), balanceOf(env, env.pool.Account.String(), counterDenom))
	assert.Equal(t, math.NewInt(1_000_000-475), balanceOf(env, types.ModuleAddress.String(), counterDenom))
	assert.Equal(t, math.NewInt(600), balanceOf(env, types.ModuleAddress.String(), lpDenom))

	// ASSERT: The liquidity was queued under Alice at the header time.
	count, err := env.keeper.GetBatchCount(env.ctx, sdk.AccAddress(alice.Bytes))
	require.NoError(t, err)
	require.Equal(t, uint64(1), count)
	batch, found, err := env.keeper.GetBatch(env.ctx, sdk.AccAddress(alice.Bytes), 0)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, math.NewInt(600), batch.Amount)
	assert.Equal(t, genesis, batch.Timestamp)
	assert.False(t, batch.Claimed)

	assert.True(t, hasEvent(env.ctx, types.EventTypePurchase))
	assert.True(t, hasEvent(env.ctx, types.EventTypeBatchLocked))
}

func TestPurchaseLPWithoutConfig(t *testing.T) {
	// ARRANGE: A keeper that was never bootstrapped.
	k, ctx := mocks.VaultsKeeper(t)
	server := keeper.NewMsgServer(k)
	alice := utils.TestAccount()

	// ACT: Attempt to purchase before any configuration exists.
	_, err := server.PurchaseLP(ctx, &types.MsgPurchaseLP{
		Depositor: alice.Address,
		Amount:    math.NewInt(1000),
	})
	// ASSERT: The action should've failed due to the missing config.
	require.ErrorIs(t, err, types.ErrInvalidParameter)
}

func TestPurchaseLPFor(t *testing.T) {
	env := setupVault(t)
	alice, bob := utils.TestAccount(), utils.TestAccount()
	fund(env, alice, 1000)

	// ACT: Attempt to purchase for an undecodable beneficiary.
	_, err := env.server.PurchaseLPFor(env.ctx, &types.MsgPurchaseLPFor{
		Depositor:   alice.Address,
		Beneficiary: bob.Invalid,
		Amount:      math.NewInt(1000),
	})
	// ASSERT: The action should've failed due to the bad beneficiary.
	require.ErrorIs(t, err, types.ErrInvalidRequest)

	// ACT: Purchase with Alice's funds on Bob's behalf.
	resp, err := env.server.PurchaseLPFor(env.ctx, &types.MsgPurchaseLPFor{
		Depositor:   alice.Address,
		Beneficiary: bob.Address,
		Amount:      math.NewInt(1000),
	})
	// ASSERT: Alice paid, and the locked batch belongs to Bob.
	require.NoError(t, err)
	assert.True(t, balanceOf(env, alice.Address, depositDenom).IsZero())

	aliceCount, err := env.keeper.GetBatchCount(env.ctx, sdk.AccAddress(alice.Bytes))
	require.NoError(t, err)
	assert.Equal(t, uint64(0), aliceCount)
	bobCount, err := env.keeper.GetBatchCount(env.ctx, sdk.AccAddress(bob.Bytes))
	require.NoError(t, err)
	require.Equal(t, uint64(1), bobCount)
	batch, _, err := env.keeper.GetBatch(env.ctx, sdk.AccAddress(bob.Bytes), 0)
	require.NoError(t, err)
	assert.Equal(t, resp.Liquidity, batch.Amount)
}

func TestPurchaseLPReentrancy(t *testing.T) {
	env := setupVault(t)
	alice := utils.TestAccount()
	fund(env, alice, 2000)

	// ARRANGE: A transfer hook that re-enters the purchase path.
	var inner error
	hooked := env.asset
	hooked.Hook = func(ctx context.Context, denom string, from, to sdk.AccAddress, amount math.Int) error {
		_, inner = env.server.PurchaseLP(ctx, &types.MsgPurchaseLP{
			Depositor: alice.Address,
			Amount:    math.NewInt(1000),
		})
		return inner
	}
	env.keeper.SetAssetKeeper(hooked)

	// ACT: Attempt a purchase whose first transfer re-enters.
	_, err := env.server.PurchaseLP(env.ctx, &types.MsgPurchaseLP{
		Depositor: alice.Address,
		Amount:    math.NewInt(1000),
	})
	// ASSERT: The nested call was rejected and the outer one aborted.
	require.ErrorIs(t, inner, types.ErrReentrancy)
	require.ErrorIs(t, err, types.ErrTransferFailed)

	// ARRANGE: Restore the plain asset keeper.
	env.keeper.SetAssetKeeper(env.asset)

	// ACT: Purchase again without the hook.
	_, err = env.server.PurchaseLP(env.ctx, &types.MsgPurchaseLP{
		Depositor: alice.Address,
		Amount:    math.NewInt(1000),
	})
	// ASSERT: The guard was released by the failed attempt.
	require.NoError(t, err)
}

func TestClaimLP(t *testing.T) {
	env := setupVault(t)
	alice := utils.TestAccount()
	fund(env, alice, 1000)

	// ACT: Attempt to claim with an undecodable claimer.
	_, err := env.server.ClaimLP(env.ctx, &types.MsgClaimLP{Claimer: alice.Invalid})
	// ASSERT: The action should've failed due to the bad address.
	require.ErrorIs(t, err, types.ErrInvalidRequest)

	// ACT: Attempt to claim with an empty ledger.
	_, err = env.server.ClaimLP(env.ctx, &types.MsgClaimLP{Claimer: alice.Address})
	// ASSERT: The action should've failed due to nothing being locked.
	require.ErrorIs(t, err, types.ErrNothingToClaim)

	// ARRANGE: Lock a batch of 600 at genesis.
	_, err = env.server.PurchaseLP(env.ctx, &types.MsgPurchaseLP{
		Depositor: alice.Address,
		Amount:    math.NewInt(1000),
	})
	require.NoError(t, err)

	// ACT: Attempt to claim immediately.
	_, err = env.server.ClaimLP(env.ctx, &types.MsgClaimLP{Claimer: alice.Address})
	// ASSERT: The action should've failed due to the active lock.
	require.ErrorIs(t, err, types.ErrStillLocked)

	// ACT: Attempt to claim at the exact unlock instant.
	boundary := env.ctx.WithHeaderInfo(header.Info{Time: genesis.AddDate(0, 0, 7)})
	_, err = env.server.ClaimLP(boundary, &types.MsgClaimLP{Claimer: alice.Address})
	// ASSERT: Equality is not enough; the lock must be strictly exceeded.
	require.ErrorIs(t, err, types.ErrStillLocked)

	// ACT: Claim one second past the unlock instant.
	matured := env.ctx.WithHeaderInfo(header.Info{Time: genesis.AddDate(0, 0, 7).Add(time.Second)})
	resp, err := env.server.ClaimLP(matured, &types.MsgClaimLP{Claimer: alice.Address})
	// ASSERT: 10% of the 600 batch was donated, the rest paid out.
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(60), resp.Donation)
	assert.Equal(t, math.NewInt(540), resp.Payout)
	assert.Equal(t, math.NewInt(540), balanceOf(env, alice.Address, lpDenom))
	assert.Equal(t, math.NewInt(60), balanceOf(env, types.BurnAddress.String(), lpDenom))
	assert.True(t, hasEvent(matured, types.EventTypeClaim))

	// ASSERT: The cursor advanced and the batch is marked claimed.
	cursor, err := env.keeper.GetCursor(env.ctx, sdk.AccAddress(alice.Bytes))
	require.NoError(t, err)
	assert.Equal(t, uint64(1), cursor)
	batch, _, err := env.keeper.GetBatch(env.ctx, sdk.AccAddress(alice.Bytes), 0)
	require.NoError(t, err)
	assert.True(t, batch.Claimed)

	// ACT: Attempt a second claim.
	_, err = env.server.ClaimLP(matured, &types.MsgClaimLP{Claimer: alice.Address})
	// ASSERT: The action should've failed due to the exhausted ledger.
	require.ErrorIs(t, err, types.ErrNothingToClaim)
}

func TestClaimLPTransferFailure(t *testing.T) {
	env := setupVault(t)
	alice := utils.TestAccount()
	fund(env, alice, 1000)

	// ARRANGE: A matured batch, but a liquidity denom that cannot move.
	_, err := env.server.PurchaseLP(env.ctx, &types.MsgPurchaseLP{
		Depositor: alice.Address,
		Amount:    math.NewInt(1000),
	})
	require.NoError(t, err)
	env.asset.Failing[lpDenom] = true

	// ACT: Attempt to claim the matured batch.
	matured := env.ctx.WithHeaderInfo(header.Info{Time: genesis.AddDate(0, 0, 8)})
	_, err = env.server.ClaimLP(matured, &types.MsgClaimLP{Claimer: alice.Address})
	// ASSERT: The action should've failed due to the outbound transfer.
	require.ErrorIs(t, err, types.ErrTransferFailed)
}

func TestClaimLPOrder(t *testing.T) {
	env := setupVault(t)
	alice := utils.TestAccount()
	fund(env, alice, 2000)

	// ARRANGE: Two batches locked an hour apart, 600 then 400.
	_, err := env.server.PurchaseLP(env.ctx, &types.MsgPurchaseLP{
		Depositor: alice.Address,
		Amount:    math.NewInt(1000),
	})
	require.NoError(t, err)

	later := env.ctx.WithHeaderInfo(header.Info{Time: genesis.Add(time.Hour)})
	env.pool.MintAmount = math.NewInt(400)
	_, err = env.server.PurchaseLP(later, &types.MsgPurchaseLP{
		Depositor: alice.Address,
		Amount:    math.NewInt(1000),
	})
	require.NoError(t, err)

	// ACT: Claim when only the first batch has matured.
	midway := env.ctx.WithHeaderInfo(header.Info{Time: genesis.AddDate(0, 0, 7).Add(30 * time.Minute)})
	resp, err := env.server.ClaimLP(midway, &types.MsgClaimLP{Claimer: alice.Address})
	// ASSERT: The oldest batch was released first.
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(540), resp.Payout)

	// ACT: Attempt to claim the second batch too early.
	_, err = env.server.ClaimLP(midway, &types.MsgClaimLP{Claimer: alice.Address})
	// ASSERT: The action should've failed due to the younger lock.
	require.ErrorIs(t, err, types.ErrStillLocked)

	// ACT: Claim once the second batch has matured as well.
	afterBoth := env.ctx.WithHeaderInfo(header.Info{Time: genesis.AddDate(0, 0, 7).Add(2 * time.Hour)})
	resp, err = env.server.ClaimLP(afterBoth, &types.MsgClaimLP{Claimer: alice.Address})
	// ASSERT: The second batch was released with its own donation slice.
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(40), resp.Donation)
	assert.Equal(t, math.NewInt(360), resp.Payout)
}

func TestClaimLPAfterShortenedLock(t *testing.T) {
	env := setupVault(t)
	alice := utils.TestAccount()
	fund(env, alice, 1000)

	// ARRANGE: A batch locked under the original seven day duration.
	_, err := env.server.PurchaseLP(env.ctx, &types.MsgPurchaseLP{
		Depositor: alice.Address,
		Amount:    math.NewInt(1000),
	})
	require.NoError(t, err)

	// ACT: Shorten the lock to one day.
	_, err = env.server.SetParameters(env.ctx, &types.MsgSetParameters{
		Owner:         mocks.Authority,
		DurationDays:  1,
		DonationShare: 10,
		PurchaseFee:   5,
	})
	require.NoError(t, err)

	// ACT: Claim a day and a second after the lock was created.
	matured := env.ctx.WithHeaderInfo(header.Info{Time: genesis.AddDate(0, 0, 1).Add(time.Second)})
	_, err = env.server.ClaimLP(matured, &types.MsgClaimLP{Claimer: alice.Address})
	// ASSERT: The shortened duration applies to pre-existing batches.
	require.NoError(t, err)
}

func TestEnableForceUnlock(t *testing.T) {
	env := setupVault(t)
	alice := utils.TestAccount()
	fund(env, alice, 1000)

	// ACT: Attempt to force unlock as a non-owner.
	_, err := env.server.EnableForceUnlock(env.ctx, &types.MsgEnableForceUnlock{
		Owner: alice.Address,
	})
	// ASSERT: The action should've failed due to a bad owner.
	require.ErrorIs(t, err, types.ErrUnauthorized)

	// ARRANGE: A batch locked at genesis.
	_, err = env.server.PurchaseLP(env.ctx, &types.MsgPurchaseLP{
		Depositor: alice.Address,
		Amount:    math.NewInt(1000),
	})
	require.NoError(t, err)

	// ACT: Enable the override, twice.
	_, err = env.server.EnableForceUnlock(env.ctx, &types.MsgEnableForceUnlock{Owner: mocks.Authority})
	require.NoError(t, err)
	_, err = env.server.EnableForceUnlock(env.ctx, &types.MsgEnableForceUnlock{Owner: mocks.Authority})
	// ASSERT: Re-enabling is a harmless no-op.
	require.NoError(t, err)
	assert.True(t, hasEvent(env.ctx, types.EventTypeForceUnlock))

	unlocked, err := env.keeper.GetForceUnlocked(env.ctx)
	require.NoError(t, err)
	assert.True(t, unlocked)

	// ACT: Claim one second later.
	soon := env.ctx.WithHeaderInfo(header.Info{Time: genesis.Add(time.Second)})
	resp, err := env.server.ClaimLP(soon, &types.MsgClaimLP{Claimer: alice.Address})
	// ASSERT: The batch matured immediately under the zeroed duration.
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(540), resp.Payout)
}

func TestPurchaseLPReversedPairOrder(t *testing.T) {
	// ARRANGE: A vault whose deposit denom sorts above its counter denom,
	// so the pool's canonical order puts the counter side first.
	asset := mocks.AssetKeeper{
		Balances:   make(map[string]sdk.Coins),
		Allowances: make(map[string]sdk.Coins),
		Failing:    make(map[string]bool),
	}
	pool := &mocks.PoolKeeper{
		Id:         testPoolId,
		Denom0:     depositDenom,
		Denom1:     counterDenom,
		Reserve0:   math.NewInt(2_000_000),
		Reserve1:   math.NewInt(1_000_000),
		LP:         lpDenom,
		Account:    sdk.AccAddress(utils.TestAccount().Bytes),
		MintAmount: math.NewInt(600),
		Assets:     asset,
	}
	k, ctx := mocks.VaultsKeeperWithKeepers(t, asset, pool, mocks.RouterKeeper{})
	server := keeper.NewMsgServer(k)
	ctx = ctx.WithHeaderInfo(header.Info{Time: genesis})

	fees := utils.TestAccount()
	_, err := server.Bootstrap(ctx, &types.MsgBootstrap{
		Owner:         mocks.Authority,
		DepositDenom:  counterDenom,
		CounterDenom:  depositDenom,
		PoolId:        testPoolId,
		FeeReceiver:   fees.Address,
		DurationDays:  7,
		DonationShare: 10,
		PurchaseFee:   5,
	})
	require.NoError(t, err)

	asset.Balances[types.ModuleAddress.String()] = sdk.NewCoins(
		sdk.NewCoin(depositDenom, math.NewInt(1_000_000)),
	)

	alice := utils.TestAccount()
	coin := sdk.NewCoin(counterDenom, math.NewInt(1000))
	asset.Balances[alice.Address] = sdk.NewCoins(coin)
	asset.Allowances[alice.Address] = sdk.NewCoins(coin)

	// ACT: Purchase 1000 uscx worth of liquidity.
	_, err = server.PurchaseLP(ctx, &types.MsgPurchaseLP{
		Depositor: alice.Address,
		Amount:    math.NewInt(1000),
	})
	// ASSERT: The reserves were unpacked in pair order, so 950 uscx was
	// quoted against the udai side at two udai per uscx.
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(950), asset.Balances[pool.Account.String()].AmountOf(counterDenom))
	assert.Equal(t, math.NewInt(1900), asset.Balances[pool.Account.String()].AmountOf(depositDenom))
	assert.Equal(t, math.NewInt(1_000_000-1900), asset.Balances[types.ModuleAddress.String()].AmountOf(depositDenom))
}
