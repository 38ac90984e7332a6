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
	"time"

	"cosmossdk.io/math"
)

// SecondsPerDay converts the day-denominated stake duration accepted by the
// parameter setters into the seconds persisted in state.
const SecondsPerDay = 86_400

// MaxSharePercent bounds the donation share and purchase fee.
const MaxSharePercent = 100

// VaultConfig is the single mutable configuration record of the vault. It is
// only ever written through owner-gated operations.
type VaultConfig struct {
	// DepositDenom identifies the asset users deposit.
	DepositDenom string `json:"deposit_denom"`
	// CounterDenom identifies the asset the vault pairs deposits with.
	CounterDenom string `json:"counter_denom"`
	// PoolId references the market-maker pool liquidity is minted into.
	PoolId uint64 `json:"pool_id"`
	// FeeReceiver collects the purchase fee slice of every deposit.
	FeeReceiver string `json:"fee_receiver"`
	// StakeDuration is the maturity period, in seconds.
	StakeDuration int64 `json:"stake_duration"`
	// DonationShare is the percentage of a claimed batch diverted to the
	// burn address, in [0, 100].
	DonationShare int64 `json:"donation_share"`
	// PurchaseFee is the percentage of every deposit diverted to the fee
	// receiver, in [0, 100].
	PurchaseFee int64 `json:"purchase_fee"`
}

// LockedBatch is the liquidity credit minted by one deposit, locked until the
// stake duration has elapsed. Batches are append-only: a claim flips Claimed
// exactly once and nothing ever deletes an entry.
type LockedBatch struct {
	Amount    math.Int  `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
	Claimed   bool      `json:"claimed"`
}

// Donation returns the floor slice of the batch diverted to the burn address
// for the given share percentage.
func (b LockedBatch) Donation(share int64) math.Int {
	return b.Amount.MulRaw(share).QuoRaw(MaxSharePercent)
}
