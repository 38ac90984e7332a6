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

	"cosmossdk.io/math"
)

// MsgServer is the vault's mutating operation surface. Every handler executes
// as one atomic unit: an error return discards all of the operation's writes.
type MsgServer interface {
	Bootstrap(ctx context.Context, msg *MsgBootstrap) (*MsgBootstrapResponse, error)
	SetFeeReceiver(ctx context.Context, msg *MsgSetFeeReceiver) (*MsgSetFeeReceiverResponse, error)
	SetParameters(ctx context.Context, msg *MsgSetParameters) (*MsgSetParametersResponse, error)
	PurchaseLP(ctx context.Context, msg *MsgPurchaseLP) (*MsgPurchaseLPResponse, error)
	PurchaseLPFor(ctx context.Context, msg *MsgPurchaseLPFor) (*MsgPurchaseLPResponse, error)
	ClaimLP(ctx context.Context, msg *MsgClaimLP) (*MsgClaimLPResponse, error)
	EnableForceUnlock(ctx context.Context, msg *MsgEnableForceUnlock) (*MsgEnableForceUnlockResponse, error)
}

// MsgBootstrap (re)initializes the whole vault configuration. It is not
// idempotency-protected: the owner may call it repeatedly and each call fully
// overwrites the prior configuration.
type MsgBootstrap struct {
	Owner         string
	DepositDenom  string
	CounterDenom  string
	PoolId        uint64
	FeeReceiver   string
	DurationDays  int64
	DonationShare int64
	PurchaseFee   int64
}

type MsgBootstrapResponse struct{}

type MsgSetFeeReceiver struct {
	Owner       string
	FeeReceiver string
}

type MsgSetFeeReceiverResponse struct{}

// MsgSetParameters updates the maturity duration (given in days) and the two
// percentage splits.
type MsgSetParameters struct {
	Owner         string
	DurationDays  int64
	DonationShare int64
	PurchaseFee   int64
}

type MsgSetParametersResponse struct{}

// MsgPurchaseLP deposits on behalf of the depositor itself.
type MsgPurchaseLP struct {
	Depositor string
	Amount    math.Int
}

// MsgPurchaseLPFor deposits funds drawn from the depositor while queueing the
// resulting batch under the beneficiary.
type MsgPurchaseLPFor struct {
	Depositor   string
	Beneficiary string
	Amount      math.Int
}

type MsgPurchaseLPResponse struct {
	// Liquidity is the credit minted by the pool and locked in the new batch.
	Liquidity math.Int
	// Fee is the purchase-fee slice diverted to the fee receiver.
	Fee math.Int
}

// MsgClaimLP releases the claimer's next matured batch, FIFO.
type MsgClaimLP struct {
	Claimer string
}

type MsgClaimLPResponse struct {
	// Payout is the liquidity transferred to the claimer.
	Payout math.Int
	// Donation is the slice transferred to the burn address.
	Donation math.Int
}

// MsgEnableForceUnlock irreversibly zeroes the effective maturity duration
// for every depositor and every batch. No disable counterpart exists.
type MsgEnableForceUnlock struct {
	Owner string
}

type MsgEnableForceUnlockResponse struct{}
