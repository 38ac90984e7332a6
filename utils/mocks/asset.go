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
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/WeiDaiEcosystem/behodler-vaults/types"
)

var _ types.AssetKeeper = AssetKeeper{}

// AssetKeeper is an in-memory asset ledger. Balances and Allowances are keyed
// by bech32 address; Allowances holds the coins each owner has approved for
// the vault module. Denoms listed in Failing abort any transfer touching
// them. Hook, when set, runs before a transfer is applied and can veto it;
// tests use it to model reentrant callers.
type AssetKeeper struct {
	Balances   map[string]sdk.Coins
	Allowances map[string]sdk.Coins
	Failing    map[string]bool
	Hook       func(ctx context.Context, denom string, from, to sdk.AccAddress, amount math.Int) error
}

func (k AssetKeeper) GetBalance(_ context.Context, denom string, address sdk.AccAddress) math.Int {
	return k.Balances[address.String()].AmountOf(denom)
}

func (k AssetKeeper) GetAllowance(_ context.Context, denom string, owner, spender sdk.AccAddress) math.Int {
	if !spender.Equals(types.ModuleAddress) {
		return math.ZeroInt()
	}

	return k.Allowances[owner.String()].AmountOf(denom)
}

func (k AssetKeeper) Transfer(ctx context.Context, denom string, from, to sdk.AccAddress, amount math.Int) error {
	if k.Failing[denom] {
		return fmt.Errorf("transfers of %s are failing", denom)
	}
	if k.Hook != nil {
		if err := k.Hook(ctx, denom, from, to, amount); err != nil {
			return err
		}
	}

	return k.move(denom, from, to, amount)
}

func (k AssetKeeper) TransferFrom(ctx context.Context, denom string, spender, owner, to sdk.AccAddress, amount math.Int) error {
	if k.Failing[denom] {
		return fmt.Errorf("transfers of %s are failing", denom)
	}
	if k.Hook != nil {
		if err := k.Hook(ctx, denom, owner, to, amount); err != nil {
			return err
		}
	}

	allowance := k.GetAllowance(ctx, denom, owner, spender)
	if allowance.LT(amount) {
		return fmt.Errorf("allowance %s is below transfer %s", allowance, amount)
	}
	k.Allowances[owner.String()] = k.Allowances[owner.String()].Sub(sdk.NewCoin(denom, amount))

	return k.move(denom, owner, to, amount)
}

func (k AssetKeeper) move(denom string, from, to sdk.AccAddress, amount math.Int) error {
	coin := sdk.NewCoin(denom, amount)

	balance := k.Balances[from.String()]
	if balance.AmountOf(denom).LT(amount) {
		return fmt.Errorf("balance %s is below transfer %s", balance.AmountOf(denom), amount)
	}

	k.Balances[from.String()] = balance.Sub(coin)
	k.Balances[to.String()] = k.Balances[to.String()].Add(coin)

	return nil
}
