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

import authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

const ModuleName = "vaults"

var (
	// ModuleAddress is the vault's own account. It custodies the counter
	// asset used for pairing and the liquidity minted against deposits.
	ModuleAddress = authtypes.NewModuleAddress(ModuleName)

	// BurnAddress receives the donation slice of every claim. Nothing ever
	// spends from it.
	BurnAddress = authtypes.NewModuleAddress(ModuleName + "/burn")
)

var (
	ConfigKey        = []byte("vaults/config")
	ForceUnlockKey   = []byte("vaults/force_unlock")
	EnteredKey       = []byte("vaults/entered")
	BatchPrefix      = []byte("vaults/batch/")
	BatchCountPrefix = []byte("vaults/batch_count/")
	CursorPrefix     = []byte("vaults/cursor/")
)
