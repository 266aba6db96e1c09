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
	"testing"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	addresscodec "github.com/cosmos/cosmos-sdk/codec/address"
	"github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"yieldseeker.tokenpage.xyz/keeper"
	"yieldseeker.tokenpage.xyz/types"
	"yieldseeker.tokenpage.xyz/utils"
)

// BaseDenom is the base asset used across all tests.
const BaseDenom = "uusdc"

// GatewayKeeper builds a keeper with fresh mocks.
func GatewayKeeper(t testing.TB, authority, emergencyAuthority string) (*keeper.Keeper, BankKeeper, sdk.Context) {
	account := AccountKeeper{
		Accounts: make(map[string]sdk.AccountI),
	}
	bank := NewBankKeeper(storetypes.NewKVStoreKey("mockbank"))

	k, ctx := GatewayKeeperWithKeepers(t, authority, emergencyAuthority, bank, account)

	return k, bank, ctx
}

// GatewayKeeperWithKeepers builds a keeper on an in-memory store wired to the
// provided mocks. The bank's store key is mounted alongside the module's so
// that branched contexts cover both.
func GatewayKeeperWithKeepers(_ testing.TB, authority, emergencyAuthority string, bank BankKeeper, account AccountKeeper) (*keeper.Keeper, sdk.Context) {
	key := storetypes.NewKVStoreKey(types.ModuleName)
	ctx := testutil.DefaultContextWithKeys(
		map[string]*storetypes.KVStoreKey{
			types.ModuleName: key,
			bank.key.Name():  bank.key,
		},
		nil,
		nil,
	)

	k := keeper.NewKeeper(
		BaseDenom,
		authority,
		emergencyAuthority,
		runtime.NewKVStoreService(key),
		log.NewNopLogger(),
		HeaderService{},
		addresscodec.NewBech32Codec(utils.Bech32Prefix),
		account,
		bank,
	)

	return k, ctx
}
