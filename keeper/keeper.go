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
	"cosmossdk.io/collections"
	"cosmossdk.io/core/address"
	"cosmossdk.io/core/header"
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"yieldseeker.tokenpage.xyz/adapters"
	"yieldseeker.tokenpage.xyz/types"
	"yieldseeker.tokenpage.xyz/types/ledger"
	"yieldseeker.tokenpage.xyz/types/registry"
	"yieldseeker.tokenpage.xyz/types/vault"
)

type Keeper struct {
	denom              string
	authority          string
	emergencyAuthority string

	store store.KVStoreService

	logger  log.Logger
	header  header.Service
	address address.Codec
	account types.AccountKeeper
	bank    types.BankKeeper

	// Runtime wiring: executable adapter logic keyed by adapter name, and
	// external market surfaces keyed by target identifier. Persisted registry
	// state decides which of these may actually run.
	adapterLogic map[string]adapters.Adapter
	markets      map[string]adapters.Market

	// Re-entrancy guard for the current invocation. Host execution is
	// serial, so a plain flag suffices: it is only ever observed by a nested
	// call arriving through the in-flight execution context.
	invoking bool

	Paused         collections.Item[bool]
	Adapters       collections.Map[string, bool]
	TargetBindings collections.Map[string, string]

	Accounts        collections.Map[[]byte, vault.Account]
	AccountsByOwner collections.Map[collections.Pair[[]byte, uint64], []byte]
	BlockedAdapters collections.Map[collections.Pair[[]byte, string], bool]
	GlobalOperator  collections.Item[string]
	Stats           collections.Item[vault.Stats]

	FeeConfig        collections.Item[ledger.FeeConfig]
	Positions        collections.Map[collections.Pair[[]byte, string], ledger.Position]
	YieldLiabilities collections.Map[collections.Pair[[]byte, string], math.Int]
	FeesOwed         collections.Map[[]byte, math.Int]
}

func NewKeeper(
	denom string,
	authority string,
	emergencyAuthority string,
	store store.KVStoreService,
	logger log.Logger,
	header header.Service,
	address address.Codec,
	account types.AccountKeeper,
	bank types.BankKeeper,
) *Keeper {
	builder := collections.NewSchemaBuilder(store)

	keeper := &Keeper{
		denom:              denom,
		authority:          authority,
		emergencyAuthority: emergencyAuthority,

		store: store,

		logger:  logger.With("module", types.ModuleName),
		header:  header,
		address: address,
		account: account,
		bank:    bank,

		adapterLogic: make(map[string]adapters.Adapter),
		markets:      make(map[string]adapters.Market),

		Paused:         collections.NewItem(builder, registry.PausedKey, "registry_paused", collections.BoolValue),
		Adapters:       collections.NewMap(builder, registry.AdapterPrefix, "registry_adapters", collections.StringKey, collections.BoolValue),
		TargetBindings: collections.NewMap(builder, registry.TargetPrefix, "registry_targets", collections.StringKey, collections.StringValue),

		Accounts:        collections.NewMap(builder, vault.AccountPrefix, "vault_accounts", collections.BytesKey, types.JSONValue[vault.Account]("vault.Account")),
		AccountsByOwner: collections.NewMap(builder, vault.AccountIndexPrefix, "vault_accounts_by_owner", collections.PairKeyCodec(collections.BytesKey, collections.Uint64Key), collections.BytesValue),
		BlockedAdapters: collections.NewMap(builder, vault.BlockedAdapterPrefix, "vault_blocked_adapters", collections.PairKeyCodec(collections.BytesKey, collections.StringKey), collections.BoolValue),
		GlobalOperator:  collections.NewItem(builder, vault.GlobalOperatorKey, "vault_global_operator", collections.StringValue),
		Stats:           collections.NewItem(builder, vault.StatsKey, "vault_stats", types.JSONValue[vault.Stats]("vault.Stats")),

		FeeConfig:        collections.NewItem(builder, ledger.FeeConfigKey, "ledger_fee_config", types.JSONValue[ledger.FeeConfig]("ledger.FeeConfig")),
		Positions:        collections.NewMap(builder, ledger.PositionPrefix, "ledger_positions", collections.PairKeyCodec(collections.BytesKey, collections.StringKey), types.JSONValue[ledger.Position]("ledger.Position")),
		YieldLiabilities: collections.NewMap(builder, ledger.YieldLiabilityPrefix, "ledger_yield_liabilities", collections.PairKeyCodec(collections.BytesKey, collections.StringKey), sdk.IntValue),
		FeesOwed:         collections.NewMap(builder, ledger.FeesOwedPrefix, "ledger_fees_owed", collections.BytesKey, sdk.IntValue),
	}

	_, err := builder.Build()
	if err != nil {
		panic(err)
	}

	return keeper
}

// SetBankKeeper overwrites the bank keeper used in this module.
func (k *Keeper) SetBankKeeper(bankKeeper types.BankKeeper) {
	k.bank = bankKeeper
}

// WireAdapter installs executable adapter logic. Wiring alone grants no
// authority: the adapter still has to be registered through the delayed
// admin path before any account can invoke it.
func (k *Keeper) WireAdapter(adapter adapters.Adapter) {
	k.adapterLogic[adapter.Name()] = adapter
}

// WireMarket installs the external market surface for a target identifier.
func (k *Keeper) WireMarket(target string, market adapters.Market) {
	k.markets[target] = market
}

// GetDenom returns the configured base asset denom.
func (k *Keeper) GetDenom() string {
	return k.denom
}

// GetAuthority returns the delayed admin authority.
func (k *Keeper) GetAuthority() string {
	return k.authority
}

// GetEmergencyAuthority returns the instant emergency authority.
func (k *Keeper) GetEmergencyAuthority() string {
	return k.emergencyAuthority
}
