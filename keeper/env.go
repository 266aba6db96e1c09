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

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"yieldseeker.tokenpage.xyz/adapters"
	"yieldseeker.tokenpage.xyz/types/registry"
)

// adapterEnv is the execution environment handed to adapter logic for one
// invocation. It pins the account identity and the adapter name, so every
// capability it exposes is scoped to that pair.
type adapterEnv struct {
	keeper  *Keeper
	account sdk.AccAddress
	adapter string
}

var _ adapters.Env = (*adapterEnv)(nil)

func (k *Keeper) newEnv(account sdk.AccAddress, adapter string) *adapterEnv {
	return &adapterEnv{keeper: k, account: account, adapter: adapter}
}

func (e *adapterEnv) Account() sdk.AccAddress {
	return e.account
}

func (e *adapterEnv) BaseDenom() string {
	return e.keeper.denom
}

// Market resolves the market surface for target. The registry binding is
// re-derived here on every access, so an adapter holds no standing capability
// beyond the single validated call: a pause or an unbinding that lands
// between gateway validation and adapter execution still fails closed.
func (e *adapterEnv) Market(ctx context.Context, target string) (adapters.Market, error) {
	valid, bound, err := e.keeper.IsValidTarget(ctx, target)
	if err != nil {
		return nil, err
	}
	if !valid {
		return nil, sdkerrors.Wrapf(registry.ErrTargetNotRegistered, "target %s is not executable", target)
	}
	if bound != e.adapter {
		return nil, sdkerrors.Wrapf(registry.ErrTargetNotRegistered, "target %s is bound to %s, not %s", target, bound, e.adapter)
	}

	market, ok := e.keeper.markets[target]
	if !ok {
		return nil, sdkerrors.Wrapf(registry.ErrMarketNotWired, "no market surface for target %s", target)
	}

	return market, nil
}

func (e *adapterEnv) Ledger() adapters.Ledger {
	return &accountLedger{keeper: e.keeper, account: e.account}
}

// accountLedger narrows the keeper's recording operations to one account.
type accountLedger struct {
	keeper  *Keeper
	account sdk.AccAddress
}

var _ adapters.Ledger = (*accountLedger)(nil)

func (l *accountLedger) RecordDeposit(ctx context.Context, token string, assetsIn, unitsReceived math.Int) error {
	return l.keeper.RecordDeposit(ctx, l.account, token, assetsIn, unitsReceived)
}

func (l *accountLedger) RecordWithdraw(ctx context.Context, token string, unitsSpent, assetsReceived, actualBalance math.Int) (math.Int, error) {
	return l.keeper.RecordWithdraw(ctx, l.account, token, unitsSpent, assetsReceived, actualBalance)
}

func (l *accountLedger) RecordYieldEarned(ctx context.Context, token string, amount math.Int) error {
	return l.keeper.RecordYieldEarned(ctx, l.account, token, amount)
}

func (l *accountLedger) RecordTokenSwap(ctx context.Context, token string, amountIn, proceeds math.Int) (math.Int, error) {
	return l.keeper.RecordTokenSwap(ctx, l.account, token, amountIn, proceeds)
}
