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

package adapters

import (
	"context"

	"cosmossdk.io/errors"
	"cosmossdk.io/math"
)

// ShareVaultName identifies the adapter for share-based external vaults.
const ShareVaultName = "share_vault"

var _ Adapter = ShareVaultAdapter{}

// ShareVaultAdapter handles external vaults that issue shares against
// deposits at a floating exchange rate. Yield accrues into the share price,
// so the units returned on deposit and spent on withdrawal are shares.
type ShareVaultAdapter struct{}

func NewShareVaultAdapter() ShareVaultAdapter {
	return ShareVaultAdapter{}
}

func (ShareVaultAdapter) Name() string {
	return ShareVaultName
}

func (a ShareVaultAdapter) Deposit(ctx context.Context, env Env, target string, amount math.Int) (math.Int, error) {
	if amount.IsNil() || !amount.IsPositive() {
		return math.ZeroInt(), errors.Wrap(ErrInvalidCall, "deposit amount must be positive")
	}

	market, err := env.Market(ctx, target)
	if err != nil {
		return math.ZeroInt(), err
	}

	asset, err := market.Asset(ctx)
	if err != nil {
		return math.ZeroInt(), err
	}
	if asset != env.BaseDenom() {
		return math.ZeroInt(), errors.Wrapf(ErrUnsupportedTarget, "target accepts %s, account holds %s", asset, env.BaseDenom())
	}

	shares, err := market.Deposit(ctx, env.Account(), amount)
	if err != nil {
		return math.ZeroInt(), err
	}

	if err := env.Ledger().RecordDeposit(ctx, target, amount, shares); err != nil {
		return math.ZeroInt(), err
	}

	return shares, nil
}

func (a ShareVaultAdapter) Withdraw(ctx context.Context, env Env, target string, shares math.Int) (math.Int, math.Int, error) {
	if shares.IsNil() || !shares.IsPositive() {
		return math.ZeroInt(), math.ZeroInt(), errors.Wrap(ErrInvalidCall, "share amount must be positive")
	}

	market, err := env.Market(ctx, target)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}

	// Sample the true share balance before redeeming: cost basis is
	// apportioned against actual holdings, never against tracked units.
	actual, err := market.UnitBalance(ctx, env.Account())
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}

	assets, err := market.Withdraw(ctx, env.Account(), shares)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}

	fee, err := env.Ledger().RecordWithdraw(ctx, target, shares, assets, actual)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}

	return assets, fee, nil
}

func (a ShareVaultAdapter) Harvest(ctx context.Context, env Env, target string) (string, math.Int, error) {
	market, err := env.Market(ctx, target)
	if err != nil {
		return "", math.ZeroInt(), err
	}

	source, ok := market.(RewardSource)
	if !ok {
		return "", math.ZeroInt(), errors.Wrapf(ErrUnsupportedTarget, "target %s pays no rewards", target)
	}

	token, amount, err := source.Harvest(ctx, env.Account())
	if err != nil {
		return "", math.ZeroInt(), err
	}

	if amount.IsPositive() {
		if err := env.Ledger().RecordYieldEarned(ctx, token, amount); err != nil {
			return "", math.ZeroInt(), err
		}
	}

	return token, amount, nil
}

func (a ShareVaultAdapter) SwapReward(ctx context.Context, env Env, target, token string, amountIn math.Int) (math.Int, math.Int, error) {
	if amountIn.IsNil() || !amountIn.IsPositive() {
		return math.ZeroInt(), math.ZeroInt(), errors.Wrap(ErrInvalidCall, "swap amount must be positive")
	}

	market, err := env.Market(ctx, target)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}

	swapper, ok := market.(Swapper)
	if !ok {
		return math.ZeroInt(), math.ZeroInt(), errors.Wrapf(ErrUnsupportedTarget, "target %s cannot swap", target)
	}

	proceeds, err := swapper.Swap(ctx, env.Account(), token, amountIn)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}

	fee, err := env.Ledger().RecordTokenSwap(ctx, token, amountIn, proceeds)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}

	return proceeds, fee, nil
}

func (a ShareVaultAdapter) Asset(ctx context.Context, env Env, target string) (string, error) {
	market, err := env.Market(ctx, target)
	if err != nil {
		return "", err
	}
	return market.Asset(ctx)
}

func (a ShareVaultAdapter) Balance(ctx context.Context, env Env, target string) (math.Int, error) {
	market, err := env.Market(ctx, target)
	if err != nil {
		return math.ZeroInt(), err
	}
	return market.UnitBalance(ctx, env.Account())
}
