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

// PoolSupplyName identifies the adapter for supply-index pool protocols.
const PoolSupplyName = "pool_supply"

var _ Adapter = PoolSupplyAdapter{}

// PoolSupplyAdapter handles lending-pool style protocols that credit supply
// units one-to-one with the assets supplied. Interest accrues as additional
// units on the holder's balance, so the untracked surplus shows up in
// UnitBalance rather than in a share price.
type PoolSupplyAdapter struct{}

func NewPoolSupplyAdapter() PoolSupplyAdapter {
	return PoolSupplyAdapter{}
}

func (PoolSupplyAdapter) Name() string {
	return PoolSupplyName
}

func (a PoolSupplyAdapter) Deposit(ctx context.Context, env Env, target string, amount math.Int) (math.Int, error) {
	if amount.IsNil() || !amount.IsPositive() {
		return math.ZeroInt(), errors.Wrap(ErrInvalidCall, "supply amount must be positive")
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
		return math.ZeroInt(), errors.Wrapf(ErrUnsupportedTarget, "pool accepts %s, account holds %s", asset, env.BaseDenom())
	}

	units, err := market.Deposit(ctx, env.Account(), amount)
	if err != nil {
		return math.ZeroInt(), err
	}
	// Supply protocols in this family credit units 1:1 at supply time.
	if !units.Equal(amount) {
		return math.ZeroInt(), errors.Wrapf(ErrUnsupportedTarget, "pool credited %s units for %s supplied", units.String(), amount.String())
	}

	if err := env.Ledger().RecordDeposit(ctx, target, amount, units); err != nil {
		return math.ZeroInt(), err
	}

	return units, nil
}

func (a PoolSupplyAdapter) Withdraw(ctx context.Context, env Env, target string, units math.Int) (math.Int, math.Int, error) {
	if units.IsNil() || !units.IsPositive() {
		return math.ZeroInt(), math.ZeroInt(), errors.Wrap(ErrInvalidCall, "unit amount must be positive")
	}

	market, err := env.Market(ctx, target)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}

	actual, err := market.UnitBalance(ctx, env.Account())
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}

	assets, err := market.Withdraw(ctx, env.Account(), units)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}

	fee, err := env.Ledger().RecordWithdraw(ctx, target, units, assets, actual)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}

	return assets, fee, nil
}

func (a PoolSupplyAdapter) Harvest(ctx context.Context, env Env, target string) (string, math.Int, error) {
	market, err := env.Market(ctx, target)
	if err != nil {
		return "", math.ZeroInt(), err
	}

	source, ok := market.(RewardSource)
	if !ok {
		return "", math.ZeroInt(), errors.Wrapf(ErrUnsupportedTarget, "pool %s pays no rewards", target)
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

func (a PoolSupplyAdapter) SwapReward(ctx context.Context, env Env, target, token string, amountIn math.Int) (math.Int, math.Int, error) {
	if amountIn.IsNil() || !amountIn.IsPositive() {
		return math.ZeroInt(), math.ZeroInt(), errors.Wrap(ErrInvalidCall, "swap amount must be positive")
	}

	market, err := env.Market(ctx, target)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}

	swapper, ok := market.(Swapper)
	if !ok {
		return math.ZeroInt(), math.ZeroInt(), errors.Wrapf(ErrUnsupportedTarget, "pool %s cannot swap", target)
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

func (a PoolSupplyAdapter) Asset(ctx context.Context, env Env, target string) (string, error) {
	market, err := env.Market(ctx, target)
	if err != nil {
		return "", err
	}
	return market.Asset(ctx)
}

func (a PoolSupplyAdapter) Balance(ctx context.Context, env Env, target string) (math.Int, error) {
	market, err := env.Market(ctx, target)
	if err != nil {
		return math.ZeroInt(), err
	}
	return market.UnitBalance(ctx, env.Account())
}
