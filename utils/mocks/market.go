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
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"yieldseeker.tokenpage.xyz/adapters"
)

var (
	_ adapters.Market       = &Market{}
	_ adapters.RewardSource = &Market{}
	_ adapters.Swapper      = &Market{}
)

// Market simulates one external protocol target. Assets move through the
// mock bank, and position units live in the bank's store key so that a
// branched context rolls them back together with the coins they bought.
//
// All rates are integer ratios controlled by the test: RateNum/RateDen is the
// assets paid per unit on withdrawal (1/1 by default), SwapNum/SwapDen the
// base asset paid per reward token on swap.
type Market struct {
	Bank BankKeeper
	Pool sdk.AccAddress

	AssetDenom  string
	RewardDenom string

	RateNum int64
	RateDen int64
	SwapNum int64
	SwapDen int64

	SwapOut string
}

// NewMarket returns a 1:1 market for the given asset denom.
func NewMarket(name, asset string, bank BankKeeper) *Market {
	return &Market{
		Bank:        bank,
		Pool:        authtypes.NewModuleAddress("mock_market/" + name),
		AssetDenom:  asset,
		RewardDenom: "ureward",
		RateNum:     1,
		RateDen:     1,
		SwapNum:     1,
		SwapDen:     1,
		SwapOut:     asset,
	}
}

func (m *Market) Asset(_ context.Context) (string, error) {
	return m.AssetDenom, nil
}

func (m *Market) Deposit(ctx context.Context, holder sdk.AccAddress, assets math.Int) (math.Int, error) {
	if err := m.Bank.SendCoins(ctx, holder, m.Pool, sdk.NewCoins(sdk.NewCoin(m.AssetDenom, assets))); err != nil {
		return math.ZeroInt(), err
	}

	m.setUnits(ctx, holder, m.unitsOf(ctx, holder).Add(assets))

	return assets, nil
}

func (m *Market) Withdraw(ctx context.Context, holder sdk.AccAddress, units math.Int) (math.Int, error) {
	held := m.unitsOf(ctx, holder)
	if held.LT(units) {
		return math.ZeroInt(), fmt.Errorf("insufficient units: %s < %s", held.String(), units.String())
	}

	assets := units.MulRaw(m.RateNum).QuoRaw(m.RateDen)
	if err := m.Bank.SendCoins(ctx, m.Pool, holder, sdk.NewCoins(sdk.NewCoin(m.AssetDenom, assets))); err != nil {
		return math.ZeroInt(), err
	}

	m.setUnits(ctx, holder, held.Sub(units))

	return assets, nil
}

func (m *Market) UnitBalance(ctx context.Context, holder sdk.AccAddress) (math.Int, error) {
	return m.unitsOf(ctx, holder), nil
}

func (m *Market) Harvest(ctx context.Context, holder sdk.AccAddress) (string, math.Int, error) {
	pending := m.readInt(ctx, m.pendingKey(holder))
	if pending.IsZero() {
		return m.RewardDenom, math.ZeroInt(), nil
	}

	if err := m.Bank.SendCoins(ctx, m.Pool, holder, sdk.NewCoins(sdk.NewCoin(m.RewardDenom, pending))); err != nil {
		return "", math.ZeroInt(), err
	}
	m.writeInt(ctx, m.pendingKey(holder), math.ZeroInt())

	return m.RewardDenom, pending, nil
}

func (m *Market) Swap(ctx context.Context, holder sdk.AccAddress, tokenIn string, amountIn math.Int) (math.Int, error) {
	if err := m.Bank.SendCoins(ctx, holder, m.Pool, sdk.NewCoins(sdk.NewCoin(tokenIn, amountIn))); err != nil {
		return math.ZeroInt(), err
	}

	proceeds := amountIn.MulRaw(m.SwapNum).QuoRaw(m.SwapDen)
	if err := m.Bank.SendCoins(ctx, m.Pool, holder, sdk.NewCoins(sdk.NewCoin(m.SwapOut, proceeds))); err != nil {
		return math.ZeroInt(), err
	}

	return proceeds, nil
}

// Airdrop grants units to the holder outside any tracked deposit.
func (m *Market) Airdrop(ctx context.Context, holder sdk.AccAddress, units math.Int) {
	m.setUnits(ctx, holder, m.unitsOf(ctx, holder).Add(units))
}

// FundPool seeds the pool so it can pay out withdrawals, rewards and swaps.
func (m *Market) FundPool(ctx context.Context, coins sdk.Coins) {
	m.Bank.Fund(ctx, m.Pool.String(), coins)
}

// AccruePending queues a reward payout for the next harvest.
func (m *Market) AccruePending(ctx context.Context, holder sdk.AccAddress, amount math.Int) {
	m.writeInt(ctx, m.pendingKey(holder), m.readInt(ctx, m.pendingKey(holder)).Add(amount))
}

func (m *Market) unitsOf(ctx context.Context, holder sdk.AccAddress) math.Int {
	return m.readInt(ctx, m.unitsKey(holder))
}

func (m *Market) setUnits(ctx context.Context, holder sdk.AccAddress, units math.Int) {
	m.writeInt(ctx, m.unitsKey(holder), units)
}

func (m *Market) readInt(ctx context.Context, key []byte) math.Int {
	bz := sdk.UnwrapSDKContext(ctx).KVStore(m.Bank.key).Get(key)
	if len(bz) == 0 {
		return math.ZeroInt()
	}

	value, ok := math.NewIntFromString(string(bz))
	if !ok {
		panic(fmt.Sprintf("corrupt integer %q at %q", bz, key))
	}

	return value
}

func (m *Market) writeInt(ctx context.Context, key []byte, value math.Int) {
	store := sdk.UnwrapSDKContext(ctx).KVStore(m.Bank.key)
	if value.IsZero() {
		store.Delete(key)
		return
	}

	store.Set(key, []byte(value.String()))
}

func (m *Market) unitsKey(holder sdk.AccAddress) []byte {
	return []byte("units/" + m.Pool.String() + "/" + holder.String())
}

func (m *Market) pendingKey(holder sdk.AccAddress) []byte {
	return []byte("pending/" + m.Pool.String() + "/" + holder.String())
}
