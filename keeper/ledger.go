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

	"yieldseeker.tokenpage.xyz/types/ledger"
	"yieldseeker.tokenpage.xyz/types/vault"
)

// SetFeeConfig validates and persists the performance fee configuration.
// The rate ceiling holds regardless of who asks: it is an invariant of the
// module, so the check lives here and not in the message handler.
func (k *Keeper) SetFeeConfig(ctx context.Context, config ledger.FeeConfig) error {
	if config.RateBps > ledger.MaxFeeRateBps {
		return sdkerrors.Wrapf(ledger.ErrFeeRateTooHigh, "%d bps exceeds ceiling of %d bps", config.RateBps, ledger.MaxFeeRateBps)
	}

	if _, err := k.address.StringToBytes(config.Collector); err != nil {
		return sdkerrors.Wrapf(ledger.ErrInvalidCollector, "invalid collector address: %s", config.Collector)
	}

	return k.FeeConfig.Set(ctx, config)
}

// RecordDeposit adds an operator-directed deposit to the tracked position:
// cost basis grows by the assets put in, units by the units received.
func (k *Keeper) RecordDeposit(ctx context.Context, account sdk.AccAddress, token string, assetsIn, unitsReceived math.Int) error {
	if assetsIn.IsNil() || !assetsIn.IsPositive() {
		return sdkerrors.Wrap(ledger.ErrInvalidAmount, "deposit assets must be positive")
	}
	if unitsReceived.IsNil() || !unitsReceived.IsPositive() {
		return sdkerrors.Wrap(ledger.ErrInvalidAmount, "deposit units must be positive")
	}

	position, err := k.GetPosition(ctx, account, token)
	if err != nil {
		return err
	}

	position.CostBasis, err = position.CostBasis.SafeAdd(assetsIn)
	if err != nil {
		return sdkerrors.Wrap(err, "unable to grow cost basis")
	}
	position.Units, err = position.Units.SafeAdd(unitsReceived)
	if err != nil {
		return sdkerrors.Wrap(err, "unable to grow tracked units")
	}

	if err := k.SetPosition(ctx, account, token, position); err != nil {
		return sdkerrors.Wrap(err, "unable to store position")
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		ledger.EventTypeDepositRecorded,
		sdk.NewAttribute(ledger.AttributeKeyAccount, account.String()),
		sdk.NewAttribute(ledger.AttributeKeyToken, token),
		sdk.NewAttribute(ledger.AttributeKeyAssets, assetsIn.String()),
		sdk.NewAttribute(ledger.AttributeKeyUnits, unitsReceived.String()),
	))

	return nil
}

// RecordWithdraw realizes a withdrawal against the tracked position and
// returns the performance fee charged.
//
// Cost basis is apportioned against actualBalance, the position token's true
// balance sampled immediately before the withdrawal, never against the
// ledger's own tracked units: units that arrived outside the tracked flow
// (yield accrual, direct transfers) therefore carry no cost and realize as
// pure profit when spent. Fee-designated units of the same token are
// consumed first; their share of the proceeds is already liable in full and
// is credited to fees owed directly instead of passing through the profit
// formula a second time. A loss charges no fee but still consumes cost basis
// and units proportionally.
func (k *Keeper) RecordWithdraw(ctx context.Context, account sdk.AccAddress, token string, unitsSpent, assetsReceived, actualBalance math.Int) (math.Int, error) {
	if unitsSpent.IsNil() || !unitsSpent.IsPositive() {
		return math.ZeroInt(), sdkerrors.Wrap(ledger.ErrInvalidAmount, "units spent must be positive")
	}
	if assetsReceived.IsNil() || assetsReceived.IsNegative() {
		return math.ZeroInt(), sdkerrors.Wrap(ledger.ErrInvalidAmount, "assets received cannot be negative")
	}
	if actualBalance.IsNil() || actualBalance.LT(unitsSpent) {
		return math.ZeroInt(), sdkerrors.Wrapf(ledger.ErrInsufficientUnits, "spending %s of %s held", unitsSpent.String(), actualBalance.String())
	}

	config, err := k.GetFeeConfig(ctx)
	if err != nil {
		return math.ZeroInt(), err
	}

	position, err := k.GetPosition(ctx, account, token)
	if err != nil {
		return math.ZeroInt(), err
	}

	liability, err := k.GetYieldLiability(ctx, account, token)
	if err != nil {
		return math.ZeroInt(), err
	}

	// Fee-designated units first.
	liabilityConsumed := math.MinInt(liability, unitsSpent)
	feeFromLiability := math.ZeroInt()
	if liabilityConsumed.IsPositive() {
		feeFromLiability = assetsReceived.Mul(liabilityConsumed).Quo(unitsSpent)
	}

	principalSpent := unitsSpent.Sub(liabilityConsumed)
	principalAssets := assetsReceived.Sub(feeFromLiability)
	principalBalance := actualBalance.Sub(liability)
	if principalBalance.IsNegative() {
		principalBalance = math.ZeroInt()
	}

	proportionalCost := math.ZeroInt()
	if principalSpent.IsPositive() && principalBalance.IsPositive() {
		proportionalCost = position.CostBasis.Mul(principalSpent).Quo(principalBalance)
		proportionalCost = math.MinInt(proportionalCost, position.CostBasis)
	}

	// Losses charge nothing and are never recovered against future profit.
	profit := principalAssets.Sub(proportionalCost)
	if profit.IsNegative() {
		profit = math.ZeroInt()
	}

	fee := profit.MulRaw(int64(config.RateBps)).QuoRaw(ledger.BpsDenominator)
	fee, err = fee.SafeAdd(feeFromLiability)
	if err != nil {
		return math.ZeroInt(), sdkerrors.Wrap(err, "unable to total fee")
	}

	position.CostBasis = position.CostBasis.Sub(proportionalCost)
	if position.CostBasis.IsNegative() {
		position.CostBasis = math.ZeroInt()
	}
	position.Units = position.Units.Sub(principalSpent)
	if position.Units.IsNegative() {
		position.Units = math.ZeroInt()
	}
	if unitsSpent.Equal(actualBalance) {
		position = ledger.NewPosition()
	}

	if err := k.SetPosition(ctx, account, token, position); err != nil {
		return math.ZeroInt(), sdkerrors.Wrap(err, "unable to store position")
	}

	if liabilityConsumed.IsPositive() {
		if err := k.SetYieldLiability(ctx, account, token, liability.Sub(liabilityConsumed)); err != nil {
			return math.ZeroInt(), sdkerrors.Wrap(err, "unable to reduce yield liability")
		}
	}

	if fee.IsPositive() {
		if err := k.accrueFee(ctx, account, fee); err != nil {
			return math.ZeroInt(), err
		}
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		ledger.EventTypeWithdrawRecorded,
		sdk.NewAttribute(ledger.AttributeKeyAccount, account.String()),
		sdk.NewAttribute(ledger.AttributeKeyToken, token),
		sdk.NewAttribute(ledger.AttributeKeyUnits, unitsSpent.String()),
		sdk.NewAttribute(ledger.AttributeKeyAssets, assetsReceived.String()),
		sdk.NewAttribute(ledger.AttributeKeyFee, fee.String()),
	))

	return fee, nil
}

// RecordYieldEarned marks a reward-token amount as fee-designated. Rewards
// carry no cost basis, so the whole amount counts as profit and the fee
// share of it becomes a liability denominated in the reward token itself.
func (k *Keeper) RecordYieldEarned(ctx context.Context, account sdk.AccAddress, token string, amount math.Int) error {
	if amount.IsNil() || !amount.IsPositive() {
		return sdkerrors.Wrap(ledger.ErrInvalidAmount, "reward amount must be positive")
	}

	config, err := k.GetFeeConfig(ctx)
	if err != nil {
		return err
	}

	designated := amount.MulRaw(int64(config.RateBps)).QuoRaw(ledger.BpsDenominator)
	if designated.IsZero() {
		return nil
	}

	liability, err := k.GetYieldLiability(ctx, account, token)
	if err != nil {
		return err
	}
	liability, err = liability.SafeAdd(designated)
	if err != nil {
		return sdkerrors.Wrap(err, "unable to grow yield liability")
	}

	if err := k.SetYieldLiability(ctx, account, token, liability); err != nil {
		return sdkerrors.Wrap(err, "unable to store yield liability")
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		ledger.EventTypeYieldRecorded,
		sdk.NewAttribute(ledger.AttributeKeyAccount, account.String()),
		sdk.NewAttribute(ledger.AttributeKeyToken, token),
		sdk.NewAttribute(ledger.AttributeKeyUnits, amount.String()),
		sdk.NewAttribute(ledger.AttributeKeyFee, designated.String()),
	))

	return nil
}

// RecordTokenSwap converts fee-designated value of a token into realized
// base-asset fees. The credit is the liability's share of the exact swap
// proceeds, never the pre-swap nominal amount, and the liability shrinks by
// the units consumed.
func (k *Keeper) RecordTokenSwap(ctx context.Context, account sdk.AccAddress, token string, amountIn, proceeds math.Int) (math.Int, error) {
	if amountIn.IsNil() || !amountIn.IsPositive() {
		return math.ZeroInt(), sdkerrors.Wrap(ledger.ErrInvalidAmount, "swap amount must be positive")
	}
	if proceeds.IsNil() || proceeds.IsNegative() {
		return math.ZeroInt(), sdkerrors.Wrap(ledger.ErrInvalidAmount, "swap proceeds cannot be negative")
	}

	liability, err := k.GetYieldLiability(ctx, account, token)
	if err != nil {
		return math.ZeroInt(), err
	}

	consumed := math.MinInt(liability, amountIn)
	if consumed.IsZero() {
		return math.ZeroInt(), nil
	}

	realized := proceeds.Mul(consumed).Quo(amountIn)

	if err := k.SetYieldLiability(ctx, account, token, liability.Sub(consumed)); err != nil {
		return math.ZeroInt(), sdkerrors.Wrap(err, "unable to reduce yield liability")
	}

	if realized.IsPositive() {
		if err := k.accrueFee(ctx, account, realized); err != nil {
			return math.ZeroInt(), err
		}
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		ledger.EventTypeSwapRecorded,
		sdk.NewAttribute(ledger.AttributeKeyAccount, account.String()),
		sdk.NewAttribute(ledger.AttributeKeyToken, token),
		sdk.NewAttribute(ledger.AttributeKeyUnits, consumed.String()),
		sdk.NewAttribute(ledger.AttributeKeyFee, realized.String()),
	))

	return realized, nil
}

// RecordFeePaid reduces the account's accrued fee balance after a payment to
// the collector has been executed.
func (k *Keeper) RecordFeePaid(ctx context.Context, account sdk.AccAddress, amount math.Int) error {
	if amount.IsNil() || !amount.IsPositive() {
		return sdkerrors.Wrap(ledger.ErrInvalidAmount, "payment must be positive")
	}

	owed, err := k.GetFeesOwed(ctx, account)
	if err != nil {
		return err
	}
	if amount.GT(owed) {
		return sdkerrors.Wrapf(ledger.ErrOverpayment, "paying %s of %s owed", amount.String(), owed.String())
	}

	if err := k.SetFeesOwed(ctx, account, owed.Sub(amount)); err != nil {
		return sdkerrors.Wrap(err, "unable to reduce fees owed")
	}

	if err := k.UpdateStats(ctx, func(stats *vault.Stats) {
		stats.TotalFeesPaid = stats.TotalFeesPaid.Add(amount)
	}); err != nil {
		return sdkerrors.Wrap(err, "unable to update stats")
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		ledger.EventTypeFeesPaid,
		sdk.NewAttribute(ledger.AttributeKeyAccount, account.String()),
		sdk.NewAttribute(ledger.AttributeKeyAssets, amount.String()),
	))

	return nil
}

// accrueFee grows the account's unpaid fee balance.
func (k *Keeper) accrueFee(ctx context.Context, account sdk.AccAddress, fee math.Int) error {
	owed, err := k.GetFeesOwed(ctx, account)
	if err != nil {
		return err
	}
	owed, err = owed.SafeAdd(fee)
	if err != nil {
		return sdkerrors.Wrap(err, "unable to grow fees owed")
	}

	if err := k.SetFeesOwed(ctx, account, owed); err != nil {
		return sdkerrors.Wrap(err, "unable to store fees owed")
	}

	return k.UpdateStats(ctx, func(stats *vault.Stats) {
		stats.TotalFeesAccrued = stats.TotalFeesAccrued.Add(fee)
	})
}
