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
	"errors"

	"cosmossdk.io/collections"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"yieldseeker.tokenpage.xyz/types/ledger"
)

// GetFeeConfig returns the configured fee rate and collector.
func (k *Keeper) GetFeeConfig(ctx context.Context) (ledger.FeeConfig, error) {
	config, err := k.FeeConfig.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return ledger.FeeConfig{}, ledger.ErrFeeConfigNotSet
		}
		return ledger.FeeConfig{}, err
	}

	return config, nil
}

// GetPosition returns the tracked position for (account, token), zero-valued
// when no tracked deposit exists.
func (k *Keeper) GetPosition(ctx context.Context, account sdk.AccAddress, token string) (ledger.Position, error) {
	position, err := k.Positions.Get(ctx, collections.Join([]byte(account), token))
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return ledger.NewPosition(), nil
		}
		return ledger.Position{}, err
	}

	return position, nil
}

// SetPosition writes the position, removing the record entirely when it is
// fully cleared.
func (k *Keeper) SetPosition(ctx context.Context, account sdk.AccAddress, token string, position ledger.Position) error {
	key := collections.Join([]byte(account), token)
	if position.IsZero() {
		err := k.Positions.Remove(ctx, key)
		if err != nil && !errors.Is(err, collections.ErrNotFound) {
			return err
		}
		return nil
	}

	return k.Positions.Set(ctx, key, position)
}

// GetYieldLiability returns the fee-designated unit balance for (account,
// token).
func (k *Keeper) GetYieldLiability(ctx context.Context, account sdk.AccAddress, token string) (math.Int, error) {
	liability, err := k.YieldLiabilities.Get(ctx, collections.Join([]byte(account), token))
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return math.ZeroInt(), nil
		}
		return math.ZeroInt(), err
	}

	return liability, nil
}

// SetYieldLiability writes the fee-designated unit balance, removing the
// record when it reaches zero.
func (k *Keeper) SetYieldLiability(ctx context.Context, account sdk.AccAddress, token string, liability math.Int) error {
	key := collections.Join([]byte(account), token)
	if liability.IsZero() {
		err := k.YieldLiabilities.Remove(ctx, key)
		if err != nil && !errors.Is(err, collections.ErrNotFound) {
			return err
		}
		return nil
	}

	return k.YieldLiabilities.Set(ctx, key, liability)
}

// GetFeesOwed returns the accrued unpaid base-asset fee for the account.
func (k *Keeper) GetFeesOwed(ctx context.Context, account sdk.AccAddress) (math.Int, error) {
	owed, err := k.FeesOwed.Get(ctx, account)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return math.ZeroInt(), nil
		}
		return math.ZeroInt(), err
	}

	return owed, nil
}

// SetFeesOwed writes the accrued unpaid fee balance for the account.
func (k *Keeper) SetFeesOwed(ctx context.Context, account sdk.AccAddress, owed math.Int) error {
	if owed.IsZero() {
		err := k.FeesOwed.Remove(ctx, account)
		if err != nil && !errors.Is(err, collections.ErrNotFound) {
			return err
		}
		return nil
	}

	return k.FeesOwed.Set(ctx, account, owed)
}

// IteratePositions walks every tracked position of the account.
func (k *Keeper) IteratePositions(ctx context.Context, account sdk.AccAddress, fn func(token string, position ledger.Position) (bool, error)) error {
	rng := collections.NewPrefixedPairRange[[]byte, string]([]byte(account))
	return k.Positions.Walk(ctx, rng, func(key collections.Pair[[]byte, string], position ledger.Position) (bool, error) {
		return fn(key.K2(), position)
	})
}
