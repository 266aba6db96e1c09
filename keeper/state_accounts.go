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
	sdk "github.com/cosmos/cosmos-sdk/types"

	"yieldseeker.tokenpage.xyz/types/vault"
)

// GetAccount returns the agent account stored at the address. The boolean
// flag indicates whether the account existed in state.
func (k *Keeper) GetAccount(ctx context.Context, address sdk.AccAddress) (vault.Account, bool, error) {
	account, err := k.Accounts.Get(ctx, address)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return vault.Account{}, false, nil
		}
		return vault.Account{}, false, err
	}

	return account, true, nil
}

// SetAccount writes the agent account record to state.
func (k *Keeper) SetAccount(ctx context.Context, address sdk.AccAddress, account vault.Account) error {
	return k.Accounts.Set(ctx, address, account)
}

// HasAccountForOwner reports whether an account was already created for the
// (owner, index) pair.
func (k *Keeper) HasAccountForOwner(ctx context.Context, owner sdk.AccAddress, index uint64) (bool, error) {
	return k.AccountsByOwner.Has(ctx, collections.Join([]byte(owner), index))
}

// SetAccountForOwner records the address created for the (owner, index)
// pair.
func (k *Keeper) SetAccountForOwner(ctx context.Context, owner sdk.AccAddress, index uint64, address sdk.AccAddress) error {
	return k.AccountsByOwner.Set(ctx, collections.Join([]byte(owner), index), address)
}

// IsAdapterBlocked reports whether the account owner has blocked the adapter
// locally, independent of global registry state.
func (k *Keeper) IsAdapterBlocked(ctx context.Context, account sdk.AccAddress, adapter string) (bool, error) {
	blocked, err := k.BlockedAdapters.Get(ctx, collections.Join([]byte(account), adapter))
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	return blocked, nil
}

// SetAdapterBlocked sets or clears the vault-local adapter block.
func (k *Keeper) SetAdapterBlocked(ctx context.Context, account sdk.AccAddress, adapter string, blocked bool) error {
	key := collections.Join([]byte(account), adapter)
	if !blocked {
		err := k.BlockedAdapters.Remove(ctx, key)
		if err != nil && !errors.Is(err, collections.ErrNotFound) {
			return err
		}
		return nil
	}

	return k.BlockedAdapters.Set(ctx, key, true)
}

// GetGlobalOperator returns the module-wide rotatable operator, or empty when
// none is configured.
func (k *Keeper) GetGlobalOperator(ctx context.Context) (string, error) {
	operator, err := k.GlobalOperator.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return "", nil
		}
		return "", err
	}

	return operator, nil
}

// GetStats returns the module-wide gateway statistics, zero-valued when
// nothing has been recorded yet.
func (k *Keeper) GetStats(ctx context.Context) (vault.Stats, error) {
	stats, err := k.Stats.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return vault.NewStats(), nil
		}
		return vault.Stats{}, err
	}

	return stats, nil
}

// UpdateStats applies fn to the current statistics and persists the result.
func (k *Keeper) UpdateStats(ctx context.Context, fn func(stats *vault.Stats)) error {
	stats, err := k.GetStats(ctx)
	if err != nil {
		return err
	}

	fn(&stats)

	return k.Stats.Set(ctx, stats)
}

// IterateAccounts walks every agent account.
func (k *Keeper) IterateAccounts(ctx context.Context, fn func(address sdk.AccAddress, account vault.Account) (bool, error)) error {
	return k.Accounts.Walk(ctx, nil, func(key []byte, account vault.Account) (bool, error) {
		return fn(sdk.AccAddress(key), account)
	})
}
