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

	"cosmossdk.io/errors"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"yieldseeker.tokenpage.xyz/types"
)

var _ types.BankKeeper = BankKeeper{}

// BankKeeper keeps balances in its own store key, reached through the
// context. Coin movements made on a branched context are therefore committed
// or discarded together with module state, matching how the real bank module
// behaves under CacheContext.
type BankKeeper struct {
	key *storetypes.KVStoreKey
}

func NewBankKeeper(key *storetypes.KVStoreKey) BankKeeper {
	return BankKeeper{key: key}
}

func (k BankKeeper) GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	return sdk.NewCoin(denom, k.Balances(ctx, addr.String()).AmountOf(denom))
}

func (k BankKeeper) SendCoins(ctx context.Context, from, to sdk.AccAddress, amt sdk.Coins) error {
	remaining, negative := k.Balances(ctx, from.String()).SafeSub(amt...)
	if negative {
		return errors.Wrapf(sdkerrors.ErrInsufficientFunds, "spendable balance is smaller than %s", amt.String())
	}

	k.setBalances(ctx, from.String(), remaining)
	k.setBalances(ctx, to.String(), k.Balances(ctx, to.String()).Add(amt...))

	return nil
}

// Balances returns the full balance held by the given bech32 address.
func (k BankKeeper) Balances(ctx context.Context, address string) sdk.Coins {
	bz := sdk.UnwrapSDKContext(ctx).KVStore(k.key).Get(balanceKey(address))
	if len(bz) == 0 {
		return sdk.Coins{}
	}

	coins, err := sdk.ParseCoinsNormalized(string(bz))
	if err != nil {
		panic(err)
	}

	return coins
}

// Fund mints coins straight into the given address.
func (k BankKeeper) Fund(ctx context.Context, address string, coins sdk.Coins) {
	k.setBalances(ctx, address, k.Balances(ctx, address).Add(coins...))
}

func (k BankKeeper) setBalances(ctx context.Context, address string, coins sdk.Coins) {
	store := sdk.UnwrapSDKContext(ctx).KVStore(k.key)
	if coins.IsZero() {
		store.Delete(balanceKey(address))
		return
	}

	store.Set(balanceKey(address), []byte(coins.String()))
}

func balanceKey(address string) []byte {
	return []byte("balance/" + address)
}
