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
	"encoding/binary"
	"strconv"

	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"

	"yieldseeker.tokenpage.xyz/types"
	"yieldseeker.tokenpage.xyz/types/vault"
)

// PredictAccountAddress derives the address an agent account will live at for
// the (owner, index) pair. The derivation is a pure function of its inputs,
// so the address is known before the account exists and never changes.
func PredictAccountAddress(owner sdk.AccAddress, index uint64) sdk.AccAddress {
	key := make([]byte, len(owner)+8)
	copy(key, owner)
	binary.BigEndian.PutUint64(key[len(owner):], index)

	return address.Derive(types.ModuleAddress, key)
}

// CreateAccount materialises the agent account for (owner, index) at its
// predicted address. One account per pair: a second creation for the same
// pair fails, and the account is never destroyed afterwards.
func (k *Keeper) CreateAccount(ctx context.Context, owner sdk.AccAddress, operator string, index uint64, logicVersion uint64) (sdk.AccAddress, error) {
	taken, err := k.HasAccountForOwner(ctx, owner, index)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, sdkerrors.Wrapf(vault.ErrAccountExists, "owner %s index %d", owner.String(), index)
	}

	if operator != "" {
		if _, err := k.address.StringToBytes(operator); err != nil {
			return nil, sdkerrors.Wrapf(types.ErrInvalidRequest, "invalid operator address: %s", operator)
		}
	}

	accountAddress := PredictAccountAddress(owner, index)

	account := vault.Account{
		Owner:        owner.String(),
		Operator:     operator,
		Index:        index,
		LogicVersion: logicVersion,
		CreatedAt:    k.header.GetHeaderInfo(ctx).Time,
	}

	if err := k.SetAccount(ctx, accountAddress, account); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to store account")
	}
	if err := k.SetAccountForOwner(ctx, owner, index, accountAddress); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to index account")
	}

	// Register with x/auth so the address can hold and send funds.
	if k.account.GetAccount(ctx, accountAddress) == nil {
		k.account.SetAccount(ctx, k.account.NewAccountWithAddress(ctx, accountAddress))
	}

	if err := k.UpdateStats(ctx, func(stats *vault.Stats) {
		stats.TotalAccounts++
	}); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to update stats")
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		vault.EventTypeAccountCreated,
		sdk.NewAttribute(vault.AttributeKeyAccount, accountAddress.String()),
		sdk.NewAttribute(vault.AttributeKeyOwner, owner.String()),
		sdk.NewAttribute(vault.AttributeKeyOperator, operator),
		sdk.NewAttribute(vault.AttributeKeyIndex, strconv.FormatUint(index, 10)),
	))

	k.logger.Info("created agent account", "address", accountAddress.String(), "owner", owner.String(), "index", index)

	return accountAddress, nil
}
