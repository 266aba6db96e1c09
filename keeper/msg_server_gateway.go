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
	"strconv"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"yieldseeker.tokenpage.xyz/adapters"
	"yieldseeker.tokenpage.xyz/types"
	"yieldseeker.tokenpage.xyz/types/registry"
	"yieldseeker.tokenpage.xyz/types/vault"
)

var _ vault.MsgServer = &vaultMsgServer{}

type vaultMsgServer struct {
	*Keeper
}

// NewVaultMsgServer returns an implementation of the gateway MsgServer
// interface for the provided Keeper.
func NewVaultMsgServer(keeper *Keeper) vault.MsgServer {
	return &vaultMsgServer{Keeper: keeper}
}

// loadAccount resolves the account address and fetches its record.
func (k vaultMsgServer) loadAccount(ctx context.Context, raw string) (sdk.AccAddress, vault.Account, error) {
	addressBytes, err := k.address.StringToBytes(raw)
	if err != nil {
		return nil, vault.Account{}, sdkerrors.Wrapf(types.ErrInvalidRequest, "invalid account address: %s", raw)
	}

	account, found, err := k.GetAccount(ctx, addressBytes)
	if err != nil {
		return nil, vault.Account{}, err
	}
	if !found {
		return nil, vault.Account{}, sdkerrors.Wrapf(vault.ErrAccountNotFound, "no account at %s", raw)
	}

	return addressBytes, account, nil
}

// authorizeOwner admits only the account owner.
func (k vaultMsgServer) authorizeOwner(account vault.Account, signer string) error {
	if signer != account.Owner {
		return sdkerrors.Wrapf(vault.ErrNotOwner, "signer %s, owner %s", signer, account.Owner)
	}
	return nil
}

// authorizeDirector admits the owner, the per-account operator, and the
// module-wide operator. Directors may move funds between whitelisted
// positions but never out of the account.
func (k vaultMsgServer) authorizeDirector(ctx context.Context, account vault.Account, signer string) error {
	if signer == account.Owner {
		return nil
	}
	if account.Operator != "" && signer == account.Operator {
		return nil
	}

	global, err := k.GetGlobalOperator(ctx)
	if err != nil {
		return err
	}
	if global != "" && signer == global {
		return nil
	}

	return sdkerrors.Wrapf(vault.ErrNotAuthorized, "signer %s may not direct this account", signer)
}

func (k vaultMsgServer) CreateAccount(ctx context.Context, msg *vault.MsgCreateAccount) (*vault.MsgCreateAccountResponse, error) {
	owner, err := k.address.StringToBytes(msg.Owner)
	if err != nil {
		return nil, sdkerrors.Wrapf(types.ErrInvalidRequest, "invalid owner address: %s", msg.Owner)
	}
	if msg.Signer != msg.Owner {
		return nil, sdkerrors.Wrap(vault.ErrNotOwner, "accounts can only be created by their owner")
	}

	created, err := k.Keeper.CreateAccount(ctx, owner, msg.Operator, msg.Index, 1)
	if err != nil {
		return nil, err
	}

	return &vault.MsgCreateAccountResponse{Address: created.String()}, nil
}

// invokeOne validates and executes a single invocation inside ctx. The caller
// decides whether ctx is a committed or a discarded branch.
func (k vaultMsgServer) invokeOne(ctx context.Context, accountAddress sdk.AccAddress, invocation vault.Invocation) (adapters.Result, error) {
	if invocation.Adapter == "" || invocation.Target == "" {
		return adapters.Result{}, sdkerrors.Wrap(types.ErrInvalidRequest, "adapter and target are required")
	}

	blocked, err := k.IsAdapterBlocked(ctx, accountAddress, invocation.Adapter)
	if err != nil {
		return adapters.Result{}, err
	}
	if blocked {
		return adapters.Result{}, sdkerrors.Wrapf(vault.ErrAdapterBlocked, "adapter %s", invocation.Adapter)
	}

	// Three-way validation: the registry must not be paused, the target must
	// be bound, and it must be bound to exactly the adapter named in the
	// invocation.
	paused, err := k.GetPaused(ctx)
	if err != nil {
		return adapters.Result{}, err
	}
	if paused {
		return adapters.Result{}, registry.ErrPaused
	}

	valid, bound, err := k.IsValidTarget(ctx, invocation.Target)
	if err != nil {
		return adapters.Result{}, err
	}
	if !valid {
		return adapters.Result{}, sdkerrors.Wrapf(registry.ErrTargetNotRegistered, "target %s", invocation.Target)
	}
	if bound != invocation.Adapter {
		return adapters.Result{}, sdkerrors.Wrapf(registry.ErrTargetNotRegistered, "target %s is bound to %s, not %s", invocation.Target, bound, invocation.Adapter)
	}

	logic, ok := k.adapterLogic[invocation.Adapter]
	if !ok {
		return adapters.Result{}, sdkerrors.Wrapf(registry.ErrAdapterLogicNotWired, "adapter %s", invocation.Adapter)
	}

	env := k.newEnv(accountAddress, invocation.Adapter)

	result, err := adapters.Dispatch(ctx, logic, env, invocation.Target, invocation.Data)
	if err != nil {
		return adapters.Result{}, err
	}

	if err := k.UpdateStats(ctx, func(stats *vault.Stats) {
		stats.TotalInvocations++
	}); err != nil {
		return adapters.Result{}, err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		vault.EventTypeInvoked,
		sdk.NewAttribute(vault.AttributeKeyAccount, accountAddress.String()),
		sdk.NewAttribute(vault.AttributeKeyAdapter, invocation.Adapter),
		sdk.NewAttribute(vault.AttributeKeyTarget, invocation.Target),
	))

	return result, nil
}

func (k vaultMsgServer) Invoke(ctx context.Context, msg *vault.MsgInvoke) (*vault.MsgInvokeResponse, error) {
	accountAddress, account, err := k.loadAccount(ctx, msg.Account)
	if err != nil {
		return nil, err
	}
	if err := k.authorizeDirector(ctx, account, msg.Signer); err != nil {
		return nil, err
	}

	if k.invoking {
		return nil, vault.ErrReentrantCall
	}
	k.invoking = true
	defer func() { k.Keeper.invoking = false }()

	// Execute on a branch and commit only on success, so a failed invocation
	// leaves no partial ledger writes behind.
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	branch, commit := sdkCtx.CacheContext()

	result, err := k.invokeOne(branch, accountAddress, msg.Invocation)
	if err != nil {
		return nil, err
	}
	commit()

	return &vault.MsgInvokeResponse{
		Units:  result.Units,
		Assets: result.Assets,
		Fee:    result.Fee,
	}, nil
}

func (k vaultMsgServer) InvokeBatch(ctx context.Context, msg *vault.MsgInvokeBatch) (*vault.MsgInvokeBatchResponse, error) {
	if len(msg.Invocations) == 0 {
		return nil, sdkerrors.Wrap(vault.ErrBatchMismatch, "batch is empty")
	}

	accountAddress, account, err := k.loadAccount(ctx, msg.Account)
	if err != nil {
		return nil, err
	}
	if err := k.authorizeDirector(ctx, account, msg.Signer); err != nil {
		return nil, err
	}

	if k.invoking {
		return nil, vault.ErrReentrantCall
	}
	k.invoking = true
	defer func() { k.Keeper.invoking = false }()

	// All or nothing: the whole batch runs on one branch and any failure
	// discards every entry that came before it.
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	branch, commit := sdkCtx.CacheContext()

	results := make([]vault.MsgInvokeResponse, 0, len(msg.Invocations))
	for i, invocation := range msg.Invocations {
		result, err := k.invokeOne(branch, accountAddress, invocation)
		if err != nil {
			return nil, sdkerrors.Wrapf(err, "batch entry %d", i)
		}
		results = append(results, vault.MsgInvokeResponse{
			Units:  result.Units,
			Assets: result.Assets,
			Fee:    result.Fee,
		})
	}
	commit()

	return &vault.MsgInvokeBatchResponse{Results: results}, nil
}

func (k vaultMsgServer) WithdrawBase(ctx context.Context, msg *vault.MsgWithdrawBase) (*vault.MsgWithdrawBaseResponse, error) {
	// Withdrawals are part of the guarded surface: an adapter must not be
	// able to move base asset out of the account from inside an invocation.
	if k.invoking {
		return nil, vault.ErrReentrantCall
	}

	accountAddress, account, err := k.loadAccount(ctx, msg.Account)
	if err != nil {
		return nil, err
	}
	if err := k.authorizeOwner(account, msg.Signer); err != nil {
		return nil, err
	}

	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return nil, vault.ErrInvalidAmount
	}

	recipient, err := k.address.StringToBytes(msg.Recipient)
	if err != nil {
		return nil, sdkerrors.Wrapf(types.ErrInvalidRequest, "invalid recipient address: %s", msg.Recipient)
	}

	if err := k.sendBase(ctx, accountAddress, recipient, msg.Amount); err != nil {
		return nil, err
	}

	return &vault.MsgWithdrawBaseResponse{}, nil
}

func (k vaultMsgServer) WithdrawAll(ctx context.Context, msg *vault.MsgWithdrawAll) (*vault.MsgWithdrawAllResponse, error) {
	if k.invoking {
		return nil, vault.ErrReentrantCall
	}

	accountAddress, account, err := k.loadAccount(ctx, msg.Account)
	if err != nil {
		return nil, err
	}
	if err := k.authorizeOwner(account, msg.Signer); err != nil {
		return nil, err
	}

	recipient, err := k.address.StringToBytes(msg.Recipient)
	if err != nil {
		return nil, sdkerrors.Wrapf(types.ErrInvalidRequest, "invalid recipient address: %s", msg.Recipient)
	}

	balance := k.bank.GetBalance(ctx, accountAddress, k.denom).Amount
	if balance.IsZero() {
		return &vault.MsgWithdrawAllResponse{Amount: math.ZeroInt()}, nil
	}

	if err := k.sendBase(ctx, accountAddress, recipient, balance); err != nil {
		return nil, err
	}

	return &vault.MsgWithdrawAllResponse{Amount: balance}, nil
}

// sendBase moves base asset out of the account. Owner withdrawals never
// consult the registry: they work identically when the registry is paused or
// emptied.
func (k vaultMsgServer) sendBase(ctx context.Context, from, to sdk.AccAddress, amount math.Int) error {
	balance := k.bank.GetBalance(ctx, from, k.denom).Amount
	if balance.LT(amount) {
		return sdkerrors.Wrapf(vault.ErrInsufficientFunds, "withdrawing %s of %s held", amount.String(), balance.String())
	}

	if err := k.bank.SendCoins(ctx, from, to, sdk.NewCoins(sdk.NewCoin(k.denom, amount))); err != nil {
		return sdkerrors.Wrap(err, "unable to transfer base asset")
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		vault.EventTypeWithdrawn,
		sdk.NewAttribute(vault.AttributeKeyAccount, from.String()),
		sdk.NewAttribute(vault.AttributeKeyRecipient, to.String()),
		sdk.NewAttribute(vault.AttributeKeyAmount, amount.String()),
	))

	return nil
}

func (k vaultMsgServer) BlockAdapter(ctx context.Context, msg *vault.MsgBlockAdapter) (*vault.MsgBlockAdapterResponse, error) {
	accountAddress, account, err := k.loadAccount(ctx, msg.Account)
	if err != nil {
		return nil, err
	}
	if err := k.authorizeOwner(account, msg.Signer); err != nil {
		return nil, err
	}
	if msg.Adapter == "" {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "adapter is required")
	}

	if err := k.SetAdapterBlocked(ctx, accountAddress, msg.Adapter, true); err != nil {
		return nil, err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		vault.EventTypeAdapterBlocked,
		sdk.NewAttribute(vault.AttributeKeyAccount, accountAddress.String()),
		sdk.NewAttribute(vault.AttributeKeyAdapter, msg.Adapter),
	))

	return &vault.MsgBlockAdapterResponse{}, nil
}

func (k vaultMsgServer) UnblockAdapter(ctx context.Context, msg *vault.MsgUnblockAdapter) (*vault.MsgUnblockAdapterResponse, error) {
	accountAddress, account, err := k.loadAccount(ctx, msg.Account)
	if err != nil {
		return nil, err
	}
	if err := k.authorizeOwner(account, msg.Signer); err != nil {
		return nil, err
	}

	if err := k.SetAdapterBlocked(ctx, accountAddress, msg.Adapter, false); err != nil {
		return nil, err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		vault.EventTypeAdapterUnblocked,
		sdk.NewAttribute(vault.AttributeKeyAccount, accountAddress.String()),
		sdk.NewAttribute(vault.AttributeKeyAdapter, msg.Adapter),
	))

	return &vault.MsgUnblockAdapterResponse{}, nil
}

func (k vaultMsgServer) Upgrade(ctx context.Context, msg *vault.MsgUpgrade) (*vault.MsgUpgradeResponse, error) {
	accountAddress, account, err := k.loadAccount(ctx, msg.Account)
	if err != nil {
		return nil, err
	}
	if err := k.authorizeOwner(account, msg.Signer); err != nil {
		return nil, err
	}

	if msg.LogicVersion <= account.LogicVersion {
		return nil, sdkerrors.Wrapf(vault.ErrStaleLogic, "current %d, requested %d", account.LogicVersion, msg.LogicVersion)
	}

	account.LogicVersion = msg.LogicVersion
	if err := k.SetAccount(ctx, accountAddress, account); err != nil {
		return nil, err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		vault.EventTypeUpgraded,
		sdk.NewAttribute(vault.AttributeKeyAccount, accountAddress.String()),
		sdk.NewAttribute(vault.AttributeKeyVersion, strconv.FormatUint(msg.LogicVersion, 10)),
	))

	return &vault.MsgUpgradeResponse{}, nil
}

func (k vaultMsgServer) PayFees(ctx context.Context, msg *vault.MsgPayFees) (*vault.MsgPayFeesResponse, error) {
	if k.invoking {
		return nil, vault.ErrReentrantCall
	}

	accountAddress, account, err := k.loadAccount(ctx, msg.Account)
	if err != nil {
		return nil, err
	}
	if err := k.authorizeDirector(ctx, account, msg.Signer); err != nil {
		return nil, err
	}

	config, err := k.GetFeeConfig(ctx)
	if err != nil {
		return nil, err
	}
	collector, err := k.address.StringToBytes(config.Collector)
	if err != nil {
		return nil, sdkerrors.Wrap(err, "stored collector address is invalid")
	}

	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return nil, vault.ErrInvalidAmount
	}
	balance := k.bank.GetBalance(ctx, accountAddress, k.denom).Amount
	if balance.LT(msg.Amount) {
		return nil, sdkerrors.Wrapf(vault.ErrInsufficientFunds, "paying %s of %s held", msg.Amount.String(), balance.String())
	}

	// RecordFeePaid enforces that the payment never exceeds what is owed.
	if err := k.RecordFeePaid(ctx, accountAddress, msg.Amount); err != nil {
		return nil, err
	}
	if err := k.bank.SendCoins(ctx, accountAddress, collector, sdk.NewCoins(sdk.NewCoin(k.denom, msg.Amount))); err != nil {
		return nil, sdkerrors.Wrap(err, "unable to transfer fees")
	}

	return &vault.MsgPayFeesResponse{}, nil
}

func (k vaultMsgServer) SetOperator(ctx context.Context, msg *vault.MsgSetOperator) (*vault.MsgSetOperatorResponse, error) {
	if msg.Signer != k.authority {
		return nil, sdkerrors.Wrapf(registry.ErrNotAuthority, "signer %s", msg.Signer)
	}

	if msg.Operator != "" {
		if _, err := k.address.StringToBytes(msg.Operator); err != nil {
			return nil, sdkerrors.Wrapf(types.ErrInvalidRequest, "invalid operator address: %s", msg.Operator)
		}
	}

	if err := k.GlobalOperator.Set(ctx, msg.Operator); err != nil {
		return nil, err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		vault.EventTypeOperatorRotated,
		sdk.NewAttribute(vault.AttributeKeyOperator, msg.Operator),
	))

	return &vault.MsgSetOperatorResponse{}, nil
}
