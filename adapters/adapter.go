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

// Package adapters holds the stateless protocol-specific execution logic that
// runs with an agent account's own identity. An adapter can only ever move
// the account's funds into the single target it was invoked against: the
// market surface for that target is handed to it by the execution
// environment, which re-derives the target-to-adapter binding from the
// registry on every access.
package adapters

import (
	"context"
	"encoding/json"

	"cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const CodespaceName = "yieldseeker/adapters"

var (
	ErrInvalidCall       = errors.Register(CodespaceName, 2, "invalid call data")
	ErrUnknownOp         = errors.Register(CodespaceName, 3, "unknown adapter operation")
	ErrUnsupportedTarget = errors.Register(CodespaceName, 4, "target does not support this operation")
)

// Market is the deposit/withdraw surface of one external protocol target.
// Implementations are external collaborators wired into the keeper at
// construction; the module never constructs them itself.
type Market interface {
	// Asset returns the denom the target accepts on deposit and returns on
	// withdrawal.
	Asset(ctx context.Context) (string, error)

	// Deposit moves assets out of the holder's balance into the target and
	// returns the position units received.
	Deposit(ctx context.Context, holder sdk.AccAddress, assets math.Int) (math.Int, error)

	// Withdraw redeems units held by the holder and returns the assets
	// received back into the holder's balance.
	Withdraw(ctx context.Context, holder sdk.AccAddress, units math.Int) (math.Int, error)

	// UnitBalance returns the holder's true current position-unit balance,
	// including units that accrued outside any tracked deposit.
	UnitBalance(ctx context.Context, holder sdk.AccAddress) (math.Int, error)
}

// RewardSource is implemented by markets that pay out reward tokens on top
// of the position itself.
type RewardSource interface {
	// Harvest claims pending rewards into the holder's balance and reports
	// the reward token and amount claimed.
	Harvest(ctx context.Context, holder sdk.AccAddress) (string, math.Int, error)
}

// Swapper is implemented by markets able to convert a token held by the
// holder into the base asset.
type Swapper interface {
	Swap(ctx context.Context, holder sdk.AccAddress, tokenIn string, amountIn math.Int) (math.Int, error)
}

// Ledger is the account-scoped recording surface handed to an adapter. Every
// write lands on the one account the invocation runs as.
type Ledger interface {
	RecordDeposit(ctx context.Context, token string, assetsIn, unitsReceived math.Int) error

	// RecordWithdraw apportions cost basis against actualBalance, the true
	// position balance sampled immediately before the external withdrawal,
	// and returns the performance fee charged.
	RecordWithdraw(ctx context.Context, token string, unitsSpent, assetsReceived, actualBalance math.Int) (math.Int, error)

	RecordYieldEarned(ctx context.Context, token string, amount math.Int) error

	// RecordTokenSwap converts fee-designated value of token into realized
	// base-asset fees at the exact swap proceeds and returns the amount
	// credited to fees owed.
	RecordTokenSwap(ctx context.Context, token string, amountIn, proceeds math.Int) (math.Int, error)
}

// Env is the execution environment an invocation runs in. It carries the
// account's identity and scopes every capability to that account and to the
// registry's current view of the world.
type Env interface {
	// Account returns the agent account the adapter is running as.
	Account() sdk.AccAddress

	// BaseDenom returns the account's base asset denom.
	BaseDenom() string

	// Market resolves the market surface for target, failing closed unless
	// the registry currently binds target to the running adapter and is not
	// paused. The check runs on every call, independent of the gateway's own
	// validation.
	Market(ctx context.Context, target string) (Market, error)

	// Ledger returns the account-scoped position ledger.
	Ledger() Ledger
}

// Result reports the amount deltas of one invocation.
type Result struct {
	Units  math.Int
	Assets math.Int
	Fee    math.Int
}

// Adapter is one unit of protocol-specific logic. Implementations hold no
// state: everything they touch belongs to the account in the Env.
type Adapter interface {
	Name() string
	Deposit(ctx context.Context, env Env, target string, amount math.Int) (math.Int, error)
	Withdraw(ctx context.Context, env Env, target string, amount math.Int) (math.Int, math.Int, error)
	Harvest(ctx context.Context, env Env, target string) (string, math.Int, error)
	SwapReward(ctx context.Context, env Env, target, token string, amountIn math.Int) (math.Int, math.Int, error)
	Asset(ctx context.Context, env Env, target string) (string, error)
	Balance(ctx context.Context, env Env, target string) (math.Int, error)
}

// Call operations understood by Dispatch.
const (
	OpDeposit    = "deposit"
	OpWithdraw   = "withdraw"
	OpHarvest    = "harvest"
	OpSwapReward = "swap_reward"
)

// Call is the decoded invocation payload.
type Call struct {
	Op     string   `json:"op"`
	Amount math.Int `json:"amount,omitempty"`
	Token  string   `json:"token,omitempty"`
}

// ParseCall decodes raw invocation data.
func ParseCall(data []byte) (Call, error) {
	var call Call
	if err := json.Unmarshal(data, &call); err != nil {
		return Call{}, errors.Wrap(ErrInvalidCall, err.Error())
	}
	if call.Op == "" {
		return Call{}, errors.Wrap(ErrInvalidCall, "missing op")
	}
	return call, nil
}

// Dispatch routes a decoded call to the adapter and normalises the reported
// deltas.
func Dispatch(ctx context.Context, a Adapter, env Env, target string, data []byte) (Result, error) {
	call, err := ParseCall(data)
	if err != nil {
		return Result{}, err
	}

	result := Result{Units: math.ZeroInt(), Assets: math.ZeroInt(), Fee: math.ZeroInt()}

	switch call.Op {
	case OpDeposit:
		units, err := a.Deposit(ctx, env, target, call.Amount)
		if err != nil {
			return Result{}, err
		}
		result.Units = units
		result.Assets = call.Amount
	case OpWithdraw:
		assets, fee, err := a.Withdraw(ctx, env, target, call.Amount)
		if err != nil {
			return Result{}, err
		}
		result.Units = call.Amount
		result.Assets = assets
		result.Fee = fee
	case OpHarvest:
		_, amount, err := a.Harvest(ctx, env, target)
		if err != nil {
			return Result{}, err
		}
		result.Assets = amount
	case OpSwapReward:
		proceeds, fee, err := a.SwapReward(ctx, env, target, call.Token, call.Amount)
		if err != nil {
			return Result{}, err
		}
		result.Assets = proceeds
		result.Fee = fee
	default:
		return Result{}, errors.Wrapf(ErrUnknownOp, "op %s", call.Op)
	}

	return result, nil
}
