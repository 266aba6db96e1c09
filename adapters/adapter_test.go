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

package adapters_test

import (
	"context"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yieldseeker.tokenpage.xyz/adapters"
)

func TestParseCall(t *testing.T) {
	// ASSERT: A well-formed deposit decodes.
	call, err := adapters.ParseCall([]byte(`{"op":"deposit","amount":"150"}`))
	require.NoError(t, err)
	assert.Equal(t, adapters.OpDeposit, call.Op)
	assert.Equal(t, math.NewInt(150), call.Amount)

	// ASSERT: Garbage and missing ops are rejected.
	_, err = adapters.ParseCall([]byte(`not json`))
	require.ErrorIs(t, err, adapters.ErrInvalidCall)
	_, err = adapters.ParseCall([]byte(`{"amount":"150"}`))
	require.ErrorIs(t, err, adapters.ErrInvalidCall)
}

// recordingAdapter captures which operation Dispatch routed to it.
type recordingAdapter struct {
	op     string
	amount math.Int
	token  string
}

func (a *recordingAdapter) Name() string { return "recording" }

func (a *recordingAdapter) Deposit(_ context.Context, _ adapters.Env, _ string, amount math.Int) (math.Int, error) {
	a.op, a.amount = adapters.OpDeposit, amount
	return amount, nil
}

func (a *recordingAdapter) Withdraw(_ context.Context, _ adapters.Env, _ string, amount math.Int) (math.Int, math.Int, error) {
	a.op, a.amount = adapters.OpWithdraw, amount
	return amount, math.OneInt(), nil
}

func (a *recordingAdapter) Harvest(_ context.Context, _ adapters.Env, _ string) (string, math.Int, error) {
	a.op = adapters.OpHarvest
	return "ureward", math.NewInt(7), nil
}

func (a *recordingAdapter) SwapReward(_ context.Context, _ adapters.Env, _, token string, amount math.Int) (math.Int, math.Int, error) {
	a.op, a.amount, a.token = adapters.OpSwapReward, amount, token
	return amount, math.OneInt(), nil
}

func (a *recordingAdapter) Asset(_ context.Context, _ adapters.Env, _ string) (string, error) {
	return "uusdc", nil
}

func (a *recordingAdapter) Balance(_ context.Context, _ adapters.Env, _ string) (math.Int, error) {
	return math.ZeroInt(), nil
}

type noopEnv struct{}

func (noopEnv) Account() sdk.AccAddress { return sdk.AccAddress("test________________") }
func (noopEnv) BaseDenom() string       { return "uusdc" }
func (noopEnv) Market(_ context.Context, _ string) (adapters.Market, error) {
	return nil, adapters.ErrUnsupportedTarget
}
func (noopEnv) Ledger() adapters.Ledger { return nil }

func TestDispatchRouting(t *testing.T) {
	adapter := &recordingAdapter{}
	ctx := context.Background()

	// ACT & ASSERT: Deposit routes with its amount.
	result, err := adapters.Dispatch(ctx, adapter, noopEnv{}, "t", []byte(`{"op":"deposit","amount":"10"}`))
	require.NoError(t, err)
	assert.Equal(t, adapters.OpDeposit, adapter.op)
	assert.Equal(t, math.NewInt(10), result.Units)
	assert.Equal(t, math.NewInt(10), result.Assets)

	// ACT & ASSERT: Withdraw reports assets and fee.
	result, err = adapters.Dispatch(ctx, adapter, noopEnv{}, "t", []byte(`{"op":"withdraw","amount":"20"}`))
	require.NoError(t, err)
	assert.Equal(t, adapters.OpWithdraw, adapter.op)
	assert.Equal(t, math.NewInt(20), result.Assets)
	assert.Equal(t, math.OneInt(), result.Fee)

	// ACT & ASSERT: Harvest reports the claimed amount.
	result, err = adapters.Dispatch(ctx, adapter, noopEnv{}, "t", []byte(`{"op":"harvest"}`))
	require.NoError(t, err)
	assert.Equal(t, adapters.OpHarvest, adapter.op)
	assert.Equal(t, math.NewInt(7), result.Assets)

	// ACT & ASSERT: Swap routes the token through.
	_, err = adapters.Dispatch(ctx, adapter, noopEnv{}, "t", []byte(`{"op":"swap_reward","token":"ureward","amount":"5"}`))
	require.NoError(t, err)
	assert.Equal(t, adapters.OpSwapReward, adapter.op)
	assert.Equal(t, "ureward", adapter.token)

	// ASSERT: Unknown operations are rejected.
	_, err = adapters.Dispatch(ctx, adapter, noopEnv{}, "t", []byte(`{"op":"liquidate"}`))
	require.ErrorIs(t, err, adapters.ErrUnknownOp)
}
