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

package keeper_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"cosmossdk.io/core/header"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yieldseeker.tokenpage.xyz/adapters"
	"yieldseeker.tokenpage.xyz/keeper"
	"yieldseeker.tokenpage.xyz/types/ledger"
	"yieldseeker.tokenpage.xyz/types/registry"
	"yieldseeker.tokenpage.xyz/types/vault"
	"yieldseeker.tokenpage.xyz/utils"
	"yieldseeker.tokenpage.xyz/utils/mocks"
)

const (
	ONE = 1_000_000

	testTarget = "vault-one"
)

type testEnv struct {
	k        *keeper.Keeper
	registry registry.MsgServer
	vaults   vault.MsgServer
	ledger   ledger.MsgServer
	bank     mocks.BankKeeper
	market   *mocks.Market
	ctx      sdk.Context

	authority utils.Account
	emergency utils.Account
	collector utils.Account
	alice     utils.Account
	bob       utils.Account
}

// setupTest builds a gateway with the share vault adapter registered and one
// target bound to it, a 10% fee config, and an account created for Alice
// with Bob as her operator.
func setupTest(t *testing.T) (testEnv, string) {
	t.Helper()

	env := testEnv{
		authority: utils.TestAccount(),
		emergency: utils.TestAccount(),
		collector: utils.TestAccount(),
		alice:     utils.TestAccount(),
		bob:       utils.TestAccount(),
	}

	env.k, env.bank, env.ctx = mocks.GatewayKeeper(t, env.authority.Address, env.emergency.Address)
	env.ctx = env.ctx.WithHeaderInfo(header.Info{Time: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)})

	env.market = mocks.NewMarket("one", mocks.BaseDenom, env.bank)
	env.k.WireAdapter(adapters.NewShareVaultAdapter())
	env.k.WireMarket(testTarget, env.market)

	env.registry = keeper.NewRegistryMsgServer(env.k)
	env.vaults = keeper.NewVaultMsgServer(env.k)
	env.ledger = keeper.NewLedgerMsgServer(env.k)

	_, err := env.registry.RegisterAdapter(env.ctx, &registry.MsgRegisterAdapter{
		Signer:  env.authority.Address,
		Adapter: adapters.ShareVaultName,
	})
	require.NoError(t, err)
	_, err = env.registry.RegisterTarget(env.ctx, &registry.MsgRegisterTarget{
		Signer:  env.authority.Address,
		Target:  testTarget,
		Adapter: adapters.ShareVaultName,
	})
	require.NoError(t, err)

	_, err = env.ledger.SetFeeConfig(env.ctx, &ledger.MsgSetFeeConfig{
		Signer:    env.authority.Address,
		RateBps:   1000,
		Collector: env.collector.Address,
	})
	require.NoError(t, err)

	resp, err := env.vaults.CreateAccount(env.ctx, &vault.MsgCreateAccount{
		Signer:   env.alice.Address,
		Owner:    env.alice.Address,
		Operator: env.bob.Address,
		Index:    0,
	})
	require.NoError(t, err)

	return env, resp.Address
}

func depositData(t *testing.T, amount math.Int) []byte {
	t.Helper()
	data, err := json.Marshal(adapters.Call{Op: adapters.OpDeposit, Amount: amount})
	require.NoError(t, err)
	return data
}

func withdrawData(t *testing.T, amount math.Int) []byte {
	t.Helper()
	data, err := json.Marshal(adapters.Call{Op: adapters.OpWithdraw, Amount: amount})
	require.NoError(t, err)
	return data
}

func fund(env testEnv, address string, amount int64) {
	env.bank.Fund(env.ctx, address, sdk.NewCoins(sdk.NewCoin(mocks.BaseDenom, math.NewInt(amount))))
}

func TestInvokeDepositByOwner(t *testing.T) {
	env, account := setupTest(t)

	// ARRANGE: Fund Alice's agent account with 1000 base.
	fund(env, account, 1000*ONE)

	// ACT: Alice deposits 400 into the bound target.
	resp, err := env.vaults.Invoke(env.ctx, &vault.MsgInvoke{
		Signer:  env.alice.Address,
		Account: account,
		Invocation: vault.Invocation{
			Adapter: adapters.ShareVaultName,
			Target:  testTarget,
			Data:    depositData(t, math.NewInt(400*ONE)),
		},
	})

	// ASSERT: Units are credited 1:1 and the balance moved into the market.
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(400*ONE), resp.Units)
	assert.Equal(t, math.NewInt(600*ONE), env.bank.Balances(env.ctx, account).AmountOf(mocks.BaseDenom))

	// ASSERT: The ledger tracked the position.
	position, err := env.k.GetPosition(env.ctx, mustAddr(t, account), testTarget)
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(400*ONE), position.CostBasis)
	assert.Equal(t, math.NewInt(400*ONE), position.Units)
}

func TestInvokeByOperatorAndGlobalOperator(t *testing.T) {
	env, account := setupTest(t)
	fund(env, account, 300*ONE)

	// ACT: Bob, the per-account operator, deposits.
	_, err := env.vaults.Invoke(env.ctx, &vault.MsgInvoke{
		Signer:  env.bob.Address,
		Account: account,
		Invocation: vault.Invocation{
			Adapter: adapters.ShareVaultName,
			Target:  testTarget,
			Data:    depositData(t, math.NewInt(100*ONE)),
		},
	})
	require.NoError(t, err)

	// ARRANGE: Rotate in a module-wide operator.
	global := utils.TestAccount()
	_, err = env.vaults.SetOperator(env.ctx, &vault.MsgSetOperator{
		Signer:   env.authority.Address,
		Operator: global.Address,
	})
	require.NoError(t, err)

	// ACT: The global operator deposits too.
	_, err = env.vaults.Invoke(env.ctx, &vault.MsgInvoke{
		Signer:  global.Address,
		Account: account,
		Invocation: vault.Invocation{
			Adapter: adapters.ShareVaultName,
			Target:  testTarget,
			Data:    depositData(t, math.NewInt(100*ONE)),
		},
	})
	require.NoError(t, err)

	// ACT: A stranger is rejected.
	stranger := utils.TestAccount()
	_, err = env.vaults.Invoke(env.ctx, &vault.MsgInvoke{
		Signer:  stranger.Address,
		Account: account,
		Invocation: vault.Invocation{
			Adapter: adapters.ShareVaultName,
			Target:  testTarget,
			Data:    depositData(t, math.NewInt(100*ONE)),
		},
	})

	// ASSERT
	require.ErrorIs(t, err, vault.ErrNotAuthorized)
}

func TestInvokeRejectedWhenPaused(t *testing.T) {
	env, account := setupTest(t)
	fund(env, account, 100*ONE)

	// ARRANGE: The emergency authority pauses the registry.
	_, err := env.registry.Pause(env.ctx, &registry.MsgPause{Signer: env.emergency.Address})
	require.NoError(t, err)

	// ACT
	_, err = env.vaults.Invoke(env.ctx, &vault.MsgInvoke{
		Signer:  env.alice.Address,
		Account: account,
		Invocation: vault.Invocation{
			Adapter: adapters.ShareVaultName,
			Target:  testTarget,
			Data:    depositData(t, math.NewInt(100*ONE)),
		},
	})

	// ASSERT: Invocations fail closed while paused.
	require.ErrorIs(t, err, registry.ErrPaused)

	// ASSERT: Owner withdrawals keep working while paused.
	recipient := utils.TestAccount()
	_, err = env.vaults.WithdrawBase(env.ctx, &vault.MsgWithdrawBase{
		Signer:    env.alice.Address,
		Account:   account,
		Recipient: recipient.Address,
		Amount:    math.NewInt(40 * ONE),
	})
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(40*ONE), env.bank.Balances(env.ctx, recipient.Address).AmountOf(mocks.BaseDenom))
}

func TestInvokeAdapterBindingMismatch(t *testing.T) {
	env, account := setupTest(t)
	fund(env, account, 100*ONE)

	// ARRANGE: Register a second adapter that the target is not bound to.
	env.k.WireAdapter(adapters.NewPoolSupplyAdapter())
	_, err := env.registry.RegisterAdapter(env.ctx, &registry.MsgRegisterAdapter{
		Signer:  env.authority.Address,
		Adapter: adapters.PoolSupplyName,
	})
	require.NoError(t, err)

	// ACT: Invoke names the registered but unbound adapter.
	_, err = env.vaults.Invoke(env.ctx, &vault.MsgInvoke{
		Signer:  env.alice.Address,
		Account: account,
		Invocation: vault.Invocation{
			Adapter: adapters.PoolSupplyName,
			Target:  testTarget,
			Data:    depositData(t, math.NewInt(100*ONE)),
		},
	})

	// ASSERT
	require.ErrorIs(t, err, registry.ErrTargetNotRegistered)

	// ACT: An unbound target fails the same way.
	_, err = env.vaults.Invoke(env.ctx, &vault.MsgInvoke{
		Signer:  env.alice.Address,
		Account: account,
		Invocation: vault.Invocation{
			Adapter: adapters.ShareVaultName,
			Target:  "vault-unknown",
			Data:    depositData(t, math.NewInt(100*ONE)),
		},
	})
	require.ErrorIs(t, err, registry.ErrTargetNotRegistered)
}

func TestInvokeBlockedAdapter(t *testing.T) {
	env, account := setupTest(t)
	fund(env, account, 100*ONE)

	// ARRANGE: Alice blocks the adapter on her account.
	_, err := env.vaults.BlockAdapter(env.ctx, &vault.MsgBlockAdapter{
		Signer:  env.alice.Address,
		Account: account,
		Adapter: adapters.ShareVaultName,
	})
	require.NoError(t, err)

	// ACT & ASSERT: Even the owner cannot invoke through a blocked adapter.
	invocation := vault.Invocation{
		Adapter: adapters.ShareVaultName,
		Target:  testTarget,
		Data:    depositData(t, math.NewInt(50*ONE)),
	}
	_, err = env.vaults.Invoke(env.ctx, &vault.MsgInvoke{
		Signer: env.alice.Address, Account: account, Invocation: invocation,
	})
	require.ErrorIs(t, err, vault.ErrAdapterBlocked)

	// ACT & ASSERT: Unblocking restores access.
	_, err = env.vaults.UnblockAdapter(env.ctx, &vault.MsgUnblockAdapter{
		Signer:  env.alice.Address,
		Account: account,
		Adapter: adapters.ShareVaultName,
	})
	require.NoError(t, err)
	_, err = env.vaults.Invoke(env.ctx, &vault.MsgInvoke{
		Signer: env.alice.Address, Account: account, Invocation: invocation,
	})
	require.NoError(t, err)

	// ASSERT: Only the owner may block.
	_, err = env.vaults.BlockAdapter(env.ctx, &vault.MsgBlockAdapter{
		Signer:  env.bob.Address,
		Account: account,
		Adapter: adapters.ShareVaultName,
	})
	require.ErrorIs(t, err, vault.ErrNotOwner)
}

func TestInvokeBatchAllOrNothing(t *testing.T) {
	env, account := setupTest(t)
	fund(env, account, 1000*ONE)

	// ACT: The second entry targets an unbound market, so the whole batch
	// must fail.
	_, err := env.vaults.InvokeBatch(env.ctx, &vault.MsgInvokeBatch{
		Signer:  env.alice.Address,
		Account: account,
		Invocations: []vault.Invocation{
			{Adapter: adapters.ShareVaultName, Target: testTarget, Data: depositData(t, math.NewInt(200*ONE))},
			{Adapter: adapters.ShareVaultName, Target: "vault-unknown", Data: depositData(t, math.NewInt(200*ONE))},
		},
	})

	// ASSERT: Error names the failing entry and nothing was committed.
	require.Error(t, err)
	position, posErr := env.k.GetPosition(env.ctx, mustAddr(t, account), testTarget)
	require.NoError(t, posErr)
	assert.True(t, position.IsZero())
	assert.Equal(t, math.NewInt(1000*ONE), env.bank.Balances(env.ctx, account).AmountOf(mocks.BaseDenom))

	// ACT: A fully valid batch commits every entry.
	resp, err := env.vaults.InvokeBatch(env.ctx, &vault.MsgInvokeBatch{
		Signer:  env.alice.Address,
		Account: account,
		Invocations: []vault.Invocation{
			{Adapter: adapters.ShareVaultName, Target: testTarget, Data: depositData(t, math.NewInt(200*ONE))},
			{Adapter: adapters.ShareVaultName, Target: testTarget, Data: depositData(t, math.NewInt(300*ONE))},
		},
	})

	// ASSERT
	require.NoError(t, err)
	require.Len(t, resp.Results, 2)
	position, posErr = env.k.GetPosition(env.ctx, mustAddr(t, account), testTarget)
	require.NoError(t, posErr)
	assert.Equal(t, math.NewInt(500*ONE), position.CostBasis)
	assert.Equal(t, math.NewInt(500*ONE), env.bank.Balances(env.ctx, account).AmountOf(mocks.BaseDenom))

	// ASSERT: An empty batch is rejected.
	_, err = env.vaults.InvokeBatch(env.ctx, &vault.MsgInvokeBatch{
		Signer:      env.alice.Address,
		Account:     account,
		Invocations: nil,
	})
	require.ErrorIs(t, err, vault.ErrBatchMismatch)
}

// reentrantAdapter calls back into the gateway from inside its own
// execution.
type reentrantAdapter struct {
	adapters.ShareVaultAdapter
	name   string
	invoke func(ctx context.Context) error
}

func (a reentrantAdapter) Name() string { return a.name }

func (a reentrantAdapter) Deposit(ctx context.Context, _ adapters.Env, _ string, _ math.Int) (math.Int, error) {
	return math.ZeroInt(), a.invoke(ctx)
}

func TestInvokeRejectsReentrancy(t *testing.T) {
	env, account := setupTest(t)
	fund(env, account, 100*ONE)

	// ARRANGE: Wire and bind an adapter that re-enters the gateway.
	nested := vault.MsgInvoke{
		Signer:  env.alice.Address,
		Account: account,
		Invocation: vault.Invocation{
			Adapter: adapters.ShareVaultName,
			Target:  testTarget,
			Data:    depositData(t, math.NewInt(10*ONE)),
		},
	}
	env.k.WireAdapter(reentrantAdapter{name: "reentrant", invoke: func(ctx context.Context) error {
		_, err := env.vaults.Invoke(ctx, &nested)
		return err
	}})
	env.k.WireMarket("vault-two", env.market)
	_, err := env.registry.RegisterAdapter(env.ctx, &registry.MsgRegisterAdapter{
		Signer: env.authority.Address, Adapter: "reentrant",
	})
	require.NoError(t, err)
	_, err = env.registry.RegisterTarget(env.ctx, &registry.MsgRegisterTarget{
		Signer: env.authority.Address, Target: "vault-two", Adapter: "reentrant",
	})
	require.NoError(t, err)

	// ACT
	_, err = env.vaults.Invoke(env.ctx, &vault.MsgInvoke{
		Signer:  env.alice.Address,
		Account: account,
		Invocation: vault.Invocation{
			Adapter: "reentrant",
			Target:  "vault-two",
			Data:    depositData(t, math.NewInt(10*ONE)),
		},
	})

	// ASSERT: The nested call was rejected and nothing was recorded.
	require.ErrorIs(t, err, vault.ErrReentrantCall)
	position, posErr := env.k.GetPosition(env.ctx, mustAddr(t, account), testTarget)
	require.NoError(t, posErr)
	assert.True(t, position.IsZero())
}

func TestNestedWithdrawalRejected(t *testing.T) {
	env, account := setupTest(t)
	fund(env, account, 100*ONE)
	sink := utils.TestAccount()

	// ARRANGE: An adapter that tries to drain the account mid-invocation
	// through every owner-facing exit, signing as the owner.
	env.k.WireAdapter(reentrantAdapter{name: "drainer", invoke: func(ctx context.Context) error {
		_, err := env.vaults.WithdrawBase(ctx, &vault.MsgWithdrawBase{
			Signer:    env.alice.Address,
			Account:   account,
			Recipient: sink.Address,
			Amount:    math.NewInt(100 * ONE),
		})
		require.ErrorIs(t, err, vault.ErrReentrantCall)

		_, err = env.vaults.WithdrawAll(ctx, &vault.MsgWithdrawAll{
			Signer:    env.alice.Address,
			Account:   account,
			Recipient: sink.Address,
		})
		require.ErrorIs(t, err, vault.ErrReentrantCall)

		_, err = env.vaults.PayFees(ctx, &vault.MsgPayFees{
			Signer:  env.alice.Address,
			Account: account,
			Amount:  math.NewInt(ONE),
		})
		require.ErrorIs(t, err, vault.ErrReentrantCall)

		return err
	}})
	env.k.WireMarket("vault-three", env.market)
	_, err := env.registry.RegisterAdapter(env.ctx, &registry.MsgRegisterAdapter{
		Signer: env.authority.Address, Adapter: "drainer",
	})
	require.NoError(t, err)
	_, err = env.registry.RegisterTarget(env.ctx, &registry.MsgRegisterTarget{
		Signer: env.authority.Address, Target: "vault-three", Adapter: "drainer",
	})
	require.NoError(t, err)

	// ACT
	_, err = env.vaults.Invoke(env.ctx, &vault.MsgInvoke{
		Signer:  env.alice.Address,
		Account: account,
		Invocation: vault.Invocation{
			Adapter: "drainer",
			Target:  "vault-three",
			Data:    depositData(t, math.NewInt(10*ONE)),
		},
	})

	// ASSERT: The invocation failed and not a single coin left the account.
	require.ErrorIs(t, err, vault.ErrReentrantCall)
	assert.True(t, env.bank.Balances(env.ctx, sink.Address).AmountOf(mocks.BaseDenom).IsZero())
	assert.Equal(t, math.NewInt(100*ONE), env.bank.Balances(env.ctx, account).AmountOf(mocks.BaseDenom))
}

func TestWithdrawBaseOwnerSovereignty(t *testing.T) {
	env, account := setupTest(t)
	fund(env, account, 500*ONE)
	recipient := utils.TestAccount()

	// ACT & ASSERT: The operator cannot withdraw.
	_, err := env.vaults.WithdrawBase(env.ctx, &vault.MsgWithdrawBase{
		Signer:    env.bob.Address,
		Account:   account,
		Recipient: recipient.Address,
		Amount:    math.NewInt(100 * ONE),
	})
	require.ErrorIs(t, err, vault.ErrNotOwner)

	// ACT & ASSERT: Withdrawing more than held fails.
	_, err = env.vaults.WithdrawBase(env.ctx, &vault.MsgWithdrawBase{
		Signer:    env.alice.Address,
		Account:   account,
		Recipient: recipient.Address,
		Amount:    math.NewInt(600 * ONE),
	})
	require.ErrorIs(t, err, vault.ErrInsufficientFunds)

	// ACT: The owner drains the account entirely.
	resp, err := env.vaults.WithdrawAll(env.ctx, &vault.MsgWithdrawAll{
		Signer:    env.alice.Address,
		Account:   account,
		Recipient: recipient.Address,
	})

	// ASSERT
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(500*ONE), resp.Amount)
	assert.Equal(t, math.NewInt(500*ONE), env.bank.Balances(env.ctx, recipient.Address).AmountOf(mocks.BaseDenom))
	assert.True(t, env.bank.Balances(env.ctx, account).AmountOf(mocks.BaseDenom).IsZero())
}

func TestUpgradeLogicVersion(t *testing.T) {
	env, account := setupTest(t)

	// ACT & ASSERT: Versions only move forward.
	_, err := env.vaults.Upgrade(env.ctx, &vault.MsgUpgrade{
		Signer:       env.alice.Address,
		Account:      account,
		LogicVersion: 1,
	})
	require.ErrorIs(t, err, vault.ErrStaleLogic)

	_, err = env.vaults.Upgrade(env.ctx, &vault.MsgUpgrade{
		Signer:       env.alice.Address,
		Account:      account,
		LogicVersion: 2,
	})
	require.NoError(t, err)

	stored, found, err := env.k.GetAccount(env.ctx, mustAddr(t, account))
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, uint64(2), stored.LogicVersion)

	// ASSERT: Only the owner may upgrade.
	_, err = env.vaults.Upgrade(env.ctx, &vault.MsgUpgrade{
		Signer:       env.bob.Address,
		Account:      account,
		LogicVersion: 3,
	})
	require.ErrorIs(t, err, vault.ErrNotOwner)
}

func TestPayFees(t *testing.T) {
	env, account := setupTest(t)
	fund(env, account, 1000*ONE)

	// ARRANGE: Deposit 1000, double the share price, withdraw everything so
	// a fee of 10% of the 1000 profit accrues.
	_, err := env.vaults.Invoke(env.ctx, &vault.MsgInvoke{
		Signer: env.alice.Address, Account: account,
		Invocation: vault.Invocation{
			Adapter: adapters.ShareVaultName, Target: testTarget,
			Data: depositData(t, math.NewInt(1000*ONE)),
		},
	})
	require.NoError(t, err)
	env.market.RateNum = 2
	env.market.FundPool(env.ctx, sdk.NewCoins(sdk.NewCoin(mocks.BaseDenom, math.NewInt(1000*ONE))))

	resp, err := env.vaults.Invoke(env.ctx, &vault.MsgInvoke{
		Signer: env.alice.Address, Account: account,
		Invocation: vault.Invocation{
			Adapter: adapters.ShareVaultName, Target: testTarget,
			Data: withdrawData(t, math.NewInt(1000*ONE)),
		},
	})
	require.NoError(t, err)
	require.Equal(t, math.NewInt(100*ONE), resp.Fee)

	// ACT & ASSERT: Paying more than accrued is rejected.
	_, err = env.vaults.PayFees(env.ctx, &vault.MsgPayFees{
		Signer:  env.alice.Address,
		Account: account,
		Amount:  math.NewInt(150 * ONE),
	})
	require.ErrorIs(t, err, ledger.ErrOverpayment)

	// ACT: Pay part of the accrued fee.
	_, err = env.vaults.PayFees(env.ctx, &vault.MsgPayFees{
		Signer:  env.alice.Address,
		Account: account,
		Amount:  math.NewInt(60 * ONE),
	})

	// ASSERT: Collector was paid and the remainder is still owed.
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(60*ONE), env.bank.Balances(env.ctx, env.collector.Address).AmountOf(mocks.BaseDenom))
	owed, err := env.k.GetFeesOwed(env.ctx, mustAddr(t, account))
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(40*ONE), owed)

	stats, err := env.k.GetStats(env.ctx)
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(100*ONE), stats.TotalFeesAccrued)
	assert.Equal(t, math.NewInt(60*ONE), stats.TotalFeesPaid)
}

func mustAddr(t *testing.T, bech string) sdk.AccAddress {
	t.Helper()
	addr, err := sdk.AccAddressFromBech32(bech)
	require.NoError(t, err)
	return addr
}
