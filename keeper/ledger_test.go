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
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yieldseeker.tokenpage.xyz/keeper"
	"yieldseeker.tokenpage.xyz/types/ledger"
	"yieldseeker.tokenpage.xyz/utils"
)

const testToken = "vault-one"

func TestFeeConfigCeiling(t *testing.T) {
	env, _ := setupTest(t)

	// ASSERT: Rates above 50% are rejected regardless of the caller.
	_, err := env.ledger.SetFeeConfig(env.ctx, &ledger.MsgSetFeeConfig{
		Signer:    env.authority.Address,
		RateBps:   5001,
		Collector: env.collector.Address,
	})
	require.ErrorIs(t, err, ledger.ErrFeeRateTooHigh)

	// ASSERT: Exactly 50% is the ceiling.
	_, err = env.ledger.SetFeeConfig(env.ctx, &ledger.MsgSetFeeConfig{
		Signer:    env.authority.Address,
		RateBps:   5000,
		Collector: env.collector.Address,
	})
	require.NoError(t, err)

	// ASSERT: Only the authority may configure fees.
	_, err = env.ledger.SetFeeConfig(env.ctx, &ledger.MsgSetFeeConfig{
		Signer:    env.alice.Address,
		RateBps:   100,
		Collector: env.collector.Address,
	})
	require.Error(t, err)

	// ASSERT: A malformed collector is rejected.
	_, err = env.ledger.SetFeeConfig(env.ctx, &ledger.MsgSetFeeConfig{
		Signer:    env.authority.Address,
		RateBps:   100,
		Collector: "not-an-address",
	})
	require.ErrorIs(t, err, ledger.ErrInvalidCollector)
}

func TestWithdrawProfitFee(t *testing.T) {
	env, _ := setupTest(t)
	account := utils.TestAccount().Bytes

	// ARRANGE: 1000 deposited for 1000 units.
	require.NoError(t, env.k.RecordDeposit(env.ctx, account, testToken, math.NewInt(1000), math.NewInt(1000)))

	// ACT: All units redeem for 2000.
	fee, err := env.k.RecordWithdraw(env.ctx, account, testToken, math.NewInt(1000), math.NewInt(2000), math.NewInt(1000))

	// ASSERT: 10% of the 1000 profit.
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(100), fee)

	owed, err := env.k.GetFeesOwed(env.ctx, account)
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(100), owed)

	// ASSERT: The position is fully cleared.
	position, err := env.k.GetPosition(env.ctx, account, testToken)
	require.NoError(t, err)
	assert.True(t, position.IsZero())
}

func TestWithdrawLossNoFee(t *testing.T) {
	env, _ := setupTest(t)
	account := utils.TestAccount().Bytes

	require.NoError(t, env.k.RecordDeposit(env.ctx, account, testToken, math.NewInt(1000), math.NewInt(1000)))

	// ACT: All units redeem for only 600.
	fee, err := env.k.RecordWithdraw(env.ctx, account, testToken, math.NewInt(1000), math.NewInt(600), math.NewInt(1000))

	// ASSERT: Losses charge nothing and the basis is consumed, not carried.
	require.NoError(t, err)
	assert.True(t, fee.IsZero())

	position, err := env.k.GetPosition(env.ctx, account, testToken)
	require.NoError(t, err)
	assert.True(t, position.IsZero())

	owed, err := env.k.GetFeesOwed(env.ctx, account)
	require.NoError(t, err)
	assert.True(t, owed.IsZero())
}

func TestWithdrawApportionsAgainstTrueBalance(t *testing.T) {
	env, _ := setupTest(t)
	account := utils.TestAccount().Bytes

	// ARRANGE: 1000 tracked, but the true balance grew to 1500 through
	// accrual the ledger never saw.
	require.NoError(t, env.k.RecordDeposit(env.ctx, account, testToken, math.NewInt(1000), math.NewInt(1000)))

	// ACT: Everything redeems 1:1.
	fee, err := env.k.RecordWithdraw(env.ctx, account, testToken, math.NewInt(1500), math.NewInt(1500), math.NewInt(1500))

	// ASSERT: The untracked 500 is pure profit, so the fee is 50.
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(50), fee)

	position, err := env.k.GetPosition(env.ctx, account, testToken)
	require.NoError(t, err)
	assert.True(t, position.IsZero())
}

func TestWithdrawUntrackedPosition(t *testing.T) {
	env, _ := setupTest(t)
	account := utils.TestAccount().Bytes

	// ACT: 500 of 1050 held units redeem 1:1, with no deposit ever recorded
	// for the token.
	fee, err := env.k.RecordWithdraw(env.ctx, account, testToken, math.NewInt(500), math.NewInt(500), math.NewInt(1050))

	// ASSERT: With zero cost basis the whole 500 is profit, so the fee is 50.
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(50), fee)

	owed, err := env.k.GetFeesOwed(env.ctx, account)
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(50), owed)

	// ASSERT: The position stays empty rather than going negative.
	position, err := env.k.GetPosition(env.ctx, account, testToken)
	require.NoError(t, err)
	assert.True(t, position.IsZero())
}

func TestWithdrawPartial(t *testing.T) {
	env, _ := setupTest(t)
	account := utils.TestAccount().Bytes

	require.NoError(t, env.k.RecordDeposit(env.ctx, account, testToken, math.NewInt(1000), math.NewInt(1000)))

	// ACT: 400 of 1000 units redeem 1:1, no profit.
	fee, err := env.k.RecordWithdraw(env.ctx, account, testToken, math.NewInt(400), math.NewInt(400), math.NewInt(1000))

	// ASSERT: No fee, and 60% of the position remains.
	require.NoError(t, err)
	assert.True(t, fee.IsZero())

	position, err := env.k.GetPosition(env.ctx, account, testToken)
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(600), position.CostBasis)
	assert.Equal(t, math.NewInt(600), position.Units)
}

func TestWithdrawValidation(t *testing.T) {
	env, _ := setupTest(t)
	account := utils.TestAccount().Bytes

	require.NoError(t, env.k.RecordDeposit(env.ctx, account, testToken, math.NewInt(100), math.NewInt(100)))

	// ASSERT: Spending more units than actually held is rejected.
	_, err := env.k.RecordWithdraw(env.ctx, account, testToken, math.NewInt(200), math.NewInt(200), math.NewInt(100))
	require.ErrorIs(t, err, ledger.ErrInsufficientUnits)

	// ASSERT: Zero amounts are rejected on both record paths.
	_, err = env.k.RecordWithdraw(env.ctx, account, testToken, math.ZeroInt(), math.ZeroInt(), math.NewInt(100))
	require.ErrorIs(t, err, ledger.ErrInvalidAmount)
	err = env.k.RecordDeposit(env.ctx, account, testToken, math.ZeroInt(), math.ZeroInt())
	require.ErrorIs(t, err, ledger.ErrInvalidAmount)
}

func TestYieldEarnedAndSwap(t *testing.T) {
	env, _ := setupTest(t)
	account := utils.TestAccount().Bytes

	// ACT: A reward of 1000 is recorded at a 10% rate.
	require.NoError(t, env.k.RecordYieldEarned(env.ctx, account, "ureward", math.NewInt(1000)))

	// ASSERT: The fee share of the reward is liable in the reward token.
	liability, err := env.k.GetYieldLiability(env.ctx, account, "ureward")
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(100), liability)

	// ACT: The liable 100 units convert for proceeds of 50.
	fee, err := env.k.RecordTokenSwap(env.ctx, account, "ureward", math.NewInt(100), math.NewInt(50))

	// ASSERT: Exactly the proceeds are credited, never the nominal amount.
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(50), fee)

	owed, err := env.k.GetFeesOwed(env.ctx, account)
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(50), owed)

	liability, err = env.k.GetYieldLiability(env.ctx, account, "ureward")
	require.NoError(t, err)
	assert.True(t, liability.IsZero())

	// ASSERT: Swapping tokens with no liability credits nothing.
	fee, err = env.k.RecordTokenSwap(env.ctx, account, "ureward", math.NewInt(500), math.NewInt(400))
	require.NoError(t, err)
	assert.True(t, fee.IsZero())
}

func TestSwapPartialLiability(t *testing.T) {
	env, _ := setupTest(t)
	account := utils.TestAccount().Bytes

	require.NoError(t, env.k.RecordYieldEarned(env.ctx, account, "ureward", math.NewInt(1000)))

	// ACT: 400 units swap for 200, of which only the liable 100 units' share
	// is owed.
	fee, err := env.k.RecordTokenSwap(env.ctx, account, "ureward", math.NewInt(400), math.NewInt(200))

	// ASSERT: 200 * 100/400 = 50.
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(50), fee)

	liability, err := env.k.GetYieldLiability(env.ctx, account, "ureward")
	require.NoError(t, err)
	assert.True(t, liability.IsZero())
}

func TestWithdrawConsumesLiabilityFirst(t *testing.T) {
	env, _ := setupTest(t)
	account := utils.TestAccount().Bytes

	// ARRANGE: A tracked position of 1000 plus a fee liability of 100 units
	// in the same token, true balance 1100.
	require.NoError(t, env.k.RecordDeposit(env.ctx, account, testToken, math.NewInt(1000), math.NewInt(1000)))
	require.NoError(t, env.k.RecordYieldEarned(env.ctx, account, testToken, math.NewInt(1000)))

	// ACT: Everything redeems 1:1.
	fee, err := env.k.RecordWithdraw(env.ctx, account, testToken, math.NewInt(1100), math.NewInt(1100), math.NewInt(1100))

	// ASSERT: The liable units' proceeds are owed in full and the principal
	// realizes no profit, so the fee is exactly 100.
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(100), fee)

	liability, err := env.k.GetYieldLiability(env.ctx, account, testToken)
	require.NoError(t, err)
	assert.True(t, liability.IsZero())

	position, err := env.k.GetPosition(env.ctx, account, testToken)
	require.NoError(t, err)
	assert.True(t, position.IsZero())
}

func TestRecordFeePaid(t *testing.T) {
	env, _ := setupTest(t)
	account := utils.TestAccount().Bytes

	require.NoError(t, env.k.RecordDeposit(env.ctx, account, testToken, math.NewInt(1000), math.NewInt(1000)))
	_, err := env.k.RecordWithdraw(env.ctx, account, testToken, math.NewInt(1000), math.NewInt(2000), math.NewInt(1000))
	require.NoError(t, err)

	// ASSERT: Payments above the accrued balance are rejected.
	err = env.k.RecordFeePaid(env.ctx, account, math.NewInt(101))
	require.ErrorIs(t, err, ledger.ErrOverpayment)

	// ACT: Pay in two installments.
	require.NoError(t, env.k.RecordFeePaid(env.ctx, account, math.NewInt(60)))
	require.NoError(t, env.k.RecordFeePaid(env.ctx, account, math.NewInt(40)))

	owed, err := env.k.GetFeesOwed(env.ctx, account)
	require.NoError(t, err)
	assert.True(t, owed.IsZero())
}

func TestLedgerQueries(t *testing.T) {
	env, _ := setupTest(t)
	account := utils.TestAccount()

	require.NoError(t, env.k.RecordDeposit(env.ctx, account.Bytes, testToken, math.NewInt(1000), math.NewInt(1000)))
	require.NoError(t, env.k.RecordYieldEarned(env.ctx, account.Bytes, "ureward", math.NewInt(1000)))

	queries := keeper.NewLedgerQueryServer(env.k)

	configResp, err := queries.FeeConfig(env.ctx, &ledger.QueryFeeConfig{})
	require.NoError(t, err)
	assert.Equal(t, uint32(1000), configResp.Config.RateBps)
	assert.Equal(t, env.collector.Address, configResp.Config.Collector)

	positionResp, err := queries.Position(env.ctx, &ledger.QueryPosition{Account: account.Address, Token: testToken})
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(1000), positionResp.Position.CostBasis)

	rewardResp, err := queries.Position(env.ctx, &ledger.QueryPosition{Account: account.Address, Token: "ureward"})
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(100), rewardResp.YieldLiability)

	positionsResp, err := queries.Positions(env.ctx, &ledger.QueryPositions{Account: account.Address})
	require.NoError(t, err)
	assert.Len(t, positionsResp.Positions, 1)

	owedResp, err := queries.FeesOwed(env.ctx, &ledger.QueryFeesOwed{Account: account.Address})
	require.NoError(t, err)
	assert.True(t, owedResp.Owed.IsZero())
}
