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

package vault

import (
	"context"

	"cosmossdk.io/math"
)

// MsgServer exposes the gateway surface of agent accounts: account creation,
// adapter invocation, owner withdrawals and vault-local adapter blocking.
type MsgServer interface {
	CreateAccount(ctx context.Context, msg *MsgCreateAccount) (*MsgCreateAccountResponse, error)
	Invoke(ctx context.Context, msg *MsgInvoke) (*MsgInvokeResponse, error)
	InvokeBatch(ctx context.Context, msg *MsgInvokeBatch) (*MsgInvokeBatchResponse, error)
	WithdrawBase(ctx context.Context, msg *MsgWithdrawBase) (*MsgWithdrawBaseResponse, error)
	WithdrawAll(ctx context.Context, msg *MsgWithdrawAll) (*MsgWithdrawAllResponse, error)
	BlockAdapter(ctx context.Context, msg *MsgBlockAdapter) (*MsgBlockAdapterResponse, error)
	UnblockAdapter(ctx context.Context, msg *MsgUnblockAdapter) (*MsgUnblockAdapterResponse, error)
	Upgrade(ctx context.Context, msg *MsgUpgrade) (*MsgUpgradeResponse, error)
	PayFees(ctx context.Context, msg *MsgPayFees) (*MsgPayFeesResponse, error)
	SetOperator(ctx context.Context, msg *MsgSetOperator) (*MsgSetOperatorResponse, error)
}

type MsgCreateAccount struct {
	Signer   string
	Owner    string
	Operator string
	Index    uint64
}

type MsgCreateAccountResponse struct {
	Address string
}

// Invocation is one (adapter, target, data) action executed with the
// account's identity.
type Invocation struct {
	Adapter string
	Target  string
	Data    []byte
}

type MsgInvoke struct {
	Signer  string
	Account string
	Invocation
}

type MsgInvokeResponse struct {
	Units  math.Int
	Assets math.Int
	Fee    math.Int
}

type MsgInvokeBatch struct {
	Signer      string
	Account     string
	Invocations []Invocation
}

type MsgInvokeBatchResponse struct {
	Results []MsgInvokeResponse
}

type MsgWithdrawBase struct {
	Signer    string
	Account   string
	Recipient string
	Amount    math.Int
}

type MsgWithdrawBaseResponse struct{}

type MsgWithdrawAll struct {
	Signer    string
	Account   string
	Recipient string
}

type MsgWithdrawAllResponse struct {
	Amount math.Int
}

type MsgBlockAdapter struct {
	Signer  string
	Account string
	Adapter string
}

type MsgBlockAdapterResponse struct{}

type MsgUnblockAdapter struct {
	Signer  string
	Account string
	Adapter string
}

type MsgUnblockAdapterResponse struct{}

type MsgUpgrade struct {
	Signer       string
	Account      string
	LogicVersion uint64
}

type MsgUpgradeResponse struct{}

type MsgPayFees struct {
	Signer  string
	Account string
	Amount  math.Int
}

type MsgPayFeesResponse struct{}

type MsgSetOperator struct {
	Signer   string
	Operator string
}

type MsgSetOperatorResponse struct{}
