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

import "cosmossdk.io/errors"

var (
	ErrAccountExists     = errors.Register(SubmoduleName, 2, "account already exists for owner and index")
	ErrAccountNotFound   = errors.Register(SubmoduleName, 3, "account not found")
	ErrNotOwner          = errors.Register(SubmoduleName, 4, "signer is not the account owner")
	ErrNotAuthorized     = errors.Register(SubmoduleName, 5, "signer is neither owner nor trusted operator")
	ErrAdapterBlocked    = errors.Register(SubmoduleName, 6, "adapter is blocked for this account")
	ErrReentrantCall     = errors.Register(SubmoduleName, 7, "nested invocation rejected")
	ErrInvalidAmount     = errors.Register(SubmoduleName, 8, "amount must be positive")
	ErrBatchMismatch     = errors.Register(SubmoduleName, 9, "batch entries are malformed")
	ErrStaleLogic        = errors.Register(SubmoduleName, 10, "logic version must increase")
	ErrInsufficientFunds = errors.Register(SubmoduleName, 11, "insufficient base asset balance")
)
