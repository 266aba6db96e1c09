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

package registry

import "cosmossdk.io/errors"

var (
	ErrPaused                   = errors.Register(SubmoduleName, 2, "registry is paused")
	ErrNotAuthority             = errors.Register(SubmoduleName, 3, "signer is not the registry authority")
	ErrNotEmergencyAuthority    = errors.Register(SubmoduleName, 4, "signer is not the emergency authority")
	ErrAdapterNotRegistered     = errors.Register(SubmoduleName, 5, "adapter is not registered")
	ErrAdapterAlreadyRegistered = errors.Register(SubmoduleName, 6, "adapter is already registered")
	ErrAdapterLogicNotWired     = errors.Register(SubmoduleName, 7, "no adapter logic wired for name")
	ErrAdapterInUse             = errors.Register(SubmoduleName, 8, "adapter still has bound targets")
	ErrTargetNotRegistered      = errors.Register(SubmoduleName, 9, "target is not registered")
	ErrTargetAlreadyBound       = errors.Register(SubmoduleName, 10, "target is already bound to an adapter")
	ErrMarketNotWired           = errors.Register(SubmoduleName, 11, "no market surface wired for target")
)
