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

import "context"

// MsgServer exposes the registry admin surface. Additive operations
// (RegisterAdapter, RegisterTarget, UpdateTarget, Unpause) are reserved for
// the delayed authority; subtractive operations (UnregisterAdapter,
// RemoveTarget, Pause) additionally accept the instant emergency authority.
type MsgServer interface {
	RegisterAdapter(ctx context.Context, msg *MsgRegisterAdapter) (*MsgRegisterAdapterResponse, error)
	UnregisterAdapter(ctx context.Context, msg *MsgUnregisterAdapter) (*MsgUnregisterAdapterResponse, error)
	RegisterTarget(ctx context.Context, msg *MsgRegisterTarget) (*MsgRegisterTargetResponse, error)
	UpdateTarget(ctx context.Context, msg *MsgUpdateTarget) (*MsgUpdateTargetResponse, error)
	RemoveTarget(ctx context.Context, msg *MsgRemoveTarget) (*MsgRemoveTargetResponse, error)
	Pause(ctx context.Context, msg *MsgPause) (*MsgPauseResponse, error)
	Unpause(ctx context.Context, msg *MsgUnpause) (*MsgUnpauseResponse, error)
}

type MsgRegisterAdapter struct {
	Signer  string
	Adapter string
}

type MsgRegisterAdapterResponse struct{}

type MsgUnregisterAdapter struct {
	Signer  string
	Adapter string
}

type MsgUnregisterAdapterResponse struct{}

type MsgRegisterTarget struct {
	Signer  string
	Target  string
	Adapter string
}

type MsgRegisterTargetResponse struct{}

type MsgUpdateTarget struct {
	Signer     string
	Target     string
	NewAdapter string
}

type MsgUpdateTargetResponse struct{}

type MsgRemoveTarget struct {
	Signer string
	Target string
}

type MsgRemoveTargetResponse struct{}

type MsgPause struct {
	Signer string
}

type MsgPauseResponse struct{}

type MsgUnpause struct {
	Signer string
}

type MsgUnpauseResponse struct{}
