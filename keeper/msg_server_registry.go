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

	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"yieldseeker.tokenpage.xyz/types"
	"yieldseeker.tokenpage.xyz/types/registry"
)

var _ registry.MsgServer = &registryMsgServer{}

type registryMsgServer struct {
	*Keeper
}

// NewRegistryMsgServer returns an implementation of the registry MsgServer
// interface for the provided Keeper.
func NewRegistryMsgServer(keeper *Keeper) registry.MsgServer {
	return &registryMsgServer{Keeper: keeper}
}

// checkAuthority admits only the delayed admin. Additive registry changes
// widen the capability surface and are assumed to sit behind an execution
// delay at the authority itself.
func (k registryMsgServer) checkAuthority(signer string) error {
	if signer != k.authority {
		return sdkerrors.Wrapf(registry.ErrNotAuthority, "signer %s", signer)
	}
	return nil
}

// checkEmergency admits the emergency admin as well as the delayed admin.
// Subtractive changes only ever narrow the capability surface, so the faster
// path is safe for them.
func (k registryMsgServer) checkEmergency(signer string) error {
	if signer == k.authority || signer == k.emergencyAuthority {
		return nil
	}
	return sdkerrors.Wrapf(registry.ErrNotEmergencyAuthority, "signer %s", signer)
}

func (k registryMsgServer) RegisterAdapter(ctx context.Context, msg *registry.MsgRegisterAdapter) (*registry.MsgRegisterAdapterResponse, error) {
	if err := k.checkAuthority(msg.Signer); err != nil {
		return nil, err
	}
	if msg.Adapter == "" {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "adapter is required")
	}

	registered, err := k.IsRegisteredAdapter(ctx, msg.Adapter)
	if err != nil {
		return nil, err
	}
	if registered {
		return nil, sdkerrors.Wrapf(registry.ErrAdapterAlreadyRegistered, "adapter %s", msg.Adapter)
	}

	// Registration without executable logic would create entries that can
	// never run, so it is rejected outright.
	if _, ok := k.adapterLogic[msg.Adapter]; !ok {
		return nil, sdkerrors.Wrapf(registry.ErrAdapterLogicNotWired, "adapter %s", msg.Adapter)
	}

	if err := k.Adapters.Set(ctx, msg.Adapter, true); err != nil {
		return nil, err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		registry.EventTypeAdapterRegistered,
		sdk.NewAttribute(registry.AttributeKeyAdapter, msg.Adapter),
		sdk.NewAttribute(registry.AttributeKeySigner, msg.Signer),
	))

	k.logger.Info("registered adapter", "adapter", msg.Adapter)

	return &registry.MsgRegisterAdapterResponse{}, nil
}

func (k registryMsgServer) UnregisterAdapter(ctx context.Context, msg *registry.MsgUnregisterAdapter) (*registry.MsgUnregisterAdapterResponse, error) {
	if err := k.checkEmergency(msg.Signer); err != nil {
		return nil, err
	}

	registered, err := k.IsRegisteredAdapter(ctx, msg.Adapter)
	if err != nil {
		return nil, err
	}
	if !registered {
		return nil, sdkerrors.Wrapf(registry.ErrAdapterNotRegistered, "adapter %s", msg.Adapter)
	}

	inUse, err := k.AdapterHasBoundTargets(ctx, msg.Adapter)
	if err != nil {
		return nil, err
	}
	if inUse {
		return nil, sdkerrors.Wrapf(registry.ErrAdapterInUse, "adapter %s", msg.Adapter)
	}

	if err := k.Adapters.Remove(ctx, msg.Adapter); err != nil {
		return nil, err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		registry.EventTypeAdapterUnregistered,
		sdk.NewAttribute(registry.AttributeKeyAdapter, msg.Adapter),
		sdk.NewAttribute(registry.AttributeKeySigner, msg.Signer),
	))

	return &registry.MsgUnregisterAdapterResponse{}, nil
}

func (k registryMsgServer) RegisterTarget(ctx context.Context, msg *registry.MsgRegisterTarget) (*registry.MsgRegisterTargetResponse, error) {
	if err := k.checkAuthority(msg.Signer); err != nil {
		return nil, err
	}
	if msg.Target == "" {
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "target is required")
	}

	registered, err := k.IsRegisteredAdapter(ctx, msg.Adapter)
	if err != nil {
		return nil, err
	}
	if !registered {
		return nil, sdkerrors.Wrapf(registry.ErrAdapterNotRegistered, "adapter %s", msg.Adapter)
	}

	bound, err := k.TargetBindings.Has(ctx, msg.Target)
	if err != nil {
		return nil, err
	}
	if bound {
		return nil, sdkerrors.Wrapf(registry.ErrTargetAlreadyBound, "target %s", msg.Target)
	}

	if _, ok := k.markets[msg.Target]; !ok {
		return nil, sdkerrors.Wrapf(registry.ErrMarketNotWired, "target %s", msg.Target)
	}

	if err := k.TargetBindings.Set(ctx, msg.Target, msg.Adapter); err != nil {
		return nil, err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		registry.EventTypeTargetRegistered,
		sdk.NewAttribute(registry.AttributeKeyTarget, msg.Target),
		sdk.NewAttribute(registry.AttributeKeyAdapter, msg.Adapter),
		sdk.NewAttribute(registry.AttributeKeySigner, msg.Signer),
	))

	k.logger.Info("registered target", "target", msg.Target, "adapter", msg.Adapter)

	return &registry.MsgRegisterTargetResponse{}, nil
}

func (k registryMsgServer) UpdateTarget(ctx context.Context, msg *registry.MsgUpdateTarget) (*registry.MsgUpdateTargetResponse, error) {
	if err := k.checkAuthority(msg.Signer); err != nil {
		return nil, err
	}

	bound, err := k.TargetBindings.Has(ctx, msg.Target)
	if err != nil {
		return nil, err
	}
	if !bound {
		return nil, sdkerrors.Wrapf(registry.ErrTargetNotRegistered, "target %s", msg.Target)
	}

	registered, err := k.IsRegisteredAdapter(ctx, msg.NewAdapter)
	if err != nil {
		return nil, err
	}
	if !registered {
		return nil, sdkerrors.Wrapf(registry.ErrAdapterNotRegistered, "adapter %s", msg.NewAdapter)
	}

	if err := k.TargetBindings.Set(ctx, msg.Target, msg.NewAdapter); err != nil {
		return nil, err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		registry.EventTypeTargetUpdated,
		sdk.NewAttribute(registry.AttributeKeyTarget, msg.Target),
		sdk.NewAttribute(registry.AttributeKeyAdapter, msg.NewAdapter),
		sdk.NewAttribute(registry.AttributeKeySigner, msg.Signer),
	))

	return &registry.MsgUpdateTargetResponse{}, nil
}

func (k registryMsgServer) RemoveTarget(ctx context.Context, msg *registry.MsgRemoveTarget) (*registry.MsgRemoveTargetResponse, error) {
	if err := k.checkEmergency(msg.Signer); err != nil {
		return nil, err
	}

	bound, err := k.TargetBindings.Has(ctx, msg.Target)
	if err != nil {
		return nil, err
	}
	if !bound {
		return nil, sdkerrors.Wrapf(registry.ErrTargetNotRegistered, "target %s", msg.Target)
	}

	if err := k.TargetBindings.Remove(ctx, msg.Target); err != nil {
		return nil, err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		registry.EventTypeTargetRemoved,
		sdk.NewAttribute(registry.AttributeKeyTarget, msg.Target),
		sdk.NewAttribute(registry.AttributeKeySigner, msg.Signer),
	))

	return &registry.MsgRemoveTargetResponse{}, nil
}

func (k registryMsgServer) Pause(ctx context.Context, msg *registry.MsgPause) (*registry.MsgPauseResponse, error) {
	if err := k.checkEmergency(msg.Signer); err != nil {
		return nil, err
	}

	if err := k.Paused.Set(ctx, true); err != nil {
		return nil, err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		registry.EventTypePaused,
		sdk.NewAttribute(registry.AttributeKeySigner, msg.Signer),
	))

	k.logger.Warn("registry paused", "signer", msg.Signer)

	return &registry.MsgPauseResponse{}, nil
}

func (k registryMsgServer) Unpause(ctx context.Context, msg *registry.MsgUnpause) (*registry.MsgUnpauseResponse, error) {
	if err := k.checkAuthority(msg.Signer); err != nil {
		return nil, err
	}

	if err := k.Paused.Set(ctx, false); err != nil {
		return nil, err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		registry.EventTypeUnpaused,
		sdk.NewAttribute(registry.AttributeKeySigner, msg.Signer),
	))

	k.logger.Info("registry unpaused", "signer", msg.Signer)

	return &registry.MsgUnpauseResponse{}, nil
}
