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

	"yieldseeker.tokenpage.xyz/types"
	"yieldseeker.tokenpage.xyz/types/ledger"
	"yieldseeker.tokenpage.xyz/types/registry"
	"yieldseeker.tokenpage.xyz/types/vault"
)

var (
	_ registry.QueryServer = &registryQueryServer{}
	_ vault.QueryServer    = &vaultQueryServer{}
	_ ledger.QueryServer   = &ledgerQueryServer{}
)

type registryQueryServer struct {
	*Keeper
}

// NewRegistryQueryServer returns an implementation of the registry
// QueryServer interface for the provided Keeper.
func NewRegistryQueryServer(keeper *Keeper) registry.QueryServer {
	return &registryQueryServer{Keeper: keeper}
}

func (k registryQueryServer) Paused(ctx context.Context, req *registry.QueryPaused) (*registry.QueryPausedResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidRequest
	}

	paused, err := k.GetPaused(ctx)
	if err != nil {
		return nil, err
	}

	return &registry.QueryPausedResponse{Paused: paused}, nil
}

func (k registryQueryServer) Adapters(ctx context.Context, req *registry.QueryAdapters) (*registry.QueryAdaptersResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidRequest
	}

	var names []string
	err := k.IterateAdapters(ctx, func(adapter string) (bool, error) {
		names = append(names, adapter)
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	return &registry.QueryAdaptersResponse{Adapters: names}, nil
}

func (k registryQueryServer) Targets(ctx context.Context, req *registry.QueryTargets) (*registry.QueryTargetsResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidRequest
	}

	bindings := make(map[string]string)
	err := k.IterateTargetBindings(ctx, func(target, adapter string) (bool, error) {
		bindings[target] = adapter
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	return &registry.QueryTargetsResponse{Bindings: bindings}, nil
}

func (k registryQueryServer) Target(ctx context.Context, req *registry.QueryTarget) (*registry.QueryTargetResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidRequest
	}

	executable, adapter, err := k.IsValidTarget(ctx, req.Target)
	if err != nil {
		return nil, err
	}

	return &registry.QueryTargetResponse{Adapter: adapter, Executable: executable}, nil
}

type vaultQueryServer struct {
	*Keeper
}

// NewVaultQueryServer returns an implementation of the gateway QueryServer
// interface for the provided Keeper.
func NewVaultQueryServer(keeper *Keeper) vault.QueryServer {
	return &vaultQueryServer{Keeper: keeper}
}

func (k vaultQueryServer) Account(ctx context.Context, req *vault.QueryAccount) (*vault.QueryAccountResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidRequest
	}

	addressBytes, err := k.address.StringToBytes(req.Address)
	if err != nil {
		return nil, sdkerrors.Wrapf(types.ErrInvalidRequest, "invalid account address: %s", req.Address)
	}

	account, found, err := k.GetAccount(ctx, addressBytes)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, sdkerrors.Wrapf(vault.ErrAccountNotFound, "no account at %s", req.Address)
	}

	return &vault.QueryAccountResponse{Account: account}, nil
}

func (k vaultQueryServer) PredictAddress(ctx context.Context, req *vault.QueryPredictAddress) (*vault.QueryPredictAddressResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidRequest
	}

	owner, err := k.address.StringToBytes(req.Owner)
	if err != nil {
		return nil, sdkerrors.Wrapf(types.ErrInvalidRequest, "invalid owner address: %s", req.Owner)
	}

	predicted := PredictAccountAddress(owner, req.Index)

	address, err := k.address.BytesToString(predicted)
	if err != nil {
		return nil, err
	}

	return &vault.QueryPredictAddressResponse{Address: address}, nil
}

func (k vaultQueryServer) Stats(ctx context.Context, req *vault.QueryStats) (*vault.QueryStatsResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidRequest
	}

	stats, err := k.GetStats(ctx)
	if err != nil {
		return nil, err
	}

	return &vault.QueryStatsResponse{Stats: stats}, nil
}

type ledgerQueryServer struct {
	*Keeper
}

// NewLedgerQueryServer returns an implementation of the ledger QueryServer
// interface for the provided Keeper.
func NewLedgerQueryServer(keeper *Keeper) ledger.QueryServer {
	return &ledgerQueryServer{Keeper: keeper}
}

func (k ledgerQueryServer) FeeConfig(ctx context.Context, req *ledger.QueryFeeConfig) (*ledger.QueryFeeConfigResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidRequest
	}

	config, err := k.GetFeeConfig(ctx)
	if err != nil {
		return nil, err
	}

	return &ledger.QueryFeeConfigResponse{Config: config}, nil
}

func (k ledgerQueryServer) Position(ctx context.Context, req *ledger.QueryPosition) (*ledger.QueryPositionResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidRequest
	}

	account, err := k.address.StringToBytes(req.Account)
	if err != nil {
		return nil, sdkerrors.Wrapf(types.ErrInvalidRequest, "invalid account address: %s", req.Account)
	}

	position, err := k.GetPosition(ctx, account, req.Token)
	if err != nil {
		return nil, err
	}

	liability, err := k.GetYieldLiability(ctx, account, req.Token)
	if err != nil {
		return nil, err
	}

	return &ledger.QueryPositionResponse{Position: position, YieldLiability: liability}, nil
}

func (k ledgerQueryServer) Positions(ctx context.Context, req *ledger.QueryPositions) (*ledger.QueryPositionsResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidRequest
	}

	account, err := k.address.StringToBytes(req.Account)
	if err != nil {
		return nil, sdkerrors.Wrapf(types.ErrInvalidRequest, "invalid account address: %s", req.Account)
	}

	positions := make(map[string]ledger.Position)
	err = k.IteratePositions(ctx, account, func(token string, position ledger.Position) (bool, error) {
		positions[token] = position
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	return &ledger.QueryPositionsResponse{Positions: positions}, nil
}

func (k ledgerQueryServer) FeesOwed(ctx context.Context, req *ledger.QueryFeesOwed) (*ledger.QueryFeesOwedResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidRequest
	}

	account, err := k.address.StringToBytes(req.Account)
	if err != nil {
		return nil, sdkerrors.Wrapf(types.ErrInvalidRequest, "invalid account address: %s", req.Account)
	}

	owed, err := k.GetFeesOwed(ctx, account)
	if err != nil {
		return nil, err
	}

	return &ledger.QueryFeesOwedResponse{Owed: owed}, nil
}
