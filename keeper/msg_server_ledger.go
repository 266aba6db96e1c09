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
	"strconv"

	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"yieldseeker.tokenpage.xyz/types/ledger"
	"yieldseeker.tokenpage.xyz/types/registry"
)

var _ ledger.MsgServer = &ledgerMsgServer{}

type ledgerMsgServer struct {
	*Keeper
}

// NewLedgerMsgServer returns an implementation of the ledger MsgServer
// interface for the provided Keeper.
func NewLedgerMsgServer(keeper *Keeper) ledger.MsgServer {
	return &ledgerMsgServer{Keeper: keeper}
}

func (k ledgerMsgServer) SetFeeConfig(ctx context.Context, msg *ledger.MsgSetFeeConfig) (*ledger.MsgSetFeeConfigResponse, error) {
	if msg.Signer != k.authority {
		return nil, sdkerrors.Wrapf(registry.ErrNotAuthority, "signer %s", msg.Signer)
	}

	config := ledger.FeeConfig{RateBps: msg.RateBps, Collector: msg.Collector}
	if err := k.Keeper.SetFeeConfig(ctx, config); err != nil {
		return nil, err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		ledger.EventTypeFeeConfigUpdated,
		sdk.NewAttribute(ledger.AttributeKeyRateBps, strconv.FormatUint(uint64(msg.RateBps), 10)),
		sdk.NewAttribute(ledger.AttributeKeyCollector, msg.Collector),
	))

	k.logger.Info("fee config updated", "rate_bps", msg.RateBps, "collector", msg.Collector)

	return &ledger.MsgSetFeeConfigResponse{}, nil
}
