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

package ledger

import (
	"context"

	"cosmossdk.io/math"
)

// QueryServer exposes read-only ledger views.
type QueryServer interface {
	FeeConfig(ctx context.Context, req *QueryFeeConfig) (*QueryFeeConfigResponse, error)
	Position(ctx context.Context, req *QueryPosition) (*QueryPositionResponse, error)
	Positions(ctx context.Context, req *QueryPositions) (*QueryPositionsResponse, error)
	FeesOwed(ctx context.Context, req *QueryFeesOwed) (*QueryFeesOwedResponse, error)
}

type QueryFeeConfig struct{}

type QueryFeeConfigResponse struct {
	Config FeeConfig
}

type QueryPosition struct {
	Account string
	Token   string
}

type QueryPositionResponse struct {
	Position       Position
	YieldLiability math.Int
}

type QueryPositions struct {
	Account string
}

type QueryPositionsResponse struct {
	Positions map[string]Position
}

type QueryFeesOwed struct {
	Account string
}

type QueryFeesOwedResponse struct {
	Owed math.Int
}
