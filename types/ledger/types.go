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

import "cosmossdk.io/math"

const (
	// MaxFeeRateBps is the hard ceiling on the performance fee rate. It is
	// an invariant of the module, not a governance parameter.
	MaxFeeRateBps = 5000

	// BpsDenominator converts basis points to a fraction.
	BpsDenominator = 10000
)

// Position tracks the principal attributable to operator-directed deposits
// into one external position, per vault account and position token.
type Position struct {
	CostBasis math.Int `json:"cost_basis"`
	Units     math.Int `json:"units"`
}

// NewPosition returns an empty position with initialised amounts.
func NewPosition() Position {
	return Position{
		CostBasis: math.ZeroInt(),
		Units:     math.ZeroInt(),
	}
}

// IsZero reports whether the position carries no tracked value.
func (p Position) IsZero() bool {
	return p.CostBasis.IsZero() && p.Units.IsZero()
}

// FeeConfig holds the performance fee rate and the collector the accrued
// fees are paid out to.
type FeeConfig struct {
	RateBps   uint32 `json:"rate_bps"`
	Collector string `json:"collector"`
}
