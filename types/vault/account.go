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
	"time"

	"cosmossdk.io/math"
)

// Account is a custodial agent account. The owner is immutable after
// creation; accounts are never destroyed. The operator, when set, is allowed
// to direct funds between whitelisted positions but holds no withdrawal
// rights.
type Account struct {
	Owner        string    `json:"owner"`
	Operator     string    `json:"operator,omitempty"`
	Index        uint64    `json:"index"`
	LogicVersion uint64    `json:"logic_version"`
	CreatedAt    time.Time `json:"created_at"`
}

// Stats aggregates module-wide gateway activity.
type Stats struct {
	TotalAccounts    uint64   `json:"total_accounts"`
	TotalInvocations uint64   `json:"total_invocations"`
	TotalFeesAccrued math.Int `json:"total_fees_accrued"`
	TotalFeesPaid    math.Int `json:"total_fees_paid"`
}

// NewStats returns zeroed stats with initialised amounts.
func NewStats() Stats {
	return Stats{
		TotalFeesAccrued: math.ZeroInt(),
		TotalFeesPaid:    math.ZeroInt(),
	}
}
