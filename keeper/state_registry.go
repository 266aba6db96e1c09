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
	"errors"

	"cosmossdk.io/collections"
)

// GetPaused returns the registry pause flag. An unset flag means the
// registry has never been paused.
func (k *Keeper) GetPaused(ctx context.Context) (bool, error) {
	paused, err := k.Paused.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	return paused, nil
}

// IsRegisteredAdapter reports whether the adapter is currently present in
// the registry.
func (k *Keeper) IsRegisteredAdapter(ctx context.Context, adapter string) (bool, error) {
	registered, err := k.Adapters.Get(ctx, adapter)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	return registered, nil
}

// IsValidTarget reports whether the target may currently be executed
// against, and the adapter it is bound to. The pause flag is consulted
// first and short-circuits to invalid: pause is the kill switch, not a
// per-entry property.
func (k *Keeper) IsValidTarget(ctx context.Context, target string) (bool, string, error) {
	paused, err := k.GetPaused(ctx)
	if err != nil {
		return false, "", err
	}
	if paused {
		return false, "", nil
	}

	adapter, err := k.TargetBindings.Get(ctx, target)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return false, "", nil
		}
		return false, "", err
	}

	registered, err := k.IsRegisteredAdapter(ctx, adapter)
	if err != nil {
		return false, "", err
	}
	if !registered {
		return false, "", nil
	}

	return true, adapter, nil
}

// AdapterHasBoundTargets reports whether any target is still bound to the
// adapter.
func (k *Keeper) AdapterHasBoundTargets(ctx context.Context, adapter string) (bool, error) {
	found := false
	err := k.TargetBindings.Walk(ctx, nil, func(_ string, bound string) (bool, error) {
		if bound == adapter {
			found = true
			return true, nil
		}
		return false, nil
	})
	if err != nil {
		return false, err
	}

	return found, nil
}

// IterateAdapters walks every registered adapter name.
func (k *Keeper) IterateAdapters(ctx context.Context, fn func(adapter string) (bool, error)) error {
	return k.Adapters.Walk(ctx, nil, func(adapter string, _ bool) (bool, error) {
		return fn(adapter)
	})
}

// IterateTargetBindings walks every target binding.
func (k *Keeper) IterateTargetBindings(ctx context.Context, fn func(target, adapter string) (bool, error)) error {
	return k.TargetBindings.Walk(ctx, nil, fn)
}
