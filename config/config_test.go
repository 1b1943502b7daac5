/*
 * sqlfront
 *
 * Copyright 2024 The sqlfront Authors.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package config

import "testing"

func TestConfig(t *testing.T) {
	cfg := New(nil)

	if res := Str(cfg, ErrorLevel); res != "raise" {
		t.Error("Unexpected result:", res)
		return
	}

	if res := Int(cfg, ErrorMessageContext); res != 50 {
		t.Error("Unexpected result:", res)
		return
	}
}

func TestConfigOverride(t *testing.T) {
	cfg := New(map[string]interface{}{ErrorLevel: "warn"})

	if res := Str(cfg, ErrorLevel); res != "warn" {
		t.Error("Unexpected result:", res)
		return
	}

	if res := Int(cfg, ErrorMessageContext); res != 50 {
		t.Error("Unexpected result:", res)
		return
	}
}
