/*
 * sqlfront
 *
 * Copyright 2024 The sqlfront Authors.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

/*
Package config holds parser construction defaults as a plain
map[string]interface{} plus typed accessors, the same shape ECAL's own
config.go uses, adapted from one global mutable map to values a caller
builds explicitly with New and reads through the typed accessors (spec.md §6
"Construction parameters"). parser.New takes Options, not a config map;
cmd/sqlfront reads ErrorMessageContext from here as its -context default.
*/
package config

import (
	"fmt"
	"strconv"

	"devt.de/krotik/common/errorutil"
)

/*
Known configuration keys.
*/
const (
	ErrorLevel          = "ErrorLevel"          // "raise", "warn" or "ignore"
	ErrorMessageContext = "ErrorMessageContext" // characters of source shown around a diagnostic
	LogLevel            = "LogLevel"            // "debug", "info" or "error"
)

/*
Default is the default configuration: RAISE error policy, 50 characters of
diagnostic context (spec.md §6), "error" log level.
*/
var Default = map[string]interface{}{
	ErrorLevel:          "raise",
	ErrorMessageContext: 50,
	LogLevel:            "error",
}

/*
New returns a copy of Default with overrides from custom applied on top.
*/
func New(custom map[string]interface{}) map[string]interface{} {
	data := make(map[string]interface{}, len(Default))
	for k, v := range Default {
		data[k] = v
	}
	for k, v := range custom {
		data[k] = v
	}
	return data
}

/*
Str reads a config value as a string.
*/
func Str(cfg map[string]interface{}, key string) string {
	return fmt.Sprint(cfg[key])
}

/*
Int reads a config value as an int.
*/
func Int(cfg map[string]interface{}, key string) int {
	ret, err := strconv.ParseInt(fmt.Sprint(cfg[key]), 10, 64)

	errorutil.AssertTrue(err == nil,
		fmt.Sprintf("Could not parse config key %v: %v", key, err))

	return int(ret)
}

/*
Bool reads a config value as a bool.
*/
func Bool(cfg map[string]interface{}, key string) bool {
	ret, err := strconv.ParseBool(fmt.Sprint(cfg[key]))

	errorutil.AssertTrue(err == nil,
		fmt.Sprintf("Could not parse config key %v: %v", key, err))

	return ret
}
