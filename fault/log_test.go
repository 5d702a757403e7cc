// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/fault"
)

const dir = "testing"

func setupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func teardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(dir)
}

func TestMain(m *testing.M) {
	setupTestLogger()
	rc := m.Run()
	teardownTestLogger()
	os.Exit(rc)
}

func TestInitialise(t *testing.T) {
	err := fault.Initialise()
	assert.Nil(t, err, "first initialise")
	defer fault.Finalise()

	err = fault.Initialise()
	assert.Equal(t, fault.ErrAlreadyInitialised, err, "second initialise")

	fault.Critical("logged to the PANIC channel")
	fault.Criticalf("height: %d  balance: %d", 4, -2)

	assert.PanicsWithValue(t, "logged then panic", func() {
		fault.Panic("logged then panic")
	}, "no panic")
}

func TestFinaliseAllowsReinitialise(t *testing.T) {
	assert.Nil(t, fault.Initialise(), "initialise")
	fault.Finalise()
	assert.Nil(t, fault.Initialise(), "initialise after finalise")
	fault.Finalise()
}
