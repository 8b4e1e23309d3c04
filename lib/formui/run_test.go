// Copyright 2026 The Objdesc Authors
// SPDX-License-Identifier: Apache-2.0

package formui

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/objdesc/objdesc/lib/descriptor"
	"github.com/objdesc/objdesc/lib/testutil"
)

func TestRun_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	reader, writer := io.Pipe()
	defer writer.Close()

	var output bytes.Buffer
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, Options{Mode: descriptor.ModeText, Form: descriptor.FormString}, reader, &output)
	}()

	cancel()
	if err := testutil.RequireReceive(t, done, 5*time.Second, "waiting for form to stop"); err != nil {
		t.Errorf("Run() = %v, want nil after cancellation", err)
	}
}
