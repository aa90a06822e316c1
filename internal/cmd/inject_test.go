package cmd_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/Alia5/synthmouse/device/mouse"
	"github.com/Alia5/synthmouse/internal/cmd"
	"github.com/Alia5/synthmouse/internal/log"
	smTesting "github.com/Alia5/synthmouse/internal/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}

func TestExecuteInjectsOneEvent(t *testing.T) {
	type testCase struct {
		name     string
		op       mouse.Op
		button   mouse.MouseButton
		expected mouse.Event
	}

	cases := []testCase{
		{"press extra", mouse.OpPress, mouse.Extra, mouse.Event{Flags: mouse.EventXDown | mouse.EventXUp, Data: mouse.AuxXButton2}},
		{"release side", mouse.OpRelease, mouse.Side, mouse.Event{Flags: mouse.EventXDown, Data: mouse.AuxXButton1}},
		{"click left", mouse.OpClick, mouse.Left, mouse.Event{Flags: mouse.EventLeftUp}},
	}

	for _, tc := range cases {
		inj := smTesting.CreateRecordingInjector(t, nil)
		var raw bytes.Buffer
		logger, logs := testLogger()

		in := cmd.Inject{Button: tc.button}
		err := in.Execute(context.Background(), tc.op, logger, log.NewRaw(&raw), inj)
		require.NoError(t, err, tc.name)
		require.Len(t, inj.Calls(), 1, tc.name)
		assert.Equal(t, tc.expected, inj.Calls()[0], tc.name)
		assert.Contains(t, raw.String(), "INPUT ", tc.name)
		assert.Contains(t, logs.String(), "Injected mouse event", tc.name)
	}
}

func TestExecuteDryRunSkipsPlatform(t *testing.T) {
	inj := smTesting.CreateRecordingInjector(t, nil)
	var raw bytes.Buffer
	logger, logs := testLogger()

	in := cmd.Inject{Button: mouse.Middle, DryRun: true}
	require.NoError(t, in.Execute(context.Background(), mouse.OpClick, logger, log.NewRaw(&raw), inj))
	assert.Empty(t, inj.Calls())
	assert.Contains(t, raw.String(), "INPUT ")
	assert.Contains(t, logs.String(), "Dry run, event not injected")
	assert.Contains(t, logs.String(), "flags=0x0040")
}

func TestExecuteReportsInjectionFailure(t *testing.T) {
	sentinel := errors.New("blocked")
	inj := smTesting.CreateRecordingInjector(t, sentinel)
	logger, _ := testLogger()

	in := cmd.Inject{Button: mouse.Right}
	err := in.Execute(context.Background(), mouse.OpRelease, logger, log.NewRaw(nil), inj)
	assert.ErrorIs(t, err, sentinel)
}

func TestExecuteDelay(t *testing.T) {
	inj := smTesting.CreateRecordingInjector(t, nil)
	logger, _ := testLogger()

	in := cmd.Inject{Button: mouse.Left, Delay: 20 * time.Millisecond}
	start := time.Now()
	require.NoError(t, in.Execute(context.Background(), mouse.OpPress, logger, log.NewRaw(nil), inj))
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	assert.Len(t, inj.Calls(), 1)
}

func TestExecuteDelayCancelled(t *testing.T) {
	inj := smTesting.CreateRecordingInjector(t, nil)
	logger, _ := testLogger()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	in := cmd.Inject{Button: mouse.Left, Delay: time.Hour}
	err := in.Execute(ctx, mouse.OpClick, logger, log.NewRaw(nil), inj)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, inj.Calls())
}
