//go:build !windows

package mouse_test

import (
	"testing"

	"github.com/Alia5/synthmouse/device/mouse"
	"github.com/stretchr/testify/assert"
)

func TestPlatformInjectorUnsupported(t *testing.T) {
	err := mouse.PlatformInjector().Inject(mouse.Event{Flags: mouse.EventLeftUp})
	assert.ErrorIs(t, err, mouse.ErrUnsupportedPlatform)

	err = mouse.New(mouse.PlatformInjector(), nil).Inject(mouse.OpClick, mouse.Left)
	assert.ErrorIs(t, err, mouse.ErrUnsupportedPlatform)
}
