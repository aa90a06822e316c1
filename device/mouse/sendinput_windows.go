//go:build windows

package mouse

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32        = windows.NewLazySystemDLL("user32.dll")
	procSendInput = user32.NewProc("SendInput")
)

// Go mirrors of MOUSEINPUT and INPUT. MOUSEINPUT is the largest union member,
// so the Go struct has the same size and alignment as the C union.
type mouseInput struct {
	Dx          int32
	Dy          int32
	MouseData   uint32
	DwFlags     uint32
	Time        uint32
	DwExtraInfo uintptr
}

type input struct {
	Type uint32
	Mi   mouseInput
}

type sendInputInjector struct{}

// PlatformInjector returns the injector backed by user32!SendInput.
func PlatformInjector() Injector {
	return sendInputInjector{}
}

func (sendInputInjector) Inject(ev Event) error {
	if err := procSendInput.Find(); err != nil {
		return fmt.Errorf("locate SendInput: %w", err)
	}
	in := input{
		Type: inputTypeMouse,
		Mi: mouseInput{
			MouseData: uint32(ev.Data),
			DwFlags:   uint32(ev.Flags),
		},
	}
	n, _, callErr := procSendInput.Call(1, uintptr(unsafe.Pointer(&in)), unsafe.Sizeof(in))
	if n != 1 {
		return fmt.Errorf("SendInput queued %d of 1 events: %w", n, callErr)
	}
	return nil
}
