// Package device defines the capabilities shared by simulated input devices.
package device

// Button is anything that can be pressed, clicked and released on the host.
// Each call injects the corresponding synthetic input event.
type Button interface {
	Press()
	Click()
	Release()
}
