package mouse

// EventFlag is a platform bit value describing a button transition
// (MOUSEINPUT.dwFlags on Windows).
type EventFlag uint32

// AuxData identifies which extended button an event refers to
// (MOUSEINPUT.mouseData on Windows). Zero for non-extended buttons.
type AuxData uint16

// Win32 MOUSEEVENTF_* button flags
const (
	EventLeftDown   EventFlag = 0x0002
	EventLeftUp     EventFlag = 0x0004
	EventRightDown  EventFlag = 0x0008
	EventRightUp    EventFlag = 0x0010
	EventMiddleDown EventFlag = 0x0020
	EventMiddleUp   EventFlag = 0x0040
	EventXDown      EventFlag = 0x0080
	EventXUp        EventFlag = 0x0100
)

// Win32 XBUTTON* identifiers
const (
	AuxNone     AuxData = 0x0000
	AuxXButton1 AuxData = 0x0001
	AuxXButton2 AuxData = 0x0002
)

// INPUT.type for mouse records
const inputTypeMouse = 0
