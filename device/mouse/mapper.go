package mouse

// The flag tables keep the pairing the host integration has always shipped:
// the "down" table holds the platform's button-up flags and the "up" table the
// button-down flags. Click therefore injects an up transition and Release a
// down transition; Press injects both in one event.
//
// TODO: confirm with the owner whether Click and Release are meant to be
// swapped before changing either table.

var downFlags = [buttonCount]EventFlag{
	Left:         EventLeftUp,
	DoubleLeft:   EventLeftUp,
	Right:        EventRightUp,
	DoubleRight:  EventRightUp,
	Middle:       EventMiddleUp,
	DoubleMiddle: EventMiddleUp,
	Side:         EventXUp,
	DoubleSide:   EventXUp,
	Extra:        EventXUp,
	DoubleExtra:  EventXUp,
}

var upFlags = [buttonCount]EventFlag{
	Left:         EventLeftDown,
	DoubleLeft:   EventLeftDown,
	Right:        EventRightDown,
	DoubleRight:  EventRightDown,
	Middle:       EventMiddleDown,
	DoubleMiddle: EventMiddleDown,
	Side:         EventXDown,
	DoubleSide:   EventXDown,
	Extra:        EventXDown,
	DoubleExtra:  EventXDown,
}

var auxData = [buttonCount]AuxData{
	Side:        AuxXButton1,
	DoubleSide:  AuxXButton1,
	Extra:       AuxXButton2,
	DoubleExtra: AuxXButton2,
}

// AuxiliaryDataFor returns the extended-button identifier for b:
// XBUTTON1 for Side, XBUTTON2 for Extra, zero otherwise.
// It panics if b is not Valid.
func AuxiliaryDataFor(b MouseButton) AuxData {
	return auxData[b]
}

// DownFlagFor returns the flag Click injects for b.
// It panics if b is not Valid.
func DownFlagFor(b MouseButton) EventFlag {
	return downFlags[b]
}

// UpFlagFor returns the flag Release injects for b.
// It panics if b is not Valid.
func UpFlagFor(b MouseButton) EventFlag {
	return upFlags[b]
}
