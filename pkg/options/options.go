// Package options defines the closed enumeration tables the robot protocol
// uses for one-byte arguments: movement side, stop mode, GPIO pin mode and
// accelerometer axis.
//
// Each table is fixed at process start and never mutated, so the tables are
// safe to share across clients without locking. Looking up a key that is not
// in its table fails with an *UnknownKeyError naming the key and the valid
// set — before any bytes are sent to a robot.
package options

// Side selects a movement side or direction.
type Side string

// Side keys and their wire codes.
const (
	Left    Side = "left"
	Right   Side = "right"
	Forward Side = "forward"
	Back    Side = "back"
	Auto    Side = "auto"
)

var sideCodes = map[Side]byte{
	Left:    0x00,
	Right:   0x01,
	Forward: 0x02,
	Back:    0x03,
	Auto:    0xFF,
}

// Code returns the one-byte wire code for the side.
func (s Side) Code() (byte, error) {
	return lookup("side", sideCodes, s)
}

// Sides returns all valid side keys, sorted.
func Sides() []string {
	return keys(sideCodes)
}

// StopType selects how the robot stops and what happens to queued moves.
type StopType string

// Stop modes.
const (
	// ClearQueue clears the movement queue only, finishing the current move.
	ClearQueue StopType = "clear queue"
	// ClearAndStop clears movement and servo queues, freezing in place.
	ClearAndStop StopType = "clear and stop"
	// ClearAndDisable clears everything and disables motors.
	ClearAndDisable StopType = "clear and disable"
	// ClearAndZero clears everything and returns the robot to zero.
	ClearAndZero StopType = "clear and zero"
	// Pause keeps servo and move queues intact with motors enabled.
	Pause StopType = "pause"
	// PauseAndDisable pauses and disables motors too.
	PauseAndDisable StopType = "pause and disable"
)

var stopCodes = map[StopType]byte{
	ClearQueue:      0x00,
	ClearAndStop:    0x01,
	ClearAndDisable: 0x02,
	ClearAndZero:    0x03,
	Pause:           0x04,
	PauseAndDisable: 0x05,
}

// Code returns the one-byte wire code for the stop type.
func (s StopType) Code() (byte, error) {
	return lookup("stop type", stopCodes, s)
}

// StopTypes returns all valid stop type keys, sorted.
func StopTypes() []string {
	return keys(stopCodes)
}

// GPIOMode selects how a GPIO pin is configured.
type GPIOMode string

// GPIO pin modes.
const (
	DigitalIn  GPIOMode = "digital in"
	AnalogIn   GPIOMode = "analog in"
	DigitalOut GPIOMode = "digital out"
)

var gpioModeCodes = map[GPIOMode]byte{
	DigitalIn:  0x00,
	AnalogIn:   0x01,
	DigitalOut: 0x02,
}

// Code returns the one-byte wire code for the GPIO mode.
func (m GPIOMode) Code() (byte, error) {
	return lookup("GPIO mode", gpioModeCodes, m)
}

// GPIOModes returns all valid GPIO mode keys, sorted.
func GPIOModes() []string {
	return keys(gpioModeCodes)
}

// AccelAxis selects an accelerometer axis.
type AccelAxis string

// Accelerometer axes.
const (
	AxisX AccelAxis = "x"
	AxisY AccelAxis = "y"
	AxisZ AccelAxis = "z"
)

var accelAxisCodes = map[AccelAxis]byte{
	AxisX: 0x00,
	AxisY: 0x01,
	AxisZ: 0x02,
}

// Code returns the one-byte wire code for the axis.
func (a AccelAxis) Code() (byte, error) {
	return lookup("accelerometer axis", accelAxisCodes, a)
}

// AccelAxes returns all valid axis keys, sorted.
func AccelAxes() []string {
	return keys(accelAxisCodes)
}
