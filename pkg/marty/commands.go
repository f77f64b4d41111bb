package marty

import (
	"github.com/robotical/go-marty/pkg/codec"
	"github.com/robotical/go-marty/pkg/options"
	"github.com/robotical/go-marty/pkg/transport"
)

// Protocol command names. The wire argument order for each command is
// fixed by the firmware; the methods below supply groups in that order.
const (
	cmdHello             = "hello"
	cmdStop              = "stop"
	cmdMoveJoint         = "move_joint"
	cmdLean              = "lean"
	cmdWalk              = "walk"
	cmdKick              = "kick"
	cmdArms              = "arms"
	cmdCelebrate         = "celebrate"
	cmdCircleDance       = "circle_dance"
	cmdSidestep          = "sidestep"
	cmdPlaySound         = "play_sound"
	cmdGPIO              = "gpio"
	cmdGPIOMode          = "gpio_mode"
	cmdGPIOWrite         = "gpio_write"
	cmdI2CWrite          = "i2c_write"
	cmdBattery           = "battery"
	cmdAccel             = "accel"
	cmdMotorCurrent      = "motorcurrent"
	cmdEnableMotors      = "enable_motors"
	cmdDisableMotors     = "disable_motors"
	cmdEnableSafeties    = "enable_safeties"
	cmdDisableSafeties   = "disable_safeties"
	cmdFallProtection    = "fall_protection"
	cmdMotorProtection   = "motor_protection"
	cmdBatteryProtection = "battery_protection"
	cmdBuzzPrevention    = "buzz_prevention"
	cmdLifelike          = "lifelike_behaviour"
	cmdSetParam          = "set_param"
	cmdSaveCalibration   = "save_calibration"
	cmdClearCalibration  = "clear_calibration"
	cmdROSCommand        = "ros_command"
	cmdChatter           = "chatter"
	cmdFirmwareVersion   = "firmware_version"
	cmdMuteSerial        = "mute_serial"
)

// EyesJointID is the joint the Eyes helper drives.
const EyesJointID = 8

// Hello zeroes the joints and wiggles the eyebrows.
func (c *Client) Hello() error {
	_, err := c.Execute(cmdHello)
	return err
}

// Stop stops motion with the given stop type. An empty stop type
// defaults to options.ClearAndStop.
func (c *Client) Stop(stopType options.StopType) error {
	if stopType == "" {
		stopType = options.ClearAndStop
	}
	code, err := stopType.Code()
	if err != nil {
		return err
	}
	_, err = c.Execute(cmdStop, []byte{code})
	return err
}

// MoveJoint moves one joint to a position over moveTime milliseconds.
func (c *Client) MoveJoint(jointID, position, moveTime int) error {
	joint, err := codec.PackUint8(jointID)
	if err != nil {
		return err
	}
	pos, err := codec.PackInt8(position)
	if err != nil {
		return err
	}
	dur, err := codec.PackUint16(moveTime)
	if err != nil {
		return err
	}
	_, err = c.Execute(cmdMoveJoint, joint, pos, dur)
	return err
}

// Eyes moves the eyes to an angle in degrees.
func (c *Client) Eyes(angle, moveTime int) error {
	return c.MoveJoint(EyesJointID, angle, moveTime)
}

// Lean leans over in a direction by amount, over moveTime milliseconds.
func (c *Client) Lean(direction options.Side, amount, moveTime int) error {
	side, err := direction.Code()
	if err != nil {
		return err
	}
	amt, err := codec.PackInt8(amount)
	if err != nil {
		return err
	}
	dur, err := codec.PackUint16(moveTime)
	if err != nil {
		return err
	}
	_, err = c.Execute(cmdLean, []byte{side}, amt, dur)
	return err
}

// Walk takes steps starting on startFoot. turn biases direction (-128 to
// 127, 0 is straight), stepLength is approximately in millimetres.
func (c *Client) Walk(steps int, startFoot options.Side, turn, stepLength, moveTime int) error {
	side, err := startFoot.Code()
	if err != nil {
		return err
	}
	n, err := codec.PackUint8(steps)
	if err != nil {
		return err
	}
	trn, err := codec.PackInt8(turn)
	if err != nil {
		return err
	}
	dur, err := codec.PackUint16(moveTime)
	if err != nil {
		return err
	}
	length, err := codec.PackInt8(stepLength)
	if err != nil {
		return err
	}
	_, err = c.Execute(cmdWalk, n, trn, dur, length, []byte{side})
	return err
}

// Kick kicks with the given foot, twisting by twist.
func (c *Client) Kick(side options.Side, twist, moveTime int) error {
	foot, err := side.Code()
	if err != nil {
		return err
	}
	tw, err := codec.PackInt8(twist)
	if err != nil {
		return err
	}
	dur, err := codec.PackUint16(moveTime)
	if err != nil {
		return err
	}
	_, err = c.Execute(cmdKick, []byte{foot}, tw, dur)
	return err
}

// Arms moves both arms to the given angles. The wire order is right arm
// first, then left.
func (c *Client) Arms(leftAngle, rightAngle, moveTime int) error {
	right, err := codec.PackInt8(rightAngle)
	if err != nil {
		return err
	}
	left, err := codec.PackInt8(leftAngle)
	if err != nil {
		return err
	}
	dur, err := codec.PackUint16(moveTime)
	if err != nil {
		return err
	}
	_, err = c.Execute(cmdArms, right, left, dur)
	return err
}

// Celebrate performs a small celebration.
func (c *Client) Celebrate(moveTime int) error {
	dur, err := codec.PackUint16(moveTime)
	if err != nil {
		return err
	}
	_, err = c.Execute(cmdCelebrate, dur)
	return err
}

// CircleDance dances in a circle toward the given side.
func (c *Client) CircleDance(side options.Side, moveTime int) error {
	sd, err := side.Code()
	if err != nil {
		return err
	}
	dur, err := codec.PackUint16(moveTime)
	if err != nil {
		return err
	}
	_, err = c.Execute(cmdCircleDance, []byte{sd}, dur)
	return err
}

// Sidestep takes steps sideways in the given direction.
func (c *Client) Sidestep(side options.Side, steps, stepLength, moveTime int) error {
	sd, err := side.Code()
	if err != nil {
		return err
	}
	n, err := codec.PackInt8(steps)
	if err != nil {
		return err
	}
	dur, err := codec.PackUint16(moveTime)
	if err != nil {
		return err
	}
	length, err := codec.PackInt8(stepLength)
	if err != nil {
		return err
	}
	_, err = c.Execute(cmdSidestep, []byte{sd}, n, dur, length)
	return err
}

// PlaySound plays a tone sweeping from freqStart to freqEnd Hz over
// duration milliseconds.
func (c *Client) PlaySound(freqStart, freqEnd, duration int) error {
	start, err := codec.PackUint16(freqStart)
	if err != nil {
		return err
	}
	end, err := codec.PackUint16(freqEnd)
	if err != nil {
		return err
	}
	dur, err := codec.PackUint16(duration)
	if err != nil {
		return err
	}
	_, err = c.Execute(cmdPlaySound, start, end, dur)
	return err
}

// PinModeGPIO configures a GPIO pin.
func (c *Client) PinModeGPIO(pin int, mode options.GPIOMode) error {
	p, err := codec.PackUint8(pin)
	if err != nil {
		return err
	}
	m, err := mode.Code()
	if err != nil {
		return err
	}
	_, err = c.Execute(cmdGPIOMode, p, []byte{m})
	return err
}

// WriteGPIO writes a value to a GPIO pin.
func (c *Client) WriteGPIO(pin, value int) error {
	p, err := codec.PackUint8(pin)
	if err != nil {
		return err
	}
	v, err := codec.PackUint8(value)
	if err != nil {
		return err
	}
	_, err = c.Execute(cmdGPIOWrite, p, v)
	return err
}

// DigitalReadGPIO reads the high/low state of a GPIO pin.
func (c *Client) DigitalReadGPIO(pin int) (bool, error) {
	p, err := codec.PackUint8(pin)
	if err != nil {
		return false, err
	}
	resp, err := c.Execute(cmdGPIO, p)
	if err != nil {
		return false, err
	}
	return len(resp.Payload) > 0 && resp.Payload[0] != 0, nil
}

// I2CWrite writes a raw bytestream to the i2c port. The first byte is
// the device address; the rest follows the standard i2c datagram.
func (c *Client) I2CWrite(data []byte) error {
	_, err := c.Execute(cmdI2CWrite, data)
	return err
}

// BatteryVoltage reads the battery voltage in volts.
func (c *Client) BatteryVoltage() (float32, error) {
	resp, err := c.Execute(cmdBattery)
	if err != nil {
		return 0, err
	}
	return codec.Float32(resp.Payload)
}

// Accelerometer reads the most recent acceleration on one axis.
func (c *Client) Accelerometer(axis options.AccelAxis) (float32, error) {
	ax, err := axis.Code()
	if err != nil {
		return 0, err
	}
	resp, err := c.Execute(cmdAccel, []byte{ax})
	if err != nil {
		return 0, err
	}
	return codec.Float32(resp.Payload)
}

// MotorCurrent reads the instantaneous current sense for one motor.
func (c *Client) MotorCurrent(motorID int) (float32, error) {
	id, err := codec.PackUint8(motorID)
	if err != nil {
		return 0, err
	}
	resp, err := c.Execute(cmdMotorCurrent, id)
	if err != nil {
		return 0, err
	}
	return codec.Float32(resp.Payload)
}

// EnableMotors toggles motor power. When enabling, the movement queue is
// cleared first so unfinished muted motions don't jump as power returns.
func (c *Client) EnableMotors(enable bool) error {
	if enable {
		if err := c.Stop(options.ClearQueue); err != nil {
			return err
		}
		_, err := c.Execute(cmdEnableMotors)
		return err
	}
	_, err := c.Execute(cmdDisableMotors)
	return err
}

// EnableSafeties toggles the board's normal safety interlocks.
func (c *Client) EnableSafeties(enable bool) error {
	name := cmdEnableSafeties
	if !enable {
		name = cmdDisableSafeties
	}
	_, err := c.Execute(name)
	return err
}

// FallProtection toggles fall protection.
func (c *Client) FallProtection(enable bool) error {
	return c.toggle(cmdFallProtection, enable)
}

// MotorProtection toggles motor current protection.
func (c *Client) MotorProtection(enable bool) error {
	return c.toggle(cmdMotorProtection, enable)
}

// BatteryProtection toggles low-battery protection.
func (c *Client) BatteryProtection(enable bool) error {
	return c.toggle(cmdBatteryProtection, enable)
}

// BuzzPrevention toggles motor buzz prevention.
func (c *Client) BuzzPrevention(enable bool) error {
	return c.toggle(cmdBuzzPrevention, enable)
}

// LifelikeBehaviour tells the robot whether it may move in a lifelike
// way when idle.
func (c *Client) LifelikeBehaviour(enable bool) error {
	return c.toggle(cmdLifelike, enable)
}

// SetParameter sets a firmware parameter by id.
func (c *Client) SetParameter(paramID int, value []byte) error {
	id, err := codec.PackUint8(paramID)
	if err != nil {
		return err
	}
	_, err = c.Execute(cmdSetParam, id, value)
	return err
}

// SaveCalibration stores the current motor positions as the zero
// positions. This can cause unexpected movement or self-interference.
func (c *Client) SaveCalibration() error {
	_, err := c.Execute(cmdSaveCalibration)
	return err
}

// ClearCalibration makes the robot forget its calibration. This can
// cause unexpected movement or self-interference.
func (c *Client) ClearCalibration() error {
	_, err := c.Execute(cmdClearCalibration)
	return err
}

// ROSCommand gives low-level proxied access to the ROS serial API
// between the modem and the main controller.
func (c *Client) ROSCommand(data []byte) (transport.Response, error) {
	return c.Execute(cmdROSCommand, data)
}

// Chatter returns chatter topic data (variable length).
func (c *Client) Chatter() ([]byte, error) {
	resp, err := c.Execute(cmdChatter)
	if err != nil {
		return nil, err
	}
	return resp.Payload, nil
}

// FirmwareVersion asks the board for its firmware version.
func (c *Client) FirmwareVersion() (string, error) {
	resp, err := c.Execute(cmdFirmwareVersion)
	if err != nil {
		return "", err
	}
	return string(resp.Payload), nil
}

// MuteSerial mutes the internal serial line. The robot will ignore
// further commands until its power is cycled.
func (c *Client) MuteSerial() error {
	_, err := c.Execute(cmdMuteSerial)
	return err
}

// toggle sends a command whose single argument is a 0/1 enable byte.
func (c *Client) toggle(name string, enable bool) error {
	v := byte(0)
	if enable {
		v = 1
	}
	_, err := c.Execute(name, []byte{v})
	return err
}
