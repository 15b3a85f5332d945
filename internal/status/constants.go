// internal/status/constants.go
package status

// Fetch status block layout constants.
// These values define the protocol and MUST NOT be configurable.

// ---- BLOCK GEOMETRY ----

// SlotsPerDevice is the fixed number of registers per status block.
const SlotsPerDevice = 20

// ---- SLOT INDICES ----

// SlotHealthCode holds the fetch health state.
const SlotHealthCode = 0

// SlotLastErrorCode holds the outcome code of the last failed attempt.
const SlotLastErrorCode = 1

// SlotSecondsInError holds the duration (in seconds) the fetch loop has been failing.
const SlotSecondsInError = 2

// ---- RESERVED RANGE ----

// Slots 3..10 are reserved.
const SlotReservedStart = 3
const SlotReservedEnd = 10

// ---- DEVICE NAME ----

// SlotDeviceNameStart is the first slot used for the device name.
// The name is always placed at the END of the status block.
const SlotDeviceNameStart = 11

// SlotDeviceNameSlots is the number of slots reserved for the device name.
const SlotDeviceNameSlots = 8

// SlotDeviceNameEnd is the last slot used for the device name (inclusive).
const SlotDeviceNameEnd = SlotDeviceNameStart + SlotDeviceNameSlots - 1

// ---- LIMITS ----

// DeviceNameMaxChars is the maximum number of ASCII characters stored for the name.
const DeviceNameMaxChars = 16

// MaxSecondsInError is where seconds_in_error saturates. It never wraps.
const MaxSecondsInError uint16 = 65535

// ---- HEALTH CODES ----

// HealthUnknown is the boot state, before the first attempt completes.
const HealthUnknown uint16 = 0

// HealthOK means the last attempt completed a stream.
const HealthOK uint16 = 1

// HealthError means the last attempt failed.
const HealthError uint16 = 2
