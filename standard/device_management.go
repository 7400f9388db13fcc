package standard

import "github.com/trigrass2/popcop/wire"

// DeviceManagementCommand enumerates the operations a host can ask an
// endpoint to perform on itself.
type DeviceManagementCommand uint16

const (
	DeviceManagementCommandRestart DeviceManagementCommand = iota
	DeviceManagementCommandRestartToBootloader
	DeviceManagementCommandRestartToApplication
	DeviceManagementCommandFactoryReset
)

func (c DeviceManagementCommand) String() string {
	switch c {
	case DeviceManagementCommandRestart:
		return "Restart"
	case DeviceManagementCommandRestartToBootloader:
		return "RestartToBootloader"
	case DeviceManagementCommandRestartToApplication:
		return "RestartToApplication"
	case DeviceManagementCommandFactoryReset:
		return "FactoryReset"
	default:
		return "Unknown"
	}
}

// DeviceManagementStatus reports the outcome of a DeviceManagementCommand.
type DeviceManagementStatus uint8

const (
	DeviceManagementStatusOk DeviceManagementStatus = iota
	DeviceManagementStatusBadCommand
	DeviceManagementStatusMaybeLater
)

func (s DeviceManagementStatus) String() string {
	switch s {
	case DeviceManagementStatusOk:
		return "Ok"
	case DeviceManagementStatusBadCommand:
		return "BadCommand"
	case DeviceManagementStatusMaybeLater:
		return "MaybeLater"
	default:
		return "Unknown"
	}
}

const DeviceManagementCommandRequestEncodedSize = HeaderSize + 2

// DeviceManagementCommandRequestMessage asks an endpoint to perform a
// device-management operation: restart, restart into the bootloader or
// application image, or erase its persisted configuration.
type DeviceManagementCommandRequestMessage struct {
	Command DeviceManagementCommand
}

func (m DeviceManagementCommandRequestMessage) ID() MessageID {
	return MessageIDDeviceManagementCommandRequest
}

func (m DeviceManagementCommandRequestMessage) Encode(enc *wire.Encoder) {
	encodeHeader(enc, MessageIDDeviceManagementCommandRequest)
	enc.AddU16(uint16(m.Command))
}

func TryDecodeDeviceManagementCommandRequest(data []byte) (DeviceManagementCommandRequestMessage, bool) {
	var m DeviceManagementCommandRequestMessage
	if len(data) > DeviceManagementCommandRequestEncodedSize {
		return m, false
	}
	dec := wire.NewDecoder(data)
	if !decodeHeader(dec, MessageIDDeviceManagementCommandRequest) {
		return m, false
	}
	m.Command = DeviceManagementCommand(dec.FetchU16())
	return m, true
}

const DeviceManagementCommandResponseEncodedSize = HeaderSize + 2 + 1

// DeviceManagementCommandResponseMessage echoes the command that was
// requested and reports whether the endpoint accepted it.
type DeviceManagementCommandResponseMessage struct {
	Command DeviceManagementCommand
	Status  DeviceManagementStatus
}

func (m DeviceManagementCommandResponseMessage) ID() MessageID {
	return MessageIDDeviceManagementCommandResponse
}

func (m DeviceManagementCommandResponseMessage) Encode(enc *wire.Encoder) {
	encodeHeader(enc, MessageIDDeviceManagementCommandResponse)
	enc.AddU16(uint16(m.Command))
	enc.AddU8(uint8(m.Status))
}

func TryDecodeDeviceManagementCommandResponse(data []byte) (DeviceManagementCommandResponseMessage, bool) {
	var m DeviceManagementCommandResponseMessage
	if len(data) > DeviceManagementCommandResponseEncodedSize {
		return m, false
	}
	dec := wire.NewDecoder(data)
	if !decodeHeader(dec, MessageIDDeviceManagementCommandResponse) {
		return m, false
	}
	m.Command = DeviceManagementCommand(dec.FetchU16())
	m.Status = DeviceManagementStatus(dec.FetchU8())
	return m, true
}
