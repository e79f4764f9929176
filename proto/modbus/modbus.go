// Package modbus declares descriptor tables for Modbus PDUs.
//
// Each query/response pair is a plain record type plus a Fields descriptor
// list; serialization goes through the bitfield record codec over a
// big-endian stream, which is what the Modbus wire format uses:
//
//	pdu := modbus.ReadHoldingRegistersQuery{StartingAddress: 0x6B, NoPoints: 3}
//	s := modbus.NewPDUStream(buf)
//	err := bitfield.Serialize(modbus.ReadHoldingRegistersQueryFields, &pdu, s)
//
// The function-code byte and the framing around the PDU (address, CRC or
// MBAP header) belong to the transport and are not part of these tables.
package modbus

import (
	"github.com/tomaszszewczyk/bitfield"
	"github.com/tomaszszewczyk/bitfield/endian"
	"github.com/tomaszszewczyk/bitfield/stream"
)

// Modbus function codes.
const (
	FuncReadCoilStatus          = 0x01
	FuncReadInputStatus         = 0x02
	FuncReadHoldingRegisters    = 0x03
	FuncReadInputRegisters      = 0x04
	FuncForceSingleCoil         = 0x05
	FuncPresetSingleRegister    = 0x06
	FuncReadExceptionStatus     = 0x07
	FuncFetchCommEventCtr       = 0x0B
	FuncFetchCommEventLog       = 0x0C
	FuncForceMultipleCoils      = 0x0F
	FuncPresetMultipleRegisters = 0x10
	FuncReportSlaveID           = 0x11
	FuncReadGeneralReference    = 0x14
	FuncWriteGeneralReference   = 0x15
	FuncMaskWrite4XRegister     = 0x16
	FuncReadWrite4XRegisters    = 0x17
	FuncReadFIFOQueue           = 0x18
)

// NewPDUStream creates a big-endian stream over buf, the byte order Modbus
// PDUs use.
func NewPDUStream(buf []byte) *stream.Stream {
	return stream.New(buf, endian.Big)
}

func u16Field[R any](get func(*R) uint16, set func(*R, uint16)) bitfield.Field[R] {
	return bitfield.Uint16(16, get, set)
}

func u8Field[R any](get func(*R) uint8, set func(*R, uint8)) bitfield.Field[R] {
	return bitfield.Uint8(8, get, set)
}

// addressPairFields covers the common (starting address, count) query
// shape.
func addressPairFields[R any](getAddr func(*R) uint16, setAddr func(*R, uint16), getCount func(*R) uint16, setCount func(*R, uint16)) []bitfield.Field[R] {
	return []bitfield.Field[R]{
		u16Field(getAddr, setAddr),
		u16Field(getCount, setCount),
	}
}

// lengthPrefixedFields covers the common (byte count, data) response
// shape.
func lengthPrefixedFields[R any](getLen func(*R) int, setLen func(*R, int), getData func(*R) []byte, setData func(*R, []byte)) []bitfield.Field[R] {
	return []bitfield.Field[R]{
		bitfield.Length(8, getLen, setLen),
		bitfield.VarBytes(getData, setData, getLen),
	}
}

// ReadCoilStatusQuery requests NoPoints coil states starting at
// StartingAddress.
type ReadCoilStatusQuery struct {
	StartingAddress uint16
	NoPoints        uint16
}

var ReadCoilStatusQueryFields = addressPairFields(
	func(r *ReadCoilStatusQuery) uint16 { return r.StartingAddress },
	func(r *ReadCoilStatusQuery, v uint16) { r.StartingAddress = v },
	func(r *ReadCoilStatusQuery) uint16 { return r.NoPoints },
	func(r *ReadCoilStatusQuery, v uint16) { r.NoPoints = v },
)

// ReadCoilStatusResponse carries packed coil states.
type ReadCoilStatusResponse struct {
	Len  int
	Data []byte
}

var ReadCoilStatusResponseFields = lengthPrefixedFields(
	func(r *ReadCoilStatusResponse) int { return r.Len },
	func(r *ReadCoilStatusResponse, v int) { r.Len = v },
	func(r *ReadCoilStatusResponse) []byte { return r.Data },
	func(r *ReadCoilStatusResponse, b []byte) { r.Data = b },
)

// ReadInputStatusQuery requests NoPoints input states starting at
// StartingAddress.
type ReadInputStatusQuery struct {
	StartingAddress uint16
	NoPoints        uint16
}

var ReadInputStatusQueryFields = addressPairFields(
	func(r *ReadInputStatusQuery) uint16 { return r.StartingAddress },
	func(r *ReadInputStatusQuery, v uint16) { r.StartingAddress = v },
	func(r *ReadInputStatusQuery) uint16 { return r.NoPoints },
	func(r *ReadInputStatusQuery, v uint16) { r.NoPoints = v },
)

// ReadInputStatusResponse carries packed input states.
type ReadInputStatusResponse struct {
	Len  int
	Data []byte
}

var ReadInputStatusResponseFields = lengthPrefixedFields(
	func(r *ReadInputStatusResponse) int { return r.Len },
	func(r *ReadInputStatusResponse, v int) { r.Len = v },
	func(r *ReadInputStatusResponse) []byte { return r.Data },
	func(r *ReadInputStatusResponse, b []byte) { r.Data = b },
)

// ReadHoldingRegistersQuery requests NoPoints holding registers starting
// at StartingAddress.
type ReadHoldingRegistersQuery struct {
	StartingAddress uint16
	NoPoints        uint16
}

var ReadHoldingRegistersQueryFields = addressPairFields(
	func(r *ReadHoldingRegistersQuery) uint16 { return r.StartingAddress },
	func(r *ReadHoldingRegistersQuery, v uint16) { r.StartingAddress = v },
	func(r *ReadHoldingRegistersQuery) uint16 { return r.NoPoints },
	func(r *ReadHoldingRegistersQuery, v uint16) { r.NoPoints = v },
)

// ReadHoldingRegistersResponse carries register values, two bytes each.
type ReadHoldingRegistersResponse struct {
	Len  int
	Data []byte
}

var ReadHoldingRegistersResponseFields = lengthPrefixedFields(
	func(r *ReadHoldingRegistersResponse) int { return r.Len },
	func(r *ReadHoldingRegistersResponse, v int) { r.Len = v },
	func(r *ReadHoldingRegistersResponse) []byte { return r.Data },
	func(r *ReadHoldingRegistersResponse, b []byte) { r.Data = b },
)

// ReadInputRegistersQuery requests NoPoints input registers starting at
// StartingAddress.
type ReadInputRegistersQuery struct {
	StartingAddress uint16
	NoPoints        uint16
}

var ReadInputRegistersQueryFields = addressPairFields(
	func(r *ReadInputRegistersQuery) uint16 { return r.StartingAddress },
	func(r *ReadInputRegistersQuery, v uint16) { r.StartingAddress = v },
	func(r *ReadInputRegistersQuery) uint16 { return r.NoPoints },
	func(r *ReadInputRegistersQuery, v uint16) { r.NoPoints = v },
)

// ReadInputRegistersResponse carries register values, two bytes each.
type ReadInputRegistersResponse struct {
	Len  int
	Data []byte
}

var ReadInputRegistersResponseFields = lengthPrefixedFields(
	func(r *ReadInputRegistersResponse) int { return r.Len },
	func(r *ReadInputRegistersResponse, v int) { r.Len = v },
	func(r *ReadInputRegistersResponse) []byte { return r.Data },
	func(r *ReadInputRegistersResponse, b []byte) { r.Data = b },
)

// ForceSingleCoilQuery sets one coil; CoilData is 0xFF00 for on, 0x0000
// for off.
type ForceSingleCoilQuery struct {
	CoilAddress uint16
	CoilData    uint16
}

var ForceSingleCoilQueryFields = addressPairFields(
	func(r *ForceSingleCoilQuery) uint16 { return r.CoilAddress },
	func(r *ForceSingleCoilQuery, v uint16) { r.CoilAddress = v },
	func(r *ForceSingleCoilQuery) uint16 { return r.CoilData },
	func(r *ForceSingleCoilQuery, v uint16) { r.CoilData = v },
)

// ForceSingleCoilResponse echoes the query.
type ForceSingleCoilResponse struct {
	CoilAddress uint16
	CoilData    uint16
}

var ForceSingleCoilResponseFields = addressPairFields(
	func(r *ForceSingleCoilResponse) uint16 { return r.CoilAddress },
	func(r *ForceSingleCoilResponse, v uint16) { r.CoilAddress = v },
	func(r *ForceSingleCoilResponse) uint16 { return r.CoilData },
	func(r *ForceSingleCoilResponse, v uint16) { r.CoilData = v },
)

// PresetSingleRegisterQuery writes one holding register.
type PresetSingleRegisterQuery struct {
	RegisterAddress uint16
	PresetData      uint16
}

var PresetSingleRegisterQueryFields = addressPairFields(
	func(r *PresetSingleRegisterQuery) uint16 { return r.RegisterAddress },
	func(r *PresetSingleRegisterQuery, v uint16) { r.RegisterAddress = v },
	func(r *PresetSingleRegisterQuery) uint16 { return r.PresetData },
	func(r *PresetSingleRegisterQuery, v uint16) { r.PresetData = v },
)

// PresetSingleRegisterResponse echoes the query.
type PresetSingleRegisterResponse struct {
	RegisterAddress uint16
	PresetData      uint16
}

var PresetSingleRegisterResponseFields = addressPairFields(
	func(r *PresetSingleRegisterResponse) uint16 { return r.RegisterAddress },
	func(r *PresetSingleRegisterResponse, v uint16) { r.RegisterAddress = v },
	func(r *PresetSingleRegisterResponse) uint16 { return r.PresetData },
	func(r *PresetSingleRegisterResponse, v uint16) { r.PresetData = v },
)

// ReadExceptionStatusResponse carries the eight exception coil states.
type ReadExceptionStatusResponse struct {
	CoilData uint8
}

var ReadExceptionStatusResponseFields = []bitfield.Field[ReadExceptionStatusResponse]{
	u8Field(
		func(r *ReadExceptionStatusResponse) uint8 { return r.CoilData },
		func(r *ReadExceptionStatusResponse, v uint8) { r.CoilData = v },
	),
}

// FetchCommEventCtrResponse carries the device status word and event
// counter.
type FetchCommEventCtrResponse struct {
	Status     uint16
	EventCount uint16
}

var FetchCommEventCtrResponseFields = addressPairFields(
	func(r *FetchCommEventCtrResponse) uint16 { return r.Status },
	func(r *FetchCommEventCtrResponse, v uint16) { r.Status = v },
	func(r *FetchCommEventCtrResponse) uint16 { return r.EventCount },
	func(r *FetchCommEventCtrResponse, v uint16) { r.EventCount = v },
)

// FetchCommEventLogResponse carries the status words followed by the event
// bytes. Len counts everything after it, so the event array holds Len
// minus the six bytes of the three status words.
type FetchCommEventLogResponse struct {
	Len          int
	Status       uint16
	EventCount   uint16
	MessageCount uint16
	Events       []byte
}

var FetchCommEventLogResponseFields = []bitfield.Field[FetchCommEventLogResponse]{
	bitfield.Length(8,
		func(r *FetchCommEventLogResponse) int { return r.Len },
		func(r *FetchCommEventLogResponse, v int) { r.Len = v },
	),
	u16Field(
		func(r *FetchCommEventLogResponse) uint16 { return r.Status },
		func(r *FetchCommEventLogResponse, v uint16) { r.Status = v },
	),
	u16Field(
		func(r *FetchCommEventLogResponse) uint16 { return r.EventCount },
		func(r *FetchCommEventLogResponse, v uint16) { r.EventCount = v },
	),
	u16Field(
		func(r *FetchCommEventLogResponse) uint16 { return r.MessageCount },
		func(r *FetchCommEventLogResponse, v uint16) { r.MessageCount = v },
	),
	bitfield.VarBytes(
		func(r *FetchCommEventLogResponse) []byte { return r.Events },
		func(r *FetchCommEventLogResponse, b []byte) { r.Events = b },
		func(r *FetchCommEventLogResponse) int { return r.Len - 6 },
	),
}

// ForceMultipleCoilsQuery sets a run of coils from packed ForceData.
type ForceMultipleCoilsQuery struct {
	CoilAddress     uint16
	QuantityOfCoils uint16
	Len             int
	ForceData       []byte
}

var ForceMultipleCoilsQueryFields = []bitfield.Field[ForceMultipleCoilsQuery]{
	u16Field(
		func(r *ForceMultipleCoilsQuery) uint16 { return r.CoilAddress },
		func(r *ForceMultipleCoilsQuery, v uint16) { r.CoilAddress = v },
	),
	u16Field(
		func(r *ForceMultipleCoilsQuery) uint16 { return r.QuantityOfCoils },
		func(r *ForceMultipleCoilsQuery, v uint16) { r.QuantityOfCoils = v },
	),
	bitfield.Length(8,
		func(r *ForceMultipleCoilsQuery) int { return r.Len },
		func(r *ForceMultipleCoilsQuery, v int) { r.Len = v },
	),
	bitfield.VarBytes(
		func(r *ForceMultipleCoilsQuery) []byte { return r.ForceData },
		func(r *ForceMultipleCoilsQuery, b []byte) { r.ForceData = b },
		func(r *ForceMultipleCoilsQuery) int { return r.Len },
	),
}

// ForceMultipleCoilsResponse confirms the written coil range.
type ForceMultipleCoilsResponse struct {
	CoilAddress     uint16
	QuantityOfCoils uint16
}

var ForceMultipleCoilsResponseFields = addressPairFields(
	func(r *ForceMultipleCoilsResponse) uint16 { return r.CoilAddress },
	func(r *ForceMultipleCoilsResponse, v uint16) { r.CoilAddress = v },
	func(r *ForceMultipleCoilsResponse) uint16 { return r.QuantityOfCoils },
	func(r *ForceMultipleCoilsResponse, v uint16) { r.QuantityOfCoils = v },
)

// PresetMultipleRegsQuery writes a run of holding registers.
type PresetMultipleRegsQuery struct {
	StartingAddress uint16
	NoRegisters     uint16
	Len             int
	Data            []byte
}

var PresetMultipleRegsQueryFields = []bitfield.Field[PresetMultipleRegsQuery]{
	u16Field(
		func(r *PresetMultipleRegsQuery) uint16 { return r.StartingAddress },
		func(r *PresetMultipleRegsQuery, v uint16) { r.StartingAddress = v },
	),
	u16Field(
		func(r *PresetMultipleRegsQuery) uint16 { return r.NoRegisters },
		func(r *PresetMultipleRegsQuery, v uint16) { r.NoRegisters = v },
	),
	bitfield.Length(8,
		func(r *PresetMultipleRegsQuery) int { return r.Len },
		func(r *PresetMultipleRegsQuery, v int) { r.Len = v },
	),
	bitfield.VarBytes(
		func(r *PresetMultipleRegsQuery) []byte { return r.Data },
		func(r *PresetMultipleRegsQuery, b []byte) { r.Data = b },
		func(r *PresetMultipleRegsQuery) int { return r.Len },
	),
}

// PresetMultipleRegsResponse confirms the written register range.
type PresetMultipleRegsResponse struct {
	StartingAddress uint16
	NoRegisters     uint16
}

var PresetMultipleRegsResponseFields = addressPairFields(
	func(r *PresetMultipleRegsResponse) uint16 { return r.StartingAddress },
	func(r *PresetMultipleRegsResponse, v uint16) { r.StartingAddress = v },
	func(r *PresetMultipleRegsResponse) uint16 { return r.NoRegisters },
	func(r *PresetMultipleRegsResponse, v uint16) { r.NoRegisters = v },
)

// ReportSlaveIDResponse carries the device identification. Len counts
// everything after it, so AdditionalData holds Len minus the two ID bytes.
type ReportSlaveIDResponse struct {
	Len                int
	SlaveID            uint8
	RunIndicatorStatus uint8
	AdditionalData     []byte
}

var ReportSlaveIDResponseFields = []bitfield.Field[ReportSlaveIDResponse]{
	bitfield.Length(8,
		func(r *ReportSlaveIDResponse) int { return r.Len },
		func(r *ReportSlaveIDResponse, v int) { r.Len = v },
	),
	u8Field(
		func(r *ReportSlaveIDResponse) uint8 { return r.SlaveID },
		func(r *ReportSlaveIDResponse, v uint8) { r.SlaveID = v },
	),
	u8Field(
		func(r *ReportSlaveIDResponse) uint8 { return r.RunIndicatorStatus },
		func(r *ReportSlaveIDResponse, v uint8) { r.RunIndicatorStatus = v },
	),
	bitfield.VarBytes(
		func(r *ReportSlaveIDResponse) []byte { return r.AdditionalData },
		func(r *ReportSlaveIDResponse, b []byte) { r.AdditionalData = b },
		func(r *ReportSlaveIDResponse) int { return r.Len - 2 },
	),
}

// ReadGeneralReferenceQuery carries the sub-request block.
type ReadGeneralReferenceQuery struct {
	Len  int
	Data []byte
}

var ReadGeneralReferenceQueryFields = lengthPrefixedFields(
	func(r *ReadGeneralReferenceQuery) int { return r.Len },
	func(r *ReadGeneralReferenceQuery, v int) { r.Len = v },
	func(r *ReadGeneralReferenceQuery) []byte { return r.Data },
	func(r *ReadGeneralReferenceQuery, b []byte) { r.Data = b },
)

// ReadGeneralReferenceResponse carries the sub-response block.
type ReadGeneralReferenceResponse struct {
	Len  int
	Data []byte
}

var ReadGeneralReferenceResponseFields = lengthPrefixedFields(
	func(r *ReadGeneralReferenceResponse) int { return r.Len },
	func(r *ReadGeneralReferenceResponse, v int) { r.Len = v },
	func(r *ReadGeneralReferenceResponse) []byte { return r.Data },
	func(r *ReadGeneralReferenceResponse, b []byte) { r.Data = b },
)

// WriteGeneralReferenceQuery carries the sub-request block.
type WriteGeneralReferenceQuery struct {
	Len  int
	Data []byte
}

var WriteGeneralReferenceQueryFields = lengthPrefixedFields(
	func(r *WriteGeneralReferenceQuery) int { return r.Len },
	func(r *WriteGeneralReferenceQuery, v int) { r.Len = v },
	func(r *WriteGeneralReferenceQuery) []byte { return r.Data },
	func(r *WriteGeneralReferenceQuery, b []byte) { r.Data = b },
)

// WriteGeneralReferenceResponse echoes the written block.
type WriteGeneralReferenceResponse struct {
	Len  int
	Data []byte
}

var WriteGeneralReferenceResponseFields = lengthPrefixedFields(
	func(r *WriteGeneralReferenceResponse) int { return r.Len },
	func(r *WriteGeneralReferenceResponse, v int) { r.Len = v },
	func(r *WriteGeneralReferenceResponse) []byte { return r.Data },
	func(r *WriteGeneralReferenceResponse, b []byte) { r.Data = b },
)

// MaskWrite4XRegisterQuery modifies a holding register with AND and OR
// masks.
type MaskWrite4XRegisterQuery struct {
	ReferenceAddress uint16
	AndMask          uint16
	OrMask           uint16
}

var MaskWrite4XRegisterQueryFields = []bitfield.Field[MaskWrite4XRegisterQuery]{
	u16Field(
		func(r *MaskWrite4XRegisterQuery) uint16 { return r.ReferenceAddress },
		func(r *MaskWrite4XRegisterQuery, v uint16) { r.ReferenceAddress = v },
	),
	u16Field(
		func(r *MaskWrite4XRegisterQuery) uint16 { return r.AndMask },
		func(r *MaskWrite4XRegisterQuery, v uint16) { r.AndMask = v },
	),
	u16Field(
		func(r *MaskWrite4XRegisterQuery) uint16 { return r.OrMask },
		func(r *MaskWrite4XRegisterQuery, v uint16) { r.OrMask = v },
	),
}

// MaskWrite4XRegisterResponse echoes the query.
type MaskWrite4XRegisterResponse struct {
	ReferenceAddress uint16
	AndMask          uint16
	OrMask           uint16
}

var MaskWrite4XRegisterResponseFields = []bitfield.Field[MaskWrite4XRegisterResponse]{
	u16Field(
		func(r *MaskWrite4XRegisterResponse) uint16 { return r.ReferenceAddress },
		func(r *MaskWrite4XRegisterResponse, v uint16) { r.ReferenceAddress = v },
	),
	u16Field(
		func(r *MaskWrite4XRegisterResponse) uint16 { return r.AndMask },
		func(r *MaskWrite4XRegisterResponse, v uint16) { r.AndMask = v },
	),
	u16Field(
		func(r *MaskWrite4XRegisterResponse) uint16 { return r.OrMask },
		func(r *MaskWrite4XRegisterResponse, v uint16) { r.OrMask = v },
	),
}

// ReadWrite4XRegistersQuery reads one register range and writes another in
// a single transaction.
type ReadWrite4XRegistersQuery struct {
	ReadReferenceAddress  uint16
	QuantityToRead        uint16
	WriteReferenceAddress uint16
	QuantityToWrite       uint16
	Len                   int
	WriteData             []byte
}

var ReadWrite4XRegistersQueryFields = []bitfield.Field[ReadWrite4XRegistersQuery]{
	u16Field(
		func(r *ReadWrite4XRegistersQuery) uint16 { return r.ReadReferenceAddress },
		func(r *ReadWrite4XRegistersQuery, v uint16) { r.ReadReferenceAddress = v },
	),
	u16Field(
		func(r *ReadWrite4XRegistersQuery) uint16 { return r.QuantityToRead },
		func(r *ReadWrite4XRegistersQuery, v uint16) { r.QuantityToRead = v },
	),
	u16Field(
		func(r *ReadWrite4XRegistersQuery) uint16 { return r.WriteReferenceAddress },
		func(r *ReadWrite4XRegistersQuery, v uint16) { r.WriteReferenceAddress = v },
	),
	u16Field(
		func(r *ReadWrite4XRegistersQuery) uint16 { return r.QuantityToWrite },
		func(r *ReadWrite4XRegistersQuery, v uint16) { r.QuantityToWrite = v },
	),
	bitfield.Length(8,
		func(r *ReadWrite4XRegistersQuery) int { return r.Len },
		func(r *ReadWrite4XRegistersQuery, v int) { r.Len = v },
	),
	bitfield.VarBytes(
		func(r *ReadWrite4XRegistersQuery) []byte { return r.WriteData },
		func(r *ReadWrite4XRegistersQuery, b []byte) { r.WriteData = b },
		func(r *ReadWrite4XRegistersQuery) int { return r.Len },
	),
}

// ReadWrite4XRegistersResponse carries the registers read back.
type ReadWrite4XRegistersResponse struct {
	Len  int
	Data []byte
}

var ReadWrite4XRegistersResponseFields = lengthPrefixedFields(
	func(r *ReadWrite4XRegistersResponse) int { return r.Len },
	func(r *ReadWrite4XRegistersResponse, v int) { r.Len = v },
	func(r *ReadWrite4XRegistersResponse) []byte { return r.Data },
	func(r *ReadWrite4XRegistersResponse, b []byte) { r.Data = b },
)

// ReadFIFOQueueQuery addresses a FIFO pointer register.
type ReadFIFOQueueQuery struct {
	FIFOPointerAddress uint16
}

var ReadFIFOQueueQueryFields = []bitfield.Field[ReadFIFOQueueQuery]{
	u16Field(
		func(r *ReadFIFOQueueQuery) uint16 { return r.FIFOPointerAddress },
		func(r *ReadFIFOQueueQuery, v uint16) { r.FIFOPointerAddress = v },
	),
}

// ReadFIFOQueueResponse carries the queued register values.
type ReadFIFOQueueResponse struct {
	Len  int
	Data []byte
}

var ReadFIFOQueueResponseFields = lengthPrefixedFields(
	func(r *ReadFIFOQueueResponse) int { return r.Len },
	func(r *ReadFIFOQueueResponse, v int) { r.Len = v },
	func(r *ReadFIFOQueueResponse) []byte { return r.Data },
	func(r *ReadFIFOQueueResponse, b []byte) { r.Data = b },
)
