package bus

// Topics is the wire contract between the backend and one RFID reader
// device. All subjects hang off a per-device prefix so several readers
// can share a broker.
type Topics struct {
	// Outbound
	ScanCommand string // tells the reader to begin sensing
	Led         string // reader feedback, payload {"color":"red"|"green"}
	Response    string // ambient scan snapshot for device-side displays

	// Inbound
	ScanResult     string // payload {"uid":"..."}
	CancelExternal string // hardware-side cancel button, no payload
}

func TopicsForDevice(prefix string) Topics {
	return Topics{
		ScanCommand:    prefix + "/rfid/register",
		Led:            prefix + "/led",
		Response:       prefix + "/rfid/response",
		ScanResult:     prefix + "/rfid/scan",
		CancelExternal: prefix + "/rfid/cancel",
	}
}
