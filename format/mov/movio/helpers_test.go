package movio

import "encoding/binary"

func u16(v uint16) []byte {
	return binary.BigEndian.AppendUint16(nil, v)
}

func u32(v uint32) []byte {
	return binary.BigEndian.AppendUint32(nil, v)
}

func atom(tag string, payload ...[]byte) []byte {
	var body []byte
	for _, p := range payload {
		body = append(body, p...)
	}
	b := u32(uint32(HeaderSize + len(body)))
	b = append(b, tag...)
	return append(b, body...)
}

// sized writes an arbitrary declared size in front of tag and payload.
func sized(size uint32, tag string, payload []byte) []byte {
	b := append(u32(size), tag...)
	return append(b, payload...)
}

func mvhdPayload(version uint8, timeScale, duration, nextTrackID uint32) []byte {
	b := make([]byte, 100)
	b[0] = version
	binary.BigEndian.PutUint32(b[12:], timeScale)
	binary.BigEndian.PutUint32(b[16:], duration)
	binary.BigEndian.PutUint32(b[20:], 0x00010000)
	binary.BigEndian.PutUint16(b[24:], 0x0100)
	binary.BigEndian.PutUint32(b[72:], 11)
	binary.BigEndian.PutUint32(b[76:], 12)
	binary.BigEndian.PutUint32(b[80:], 13)
	binary.BigEndian.PutUint32(b[84:], 14)
	binary.BigEndian.PutUint32(b[88:], 15)
	binary.BigEndian.PutUint32(b[92:], 16)
	binary.BigEndian.PutUint32(b[96:], nextTrackID)
	return b
}

func tkhdPayload(trackID, duration uint32, width, height uint32) []byte {
	b := make([]byte, 84)
	b[3] = 0x03 // enabled, in movie
	binary.BigEndian.PutUint32(b[4:], 100)
	binary.BigEndian.PutUint32(b[8:], 200)
	binary.BigEndian.PutUint32(b[12:], trackID)
	binary.BigEndian.PutUint32(b[20:], duration)
	binary.BigEndian.PutUint16(b[32:], 1)
	binary.BigEndian.PutUint16(b[34:], 2)
	binary.BigEndian.PutUint16(b[36:], 0xffff)
	binary.BigEndian.PutUint32(b[76:], width)
	binary.BigEndian.PutUint32(b[80:], height)
	return b
}

func mdhdPayload(timeScale, duration uint32, lang uint16) []byte {
	b := make([]byte, 24)
	binary.BigEndian.PutUint32(b[12:], timeScale)
	binary.BigEndian.PutUint32(b[16:], duration)
	binary.BigEndian.PutUint16(b[20:], lang)
	return b
}

func hdlrPayload(componentType, subtype string) []byte {
	b := make([]byte, 4, 32)
	b = append(b, []byte(componentType)[:4]...)
	b = append(b, []byte(subtype)[:4]...)
	// trailing fields and name are not read
	return append(b, make([]byte, 13)...)
}

// packLang packs a three-letter ISO-639-2/T code the way mdhd stores it.
func packLang(code string) uint16 {
	return uint16(code[0]-0x60)<<10 | uint16(code[1]-0x60)<<5 | uint16(code[2]-0x60)
}
